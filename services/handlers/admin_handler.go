package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/retroden/arcade_api/shared"
)

type AdminHandler struct {
	jwtSvc  JWTServiceInterface
	seedSvc SeedServiceInterface
}

func NewAdminHandler(jwtSvc JWTServiceInterface, seedSvc SeedServiceInterface) *AdminHandler {
	return &AdminHandler{
		jwtSvc:  jwtSvc,
		seedSvc: seedSvc,
	}
}

type adminTokenRequest struct {
	APIKey string `json:"apiKey" form:"apiKey"`
}

type adminTokenResponse struct {
	Token string `json:"token"`
}

// @Summary Mint admin token
// @Description Exchange the shared operator key for a short-lived admin bearer token
// @Tags admin
// @Accept json
// @Produce json
// @Param tokenRequest body adminTokenRequest true "Operator key"
// @Success 200 {object} shared.Response{data=adminTokenResponse}
// @Router /api/v1/admin/token [post]
func (h *AdminHandler) MintToken(c *fiber.Ctx) error {
	var req adminTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	token, err := h.jwtSvc.MintAdminToken(req.APIKey)
	if err != nil {
		return shared.NewUnauthorizedError(err, "Invalid admin API key")
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", adminTokenResponse{Token: token})
}

// @Summary Reseed database
// @Description Wipe sessions, users and games and reload the demo dataset
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Admin Bearer Token" default(Bearer <admin_token>)
// @Success 200 {object} shared.Response
// @Router /api/v1/admin/seed [post]
func (h *AdminHandler) Reseed(c *fiber.Ctx) error {
	if err := h.seedSvc.Reseed(); err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Database reseeded", nil)
}
