package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/retroden/arcade_api/dto"
	"github.com/retroden/arcade_api/shared"
)

type GameHandler struct {
	gameSvc GameServiceInterface
}

func NewGameHandler(gameSvc GameServiceInterface) *GameHandler {
	return &GameHandler{
		gameSvc: gameSvc,
	}
}

// @Summary List games
// @Description Get the retro game catalog
// @Tags game
// @Accept json
// @Produce json
// @Success 200 {object} shared.Response{data=[]dto.GameResponse}
// @Router /api/v1/games [get]
func (h *GameHandler) GetGames(c *fiber.Ctx) error {
	games, err := h.gameSvc.GetGames()
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", games)
}

// @Summary Get game
// @Description Get a single game by id
// @Tags game
// @Accept json
// @Produce json
// @Param id path string true "Game ID"
// @Success 200 {object} shared.Response{data=dto.GameResponse}
// @Router /api/v1/games/{id} [get]
func (h *GameHandler) GetGame(c *fiber.Ctx) error {
	game, err := h.gameSvc.GetGame(c.Params("id"))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", game)
}

// @Summary Create game
// @Description Add a game to the catalog
// @Tags game
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Admin Bearer Token" default(Bearer <admin_token>)
// @Param createRequest body dto.CreateGameRequest true "Game details"
// @Success 201 {object} shared.Response{data=dto.GameResponse}
// @Router /api/v1/games [post]
func (h *GameHandler) CreateGame(c *fiber.Ctx) error {
	var req dto.CreateGameRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	game, err := h.gameSvc.CreateGame(req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusCreated, "Success", game)
}

// @Summary Update game
// @Description Update game details. Empty fields are left unchanged.
// @Tags game
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Admin Bearer Token" default(Bearer <admin_token>)
// @Param id path string true "Game ID"
// @Param updateRequest body dto.UpdateGameRequest true "Game details"
// @Success 200 {object} shared.Response{data=dto.GameResponse}
// @Router /api/v1/games/{id} [put]
func (h *GameHandler) UpdateGame(c *fiber.Ctx) error {
	var req dto.UpdateGameRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	game, err := h.gameSvc.UpdateGame(c.Params("id"), req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", game)
}

// @Summary Upload game artwork
// @Description Store a new icon for the game and point its image URL at it
// @Tags game
// @Accept mpfd
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Admin Bearer Token" default(Bearer <admin_token>)
// @Param id path string true "Game ID"
// @Param artwork formData file true "Artwork image"
// @Success 201 {object} shared.Response{data=dto.GameResponse}
// @Router /api/v1/games/{id}/artwork [post]
func (h *GameHandler) UploadArtwork(c *fiber.Ctx) error {
	file, err := c.FormFile("artwork")
	if err != nil {
		return shared.NewBadRequestError(err, "Artwork file is required")
	}

	game, err := h.gameSvc.UploadArtwork(c.Params("id"), file)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusCreated, "Success", game)
}
