package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/retroden/arcade_api/dto"
	"github.com/retroden/arcade_api/shared"
)

type SessionHandler struct {
	sessionSvc SessionServiceInterface
}

func NewSessionHandler(sessionSvc SessionServiceInterface) *SessionHandler {
	return &SessionHandler{
		sessionSvc: sessionSvc,
	}
}

// @Summary Start session
// @Description Open a play session for a user and game
// @Tags session
// @Accept json
// @Produce json
// @Param startRequest body dto.StartSessionRequest true "User and game"
// @Success 201 {object} shared.Response{data=dto.SessionResponse}
// @Router /api/v1/sessions/start [post]
func (h *SessionHandler) StartSession(c *fiber.Ctx) error {
	var req dto.StartSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := dto.Validate(req); err != nil {
		return shared.NewBadRequestError(err, "Validation failed").
			WithData(dto.FormatValidationErrors(err))
	}

	session, err := h.sessionSvc.StartSession(req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusCreated, "Success", session)
}

// @Summary Stop session
// @Description Finalize an open session. The stored duration is capped at 30 minutes of wall clock. Stopping an already stopped session is rejected.
// @Tags session
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} shared.Response{data=dto.SessionResponse}
// @Router /api/v1/sessions/{id}/stop [put]
func (h *SessionHandler) StopSession(c *fiber.Ctx) error {
	session, err := h.sessionSvc.StopSession(c.Params("id"))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", session)
}

// @Summary Log session
// @Description Record an already finished session reported by the client timer. The duration is stored verbatim.
// @Tags session
// @Accept json
// @Produce json
// @Param logRequest body dto.LogSessionRequest true "Session details"
// @Success 201 {object} shared.Response{data=dto.SessionResponse}
// @Router /api/v1/sessions [post]
func (h *SessionHandler) LogSession(c *fiber.Ctx) error {
	var req dto.LogSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := dto.Validate(req); err != nil {
		return shared.NewBadRequestError(err, "Validation failed").
			WithData(dto.FormatValidationErrors(err))
	}

	session, err := h.sessionSvc.LogSession(req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusCreated, "Success", session)
}

// @Summary List sessions
// @Description Get all play sessions, newest first
// @Tags session
// @Accept json
// @Produce json
// @Success 200 {object} shared.Response{data=[]dto.SessionResponse}
// @Router /api/v1/sessions/stats [get]
func (h *SessionHandler) GetSessions(c *fiber.Ctx) error {
	sessions, err := h.sessionSvc.GetSessions()
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", sessions)
}

// @Summary List user sessions
// @Description Get all play sessions for one user
// @Tags session
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} shared.Response{data=[]dto.SessionResponse}
// @Router /api/v1/sessions/user/{userId} [get]
func (h *SessionHandler) GetUserSessions(c *fiber.Ctx) error {
	sessions, err := h.sessionSvc.GetUserSessions(c.Params("userId"))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", sessions)
}
