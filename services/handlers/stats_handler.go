package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/retroden/arcade_api/shared"
)

type StatsHandler struct {
	statsSvc StatsServiceInterface
}

func NewStatsHandler(statsSvc StatsServiceInterface) *StatsHandler {
	return &StatsHandler{
		statsSvc: statsSvc,
	}
}

// @Summary Get user statistics
// @Description Per-game playtime breakdown for one user
// @Tags statistics
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} shared.Response{data=dto.UserStatsResponse}
// @Router /api/v1/statistics/user/{userId} [get]
func (h *StatsHandler) GetUserStats(c *fiber.Ctx) error {
	stats, err := h.statsSvc.GetUserStats(c.Params("userId"))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", stats)
}

// @Summary Get leaderboard
// @Description Ranked leaderboard. Type is one of wins, playtime or winRate; winRate excludes players with fewer than 5 games.
// @Tags statistics
// @Accept json
// @Produce json
// @Param type query string false "Leaderboard type: wins, playtime, winRate (default wins)"
// @Param gameId query string false "Restrict to one game"
// @Param limit query int false "Limit results (default 10)"
// @Success 200 {object} shared.Response
// @Router /api/v1/leaderboard [get]
func (h *StatsHandler) GetLeaderboard(c *fiber.Ctx) error {
	gameID := c.Query("gameId")

	limit := 10
	if l := c.Query("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}

	leaderboardType := c.Query("type", shared.LeaderboardWins)
	switch leaderboardType {
	case shared.LeaderboardWins:
		entries, err := h.statsSvc.GetWinsLeaderboard(gameID, limit)
		if err != nil {
			return err
		}
		return shared.ResponseJSON(c, fiber.StatusOK, "Success", entries)
	case shared.LeaderboardPlaytime:
		entries, err := h.statsSvc.GetPlaytimeLeaderboard(gameID, limit)
		if err != nil {
			return err
		}
		return shared.ResponseJSON(c, fiber.StatusOK, "Success", entries)
	case shared.LeaderboardWinRate:
		entries, err := h.statsSvc.GetWinRateLeaderboard(gameID, limit)
		if err != nil {
			return err
		}
		return shared.ResponseJSON(c, fiber.StatusOK, "Success", entries)
	default:
		return shared.NewBadRequestError(nil, "Invalid leaderboard type")
	}
}

// @Summary Get session leaderboard
// @Description Every session sorted by duration, longest first
// @Tags statistics
// @Accept json
// @Produce json
// @Success 200 {object} shared.Response{data=[]dto.SessionLeaderboardEntry}
// @Router /api/v1/statistics/leaderboard [get]
func (h *StatsHandler) GetSessionLeaderboard(c *fiber.Ctx) error {
	entries, err := h.statsSvc.GetSessionLeaderboard()
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", entries)
}

// @Summary Get all-users leaderboard
// @Description Total minutes per user across all games, ranked
// @Tags statistics
// @Accept json
// @Produce json
// @Success 200 {object} shared.Response{data=[]dto.UserTotalEntry}
// @Router /api/v1/statistics/leaderboard/all-users [get]
func (h *StatsHandler) GetAllUsersLeaderboard(c *fiber.Ctx) error {
	entries, err := h.statsSvc.GetAllUsersLeaderboard()
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", entries)
}

// @Summary Get game frequency
// @Description Per-game player frequency. Every catalog game is present, unplayed games with an empty list.
// @Tags statistics
// @Accept json
// @Produce json
// @Success 200 {object} shared.Response
// @Router /api/v1/statistics/game-frequency [get]
func (h *StatsHandler) GetGameFrequency(c *fiber.Ctx) error {
	frequency, err := h.statsSvc.GetGameFrequency()
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", frequency)
}

// @Summary Get weekly series
// @Description Seven day buckets ending today with per-user minute totals for one game
// @Tags statistics
// @Accept json
// @Produce json
// @Param game query string true "Game name"
// @Success 200 {object} shared.Response{data=dto.WeeklySeriesResponse}
// @Router /api/v1/statistics/weekly [get]
func (h *StatsHandler) GetWeeklySeries(c *fiber.Ctx) error {
	series, err := h.statsSvc.GetWeeklySeries(c.Query("game"))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", series)
}

// @Summary List session details
// @Description All sessions with user and game display names resolved
// @Tags statistics
// @Accept json
// @Produce json
// @Success 200 {object} shared.Response{data=[]dto.SessionDetailResponse}
// @Router /api/v1/statistics/sessions [get]
func (h *StatsHandler) GetAllSessionDetails(c *fiber.Ctx) error {
	details, err := h.statsSvc.GetAllSessionDetails()
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", details)
}
