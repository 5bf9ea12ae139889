package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/retroden/arcade_api/shared"
)

type SearchHandler struct {
	searchSvc SearchServiceInterface
}

func NewSearchHandler(searchSvc SearchServiceInterface) *SearchHandler {
	return &SearchHandler{
		searchSvc: searchSvc,
	}
}

// @Summary Global search
// @Description Search users and games by name. Each list is capped at 10 results.
// @Tags search
// @Accept json
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {object} shared.Response{data=dto.SearchResponse}
// @Router /api/v1/search [get]
func (h *SearchHandler) GlobalSearch(c *fiber.Ctx) error {
	results, err := h.searchSvc.GlobalSearch(c.Query("q"))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", results)
}
