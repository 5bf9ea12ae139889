package services

import (
	"github.com/alphabatem/common/context"

	"github.com/retroden/arcade_api/dto"
	"github.com/retroden/arcade_api/shared"
)

// SearchService is a plain substring filter over users and games. Results are
// not scored or ranked; each list keeps the store's insertion order.
type SearchService struct {
	context.DefaultService

	sqlSvc *SqliteService
}

const SEARCH_SVC = "search_svc"

func (svc SearchService) Id() string {
	return SEARCH_SVC
}

func (svc *SearchService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *SearchService) Start() error {
	svc.sqlSvc = svc.Service(SQLITE_SVC).(*SqliteService)
	return nil
}

func (svc *SearchService) GlobalSearch(query string) (*dto.SearchResponse, error) {
	if query == "" {
		return nil, shared.NewBadRequestError(nil, "Search query required")
	}

	users, err := svc.sqlSvc.Users().SearchUsers(query)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	games, err := svc.sqlSvc.Games().SearchGames(query)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	resp := &dto.SearchResponse{
		Users: make([]dto.UserResponse, len(users)),
		Games: make([]dto.GameResponse, len(games)),
	}
	for i := range users {
		resp.Users[i] = mapUserResponse(&users[i])
	}
	for i := range games {
		resp.Games[i] = mapGameResponse(&games[i])
	}

	return resp, nil
}
