package services

import (
	"errors"
	"mime/multipart"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/retroden/arcade_api/dto"
	"github.com/retroden/arcade_api/model"
	"github.com/retroden/arcade_api/shared"
)

// GameService manages the game catalog. The catalog is small and effectively
// fixed in practice but nothing here assumes a bounded size.
type GameService struct {
	context.DefaultService

	sqlSvc   *SqliteService
	mediaSvc *MediaService
}

const GAME_SVC = "game_svc"

func (svc GameService) Id() string {
	return GAME_SVC
}

func (svc *GameService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *GameService) Start() error {
	svc.sqlSvc = svc.Service(SQLITE_SVC).(*SqliteService)
	svc.mediaSvc = svc.Service(MEDIA_SVC).(*MediaService)
	return nil
}

func (svc *GameService) GetGames() ([]dto.GameResponse, error) {
	games, err := svc.sqlSvc.Games().GetGames()
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	out := make([]dto.GameResponse, len(games))
	for i := range games {
		out[i] = mapGameResponse(&games[i])
	}

	log.WithField("game_count", len(out)).Info("Retrieved all games")
	return out, nil
}

func (svc *GameService) GetGame(id string) (*dto.GameResponse, error) {
	game, err := svc.sqlSvc.Games().GetGame(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(err, "Game not found")
		}
		return nil, svc.sqlSvc.HandleError(err)
	}

	resp := mapGameResponse(game)
	return &resp, nil
}

func (svc *GameService) CreateGame(req dto.CreateGameRequest) (*dto.GameResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, shared.NewBadRequestError(err, "Validation failed").
			WithData(dto.FormatValidationErrors(err))
	}

	game := &model.Game{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		GifURL:      req.GifURL,
	}

	game, err := svc.sqlSvc.Games().CreateGame(game)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	log.WithFields(log.Fields{
		"game_id":   game.ID,
		"game_name": game.Name,
	}).Info("New game created")

	resp := mapGameResponse(game)
	return &resp, nil
}

func (svc *GameService) UpdateGame(id string, req dto.UpdateGameRequest) (*dto.GameResponse, error) {
	game, err := svc.sqlSvc.Games().GetGame(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(err, "Game not found")
		}
		return nil, svc.sqlSvc.HandleError(err)
	}

	if req.Name != "" {
		game.Name = req.Name
	}
	if req.Description != "" {
		game.Description = req.Description
	}
	if req.ImageURL != "" {
		game.ImageURL = req.ImageURL
	}
	if req.GifURL != "" {
		game.GifURL = req.GifURL
	}

	if err := svc.sqlSvc.Games().UpdateGame(game); err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	log.WithFields(log.Fields{
		"game_id":   id,
		"game_name": game.Name,
	}).Info("Game updated")

	resp := mapGameResponse(game)
	return &resp, nil
}

// UploadArtwork stores a new icon for the game and points ImageURL at it.
func (svc *GameService) UploadArtwork(gameID string, file *multipart.FileHeader) (*dto.GameResponse, error) {
	game, err := svc.sqlSvc.Games().GetGame(gameID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(err, "Game not found")
		}
		return nil, svc.sqlSvc.HandleError(err)
	}

	url, err := svc.mediaSvc.UploadGameArt(file)
	if err != nil {
		return nil, err
	}

	game.ImageURL = url
	if err := svc.sqlSvc.Games().UpdateGame(game); err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	log.WithFields(log.Fields{
		"game_id":   gameID,
		"image_url": url,
	}).Info("Game artwork uploaded")

	resp := mapGameResponse(game)
	return &resp, nil
}

func mapGameResponse(game *model.Game) dto.GameResponse {
	return dto.GameResponse{
		ID:          game.ID,
		Name:        game.Name,
		Description: game.Description,
		ImageURL:    game.ImageURL,
		GifURL:      game.GifURL,
		CreatedAt:   game.CreatedAt,
	}
}
