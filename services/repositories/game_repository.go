package repositories

import (
	"github.com/google/uuid"
	"github.com/retroden/arcade_api/model"
	"github.com/retroden/arcade_api/shared"
	"gorm.io/gorm"
)

// GameRepository handles game catalog database operations
type GameRepository struct {
	BaseRepository
}

func NewGameRepository(db *gorm.DB) *GameRepository {
	return &GameRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (r *GameRepository) GetGame(id string) (*model.Game, error) {
	var game model.Game
	if err := r.db.First(&game, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &game, nil
}

func (r *GameRepository) GetGames() ([]model.Game, error) {
	var games []model.Game
	if err := r.db.Order("created_at ASC").Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

func (r *GameRepository) CreateGame(game *model.Game) (*model.Game, error) {
	id, _ := uuid.NewV7()
	game.ID = id.String()
	if err := r.db.Create(game).Error; err != nil {
		return nil, err
	}
	return game, nil
}

func (r *GameRepository) UpdateGame(game *model.Game) error {
	return r.db.Save(game).Error
}

func (r *GameRepository) SearchGames(query string) ([]model.Game, error) {
	var games []model.Game
	pattern := "%" + query + "%"
	err := r.db.
		Where("LOWER(name) LIKE LOWER(?)", pattern).
		Limit(shared.SearchResultLimit).
		Find(&games).Error
	if err != nil {
		return nil, err
	}
	return games, nil
}
