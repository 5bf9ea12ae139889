package repositories

import (
	"github.com/google/uuid"
	"github.com/retroden/arcade_api/model"
	"gorm.io/gorm"
)

// SessionRepository handles game session database operations. Sessions are an
// append-only log: records are created and finalized, never deleted.
type SessionRepository struct {
	BaseRepository
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (r *SessionRepository) GetSession(id string) (*model.GameSession, error) {
	var session model.GameSession
	if err := r.db.First(&session, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepository) CreateSession(session *model.GameSession) (*model.GameSession, error) {
	id, _ := uuid.NewV7()
	session.ID = id.String()
	if err := r.db.Create(session).Error; err != nil {
		return nil, err
	}
	return session, nil
}

func (r *SessionRepository) UpdateSession(session *model.GameSession) error {
	return r.db.Save(session).Error
}

func (r *SessionRepository) GetSessions() ([]model.GameSession, error) {
	var sessions []model.GameSession
	if err := r.db.Order("created_at DESC").Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *SessionRepository) GetUserSessions(userID string) ([]model.GameSession, error) {
	var sessions []model.GameSession
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}
