package services

import (
	"errors"
	"time"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/retroden/arcade_api/dto"
	"github.com/retroden/arcade_api/model"
	"github.com/retroden/arcade_api/shared"
)

// SessionService owns the open/closed lifecycle of play sessions and the
// wall-clock duration cap on the stop path.
type SessionService struct {
	context.DefaultService

	sqlSvc *SqliteService

	now func() time.Time
}

const SESSION_SVC = "session_svc"

func (svc SessionService) Id() string {
	return SESSION_SVC
}

func (svc *SessionService) Configure(ctx *context.Context) error {
	svc.now = time.Now
	return svc.DefaultService.Configure(ctx)
}

func (svc *SessionService) Start() error {
	svc.sqlSvc = svc.Service(SQLITE_SVC).(*SqliteService)
	return nil
}

// StartSession opens a session for a user/game pair. Multiple sessions may be
// open for the same user at once; nothing enforces single-open-per-user.
func (svc *SessionService) StartSession(req dto.StartSessionRequest) (*dto.SessionResponse, error) {
	if err := svc.checkReferences(req.UserID, req.GameID); err != nil {
		return nil, err
	}

	now := svc.now()
	session := &model.GameSession{
		UserID:    req.UserID,
		GameID:    req.GameID,
		StartTime: now,
		IsActive:  true,
		CreatedAt: now,
	}

	session, err := svc.sqlSvc.Sessions().CreateSession(session)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	sessionsStartedTotal.Inc()

	log.WithFields(log.Fields{
		"session_id": session.ID,
		"user_id":    req.UserID,
		"game_id":    req.GameID,
	}).Info("Game session started")

	return mapSessionResponse(session), nil
}

// StopSession finalizes an open session exactly once. The stored duration is
// wall-clock seconds capped at the policy ceiling; a second stop is rejected
// rather than silently recomputing the duration.
func (svc *SessionService) StopSession(sessionID string) (*dto.SessionResponse, error) {
	session, err := svc.sqlSvc.Sessions().GetSession(sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(err, "Session not found")
		}
		return nil, svc.sqlSvc.HandleError(err)
	}

	if !session.IsActive {
		return nil, shared.NewBadRequestError(nil, "Session already stopped")
	}

	endTime := svc.now()
	session.EndTime = &endTime

	actualPlayedSeconds := endTime.Sub(session.StartTime).Seconds()
	if actualPlayedSeconds < 0 {
		actualPlayedSeconds = 0
	}
	session.PlayedSeconds = actualPlayedSeconds
	if session.PlayedSeconds > shared.MaxSessionSeconds {
		session.PlayedSeconds = shared.MaxSessionSeconds
	}

	session.IsActive = false

	if err := svc.sqlSvc.Sessions().UpdateSession(session); err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	sessionsStoppedTotal.Inc()
	if actualPlayedSeconds > shared.MaxSessionSeconds {
		sessionsCappedTotal.Inc()
	}

	log.WithFields(log.Fields{
		"session_id":            session.ID,
		"user_id":               session.UserID,
		"actual_played_seconds": actualPlayedSeconds,
		"capped_played_seconds": session.PlayedSeconds,
	}).Info("Game session ended")

	return mapSessionResponse(session), nil
}

// LogSession records an already-finished session reported by the client-side
// timer. The duration is stored verbatim; the stop-path cap does not apply.
func (svc *SessionService) LogSession(req dto.LogSessionRequest) (*dto.SessionResponse, error) {
	if err := svc.checkReferences(req.UserID, req.GameID); err != nil {
		return nil, err
	}

	now := svc.now()
	session := &model.GameSession{
		UserID:        req.UserID,
		GameID:        req.GameID,
		StartTime:     now,
		EndTime:       &now,
		PlayedSeconds: req.PlayedSeconds,
		Result:        req.Result,
		IsActive:      false,
		CreatedAt:     now,
	}

	session, err := svc.sqlSvc.Sessions().CreateSession(session)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	sessionsLoggedTotal.Inc()

	log.WithFields(log.Fields{
		"session_id":     session.ID,
		"user_id":        req.UserID,
		"game_id":        req.GameID,
		"played_seconds": req.PlayedSeconds,
	}).Info("Game session logged directly")

	return mapSessionResponse(session), nil
}

func (svc *SessionService) GetSessions() ([]dto.SessionResponse, error) {
	sessions, err := svc.sqlSvc.Sessions().GetSessions()
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	out := make([]dto.SessionResponse, len(sessions))
	for i := range sessions {
		out[i] = *mapSessionResponse(&sessions[i])
	}
	return out, nil
}

func (svc *SessionService) GetUserSessions(userID string) ([]dto.SessionResponse, error) {
	if _, err := svc.sqlSvc.Users().GetUser(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(err, "User not found")
		}
		return nil, svc.sqlSvc.HandleError(err)
	}

	sessions, err := svc.sqlSvc.Sessions().GetUserSessions(userID)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	out := make([]dto.SessionResponse, len(sessions))
	for i := range sessions {
		out[i] = *mapSessionResponse(&sessions[i])
	}
	return out, nil
}

// checkReferences enforces that a session never references a missing user or
// game at creation time. Integrity afterwards is best-effort only.
func (svc *SessionService) checkReferences(userID, gameID string) error {
	if _, err := svc.sqlSvc.Users().GetUser(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return shared.NewNotFoundError(err, "User not found")
		}
		return svc.sqlSvc.HandleError(err)
	}

	if _, err := svc.sqlSvc.Games().GetGame(gameID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return shared.NewNotFoundError(err, "Game not found")
		}
		return svc.sqlSvc.HandleError(err)
	}

	return nil
}

func mapSessionResponse(session *model.GameSession) *dto.SessionResponse {
	return &dto.SessionResponse{
		ID:            session.ID,
		UserID:        session.UserID,
		GameID:        session.GameID,
		StartTime:     session.StartTime,
		EndTime:       session.EndTime,
		PlayedSeconds: session.PlayedSeconds,
		Result:        session.Result,
		IsActive:      session.IsActive,
		CreatedAt:     session.CreatedAt,
	}
}
