package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/retroden/arcade_api/dto"
	"github.com/retroden/arcade_api/model"
	"github.com/retroden/arcade_api/services/repositories"
	"github.com/retroden/arcade_api/shared"
)

func newTestSqlite(t *testing.T) *SqliteService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Game{}, &model.GameSession{}))

	ds := &SqliteService{db: db}
	ds.users = repositories.NewUserRepository(db)
	ds.games = repositories.NewGameRepository(db)
	ds.sessions = repositories.NewSessionRepository(db)
	return ds
}

func newTestSessionService(t *testing.T) (*SessionService, string, string) {
	t.Helper()

	ds := newTestSqlite(t)

	user, err := ds.Users().CreateUser(&model.User{
		Email:     "anders@retrogaming.se",
		FirstName: "Anders",
		LastName:  "Svensson",
	})
	require.NoError(t, err)

	game, err := ds.Games().CreateGame(&model.Game{Name: "Pac-man"})
	require.NoError(t, err)

	svc := &SessionService{
		sqlSvc: ds,
		now:    time.Now,
	}
	return svc, user.ID, game.ID
}

func requireAppError(t *testing.T, err error, statusCode int) {
	t.Helper()

	require.Error(t, err)
	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	require.Equal(t, statusCode, appErr.StatusCode)
}

func TestStartSession(t *testing.T) {
	t.Run("opens an active session", func(t *testing.T) {
		svc, userID, gameID := newTestSessionService(t)

		resp, err := svc.StartSession(dto.StartSessionRequest{UserID: userID, GameID: gameID})
		require.NoError(t, err)

		require.NotEmpty(t, resp.ID)
		require.True(t, resp.IsActive)
		require.Nil(t, resp.EndTime)
		require.Zero(t, resp.PlayedSeconds)
	})

	t.Run("unknown user is rejected", func(t *testing.T) {
		svc, _, gameID := newTestSessionService(t)

		_, err := svc.StartSession(dto.StartSessionRequest{UserID: "missing", GameID: gameID})
		requireAppError(t, err, 404)
	})

	t.Run("unknown game is rejected", func(t *testing.T) {
		svc, userID, _ := newTestSessionService(t)

		_, err := svc.StartSession(dto.StartSessionRequest{UserID: userID, GameID: "missing"})
		requireAppError(t, err, 404)
	})
}

func TestStopSession(t *testing.T) {
	start := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

	openSessionAt := func(t *testing.T, svc *SessionService, userID, gameID string, startedAt time.Time) string {
		t.Helper()

		svc.now = func() time.Time { return startedAt }
		resp, err := svc.StartSession(dto.StartSessionRequest{UserID: userID, GameID: gameID})
		require.NoError(t, err)
		return resp.ID
	}

	t.Run("stores the wall-clock duration", func(t *testing.T) {
		svc, userID, gameID := newTestSessionService(t)
		id := openSessionAt(t, svc, userID, gameID, start)

		svc.now = func() time.Time { return start.Add(45 * time.Second) }
		resp, err := svc.StopSession(id)
		require.NoError(t, err)

		require.Equal(t, 45.0, resp.PlayedSeconds)
		require.False(t, resp.IsActive)
		require.NotNil(t, resp.EndTime)
	})

	t.Run("caps a marathon session at the ceiling", func(t *testing.T) {
		svc, userID, gameID := newTestSessionService(t)
		id := openSessionAt(t, svc, userID, gameID, start)

		svc.now = func() time.Time { return start.Add(2 * time.Hour) }
		resp, err := svc.StopSession(id)
		require.NoError(t, err)

		require.Equal(t, float64(shared.MaxSessionSeconds), resp.PlayedSeconds)
	})

	t.Run("exactly at the ceiling is not reduced", func(t *testing.T) {
		svc, userID, gameID := newTestSessionService(t)
		id := openSessionAt(t, svc, userID, gameID, start)

		svc.now = func() time.Time { return start.Add(1800 * time.Second) }
		resp, err := svc.StopSession(id)
		require.NoError(t, err)

		require.Equal(t, 1800.0, resp.PlayedSeconds)
	})

	t.Run("second stop is rejected", func(t *testing.T) {
		svc, userID, gameID := newTestSessionService(t)
		id := openSessionAt(t, svc, userID, gameID, start)

		svc.now = func() time.Time { return start.Add(10 * time.Second) }
		first, err := svc.StopSession(id)
		require.NoError(t, err)

		svc.now = func() time.Time { return start.Add(10 * time.Minute) }
		_, err = svc.StopSession(id)
		requireAppError(t, err, 400)

		// The stored duration is untouched by the rejected second stop.
		stored, err := svc.sqlSvc.Sessions().GetSession(id)
		require.NoError(t, err)
		require.Equal(t, first.PlayedSeconds, stored.PlayedSeconds)
	})

	t.Run("unknown session id", func(t *testing.T) {
		svc, _, _ := newTestSessionService(t)

		_, err := svc.StopSession("missing")
		requireAppError(t, err, 404)
	})
}

func TestLogSession(t *testing.T) {
	t.Run("stores the reported duration verbatim above the cap", func(t *testing.T) {
		svc, userID, gameID := newTestSessionService(t)

		resp, err := svc.LogSession(dto.LogSessionRequest{
			UserID:        userID,
			GameID:        gameID,
			PlayedSeconds: 5000,
			Result:        model.ResultWin,
		})
		require.NoError(t, err)

		require.Equal(t, 5000.0, resp.PlayedSeconds)
		require.Equal(t, model.ResultWin, resp.Result)
		require.False(t, resp.IsActive)
	})

	t.Run("start and end time coincide", func(t *testing.T) {
		svc, userID, gameID := newTestSessionService(t)

		at := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
		svc.now = func() time.Time { return at }

		resp, err := svc.LogSession(dto.LogSessionRequest{
			UserID:        userID,
			GameID:        gameID,
			PlayedSeconds: 120,
		})
		require.NoError(t, err)

		require.NotNil(t, resp.EndTime)
		require.True(t, resp.StartTime.Equal(*resp.EndTime))
		require.Equal(t, 120.0, resp.PlayedSeconds)
	})

	t.Run("unknown references are rejected", func(t *testing.T) {
		svc, userID, _ := newTestSessionService(t)

		_, err := svc.LogSession(dto.LogSessionRequest{UserID: userID, GameID: "missing", PlayedSeconds: 1})
		requireAppError(t, err, 404)
	})
}

func TestGetUserSessions(t *testing.T) {
	t.Run("unknown user", func(t *testing.T) {
		svc, _, _ := newTestSessionService(t)

		_, err := svc.GetUserSessions("missing")
		requireAppError(t, err, 404)
	})

	t.Run("returns only that user's sessions", func(t *testing.T) {
		svc, userID, gameID := newTestSessionService(t)

		other, err := svc.sqlSvc.Users().CreateUser(&model.User{
			Email:     "ingrid@retrogaming.se",
			FirstName: "Ingrid",
			LastName:  "Norström",
		})
		require.NoError(t, err)

		_, err = svc.LogSession(dto.LogSessionRequest{UserID: userID, GameID: gameID, PlayedSeconds: 10})
		require.NoError(t, err)
		_, err = svc.LogSession(dto.LogSessionRequest{UserID: other.ID, GameID: gameID, PlayedSeconds: 20})
		require.NoError(t, err)

		sessions, err := svc.GetUserSessions(userID)
		require.NoError(t, err)
		require.Len(t, sessions, 1)
		require.Equal(t, userID, sessions[0].UserID)
	})
}
