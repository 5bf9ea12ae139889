package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/retroden/arcade_api/dto"
)

func newTestGameService(t *testing.T) *GameService {
	t.Helper()

	return &GameService{sqlSvc: newTestSqlite(t)}
}

func TestCreateGame(t *testing.T) {
	t.Run("creates a catalog entry", func(t *testing.T) {
		svc := newTestGameService(t)

		resp, err := svc.CreateGame(dto.CreateGameRequest{
			Name:        "Tetris",
			Description: "Puzzle block game",
			GifURL:      "/tetris_gameicon.gif",
		})
		require.NoError(t, err)

		require.NotEmpty(t, resp.ID)
		require.Equal(t, "Tetris", resp.Name)
		require.Equal(t, "/tetris_gameicon.gif", resp.GifURL)
	})

	t.Run("name is required", func(t *testing.T) {
		svc := newTestGameService(t)

		_, err := svc.CreateGame(dto.CreateGameRequest{Description: "nameless"})
		requireAppError(t, err, 400)
	})
}

func TestUpdateGame(t *testing.T) {
	t.Run("merges only the provided fields", func(t *testing.T) {
		svc := newTestGameService(t)

		created, err := svc.CreateGame(dto.CreateGameRequest{
			Name:        "Space Invaders",
			Description: "Retro space shooter",
		})
		require.NoError(t, err)

		updated, err := svc.UpdateGame(created.ID, dto.UpdateGameRequest{ImageURL: "/space.png"})
		require.NoError(t, err)

		require.Equal(t, "Space Invaders", updated.Name)
		require.Equal(t, "Retro space shooter", updated.Description)
		require.Equal(t, "/space.png", updated.ImageURL)
	})

	t.Run("unknown game", func(t *testing.T) {
		svc := newTestGameService(t)

		_, err := svc.UpdateGame("missing", dto.UpdateGameRequest{Name: "X"})
		requireAppError(t, err, 404)
	})
}

func TestGetGames(t *testing.T) {
	svc := newTestGameService(t)

	games, err := svc.GetGames()
	require.NoError(t, err)
	require.Empty(t, games)

	for _, name := range []string{"Pac-man", "Tetris"} {
		_, err := svc.CreateGame(dto.CreateGameRequest{Name: name})
		require.NoError(t, err)
	}

	games, err = svc.GetGames()
	require.NoError(t, err)
	require.Len(t, games, 2)
}
