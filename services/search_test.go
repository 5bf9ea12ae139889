package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/retroden/arcade_api/model"
	"github.com/retroden/arcade_api/shared"
)

func newTestSearchService(t *testing.T) *SearchService {
	t.Helper()

	return &SearchService{sqlSvc: newTestSqlite(t)}
}

func TestGlobalSearch(t *testing.T) {
	t.Run("empty query is rejected", func(t *testing.T) {
		svc := newTestSearchService(t)

		_, err := svc.GlobalSearch("")
		requireAppError(t, err, 400)
	})

	t.Run("matches users and games case-insensitively", func(t *testing.T) {
		svc := newTestSearchService(t)

		_, err := svc.sqlSvc.Users().CreateUser(&model.User{
			Email:     "anders@retrogaming.se",
			FirstName: "Anders",
			LastName:  "Svensson",
		})
		require.NoError(t, err)

		_, err = svc.sqlSvc.Games().CreateGame(&model.Game{Name: "Asteroids"})
		require.NoError(t, err)

		resp, err := svc.GlobalSearch("AND")
		require.NoError(t, err)

		require.Len(t, resp.Users, 1)
		require.Equal(t, "Anders", resp.Users[0].FirstName)
		require.Empty(t, resp.Games)

		resp, err = svc.GlobalSearch("aste")
		require.NoError(t, err)
		require.Empty(t, resp.Users)
		require.Len(t, resp.Games, 1)
	})

	t.Run("each list is capped", func(t *testing.T) {
		svc := newTestSearchService(t)

		for i := 0; i < 15; i++ {
			_, err := svc.sqlSvc.Users().CreateUser(&model.User{
				Email:     fmt.Sprintf("player%d@retrogaming.se", i),
				FirstName: "Player",
				LastName:  fmt.Sprintf("Number%d", i),
			})
			require.NoError(t, err)
		}

		resp, err := svc.GlobalSearch("player")
		require.NoError(t, err)
		require.Len(t, resp.Users, shared.SearchResultLimit)
	})

	t.Run("no matches yields empty lists", func(t *testing.T) {
		svc := newTestSearchService(t)

		resp, err := svc.GlobalSearch("nothing")
		require.NoError(t, err)
		require.Empty(t, resp.Users)
		require.Empty(t, resp.Games)
	})
}
