package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/retroden/arcade_api/model"
	"github.com/retroden/arcade_api/shared"
)

func testUsers() map[string]model.User {
	return map[string]model.User{
		"u1": {ID: "u1", FirstName: "Anders", LastName: "Svensson"},
		"u2": {ID: "u2", FirstName: "Ingrid", LastName: "Norström"},
		"u3": {ID: "u3", FirstName: "Lars", LastName: "Bergström"},
	}
}

func testGames() (map[string]model.Game, []model.Game) {
	catalog := []model.Game{
		{ID: "g1", Name: "Pac-man", ImageURL: "/pacman.png"},
		{ID: "g2", Name: "Tetris"},
		{ID: "g3", Name: "Asteroids"},
	}
	byID := make(map[string]model.Game, len(catalog))
	for _, g := range catalog {
		byID[g.ID] = g
	}
	return byID, catalog
}

func session(userID, gameID string, playedSeconds float64, result string) model.GameSession {
	return model.GameSession{
		UserID:        userID,
		GameID:        gameID,
		PlayedSeconds: playedSeconds,
		Result:        result,
	}
}

func TestBuildUserGameBreakdown(t *testing.T) {
	t.Parallel()

	games, _ := testGames()

	t.Run("sums per game and totals across games", func(t *testing.T) {
		t.Parallel()

		sessions := []model.GameSession{
			session("u1", "g1", 10, ""),
			session("u1", "g2", 5, ""),
			session("u1", "g1", 7, ""),
		}

		resp := buildUserGameBreakdown(sessions, games)

		require.Len(t, resp.GameStats, 2)
		require.Equal(t, "Pac-man", resp.GameStats[0].GameName)
		require.Equal(t, "/pacman.png", resp.GameStats[0].IconURL)
		require.Equal(t, 17.0, resp.GameStats[0].MinutesPlayed)
		require.Equal(t, "Tetris", resp.GameStats[1].GameName)
		require.Equal(t, 5.0, resp.GameStats[1].MinutesPlayed)
		require.Equal(t, 22.0, resp.TotalMinutes)
	})

	t.Run("no sessions yields empty breakdown", func(t *testing.T) {
		t.Parallel()

		resp := buildUserGameBreakdown(nil, games)

		require.Empty(t, resp.GameStats)
		require.Zero(t, resp.TotalMinutes)
	})

	t.Run("unknown game id groups under fallback name", func(t *testing.T) {
		t.Parallel()

		resp := buildUserGameBreakdown([]model.GameSession{session("u1", "missing", 3, "")}, games)

		require.Len(t, resp.GameStats, 1)
		require.Equal(t, "Unknown Game", resp.GameStats[0].GameName)
	})
}

func TestGroupByUser(t *testing.T) {
	t.Parallel()

	sessions := []model.GameSession{
		session("u1", "g1", 10, model.ResultWin),
		session("u2", "g1", 20, model.ResultLoss),
		session("u1", "g2", 5, model.ResultWin),
		session("u2", "g2", 1, ""),
	}

	t.Run("accumulates wins, games and playtime per user", func(t *testing.T) {
		t.Parallel()

		groups := groupByUser(sessions, "")

		require.Len(t, groups, 2)
		require.Equal(t, "u1", groups[0].userID)
		require.Equal(t, 2, groups[0].wins)
		require.Equal(t, 2, groups[0].totalGames)
		require.Equal(t, 15.0, groups[0].playtime)
		require.Equal(t, "u2", groups[1].userID)
		require.Equal(t, 0, groups[1].wins)
		require.Equal(t, 21.0, groups[1].playtime)
	})

	t.Run("game filter drops other games", func(t *testing.T) {
		t.Parallel()

		groups := groupByUser(sessions, "g2")

		require.Len(t, groups, 2)
		require.Equal(t, 1, groups[0].totalGames)
		require.Equal(t, 5.0, groups[0].playtime)
		require.Equal(t, 1.0, groups[1].playtime)
	})
}

func TestBuildWinsLeaderboard(t *testing.T) {
	t.Parallel()

	users := testUsers()

	sessions := []model.GameSession{
		session("u1", "g1", 10, model.ResultLoss),
		session("u2", "g1", 10, model.ResultWin),
		session("u2", "g1", 10, model.ResultWin),
		session("u3", "g1", 10, model.ResultWin),
	}

	entries := buildWinsLeaderboard(sessions, users, "", 10)

	require.Len(t, entries, 3)
	require.Equal(t, 1, entries[0].Rank)
	require.Equal(t, "Ingrid Norström", entries[0].UserName)
	require.Equal(t, 2, entries[0].TotalWins)
	require.Equal(t, 2, entries[0].TotalGames)
	require.Equal(t, "Lars Bergström", entries[1].UserName)
	require.Equal(t, 1, entries[1].TotalWins)
	require.Equal(t, 3, entries[2].Rank)
	require.Equal(t, 0, entries[2].TotalWins)
}

func TestBuildPlaytimeLeaderboard(t *testing.T) {
	t.Parallel()

	users := testUsers()

	t.Run("ranks by summed playtime", func(t *testing.T) {
		t.Parallel()

		sessions := []model.GameSession{
			session("u1", "g1", 10, ""),
			session("u2", "g1", 30, ""),
			session("u1", "g2", 15, ""),
		}

		entries := buildPlaytimeLeaderboard(sessions, users, "", 10)

		require.Len(t, entries, 2)
		require.Equal(t, "Ingrid Norström", entries[0].UserName)
		require.Equal(t, 30.0, entries[0].TotalPlaytime)
		require.Equal(t, 25.0, entries[1].TotalPlaytime)
		require.Equal(t, 2, entries[1].Rank)
	})

	t.Run("ties keep first-seen order", func(t *testing.T) {
		t.Parallel()

		sessions := []model.GameSession{
			session("u3", "g1", 10, ""),
			session("u1", "g1", 10, ""),
			session("u2", "g1", 10, ""),
		}

		entries := buildPlaytimeLeaderboard(sessions, users, "", 10)

		require.Equal(t, "Lars Bergström", entries[0].UserName)
		require.Equal(t, "Anders Svensson", entries[1].UserName)
		require.Equal(t, "Ingrid Norström", entries[2].UserName)
	})

	t.Run("limit truncates after sorting", func(t *testing.T) {
		t.Parallel()

		sessions := []model.GameSession{
			session("u1", "g1", 5, ""),
			session("u2", "g1", 50, ""),
			session("u3", "g1", 20, ""),
		}

		entries := buildPlaytimeLeaderboard(sessions, users, "", 2)

		require.Len(t, entries, 2)
		require.Equal(t, "Ingrid Norström", entries[0].UserName)
		require.Equal(t, "Lars Bergström", entries[1].UserName)
	})
}

func TestBuildWinRateLeaderboard(t *testing.T) {
	t.Parallel()

	users := testUsers()

	withGames := func(userID string, wins, total int) []model.GameSession {
		var sessions []model.GameSession
		for i := 0; i < total; i++ {
			result := model.ResultLoss
			if i < wins {
				result = model.ResultWin
			}
			sessions = append(sessions, session(userID, "g1", 10, result))
		}
		return sessions
	}

	t.Run("excludes users below the minimum sample", func(t *testing.T) {
		t.Parallel()

		sessions := append(withGames("u1", 4, 4), withGames("u2", 3, 6)...)

		entries := buildWinRateLeaderboard(sessions, users, "", 10)

		require.Len(t, entries, 1)
		require.Equal(t, "Ingrid Norström", entries[0].UserName)
		require.Equal(t, 50.0, entries[0].WinRate)
	})

	t.Run("rounds the percentage to two decimals", func(t *testing.T) {
		t.Parallel()

		// 2 wins of 6 games = 33.333...%
		entries := buildWinRateLeaderboard(withGames("u1", 2, 6), users, "", 10)

		require.Len(t, entries, 1)
		require.Equal(t, 33.33, entries[0].WinRate)
		require.Equal(t, 2, entries[0].Wins)
		require.Equal(t, 6, entries[0].TotalGames)
	})

	t.Run("orders by rate descending", func(t *testing.T) {
		t.Parallel()

		sessions := append(withGames("u1", 1, 5), withGames("u2", 4, 5)...)

		entries := buildWinRateLeaderboard(sessions, users, "", 10)

		require.Len(t, entries, 2)
		require.Equal(t, "Ingrid Norström", entries[0].UserName)
		require.Equal(t, 1, entries[0].Rank)
		require.Equal(t, 2, entries[1].Rank)
	})
}

func TestBuildSessionLeaderboard(t *testing.T) {
	t.Parallel()

	users := testUsers()
	games, _ := testGames()

	sessions := []model.GameSession{
		session("u1", "g1", 10, ""),
		session("u2", "g2", 99, ""),
		session("u1", "g2", 50, ""),
	}

	entries := buildSessionLeaderboard(sessions, users, games)

	require.Len(t, entries, 3)
	require.Equal(t, 99.0, entries[0].Minutes)
	require.Equal(t, "Ingrid Norström", entries[0].UserName)
	require.Equal(t, "Tetris", entries[0].GameName)
	require.Equal(t, 50.0, entries[1].Minutes)
	require.Equal(t, 10.0, entries[2].Minutes)

	// Input order must survive; only the copy is sorted.
	require.Equal(t, 10.0, sessions[0].PlayedSeconds)
}

func TestBuildAllUsersLeaderboard(t *testing.T) {
	t.Parallel()

	users := testUsers()

	t.Run("assigns sequential ranks by total minutes", func(t *testing.T) {
		t.Parallel()

		sessions := []model.GameSession{
			session("u1", "g1", 10, ""),
			session("u2", "g1", 40, ""),
			session("u3", "g2", 25, ""),
			session("u1", "g2", 20, ""),
		}

		entries := buildAllUsersLeaderboard(sessions, users)

		require.Len(t, entries, 3)
		require.Equal(t, []int{1, 2, 3}, []int{entries[0].Rank, entries[1].Rank, entries[2].Rank})
		require.Equal(t, "Ingrid Norström", entries[0].UserName)
		require.Equal(t, 40.0, entries[0].TotalMinutes)
		require.Equal(t, 30.0, entries[1].TotalMinutes)
		require.Equal(t, "Lars Bergström", entries[2].UserName)
	})

	t.Run("unknown user id falls back to placeholder name", func(t *testing.T) {
		t.Parallel()

		entries := buildAllUsersLeaderboard([]model.GameSession{session("ghost", "g1", 5, "")}, users)

		require.Len(t, entries, 1)
		require.Equal(t, "Unknown User", entries[0].UserName)
	})
}

func TestBuildGameFrequency(t *testing.T) {
	t.Parallel()

	users := testUsers()
	_, catalog := testGames()

	sessions := []model.GameSession{
		session("u1", "g1", 10, ""),
		session("u1", "g1", 15, ""),
		session("u2", "g1", 5, ""),
	}

	data := buildGameFrequency(catalog, sessions, users)

	require.Len(t, data, 3)

	pacman := data["Pac-man"]
	require.Len(t, pacman, 2)
	require.Equal(t, "Anders Svensson", pacman[0].User)
	require.Equal(t, 2, pacman[0].TimesPlayed)
	require.Equal(t, 25.0, pacman[0].TotalMinutes)
	require.Equal(t, 1, pacman[1].TimesPlayed)

	// Unplayed games are present with an empty list, not absent.
	require.NotNil(t, data["Tetris"])
	require.Empty(t, data["Tetris"])
	require.Empty(t, data["Asteroids"])
}

func TestBuildWeeklySeries(t *testing.T) {
	t.Parallel()

	users := testUsers()
	games, _ := testGames()
	now := time.Date(2025, 3, 14, 15, 0, 0, 0, time.UTC)

	at := func(daysAgo int, userID string, minutes float64) model.GameSession {
		s := session(userID, "g1", minutes, "")
		s.StartTime = now.AddDate(0, 0, -daysAgo).Add(-2 * time.Hour)
		return s
	}

	t.Run("seven buckets ending today", func(t *testing.T) {
		t.Parallel()

		resp := buildWeeklySeries("Pac-man", nil, users, games, now)

		require.Equal(t, "Pac-man", resp.GameName)
		require.Len(t, resp.Days, 7)
		require.Equal(t, "2025-03-08", resp.Days[0].Date)
		require.Equal(t, "2025-03-14", resp.Days[6].Date)
		require.Equal(t, "Fri", resp.Days[6].Day)
	})

	t.Run("dense grid with zero fill for every player", func(t *testing.T) {
		t.Parallel()

		sessions := []model.GameSession{
			at(0, "u1", 30),
			at(3, "u2", 12),
			at(3, "u1", 8),
		}

		resp := buildWeeklySeries("Pac-man", sessions, users, games, now)

		today := resp.Days[6].Minutes
		require.Equal(t, 30.0, today["Anders Svensson"])
		require.Equal(t, 0.0, today["Ingrid Norström"])

		threeAgo := resp.Days[3].Minutes
		require.Equal(t, 8.0, threeAgo["Anders Svensson"])
		require.Equal(t, 12.0, threeAgo["Ingrid Norström"])

		// Every player appears on every day.
		for _, day := range resp.Days {
			require.Len(t, day.Minutes, 2)
		}
	})

	t.Run("sessions of other games are ignored", func(t *testing.T) {
		t.Parallel()

		other := session("u1", "g2", 100, "")
		other.StartTime = now

		resp := buildWeeklySeries("Pac-man", []model.GameSession{other}, users, games, now)

		for _, day := range resp.Days {
			require.Empty(t, day.Minutes)
		}
	})

	t.Run("sessions outside the window are excluded", func(t *testing.T) {
		t.Parallel()

		resp := buildWeeklySeries("Pac-man", []model.GameSession{at(8, "u1", 45)}, users, games, now)

		for _, day := range resp.Days {
			require.Equal(t, 0.0, day.Minutes["Anders Svensson"])
		}
	})
}

func TestGetWeeklySeriesRequiresGameName(t *testing.T) {
	t.Parallel()

	svc := &StatsService{}

	_, err := svc.GetWeeklySeries("")
	require.Error(t, err)

	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	require.Equal(t, 400, appErr.StatusCode)
}

func TestTruncateGroups(t *testing.T) {
	t.Parallel()

	groups := make([]userGroup, 15)

	require.Len(t, truncateGroups(groups, 5), 5)
	require.Len(t, truncateGroups(groups, 0), 10)
	require.Len(t, truncateGroups(groups, 20), 15)
}
