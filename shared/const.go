package shared

const (
	LeaderboardWins     = "wins"
	LeaderboardPlaytime = "playtime"
	LeaderboardWinRate  = "winRate"

	// MaxSessionSeconds caps wall-clock durations computed on the stop path.
	MaxSessionSeconds = 1800

	// MinGamesForWinRate is the minimum sample size for the win-rate board.
	MinGamesForWinRate = 5

	SearchResultLimit = 10
)
