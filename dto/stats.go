package dto

// GameStat is one per-game row of a user's breakdown. MinutesPlayed carries
// the raw playedSeconds sum; the display layer owns the unit convention.
type GameStat struct {
	GameName      string  `json:"gameName"`
	IconURL       string  `json:"iconUrl"`
	MinutesPlayed float64 `json:"minutesPlayed"`
}

type UserStatsResponse struct {
	GameStats    []GameStat `json:"gameStats"`
	TotalMinutes float64    `json:"totalMinutes"`
}

type WinsLeaderboardEntry struct {
	Rank       int    `json:"rank"`
	UserID     string `json:"userId"`
	UserName   string `json:"userName"`
	TotalWins  int    `json:"totalWins"`
	TotalGames int    `json:"totalGames"`
}

type PlaytimeLeaderboardEntry struct {
	Rank          int     `json:"rank"`
	UserID        string  `json:"userId"`
	UserName      string  `json:"userName"`
	TotalPlaytime float64 `json:"totalPlaytime"`
	TotalGames    int     `json:"totalGames"`
}

type WinRateLeaderboardEntry struct {
	Rank       int     `json:"rank"`
	UserID     string  `json:"userId"`
	UserName   string  `json:"userName"`
	Wins       int     `json:"wins"`
	TotalGames int     `json:"totalGames"`
	WinRate    float64 `json:"winRate"`
}

type SessionLeaderboardEntry struct {
	UserName string  `json:"userName"`
	GameName string  `json:"gameName"`
	Minutes  float64 `json:"minutes"`
}

type UserTotalEntry struct {
	UserID       string  `json:"userId"`
	UserName     string  `json:"userName"`
	TotalMinutes float64 `json:"totalMinutes"`
	Rank         int     `json:"rank"`
}

type GameFrequencyEntry struct {
	User         string  `json:"user"`
	TimesPlayed  int     `json:"timesPlayed"`
	TotalMinutes float64 `json:"totalMinutes"`
}

type WeeklyDay struct {
	Day     string             `json:"day"`
	Date    string             `json:"date"`
	Minutes map[string]float64 `json:"minutes"`
}

type WeeklySeriesResponse struct {
	GameName string      `json:"gameName"`
	Days     []WeeklyDay `json:"days"`
}
