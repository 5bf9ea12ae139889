package handlers

import (
	"mime/multipart"

	"github.com/retroden/arcade_api/dto"
)

type UserServiceInterface interface {
	GetUsers() ([]dto.UserResponse, error)
	GetUser(id string) (*dto.UserResponse, error)
	CreateUser(req dto.CreateUserRequest, avatar *multipart.FileHeader) (*dto.UserResponse, error)
	UpdateUser(id string, req dto.UpdateUserRequest) (*dto.UserResponse, error)
	DeleteUser(id string) error
	UploadAvatar(userID string, avatar *multipart.FileHeader) (*dto.AvatarUploadResponse, error)
}

type GameServiceInterface interface {
	GetGames() ([]dto.GameResponse, error)
	GetGame(id string) (*dto.GameResponse, error)
	CreateGame(req dto.CreateGameRequest) (*dto.GameResponse, error)
	UpdateGame(id string, req dto.UpdateGameRequest) (*dto.GameResponse, error)
	UploadArtwork(id string, file *multipart.FileHeader) (*dto.GameResponse, error)
}

type SessionServiceInterface interface {
	StartSession(req dto.StartSessionRequest) (*dto.SessionResponse, error)
	StopSession(sessionID string) (*dto.SessionResponse, error)
	LogSession(req dto.LogSessionRequest) (*dto.SessionResponse, error)
	GetSessions() ([]dto.SessionResponse, error)
	GetUserSessions(userID string) ([]dto.SessionResponse, error)
}

type StatsServiceInterface interface {
	GetUserStats(userID string) (*dto.UserStatsResponse, error)
	GetWinsLeaderboard(gameID string, limit int) ([]dto.WinsLeaderboardEntry, error)
	GetPlaytimeLeaderboard(gameID string, limit int) ([]dto.PlaytimeLeaderboardEntry, error)
	GetWinRateLeaderboard(gameID string, limit int) ([]dto.WinRateLeaderboardEntry, error)
	GetSessionLeaderboard() ([]dto.SessionLeaderboardEntry, error)
	GetAllUsersLeaderboard() ([]dto.UserTotalEntry, error)
	GetGameFrequency() (map[string][]dto.GameFrequencyEntry, error)
	GetWeeklySeries(gameName string) (*dto.WeeklySeriesResponse, error)
	GetAllSessionDetails() ([]dto.SessionDetailResponse, error)
}

type SearchServiceInterface interface {
	GlobalSearch(query string) (*dto.SearchResponse, error)
}

type JWTServiceInterface interface {
	MintAdminToken(apiKey string) (string, error)
}

type SeedServiceInterface interface {
	Reseed() error
}
