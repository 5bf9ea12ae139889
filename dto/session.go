package dto

import "time"

type StartSessionRequest struct {
	UserID string `json:"userId" validate:"required"`
	GameID string `json:"gameId" validate:"required"`
}

// LogSessionRequest is the direct-log path: the client-side timer reports a
// finished session in one call. PlayedSeconds is stored verbatim, uncapped.
type LogSessionRequest struct {
	UserID        string  `json:"userId" validate:"required"`
	GameID        string  `json:"gameId" validate:"required"`
	PlayedSeconds float64 `json:"playedSeconds" validate:"gte=0"`
	Result        string  `json:"result" validate:"omitempty,oneof=win loss"`
}

type SessionResponse struct {
	ID            string     `json:"id"`
	UserID        string     `json:"userId"`
	GameID        string     `json:"gameId"`
	StartTime     time.Time  `json:"startTime"`
	EndTime       *time.Time `json:"endTime,omitempty"`
	PlayedSeconds float64    `json:"playedSeconds"`
	Result        string     `json:"result,omitempty"`
	IsActive      bool       `json:"isActive"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// SessionDetailResponse is the denormalized session dump used by the stats
// pages, carrying display names alongside the raw record.
type SessionDetailResponse struct {
	SessionResponse
	UserName string `json:"userName"`
	GameName string `json:"gameName"`
}
