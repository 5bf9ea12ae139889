package model

import "time"

const (
	ResultWin  = "win"
	ResultLoss = "loss"
)

// GameSession is one record of a user playing one game. A session is either
// open (IsActive, no EndTime) or finalized; finalized sessions are never
// reopened or deleted.
//
// PlayedSeconds carries two unit conventions depending on how the session was
// produced: the stop path writes capped wall-clock seconds, the direct-log
// path stores the client timer value verbatim and every rollup reads it as
// minutes. The aggregation layer never converts between the two.
type GameSession struct {
	ID            string `gorm:"primaryKey"`
	UserID        string `gorm:"not null;index"`
	GameID        string `gorm:"not null;index"`
	StartTime     time.Time
	EndTime       *time.Time
	PlayedSeconds float64
	Result        string
	IsActive      bool
	CreatedAt     time.Time
}
