// model/progress.go
package model

import "time"

// Progress tracks per-user per-game results. One row per (user, game):
// score is the running maximum, attempts increments on every submission,
// completed latches once any submitted score passes the threshold.
type Progress struct {
	ID          string     `json:"id" gorm:"primaryKey"`
	UserID      string     `json:"user_id" gorm:"not null;uniqueIndex:idx_progress_user_game"`
	GameID      string     `json:"game_id" gorm:"not null;uniqueIndex:idx_progress_user_game"`
	Score       int        `json:"score" gorm:"default:0"`
	Attempts    int        `json:"attempts" gorm:"default:1"`
	Completed   bool       `json:"completed" gorm:"default:false"`
	CompletedAt *time.Time `json:"completed_at"`
	StartedAt   time.Time  `json:"started_at"`

	User User `json:"-" gorm:"foreignKey:UserID"`
	Game Game `json:"-" gorm:"foreignKey:GameID"`
}

// Achievement rows are append-only; there is no update path
type Achievement struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	UserID      string    `json:"user_id" gorm:"not null"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description" gorm:"type:text"`
	IconURL     string    `json:"icon_url"`
	BadgeType   string    `json:"badge_type"` // bronze, silver, gold, platinum
	EarnedAt    time.Time `json:"earned_at"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}

// Location is an append-only GPS log entry; clients only ever see the
// last 10 per user.
type Location struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"not null;index"`
	Latitude  float64   `json:"latitude" gorm:"not null"`
	Longitude float64   `json:"longitude" gorm:"not null"`
	Accuracy  float64   `json:"accuracy"`
	Timestamp time.Time `json:"timestamp"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}
