// model/catalog.go
package model

import (
	"encoding/json"
	"time"
)

// Game is a playable activity in the catalog
type Game struct {
	ID          string `json:"id" gorm:"primaryKey"`
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description" gorm:"type:text"`
	Category    string `json:"category"`   // quiz, word-game, puzzle, memory
	Difficulty  string `json:"difficulty"` // easy, medium, hard
	Duration    int    `json:"duration_minutes" gorm:"column:duration_minutes;default:10"`
	ImageURL    string `json:"image_url"`
	// JSON blob with the questions/words/puzzles/cards for the game
	Content   json.RawMessage `json:"content" gorm:"type:text"`
	MaxScore  int             `json:"max_score" gorm:"default:100"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Film is a video catalog entry
type Film struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Title        string    `json:"title" gorm:"not null"`
	Description  string    `json:"description" gorm:"type:text"`
	Duration     int       `json:"duration_minutes" gorm:"column:duration_minutes"`
	VideoURL     string    `json:"video_url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	Category     string    `json:"category"` // history, culture, education, nature
	Rating       float64   `json:"rating" gorm:"default:0"`
	Views        int       `json:"views" gorm:"default:0"`
	CreatedAt    time.Time `json:"created_at"`
}
