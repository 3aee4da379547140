package dto

import "time"

// ==================== PROGRESS DTOs ====================

type SaveProgressRequest struct {
	GameID string `json:"game_id" validate:"required"`
	Score  int    `json:"score" validate:"gte=0"`
}

func (r SaveProgressRequest) Validate() error {
	return GetValidator().Struct(r)
}

type ProgressResponse struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	GameID      string     `json:"game_id"`
	Score       int        `json:"score"`
	Attempts    int        `json:"attempts"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	StartedAt   time.Time  `json:"started_at"`
}

// ==================== ACHIEVEMENT DTOs ====================

type AchievementResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	IconURL     string    `json:"icon_url,omitempty"`
	BadgeType   string    `json:"badge_type"`
	EarnedAt    time.Time `json:"earned_at"`
}

// ==================== LOCATION DTOs ====================

// Coordinates are pointers so the zero values (equator, prime meridian)
// pass validation while absent fields still fail it.
type SaveLocationRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
	Accuracy  float64  `json:"accuracy,omitempty" validate:"omitempty,gte=0"`
}

func (r SaveLocationRequest) Validate() error {
	return GetValidator().Struct(r)
}

type LocationResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Accuracy  float64   `json:"accuracy"`
	Timestamp time.Time `json:"timestamp"`
}
