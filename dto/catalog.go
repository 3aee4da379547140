package dto

import (
	"encoding/json"
	"time"
)

// ==================== GAME DTOs ====================

type CreateGameRequest struct {
	Title       string          `json:"title" validate:"required,max=200"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category" validate:"required"`
	Difficulty  string          `json:"difficulty,omitempty" validate:"omitempty,oneof=easy medium hard"`
	Duration    int             `json:"duration_minutes,omitempty" validate:"omitempty,gt=0"`
	ImageURL    string          `json:"image_url,omitempty" validate:"omitempty,url"`
	Content     json.RawMessage `json:"content" validate:"required"`
	MaxScore    int             `json:"max_score,omitempty" validate:"omitempty,gt=0"`
}

func (r CreateGameRequest) Validate() error {
	return GetValidator().Struct(r)
}

type GameListRequest struct {
	Category   string `query:"category"`
	Difficulty string `query:"difficulty" validate:"omitempty,oneof=easy medium hard"`
}

func (r GameListRequest) Validate() error {
	return GetValidator().Struct(r)
}

type GameResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category"`
	Difficulty  string          `json:"difficulty"`
	Duration    int             `json:"duration_minutes"`
	ImageURL    string          `json:"image_url,omitempty"`
	Content     json.RawMessage `json:"content,omitempty"`
	MaxScore    int             `json:"max_score"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ==================== FILM DTOs ====================

type CreateFilmRequest struct {
	Title        string `json:"title" validate:"required,max=200"`
	Description  string `json:"description,omitempty"`
	Duration     int    `json:"duration_minutes,omitempty" validate:"omitempty,gt=0"`
	VideoURL     string `json:"video_url" validate:"required,url"`
	ThumbnailURL string `json:"thumbnail_url,omitempty" validate:"omitempty,url"`
	Category     string `json:"category" validate:"required"`
}

func (r CreateFilmRequest) Validate() error {
	return GetValidator().Struct(r)
}

type FilmListRequest struct {
	Category string `query:"category"`
	Skip     int    `query:"skip" validate:"omitempty,gte=0"`
	Limit    int    `query:"limit" validate:"omitempty,gt=0,lte=100"`
}

func (r FilmListRequest) Validate() error {
	return GetValidator().Struct(r)
}

type FilmResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	Duration     int       `json:"duration_minutes"`
	VideoURL     string    `json:"video_url"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
	Category     string    `json:"category"`
	Rating       float64   `json:"rating"`
	Views        int       `json:"views"`
	CreatedAt    time.Time `json:"created_at"`
}
