package dto

import (
	"encoding/json"
	"time"
)

type LogEventRequest struct {
	EventType string          `json:"event_type" validate:"required,max=100"`
	EventData json.RawMessage `json:"event_data,omitempty"`
}

func (r LogEventRequest) Validate() error {
	return GetValidator().Struct(r)
}

// Payload shapes for the known event types. Anything else is stored as an
// opaque blob after a well-formedness check.
type GameEventData struct {
	GameID string `json:"game_id" validate:"required"`
	Score  *int   `json:"score,omitempty"`
}

func (d GameEventData) Validate() error {
	return GetValidator().Struct(d)
}

type FilmEventData struct {
	FilmID string `json:"film_id" validate:"required"`
}

func (d FilmEventData) Validate() error {
	return GetValidator().Struct(d)
}

type AnalyticsResponse struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	EventType string          `json:"event_type"`
	EventData json.RawMessage `json:"event_data,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

type AnalyticsStatsResponse struct {
	TotalUsers     int64     `json:"total_users"`
	ActiveUsers    int64     `json:"active_users"`
	TotalGames     int64     `json:"total_games"`
	TotalFilms     int64     `json:"total_films"`
	CompletedGames int64     `json:"completed_games"`
	Timestamp      time.Time `json:"timestamp"`
}
