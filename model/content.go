// model/content.go
package model

import (
	"encoding/json"
	"time"
)

// Content is a CMS entry. New entries always start as drafts and only
// published ones are visible on the public read paths.
type Content struct {
	ID          string     `json:"id" gorm:"primaryKey"`
	Title       string     `json:"title" gorm:"not null"`
	Slug        string     `json:"slug" gorm:"unique;index"`
	Body        string     `json:"body" gorm:"type:text"`
	ContentType string     `json:"content_type"` // article, lesson, guide
	Status      string     `json:"status" gorm:"default:draft"`
	Author      string     `json:"author"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	PublishedAt *time.Time `json:"published_at"`
}

// Analytics is an append-only event log. UserID is informational only,
// no foreign key is enforced.
type Analytics struct {
	ID        string          `json:"id" gorm:"primaryKey"`
	UserID    string          `json:"user_id" gorm:"index"`
	EventType string          `json:"event_type"` // game_start, game_complete, film_view
	EventData json.RawMessage `json:"event_data" gorm:"type:text"`
	Timestamp time.Time       `json:"timestamp"`
}
