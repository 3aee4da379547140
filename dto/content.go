package dto

import "time"

// ==================== CONTENT DTOs ====================

type CreateContentRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Slug        string `json:"slug" validate:"required,slug,max=200"`
	Body        string `json:"body,omitempty"`
	ContentType string `json:"content_type" validate:"required,oneof=article lesson guide"`
}

func (r CreateContentRequest) Validate() error {
	return GetValidator().Struct(r)
}

type ContentListRequest struct {
	ContentType string `query:"content_type" validate:"omitempty,oneof=article lesson guide"`
	Skip        int    `query:"skip" validate:"omitempty,gte=0"`
	Limit       int    `query:"limit" validate:"omitempty,gt=0,lte=100"`
}

func (r ContentListRequest) Validate() error {
	return GetValidator().Struct(r)
}

type ContentResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Body        string     `json:"body,omitempty"`
	ContentType string     `json:"content_type"`
	Status      string     `json:"status"`
	Author      string     `json:"author,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}
