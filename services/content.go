// services/content.go
package services

import (
	"errors"
	"fmt"

	"github.com/alphabatem/common/context"
	"gorm.io/gorm"

	"github.com/qazkids/qazkids_api/dto"
	"github.com/qazkids/qazkids_api/model"
	"github.com/qazkids/qazkids_api/shared"
)

// ContentService is the CMS read/write surface. There is no publish
// transition here: entries are born drafts and stay invisible to public
// reads until the status column changes out of band.
type ContentService struct {
	context.DefaultService

	sqlSvc *PostgresService
}

const CONTENT_SVC = "content_svc"

func (svc ContentService) Id() string {
	return CONTENT_SVC
}

func (svc *ContentService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *ContentService) Start() error {
	svc.sqlSvc = svc.Service(POSTGRES_SVC).(*PostgresService)
	return nil
}

func (svc *ContentService) CreateContent(author string, req dto.CreateContentRequest) (*dto.ContentResponse, error) {
	existing, err := svc.sqlSvc.Content().GetContentBySlug(req.Slug)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewConflictError(fmt.Errorf("duplicate slug %q", req.Slug), "Slug already in use")
	}

	content := &model.Content{
		Title:       req.Title,
		Slug:        req.Slug,
		Body:        req.Body,
		ContentType: req.ContentType,
		Status:      shared.ContentStatusDraft,
		Author:      author,
	}

	created, err := svc.sqlSvc.Content().CreateContent(content)
	if err != nil {
		return nil, err
	}

	resp := mapContentToResponse(created)
	return &resp, nil
}

func (svc *ContentService) ListPublished(req dto.ContentListRequest) ([]dto.ContentResponse, error) {
	limit := req.Limit
	if limit == 0 {
		limit = DefaultPageSize
	}

	rows, err := svc.sqlSvc.Content().ListPublished(req.ContentType, req.Skip, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ContentResponse, len(rows))
	for i := range rows {
		responses[i] = mapContentToResponse(&rows[i])
	}
	return responses, nil
}

func (svc *ContentService) GetBySlug(slug string) (*dto.ContentResponse, error) {
	content, err := svc.sqlSvc.Content().GetPublishedBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(err, "Content not found")
		}
		return nil, err
	}

	resp := mapContentToResponse(content)
	return &resp, nil
}

func mapContentToResponse(content *model.Content) dto.ContentResponse {
	return dto.ContentResponse{
		ID:          content.ID,
		Title:       content.Title,
		Slug:        content.Slug,
		Body:        content.Body,
		ContentType: content.ContentType,
		Status:      content.Status,
		Author:      content.Author,
		CreatedAt:   content.CreatedAt,
		UpdatedAt:   content.UpdatedAt,
		PublishedAt: content.PublishedAt,
	}
}
