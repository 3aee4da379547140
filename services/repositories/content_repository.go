package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/qazkids/qazkids_api/model"
	"github.com/qazkids/qazkids_api/shared"
	"gorm.io/gorm"
)

// ContentRepository handles CMS content rows
type ContentRepository struct {
	BaseRepository
}

func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (ds *ContentRepository) CreateContent(content *model.Content) (*model.Content, error) {
	if content.ID == "" {
		id, _ := uuid.NewV7()
		content.ID = id.String()
	}
	now := time.Now().UTC()
	content.CreatedAt = now
	content.UpdatedAt = now
	if err := ds.db.Create(content).Error; err != nil {
		return nil, err
	}
	return content, nil
}

func (ds *ContentRepository) GetContentBySlug(slug string) (*model.Content, error) {
	var content model.Content
	if err := ds.db.Where("slug = ?", slug).First(&content).Error; err != nil {
		return nil, err
	}
	return &content, nil
}

// GetPublishedBySlug is the public read path; drafts and archived entries
// stay invisible even on an exact slug match.
func (ds *ContentRepository) GetPublishedBySlug(slug string) (*model.Content, error) {
	var content model.Content
	err := ds.db.Where("slug = ? AND status = ?", slug, shared.ContentStatusPublished).
		First(&content).Error
	if err != nil {
		return nil, err
	}
	return &content, nil
}

func (ds *ContentRepository) ListPublished(contentType string, skip, limit int) ([]model.Content, error) {
	query := ds.db.Model(&model.Content{}).Where("status = ?", shared.ContentStatusPublished)
	if contentType != "" {
		query = query.Where("content_type = ?", contentType)
	}

	var contents []model.Content
	err := query.Order("published_at DESC").Offset(skip).Limit(limit).Find(&contents).Error
	if err != nil {
		return nil, err
	}
	return contents, nil
}
