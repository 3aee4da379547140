package seeders

import (
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/qazkids/qazkids_api/model"
	"github.com/qazkids/qazkids_api/shared"
)

// ContentSeeder handles seeding demo CMS pages. Seeded pages are
// published directly so the public endpoints have something to show.
type ContentSeeder struct {
	db *gorm.DB
}

func NewContentSeeder(db *gorm.DB) *ContentSeeder {
	return &ContentSeeder{db: db}
}

func (s *ContentSeeder) SeedContent() error {
	now := time.Now().UTC()

	items := []model.Content{
		{
			Title:       "Как помочь ребёнку учиться эффективнее",
			Slug:        "how-to-help-child-learn",
			Body:        "Практические советы для родителей по поддержке обучения детей...",
			ContentType: "article",
			Author:      "admin",
		},
		{
			Title:       "Казахский язык: Основные фразы",
			Slug:        "kazakh-language-phrases",
			Body:        "Учебный материал с основными казахскими фразами...",
			ContentType: "lesson",
			Author:      "teacher",
		},
		{
			Title:       "Безопасность детей в интернете",
			Slug:        "internet-safety-for-kids",
			Body:        "Руководство по безопасному использованию интернета...",
			ContentType: "guide",
			Author:      "admin",
		},
		{
			Title:       "История Казахского ханства",
			Slug:        "history-of-kazakh-khanate",
			Body:        "Исторический обзор развития Казахского ханства...",
			ContentType: "article",
			Author:      "teacher",
		},
	}

	created := 0
	for _, item := range items {
		var count int64
		if err := s.db.Model(&model.Content{}).Where("slug = ?", item.Slug).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		id, err := uuid.NewV7()
		if err != nil {
			return err
		}

		item.ID = id.String()
		item.Status = shared.ContentStatusPublished
		publishedAt := now
		item.PublishedAt = &publishedAt

		if err := s.db.Create(&item).Error; err != nil {
			return err
		}
		created++
	}

	log.Printf("Seeded %d content pages (%d already present)", created, len(items)-created)
	return nil
}
