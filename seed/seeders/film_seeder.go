package seeders

import (
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/qazkids/qazkids_api/model"
)

// FilmSeeder handles seeding the demo film catalog
type FilmSeeder struct {
	db *gorm.DB
}

func NewFilmSeeder(db *gorm.DB) *FilmSeeder {
	return &FilmSeeder{db: db}
}

func (s *FilmSeeder) SeedFilms() error {
	films := []model.Film{
		{
			Title:        "Мен Қожа Түгімеулі болдым",
			Description:  "Документальный фильм о казахском герое Қожа Түгімеулі",
			Duration:     45,
			VideoURL:     "https://example.com/video1.mp4",
			ThumbnailURL: "/images/image-14.png",
			Category:     "history",
			Rating:       4.8,
			Views:        150,
		},
		{
			Title:        "Казахская кухня: История и традиции",
			Description:  "Учебный фильм о традиционной казахской кухне",
			Duration:     30,
			VideoURL:     "https://example.com/video2.mp4",
			ThumbnailURL: "/images/image-69.png",
			Category:     "culture",
			Rating:       4.6,
			Views:        120,
		},
		{
			Title:        "Великие люди Казахстана",
			Description:  "Серия фильмов о известных казахских писателях и деятелях",
			Duration:     60,
			VideoURL:     "https://example.com/video3.mp4",
			ThumbnailURL: "/images/card-cinema-1.jpg",
			Category:     "education",
			Rating:       4.9,
			Views:        200,
		},
		{
			Title:        "Природа Казахстана",
			Description:  "Красивый фильм о природе и животных Казахстана",
			Duration:     50,
			VideoURL:     "https://example.com/video4.mp4",
			ThumbnailURL: "/images/image-14.png",
			Category:     "nature",
			Rating:       4.7,
			Views:        180,
		},
	}

	created := 0
	for _, film := range films {
		var count int64
		if err := s.db.Model(&model.Film{}).Where("title = ?", film.Title).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		film.ID = id.String()

		if err := s.db.Create(&film).Error; err != nil {
			return err
		}
		created++
	}

	log.Printf("Seeded %d films (%d already present)", created, len(films)-created)
	return nil
}
