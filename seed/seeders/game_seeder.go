package seeders

import (
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/qazkids/qazkids_api/model"
)

// GameSeeder handles seeding the demo game catalog
type GameSeeder struct {
	db *gorm.DB
}

func NewGameSeeder(db *gorm.DB) *GameSeeder {
	return &GameSeeder{db: db}
}

func (s *GameSeeder) SeedGames() error {
	games := []model.Game{
		{
			Title:       "Викторина: Казахские традиции",
			Description: "Узнайте о казахской культуре, традициях и истории",
			Category:    "quiz",
			Difficulty:  "easy",
			Duration:    10,
			ImageURL:    "/images/card-kz-1.jpg",
			Content:     json.RawMessage(`{"questions": [{"q": "Что такое юрта?", "a": "Жилище кочевников"}]}`),
			MaxScore:    100,
		},
		{
			Title:       "Словарь казахского языка",
			Description: "Учите новые слова на казахском языке через игру",
			Category:    "word-game",
			Difficulty:  "medium",
			Duration:    15,
			ImageURL:    "/images/card-kz-2.jpg",
			Content:     json.RawMessage(`{"words": [{"en": "hello", "kz": "сәлем"}]}`),
			MaxScore:    100,
		},
		{
			Title:       "Математические пазлы",
			Description: "Решайте математические задачи в увлекательной форме",
			Category:    "puzzle",
			Difficulty:  "medium",
			Duration:    20,
			ImageURL:    "/images/card-modern-1.jpg",
			Content:     json.RawMessage(`{"puzzles": []}`),
			MaxScore:    100,
		},
		{
			Title:       "Память: Казахская история",
			Description: "Игра на память с картинками из казахской истории",
			Category:    "memory",
			Difficulty:  "easy",
			Duration:    10,
			ImageURL:    "/images/card-author.jpg",
			Content:     json.RawMessage(`{"cards": []}`),
			MaxScore:    100,
		},
		{
			Title:       "Викторина: География Казахстана",
			Description: "Тестируйте знания о географии нашей страны",
			Category:    "quiz",
			Difficulty:  "hard",
			Duration:    15,
			ImageURL:    "/images/card-cinema-1.jpg",
			Content:     json.RawMessage(`{"questions": []}`),
			MaxScore:    100,
		},
	}

	created := 0
	for _, game := range games {
		var count int64
		if err := s.db.Model(&model.Game{}).Where("title = ?", game.Title).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		game.ID = id.String()

		if err := s.db.Create(&game).Error; err != nil {
			return err
		}
		created++
	}

	log.Printf("Seeded %d games (%d already present)", created, len(games)-created)
	return nil
}
