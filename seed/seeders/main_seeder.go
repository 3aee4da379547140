package seeders

import (
	"log"

	"gorm.io/gorm"
)

// MainSeeder coordinates all seeding operations
type MainSeeder struct {
	db *gorm.DB
}

func NewMainSeeder(db *gorm.DB) *MainSeeder {
	return &MainSeeder{db: db}
}

// SeedAll runs all seeders. Each seeder is idempotent, rows that
// already exist are skipped.
func (s *MainSeeder) SeedAll() error {
	log.Println("Starting database seeding...")

	if err := NewAdminSeeder(s.db).SeedAdmin(); err != nil {
		log.Printf("Admin seeding failed: %v", err)
		return err
	}

	if err := NewGameSeeder(s.db).SeedGames(); err != nil {
		log.Printf("Game seeding failed: %v", err)
		return err
	}

	if err := NewFilmSeeder(s.db).SeedFilms(); err != nil {
		log.Printf("Film seeding failed: %v", err)
		return err
	}

	if err := NewContentSeeder(s.db).SeedContent(); err != nil {
		log.Printf("Content seeding failed: %v", err)
		return err
	}

	log.Println("Database seeding completed successfully!")
	return nil
}

func (s *MainSeeder) SeedGamesOnly() error {
	return NewGameSeeder(s.db).SeedGames()
}

func (s *MainSeeder) SeedFilmsOnly() error {
	return NewFilmSeeder(s.db).SeedFilms()
}

func (s *MainSeeder) SeedContentOnly() error {
	return NewContentSeeder(s.db).SeedContent()
}

func (s *MainSeeder) SeedAdminOnly() error {
	return NewAdminSeeder(s.db).SeedAdmin()
}
