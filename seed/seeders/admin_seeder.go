package seeders

import (
	"log"
	"os"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/qazkids/qazkids_api/model"
	"github.com/qazkids/qazkids_api/shared"
)

// AdminSeeder handles seeding the default admin user
type AdminSeeder struct {
	db *gorm.DB
}

func NewAdminSeeder(db *gorm.DB) *AdminSeeder {
	return &AdminSeeder{db: db}
}

func (s *AdminSeeder) SeedAdmin() error {
	var count int64
	if err := s.db.Model(&model.User{}).Where("role = ?", shared.RoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Admin user already exists, skipping admin seeding")
		return nil
	}

	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return err
	}

	admin := model.User{
		ID:           id.String(),
		Username:     "admin",
		Email:        "admin@qazkids.kz",
		PasswordHash: string(hash),
		FullName:     "QazKids Admin",
		Role:         shared.RoleAdmin,
		IsActive:     true,
	}

	if err := s.db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("Created admin user: %s", admin.Email)
	return nil
}
