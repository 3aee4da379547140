package model

import "time"

type User struct {
	ID           string `json:"id" gorm:"primaryKey"`
	Username     string `json:"username" gorm:"unique;not null"`
	Email        string `json:"email" gorm:"unique;not null"`
	PasswordHash string `json:"-" gorm:"not null"`
	FullName     string `json:"full_name"`
	Age          *int   `json:"age"`
	// student, parent, teacher, admin
	Role      string    `json:"role" gorm:"default:student"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
