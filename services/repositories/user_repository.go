package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/qazkids/qazkids_api/model"
	"gorm.io/gorm"
)

// UserRepository handles user-related database operations
type UserRepository struct {
	BaseRepository
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (ds *UserRepository) GetUser(userID string) (*model.User, error) {
	var user model.User
	if err := ds.db.Where("id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (ds *UserRepository) GetUserByEmail(email string) (*model.User, error) {
	var user model.User
	if err := ds.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmailOrUsername backs the duplicate check on register.
func (ds *UserRepository) GetUserByEmailOrUsername(email, username string) (*model.User, error) {
	var user model.User
	if err := ds.db.Where("email = ? OR username = ?", email, username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (ds *UserRepository) CreateUser(user *model.User) (*model.User, error) {
	if user.ID == "" {
		id, _ := uuid.NewV7()
		user.ID = id.String()
	}
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	if err := ds.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (ds *UserRepository) UpdateUser(user *model.User) error {
	user.UpdatedAt = time.Now().UTC()
	return ds.db.Save(user).Error
}

// TouchLastActive bumps updated_at; called on every successful login.
func (ds *UserRepository) TouchLastActive(userID string) error {
	return ds.db.Model(&model.User{}).
		Where("id = ?", userID).
		Update("updated_at", time.Now().UTC()).Error
}

func (ds *UserRepository) CountUsers() (int64, error) {
	var count int64
	err := ds.db.Model(&model.User{}).Count(&count).Error
	return count, err
}

func (ds *UserRepository) CountActiveUsers() (int64, error) {
	var count int64
	err := ds.db.Model(&model.User{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}
