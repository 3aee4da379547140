// services/user.go
package services

import (
	"errors"

	"github.com/alphabatem/common/context"
	"gorm.io/gorm"

	"github.com/qazkids/qazkids_api/dto"
	"github.com/qazkids/qazkids_api/model"
	"github.com/qazkids/qazkids_api/shared"
)

type UserService struct {
	context.DefaultService

	sqlSvc *PostgresService
}

const USER_SVC = "user_svc"

func (svc UserService) Id() string {
	return USER_SVC
}

func (svc *UserService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *UserService) Start() error {
	svc.sqlSvc = svc.Service(POSTGRES_SVC).(*PostgresService)
	return nil
}

func (svc *UserService) GetProfile(userID string) (*dto.UserResponse, error) {
	user, err := svc.sqlSvc.Users().GetUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(err, "User not found")
		}
		return nil, err
	}
	return mapUserToResponse(user), nil
}

// UpdateProfile only applies full_name and age. The request schema accepts
// an email field for older clients but it has never been applied here.
func (svc *UserService) UpdateProfile(userID string, req dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := svc.sqlSvc.Users().GetUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(err, "User not found")
		}
		return nil, err
	}

	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.Age != nil {
		user.Age = req.Age
	}

	if err := svc.sqlSvc.Users().UpdateUser(user); err != nil {
		return nil, err
	}

	return mapUserToResponse(user), nil
}

func (svc *UserService) GetUser(userID string) (*dto.UserResponse, error) {
	user, err := svc.sqlSvc.Users().GetUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(err, "User not found")
		}
		return nil, err
	}
	return mapUserToResponse(user), nil
}

func mapUserToResponse(user *model.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FullName:  user.FullName,
		Age:       user.Age,
		Role:      user.Role,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	}
}
