// services/progress.go
package services

import (
	"errors"

	"github.com/alphabatem/common/context"
	"gorm.io/gorm"

	"github.com/qazkids/qazkids_api/dto"
	"github.com/qazkids/qazkids_api/model"
	"github.com/qazkids/qazkids_api/shared"
)

// ProgressService covers game progress, achievements and the GPS log.
type ProgressService struct {
	context.DefaultService

	sqlSvc *PostgresService
}

const PROGRESS_SVC = "progress_svc"

// Clients only ever see the newest entries of the location log.
const LocationHistoryLimit = 10

func (svc ProgressService) Id() string {
	return PROGRESS_SVC
}

func (svc *ProgressService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *ProgressService) Start() error {
	svc.sqlSvc = svc.Service(POSTGRES_SVC).(*PostgresService)
	return nil
}

// ==================== PROGRESS ====================

// SaveProgress records one play of a game. A submission above the
// completion threshold marks the game completed and re-stamps completed_at
// even when it already was; score keeps the running maximum and attempts
// counts every submission, including ones that score lower.
func (svc *ProgressService) SaveProgress(userID string, req dto.SaveProgressRequest) (*dto.ProgressResponse, error) {
	if _, err := svc.sqlSvc.Catalog().GetGame(req.GameID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(err, "Game not found")
		}
		return nil, err
	}

	passed := req.Score > shared.CompletionScoreThreshold
	progress, err := svc.sqlSvc.Progress().UpsertProgress(userID, req.GameID, req.Score, passed)
	if err != nil {
		return nil, err
	}

	resp := mapProgressToResponse(progress)
	return &resp, nil
}

func (svc *ProgressService) GetUserProgress(userID string) ([]dto.ProgressResponse, error) {
	rows, err := svc.sqlSvc.Progress().ListUserProgress(userID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ProgressResponse, len(rows))
	for i := range rows {
		responses[i] = mapProgressToResponse(&rows[i])
	}
	return responses, nil
}

func mapProgressToResponse(progress *model.Progress) dto.ProgressResponse {
	return dto.ProgressResponse{
		ID:          progress.ID,
		UserID:      progress.UserID,
		GameID:      progress.GameID,
		Score:       progress.Score,
		Attempts:    progress.Attempts,
		Completed:   progress.Completed,
		CompletedAt: progress.CompletedAt,
		StartedAt:   progress.StartedAt,
	}
}

// ==================== ACHIEVEMENTS ====================

func (svc *ProgressService) GetUserAchievements(userID string) ([]dto.AchievementResponse, error) {
	rows, err := svc.sqlSvc.Progress().ListUserAchievements(userID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.AchievementResponse, len(rows))
	for i, row := range rows {
		responses[i] = dto.AchievementResponse{
			ID:          row.ID,
			Title:       row.Title,
			Description: row.Description,
			IconURL:     row.IconURL,
			BadgeType:   row.BadgeType,
			EarnedAt:    row.EarnedAt,
		}
	}
	return responses, nil
}

// ==================== LOCATIONS ====================

func (svc *ProgressService) SaveLocation(userID string, req dto.SaveLocationRequest) (*dto.LocationResponse, error) {
	location := &model.Location{
		UserID:    userID,
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
		Accuracy:  req.Accuracy,
	}

	created, err := svc.sqlSvc.Progress().CreateLocation(location)
	if err != nil {
		return nil, err
	}

	resp := mapLocationToResponse(created)
	return &resp, nil
}

func (svc *ProgressService) GetRecentLocations(userID string) ([]dto.LocationResponse, error) {
	rows, err := svc.sqlSvc.Progress().ListRecentLocations(userID, LocationHistoryLimit)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.LocationResponse, len(rows))
	for i := range rows {
		responses[i] = mapLocationToResponse(&rows[i])
	}
	return responses, nil
}

func mapLocationToResponse(location *model.Location) dto.LocationResponse {
	return dto.LocationResponse{
		ID:        location.ID,
		UserID:    location.UserID,
		Latitude:  location.Latitude,
		Longitude: location.Longitude,
		Accuracy:  location.Accuracy,
		Timestamp: location.Timestamp,
	}
}
