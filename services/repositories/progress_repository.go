package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/qazkids/qazkids_api/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProgressRepository handles progress, achievement and location rows
type ProgressRepository struct {
	BaseRepository
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

// ==================== PROGRESS ====================

// UpsertProgress applies one score submission for a (user, game) pair in a
// race-safe way. The first submission inserts the row; the unique index on
// (user_id, game_id) turns a concurrent double-insert into the update path.
// The update itself is a single guarded statement: score only ever grows,
// attempts always increments, completed latches on (and completed_at is
// re-stamped on every passing submission).
func (ds *ProgressRepository) UpsertProgress(userID, gameID string, score int, passed bool) (*model.Progress, error) {
	now := time.Now().UTC()

	id, _ := uuid.NewV7()
	row := &model.Progress{
		ID:        id.String(),
		UserID:    userID,
		GameID:    gameID,
		Score:     score,
		Attempts:  1,
		Completed: passed,
		StartedAt: now,
	}
	if passed {
		row.CompletedAt = &now
	}

	res := ds.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "game_id"}},
		DoNothing: true,
	}).Create(row)
	if res.Error != nil {
		return nil, res.Error
	}

	if res.RowsAffected == 0 {
		updates := map[string]interface{}{
			"score":    gorm.Expr("CASE WHEN score >= ? THEN score ELSE ? END", score, score),
			"attempts": gorm.Expr("attempts + 1"),
		}
		if passed {
			updates["completed"] = true
			updates["completed_at"] = now
		}

		err := ds.db.Model(&model.Progress{}).
			Where("user_id = ? AND game_id = ?", userID, gameID).
			Updates(updates).Error
		if err != nil {
			return nil, err
		}
	}

	return ds.GetProgress(userID, gameID)
}

func (ds *ProgressRepository) GetProgress(userID, gameID string) (*model.Progress, error) {
	var progress model.Progress
	if err := ds.db.Where("user_id = ? AND game_id = ?", userID, gameID).First(&progress).Error; err != nil {
		return nil, err
	}
	return &progress, nil
}

func (ds *ProgressRepository) ListUserProgress(userID string) ([]model.Progress, error) {
	var progress []model.Progress
	if err := ds.db.Where("user_id = ?", userID).Order("started_at").Find(&progress).Error; err != nil {
		return nil, err
	}
	return progress, nil
}

func (ds *ProgressRepository) CountCompleted() (int64, error) {
	var count int64
	err := ds.db.Model(&model.Progress{}).Where("completed = ?", true).Count(&count).Error
	return count, err
}

// ==================== ACHIEVEMENTS ====================

func (ds *ProgressRepository) CreateAchievement(achievement *model.Achievement) (*model.Achievement, error) {
	if achievement.ID == "" {
		id, _ := uuid.NewV7()
		achievement.ID = id.String()
	}
	if achievement.EarnedAt.IsZero() {
		achievement.EarnedAt = time.Now().UTC()
	}
	if err := ds.db.Create(achievement).Error; err != nil {
		return nil, err
	}
	return achievement, nil
}

func (ds *ProgressRepository) ListUserAchievements(userID string) ([]model.Achievement, error) {
	var achievements []model.Achievement
	if err := ds.db.Where("user_id = ?", userID).Order("earned_at").Find(&achievements).Error; err != nil {
		return nil, err
	}
	return achievements, nil
}

// ==================== LOCATIONS ====================

func (ds *ProgressRepository) CreateLocation(location *model.Location) (*model.Location, error) {
	if location.ID == "" {
		id, _ := uuid.NewV7()
		location.ID = id.String()
	}
	if location.Timestamp.IsZero() {
		location.Timestamp = time.Now().UTC()
	}
	if err := ds.db.Create(location).Error; err != nil {
		return nil, err
	}
	return location, nil
}

// ListRecentLocations returns the newest entries first. Older rows stay in
// the table, they are just never served.
func (ds *ProgressRepository) ListRecentLocations(userID string, limit int) ([]model.Location, error) {
	var locations []model.Location
	err := ds.db.Where("user_id = ?", userID).
		Order("timestamp DESC").
		Limit(limit).
		Find(&locations).Error
	if err != nil {
		return nil, err
	}
	return locations, nil
}
