package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/qazkids/qazkids_api/model"
	"gorm.io/gorm"
)

// AnalyticsRepository handles the append-only event log
type AnalyticsRepository struct {
	BaseRepository
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (ds *AnalyticsRepository) CreateEvent(event *model.Analytics) (*model.Analytics, error) {
	if event.ID == "" {
		id, _ := uuid.NewV7()
		event.ID = id.String()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	if err := ds.db.Create(event).Error; err != nil {
		return nil, err
	}
	return event, nil
}
