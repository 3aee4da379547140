// services/analytics.go
package services

import (
	"encoding/json"
	"time"

	"github.com/alphabatem/common/context"

	"github.com/qazkids/qazkids_api/dto"
	"github.com/qazkids/qazkids_api/model"
	"github.com/qazkids/qazkids_api/shared"
)

// AnalyticsService logs client events and answers the admin stats query.
type AnalyticsService struct {
	context.DefaultService

	sqlSvc *PostgresService
}

const ANALYTICS_SVC = "analytics_svc"

func (svc AnalyticsService) Id() string {
	return ANALYTICS_SVC
}

func (svc *AnalyticsService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *AnalyticsService) Start() error {
	svc.sqlSvc = svc.Service(POSTGRES_SVC).(*PostgresService)
	return nil
}

// LogEvent validates the payload at the boundary: the known event types
// carry a typed shape, anything else is stored opaque as long as it is
// well-formed JSON.
func (svc *AnalyticsService) LogEvent(userID string, req dto.LogEventRequest) (*dto.AnalyticsResponse, error) {
	data := req.EventData
	if len(data) == 0 {
		data = json.RawMessage("{}")
	}
	if !json.Valid(data) {
		return nil, shared.NewBadRequestError(nil, "event_data must be valid JSON")
	}

	switch req.EventType {
	case shared.EventGameStart, shared.EventGameComplete:
		var payload dto.GameEventData
		if err := json.Unmarshal(data, &payload); err != nil {
			return nil, shared.NewBadRequestError(err, "Malformed game event payload")
		}
		if err := payload.Validate(); err != nil {
			return nil, shared.NewBadRequestError(err, "Game events require a game_id")
		}
	case shared.EventFilmView:
		var payload dto.FilmEventData
		if err := json.Unmarshal(data, &payload); err != nil {
			return nil, shared.NewBadRequestError(err, "Malformed film event payload")
		}
		if err := payload.Validate(); err != nil {
			return nil, shared.NewBadRequestError(err, "Film events require a film_id")
		}
	}

	event := &model.Analytics{
		UserID:    userID,
		EventType: req.EventType,
		EventData: data,
	}

	created, err := svc.sqlSvc.Analytics().CreateEvent(event)
	if err != nil {
		return nil, err
	}

	return &dto.AnalyticsResponse{
		ID:        created.ID,
		UserID:    created.UserID,
		EventType: created.EventType,
		EventData: created.EventData,
		Timestamp: created.Timestamp,
	}, nil
}

// GetStats runs full-table counts at request time; nothing is cached.
func (svc *AnalyticsService) GetStats() (*dto.AnalyticsStatsResponse, error) {
	totalUsers, err := svc.sqlSvc.Users().CountUsers()
	if err != nil {
		return nil, err
	}
	activeUsers, err := svc.sqlSvc.Users().CountActiveUsers()
	if err != nil {
		return nil, err
	}
	totalGames, err := svc.sqlSvc.Catalog().CountGames()
	if err != nil {
		return nil, err
	}
	totalFilms, err := svc.sqlSvc.Catalog().CountFilms()
	if err != nil {
		return nil, err
	}
	completed, err := svc.sqlSvc.Progress().CountCompleted()
	if err != nil {
		return nil, err
	}

	return &dto.AnalyticsStatsResponse{
		TotalUsers:     totalUsers,
		ActiveUsers:    activeUsers,
		TotalGames:     totalGames,
		TotalFilms:     totalFilms,
		CompletedGames: completed,
		Timestamp:      time.Now().UTC(),
	}, nil
}
