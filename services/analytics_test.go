package services

import (
	"encoding/json"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qazkids/qazkids_api/dto"
	"github.com/qazkids/qazkids_api/model"
	"github.com/qazkids/qazkids_api/shared"
)

func newAnalyticsService(t *testing.T) (*AnalyticsService, *PostgresService) {
	t.Helper()
	store := newTestStore(t)
	return &AnalyticsService{sqlSvc: store}, store
}

func TestLogEventDefaultsEmptyData(t *testing.T) {
	svc, _ := newAnalyticsService(t)

	resp, err := svc.LogEvent("user-1", dto.LogEventRequest{EventType: "page_view"})
	require.NoError(t, err)
	assert.Equal(t, "page_view", resp.EventType)
	assert.JSONEq(t, "{}", string(resp.EventData))
	assert.False(t, resp.Timestamp.IsZero())
}

func TestLogEventRejectsMalformedJSON(t *testing.T) {
	svc, _ := newAnalyticsService(t)

	_, err := svc.LogEvent("user-1", dto.LogEventRequest{
		EventType: "page_view",
		EventData: json.RawMessage(`{"broken"`),
	})
	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusBadRequest, appErr.StatusCode)
}

func TestLogEventTypedPayloads(t *testing.T) {
	svc, _ := newAnalyticsService(t)

	// Game events require a game_id
	_, err := svc.LogEvent("user-1", dto.LogEventRequest{
		EventType: shared.EventGameStart,
		EventData: json.RawMessage(`{"score": 50}`),
	})
	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusBadRequest, appErr.StatusCode)

	resp, err := svc.LogEvent("user-1", dto.LogEventRequest{
		EventType: shared.EventGameComplete,
		EventData: json.RawMessage(`{"game_id": "g-1", "score": 88}`),
	})
	require.NoError(t, err)
	assert.Equal(t, shared.EventGameComplete, resp.EventType)

	// Film events require a film_id
	_, err = svc.LogEvent("user-1", dto.LogEventRequest{
		EventType: shared.EventFilmView,
		EventData: json.RawMessage(`{}`),
	})
	_, ok = shared.GetAppError(err)
	require.True(t, ok)

	_, err = svc.LogEvent("user-1", dto.LogEventRequest{
		EventType: shared.EventFilmView,
		EventData: json.RawMessage(`{"film_id": "f-1"}`),
	})
	require.NoError(t, err)

	// Unknown event types are stored opaque
	_, err = svc.LogEvent("user-1", dto.LogEventRequest{
		EventType: "button_click",
		EventData: json.RawMessage(`{"button": "play"}`),
	})
	require.NoError(t, err)
}

func TestGetStatsCounts(t *testing.T) {
	svc, store := newAnalyticsService(t)
	progressSvc := &ProgressService{sqlSvc: store}

	active := createTestUser(t, store, "alice", "alice@example.com", shared.RoleStudent)
	inactive := createTestUser(t, store, "bob", "bob@example.com", shared.RoleStudent)
	err := store.Db().Table("users").Where("id = ?", inactive.ID).Update("is_active", false).Error
	require.NoError(t, err)

	game := createTestGame(t, store, "Quiz")
	_, err = store.Catalog().CreateFilm(&model.Film{
		Title:    "Nature of Kazakhstan",
		VideoURL: "https://example.com/video.mp4",
		Category: "nature",
	})
	require.NoError(t, err)

	_, err = progressSvc.SaveProgress(active.ID, dto.SaveProgressRequest{GameID: game.ID, Score: 90})
	require.NoError(t, err)

	stats, err := svc.GetStats()
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalUsers)
	assert.Equal(t, int64(1), stats.ActiveUsers)
	assert.Equal(t, int64(1), stats.TotalGames)
	assert.Equal(t, int64(1), stats.TotalFilms)
	assert.Equal(t, int64(1), stats.CompletedGames)
	assert.False(t, stats.Timestamp.IsZero())
}
