package services

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qazkids/qazkids_api/dto"
	"github.com/qazkids/qazkids_api/model"
	"github.com/qazkids/qazkids_api/shared"
)

func newProgressService(t *testing.T) (*ProgressService, *PostgresService) {
	t.Helper()
	store := newTestStore(t)
	return &ProgressService{sqlSvc: store}, store
}

func TestSaveProgressUnknownGame(t *testing.T) {
	svc, store := newProgressService(t)
	user := createTestUser(t, store, "aruzhan", "aruzhan@example.com", shared.RoleStudent)

	_, err := svc.SaveProgress(user.ID, dto.SaveProgressRequest{GameID: "missing", Score: 50})
	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusNotFound, appErr.StatusCode)
}

func TestSaveProgressScoreAndAttempts(t *testing.T) {
	svc, store := newProgressService(t)
	user := createTestUser(t, store, "aruzhan", "aruzhan@example.com", shared.RoleStudent)
	game := createTestGame(t, store, "Quiz")

	// First attempt below the threshold
	resp, err := svc.SaveProgress(user.ID, dto.SaveProgressRequest{GameID: game.ID, Score: 50})
	require.NoError(t, err)
	assert.Equal(t, 50, resp.Score)
	assert.Equal(t, 1, resp.Attempts)
	assert.False(t, resp.Completed)
	assert.Nil(t, resp.CompletedAt)

	// Passing attempt latches completion
	resp, err = svc.SaveProgress(user.ID, dto.SaveProgressRequest{GameID: game.ID, Score: 80})
	require.NoError(t, err)
	assert.Equal(t, 80, resp.Score)
	assert.Equal(t, 2, resp.Attempts)
	assert.True(t, resp.Completed)
	require.NotNil(t, resp.CompletedAt)
	firstCompletion := *resp.CompletedAt

	// Lower score keeps the maximum but still counts the attempt,
	// and completion does not unlatch
	resp, err = svc.SaveProgress(user.ID, dto.SaveProgressRequest{GameID: game.ID, Score: 60})
	require.NoError(t, err)
	assert.Equal(t, 80, resp.Score)
	assert.Equal(t, 3, resp.Attempts)
	assert.True(t, resp.Completed)
	require.NotNil(t, resp.CompletedAt)
	assert.Equal(t, firstCompletion, *resp.CompletedAt)
}

func TestSaveProgressRestampsCompletedAt(t *testing.T) {
	svc, store := newProgressService(t)
	user := createTestUser(t, store, "aruzhan", "aruzhan@example.com", shared.RoleStudent)
	game := createTestGame(t, store, "Quiz")

	resp, err := svc.SaveProgress(user.ID, dto.SaveProgressRequest{GameID: game.ID, Score: 90})
	require.NoError(t, err)
	require.NotNil(t, resp.CompletedAt)
	first := *resp.CompletedAt

	// Every passing submission stamps a fresh completion time
	resp, err = svc.SaveProgress(user.ID, dto.SaveProgressRequest{GameID: game.ID, Score: 95})
	require.NoError(t, err)
	require.NotNil(t, resp.CompletedAt)
	assert.False(t, resp.CompletedAt.Before(first))
	assert.Equal(t, 95, resp.Score)
}

func TestSaveProgressThresholdIsExclusive(t *testing.T) {
	svc, store := newProgressService(t)
	user := createTestUser(t, store, "aruzhan", "aruzhan@example.com", shared.RoleStudent)
	game := createTestGame(t, store, "Quiz")

	// Exactly 70 does not complete; 71 does
	resp, err := svc.SaveProgress(user.ID, dto.SaveProgressRequest{GameID: game.ID, Score: 70})
	require.NoError(t, err)
	assert.False(t, resp.Completed)

	resp, err = svc.SaveProgress(user.ID, dto.SaveProgressRequest{GameID: game.ID, Score: 71})
	require.NoError(t, err)
	assert.True(t, resp.Completed)
}

func TestGetUserProgressIsPerUser(t *testing.T) {
	svc, store := newProgressService(t)
	alice := createTestUser(t, store, "alice", "alice@example.com", shared.RoleStudent)
	bob := createTestUser(t, store, "bob", "bob@example.com", shared.RoleStudent)
	game := createTestGame(t, store, "Quiz")

	_, err := svc.SaveProgress(alice.ID, dto.SaveProgressRequest{GameID: game.ID, Score: 40})
	require.NoError(t, err)

	aliceRows, err := svc.GetUserProgress(alice.ID)
	require.NoError(t, err)
	assert.Len(t, aliceRows, 1)

	bobRows, err := svc.GetUserProgress(bob.ID)
	require.NoError(t, err)
	assert.Empty(t, bobRows)
}

func TestRecentLocationsCapAndOrder(t *testing.T) {
	svc, store := newProgressService(t)
	user := createTestUser(t, store, "aruzhan", "aruzhan@example.com", shared.RoleStudent)

	for i := 0; i < 15; i++ {
		_, err := svc.SaveLocation(user.ID, dto.SaveLocationRequest{
			Latitude:  f64(43.2 + float64(i)*0.001),
			Longitude: f64(76.9),
		})
		require.NoError(t, err)
	}

	locations, err := svc.GetRecentLocations(user.ID)
	require.NoError(t, err)
	require.Len(t, locations, LocationHistoryLimit)

	// Newest first
	for i := 1; i < len(locations); i++ {
		assert.False(t, locations[i-1].Timestamp.Before(locations[i].Timestamp))
	}
	assert.InDelta(t, 43.214, locations[0].Latitude, 1e-9)
}

func TestSaveLocationAcceptsZeroCoordinates(t *testing.T) {
	svc, store := newProgressService(t)
	user := createTestUser(t, store, "aruzhan", "aruzhan@example.com", shared.RoleStudent)

	// Equator / prime meridian intersection is a valid point
	req := dto.SaveLocationRequest{Latitude: f64(0), Longitude: f64(0)}
	require.NoError(t, req.Validate())

	resp, err := svc.SaveLocation(user.ID, req)
	require.NoError(t, err)
	assert.Zero(t, resp.Latitude)
	assert.Zero(t, resp.Longitude)
}

func TestAchievementsRoundTrip(t *testing.T) {
	svc, store := newProgressService(t)
	user := createTestUser(t, store, "aruzhan", "aruzhan@example.com", shared.RoleStudent)

	_, err := store.Progress().CreateAchievement(&model.Achievement{
		UserID:      user.ID,
		Title:       "First Steps",
		Description: "Completed your first game",
		BadgeType:   shared.BadgeBronze,
	})
	require.NoError(t, err)

	achievements, err := svc.GetUserAchievements(user.ID)
	require.NoError(t, err)
	require.Len(t, achievements, 1)
	assert.Equal(t, "First Steps", achievements[0].Title)
	assert.Equal(t, shared.BadgeBronze, achievements[0].BadgeType)
}
