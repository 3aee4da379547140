package services

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qazkids/qazkids_api/dto"
	"github.com/qazkids/qazkids_api/shared"
)

func newUserService(t *testing.T) (*UserService, *PostgresService) {
	t.Helper()
	store := newTestStore(t)
	return &UserService{sqlSvc: store}, store
}

func TestGetProfileNotFound(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.GetProfile("missing")
	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusNotFound, appErr.StatusCode)
}

func TestUpdateProfileAppliesNameAndAge(t *testing.T) {
	svc, store := newUserService(t)
	user := createTestUser(t, store, "aruzhan", "aruzhan@example.com", shared.RoleStudent)

	age := 9
	resp, err := svc.UpdateProfile(user.ID, dto.UpdateProfileRequest{
		FullName: "Aruzhan S.",
		Age:      &age,
	})
	require.NoError(t, err)
	assert.Equal(t, "Aruzhan S.", resp.FullName)
	require.NotNil(t, resp.Age)
	assert.Equal(t, 9, *resp.Age)
}

func TestUpdateProfileIgnoresEmail(t *testing.T) {
	svc, store := newUserService(t)
	user := createTestUser(t, store, "aruzhan", "aruzhan@example.com", shared.RoleStudent)

	resp, err := svc.UpdateProfile(user.ID, dto.UpdateProfileRequest{
		FullName: "Aruzhan S.",
		Email:    "new@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "aruzhan@example.com", resp.Email)

	stored, err := store.Users().GetUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "aruzhan@example.com", stored.Email)
}

func TestUpdateProfileKeepsUnsetFields(t *testing.T) {
	svc, store := newUserService(t)
	user := createTestUser(t, store, "aruzhan", "aruzhan@example.com", shared.RoleStudent)

	age := 9
	_, err := svc.UpdateProfile(user.ID, dto.UpdateProfileRequest{FullName: "Aruzhan S.", Age: &age})
	require.NoError(t, err)

	// Partial update leaves the other field alone
	resp, err := svc.UpdateProfile(user.ID, dto.UpdateProfileRequest{FullName: "Aruzhan Serikova"})
	require.NoError(t, err)
	assert.Equal(t, "Aruzhan Serikova", resp.FullName)
	require.NotNil(t, resp.Age)
	assert.Equal(t, 9, *resp.Age)
}
