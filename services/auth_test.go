package services

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qazkids/qazkids_api/dto"
	"github.com/qazkids/qazkids_api/shared"
)

func TestRegisterCreatesStudentByDefault(t *testing.T) {
	authSvc, store := newTestAuth(t)

	resp, err := authSvc.Register(dto.RegisterRequest{
		Username: "aruzhan",
		Email:    "aruzhan@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)

	user, err := store.Users().GetUserByEmail("aruzhan@example.com")
	require.NoError(t, err)
	assert.Equal(t, shared.RoleStudent, user.Role)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "secret123", user.PasswordHash)
}

func TestRegisterDuplicateEmailOrUsername(t *testing.T) {
	authSvc, _ := newTestAuth(t)

	_, err := authSvc.Register(dto.RegisterRequest{
		Username: "aruzhan",
		Email:    "aruzhan@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	// Same email, different username
	_, err = authSvc.Register(dto.RegisterRequest{
		Username: "someone-else",
		Email:    "aruzhan@example.com",
		Password: "secret123",
	})
	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusBadRequest, appErr.StatusCode)
	assert.Equal(t, "Email or username already registered", appErr.Message)

	// Same username, different email
	_, err = authSvc.Register(dto.RegisterRequest{
		Username: "aruzhan",
		Email:    "other@example.com",
		Password: "secret123",
	})
	appErr, ok = shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, "Email or username already registered", appErr.Message)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	authSvc, _ := newTestAuth(t)

	_, err := authSvc.Register(dto.RegisterRequest{
		Username: "aruzhan",
		Email:    "aruzhan@example.com",
		Password: "secret123",
		Role:     "superuser",
	})
	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusBadRequest, appErr.StatusCode)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	authSvc, _ := newTestAuth(t)

	_, err := authSvc.Register(dto.RegisterRequest{
		Username: "aruzhan",
		Email:    "aruzhan@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, wrongPassword := authSvc.Login(dto.LoginRequest{Email: "aruzhan@example.com", Password: "wrong"})
	_, unknownEmail := authSvc.Login(dto.LoginRequest{Email: "nobody@example.com", Password: "secret123"})

	wpErr, ok := shared.GetAppError(wrongPassword)
	require.True(t, ok)
	ueErr, ok := shared.GetAppError(unknownEmail)
	require.True(t, ok)

	assert.Equal(t, fiber.StatusUnauthorized, wpErr.StatusCode)
	assert.Equal(t, fiber.StatusUnauthorized, ueErr.StatusCode)
	assert.Equal(t, wpErr.Message, ueErr.Message)
	assert.Equal(t, "Invalid email or password", wpErr.Message)
}

func TestLoginSucceeds(t *testing.T) {
	authSvc, _ := newTestAuth(t)

	_, err := authSvc.Register(dto.RegisterRequest{
		Username: "aruzhan",
		Email:    "aruzhan@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	resp, err := authSvc.Login(dto.LoginRequest{Email: "aruzhan@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, int64(AccessTokenTTL.Seconds()), resp.ExpiresIn)
}

func newAuthTestApp(authSvc *AuthService, extra ...fiber.Handler) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: (&HttpService{}).handleError})

	handlers := append([]fiber.Handler{authSvc.RequiredAuth()}, extra...)
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return shared.ResponseOK(c, c.Locals(shared.UserID))
	})
	app.Get("/protected", handlers...)
	return app
}

func TestRequiredAuthMissingHeader(t *testing.T) {
	authSvc, _ := newTestAuth(t)
	app := newAuthTestApp(authSvc)

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequiredAuthExpiredToken(t *testing.T) {
	authSvc, store := newTestAuth(t)
	user := createTestUser(t, store, "aruzhan", "aruzhan@example.com", shared.RoleStudent)

	token, err := authSvc.jwtSvc.tokenWithTTL(user.ID, -1)
	require.NoError(t, err)

	app := newAuthTestApp(authSvc)
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequiredAuthDeletedUser(t *testing.T) {
	authSvc, _ := newTestAuth(t)

	// Valid token but no matching user row
	token, err := authSvc.jwtSvc.GenerateToken("ghost-user")
	require.NoError(t, err)

	app := newAuthTestApp(authSvc)
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestRequireRoleDeniesOtherRoles(t *testing.T) {
	authSvc, store := newTestAuth(t)
	student := createTestUser(t, store, "aruzhan", "aruzhan@example.com", shared.RoleStudent)
	admin := createTestUser(t, store, "admin", "admin@example.com", shared.RoleAdmin)

	app := newAuthTestApp(authSvc, authSvc.RequireRole(shared.RoleAdmin))

	studentToken, err := authSvc.jwtSvc.GenerateToken(student.ID)
	require.NoError(t, err)
	adminToken, err := authSvc.jwtSvc.GenerateToken(admin.ID)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+studentToken)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	req = httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
