package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/qazkids/qazkids_api/model"
	"github.com/qazkids/qazkids_api/services/repositories"
)

// newTestStore builds a PostgresService over an in-memory sqlite database.
// The shared-cache DSN keeps every pooled connection on the same database.
func newTestStore(t *testing.T) *PostgresService {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(Models()...))

	return &PostgresService{
		db:        db,
		users:     repositories.NewUserRepository(db),
		catalog:   repositories.NewCatalogRepository(db),
		progress:  repositories.NewProgressRepository(db),
		content:   repositories.NewContentRepository(db),
		analytics: repositories.NewAnalyticsRepository(db),
	}
}

func f64(v float64) *float64 {
	return &v
}

func newTestJWT() *JWTService {
	return &JWTService{
		AccessTokenDuration: AccessTokenTTL,
		jwtSecretKey:        "test-secret",
	}
}

func newTestAuth(t *testing.T) (*AuthService, *PostgresService) {
	t.Helper()

	store := newTestStore(t)
	return &AuthService{sqlSvc: store, jwtSvc: newTestJWT()}, store
}

func createTestUser(t *testing.T, store *PostgresService, username, email, role string) *model.User {
	t.Helper()

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: "not-a-real-hash",
		Role:         role,
		IsActive:     true,
	}
	created, err := store.Users().CreateUser(user)
	require.NoError(t, err)
	return created
}

func createTestGame(t *testing.T, store *PostgresService, title string) *model.Game {
	t.Helper()

	game := &model.Game{
		Title:      title,
		Category:   "quiz",
		Difficulty: "easy",
		Duration:   10,
		Content:    []byte(`{"questions": []}`),
		MaxScore:   100,
	}
	created, err := store.Catalog().CreateGame(game)
	require.NoError(t, err)
	return created
}
