package handlers

import (
	"mime/multipart"

	"github.com/qazkids/qazkids_api/dto"
)

type AuthServiceInterface interface {
	Register(req dto.RegisterRequest) (*dto.TokenResponse, error)
	Login(req dto.LoginRequest) (*dto.TokenResponse, error)
}

type UserServiceInterface interface {
	GetProfile(userID string) (*dto.UserResponse, error)
	UpdateProfile(userID string, req dto.UpdateProfileRequest) (*dto.UserResponse, error)
	GetUser(userID string) (*dto.UserResponse, error)
}

type CatalogServiceInterface interface {
	CreateGame(req dto.CreateGameRequest) (*dto.GameResponse, error)
	GetGame(id string) (*dto.GameResponse, error)
	ListGames(req dto.GameListRequest) ([]dto.GameResponse, error)
	CreateFilm(req dto.CreateFilmRequest) (*dto.FilmResponse, error)
	GetFilm(id string) (*dto.FilmResponse, error)
	ListFilms(req dto.FilmListRequest) ([]dto.FilmResponse, error)
}

type ProgressServiceInterface interface {
	SaveProgress(userID string, req dto.SaveProgressRequest) (*dto.ProgressResponse, error)
	GetUserProgress(userID string) ([]dto.ProgressResponse, error)
	GetUserAchievements(userID string) ([]dto.AchievementResponse, error)
	SaveLocation(userID string, req dto.SaveLocationRequest) (*dto.LocationResponse, error)
	GetRecentLocations(userID string) ([]dto.LocationResponse, error)
}

type ContentServiceInterface interface {
	CreateContent(author string, req dto.CreateContentRequest) (*dto.ContentResponse, error)
	ListPublished(req dto.ContentListRequest) ([]dto.ContentResponse, error)
	GetBySlug(slug string) (*dto.ContentResponse, error)
}

type AnalyticsServiceInterface interface {
	LogEvent(userID string, req dto.LogEventRequest) (*dto.AnalyticsResponse, error)
	GetStats() (*dto.AnalyticsStatsResponse, error)
}

type MediaServiceInterface interface {
	UploadCatalogImage(prefix string, file *multipart.FileHeader) (*dto.MediaUploadResponse, error)
	DeleteCatalogImage(objectKey string) error
}

type MonitoringServiceInterface interface {
	RecordFilmView()
	RecordProgressSubmission(outcome string)
}
