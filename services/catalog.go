// services/catalog.go
package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alphabatem/common/context"
	"gorm.io/gorm"

	"github.com/qazkids/qazkids_api/dto"
	"github.com/qazkids/qazkids_api/model"
	"github.com/qazkids/qazkids_api/shared"
)

// CatalogService serves the game and film catalog.
type CatalogService struct {
	context.DefaultService

	sqlSvc *PostgresService
}

const CATALOG_SVC = "catalog_svc"

const DefaultPageSize = 10

func (svc CatalogService) Id() string {
	return CATALOG_SVC
}

func (svc *CatalogService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *CatalogService) Start() error {
	svc.sqlSvc = svc.Service(POSTGRES_SVC).(*PostgresService)
	return nil
}

// ==================== GAMES ====================

// contentSectionByCategory maps known game categories to the key their
// content blob must carry. Unknown categories pass with any JSON object.
var contentSectionByCategory = map[string]string{
	shared.GameCategoryQuiz:     "questions",
	shared.GameCategoryWordGame: "words",
	shared.GameCategoryPuzzle:   "puzzles",
	shared.GameCategoryMemory:   "cards",
}

func validateGameContent(category string, content json.RawMessage) error {
	var blob map[string]json.RawMessage
	if err := json.Unmarshal(content, &blob); err != nil {
		return shared.NewBadRequestError(err, "Game content must be a JSON object")
	}

	section, known := contentSectionByCategory[category]
	if !known {
		return nil
	}
	if _, ok := blob[section]; !ok {
		return shared.NewBadRequestError(
			fmt.Errorf("missing %q section", section),
			fmt.Sprintf("Game content for category %q must contain a %q section", category, section))
	}
	return nil
}

func (svc *CatalogService) CreateGame(req dto.CreateGameRequest) (*dto.GameResponse, error) {
	if err := validateGameContent(req.Category, req.Content); err != nil {
		return nil, err
	}

	game := &model.Game{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Difficulty:  req.Difficulty,
		Duration:    req.Duration,
		ImageURL:    req.ImageURL,
		Content:     req.Content,
		MaxScore:    req.MaxScore,
	}
	if game.Difficulty == "" {
		game.Difficulty = "medium"
	}
	if game.Duration == 0 {
		game.Duration = 10
	}
	if game.MaxScore == 0 {
		game.MaxScore = 100
	}

	created, err := svc.sqlSvc.Catalog().CreateGame(game)
	if err != nil {
		return nil, err
	}

	resp := mapGameToResponse(created)
	return &resp, nil
}

func (svc *CatalogService) GetGame(id string) (*dto.GameResponse, error) {
	game, err := svc.sqlSvc.Catalog().GetGame(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(err, "Game not found")
		}
		return nil, err
	}
	resp := mapGameToResponse(game)
	return &resp, nil
}

func (svc *CatalogService) ListGames(req dto.GameListRequest) ([]dto.GameResponse, error) {
	games, err := svc.sqlSvc.Catalog().ListGames(req.Category, req.Difficulty)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.GameResponse, len(games))
	for i := range games {
		responses[i] = mapGameToResponse(&games[i])
	}
	return responses, nil
}

func mapGameToResponse(game *model.Game) dto.GameResponse {
	return dto.GameResponse{
		ID:          game.ID,
		Title:       game.Title,
		Description: game.Description,
		Category:    game.Category,
		Difficulty:  game.Difficulty,
		Duration:    game.Duration,
		ImageURL:    game.ImageURL,
		Content:     game.Content,
		MaxScore:    game.MaxScore,
		CreatedAt:   game.CreatedAt,
	}
}

// ==================== FILMS ====================

func (svc *CatalogService) CreateFilm(req dto.CreateFilmRequest) (*dto.FilmResponse, error) {
	film := &model.Film{
		Title:        req.Title,
		Description:  req.Description,
		Duration:     req.Duration,
		VideoURL:     req.VideoURL,
		ThumbnailURL: req.ThumbnailURL,
		Category:     req.Category,
	}

	created, err := svc.sqlSvc.Catalog().CreateFilm(film)
	if err != nil {
		return nil, err
	}

	resp := mapFilmToResponse(created)
	return &resp, nil
}

// GetFilm is not side-effect-free: every read counts one view.
func (svc *CatalogService) GetFilm(id string) (*dto.FilmResponse, error) {
	film, err := svc.sqlSvc.Catalog().GetFilm(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(err, "Film not found")
		}
		return nil, err
	}

	if err := svc.sqlSvc.Catalog().IncrementFilmViews(id); err != nil {
		return nil, err
	}
	film.Views++

	resp := mapFilmToResponse(film)
	return &resp, nil
}

func (svc *CatalogService) ListFilms(req dto.FilmListRequest) ([]dto.FilmResponse, error) {
	limit := req.Limit
	if limit == 0 {
		limit = DefaultPageSize
	}

	films, err := svc.sqlSvc.Catalog().ListFilms(req.Category, req.Skip, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.FilmResponse, len(films))
	for i := range films {
		responses[i] = mapFilmToResponse(&films[i])
	}
	return responses, nil
}

func mapFilmToResponse(film *model.Film) dto.FilmResponse {
	return dto.FilmResponse{
		ID:           film.ID,
		Title:        film.Title,
		Description:  film.Description,
		Duration:     film.Duration,
		VideoURL:     film.VideoURL,
		ThumbnailURL: film.ThumbnailURL,
		Category:     film.Category,
		Rating:       film.Rating,
		Views:        film.Views,
		CreatedAt:    film.CreatedAt,
	}
}
