package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/qazkids/qazkids_api/model"
	"gorm.io/gorm"
)

// CatalogRepository handles the game and film catalog tables
type CatalogRepository struct {
	BaseRepository
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

// ==================== GAMES ====================

func (ds *CatalogRepository) CreateGame(game *model.Game) (*model.Game, error) {
	if game.ID == "" {
		id, _ := uuid.NewV7()
		game.ID = id.String()
	}
	now := time.Now().UTC()
	game.CreatedAt = now
	game.UpdatedAt = now
	if err := ds.db.Create(game).Error; err != nil {
		return nil, err
	}
	return game, nil
}

func (ds *CatalogRepository) GetGame(id string) (*model.Game, error) {
	var game model.Game
	if err := ds.db.Where("id = ?", id).First(&game).Error; err != nil {
		return nil, err
	}
	return &game, nil
}

func (ds *CatalogRepository) ListGames(category, difficulty string) ([]model.Game, error) {
	query := ds.db.Model(&model.Game{})
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if difficulty != "" {
		query = query.Where("difficulty = ?", difficulty)
	}

	var games []model.Game
	if err := query.Order("created_at").Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

func (ds *CatalogRepository) CountGames() (int64, error) {
	var count int64
	err := ds.db.Model(&model.Game{}).Count(&count).Error
	return count, err
}

// ==================== FILMS ====================

func (ds *CatalogRepository) CreateFilm(film *model.Film) (*model.Film, error) {
	if film.ID == "" {
		id, _ := uuid.NewV7()
		film.ID = id.String()
	}
	film.CreatedAt = time.Now().UTC()
	if err := ds.db.Create(film).Error; err != nil {
		return nil, err
	}
	return film, nil
}

func (ds *CatalogRepository) GetFilm(id string) (*model.Film, error) {
	var film model.Film
	if err := ds.db.Where("id = ?", id).First(&film).Error; err != nil {
		return nil, err
	}
	return &film, nil
}

// IncrementFilmViews bumps the view counter in a single statement so
// concurrent reads never lose an increment.
func (ds *CatalogRepository) IncrementFilmViews(id string) error {
	return ds.db.Model(&model.Film{}).
		Where("id = ?", id).
		Update("views", gorm.Expr("views + 1")).Error
}

func (ds *CatalogRepository) ListFilms(category string, skip, limit int) ([]model.Film, error) {
	query := ds.db.Model(&model.Film{})
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var films []model.Film
	if err := query.Order("created_at").Offset(skip).Limit(limit).Find(&films).Error; err != nil {
		return nil, err
	}
	return films, nil
}

func (ds *CatalogRepository) CountFilms() (int64, error) {
	var count int64
	err := ds.db.Model(&model.Film{}).Count(&count).Error
	return count, err
}
