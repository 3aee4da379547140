package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/qazkids/qazkids_api/dto"
	"github.com/qazkids/qazkids_api/shared"
)

type CatalogHandler struct {
	catalogSvc CatalogServiceInterface
	monitorSvc MonitoringServiceInterface
}

func NewCatalogHandler(catalogSvc CatalogServiceInterface, monitorSvc MonitoringServiceInterface) *CatalogHandler {
	return &CatalogHandler{
		catalogSvc: catalogSvc,
		monitorSvc: monitorSvc,
	}
}

// @Summary List games
// @Description List games, optionally filtered by category and difficulty
// @Tags games
// @Produce json
// @Param category query string false "Game category"
// @Param difficulty query string false "Difficulty level"
// @Success 200 {object} shared.Response{data=[]dto.GameResponse}
// @Router /games [get]
func (h *CatalogHandler) ListGames(c *fiber.Ctx) error {
	var req dto.GameListRequest
	if err := c.QueryParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.catalogSvc.ListGames(req)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}

// @Summary Create a game
// @Description Create a new game entry, admin only
// @Tags games
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param createRequest body dto.CreateGameRequest true "Game details"
// @Success 201 {object} shared.Response{data=dto.GameResponse}
// @Router /games [post]
func (h *CatalogHandler) CreateGame(c *fiber.Ctx) error {
	var req dto.CreateGameRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.catalogSvc.CreateGame(req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusCreated, "Game created successfully", resp)
}

// @Summary Get a game
// @Description Return a single game by ID
// @Tags games
// @Produce json
// @Param id path string true "Game ID"
// @Success 200 {object} shared.Response{data=dto.GameResponse}
// @Router /games/{id} [get]
func (h *CatalogHandler) GetGame(c *fiber.Ctx) error {
	resp, err := h.catalogSvc.GetGame(c.Params("id"))
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}

// @Summary List films
// @Description List films with pagination, optionally filtered by category
// @Tags films
// @Produce json
// @Param category query string false "Film category"
// @Param skip query int false "Offset"
// @Param limit query int false "Page size"
// @Success 200 {object} shared.Response{data=[]dto.FilmResponse}
// @Router /films [get]
func (h *CatalogHandler) ListFilms(c *fiber.Ctx) error {
	var req dto.FilmListRequest
	if err := c.QueryParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.catalogSvc.ListFilms(req)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}

// @Summary Create a film
// @Description Create a new film entry, admin only
// @Tags films
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param createRequest body dto.CreateFilmRequest true "Film details"
// @Success 201 {object} shared.Response{data=dto.FilmResponse}
// @Router /films [post]
func (h *CatalogHandler) CreateFilm(c *fiber.Ctx) error {
	var req dto.CreateFilmRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.catalogSvc.CreateFilm(req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusCreated, "Film created successfully", resp)
}

// @Summary Get a film
// @Description Return a single film by ID and count the view
// @Tags films
// @Produce json
// @Param id path string true "Film ID"
// @Success 200 {object} shared.Response{data=dto.FilmResponse}
// @Router /films/{id} [get]
func (h *CatalogHandler) GetFilm(c *fiber.Ctx) error {
	resp, err := h.catalogSvc.GetFilm(c.Params("id"))
	if err != nil {
		return err
	}

	h.monitorSvc.RecordFilmView()

	return shared.ResponseOK(c, resp)
}
