package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/qazkids/qazkids_api/dto"
	"github.com/qazkids/qazkids_api/shared"
)

type ProgressHandler struct {
	progressSvc ProgressServiceInterface
	monitorSvc  MonitoringServiceInterface
}

func NewProgressHandler(progressSvc ProgressServiceInterface, monitorSvc MonitoringServiceInterface) *ProgressHandler {
	return &ProgressHandler{
		progressSvc: progressSvc,
		monitorSvc:  monitorSvc,
	}
}

// @Summary Save game progress
// @Description Record a game attempt for the authenticated user
// @Tags progress
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param progressRequest body dto.SaveProgressRequest true "Attempt result"
// @Success 201 {object} shared.Response{data=dto.ProgressResponse}
// @Router /progress [post]
func (h *ProgressHandler) SaveProgress(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	var req dto.SaveProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.progressSvc.SaveProgress(userID, req)
	if err != nil {
		return err
	}

	outcome := "attempted"
	if resp.Completed {
		outcome = "completed"
	}
	h.monitorSvc.RecordProgressSubmission(outcome)

	return shared.ResponseJSON(c, http.StatusCreated, "Progress saved successfully", resp)
}

// @Summary Get my progress
// @Description Return all progress records of the authenticated user
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Success 200 {object} shared.Response{data=[]dto.ProgressResponse}
// @Router /progress [get]
func (h *ProgressHandler) GetProgress(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	resp, err := h.progressSvc.GetUserProgress(userID)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}

// @Summary Get my achievements
// @Description Return all achievements of the authenticated user
// @Tags achievements
// @Produce json
// @Security BearerAuth
// @Success 200 {object} shared.Response{data=[]dto.AchievementResponse}
// @Router /achievements [get]
func (h *ProgressHandler) GetAchievements(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	resp, err := h.progressSvc.GetUserAchievements(userID)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}

// @Summary Save a location
// @Description Record a GPS point for the authenticated user
// @Tags locations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param locationRequest body dto.SaveLocationRequest true "Coordinates"
// @Success 201 {object} shared.Response{data=dto.LocationResponse}
// @Router /locations [post]
func (h *ProgressHandler) SaveLocation(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	var req dto.SaveLocationRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.progressSvc.SaveLocation(userID, req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusCreated, "Location saved successfully", resp)
}

// @Summary Get recent locations
// @Description Return the last recorded GPS points of the authenticated user, newest first
// @Tags locations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} shared.Response{data=[]dto.LocationResponse}
// @Router /locations [get]
func (h *ProgressHandler) GetLocations(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	resp, err := h.progressSvc.GetRecentLocations(userID)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}
