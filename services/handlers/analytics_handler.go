package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/qazkids/qazkids_api/dto"
	"github.com/qazkids/qazkids_api/shared"
)

type AnalyticsHandler struct {
	analyticsSvc AnalyticsServiceInterface
}

func NewAnalyticsHandler(analyticsSvc AnalyticsServiceInterface) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsSvc: analyticsSvc,
	}
}

// @Summary Log an analytics event
// @Description Record a usage event for the authenticated user
// @Tags analytics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventRequest body dto.LogEventRequest true "Event details"
// @Success 201 {object} shared.Response{data=dto.AnalyticsResponse}
// @Router /analytics [post]
func (h *AnalyticsHandler) LogEvent(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	var req dto.LogEventRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.analyticsSvc.LogEvent(userID, req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusCreated, "Event logged successfully", resp)
}

// @Summary Get platform statistics
// @Description Return aggregate platform counters, admin only
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} shared.Response{data=dto.AnalyticsStatsResponse}
// @Router /analytics/stats [get]
func (h *AnalyticsHandler) GetStats(c *fiber.Ctx) error {
	resp, err := h.analyticsSvc.GetStats()
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}
