package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/qazkids/qazkids_api/dto"
	"github.com/qazkids/qazkids_api/shared"
)

type ContentHandler struct {
	contentSvc ContentServiceInterface
}

func NewContentHandler(contentSvc ContentServiceInterface) *ContentHandler {
	return &ContentHandler{
		contentSvc: contentSvc,
	}
}

// @Summary List published content
// @Description List published content pages, newest first
// @Tags content
// @Produce json
// @Param content_type query string false "Content type filter"
// @Param skip query int false "Offset"
// @Param limit query int false "Page size"
// @Success 200 {object} shared.Response{data=[]dto.ContentResponse}
// @Router /content [get]
func (h *ContentHandler) ListContent(c *fiber.Ctx) error {
	var req dto.ContentListRequest
	if err := c.QueryParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.contentSvc.ListPublished(req)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}

// @Summary Create content
// @Description Create a new draft content page, admin or teacher only
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param createRequest body dto.CreateContentRequest true "Content details"
// @Success 201 {object} shared.Response{data=dto.ContentResponse}
// @Router /content [post]
func (h *ContentHandler) CreateContent(c *fiber.Ctx) error {
	author := c.Locals(shared.Username).(string)

	var req dto.CreateContentRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.contentSvc.CreateContent(author, req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusCreated, "Content created successfully", resp)
}

// @Summary Get content by slug
// @Description Return a published content page by slug
// @Tags content
// @Produce json
// @Param slug path string true "Content slug"
// @Success 200 {object} shared.Response{data=dto.ContentResponse}
// @Router /content/{slug} [get]
func (h *ContentHandler) GetContentBySlug(c *fiber.Ctx) error {
	resp, err := h.contentSvc.GetBySlug(c.Params("slug"))
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}
