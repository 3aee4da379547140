package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/qazkids/qazkids_api/shared"
)

type MediaHandler struct {
	mediaSvc MediaServiceInterface
}

func NewMediaHandler(mediaSvc MediaServiceInterface) *MediaHandler {
	return &MediaHandler{
		mediaSvc: mediaSvc,
	}
}

// @Summary Upload a game image
// @Description Upload a cover image for a game, admin only
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image file"
// @Success 201 {object} shared.Response{data=dto.MediaUploadResponse}
// @Router /admin/media/games [post]
func (h *MediaHandler) UploadGameImage(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return shared.NewBadRequestError(err, "File is required")
	}

	resp, err := h.mediaSvc.UploadCatalogImage("games", file)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusCreated, "File uploaded successfully", resp)
}

// @Summary Delete a catalog image
// @Description Remove an uploaded game or film image by its object key, admin only
// @Tags media
// @Produce json
// @Security BearerAuth
// @Param key path string true "Object key, e.g. games/<uuid>.png"
// @Success 200 {object} shared.Response
// @Router /admin/media/{key} [delete]
func (h *MediaHandler) DeleteMedia(c *fiber.Ctx) error {
	objectKey := c.Params("*")
	if objectKey == "" {
		return shared.NewBadRequestError(fiber.ErrBadRequest, "Object key is required")
	}

	if err := h.mediaSvc.DeleteCatalogImage(objectKey); err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "File deleted successfully", nil)
}

// @Summary Upload a film thumbnail
// @Description Upload a thumbnail image for a film, admin only
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image file"
// @Success 201 {object} shared.Response{data=dto.MediaUploadResponse}
// @Router /admin/media/films [post]
func (h *MediaHandler) UploadFilmThumbnail(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return shared.NewBadRequestError(err, "File is required")
	}

	resp, err := h.mediaSvc.UploadCatalogImage("films", file)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusCreated, "File uploaded successfully", resp)
}
