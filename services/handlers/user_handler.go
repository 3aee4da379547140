package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/qazkids/qazkids_api/dto"
	"github.com/qazkids/qazkids_api/shared"
)

type UserHandler struct {
	userSvc UserServiceInterface
}

func NewUserHandler(userSvc UserServiceInterface) *UserHandler {
	return &UserHandler{
		userSvc: userSvc,
	}
}

// @Summary Get my profile
// @Description Return the profile of the authenticated user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} shared.Response{data=dto.UserResponse}
// @Router /users/me [get]
func (h *UserHandler) GetMe(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	resp, err := h.userSvc.GetProfile(userID)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}

// @Summary Update my profile
// @Description Update the full name and age of the authenticated user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param updateRequest body dto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} shared.Response{data=dto.UserResponse}
// @Router /users/me [put]
func (h *UserHandler) UpdateMe(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.userSvc.UpdateProfile(userID, req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Profile updated successfully", resp)
}

// @Summary Get a user by ID
// @Description Return the public profile of a user
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} shared.Response{data=dto.UserResponse}
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	resp, err := h.userSvc.GetUser(c.Params("id"))
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}
