package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Salsapil/alx-backend-user-data/internal/api/dto"
	"github.com/Salsapil/alx-backend-user-data/internal/service"
	"github.com/Salsapil/alx-backend-user-data/pkg/util/errorutil"
)

// ResetHandler exposes the password reset endpoints.
type ResetHandler struct {
	auth *service.AuthService
}

// NewResetHandler constructs handler.
func NewResetHandler(authService *service.AuthService) *ResetHandler {
	return &ResetHandler{auth: authService}
}

// Request handles POST /reset_password.
func (h *ResetHandler) Request(c *fiber.Ctx) error {
	var req dto.ResetRequest
	if err := c.BodyParser(&req); err != nil {
		return errorutil.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" {
		return errorutil.NewValidationError("email required", nil)
	}

	token, err := h.auth.RequestResetToken(c.UserContext(), req.Email)
	if err != nil {
		return errorutil.MapError(err)
	}

	return c.JSON(dto.ResetTokenResponse{Email: req.Email, ResetToken: token})
}

// Confirm handles PUT /reset_password.
func (h *ResetHandler) Confirm(c *fiber.Ctx) error {
	var req dto.ResetConfirmRequest
	if err := c.BodyParser(&req); err != nil {
		return errorutil.NewValidationError("invalid payload", nil)
	}
	if req.ResetToken == "" || req.NewPassword == "" {
		return errorutil.NewValidationError("reset_token and new_password required", nil)
	}

	if err := h.auth.UpdatePassword(c.UserContext(), req.ResetToken, req.NewPassword); err != nil {
		return errorutil.MapError(err)
	}

	return c.JSON(dto.MessageResponse{Email: req.Email, Message: "Password updated"})
}
