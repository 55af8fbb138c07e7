package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Salsapil/alx-backend-user-data/internal/api/dto"
	"github.com/Salsapil/alx-backend-user-data/internal/auth"
	"github.com/Salsapil/alx-backend-user-data/internal/service"
	"github.com/Salsapil/alx-backend-user-data/pkg/util/errorutil"
)

// UsersHandler exposes registration and profile endpoints.
type UsersHandler struct {
	auth *service.AuthService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(authService *service.AuthService) *UsersHandler {
	return &UsersHandler{auth: authService}
}

// Register handles POST /users.
func (h *UsersHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return errorutil.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return errorutil.NewValidationError("email and password required", nil)
	}

	user, err := h.auth.Register(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return errorutil.MapError(err)
	}

	return c.Status(http.StatusOK).JSON(dto.MessageResponse{
		Email:   user.Email,
		Message: "user created",
	})
}

// Profile handles GET /profile for an authenticated session.
func (h *UsersHandler) Profile(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return errorutil.NewForbidden("missing session")
	}
	return c.JSON(fiber.Map{"email": user.Email})
}
