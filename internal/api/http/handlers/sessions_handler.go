package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Salsapil/alx-backend-user-data/internal/api/dto"
	"github.com/Salsapil/alx-backend-user-data/internal/auth"
	"github.com/Salsapil/alx-backend-user-data/internal/service"
	"github.com/Salsapil/alx-backend-user-data/pkg/util/errorutil"
)

// SessionsHandler exposes login and logout endpoints.
type SessionsHandler struct {
	auth       *service.AuthService
	cookieName string
}

// NewSessionsHandler constructs handler.
func NewSessionsHandler(authService *service.AuthService, cookieName string) *SessionsHandler {
	return &SessionsHandler{auth: authService, cookieName: cookieName}
}

// Login handles POST /sessions.
func (h *SessionsHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return errorutil.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return errorutil.NewValidationError("email and password required", nil)
	}

	if !h.auth.ValidLogin(c.UserContext(), req.Email, req.Password) {
		return errorutil.NewUnauthorized("invalid credentials")
	}

	token, err := h.auth.CreateSession(c.UserContext(), req.Email)
	if err != nil {
		return errorutil.MapError(err)
	}
	if token == "" {
		// Account vanished between the credential check and session mint.
		return errorutil.NewUnauthorized("invalid credentials")
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    token,
		HTTPOnly: true,
	})
	return c.JSON(dto.MessageResponse{Email: req.Email, Message: "logged in"})
}

// Logout handles DELETE /sessions for an authenticated session.
func (h *SessionsHandler) Logout(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return errorutil.NewForbidden("missing session")
	}

	if err := h.auth.DestroySession(c.UserContext(), user.ID); err != nil {
		return errorutil.MapError(err)
	}

	c.ClearCookie(h.cookieName)
	return c.Redirect("/", http.StatusFound)
}
