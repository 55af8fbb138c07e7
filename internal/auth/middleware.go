package auth

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/Salsapil/alx-backend-user-data/internal/domain"
	"github.com/Salsapil/alx-backend-user-data/pkg/util/errorutil"
)

const principalKey = "auth_principal"

// SessionResolver exchanges a session token for its user. A miss yields
// (nil, nil); errors are storage failures only.
type SessionResolver interface {
	GetUserBySession(ctx context.Context, sessionID string) (*domain.User, error)
}

// SessionMiddleware validates session cookies and loads the user.
type SessionMiddleware struct {
	sessions   SessionResolver
	cookieName string
}

// NewSessionMiddleware constructs middleware.
func NewSessionMiddleware(sessions SessionResolver, cookieName string) *SessionMiddleware {
	return &SessionMiddleware{sessions: sessions, cookieName: cookieName}
}

// Handle enforces an authenticated session for protected routes.
func (m *SessionMiddleware) Handle(c *fiber.Ctx) error {
	sessionID := c.Cookies(m.cookieName)
	if sessionID == "" {
		return errorutil.NewForbidden("missing session")
	}

	user, err := m.sessions.GetUserBySession(c.UserContext(), sessionID)
	if err != nil {
		return errorutil.MapError(err)
	}
	if user == nil {
		return errorutil.NewForbidden("invalid session")
	}

	c.Locals(principalKey, user)
	return c.Next()
}

// UserFromContext retrieves the authenticated user.
func UserFromContext(c *fiber.Ctx) (*domain.User, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	user, ok := val.(*domain.User)
	return user, ok
}
