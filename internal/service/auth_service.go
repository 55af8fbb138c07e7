package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Salsapil/alx-backend-user-data/internal/auth"
	"github.com/Salsapil/alx-backend-user-data/internal/config"
	"github.com/Salsapil/alx-backend-user-data/internal/domain"
	"github.com/Salsapil/alx-backend-user-data/internal/events"
	"github.com/Salsapil/alx-backend-user-data/internal/repository"
)

// AuthService coordinates registration, login, session lifecycle and
// password resets. It holds no cross-call locks; per-record atomicity
// comes from the store's single-row updates.
type AuthService struct {
	users      repository.UserRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
	bcryptCost int
}

// AuthDependencies encapsulates collaborator requirements for the auth service.
type AuthDependencies struct {
	UserRepo   repository.UserRepository
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		users:      deps.UserRepo,
		dispatcher: deps.Dispatcher,
		logger:     logger,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// Register creates a new account for the email. The duplicate check is
// enforced by the store's uniqueness constraint rather than a
// lookup-then-insert sequence, so concurrent registrations of the same
// email cannot both succeed.
func (s *AuthService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, email, hash)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventUserRegistered, user.ID, events.UserRegisteredPayload{Email: user.Email})
	s.logger.Info("user registered", zap.String("user_id", user.ID))
	return user, nil
}

// ValidLogin reports whether the email/password pair matches a stored
// credential. It fails closed: an unknown email or a storage failure
// yields false, never an error.
func (s *AuthService) ValidLogin(ctx context.Context, email, password string) bool {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			s.logger.Warn("login lookup failed", zap.Error(err))
		}
		return false
	}
	return auth.CheckPassword(user.HashedPassword, password)
}

// CreateSession mints a fresh session token for the email and persists
// it, replacing any previous session (a login invalidates the session
// it supersedes). An unknown email yields an empty token and no error.
func (s *AuthService) CreateSession(ctx context.Context, email string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil
		}
		return "", err
	}

	token := auth.NewToken()
	changes := domain.UserChanges{SessionID: domain.SetToken(token)}
	if err := s.users.Update(ctx, user.ID, changes); err != nil {
		return "", err
	}

	s.publish(ctx, events.EventSessionCreated, user.ID, events.SessionCreatedPayload{Email: user.Email})
	return token, nil
}

// GetUserBySession resolves a session token to its user. An empty or
// unknown token yields (nil, nil); only storage failures surface as
// errors.
func (s *AuthService) GetUserBySession(ctx context.Context, sessionID string) (*domain.User, error) {
	if sessionID == "" {
		return nil, nil
	}
	user, err := s.users.GetBySessionID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// DestroySession clears the user's session token. Clearing an
// already-absent session is not an error.
func (s *AuthService) DestroySession(ctx context.Context, userID string) error {
	changes := domain.UserChanges{SessionID: domain.ClearToken()}
	if err := s.users.Update(ctx, userID, changes); err != nil {
		return err
	}
	s.publish(ctx, events.EventSessionDestroyed, userID, nil)
	return nil
}

// RequestResetToken mints a reset token for the email and persists it,
// replacing any outstanding token. Unlike login, an unknown email is
// surfaced so the caller can distinguish "no such account" from success.
func (s *AuthService) RequestResetToken(ctx context.Context, email string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	token := auth.NewToken()
	changes := domain.UserChanges{ResetToken: domain.SetToken(token)}
	if err := s.users.Update(ctx, user.ID, changes); err != nil {
		return "", err
	}

	s.publish(ctx, events.EventPasswordResetRequested, user.ID, events.PasswordResetRequestedPayload{Email: user.Email})
	return token, nil
}

// UpdatePassword consumes a reset token: it stores the new password
// hash and clears the token in a single store update, so the token is
// single-use. An unrecognized token fails with ErrInvalidResetToken.
func (s *AuthService) UpdatePassword(ctx context.Context, resetToken, newPassword string) error {
	user, err := s.users.GetByResetToken(ctx, resetToken)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrInvalidResetToken
		}
		return err
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	changes := domain.UserChanges{
		HashedPassword: &hash,
		ResetToken:     domain.ClearToken(),
	}
	if err := s.users.Update(ctx, user.ID, changes); err != nil {
		return err
	}

	s.publish(ctx, events.EventPasswordUpdated, user.ID, events.PasswordUpdatedPayload{Email: user.Email})
	s.logger.Info("password updated", zap.String("user_id", user.ID))
	return nil
}

func (s *AuthService) publish(ctx context.Context, eventType events.EventType, userID string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		UserID:    userID,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	})
}
