package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Salsapil/alx-backend-user-data/internal/domain"
)

// memoryUserRepository keeps user records in a mutex-guarded map. It
// backs the service when no POSTGRES_DSN is configured and doubles as
// the store used by service and handler tests. The single mutex gives
// the same per-record atomicity the database provides with row-level
// updates.
type memoryUserRepository struct {
	mu      sync.RWMutex
	byID    map[string]*domain.User
	byEmail map[string]string
}

// NewMemoryUserRepository returns an in-memory implementation.
func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{
		byID:    make(map[string]*domain.User),
		byEmail: make(map[string]string),
	}
}

func (r *memoryUserRepository) Create(_ context.Context, email, hashedPassword string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[email]; exists {
		return nil, domain.ErrDuplicateUser
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:             uuid.NewString(),
		Email:          email,
		HashedPassword: hashedPassword,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	r.byID[user.ID] = user
	r.byEmail[email] = user.ID
	return cloneUser(user), nil
}

func (r *memoryUserRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(user), nil
}

func (r *memoryUserRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(r.byID[id]), nil
}

func (r *memoryUserRepository) GetBySessionID(_ context.Context, sessionID string) (*domain.User, error) {
	return r.findToken(sessionID, func(u *domain.User) *string { return u.SessionID })
}

func (r *memoryUserRepository) GetByResetToken(_ context.Context, resetToken string) (*domain.User, error) {
	return r.findToken(resetToken, func(u *domain.User) *string { return u.ResetToken })
}

func (r *memoryUserRepository) findToken(token string, field func(*domain.User) *string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.byID {
		if value := field(user); value != nil && *value == token {
			return cloneUser(user), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memoryUserRepository) Update(_ context.Context, id string, changes domain.UserChanges) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}

	// Validate both token assignments before applying either, so a
	// conflict leaves the record untouched.
	if value, ok := changes.SessionID.Value(); ok && value != nil {
		if holder := r.tokenHolder(*value, func(u *domain.User) *string { return u.SessionID }); holder != "" && holder != id {
			return domain.ErrDuplicateToken
		}
	}
	if value, ok := changes.ResetToken.Value(); ok && value != nil {
		if holder := r.tokenHolder(*value, func(u *domain.User) *string { return u.ResetToken }); holder != "" && holder != id {
			return domain.ErrDuplicateToken
		}
	}

	if changes.HashedPassword != nil {
		user.HashedPassword = *changes.HashedPassword
	}
	if value, ok := changes.SessionID.Value(); ok {
		user.SessionID = copyToken(value)
	}
	if value, ok := changes.ResetToken.Value(); ok {
		user.ResetToken = copyToken(value)
	}
	user.UpdatedAt = time.Now().UTC()
	return nil
}

// tokenHolder reports which user currently holds the given token value,
// or "" when nobody does. Callers must hold r.mu.
func (r *memoryUserRepository) tokenHolder(token string, field func(*domain.User) *string) string {
	for id, user := range r.byID {
		if value := field(user); value != nil && *value == token {
			return id
		}
	}
	return ""
}

func cloneUser(user *domain.User) *domain.User {
	clone := *user
	clone.SessionID = copyToken(user.SessionID)
	clone.ResetToken = copyToken(user.ResetToken)
	return &clone
}

func copyToken(token *string) *string {
	if token == nil {
		return nil
	}
	value := *token
	return &value
}
