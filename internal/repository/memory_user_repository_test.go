package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Salsapil/alx-backend-user-data/internal/domain"
)

func TestMemoryUserRepository_CreateAndLookup(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	user, err := repo.Create(ctx, "a@x.com", "hashed")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Nil(t, user.SessionID)
	assert.Nil(t, user.ResetToken)

	byEmail, err := repo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	byID, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", byID.Email)
}

func TestMemoryUserRepository_DuplicateEmail(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, "a@x.com", "hashed")
	require.NoError(t, err)

	_, err = repo.Create(ctx, "a@x.com", "other")
	assert.ErrorIs(t, err, domain.ErrDuplicateUser)
}

func TestMemoryUserRepository_DuplicateToken(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	first, err := repo.Create(ctx, "a@x.com", "hashed")
	require.NoError(t, err)
	second, err := repo.Create(ctx, "b@x.com", "hashed")
	require.NoError(t, err)

	require.NoError(t, repo.Update(ctx, first.ID, domain.UserChanges{SessionID: domain.SetToken("sess-1")}))
	require.NoError(t, repo.Update(ctx, first.ID, domain.UserChanges{ResetToken: domain.SetToken("reset-1")}))

	// A token value identifies at most one user.
	err = repo.Update(ctx, second.ID, domain.UserChanges{SessionID: domain.SetToken("sess-1")})
	assert.ErrorIs(t, err, domain.ErrDuplicateToken)
	err = repo.Update(ctx, second.ID, domain.UserChanges{ResetToken: domain.SetToken("reset-1")})
	assert.ErrorIs(t, err, domain.ErrDuplicateToken)

	// The rejected updates leave the original assignment in place.
	bySession, err := repo.GetBySessionID(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, bySession.ID)

	current, err := repo.GetByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Nil(t, current.SessionID)
	assert.Nil(t, current.ResetToken)

	// Re-assigning a user's own token is not a conflict.
	assert.NoError(t, repo.Update(ctx, first.ID, domain.UserChanges{SessionID: domain.SetToken("sess-1")}))
}

func TestMemoryUserRepository_LookupMiss(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	_, err := repo.GetByEmail(ctx, "ghost@x.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = repo.GetBySessionID(ctx, "no-session")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = repo.GetByResetToken(ctx, "no-reset")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestMemoryUserRepository_UpdateTokens(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	user, err := repo.Create(ctx, "a@x.com", "hashed")
	require.NoError(t, err)

	err = repo.Update(ctx, user.ID, domain.UserChanges{SessionID: domain.SetToken("sess-1")})
	require.NoError(t, err)

	bySession, err := repo.GetBySessionID(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, bySession.ID)

	// Setting the reset token leaves the session untouched.
	err = repo.Update(ctx, user.ID, domain.UserChanges{ResetToken: domain.SetToken("reset-1")})
	require.NoError(t, err)

	current, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, current.SessionID)
	assert.Equal(t, "sess-1", *current.SessionID)
	require.NotNil(t, current.ResetToken)
	assert.Equal(t, "reset-1", *current.ResetToken)

	// Clearing the session keeps the reset token.
	err = repo.Update(ctx, user.ID, domain.UserChanges{SessionID: domain.ClearToken()})
	require.NoError(t, err)

	current, err = repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, current.SessionID)
	require.NotNil(t, current.ResetToken)

	_, err = repo.GetBySessionID(ctx, "sess-1")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestMemoryUserRepository_UpdateMiss(t *testing.T) {
	repo := NewMemoryUserRepository()

	err := repo.Update(context.Background(), "missing", domain.UserChanges{SessionID: domain.ClearToken()})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestMemoryUserRepository_ReturnsCopies(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	user, err := repo.Create(ctx, "a@x.com", "hashed")
	require.NoError(t, err)

	// Mutating a returned record must not leak into the store.
	user.Email = "tampered@x.com"
	user.HashedPassword = ""

	stored, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", stored.Email)
	assert.Equal(t, "hashed", stored.HashedPassword)
}
