package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Salsapil/alx-backend-user-data/internal/domain"
)

// UserRepository defines persistence access for user records. Lookup
// misses surface as domain.ErrUserNotFound and a duplicate email on
// Create surfaces as domain.ErrDuplicateUser; any other error is a
// storage failure.
type UserRepository interface {
	Create(ctx context.Context, email, hashedPassword string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetBySessionID(ctx context.Context, sessionID string) (*domain.User, error)
	GetByResetToken(ctx context.Context, resetToken string) (*domain.User, error)
	// Update applies a partial update. Fields not present in changes are
	// left untouched; token fields can be independently set or cleared.
	Update(ctx context.Context, id string, changes domain.UserChanges) error
}

// dbPool is the subset of pgxpool.Pool the Postgres repository uses.
// Tests substitute a pgxmock pool.
type dbPool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
