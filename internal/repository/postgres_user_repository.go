package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Salsapil/alx-backend-user-data/internal/domain"
)

type postgresUserRepository struct {
	pool dbPool
}

// NewUserRepository returns a Postgres-backed implementation. Email
// uniqueness is enforced by the users table constraint, so concurrent
// registrations of the same address cannot both succeed.
func NewUserRepository(pool dbPool) UserRepository {
	return &postgresUserRepository{pool: pool}
}

func (r *postgresUserRepository) Create(ctx context.Context, email, hashedPassword string) (*domain.User, error) {
	const query = `
        INSERT INTO users (email, hashed_password)
        VALUES ($1, $2)
        RETURNING id, created_at, updated_at`

	user := &domain.User{
		Email:          email,
		HashedPassword: hashedPassword,
	}
	err := r.pool.QueryRow(ctx, query, email, hashedPassword).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrDuplicateUser
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

func (r *postgresUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getBy(ctx, "id", id)
}

func (r *postgresUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getBy(ctx, "email", email)
}

func (r *postgresUserRepository) GetBySessionID(ctx context.Context, sessionID string) (*domain.User, error) {
	return r.getBy(ctx, "session_id", sessionID)
}

func (r *postgresUserRepository) GetByResetToken(ctx context.Context, resetToken string) (*domain.User, error) {
	return r.getBy(ctx, "reset_token", resetToken)
}

func (r *postgresUserRepository) getBy(ctx context.Context, column, value string) (*domain.User, error) {
	query := fmt.Sprintf(`
        SELECT id, email, hashed_password, session_id, reset_token, created_at, updated_at
        FROM users WHERE %s=$1`, column)

	var user domain.User
	err := r.pool.QueryRow(ctx, query, value).Scan(
		&user.ID,
		&user.Email,
		&user.HashedPassword,
		&user.SessionID,
		&user.ResetToken,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("select user by %s: %w", column, err)
	}
	return &user, nil
}

func (r *postgresUserRepository) Update(ctx context.Context, id string, changes domain.UserChanges) error {
	if changes.IsEmpty() {
		// Still verify the row exists so a miss is reported consistently.
		_, err := r.GetByID(ctx, id)
		return err
	}

	sets := []string{"updated_at=NOW()"}
	args := []any{}

	if changes.HashedPassword != nil {
		args = append(args, *changes.HashedPassword)
		sets = append(sets, fmt.Sprintf("hashed_password=$%d", len(args)))
	}
	if value, ok := changes.SessionID.Value(); ok {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("session_id=$%d", len(args)))
	}
	if value, ok := changes.ResetToken.Value(); ok {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("reset_token=$%d", len(args)))
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE users SET %s WHERE id=$%d", strings.Join(sets, ", "), len(args))

	cmd, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			// The partial unique indexes on session_id and reset_token
			// reject a token value already assigned to another user.
			return domain.ErrDuplicateToken
		}
		return fmt.Errorf("update user: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
