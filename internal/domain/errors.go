package domain

import "errors"

// Sentinel errors returned by the user store and the auth service.
// Callers branch on these with errors.Is; storage failures are wrapped
// separately and never collapse into a lookup miss.
var (
	// ErrDuplicateUser signals a registration attempt for an email that
	// already has an account.
	ErrDuplicateUser = errors.New("email already registered")

	// ErrUserNotFound signals a lookup miss on email, id, session token
	// or reset token.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidResetToken signals a password update with an unknown or
	// already-consumed reset token.
	ErrInvalidResetToken = errors.New("invalid reset token")

	// ErrDuplicateToken signals an update that would assign a session or
	// reset token value already held by another user. Tokens identify at
	// most one user, mirroring the partial unique indexes on the users
	// table.
	ErrDuplicateToken = errors.New("token already assigned")
)
