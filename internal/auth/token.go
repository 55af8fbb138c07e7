package auth

import "github.com/google/uuid"

// NewToken returns a fresh opaque credential: a canonical version-4
// UUID string drawn from a cryptographically secure source. Session and
// reset tokens are both minted here but live in separate columns and
// are never interchangeable.
func NewToken() string {
	return uuid.NewString()
}
