package domain

import "time"

// User is the identity record managed by the authentication core.
// SessionID and ResetToken are nil when no session / reset request is
// outstanding for the account.
type User struct {
	ID             string
	Email          string
	HashedPassword string
	SessionID      *string
	ResetToken     *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TokenChange describes one optional mutation of a nullable token field.
// The zero value leaves the field unchanged; SetToken replaces it and
// ClearToken resets it to absent.
type TokenChange struct {
	apply bool
	value *string
}

// SetToken returns a change that stores the given token value.
func SetToken(token string) TokenChange {
	return TokenChange{apply: true, value: &token}
}

// ClearToken returns a change that clears the field to absent.
func ClearToken() TokenChange {
	return TokenChange{apply: true}
}

// Value reports whether the change should be applied and, if so, the
// value to store (nil clears the field).
func (c TokenChange) Value() (*string, bool) {
	return c.value, c.apply
}

// UserChanges is a partial update of a user's mutable fields. A nil
// HashedPassword and zero-valued token changes leave the corresponding
// fields untouched.
type UserChanges struct {
	HashedPassword *string
	SessionID      TokenChange
	ResetToken     TokenChange
}

// IsEmpty reports whether the update would change nothing.
func (c UserChanges) IsEmpty() bool {
	_, session := c.SessionID.Value()
	_, reset := c.ResetToken.Value()
	return c.HashedPassword == nil && !session && !reset
}
