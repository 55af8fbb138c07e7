package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered         EventType = "user_registered"
	EventSessionCreated         EventType = "session_created"
	EventSessionDestroyed       EventType = "session_destroyed"
	EventPasswordResetRequested EventType = "password_reset_requested"
	EventPasswordUpdated        EventType = "password_updated"
)

// Event represents a domain event emitted by the auth service.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	UserID    string      `json:"user_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	Email string `json:"email"`
}

// SessionCreatedPayload payload.
type SessionCreatedPayload struct {
	Email string `json:"email"`
}

// PasswordResetRequestedPayload payload. The reset token itself is
// delivered out of band and intentionally never serialized here.
type PasswordResetRequestedPayload struct {
	Email string `json:"email"`
}

// PasswordUpdatedPayload payload.
type PasswordUpdatedPayload struct {
	Email string `json:"email"`
}
