package shared

import (
	"restaurant-reservations/internal/domain/user"

	"github.com/google/uuid"
)

// Minimal snapshot for command read operations
type UserSnapshot struct {
	ID       uuid.UUID
	Email    string
	Role     user.Role
	IsActive bool
}

// NotificationJob is a queued outbox message claimed by the relay.
type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	Attempts int32
}
