package shared

import (
	"context"
	"time"

	"restaurant-reservations/internal/domain/calendar"
	"restaurant-reservations/internal/domain/reservation"
	"restaurant-reservations/internal/domain/user"
	sqlc "restaurant-reservations/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Reservations() ReservationRepository
	Users() UserRepository
	CapacityConfig() CapacityConfigRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// CommandReads are the reads the write side gates on. Inside a Tx they see
// the transaction's own writes and locks.
type CommandReads interface {
	CapacityConfig(ctx context.Context) (reservation.CapacityConfig, error)
	Occupancy(ctx context.Context, date calendar.Date, turn reservation.Turn, excludeID *uuid.UUID) (reservation.Occupancy, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (uuid.UUID, error)
	Update(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error
	FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error)
	// LockSlot serializes writers of one (date, turn, zone) until the transaction ends.
	LockSlot(ctx context.Context, tx sqlc.DBTX, slot reservation.Slot) error
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, at time.Time) error
	FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*user.User, error)
	Update(ctx context.Context, tx sqlc.DBTX, u *user.User) error
}

type CapacityConfigRepository interface {
	GetForUpdate(ctx context.Context, tx sqlc.DBTX) (reservation.CapacityConfig, error)
	Save(ctx context.Context, tx sqlc.DBTX, cfg reservation.CapacityConfig) (reservation.CapacityConfig, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
	ClaimDue(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]NotificationJob, error)
	UpdateJobStatus(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, status string, lastError *string, runAt time.Time) error
}
