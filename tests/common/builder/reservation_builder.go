//go:build unit || e2e

package builder

import (
	"time"

	"restaurant-reservations/internal/domain/calendar"
	"restaurant-reservations/internal/domain/reservation"
	sqlc "restaurant-reservations/internal/infra/sqlc/generated"
	"restaurant-reservations/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationBuilder struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	Date       calendar.Date
	Turn       reservation.Turn
	Zone       reservation.Zone
	PartySize  int
	Notes      string
	Status     reservation.Status
	CreatedAt  time.Time
}

// NewReservationBuilder defaults to an active dinner for two in the hall on
// Saturday 2025-06-14.
func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		Date:       calendar.MustNew(2025, time.June, 14),
		Turn:       reservation.TurnDinner,
		Zone:       reservation.ZoneHall,
		PartySize:  2,
		Status:     reservation.StatusActive,
		CreatedAt:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) BuildDomain() *reservation.Reservation {
	notes, _ := reservation.NewNotes(b.Notes)
	return reservation.ReconstructReservation(
		b.ID, b.CustomerID, b.Date, b.Turn, b.Zone, b.PartySize, notes, b.Status, b.CreatedAt, b.CreatedAt,
	)
}

func (b *ReservationBuilder) BuildInfra() sqlc.Reservations {
	return sqlc.Reservations{
		ID:         b.ID,
		CustomerID: b.CustomerID,
		Date:       pgtype.Date{Time: b.Date.Time(), Valid: true},
		Turn:       string(b.Turn),
		Zone:       string(b.Zone),
		PartySize:  int32(b.PartySize),
		Notes:      pgtype.Text{String: b.Notes, Valid: b.Notes != ""},
		Status:     string(b.Status),
		CreatedAt:  pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:  pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	v := &queries.ReservationView{
		ID:         b.ID,
		CustomerID: b.CustomerID,
		Date:       b.Date,
		Turn:       b.Turn,
		Zone:       b.Zone,
		PartySize:  b.PartySize,
		Status:     b.Status,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.CreatedAt,
	}
	if b.Notes != "" {
		n := b.Notes
		v.Notes = &n
	}
	return v
}

// Fluent builder methods
func (b *ReservationBuilder) WithCustomer(id uuid.UUID) *ReservationBuilder {
	b.CustomerID = id
	return b
}

func (b *ReservationBuilder) WithSlot(date calendar.Date, turn reservation.Turn) *ReservationBuilder {
	b.Date = date
	b.Turn = turn
	return b
}

func (b *ReservationBuilder) WithZone(zone reservation.Zone, partySize int) *ReservationBuilder {
	b.Zone = zone
	b.PartySize = partySize
	return b
}

func (b *ReservationBuilder) WithNotes(notes string) *ReservationBuilder {
	b.Notes = notes
	return b
}

func (b *ReservationBuilder) WithStatus(status reservation.Status) *ReservationBuilder {
	b.Status = status
	return b
}
