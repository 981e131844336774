package commands

import (
	"context"

	"restaurant-reservations/internal/domain/calendar"
	"restaurant-reservations/internal/domain/reservation"
)

// OccupancyInvalidator drops cached availability for a date and turn after a
// committed write.
type OccupancyInvalidator interface {
	Invalidate(ctx context.Context, date calendar.Date, turn reservation.Turn)
}
