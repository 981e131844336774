package converter

import (
	"fmt"

	"restaurant-reservations/internal/domain/reservation"
	sqlc "restaurant-reservations/internal/infra/sqlc/generated"
	"restaurant-reservations/internal/pkg/pgconv"
)

func ReservationToCreateParams(res *reservation.Reservation) sqlc.CreateReservationParams {
	return sqlc.CreateReservationParams{
		ID:         res.ID(),
		CustomerID: res.CustomerID(),
		Date:       pgconv.DateToPgtype(res.Date()),
		Turn:       res.Turn().String(),
		Zone:       res.Zone().String(),
		PartySize:  partySizeToInt32(res.PartySize()),
		Notes:      pgconv.StringToPgtype(res.Notes().String()),
		Status:     res.Status().String(),
		CreatedAt:  pgconv.TimeToPgtype(res.CreatedAt()),
		UpdatedAt:  pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

func ReservationToUpdateParams(res *reservation.Reservation) sqlc.UpdateReservationParams {
	return sqlc.UpdateReservationParams{
		ID:        res.ID(),
		Date:      pgconv.DateToPgtype(res.Date()),
		Turn:      res.Turn().String(),
		Zone:      res.Zone().String(),
		PartySize: partySizeToInt32(res.PartySize()),
		Notes:     pgconv.StringToPgtype(res.Notes().String()),
		Status:    res.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

// ReservationFromRow rebuilds the aggregate. Values that fail domain parsing
// mean the row was written outside this service.
func ReservationFromRow(row sqlc.Reservations) (*reservation.Reservation, error) {
	turn, err := reservation.NewTurn(row.Turn)
	if err != nil {
		return nil, fmt.Errorf("reservation %s: %w", row.ID, err)
	}
	zone, err := reservation.NewZone(row.Zone)
	if err != nil {
		return nil, fmt.Errorf("reservation %s: %w", row.ID, err)
	}
	status, err := reservation.NewStatus(row.Status)
	if err != nil {
		return nil, fmt.Errorf("reservation %s: %w", row.ID, err)
	}
	notes, err := reservation.NewNotes(pgconv.StringFromPgtype(row.Notes))
	if err != nil {
		return nil, fmt.Errorf("reservation %s: %w", row.ID, err)
	}

	return reservation.ReconstructReservation(
		row.ID,
		row.CustomerID,
		pgconv.DateFromPgtype(row.Date),
		turn,
		zone,
		int(row.PartySize),
		notes,
		status,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func partySizeToInt32(n int) int32 {
	if n < 0 || n > reservation.MaxPartySize {
		panic(fmt.Sprintf("party size out of range: %d", n))
	}
	return int32(n)
}
