package readstore

import (
	"context"

	"restaurant-reservations/internal/domain/calendar"
	"restaurant-reservations/internal/domain/reservation"
	"restaurant-reservations/internal/infra"
	sqlc "restaurant-reservations/internal/infra/sqlc/generated"
	"restaurant-reservations/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OccupancyQueries interface {
	SumOccupancyByZone(ctx context.Context, db sqlc.DBTX, arg sqlc.SumOccupancyByZoneParams) ([]sqlc.SumOccupancyByZoneRow, error)
}

type OccupancyReadStore struct {
	queries OccupancyQueries
	db      sqlc.DBTX
}

func NewOccupancyReadStore(queries OccupancyQueries, db sqlc.DBTX) *OccupancyReadStore {
	return &OccupancyReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *OccupancyReadStore) Occupancy(ctx context.Context, date calendar.Date, turn reservation.Turn) (reservation.Occupancy, error) {
	return r.OccupancyExcluding(ctx, date, turn, nil)
}

// OccupancyExcluding sums ACTIVE party sizes per zone, leaving out excludeID when set.
func (r *OccupancyReadStore) OccupancyExcluding(ctx context.Context, date calendar.Date, turn reservation.Turn, excludeID *uuid.UUID) (reservation.Occupancy, error) {
	rows, err := r.queries.SumOccupancyByZone(ctx, r.db, sqlc.SumOccupancyByZoneParams{
		Date:      pgconv.DateToPgtype(date),
		Turn:      turn.String(),
		ExcludeID: pgconv.UUIDPtrToPgtype(excludeID),
	})
	if err != nil {
		return reservation.Occupancy{}, infra.WrapRepoErr("failed to sum occupancy", err)
	}

	byZone := make(map[reservation.Zone]int, len(rows))
	count := 0
	for _, row := range rows {
		byZone[reservation.Zone(row.Zone)] = int(row.People)
		count += int(row.Reservations)
	}
	return reservation.NewOccupancy(byZone, count), nil
}
