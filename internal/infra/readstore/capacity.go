package readstore

import (
	"context"

	"restaurant-reservations/internal/domain/reservation"
	"restaurant-reservations/internal/infra"
	"restaurant-reservations/internal/infra/repository/converter"
	sqlc "restaurant-reservations/internal/infra/sqlc/generated"
	"restaurant-reservations/internal/pkg/pgconv"
)

type CapacityReadQueries interface {
	GetCapacityConfig(ctx context.Context, db sqlc.DBTX) (sqlc.CapacityConfig, error)
}

type CapacityReadStore struct {
	queries CapacityReadQueries
	db      sqlc.DBTX
}

func NewCapacityReadStore(queries CapacityReadQueries, db sqlc.DBTX) *CapacityReadStore {
	return &CapacityReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CapacityReadStore) Get(ctx context.Context) (reservation.CapacityConfig, error) {
	row, err := r.queries.GetCapacityConfig(ctx, r.db)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return reservation.CapacityConfig{}, infra.WrapRepoErr("capacity config not found", err, infra.KindNotFound)
		}
		return reservation.CapacityConfig{}, infra.WrapRepoErr("failed to get capacity config", err)
	}
	return converter.CapacityConfigFromRow(row), nil
}
