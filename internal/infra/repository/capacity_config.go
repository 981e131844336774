package repository

import (
	"context"

	"restaurant-reservations/internal/domain/reservation"
	"restaurant-reservations/internal/infra"
	"restaurant-reservations/internal/infra/repository/converter"
	sqlc "restaurant-reservations/internal/infra/sqlc/generated"
	"restaurant-reservations/internal/pkg/pgconv"
)

type CapacityConfigWriteQueries interface {
	GetCapacityConfigForUpdate(ctx context.Context, db sqlc.DBTX) (sqlc.CapacityConfig, error)
	UpsertCapacityConfig(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertCapacityConfigParams) (sqlc.CapacityConfig, error)
}

type CapacityConfigRepository struct {
	queries CapacityConfigWriteQueries
	db      sqlc.DBTX
}

func NewCapacityConfigRepository(queries CapacityConfigWriteQueries, db sqlc.DBTX) *CapacityConfigRepository {
	return &CapacityConfigRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CapacityConfigRepository) GetForUpdate(ctx context.Context, tx sqlc.DBTX) (reservation.CapacityConfig, error) {
	row, err := r.queries.GetCapacityConfigForUpdate(ctx, tx)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return reservation.CapacityConfig{}, infra.WrapRepoErr("capacity config not found", err, infra.KindNotFound)
		}
		return reservation.CapacityConfig{}, infra.WrapRepoErr("failed to lock capacity config", err)
	}
	return converter.CapacityConfigFromRow(row), nil
}

func (r *CapacityConfigRepository) Save(ctx context.Context, tx sqlc.DBTX, cfg reservation.CapacityConfig) (reservation.CapacityConfig, error) {
	row, err := r.queries.UpsertCapacityConfig(ctx, tx, converter.CapacityConfigToUpsertParams(cfg))
	if err != nil {
		return reservation.CapacityConfig{}, infra.WrapRepoErr("failed to save capacity config", err)
	}
	return converter.CapacityConfigFromRow(row), nil
}
