package converter

import (
	"restaurant-reservations/internal/domain/reservation"
	sqlc "restaurant-reservations/internal/infra/sqlc/generated"
	"restaurant-reservations/internal/pkg/pgconv"
)

func CapacityConfigFromRow(row sqlc.CapacityConfig) reservation.CapacityConfig {
	return reservation.ReconstructCapacityConfig(
		int(row.FrontCapacity),
		int(row.GalleryCapacity),
		int(row.HallCapacity),
		int(row.MaxAdvanceDays),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func CapacityConfigToUpsertParams(cfg reservation.CapacityConfig) sqlc.UpsertCapacityConfigParams {
	return sqlc.UpsertCapacityConfigParams{
		FrontCapacity:   clampInt32(cfg.Front()),
		GalleryCapacity: clampInt32(cfg.Gallery()),
		HallCapacity:    clampInt32(cfg.Hall()),
		MaxAdvanceDays:  clampInt32(cfg.MaxAdvanceDays()),
		UpdatedAt:       pgconv.TimeToPgtype(cfg.UpdatedAt()),
	}
}

func clampInt32(n int) int32 {
	const maxInt32 = 1<<31 - 1
	if n > maxInt32 {
		return maxInt32
	}
	return int32(n)
}
