package queries

import (
	"context"

	"restaurant-reservations/internal/domain/reservation"
	"restaurant-reservations/internal/infra"
)

type CapacityReadStore interface {
	Get(ctx context.Context) (reservation.CapacityConfig, error)
}

type CapacityQueries interface {
	Get(ctx context.Context) (*CapacityConfigView, error)
}

type capacityQueriesImpl struct {
	readStore CapacityReadStore
}

func NewCapacityQueries(readStore CapacityReadStore) CapacityQueries {
	return &capacityQueriesImpl{readStore: readStore}
}

func (q *capacityQueriesImpl) Get(ctx context.Context) (*CapacityConfigView, error) {
	cfg, err := loadCapacityConfig(ctx, q.readStore)
	if err != nil {
		return nil, err
	}
	return NewCapacityConfigView(cfg), nil
}

func loadCapacityConfig(ctx context.Context, store CapacityReadStore) (reservation.CapacityConfig, error) {
	cfg, err := store.Get(ctx)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return reservation.CapacityConfig{}, reservation.ConfigMissing()
		}
		return reservation.CapacityConfig{}, err
	}
	return cfg, nil
}
