//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"restaurant-reservations/internal/domain/reservation"
	"restaurant-reservations/internal/infra"
	sqlc "restaurant-reservations/internal/infra/sqlc/generated"
	"restaurant-reservations/internal/pkg/pgconv"
	repositorymock "restaurant-reservations/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCapacityConfigGetForUpdate(t *testing.T) {
	updatedAt := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockCapacityConfigWriteQueries(ctrl)
		mockQueries.EXPECT().GetCapacityConfigForUpdate(gomock.Any(), gomock.Any()).Return(sqlc.CapacityConfig{
			ID: 1, FrontCapacity: 30, GalleryCapacity: 200, HallCapacity: 500, MaxAdvanceDays: 30,
			UpdatedAt: pgconv.TimeToPgtype(updatedAt),
		}, nil)

		cfg, err := NewCapacityConfigRepository(mockQueries, nil).GetForUpdate(context.Background(), nil)

		require.NoError(t, err)
		assert.Equal(t, 30, cfg.Front())
		assert.Equal(t, 200, cfg.Gallery())
		assert.Equal(t, 500, cfg.Hall())
		assert.True(t, updatedAt.Equal(cfg.UpdatedAt()))
	})

	t.Run("missing singleton", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockCapacityConfigWriteQueries(ctrl)
		mockQueries.EXPECT().GetCapacityConfigForUpdate(gomock.Any(), gomock.Any()).Return(sqlc.CapacityConfig{}, pgx.ErrNoRows)

		_, err := NewCapacityConfigRepository(mockQueries, nil).GetForUpdate(context.Background(), nil)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestCapacityConfigSave(t *testing.T) {
	now := time.Date(2025, 6, 10, 23, 0, 0, 0, time.UTC)
	cfg := reservation.ReconstructCapacityConfig(40, 180, 500, 45, now)

	t.Run("upserts and returns the stored row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockCapacityConfigWriteQueries(ctrl)
		mockQueries.EXPECT().
			UpsertCapacityConfig(gomock.Any(), gomock.Any(), sqlc.UpsertCapacityConfigParams{
				FrontCapacity: 40, GalleryCapacity: 180, HallCapacity: 500, MaxAdvanceDays: 45,
				UpdatedAt: pgconv.TimeToPgtype(now),
			}).
			Return(sqlc.CapacityConfig{
				ID: 1, FrontCapacity: 40, GalleryCapacity: 180, HallCapacity: 500, MaxAdvanceDays: 45,
				UpdatedAt: pgconv.TimeToPgtype(now),
			}, nil)

		saved, err := NewCapacityConfigRepository(mockQueries, nil).Save(context.Background(), nil, cfg)

		require.NoError(t, err)
		assert.Equal(t, 720, saved.Total())
		assert.Equal(t, 45, saved.MaxAdvanceDays())
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockCapacityConfigWriteQueries(ctrl)
		mockQueries.EXPECT().UpsertCapacityConfig(gomock.Any(), gomock.Any(), gomock.Any()).Return(sqlc.CapacityConfig{}, assert.AnError)

		_, err := NewCapacityConfigRepository(mockQueries, nil).Save(context.Background(), nil, cfg)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
