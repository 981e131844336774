//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"restaurant-reservations/internal/domain/calendar"
	"restaurant-reservations/internal/domain/reservation"
	"restaurant-reservations/internal/infra"
	sqlc "restaurant-reservations/internal/infra/sqlc/generated"
	"restaurant-reservations/tests/common/builder"
	repositorymock "restaurant-reservations/tests/mock/repository"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReservationCreate(t *testing.T) {
	b := builder.NewReservationBuilder().WithNotes("birthday")
	res := b.BuildDomain()

	t.Run("success - maps every column", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
		want := b.BuildInfra()
		mockQueries.EXPECT().
			CreateReservation(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateReservationParams) (uuid.UUID, error) {
				got := sqlc.Reservations(arg)
				if diff := cmp.Diff(want, got); diff != "" {
					t.Errorf("params mismatch (-want +got):\n%s", diff)
				}
				return arg.ID, nil
			})

		id, err := NewReservationRepository(mockQueries, nil).Create(context.Background(), nil, res)

		require.NoError(t, err)
		assert.Equal(t, res.ID(), id)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
		mockQueries.EXPECT().CreateReservation(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.Nil, assert.AnError)

		_, err := NewReservationRepository(mockQueries, nil).Create(context.Background(), nil, res)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestReservationUpdate(t *testing.T) {
	res := builder.NewReservationBuilder().BuildDomain()

	tests := []struct {
		name     string
		affected int64
		mockErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success", affected: 1},
		{name: "no row updated", affected: 0, wantKind: infra.KindNotFound},
		{name: "database error", mockErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
			mockQueries.EXPECT().
				UpdateReservation(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(tt.affected, tt.mockErr)

			err := NewReservationRepository(mockQueries, nil).Update(context.Background(), nil, res)

			if tt.wantKind == "" {
				assert.NoError(t, err)
			} else {
				assert.True(t, infra.IsKind(err, tt.wantKind))
			}
		})
	}
}

func TestReservationFindByIDForUpdate(t *testing.T) {
	row := builder.NewReservationBuilder().WithZone(reservation.ZoneFront, 6).BuildInfra()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
		mockQueries.EXPECT().LockReservationByID(gomock.Any(), gomock.Any(), row.ID).Return(row, nil)

		res, err := NewReservationRepository(mockQueries, nil).FindByIDForUpdate(context.Background(), nil, row.ID)

		require.NoError(t, err)
		assert.Equal(t, row.ID, res.ID())
		assert.Equal(t, reservation.ZoneFront, res.Zone())
		assert.Equal(t, 6, res.PartySize())
		assert.True(t, res.Date().Equal(calendar.MustNew(2025, time.June, 14)))
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
		mockQueries.EXPECT().LockReservationByID(gomock.Any(), gomock.Any(), gomock.Any()).Return(sqlc.Reservations{}, pgx.ErrNoRows)

		res, err := NewReservationRepository(mockQueries, nil).FindByIDForUpdate(context.Background(), nil, uuid.New())

		assert.Nil(t, res)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("corrupt row", func(t *testing.T) {
		bad := row
		bad.Zone = "ROOFTOP"
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
		mockQueries.EXPECT().LockReservationByID(gomock.Any(), gomock.Any(), bad.ID).Return(bad, nil)

		res, err := NewReservationRepository(mockQueries, nil).FindByIDForUpdate(context.Background(), nil, bad.ID)

		assert.Nil(t, res)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestLockSlot(t *testing.T) {
	slot := reservation.Slot{Date: calendar.MustNew(2025, time.June, 14), Turn: reservation.TurnLunch, Zone: reservation.ZoneFront}

	t.Run("locks on the slot key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
		mockQueries.EXPECT().LockSlot(gomock.Any(), gomock.Any(), "slot:2025-06-14:LUNCH:FRONT").Return(nil)

		assert.NoError(t, NewReservationRepository(mockQueries, nil).LockSlot(context.Background(), nil, slot))
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
		mockQueries.EXPECT().LockSlot(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)

		err := NewReservationRepository(mockQueries, nil).LockSlot(context.Background(), nil, slot)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
