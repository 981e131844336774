//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"restaurant-reservations/internal/domain/reservation"
	"restaurant-reservations/internal/domain/user"
	reqdto "restaurant-reservations/internal/handler/dto/request"
	"restaurant-reservations/internal/pkg/clock"
	"restaurant-reservations/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CapacityCommandsTestSuite struct {
	suite.Suite
	ctx      context.Context
	mockCtrl *gomock.Controller
	m        *uowMocks
	clock    *clock.MockClock
	cmds     commands.CapacityCommands
	staff    reservation.Actor
}

func (s *CapacityCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.m = newUoWMocks(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC))
	s.cmds = commands.NewCapacityCommands(s.m.uow, s.clock)
	s.staff = reservation.Actor{ID: uuid.New(), Role: user.RoleStaff}
}

func (s *CapacityCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCapacityCommandsSuite(t *testing.T) {
	suite.Run(t, new(CapacityCommandsTestSuite))
}

func (s *CapacityCommandsTestSuite) TestUpdate() {
	val := func(n int) *int { return &n }

	s.Run("partial update keeps the other fields", func() {
		s.m.capacity.EXPECT().GetForUpdate(gomock.Any(), gomock.Any()).Return(reservation.DefaultCapacityConfig(), nil)
		s.m.capacity.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, cfg reservation.CapacityConfig) (reservation.CapacityConfig, error) {
				return cfg, nil
			})

		cfg, err := s.cmds.Update(s.ctx, reqdto.UpdateCapacityConfigRequest{HallCapacity: val(450)}, s.staff)

		s.Require().NoError(err)
		s.Equal(30, cfg.Front())
		s.Equal(200, cfg.Gallery())
		s.Equal(450, cfg.Hall())
		s.Equal(30, cfg.MaxAdvanceDays())
		s.Equal(s.clock.Now(), cfg.UpdatedAt())
	})

	s.Run("rejects non positive values", func() {
		s.m.capacity.EXPECT().GetForUpdate(gomock.Any(), gomock.Any()).Return(reservation.DefaultCapacityConfig(), nil)

		_, err := s.cmds.Update(s.ctx, reqdto.UpdateCapacityConfigRequest{MaxAdvanceDays: val(0)}, s.staff)

		s.Require().ErrorIs(err, reservation.ErrInvalidInput)
		var rej *reservation.Rejection
		s.Require().ErrorAs(err, &rej)
		s.Equal("maxAdvanceDays", rej.Field)
	})

	s.Run("missing singleton", func() {
		s.m.capacity.EXPECT().GetForUpdate(gomock.Any(), gomock.Any()).Return(reservation.CapacityConfig{}, notFound())

		_, err := s.cmds.Update(s.ctx, reqdto.UpdateCapacityConfigRequest{HallCapacity: val(450)}, s.staff)

		s.ErrorIs(err, reservation.ErrConfigMissing)
	})

	s.Run("customers cannot change capacity", func() {
		_, err := s.cmds.Update(s.ctx, reqdto.UpdateCapacityConfigRequest{HallCapacity: val(450)},
			reservation.Actor{ID: uuid.New(), Role: user.RoleCustomer})

		s.ErrorIs(err, reservation.ErrForbidden)
	})
}

func (s *CapacityCommandsTestSuite) TestSeed() {
	want, err := reservation.NewCapacityConfig(10, 20, 30, 7)
	s.Require().NoError(err)
	s.m.capacity.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, cfg reservation.CapacityConfig) (reservation.CapacityConfig, error) {
			return cfg, nil
		})

	saved, err := s.cmds.Seed(s.ctx, want)

	s.Require().NoError(err)
	s.Equal(10, saved.Front())
	s.Equal(7, saved.MaxAdvanceDays())
	s.Equal(s.clock.Now(), saved.UpdatedAt())
}
