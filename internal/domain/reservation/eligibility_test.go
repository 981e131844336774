//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"restaurant-reservations/internal/domain/reservation"
	"restaurant-reservations/internal/domain/user"
	"restaurant-reservations/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicy_CheckCreateEligibility(t *testing.T) {
	p, _ := newPolicy()
	cfg := reservation.DefaultCapacityConfig()
	base := reservation.Candidate{Date: day(time.June, 14), Turn: reservation.TurnDinner, Zone: reservation.ZoneFront, PartySize: 2}

	cases := []struct {
		name     string
		mutate   func(*reservation.Candidate)
		reserved int
		errIs    error
		field    string
	}{
		{name: "fits", reserved: 28},
		{name: "zone full", reserved: 29, errIs: reservation.ErrZoneCapacityExceeded},
		{name: "party of zero", mutate: func(c *reservation.Candidate) { c.PartySize = 0 }, errIs: reservation.ErrInvalidInput, field: "partySize"},
		{name: "party of fifty one", mutate: func(c *reservation.Candidate) { c.PartySize = 51 }, errIs: reservation.ErrInvalidInput, field: "partySize"},
		{name: "unknown turn", mutate: func(c *reservation.Candidate) { c.Turn = "BRUNCH" }, errIs: reservation.ErrInvalidInput, field: "turn"},
		{name: "unknown zone", mutate: func(c *reservation.Candidate) { c.Zone = "ROOF" }, errIs: reservation.ErrInvalidInput, field: "zone"},
		{
			name:     "closed day checked before capacity",
			mutate:   func(c *reservation.Candidate) { c.Date = day(time.June, 16) },
			reserved: 30,
			errIs:    reservation.ErrClosedDay,
		},
		{
			name:     "window checked before capacity",
			mutate:   func(c *reservation.Candidate) { c.Date = day(time.July, 11) },
			reserved: 30,
			errIs:    reservation.ErrOutOfAdvanceWindow,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			candidate := base
			if c.mutate != nil {
				c.mutate(&candidate)
			}
			err := p.CheckCreateEligibility(candidate, cfg, c.reserved)
			if c.errIs == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, c.errIs)
			if c.field != "" {
				var rej *reservation.Rejection
				require.ErrorAs(t, err, &rej)
				assert.Equal(t, c.field, rej.Field)
			}
		})
	}
}

func TestPolicy_CheckEditable(t *testing.T) {
	p, _ := newPolicy()
	owner := uuid.New()
	customer := reservation.Actor{ID: owner, Role: user.RoleCustomer}
	staff := reservation.Actor{ID: uuid.New(), Role: user.RoleStaff}
	stranger := reservation.Actor{ID: uuid.New(), Role: user.RoleCustomer}

	upcoming := builder.NewReservationBuilder().WithCustomer(owner).BuildDomain()
	tomorrowDinner := builder.NewReservationBuilder().WithCustomer(owner).
		WithSlot(day(time.June, 11), reservation.TurnDinner).BuildDomain()
	cancelled := builder.NewReservationBuilder().WithCustomer(owner).
		WithStatus(reservation.StatusCancelledByRestaurant).BuildDomain()

	require.NoError(t, p.CheckEditable(upcoming, customer))
	require.NoError(t, p.CheckEditable(upcoming, staff))
	require.ErrorIs(t, p.CheckEditable(nil, customer), reservation.ErrNotFound)
	require.ErrorIs(t, p.CheckEditable(upcoming, stranger), reservation.ErrForbidden)

	t.Run("exactly 24 hours before the turn", func(t *testing.T) {
		require.ErrorIs(t, p.CheckEditable(tomorrowDinner, customer), reservation.ErrEditWindowExpired)
		require.NoError(t, p.CheckEditable(tomorrowDinner, staff), "staff are not bound by the edit window")
		assert.False(t, p.CanChange(tomorrowDinner))
		assert.True(t, p.CanChange(upcoming))
	})

	t.Run("already cancelled", func(t *testing.T) {
		err := p.CheckEditable(cancelled, staff)
		require.ErrorIs(t, err, reservation.ErrAlreadyCancelled)

		var rej *reservation.Rejection
		require.ErrorAs(t, err, &rej)
		assert.Equal(t, reservation.StatusCancelledByRestaurant, rej.Status)
	})

	t.Run("ownership checked before status", func(t *testing.T) {
		require.ErrorIs(t, p.CheckEditable(cancelled, stranger), reservation.ErrForbidden)
	})
}

func TestPolicy_CheckUpdateEligibility(t *testing.T) {
	p, _ := newPolicy()
	cfg := reservation.DefaultCapacityConfig()
	owner := uuid.New()
	customer := reservation.Actor{ID: owner, Role: user.RoleCustomer}

	existing := builder.NewReservationBuilder().WithCustomer(owner).
		WithZone(reservation.ZoneHall, 2).BuildDomain()

	t.Run("grow within the zone", func(t *testing.T) {
		next := existing.Merge(reservation.Changes{PartySize: intPtr(3)})
		require.NoError(t, p.CheckUpdateEligibility(existing, next, customer, cfg, 497))
	})

	t.Run("grow past the zone", func(t *testing.T) {
		next := existing.Merge(reservation.Changes{PartySize: intPtr(3)})
		err := p.CheckUpdateEligibility(existing, next, customer, cfg, 498)
		require.ErrorIs(t, err, reservation.ErrZoneCapacityExceeded)
	})

	t.Run("unchanged slot skips the capacity check", func(t *testing.T) {
		next := existing.Merge(reservation.Changes{})
		require.NoError(t, p.CheckUpdateEligibility(existing, next, customer, cfg, 500))
	})

	t.Run("moving to a closed day", func(t *testing.T) {
		sunday := day(time.June, 15)
		next := existing.Merge(reservation.Changes{Date: &sunday})
		err := p.CheckUpdateEligibility(existing, next, customer, cfg, 0)
		require.ErrorIs(t, err, reservation.ErrClosedDay)
	})

	t.Run("moving zone is checked against the target zone", func(t *testing.T) {
		front := reservation.ZoneFront
		next := existing.Merge(reservation.Changes{Zone: &front})
		require.NoError(t, p.CheckUpdateEligibility(existing, next, customer, cfg, 28))
		require.ErrorIs(t, p.CheckUpdateEligibility(existing, next, customer, cfg, 29), reservation.ErrZoneCapacityExceeded)
	})

	t.Run("invalid input reported after editability", func(t *testing.T) {
		stranger := reservation.Actor{ID: uuid.New(), Role: user.RoleCustomer}
		next := existing.Merge(reservation.Changes{PartySize: intPtr(0)})

		require.ErrorIs(t, p.CheckUpdateEligibility(existing, next, stranger, cfg, 0), reservation.ErrForbidden)
		require.ErrorIs(t, p.CheckUpdateEligibility(existing, next, customer, cfg, 0), reservation.ErrInvalidInput)
	})
}

func TestRequiresCapacityCheck(t *testing.T) {
	prev := reservation.Candidate{Date: day(time.June, 14), Turn: reservation.TurnLunch, Zone: reservation.ZoneHall, PartySize: 4}

	assert.False(t, reservation.RequiresCapacityCheck(prev, prev))

	shrink := prev
	shrink.PartySize = 2
	assert.True(t, reservation.RequiresCapacityCheck(prev, shrink))

	dinner := prev
	dinner.Turn = reservation.TurnDinner
	assert.True(t, reservation.RequiresCapacityCheck(prev, dinner))
}
