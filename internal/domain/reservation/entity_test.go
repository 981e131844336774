//go:build unit

package reservation_test

import (
	"strings"
	"testing"
	"time"

	"restaurant-reservations/internal/domain/reservation"
	"restaurant-reservations/internal/domain/user"
	"restaurant-reservations/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReservation(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	candidate := reservation.Candidate{Date: day(time.June, 14), Turn: reservation.TurnLunch, Zone: reservation.ZoneGallery, PartySize: 6}
	notes, err := reservation.NewNotes("  window table  ")
	require.NoError(t, err)

	t.Run("starts active", func(t *testing.T) {
		customerID := uuid.New()
		r, err := reservation.NewReservation(customerID, candidate, notes, now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, r.ID())
		assert.Equal(t, customerID, r.CustomerID())
		assert.Equal(t, reservation.StatusActive, r.Status())
		assert.Equal(t, "window table", r.Notes().String())
		assert.Equal(t, now, r.CreatedAt())
		if diff := cmp.Diff(candidate, r.Candidate()); diff != "" {
			t.Errorf("candidate mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("requires a customer", func(t *testing.T) {
		_, err := reservation.NewReservation(uuid.Nil, candidate, notes, now)
		require.ErrorIs(t, err, reservation.ErrInvalidInput)
	})

	t.Run("rejects an invalid party size", func(t *testing.T) {
		c := candidate
		c.PartySize = 51
		_, err := reservation.NewReservation(uuid.New(), c, notes, now)

		var rej *reservation.Rejection
		require.ErrorAs(t, err, &rej)
		assert.Equal(t, "partySize", rej.Field)
		assert.Contains(t, rej.Message(), "contact the restaurant")
	})
}

func TestNewNotes(t *testing.T) {
	n, err := reservation.NewNotes(strings.Repeat("ñ", reservation.MaxNotesLength))
	require.NoError(t, err)
	assert.False(t, n.IsEmpty())

	_, err = reservation.NewNotes(strings.Repeat("a", reservation.MaxNotesLength+1))
	require.ErrorIs(t, err, reservation.ErrInvalidInput)

	blank, err := reservation.NewNotes("   ")
	require.NoError(t, err)
	assert.True(t, blank.IsEmpty())
}

func TestParseEnums(t *testing.T) {
	turn, err := reservation.NewTurn(" dinner ")
	require.NoError(t, err)
	assert.Equal(t, reservation.TurnDinner, turn)
	assert.Equal(t, 20, turn.ReferenceHour())
	assert.Equal(t, 12, reservation.TurnLunch.ReferenceHour())

	_, err = reservation.NewTurn("brunch")
	require.ErrorIs(t, err, reservation.ErrInvalidInput)

	zone, err := reservation.NewZone("gallery")
	require.NoError(t, err)
	assert.Equal(t, reservation.ZoneGallery, zone)

	_, err = reservation.NewZone("terrace")
	require.ErrorIs(t, err, reservation.ErrInvalidInput)

	status, err := reservation.NewStatus("cancelled_by_customer")
	require.NoError(t, err)
	assert.True(t, status.IsCancelled())
	assert.False(t, reservation.StatusActive.IsCancelled())
}

func TestReservation_Merge(t *testing.T) {
	r := builder.NewReservationBuilder().WithZone(reservation.ZoneHall, 4).BuildDomain()

	lunch := reservation.TurnLunch
	c := r.Merge(reservation.Changes{Turn: &lunch, PartySize: intPtr(6)})

	assert.Equal(t, r.Date(), c.Date)
	assert.Equal(t, reservation.TurnLunch, c.Turn)
	assert.Equal(t, reservation.ZoneHall, c.Zone)
	assert.Equal(t, 6, c.PartySize)
	assert.Equal(t, reservation.TurnDinner, r.Turn(), "merge does not mutate")
}

func TestReservation_Reschedule(t *testing.T) {
	r := builder.NewReservationBuilder().WithNotes("birthday").BuildDomain()
	now := time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)

	c := r.Candidate()
	c.PartySize = 8
	r.Reschedule(c, nil, now)

	assert.Equal(t, 8, r.PartySize())
	assert.Equal(t, "birthday", r.Notes().String(), "nil notes keep the stored value")
	assert.Equal(t, now, r.UpdatedAt())

	empty, _ := reservation.NewNotes("")
	r.Reschedule(c, &empty, now)
	assert.True(t, r.Notes().IsEmpty())
}

func TestReservation_Transition(t *testing.T) {
	owner := uuid.New()
	customer := reservation.Actor{ID: owner, Role: user.RoleCustomer}
	staff := reservation.Actor{ID: uuid.New(), Role: user.RoleStaff}

	t.Run("customer cancels", func(t *testing.T) {
		p, clk := newPolicy()
		r := builder.NewReservationBuilder().WithCustomer(owner).BuildDomain()

		action := reservation.CancelActionFor(customer)
		require.Equal(t, reservation.ActionCancelByCustomer, action)
		require.NoError(t, r.Transition(action, customer, p))

		assert.Equal(t, reservation.StatusCancelledByCustomer, r.Status())
		assert.Equal(t, clk.Now(), r.UpdatedAt())
	})

	t.Run("staff cancels for the restaurant", func(t *testing.T) {
		p, _ := newPolicy()
		r := builder.NewReservationBuilder().WithCustomer(owner).BuildDomain()

		action := reservation.CancelActionFor(staff)
		require.Equal(t, reservation.ActionCancelByRestaurant, action)
		require.NoError(t, r.Transition(action, staff, p))
		assert.Equal(t, reservation.StatusCancelledByRestaurant, r.Status())
	})

	t.Run("customer cannot cancel for the restaurant", func(t *testing.T) {
		p, _ := newPolicy()
		r := builder.NewReservationBuilder().WithCustomer(owner).BuildDomain()

		err := r.Transition(reservation.ActionCancelByRestaurant, customer, p)
		require.ErrorIs(t, err, reservation.ErrForbidden)
		assert.Equal(t, reservation.StatusActive, r.Status())
	})

	t.Run("cancelled is terminal", func(t *testing.T) {
		p, _ := newPolicy()
		r := builder.NewReservationBuilder().WithCustomer(owner).BuildDomain()
		require.NoError(t, r.Transition(reservation.ActionCancelByCustomer, customer, p))

		require.ErrorIs(t, r.Transition(reservation.ActionCancelByRestaurant, staff, p), reservation.ErrAlreadyCancelled)
		require.ErrorIs(t, r.Transition(reservation.ActionUpdate, staff, p), reservation.ErrAlreadyCancelled)
		assert.Equal(t, reservation.StatusCancelledByCustomer, r.Status())
	})

	t.Run("update only gates", func(t *testing.T) {
		p, _ := newPolicy()
		r := builder.NewReservationBuilder().WithCustomer(owner).BuildDomain()
		before := r.UpdatedAt()

		require.NoError(t, r.Transition(reservation.ActionUpdate, customer, p))
		assert.Equal(t, reservation.StatusActive, r.Status())
		assert.Equal(t, before, r.UpdatedAt())
	})

	t.Run("customer inside the edit window", func(t *testing.T) {
		p, _ := newPolicy()
		r := builder.NewReservationBuilder().WithCustomer(owner).
			WithSlot(day(time.June, 11), reservation.TurnLunch).BuildDomain()

		require.ErrorIs(t, r.Transition(reservation.ActionCancelByCustomer, customer, p), reservation.ErrEditWindowExpired)
		require.NoError(t, r.Transition(reservation.ActionCancelByRestaurant, staff, p))
	})
}

func TestSlot_Key(t *testing.T) {
	s := reservation.Slot{Date: day(time.June, 14), Turn: reservation.TurnLunch, Zone: reservation.ZoneFront}
	assert.Equal(t, "slot:2025-06-14:LUNCH:FRONT", s.Key())
}
