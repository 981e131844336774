//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"restaurant-reservations/internal/domain/calendar"
	"restaurant-reservations/internal/domain/reservation"
	"restaurant-reservations/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var buenosAires = mustLoadLocation("America/Argentina/Buenos_Aires")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// newPolicy pins the clock to Tuesday 2025-06-10 20:00 in Buenos Aires.
func newPolicy() (*reservation.Policy, *clock.MockClock) {
	clk := clock.NewMockClock(time.Date(2025, 6, 10, 20, 0, 0, 0, buenosAires))
	return reservation.NewPolicy(clk, buenosAires), clk
}

func day(m time.Month, d int) calendar.Date {
	return calendar.MustNew(2025, m, d)
}

func TestIsOpeningDay(t *testing.T) {
	cases := []struct {
		date calendar.Date
		open bool
	}{
		{day(time.June, 10), true},  // Tuesday
		{day(time.June, 11), true},  // Wednesday
		{day(time.June, 12), true},  // Thursday
		{day(time.June, 13), true},  // Friday
		{day(time.June, 14), true},  // Saturday
		{day(time.June, 15), false}, // Sunday
		{day(time.June, 16), false}, // Monday
	}
	for _, c := range cases {
		t.Run(c.date.String(), func(t *testing.T) {
			assert.Equal(t, c.open, reservation.IsOpeningDay(c.date))
		})
	}
	assert.Equal(t, []int{2, 3, 4, 5, 6}, reservation.OpeningDays())
}

func TestPolicy_Today(t *testing.T) {
	p, clk := newPolicy()
	assert.Equal(t, "2025-06-10", p.Today().String())

	// 23:30 local is already the next day in UTC.
	clk.Set(time.Date(2025, 6, 10, 23, 30, 0, 0, buenosAires))
	assert.Equal(t, "2025-06-10", p.Today().String())

	clk.Set(time.Date(2025, 6, 11, 0, 30, 0, 0, buenosAires))
	assert.Equal(t, "2025-06-11", p.Today().String())
}

func TestPolicy_IsWithinAdvanceWindow(t *testing.T) {
	p, _ := newPolicy()

	assert.True(t, p.IsWithinAdvanceWindow(day(time.June, 10), 30), "today")
	assert.True(t, p.IsWithinAdvanceWindow(day(time.July, 10), 30), "last day of the window")
	assert.False(t, p.IsWithinAdvanceWindow(day(time.July, 11), 30), "one past the window")
	assert.False(t, p.IsWithinAdvanceWindow(day(time.June, 9), 30), "yesterday")
	assert.True(t, p.IsWithinAdvanceWindow(day(time.June, 11), 1))
	assert.False(t, p.IsWithinAdvanceWindow(day(time.June, 12), 1))
}

func TestPolicy_HasMoreThan24HoursUntilTurn(t *testing.T) {
	p, clk := newPolicy()

	assert.False(t, p.HasMoreThan24HoursUntilTurn(day(time.June, 11), reservation.TurnDinner), "exactly 24h")
	assert.True(t, p.HasMoreThan24HoursUntilTurn(day(time.June, 12), reservation.TurnLunch))
	assert.False(t, p.HasMoreThan24HoursUntilTurn(day(time.June, 11), reservation.TurnLunch))

	clk.Set(time.Date(2025, 6, 10, 19, 59, 59, 0, buenosAires))
	assert.True(t, p.HasMoreThan24HoursUntilTurn(day(time.June, 11), reservation.TurnDinner), "one second more than 24h")
}

func TestPolicy_PastAndFuture(t *testing.T) {
	p, _ := newPolicy()

	assert.True(t, p.IsFutureDate(day(time.June, 10)))
	assert.False(t, p.IsPastDate(day(time.June, 10)))
	assert.True(t, p.IsPastDate(day(time.June, 9)))
	assert.False(t, p.IsFutureDate(day(time.June, 9)))
}

func TestPolicy_CheckCalendarEligibility(t *testing.T) {
	p, _ := newPolicy()
	cfg := reservation.DefaultCapacityConfig()

	candidate := func(d calendar.Date) reservation.Candidate {
		return reservation.Candidate{Date: d, Turn: reservation.TurnDinner, Zone: reservation.ZoneHall, PartySize: 2}
	}

	t.Run("open day inside the window", func(t *testing.T) {
		require.NoError(t, p.CheckCalendarEligibility(candidate(day(time.July, 10)), cfg))
	})

	t.Run("sunday is closed", func(t *testing.T) {
		err := p.CheckCalendarEligibility(candidate(day(time.June, 15)), cfg)
		require.ErrorIs(t, err, reservation.ErrClosedDay)

		var rej *reservation.Rejection
		require.ErrorAs(t, err, &rej)
		assert.Equal(t, time.Sunday, rej.Weekday)
	})

	t.Run("monday is closed", func(t *testing.T) {
		err := p.CheckCalendarEligibility(candidate(day(time.June, 16)), cfg)
		require.ErrorIs(t, err, reservation.ErrClosedDay)
	})

	t.Run("closed day wins over the advance window", func(t *testing.T) {
		err := p.CheckCalendarEligibility(candidate(day(time.August, 4)), cfg)
		require.ErrorIs(t, err, reservation.ErrClosedDay)
	})

	t.Run("past the window", func(t *testing.T) {
		err := p.CheckCalendarEligibility(candidate(day(time.July, 11)), cfg)
		require.ErrorIs(t, err, reservation.ErrOutOfAdvanceWindow)

		var rej *reservation.Rejection
		require.ErrorAs(t, err, &rej)
		assert.Equal(t, 30, rej.MaxAdvanceDays)
	})

	t.Run("in the past", func(t *testing.T) {
		err := p.CheckCalendarEligibility(candidate(day(time.June, 7)), cfg)
		require.ErrorIs(t, err, reservation.ErrOutOfAdvanceWindow)
	})
}
