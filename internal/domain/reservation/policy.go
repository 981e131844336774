package reservation

import (
	"time"

	"restaurant-reservations/internal/domain/calendar"
	"restaurant-reservations/internal/pkg/clock"
)

const editWindow = 24 * time.Hour

var openingDays = map[time.Weekday]bool{
	time.Tuesday:   true,
	time.Wednesday: true,
	time.Thursday:  true,
	time.Friday:    true,
	time.Saturday:  true,
}

func IsOpeningDay(d calendar.Date) bool {
	return openingDays[d.Weekday()]
}

// OpeningDays lists the weekday indices the restaurant opens, Sunday being 0.
func OpeningDays() []int {
	days := make([]int, 0, len(openingDays))
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if openingDays[wd] {
			days = append(days, int(wd))
		}
	}
	return days
}

// Policy evaluates calendar rules against the restaurant's local clock.
type Policy struct {
	clock clock.Clock
	loc   *time.Location
}

func NewPolicy(clk clock.Clock, loc *time.Location) *Policy {
	if loc == nil {
		loc = time.UTC
	}
	return &Policy{clock: clk, loc: loc}
}

func (p *Policy) Now() time.Time           { return p.clock.Now() }
func (p *Policy) Location() *time.Location { return p.loc }

func (p *Policy) Today() calendar.Date {
	return calendar.Today(p.clock.Now(), p.loc)
}

func (p *Policy) IsOpeningDay(d calendar.Date) bool {
	return IsOpeningDay(d)
}

func (p *Policy) IsWithinAdvanceWindow(d calendar.Date, maxAdvanceDays int) bool {
	today := p.Today()
	return !d.Before(today) && !d.After(today.AddDays(maxAdvanceDays))
}

func (p *Policy) HasMoreThan24HoursUntilTurn(d calendar.Date, turn Turn) bool {
	reference := d.At(turn.ReferenceHour(), 0, p.loc)
	return reference.Sub(p.clock.Now()) > editWindow
}

func (p *Policy) IsFutureDate(d calendar.Date) bool {
	return !d.Before(p.Today())
}

func (p *Policy) IsPastDate(d calendar.Date) bool {
	return d.Before(p.Today())
}

// CanChange reports whether a customer may still modify or cancel r.
func (p *Policy) CanChange(r *Reservation) bool {
	return r.Status() == StatusActive &&
		p.IsFutureDate(r.Date()) &&
		p.HasMoreThan24HoursUntilTurn(r.Date(), r.Turn())
}
