package reservation

import (
	"time"

	"restaurant-reservations/internal/domain/calendar"

	"github.com/google/uuid"
)

type Reservation struct {
	id         uuid.UUID
	customerID uuid.UUID
	date       calendar.Date
	turn       Turn
	zone       Zone
	partySize  int
	notes      Notes
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

// NewReservation builds an ACTIVE reservation. Calendar and capacity gating
// is the caller's job through Policy.CheckCreateEligibility.
func NewReservation(customerID uuid.UUID, c Candidate, notes Notes, now time.Time) (*Reservation, error) {
	if customerID == uuid.Nil {
		return nil, newInvalidInput("customerId", "customer is required")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &Reservation{
		id:         uuid.New(),
		customerID: customerID,
		date:       c.Date,
		turn:       c.Turn,
		zone:       c.Zone,
		partySize:  c.PartySize,
		notes:      notes,
		status:     StatusActive,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructReservation(
	id, customerID uuid.UUID,
	date calendar.Date,
	turn Turn,
	zone Zone,
	partySize int,
	notes Notes,
	status Status,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:         id,
		customerID: customerID,
		date:       date,
		turn:       turn,
		zone:       zone,
		partySize:  partySize,
		notes:      notes,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (r *Reservation) ID() uuid.UUID         { return r.id }
func (r *Reservation) CustomerID() uuid.UUID { return r.customerID }
func (r *Reservation) Date() calendar.Date   { return r.date }
func (r *Reservation) Turn() Turn            { return r.turn }
func (r *Reservation) Zone() Zone            { return r.zone }
func (r *Reservation) PartySize() int        { return r.partySize }
func (r *Reservation) Notes() Notes          { return r.notes }
func (r *Reservation) Status() Status        { return r.status }
func (r *Reservation) CreatedAt() time.Time  { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time  { return r.updatedAt }

func (r *Reservation) IsActive() bool {
	return r.status == StatusActive
}

func (r *Reservation) Candidate() Candidate {
	return Candidate{Date: r.date, Turn: r.turn, Zone: r.zone, PartySize: r.partySize}
}

func (r *Reservation) Slot() Slot {
	return r.Candidate().Slot()
}

// Changes is a partial update. Nil fields keep their stored value.
type Changes struct {
	Date      *calendar.Date
	Turn      *Turn
	Zone      *Zone
	PartySize *int
	Notes     *Notes
}

func (ch Changes) IsEmpty() bool {
	return ch.Date == nil && ch.Turn == nil && ch.Zone == nil && ch.PartySize == nil && ch.Notes == nil
}

// Merge resolves ch against the stored values of r.
func (r *Reservation) Merge(ch Changes) Candidate {
	c := r.Candidate()
	if ch.Date != nil {
		c.Date = *ch.Date
	}
	if ch.Turn != nil {
		c.Turn = *ch.Turn
	}
	if ch.Zone != nil {
		c.Zone = *ch.Zone
	}
	if ch.PartySize != nil {
		c.PartySize = *ch.PartySize
	}
	return c
}

// Reschedule applies an already-gated update.
func (r *Reservation) Reschedule(c Candidate, notes *Notes, now time.Time) {
	r.date = c.Date
	r.turn = c.Turn
	r.zone = c.Zone
	r.partySize = c.PartySize
	if notes != nil {
		r.notes = *notes
	}
	r.updatedAt = now
}

// CancelActionFor picks the cancel transition the actor is entitled to.
func CancelActionFor(actor Actor) Action {
	if actor.IsStaff() {
		return ActionCancelByRestaurant
	}
	return ActionCancelByCustomer
}

// Transition checks that actor may perform action on r under p and, for
// cancellations, moves r to the terminal state. ActionUpdate only gates;
// the new values are applied by Reschedule after capacity is checked.
func (r *Reservation) Transition(action Action, actor Actor, p *Policy) error {
	if err := p.CheckEditable(r, actor); err != nil {
		return err
	}

	switch action {
	case ActionUpdate:
		return nil
	case ActionCancelByCustomer:
		r.status = StatusCancelledByCustomer
	case ActionCancelByRestaurant:
		if !actor.IsStaff() {
			return Forbidden("only staff can cancel on behalf of the restaurant")
		}
		r.status = StatusCancelledByRestaurant
	default:
		return newInvalidInput("action", "unknown reservation action")
	}
	r.updatedAt = p.Now()
	return nil
}
