package reservation

import (
	"fmt"
	"time"

	"restaurant-reservations/internal/pkg/errs"
)

var (
	ErrInvalidInput         = errs.New("invalid input")
	ErrClosedDay            = errs.New("restaurant closed on requested weekday")
	ErrOutOfAdvanceWindow   = errs.New("date outside advance booking window")
	ErrZoneCapacityExceeded = errs.New("zone capacity exceeded")
	ErrEditWindowExpired    = errs.New("edit window expired")
	ErrAlreadyCancelled     = errs.New("reservation already cancelled")
	ErrNotFound             = errs.New("not found")
	ErrForbidden            = errs.New("forbidden")
	ErrConfigMissing        = errs.New("capacity configuration missing")
)

// Rejection is an expected, user-facing refusal of a reservation operation.
// errors.Is matches its kind sentinel; errors.As exposes the detail.
type Rejection struct {
	kind    error
	message string

	Field          string
	Weekday        time.Weekday
	MaxAdvanceDays int
	Status         Status
	Shortfall      *CapacityShortfall
}

// CapacityShortfall explains a ZoneCapacityExceeded rejection.
type CapacityShortfall struct {
	Zone            Zone `json:"zone"`
	Requested       int  `json:"requested"`
	AlreadyReserved int  `json:"alreadyReserved"`
	Available       int  `json:"available"`
}

func (r *Rejection) Error() string   { return r.message }
func (r *Rejection) Unwrap() error   { return r.kind }
func (r *Rejection) Kind() error     { return r.kind }
func (r *Rejection) Message() string { return r.message }

func newInvalidInput(field, message string) *Rejection {
	return &Rejection{kind: ErrInvalidInput, message: message, Field: field}
}

// InvalidInput is used by callers validating fields the domain does not own.
func InvalidInput(field, message string) *Rejection {
	return newInvalidInput(field, message)
}

func newClosedDay(weekday time.Weekday) *Rejection {
	return &Rejection{
		kind:    ErrClosedDay,
		message: fmt.Sprintf("the restaurant does not open on %ss; we open Tuesday to Saturday", weekday),
		Weekday: weekday,
	}
}

func newOutOfAdvanceWindow(maxAdvanceDays int) *Rejection {
	return &Rejection{
		kind:           ErrOutOfAdvanceWindow,
		message:        fmt.Sprintf("reservations are only allowed from today up to %d days in advance", maxAdvanceDays),
		MaxAdvanceDays: maxAdvanceDays,
	}
}

func newZoneCapacityExceeded(s CapacityShortfall) *Rejection {
	return &Rejection{
		kind: ErrZoneCapacityExceeded,
		message: fmt.Sprintf("not enough capacity in %s for that party size. Available seats: %d.",
			s.Zone.DisplayName(), s.Available),
		Shortfall: &s,
	}
}

func newEditWindowExpired() *Rejection {
	return &Rejection{
		kind:    ErrEditWindowExpired,
		message: "reservations can only be changed or cancelled more than 24 hours before the turn",
	}
}

func newAlreadyCancelled(status Status) *Rejection {
	return &Rejection{
		kind:    ErrAlreadyCancelled,
		message: "this reservation is already cancelled",
		Status:  status,
	}
}

func NotFound(what string) *Rejection {
	return &Rejection{kind: ErrNotFound, message: what + " not found"}
}

func Forbidden(message string) *Rejection {
	return &Rejection{kind: ErrForbidden, message: message}
}

func ConfigMissing() *Rejection {
	return &Rejection{kind: ErrConfigMissing, message: "restaurant capacity is not configured"}
}
