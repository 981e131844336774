package reservation

import "strings"

type Turn string

const (
	TurnLunch  Turn = "LUNCH"
	TurnDinner Turn = "DINNER"
)

// Turns lists the meal services in serving order.
var Turns = []Turn{TurnLunch, TurnDinner}

const (
	lunchReferenceHour  = 12
	dinnerReferenceHour = 20
)

func NewTurn(s string) (Turn, error) {
	t := Turn(strings.ToUpper(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", newInvalidInput("turn", "turn must be LUNCH or DINNER")
	}
	return t, nil
}

func (t Turn) String() string {
	return string(t)
}

func (t Turn) IsValid() bool {
	switch t {
	case TurnLunch, TurnDinner:
		return true
	default:
		return false
	}
}

// ReferenceHour is the local hour the turn is considered to start at
// for the 24 hour modification cutoff.
func (t Turn) ReferenceHour() int {
	if t == TurnLunch {
		return lunchReferenceHour
	}
	return dinnerReferenceHour
}

type Zone string

const (
	ZoneFront   Zone = "FRONT"
	ZoneGallery Zone = "GALLERY"
	ZoneHall    Zone = "HALL"
)

var Zones = []Zone{ZoneFront, ZoneGallery, ZoneHall}

func NewZone(s string) (Zone, error) {
	z := Zone(strings.ToUpper(strings.TrimSpace(s)))
	if !z.IsValid() {
		return "", newInvalidInput("zone", "zone must be FRONT, GALLERY or HALL")
	}
	return z, nil
}

func (z Zone) String() string {
	return string(z)
}

func (z Zone) IsValid() bool {
	switch z {
	case ZoneFront, ZoneGallery, ZoneHall:
		return true
	default:
		return false
	}
}

func (z Zone) DisplayName() string {
	switch z {
	case ZoneFront:
		return "Front"
	case ZoneGallery:
		return "Gallery"
	case ZoneHall:
		return "Hall"
	default:
		return string(z)
	}
}

type Status string

const (
	StatusActive                Status = "ACTIVE"
	StatusCancelledByCustomer   Status = "CANCELLED_BY_CUSTOMER"
	StatusCancelledByRestaurant Status = "CANCELLED_BY_RESTAURANT"
)

func NewStatus(s string) (Status, error) {
	st := Status(strings.ToUpper(strings.TrimSpace(s)))
	if !st.IsValid() {
		return "", newInvalidInput("status", "status must be ACTIVE, CANCELLED_BY_CUSTOMER or CANCELLED_BY_RESTAURANT")
	}
	return st, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusCancelledByCustomer, StatusCancelledByRestaurant:
		return true
	default:
		return false
	}
}

func (s Status) IsCancelled() bool {
	return s == StatusCancelledByCustomer || s == StatusCancelledByRestaurant
}

type Action string

const (
	ActionUpdate             Action = "UPDATE"
	ActionCancelByCustomer   Action = "CANCEL_BY_CUSTOMER"
	ActionCancelByRestaurant Action = "CANCEL_BY_RESTAURANT"
)
