package reservation

import (
	"strings"
	"unicode/utf8"

	"restaurant-reservations/internal/domain/calendar"
	"restaurant-reservations/internal/domain/user"

	"github.com/google/uuid"
)

const (
	MinPartySize   = 1
	MaxPartySize   = 50
	MaxNotesLength = 500
)

func ValidatePartySize(n int) error {
	if n < MinPartySize {
		return newInvalidInput("partySize", "party size must be at least 1")
	}
	if n > MaxPartySize {
		return newInvalidInput("partySize", "for groups larger than 50 people please contact the restaurant directly")
	}
	return nil
}

type Notes struct {
	value string
}

func NewNotes(s string) (Notes, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) > MaxNotesLength {
		return Notes{}, newInvalidInput("notes", "notes must be at most 500 characters")
	}
	return Notes{value: s}, nil
}

func (n Notes) String() string { return n.value }
func (n Notes) IsEmpty() bool  { return n.value == "" }

// Candidate is the slot and party size a reservation asks for.
type Candidate struct {
	Date      calendar.Date
	Turn      Turn
	Zone      Zone
	PartySize int
}

func (c Candidate) Validate() error {
	if c.Date.IsZero() {
		return newInvalidInput("date", "date is required")
	}
	if !c.Turn.IsValid() {
		return newInvalidInput("turn", "turn must be LUNCH or DINNER")
	}
	if !c.Zone.IsValid() {
		return newInvalidInput("zone", "zone must be FRONT, GALLERY or HALL")
	}
	return ValidatePartySize(c.PartySize)
}

func (c Candidate) Slot() Slot {
	return Slot{Date: c.Date, Turn: c.Turn, Zone: c.Zone}
}

// RequiresCapacityCheck reports whether an update changes anything capacity
// is accounted on.
func RequiresCapacityCheck(prev, next Candidate) bool {
	return prev != next
}

// Slot is the unit capacity is accounted against.
type Slot struct {
	Date calendar.Date
	Turn Turn
	Zone Zone
}

func (s Slot) Key() string {
	return "slot:" + s.Date.String() + ":" + string(s.Turn) + ":" + string(s.Zone)
}

type Actor struct {
	ID   uuid.UUID
	Role user.Role
}

func (a Actor) IsStaff() bool {
	return a.Role.IsStaff()
}
