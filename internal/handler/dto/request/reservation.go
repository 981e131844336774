package request

import (
	"restaurant-reservations/internal/domain/calendar"
	"restaurant-reservations/internal/domain/reservation"
	"restaurant-reservations/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	Date       string     `json:"date" binding:"required,calendar_date"`
	Turn       string     `json:"turn" binding:"required,turn"`
	Zone       string     `json:"zone" binding:"required,zone"`
	PartySize  int        `json:"partySize" binding:"required"`
	Notes      *string    `json:"notes,omitempty"`
	CustomerID *uuid.UUID `json:"customerId,omitempty"`
}

type ReservationDraft struct {
	Candidate reservation.Candidate
	Notes     reservation.Notes
}

func (r CreateReservationRequest) ToDomain() (ReservationDraft, error) {
	return newDraft(r.Date, r.Turn, r.Zone, r.PartySize, r.Notes)
}

// UpdateReservationRequest is partial. Values are validated by the use case
// after ownership and state checks.
type UpdateReservationRequest struct {
	Date      *string `json:"date,omitempty"`
	Turn      *string `json:"turn,omitempty"`
	Zone      *string `json:"zone,omitempty"`
	PartySize *int    `json:"partySize,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

func (r UpdateReservationRequest) ToDomain() (reservation.Changes, error) {
	var ch reservation.Changes
	if r.Date != nil {
		d, err := parseDate(*r.Date)
		if err != nil {
			return reservation.Changes{}, err
		}
		ch.Date = &d
	}
	if r.Turn != nil {
		t, err := reservation.NewTurn(*r.Turn)
		if err != nil {
			return reservation.Changes{}, err
		}
		ch.Turn = &t
	}
	if r.Zone != nil {
		z, err := reservation.NewZone(*r.Zone)
		if err != nil {
			return reservation.Changes{}, err
		}
		ch.Zone = &z
	}
	if r.PartySize != nil {
		if err := reservation.ValidatePartySize(*r.PartySize); err != nil {
			return reservation.Changes{}, err
		}
		size := *r.PartySize
		ch.PartySize = &size
	}
	if r.Notes != nil {
		n, err := reservation.NewNotes(*r.Notes)
		if err != nil {
			return reservation.Changes{}, err
		}
		ch.Notes = &n
	}
	return ch, nil
}

type CreateWithNewCustomerRequest struct {
	FirstName string  `json:"firstName" binding:"required"`
	LastName  string  `json:"lastName" binding:"required"`
	Phone     string  `json:"phone" binding:"required"`
	Email     string  `json:"email" binding:"required"`
	Password  string  `json:"password" binding:"required"`
	Date      string  `json:"date" binding:"required,calendar_date"`
	Turn      string  `json:"turn" binding:"required,turn"`
	Zone      string  `json:"zone" binding:"required,zone"`
	PartySize int     `json:"partySize" binding:"required"`
	Notes     *string `json:"notes,omitempty"`
}

func (r CreateWithNewCustomerRequest) ToDomain() (NewCustomer, ReservationDraft, error) {
	customer, err := newCustomer(r.Email, r.Password, r.FirstName, r.LastName, r.Phone)
	if err != nil {
		return NewCustomer{}, ReservationDraft{}, err
	}
	draft, err := newDraft(r.Date, r.Turn, r.Zone, r.PartySize, r.Notes)
	if err != nil {
		return NewCustomer{}, ReservationDraft{}, err
	}
	return customer, draft, nil
}

type AvailabilityQuery struct {
	Date string `form:"date" binding:"required,calendar_date"`
	Turn string `form:"turn" binding:"required,turn"`
}

func (q AvailabilityQuery) ToDomain() (calendar.Date, reservation.Turn, error) {
	d, err := parseDate(q.Date)
	if err != nil {
		return calendar.Date{}, "", err
	}
	t, err := reservation.NewTurn(q.Turn)
	if err != nil {
		return calendar.Date{}, "", err
	}
	return d, t, nil
}

type MineQuery struct {
	Filter string `form:"filter" binding:"omitempty,oneof=future past all"`
}

type AdminReservationsQuery struct {
	Date   string `form:"date" binding:"omitempty,calendar_date"`
	Turn   string `form:"turn" binding:"omitempty,turn"`
	Zone   string `form:"zone" binding:"omitempty,zone"`
	Status string `form:"status" binding:"omitempty,oneof=ACTIVE CANCELLED_BY_CUSTOMER CANCELLED_BY_RESTAURANT"`
}

func (q AdminReservationsQuery) ToDomain() (queries.ReservationFilter, error) {
	var f queries.ReservationFilter
	if q.Date != "" {
		d, err := parseDate(q.Date)
		if err != nil {
			return queries.ReservationFilter{}, err
		}
		f.Date = &d
	}
	if q.Turn != "" {
		t, err := reservation.NewTurn(q.Turn)
		if err != nil {
			return queries.ReservationFilter{}, err
		}
		f.Turn = &t
	}
	if q.Zone != "" {
		z, err := reservation.NewZone(q.Zone)
		if err != nil {
			return queries.ReservationFilter{}, err
		}
		f.Zone = &z
	}
	if q.Status != "" {
		st, err := reservation.NewStatus(q.Status)
		if err != nil {
			return queries.ReservationFilter{}, err
		}
		f.Status = &st
	}
	return f, nil
}

type PlanningQuery = AvailabilityQuery

func newDraft(date, turn, zone string, partySize int, notes *string) (ReservationDraft, error) {
	d, err := parseDate(date)
	if err != nil {
		return ReservationDraft{}, err
	}
	t, err := reservation.NewTurn(turn)
	if err != nil {
		return ReservationDraft{}, err
	}
	z, err := reservation.NewZone(zone)
	if err != nil {
		return ReservationDraft{}, err
	}
	c := reservation.Candidate{Date: d, Turn: t, Zone: z, PartySize: partySize}
	if err := c.Validate(); err != nil {
		return ReservationDraft{}, err
	}

	var n reservation.Notes
	if notes != nil {
		n, err = reservation.NewNotes(*notes)
		if err != nil {
			return ReservationDraft{}, err
		}
	}
	return ReservationDraft{Candidate: c, Notes: n}, nil
}

func parseDate(s string) (calendar.Date, error) {
	d, err := calendar.Parse(s)
	if err != nil {
		return calendar.Date{}, reservation.InvalidInput("date", err.Error())
	}
	return d, nil
}
