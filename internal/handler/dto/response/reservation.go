package response

import (
	"time"

	"restaurant-reservations/internal/domain/calendar"
	"restaurant-reservations/internal/domain/reservation"
	"restaurant-reservations/internal/usecase/commands"
	"restaurant-reservations/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID         uuid.UUID          `json:"id"`
	CustomerID uuid.UUID          `json:"customerId"`
	Date       calendar.Date      `json:"date"`
	Turn       reservation.Turn   `json:"turn"`
	Zone       reservation.Zone   `json:"zone"`
	PartySize  int                `json:"partySize"`
	Notes      *string            `json:"notes,omitempty"`
	Status     reservation.Status `json:"status"`
	CreatedAt  time.Time          `json:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt"`
}

type OccupancyResponse struct {
	Percentage    int `json:"percentage"`
	Reserved      int `json:"reserved"`
	TotalCapacity int `json:"totalCapacity"`
}

// ReservationMutationResponse is returned by create, update and cancel.
type ReservationMutationResponse struct {
	Reservation ReservationResponse `json:"reservation"`
	Occupancy   *OccupancyResponse  `json:"occupancy,omitempty"`
}

type ReservationWithCustomerResponse struct {
	ReservationMutationResponse
	Customer *queries.UserView `json:"customer"`
}

func FromReservation(r *reservation.Reservation) ReservationResponse {
	resp := ReservationResponse{
		ID:         r.ID(),
		CustomerID: r.CustomerID(),
		Date:       r.Date(),
		Turn:       r.Turn(),
		Zone:       r.Zone(),
		PartySize:  r.PartySize(),
		Status:     r.Status(),
		CreatedAt:  r.CreatedAt(),
		UpdatedAt:  r.UpdatedAt(),
	}
	if !r.Notes().IsEmpty() {
		n := r.Notes().String()
		resp.Notes = &n
	}
	return resp
}

func FromReservationResult(res *commands.ReservationResult) ReservationMutationResponse {
	resp := ReservationMutationResponse{Reservation: FromReservation(res.Reservation)}
	if res.Occupancy != nil {
		resp.Occupancy = &OccupancyResponse{
			Percentage:    res.Occupancy.Percentage,
			Reserved:      res.Occupancy.Reserved,
			TotalCapacity: res.Occupancy.TotalCapacity,
		}
	}
	return resp
}

func FromReservationWithCustomerResult(res *commands.ReservationWithCustomerResult) ReservationWithCustomerResponse {
	return ReservationWithCustomerResponse{
		ReservationMutationResponse: FromReservationResult(&res.ReservationResult),
		Customer:                    queries.NewUserView(res.Customer),
	}
}
