package commands

import (
	"context"
	"encoding/json"
	"time"

	"restaurant-reservations/internal/domain/reservation"
	"restaurant-reservations/internal/domain/user"
	"restaurant-reservations/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	jobKindEvent = "event"

	TopicReservationCreated   = "reservation.created"
	TopicReservationUpdated   = "reservation.updated"
	TopicReservationCancelled = "reservation.cancelled"
	TopicCustomerCreated      = "customer.created"
)

type ReservationEvent struct {
	ReservationID uuid.UUID          `json:"reservationId"`
	CustomerID    uuid.UUID          `json:"customerId"`
	ActorID       uuid.UUID          `json:"actorId"`
	Date          string             `json:"date"`
	Turn          reservation.Turn   `json:"turn"`
	Zone          reservation.Zone   `json:"zone"`
	PartySize     int                `json:"partySize"`
	Status        reservation.Status `json:"status"`
	OccurredAt    time.Time          `json:"occurredAt"`
}

type CustomerEvent struct {
	CustomerID uuid.UUID `json:"customerId"`
	Email      string    `json:"email"`
	CreatedBy  uuid.UUID `json:"createdBy"`
	OccurredAt time.Time `json:"occurredAt"`
}

func enqueueReservationEvent(ctx context.Context, tx shared.Tx, topic string, r *reservation.Reservation, actor reservation.Actor, now time.Time) error {
	payload, err := json.Marshal(ReservationEvent{
		ReservationID: r.ID(),
		CustomerID:    r.CustomerID(),
		ActorID:       actor.ID,
		Date:          r.Date().String(),
		Turn:          r.Turn(),
		Zone:          r.Zone(),
		PartySize:     r.PartySize(),
		Status:        r.Status(),
		OccurredAt:    now,
	})
	if err != nil {
		return err
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), jobKindEvent, topic, payload, now)
}

func enqueueCustomerEvent(ctx context.Context, tx shared.Tx, u *user.User, actor reservation.Actor, now time.Time) error {
	payload, err := json.Marshal(CustomerEvent{
		CustomerID: u.ID(),
		Email:      u.Email().Value(),
		CreatedBy:  actor.ID,
		OccurredAt: now,
	})
	if err != nil {
		return err
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), jobKindEvent, TopicCustomerCreated, payload, now)
}
