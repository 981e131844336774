package queries

import (
	"time"

	"restaurant-reservations/internal/domain/calendar"
	"restaurant-reservations/internal/domain/reservation"
	"restaurant-reservations/internal/domain/user"

	"github.com/google/uuid"
)

// UserView is the read model for an account.
type UserView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Phone     string     `json:"phone"`
	IsActive  bool       `json:"isActive"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

func NewUserView(u *user.User) *UserView {
	return &UserView{
		ID:        u.ID(),
		Email:     u.Email().Value(),
		Role:      u.Role().String(),
		FirstName: u.Profile().FirstName(),
		LastName:  u.Profile().LastName(),
		Phone:     u.Profile().Phone(),
		IsActive:  u.IsActive(),
		LastLogin: u.LastLogin(),
		CreatedAt: u.CreatedAt(),
	}
}

// CustomerListItem is one row of the staff customer directory.
type CustomerListItem struct {
	ID               uuid.UUID `json:"id"`
	Email            string    `json:"email"`
	FirstName        string    `json:"firstName"`
	LastName         string    `json:"lastName"`
	Phone            string    `json:"phone"`
	CreatedAt        time.Time `json:"createdAt"`
	ReservationCount int       `json:"reservationCount"`
}

// CustomerDetail carries the latest reservations, newest date first.
type CustomerDetail struct {
	UserView
	RecentReservations []*ReservationView `json:"recentReservations"`
}

// CustomerSummary is embedded in staff-facing reservation views.
type CustomerSummary struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

type ReservationView struct {
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
	Customer   *CustomerSummary   `json:"customer,omitempty"`
}

// MyReservationView carries what the customer may still do with a reservation.
type MyReservationView struct {
	ReservationView
	IsFuture  bool `json:"isFuture"`
	CanModify bool `json:"canModify"`
	CanCancel bool `json:"canCancel"`
}

type ZoneAvailability struct {
	Capacity  int `json:"capacity"`
	Reserved  int `json:"reserved"`
	Available int `json:"available"`
}

type AvailabilityView struct {
	Date             calendar.Date                         `json:"date"`
	Turn             reservation.Turn                      `json:"turn"`
	TotalCapacity    int                                   `json:"totalCapacity"`
	TotalPeople      int                                   `json:"totalPeople"`
	Percentage       int                                   `json:"percentage"`
	ReservationCount int                                   `json:"reservationCount"`
	ByZone           map[reservation.Zone]ZoneAvailability `json:"byZone"`
}

func NewAvailabilityView(date calendar.Date, turn reservation.Turn, occ reservation.Occupancy, cfg reservation.CapacityConfig) *AvailabilityView {
	v := &AvailabilityView{
		Date:             date,
		Turn:             turn,
		TotalCapacity:    cfg.Total(),
		TotalPeople:      occ.TotalPeople,
		Percentage:       reservation.OccupancyPercentage(occ.TotalPeople, cfg.Total()),
		ReservationCount: occ.ReservationCount,
		ByZone:           make(map[reservation.Zone]ZoneAvailability, len(reservation.Zones)),
	}
	for _, z := range reservation.Zones {
		reserved := occ.ReservedIn(z)
		v.ByZone[z] = ZoneAvailability{
			Capacity:  cfg.CapacityOf(z),
			Reserved:  reserved,
			Available: max(cfg.CapacityOf(z)-reserved, 0),
		}
	}
	return v
}

type CapacityConfigView struct {
	FrontCapacity   int                `json:"frontCapacity"`
	GalleryCapacity int                `json:"galleryCapacity"`
	HallCapacity    int                `json:"hallCapacity"`
	MaxAdvanceDays  int                `json:"maxAdvanceDays"`
	TotalCapacity   int                `json:"totalCapacity"`
	OpeningDays     []int              `json:"openingDays"`
	Turns           []reservation.Turn `json:"turns"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}

func NewCapacityConfigView(cfg reservation.CapacityConfig) *CapacityConfigView {
	return &CapacityConfigView{
		FrontCapacity:   cfg.Front(),
		GalleryCapacity: cfg.Gallery(),
		HallCapacity:    cfg.Hall(),
		MaxAdvanceDays:  cfg.MaxAdvanceDays(),
		TotalCapacity:   cfg.Total(),
		OpeningDays:     reservation.OpeningDays(),
		Turns:           reservation.Turns,
		UpdatedAt:       cfg.UpdatedAt(),
	}
}
