package request

import "restaurant-reservations/internal/domain/reservation"

type UpdateCapacityConfigRequest struct {
	FrontCapacity   *int `json:"frontCapacity,omitempty"`
	GalleryCapacity *int `json:"galleryCapacity,omitempty"`
	HallCapacity    *int `json:"hallCapacity,omitempty"`
	MaxAdvanceDays  *int `json:"maxAdvanceDays,omitempty"`
}

func (r UpdateCapacityConfigRequest) ToDomain() reservation.CapacityChanges {
	return reservation.CapacityChanges{
		Front:          r.FrontCapacity,
		Gallery:        r.GalleryCapacity,
		Hall:           r.HallCapacity,
		MaxAdvanceDays: r.MaxAdvanceDays,
	}
}
