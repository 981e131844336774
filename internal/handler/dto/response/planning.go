package response

import (
	"restaurant-reservations/internal/domain/calendar"
	"restaurant-reservations/internal/domain/reservation"
)

type PlanningTotals struct {
	Capacity     int `json:"capacity"`
	People       int `json:"people"`
	Percentage   int `json:"percentage"`
	Reservations int `json:"reservations"`
	WithNotes    int `json:"withNotes"`
}

type ZoneSizeTallyResponse struct {
	Zone      reservation.Zone `json:"zone"`
	PartySize int              `json:"partySize"`
	reservation.Tally
}

type PlanningResponse struct {
	Date           calendar.Date                                `json:"date"`
	Turn           reservation.Turn                             `json:"turn"`
	Totals         PlanningTotals                               `json:"totals"`
	ByZone         map[reservation.Zone]reservation.Tally       `json:"byZone"`
	BySize         map[reservation.SizeBucket]reservation.Tally `json:"bySize"`
	ByZoneAndSize  []ZoneSizeTallyResponse                      `json:"byZoneAndSize"`
	CapacityByZone map[reservation.Zone]int                     `json:"capacityByZone"`
}

func FromPlanning(p *reservation.Planning) *PlanningResponse {
	resp := &PlanningResponse{
		Date: p.Date,
		Turn: p.Turn,
		Totals: PlanningTotals{
			Capacity:     p.TotalCapacity,
			People:       p.TotalPeople,
			Percentage:   p.Percentage,
			Reservations: p.ReservationCount,
			WithNotes:    p.WithNotes,
		},
		ByZone:         p.ByZone,
		BySize:         p.BySize,
		ByZoneAndSize:  make([]ZoneSizeTallyResponse, 0, len(p.ByZoneAndSize)),
		CapacityByZone: p.CapacityByZone,
	}
	for _, t := range p.ByZoneAndSize {
		resp.ByZoneAndSize = append(resp.ByZoneAndSize, ZoneSizeTallyResponse{Zone: t.Zone, PartySize: t.PartySize, Tally: t.Tally})
	}
	return resp
}
