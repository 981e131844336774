package reservation

import (
	"time"

	"restaurant-reservations/internal/pkg/patch"
)

const (
	DefaultFrontCapacity   = 30
	DefaultGalleryCapacity = 200
	DefaultHallCapacity    = 500
	DefaultMaxAdvanceDays  = 30
)

// CapacityConfig is the restaurant-wide capacity singleton.
type CapacityConfig struct {
	front          int
	gallery        int
	hall           int
	maxAdvanceDays int
	updatedAt      time.Time
}

func NewCapacityConfig(front, gallery, hall, maxAdvanceDays int) (CapacityConfig, error) {
	switch {
	case front <= 0:
		return CapacityConfig{}, newInvalidInput("frontCapacity", "front capacity must be a positive integer")
	case gallery <= 0:
		return CapacityConfig{}, newInvalidInput("galleryCapacity", "gallery capacity must be a positive integer")
	case hall <= 0:
		return CapacityConfig{}, newInvalidInput("hallCapacity", "hall capacity must be a positive integer")
	case maxAdvanceDays <= 0:
		return CapacityConfig{}, newInvalidInput("maxAdvanceDays", "max advance days must be a positive integer")
	}
	return CapacityConfig{
		front:          front,
		gallery:        gallery,
		hall:           hall,
		maxAdvanceDays: maxAdvanceDays,
	}, nil
}

func DefaultCapacityConfig() CapacityConfig {
	cfg, _ := NewCapacityConfig(DefaultFrontCapacity, DefaultGalleryCapacity, DefaultHallCapacity, DefaultMaxAdvanceDays)
	return cfg
}

func ReconstructCapacityConfig(front, gallery, hall, maxAdvanceDays int, updatedAt time.Time) CapacityConfig {
	return CapacityConfig{
		front:          front,
		gallery:        gallery,
		hall:           hall,
		maxAdvanceDays: maxAdvanceDays,
		updatedAt:      updatedAt,
	}
}

type CapacityChanges struct {
	Front          *int
	Gallery        *int
	Hall           *int
	MaxAdvanceDays *int
}

// Apply returns a new config with the non-nil changes applied.
func (c CapacityConfig) Apply(ch CapacityChanges, now time.Time) (CapacityConfig, error) {
	next, err := NewCapacityConfig(
		patch.Coalesce(ch.Front, c.front),
		patch.Coalesce(ch.Gallery, c.gallery),
		patch.Coalesce(ch.Hall, c.hall),
		patch.Coalesce(ch.MaxAdvanceDays, c.maxAdvanceDays),
	)
	if err != nil {
		return CapacityConfig{}, err
	}
	next.updatedAt = now
	return next, nil
}

func (c CapacityConfig) Front() int           { return c.front }
func (c CapacityConfig) Gallery() int         { return c.gallery }
func (c CapacityConfig) Hall() int            { return c.hall }
func (c CapacityConfig) MaxAdvanceDays() int  { return c.maxAdvanceDays }
func (c CapacityConfig) UpdatedAt() time.Time { return c.updatedAt }

func (c CapacityConfig) CapacityOf(z Zone) int {
	switch z {
	case ZoneFront:
		return c.front
	case ZoneGallery:
		return c.gallery
	case ZoneHall:
		return c.hall
	default:
		return 0
	}
}

func (c CapacityConfig) Total() int {
	return c.front + c.gallery + c.hall
}

// Occupancy is the people committed by active reservations for one date and turn.
type Occupancy struct {
	TotalPeople      int
	ByZone           map[Zone]int
	ReservationCount int
}

func NewOccupancy(byZone map[Zone]int, reservationCount int) Occupancy {
	o := Occupancy{ByZone: make(map[Zone]int, len(Zones)), ReservationCount: reservationCount}
	for _, z := range Zones {
		o.ByZone[z] = byZone[z]
		o.TotalPeople += byZone[z]
	}
	return o
}

func (o Occupancy) ReservedIn(z Zone) int {
	return o.ByZone[z]
}

// With returns the occupancy after adding people to zone.
func (o Occupancy) With(z Zone, people int) Occupancy {
	byZone := make(map[Zone]int, len(o.ByZone))
	for k, v := range o.ByZone {
		byZone[k] = v
	}
	byZone[z] += people
	return NewOccupancy(byZone, o.ReservationCount+1)
}

type ZoneCheck struct {
	OK        bool
	Available int
}

// ValidateZoneCapacity checks requested against what is left in zone.
// Zones never lend capacity to each other.
func ValidateZoneCapacity(requested, alreadyReserved int, zone Zone, cfg CapacityConfig) (ZoneCheck, error) {
	available := cfg.CapacityOf(zone) - alreadyReserved
	if requested <= available {
		return ZoneCheck{OK: true, Available: available}, nil
	}

	shown := max(available, 0)
	return ZoneCheck{OK: false, Available: shown}, newZoneCapacityExceeded(CapacityShortfall{
		Zone:            zone,
		Requested:       requested,
		AlreadyReserved: alreadyReserved,
		Available:       shown,
	})
}

// OccupancyPercentage rounds half up. It is display only.
func OccupancyPercentage(people, total int) int {
	if total <= 0 {
		return 0
	}
	return (200*people + total) / (2 * total)
}
