package reservation

import (
	"sort"

	"restaurant-reservations/internal/domain/calendar"
)

type SizeBucket string

const (
	Bucket1to2  SizeBucket = "1-2"
	Bucket3to4  SizeBucket = "3-4"
	Bucket5to6  SizeBucket = "5-6"
	Bucket7Plus SizeBucket = "7+"
)

var SizeBuckets = []SizeBucket{Bucket1to2, Bucket3to4, Bucket5to6, Bucket7Plus}

func BucketFor(partySize int) SizeBucket {
	switch {
	case partySize <= 2:
		return Bucket1to2
	case partySize <= 4:
		return Bucket3to4
	case partySize <= 6:
		return Bucket5to6
	default:
		return Bucket7Plus
	}
}

type Tally struct {
	Reservations int `json:"reservations"`
	People       int `json:"people"`
	WithNotes    int `json:"withNotes"`
}

func (t *Tally) add(e PlanningEntry) {
	t.Reservations++
	t.People += e.PartySize
	if e.HasNotes {
		t.WithNotes++
	}
}

type ZoneSizeTally struct {
	Zone      Zone
	PartySize int
	Tally
}

// PlanningEntry is the slice of an ACTIVE reservation the planning summary needs.
type PlanningEntry struct {
	Zone      Zone
	PartySize int
	HasNotes  bool
}

type Planning struct {
	Date             calendar.Date
	Turn             Turn
	TotalCapacity    int
	TotalPeople      int
	Percentage       int
	ReservationCount int
	WithNotes        int
	ByZone           map[Zone]Tally
	BySize           map[SizeBucket]Tally
	ByZoneAndSize    []ZoneSizeTally
	CapacityByZone   map[Zone]int
}

// SummarizePlanning aggregates the active reservations of one date and turn.
func SummarizePlanning(date calendar.Date, turn Turn, entries []PlanningEntry, cfg CapacityConfig) Planning {
	p := Planning{
		Date:           date,
		Turn:           turn,
		TotalCapacity:  cfg.Total(),
		ByZone:         make(map[Zone]Tally, len(Zones)),
		BySize:         make(map[SizeBucket]Tally, len(SizeBuckets)),
		CapacityByZone: make(map[Zone]int, len(Zones)),
	}
	for _, z := range Zones {
		p.ByZone[z] = Tally{}
		p.CapacityByZone[z] = cfg.CapacityOf(z)
	}
	for _, b := range SizeBuckets {
		p.BySize[b] = Tally{}
	}

	type zoneSize struct {
		zone Zone
		size int
	}
	exact := make(map[zoneSize]*Tally)

	for _, e := range entries {
		p.ReservationCount++
		p.TotalPeople += e.PartySize
		if e.HasNotes {
			p.WithNotes++
		}

		zt := p.ByZone[e.Zone]
		zt.add(e)
		p.ByZone[e.Zone] = zt

		b := BucketFor(e.PartySize)
		bt := p.BySize[b]
		bt.add(e)
		p.BySize[b] = bt

		k := zoneSize{zone: e.Zone, size: e.PartySize}
		if exact[k] == nil {
			exact[k] = &Tally{}
		}
		exact[k].add(e)
	}

	p.ByZoneAndSize = make([]ZoneSizeTally, 0, len(exact))
	for k, t := range exact {
		p.ByZoneAndSize = append(p.ByZoneAndSize, ZoneSizeTally{Zone: k.zone, PartySize: k.size, Tally: *t})
	}
	sort.Slice(p.ByZoneAndSize, func(i, j int) bool {
		a, b := p.ByZoneAndSize[i], p.ByZoneAndSize[j]
		if a.Zone != b.Zone {
			return zoneOrder(a.Zone) < zoneOrder(b.Zone)
		}
		return a.PartySize < b.PartySize
	})

	p.Percentage = OccupancyPercentage(p.TotalPeople, p.TotalCapacity)
	return p
}

func zoneOrder(z Zone) int {
	for i, zz := range Zones {
		if zz == z {
			return i
		}
	}
	return len(Zones)
}
