//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"restaurant-reservations/internal/domain/reservation"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestBucketFor(t *testing.T) {
	cases := map[int]reservation.SizeBucket{
		1:  reservation.Bucket1to2,
		2:  reservation.Bucket1to2,
		3:  reservation.Bucket3to4,
		4:  reservation.Bucket3to4,
		5:  reservation.Bucket5to6,
		6:  reservation.Bucket5to6,
		7:  reservation.Bucket7Plus,
		50: reservation.Bucket7Plus,
	}
	for size, want := range cases {
		assert.Equal(t, want, reservation.BucketFor(size), "party of %d", size)
	}
}

func TestSummarizePlanning(t *testing.T) {
	date := day(time.June, 14)
	cfg := reservation.DefaultCapacityConfig()

	t.Run("empty turn lists every zone and bucket", func(t *testing.T) {
		p := reservation.SummarizePlanning(date, reservation.TurnLunch, nil, cfg)

		assert.Equal(t, 730, p.TotalCapacity)
		assert.Zero(t, p.TotalPeople)
		assert.Zero(t, p.Percentage)
		assert.Len(t, p.ByZone, 3)
		assert.Len(t, p.BySize, 4)
		assert.Empty(t, p.ByZoneAndSize)
		assert.Equal(t, 30, p.CapacityByZone[reservation.ZoneFront])
	})

	t.Run("aggregates by zone and size", func(t *testing.T) {
		entries := []reservation.PlanningEntry{
			{Zone: reservation.ZoneHall, PartySize: 4, HasNotes: true},
			{Zone: reservation.ZoneFront, PartySize: 2},
			{Zone: reservation.ZoneHall, PartySize: 4},
			{Zone: reservation.ZoneFront, PartySize: 8, HasNotes: true},
			{Zone: reservation.ZoneGallery, PartySize: 1},
		}
		p := reservation.SummarizePlanning(date, reservation.TurnDinner, entries, cfg)

		assert.Equal(t, 5, p.ReservationCount)
		assert.Equal(t, 19, p.TotalPeople)
		assert.Equal(t, 2, p.WithNotes)
		assert.Equal(t, 3, p.Percentage)

		wantZones := map[reservation.Zone]reservation.Tally{
			reservation.ZoneFront:   {Reservations: 2, People: 10, WithNotes: 1},
			reservation.ZoneGallery: {Reservations: 1, People: 1},
			reservation.ZoneHall:    {Reservations: 2, People: 8, WithNotes: 1},
		}
		if diff := cmp.Diff(wantZones, p.ByZone); diff != "" {
			t.Errorf("by zone mismatch (-want +got):\n%s", diff)
		}

		wantSizes := map[reservation.SizeBucket]reservation.Tally{
			reservation.Bucket1to2:  {Reservations: 2, People: 3},
			reservation.Bucket3to4:  {Reservations: 2, People: 8, WithNotes: 1},
			reservation.Bucket5to6:  {},
			reservation.Bucket7Plus: {Reservations: 1, People: 8, WithNotes: 1},
		}
		if diff := cmp.Diff(wantSizes, p.BySize); diff != "" {
			t.Errorf("by size mismatch (-want +got):\n%s", diff)
		}

		wantExact := []reservation.ZoneSizeTally{
			{Zone: reservation.ZoneFront, PartySize: 2, Tally: reservation.Tally{Reservations: 1, People: 2}},
			{Zone: reservation.ZoneFront, PartySize: 8, Tally: reservation.Tally{Reservations: 1, People: 8, WithNotes: 1}},
			{Zone: reservation.ZoneGallery, PartySize: 1, Tally: reservation.Tally{Reservations: 1, People: 1}},
			{Zone: reservation.ZoneHall, PartySize: 4, Tally: reservation.Tally{Reservations: 2, People: 8, WithNotes: 1}},
		}
		if diff := cmp.Diff(wantExact, p.ByZoneAndSize); diff != "" {
			t.Errorf("by zone and size mismatch (-want +got):\n%s", diff)
		}
	})
}
