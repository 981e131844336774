package queries

import (
	"context"
	"log/slog"

	"restaurant-reservations/internal/domain/calendar"
	"restaurant-reservations/internal/domain/reservation"
	"restaurant-reservations/internal/infra"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

type MineFilter string

const (
	MineFuture MineFilter = "future"
	MinePast   MineFilter = "past"
	MineAll    MineFilter = "all"
)

// ParseMineFilter defaults to MineAll.
func ParseMineFilter(s string) MineFilter {
	switch MineFilter(s) {
	case MineFuture, MinePast:
		return MineFilter(s)
	default:
		return MineAll
	}
}

// ReservationFilter narrows the staff listing. Nil fields do not filter.
type ReservationFilter struct {
	Date   *calendar.Date
	Turn   *reservation.Turn
	Zone   *reservation.Zone
	Status *reservation.Status
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*ReservationView, error)
	List(ctx context.Context, filter ReservationFilter) ([]*ReservationView, error)
	ListActiveForSlot(ctx context.Context, date calendar.Date, turn reservation.Turn) ([]reservation.PlanningEntry, error)
}

type OccupancyReadStore interface {
	Occupancy(ctx context.Context, date calendar.Date, turn reservation.Turn) (reservation.Occupancy, error)
}

// OccupancyCache is a best-effort cache. Misses and failures fall through to
// the store. Get reports the generation a later Set must be written under;
// an invalidation in between makes that fill unreachable.
type OccupancyCache interface {
	Get(ctx context.Context, date calendar.Date, turn reservation.Turn) (reservation.Occupancy, int64, bool)
	Set(ctx context.Context, date calendar.Date, turn reservation.Turn, generation int64, occ reservation.Occupancy)
}

type ReservationQueries interface {
	Availability(ctx context.Context, date calendar.Date, turn reservation.Turn) (*AvailabilityView, error)
	GetByID(ctx context.Context, id uuid.UUID, actor reservation.Actor) (*ReservationView, error)
	ListMine(ctx context.Context, actor reservation.Actor, filter MineFilter) ([]*MyReservationView, error)
	ListForAdmin(ctx context.Context, filter ReservationFilter) ([]*ReservationView, error)
	Planning(ctx context.Context, date calendar.Date, turn reservation.Turn) (*reservation.Planning, error)
}

type reservationQueriesImpl struct {
	repo      ReservationReadStore
	occupancy OccupancyReadStore
	capacity  CapacityReadStore
	cache     OccupancyCache
	policy    *reservation.Policy
	group     singleflight.Group
}

func NewReservationQueries(
	repo ReservationReadStore,
	occupancy OccupancyReadStore,
	capacity CapacityReadStore,
	cache OccupancyCache,
	policy *reservation.Policy,
) ReservationQueries {
	return &reservationQueriesImpl{
		repo:      repo,
		occupancy: occupancy,
		capacity:  capacity,
		cache:     cache,
		policy:    policy,
	}
}

func (q *reservationQueriesImpl) Availability(ctx context.Context, date calendar.Date, turn reservation.Turn) (*AvailabilityView, error) {
	cfg, err := loadCapacityConfig(ctx, q.capacity)
	if err != nil {
		return nil, err
	}
	if err := q.policy.CheckCalendarEligibility(reservation.Candidate{Date: date, Turn: turn}, cfg); err != nil {
		return nil, err
	}

	occ, err := q.computeOccupancy(ctx, date, turn)
	if err != nil {
		return nil, err
	}
	return NewAvailabilityView(date, turn, occ, cfg), nil
}

// computeOccupancy reads through the cache; concurrent misses for the same
// slot share one database round trip.
func (q *reservationQueriesImpl) computeOccupancy(ctx context.Context, date calendar.Date, turn reservation.Turn) (reservation.Occupancy, error) {
	occ, gen, ok := q.cache.Get(ctx, date, turn)
	if ok {
		return occ, nil
	}

	key := date.String() + ":" + turn.String()
	// the shared lookup serves every waiter, so it must outlive the caller that started it
	fillCtx := context.WithoutCancel(ctx)
	v, err, shared := q.group.Do(key, func() (any, error) {
		occ, err := q.occupancy.Occupancy(fillCtx, date, turn)
		if err != nil {
			return reservation.Occupancy{}, err
		}
		q.cache.Set(fillCtx, date, turn, gen, occ)
		return occ, nil
	})
	if err != nil {
		return reservation.Occupancy{}, err
	}
	if shared {
		slog.Debug("occupancy lookup shared", "key", key)
	}
	return v.(reservation.Occupancy), nil
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, actor reservation.Actor) (*ReservationView, error) {
	rv, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, reservation.NotFound("reservation")
		}
		return nil, err
	}
	if !actor.IsStaff() && rv.CustomerID != actor.ID {
		return nil, reservation.Forbidden("you can only view your own reservations")
	}
	if !actor.IsStaff() {
		rv.Customer = nil
	}
	return rv, nil
}

func (q *reservationQueriesImpl) ListMine(ctx context.Context, actor reservation.Actor, filter MineFilter) ([]*MyReservationView, error) {
	rows, err := q.repo.ListByCustomer(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	out := make([]*MyReservationView, 0, len(rows))
	for _, rv := range rows {
		isFuture := q.policy.IsFutureDate(rv.Date)
		switch filter {
		case MineFuture:
			if !isFuture {
				continue
			}
		case MinePast:
			if isFuture {
				continue
			}
		}
		changeable := rv.Status == reservation.StatusActive &&
			isFuture &&
			q.policy.HasMoreThan24HoursUntilTurn(rv.Date, rv.Turn)
		out = append(out, &MyReservationView{
			ReservationView: *rv,
			IsFuture:        isFuture,
			CanModify:       changeable,
			CanCancel:       changeable,
		})
	}
	return out, nil
}

func (q *reservationQueriesImpl) ListForAdmin(ctx context.Context, filter ReservationFilter) ([]*ReservationView, error) {
	return q.repo.List(ctx, filter)
}

func (q *reservationQueriesImpl) Planning(ctx context.Context, date calendar.Date, turn reservation.Turn) (*reservation.Planning, error) {
	cfg, err := loadCapacityConfig(ctx, q.capacity)
	if err != nil {
		return nil, err
	}
	entries, err := q.repo.ListActiveForSlot(ctx, date, turn)
	if err != nil {
		return nil, err
	}
	p := reservation.SummarizePlanning(date, turn, entries, cfg)
	return &p, nil
}
