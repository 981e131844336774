package commands

import (
	"context"

	"restaurant-reservations/internal/domain/reservation"
	"restaurant-reservations/internal/domain/user"
	reqdto "restaurant-reservations/internal/handler/dto/request"
	"restaurant-reservations/internal/infra"
	"restaurant-reservations/internal/pkg/clock"
	"restaurant-reservations/internal/pkg/errs"
	"restaurant-reservations/internal/pkg/password"
	"restaurant-reservations/internal/usecase/shared"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

var (
	ErrDatabaseOperationFailed = errs.New("database operation failed")
	ErrEmailAlreadyExists      = errs.New("an account with this email already exists")
	ErrPasswordHashing         = errs.New("password hashing failed")
)

// OccupancySummary is the turn-wide occupancy right after a write.
type OccupancySummary struct {
	Percentage    int
	Reserved      int
	TotalCapacity int
}

// ReservationResult carries the written reservation. Occupancy is nil when
// it could not be computed because the capacity config is missing.
type ReservationResult struct {
	Reservation *reservation.Reservation
	Occupancy   *OccupancySummary
}

type ReservationWithCustomerResult struct {
	ReservationResult
	Customer *user.User
}

type ReservationCommands interface {
	Create(ctx context.Context, req reqdto.CreateReservationRequest, actor reservation.Actor) (*ReservationResult, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateReservationRequest, actor reservation.Actor) (*ReservationResult, error)
	Cancel(ctx context.Context, id uuid.UUID, actor reservation.Actor) (*ReservationResult, error)
	CreateWithNewCustomer(ctx context.Context, req reqdto.CreateWithNewCustomerRequest, actor reservation.Actor) (*ReservationWithCustomerResult, error)
}

type reservationCommandsImpl struct {
	uow         shared.UnitOfWork
	policy      *reservation.Policy
	clock       clock.Clock
	invalidator OccupancyInvalidator
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	policy *reservation.Policy,
	clock clock.Clock,
	invalidator OccupancyInvalidator,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:         uow,
		policy:      policy,
		clock:       clock,
		invalidator: invalidator,
	}
}

func (r *reservationCommandsImpl) Create(
	ctx context.Context,
	req reqdto.CreateReservationRequest,
	actor reservation.Actor,
) (*ReservationResult, error) {
	draft, err := req.ToDomain()
	if err != nil {
		return nil, err
	}

	customerID, err := r.resolveCustomer(ctx, req.CustomerID, actor)
	if err != nil {
		return nil, err
	}

	if err := r.precheck(ctx, draft.Candidate); err != nil {
		return nil, err
	}

	var result *ReservationResult
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, summary, err := r.book(ctx, tx, customerID, draft, actor)
		if err != nil {
			return err
		}
		result = &ReservationResult{Reservation: res, Occupancy: summary}
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.invalidator.Invalidate(ctx, draft.Candidate.Date, draft.Candidate.Turn)
	return result, nil
}

func (r *reservationCommandsImpl) Update(
	ctx context.Context,
	id uuid.UUID,
	req reqdto.UpdateReservationRequest,
	actor reservation.Actor,
) (*ReservationResult, error) {
	// Invalid values are reported only after the reservation is known to be editable.
	changes, inputErr := req.ToDomain()

	var (
		result *ReservationResult
		before reservation.Slot
	)
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, err := r.findForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := r.policy.CheckEditable(existing, actor); err != nil {
			return err
		}
		if inputErr != nil {
			return inputErr
		}

		before = existing.Slot()
		candidate := existing.Merge(changes)
		if err := candidate.Validate(); err != nil {
			return err
		}

		cfg, err := r.capacityConfig(ctx, tx.Reads())
		if err != nil {
			return err
		}

		// The source slot only loses people, so only the target is locked.
		if reservation.RequiresCapacityCheck(existing.Candidate(), candidate) {
			if err := tx.Reservations().LockSlot(ctx, tx.DB(), candidate.Slot()); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}

		excludeSelf := existing.ID()
		occ, err := tx.Reads().Occupancy(ctx, candidate.Date, candidate.Turn, &excludeSelf)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := r.policy.CheckUpdateEligibility(existing, candidate, actor, cfg, occ.ReservedIn(candidate.Zone)); err != nil {
			return err
		}

		now := r.clock.Now()
		existing.Reschedule(candidate, changes.Notes, now)
		if err := tx.Reservations().Update(ctx, tx.DB(), existing); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := enqueueReservationEvent(ctx, tx, TopicReservationUpdated, existing, actor, now); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		result = &ReservationResult{
			Reservation: existing,
			Occupancy:   summarize(occ.With(candidate.Zone, candidate.PartySize), cfg),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.invalidator.Invalidate(ctx, before.Date, before.Turn)
	if after := result.Reservation.Slot(); after.Date != before.Date || after.Turn != before.Turn {
		r.invalidator.Invalidate(ctx, after.Date, after.Turn)
	}
	return result, nil
}

func (r *reservationCommandsImpl) Cancel(ctx context.Context, id uuid.UUID, actor reservation.Actor) (*ReservationResult, error) {
	var result *ReservationResult
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, err := r.findForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		if err := existing.Transition(reservation.CancelActionFor(actor), actor, r.policy); err != nil {
			return err
		}

		if err := tx.Reservations().Update(ctx, tx.DB(), existing); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := enqueueReservationEvent(ctx, tx, TopicReservationCancelled, existing, actor, existing.UpdatedAt()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		result = &ReservationResult{Reservation: existing}
		cfg, err := r.capacityConfig(ctx, tx.Reads())
		switch {
		case errors.Is(err, reservation.ErrConfigMissing):
			// the cancel stands on its own; occupancy is left out
			return nil
		case err != nil:
			return err
		}
		occ, err := tx.Reads().Occupancy(ctx, existing.Date(), existing.Turn(), nil)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		result.Occupancy = summarize(occ, cfg)
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.invalidator.Invalidate(ctx, result.Reservation.Date(), result.Reservation.Turn())
	return result, nil
}

func (r *reservationCommandsImpl) CreateWithNewCustomer(
	ctx context.Context,
	req reqdto.CreateWithNewCustomerRequest,
	actor reservation.Actor,
) (*ReservationWithCustomerResult, error) {
	if !actor.IsStaff() {
		return nil, reservation.Forbidden("only staff can register customers")
	}

	customer, draft, err := req.ToDomain()
	if err != nil {
		return nil, err
	}

	exists, err := r.uow.CommandReads().EmailExists(ctx, customer.Credentials.Email().Value())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	if err := r.precheck(ctx, draft.Candidate); err != nil {
		return nil, err
	}

	hash, err := password.HashPassword(customer.Credentials.Password().Value())
	if err != nil {
		return nil, errs.Mark(err, ErrPasswordHashing)
	}

	var result *ReservationWithCustomerResult
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := r.clock.Now()
		newUser, err := user.NewUser(customer.Credentials.Email(), hash, user.RoleCustomer, customer.Profile, now)
		if err != nil {
			return err
		}

		// Lock before creating the customer so a full slot leaves no orphan account.
		if err := tx.Reservations().LockSlot(ctx, tx.DB(), draft.Candidate.Slot()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		cfg, occ, err := r.slotState(ctx, tx.Reads(), draft.Candidate)
		if err != nil {
			return err
		}
		if err := r.policy.CheckCreateEligibility(draft.Candidate, cfg, occ.ReservedIn(draft.Candidate.Zone)); err != nil {
			return err
		}

		if _, err := tx.Users().Create(ctx, tx.DB(), newUser); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrEmailAlreadyExists
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := enqueueCustomerEvent(ctx, tx, newUser, actor, now); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		res, err := reservation.NewReservation(newUser.ID(), draft.Candidate, draft.Notes, now)
		if err != nil {
			return err
		}
		if err := r.persistNew(ctx, tx, res, actor); err != nil {
			return err
		}

		result = &ReservationWithCustomerResult{
			ReservationResult: ReservationResult{
				Reservation: res,
				Occupancy:   summarize(occ.With(res.Zone(), res.PartySize()), cfg),
			},
			Customer: newUser,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.invalidator.Invalidate(ctx, draft.Candidate.Date, draft.Candidate.Turn)
	return result, nil
}

// book runs the full create gating under the slot lock and persists.
func (r *reservationCommandsImpl) book(
	ctx context.Context,
	tx shared.Tx,
	customerID uuid.UUID,
	draft reqdto.ReservationDraft,
	actor reservation.Actor,
) (*reservation.Reservation, *OccupancySummary, error) {
	if err := tx.Reservations().LockSlot(ctx, tx.DB(), draft.Candidate.Slot()); err != nil {
		return nil, nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	cfg, occ, err := r.slotState(ctx, tx.Reads(), draft.Candidate)
	if err != nil {
		return nil, nil, err
	}
	if err := r.policy.CheckCreateEligibility(draft.Candidate, cfg, occ.ReservedIn(draft.Candidate.Zone)); err != nil {
		return nil, nil, err
	}

	now := r.clock.Now()
	res, err := reservation.NewReservation(customerID, draft.Candidate, draft.Notes, now)
	if err != nil {
		return nil, nil, err
	}
	if err := r.persistNew(ctx, tx, res, actor); err != nil {
		return nil, nil, err
	}

	return res, summarize(occ.With(res.Zone(), res.PartySize()), cfg), nil
}

func (r *reservationCommandsImpl) persistNew(
	ctx context.Context,
	tx shared.Tx,
	res *reservation.Reservation,
	actor reservation.Actor,
) error {
	if _, err := tx.Reservations().Create(ctx, tx.DB(), res); err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return reservation.NotFound("customer")
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if err := enqueueReservationEvent(ctx, tx, TopicReservationCreated, res, actor, res.CreatedAt()); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

// precheck fails fast on the calendar and capacity rules before a
// transaction is opened. The decision is repeated under the slot lock.
func (r *reservationCommandsImpl) precheck(ctx context.Context, c reservation.Candidate) error {
	cfg, occ, err := r.slotState(ctx, r.uow.CommandReads(), c)
	if err != nil {
		return err
	}
	return r.policy.CheckCreateEligibility(c, cfg, occ.ReservedIn(c.Zone))
}

func (r *reservationCommandsImpl) slotState(
	ctx context.Context,
	reads shared.CommandReads,
	c reservation.Candidate,
) (reservation.CapacityConfig, reservation.Occupancy, error) {
	cfg, err := r.capacityConfig(ctx, reads)
	if err != nil {
		return reservation.CapacityConfig{}, reservation.Occupancy{}, err
	}
	occ, err := reads.Occupancy(ctx, c.Date, c.Turn, nil)
	if err != nil {
		return reservation.CapacityConfig{}, reservation.Occupancy{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return cfg, occ, nil
}

func (r *reservationCommandsImpl) capacityConfig(ctx context.Context, reads shared.CommandReads) (reservation.CapacityConfig, error) {
	cfg, err := reads.CapacityConfig(ctx)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return reservation.CapacityConfig{}, reservation.ConfigMissing()
		}
		return reservation.CapacityConfig{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return cfg, nil
}

func (r *reservationCommandsImpl) findForUpdate(ctx context.Context, tx shared.Tx, id uuid.UUID) (*reservation.Reservation, error) {
	existing, err := tx.Reservations().FindByIDForUpdate(ctx, tx.DB(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, reservation.NotFound("reservation")
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return existing, nil
}

// resolveCustomer decides whose reservation is being created. Staff may book
// for an existing customer; everyone else books for themselves.
func (r *reservationCommandsImpl) resolveCustomer(ctx context.Context, requested *uuid.UUID, actor reservation.Actor) (uuid.UUID, error) {
	if requested == nil || *requested == actor.ID {
		return actor.ID, nil
	}
	if !actor.IsStaff() {
		return uuid.Nil, reservation.Forbidden("you can only book reservations for yourself")
	}

	customer, err := r.uow.CommandReads().UserByID(ctx, *requested)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, reservation.NotFound("customer")
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !customer.IsActive {
		return uuid.Nil, reservation.InvalidInput("customerId", "customer account is inactive")
	}
	return customer.ID, nil
}

func summarize(occ reservation.Occupancy, cfg reservation.CapacityConfig) *OccupancySummary {
	return &OccupancySummary{
		Percentage:    reservation.OccupancyPercentage(occ.TotalPeople, cfg.Total()),
		Reserved:      occ.TotalPeople,
		TotalCapacity: cfg.Total(),
	}
}
