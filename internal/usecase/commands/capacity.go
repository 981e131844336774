package commands

import (
	"context"

	"restaurant-reservations/internal/domain/reservation"
	reqdto "restaurant-reservations/internal/handler/dto/request"
	"restaurant-reservations/internal/infra"
	"restaurant-reservations/internal/pkg/clock"
	"restaurant-reservations/internal/pkg/errs"
	"restaurant-reservations/internal/usecase/shared"
)

type CapacityCommands interface {
	Update(ctx context.Context, req reqdto.UpdateCapacityConfigRequest, actor reservation.Actor) (reservation.CapacityConfig, error)
	// Seed writes the whole config, creating the singleton when absent.
	Seed(ctx context.Context, cfg reservation.CapacityConfig) (reservation.CapacityConfig, error)
}

type capacityCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCapacityCommands(uow shared.UnitOfWork, clock clock.Clock) CapacityCommands {
	return &capacityCommandsImpl{uow: uow, clock: clock}
}

func (c *capacityCommandsImpl) Update(
	ctx context.Context,
	req reqdto.UpdateCapacityConfigRequest,
	actor reservation.Actor,
) (reservation.CapacityConfig, error) {
	if !actor.IsStaff() {
		return reservation.CapacityConfig{}, reservation.Forbidden("only staff can change capacity")
	}

	var saved reservation.CapacityConfig
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.CapacityConfig().GetForUpdate(ctx, tx.DB())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return reservation.ConfigMissing()
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		next, err := current.Apply(req.ToDomain(), c.clock.Now())
		if err != nil {
			return err
		}

		saved, err = tx.CapacityConfig().Save(ctx, tx.DB(), next)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return reservation.CapacityConfig{}, err
	}
	return saved, nil
}

func (c *capacityCommandsImpl) Seed(ctx context.Context, cfg reservation.CapacityConfig) (reservation.CapacityConfig, error) {
	next, err := cfg.Apply(reservation.CapacityChanges{}, c.clock.Now())
	if err != nil {
		return reservation.CapacityConfig{}, err
	}

	var saved reservation.CapacityConfig
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		saved, err = tx.CapacityConfig().Save(ctx, tx.DB(), next)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return reservation.CapacityConfig{}, err
	}
	return saved, nil
}
