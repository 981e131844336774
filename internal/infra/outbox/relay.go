package outbox

import (
	"context"
	"log/slog"
	"time"

	"restaurant-reservations/internal/infra/broker"
	"restaurant-reservations/internal/infra/repository"
	"restaurant-reservations/internal/pkg/clock"
	"restaurant-reservations/internal/pkg/config"
	"restaurant-reservations/internal/usecase/shared"
)

// Relay moves queued notification jobs to the broker. Jobs are claimed with
// SKIP LOCKED so several relays can run against the same database.
type Relay struct {
	uow       shared.UnitOfWork
	publisher broker.Publisher
	clock     clock.Clock
	cfg       config.OutboxConfig
	logger    *slog.Logger
}

func NewRelay(uow shared.UnitOfWork, publisher broker.Publisher, clk clock.Clock, cfg config.OutboxConfig, logger *slog.Logger) *Relay {
	return &Relay{
		uow:       uow,
		publisher: publisher,
		clock:     clk,
		cfg:       cfg,
		logger:    logger,
	}
}

// Run polls until ctx is cancelled.
func (r *Relay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.cfg.PollInterval)
	defer ticker.Stop()

	for {
		if _, err := r.DrainOnce(ctx); err != nil && ctx.Err() == nil {
			r.logger.Error("outbox drain failed", "error", err.Error())
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// DrainOnce publishes one batch and returns how many jobs were sent.
func (r *Relay) DrainOnce(ctx context.Context) (int, error) {
	sent := 0
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sent = 0
		now := r.clock.Now()
		jobs, err := tx.Notifications().ClaimDue(ctx, tx.DB(), now, r.cfg.BatchSize)
		if err != nil {
			return err
		}

		for _, job := range jobs {
			status, runAt, lastErr := r.deliver(ctx, job, now)
			if err := tx.Notifications().UpdateJobStatus(ctx, tx.DB(), job.ID, status, lastErr, runAt); err != nil {
				return err
			}
			if status == repository.JobStatusSent {
				sent++
			}
		}
		return nil
	})
	return sent, err
}

func (r *Relay) deliver(ctx context.Context, job shared.NotificationJob, now time.Time) (string, time.Time, *string) {
	err := r.publisher.Publish(ctx, job.Topic, job.Payload)
	if err == nil {
		return repository.JobStatusSent, now, nil
	}

	msg := err.Error()
	attempts := job.Attempts + 1
	if attempts >= r.cfg.MaxAttempts {
		r.logger.Error("outbox job abandoned", "job_id", job.ID, "topic", job.Topic, "attempts", attempts, "error", msg)
		return repository.JobStatusFailed, now, &msg
	}

	retryAt := now.Add(r.backoff(attempts))
	r.logger.Warn("outbox publish failed, will retry", "job_id", job.ID, "topic", job.Topic, "attempts", attempts, "retry_at", retryAt, "error", msg)
	return repository.JobStatusQueued, retryAt, &msg
}

func (r *Relay) backoff(attempts int32) time.Duration {
	if attempts > 10 {
		attempts = 10
	}
	return time.Duration(1<<attempts) * r.cfg.PollInterval
}
