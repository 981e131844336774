//go:build unit

package outbox

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"restaurant-reservations/internal/infra/repository"
	"restaurant-reservations/internal/pkg/clock"
	"restaurant-reservations/internal/pkg/config"
	"restaurant-reservations/internal/usecase/shared"
	brokermock "restaurant-reservations/tests/mock/broker"
	sharedmock "restaurant-reservations/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var relayNow = time.Date(2025, 6, 10, 23, 0, 0, 0, time.UTC)

type relayFixture struct {
	relay         *Relay
	publisher     *brokermock.MockPublisher
	notifications *sharedmock.MockNotificationRepository
}

func newRelayFixture(t *testing.T) *relayFixture {
	ctrl := gomock.NewController(t)
	uow := sharedmock.NewMockUnitOfWork(ctrl)
	tx := sharedmock.NewMockTx(ctrl)
	f := &relayFixture{
		publisher:     brokermock.NewMockPublisher(ctrl),
		notifications: sharedmock.NewMockNotificationRepository(ctrl),
	}
	uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, tx)
		}).AnyTimes()
	tx.EXPECT().Notifications().Return(f.notifications).AnyTimes()
	tx.EXPECT().DB().Return(nil).AnyTimes()

	cfg := config.OutboxConfig{PollInterval: time.Second, BatchSize: 50, MaxAttempts: 3}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.relay = NewRelay(uow, f.publisher, clock.NewMockClock(relayNow), cfg, logger)
	return f
}

func TestDrainOnce(t *testing.T) {
	t.Run("publishes and marks sent", func(t *testing.T) {
		f := newRelayFixture(t)
		jobs := []shared.NotificationJob{
			{ID: uuid.New(), Kind: "event", Topic: "reservation.created", Payload: []byte(`{"a":1}`)},
			{ID: uuid.New(), Kind: "event", Topic: "reservation.cancelled", Payload: []byte(`{"b":2}`)},
		}
		f.notifications.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), relayNow, int32(50)).Return(jobs, nil)
		for _, job := range jobs {
			f.publisher.EXPECT().Publish(gomock.Any(), job.Topic, job.Payload).Return(nil)
			f.notifications.EXPECT().
				UpdateJobStatus(gomock.Any(), gomock.Any(), job.ID, repository.JobStatusSent, nil, relayNow).
				Return(nil)
		}

		sent, err := f.relay.DrainOnce(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 2, sent)
	})

	t.Run("failed publish is requeued with backoff", func(t *testing.T) {
		f := newRelayFixture(t)
		job := shared.NotificationJob{ID: uuid.New(), Topic: "reservation.updated", Payload: []byte(`{}`), Attempts: 0}
		f.notifications.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), relayNow, int32(50)).
			Return([]shared.NotificationJob{job}, nil)
		f.publisher.EXPECT().Publish(gomock.Any(), job.Topic, job.Payload).Return(assert.AnError)
		f.notifications.EXPECT().
			UpdateJobStatus(gomock.Any(), gomock.Any(), job.ID, repository.JobStatusQueued, gomock.Not(gomock.Nil()), relayNow.Add(2*time.Second)).
			Return(nil)

		sent, err := f.relay.DrainOnce(context.Background())

		require.NoError(t, err)
		assert.Zero(t, sent)
	})

	t.Run("job is abandoned after the last attempt", func(t *testing.T) {
		f := newRelayFixture(t)
		job := shared.NotificationJob{ID: uuid.New(), Topic: "reservation.updated", Payload: []byte(`{}`), Attempts: 2}
		f.notifications.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]shared.NotificationJob{job}, nil)
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)
		f.notifications.EXPECT().
			UpdateJobStatus(gomock.Any(), gomock.Any(), job.ID, repository.JobStatusFailed, gomock.Any(), relayNow).
			Return(nil)

		sent, err := f.relay.DrainOnce(context.Background())

		require.NoError(t, err)
		assert.Zero(t, sent)
	})

	t.Run("claim failure is returned", func(t *testing.T) {
		f := newRelayFixture(t)
		f.notifications.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

		_, err := f.relay.DrainOnce(context.Background())

		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestBackoff(t *testing.T) {
	r := &Relay{cfg: config.OutboxConfig{PollInterval: time.Second}}

	assert.Equal(t, 2*time.Second, r.backoff(1))
	assert.Equal(t, 8*time.Second, r.backoff(3))
	assert.Equal(t, r.backoff(10), r.backoff(25))
}
