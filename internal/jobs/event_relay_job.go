package jobs

import (
	"context"
	"log/slog"

	"commerce/internal/adapters/out/postgres/outboxrepo"
	"commerce/internal/core/ports"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// relayBatchSize caps how many outbox messages one tick processes.
const relayBatchSize = 100

// EventRelayJob publishes committed domain events from the transactional
// outbox. Runs every second so event delivery stays close to real time.
type EventRelayJob struct {
	outbox    *outboxrepo.GormOutboxRepository
	publisher ports.EventPublisher
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewEventRelayJob creates a new job for relaying outbox messages.
// Uses the given publisher to deliver each unpublished message in order.
func NewEventRelayJob(
	outbox *outboxrepo.GormOutboxRepository,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) *EventRelayJob {
	return &EventRelayJob{
		outbox:    outbox,
		publisher: publisher,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "event_relay_job"),
	}
}

// Start begins the event relay job to run every second.
func (j *EventRelayJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		if err := j.relayOnce(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Event relay job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Event relay job started (running every second)")
	return nil
}

// Stop stops the event relay job.
func (j *EventRelayJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Event relay job stopped")
}

// relayOnce publishes one batch of unpublished messages, oldest first.
// Each message is marked published only after a successful publish, so a
// failure leaves the message in place for the next tick.
func (j *EventRelayJob) relayOnce(ctx context.Context) error {
	messages, err := j.outbox.GetUnpublished(ctx, relayBatchSize)
	if err != nil {
		return err
	}

	for _, message := range messages {
		err = j.publisher.Publish(ctx, message.EventName, message.AggregateID.String(), message.Payload)
		if err != nil {
			j.logger.ErrorContext(ctx, "Failed to publish outbox message",
				"messageId", message.ID.String(),
				"eventName", message.EventName,
				"error", err,
			)
			return err
		}

		if err = j.outbox.MarkPublished(ctx, []uuid.UUID{message.ID}); err != nil {
			return err
		}
	}

	return nil
}
