package sync

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/turtlefinance/meeting-sync/errors"
	"github.com/turtlefinance/meeting-sync/internal/domain/entities"
)

// Engine fans one enriched transcript out to every configured destination.
// Each destination write is independent: a failure is logged and never
// prevents the remaining destinations, and nothing already written is rolled
// back. Partial propagation is an accepted, observable outcome.
type Engine struct {
	destinations []Destination
	delay        time.Duration
	logger       *zap.Logger
}

// NewEngine constructs a sync engine over the given destinations. delay is
// the fixed pause between successive destination writes, kept blunt on
// purpose to stay under third-party rate limits.
func NewEngine(logger *zap.Logger, delay time.Duration, destinations ...Destination) *Engine {
	return &Engine{
		destinations: destinations,
		delay:        delay,
		logger:       logger,
	}
}

// Sync idempotently materializes the transcript into each destination in
// order. The duplicate check is a read-then-write without a lock; two
// deliveries for the same meeting racing each other can still both insert,
// which is accepted.
func (e *Engine) Sync(ctx context.Context, t *entities.Transcript) {
	meetingID := strings.TrimSpace(t.ID)

	for i, dest := range e.destinations {
		e.syncOne(ctx, dest, t, meetingID)

		if i < len(e.destinations)-1 {
			if err := sleepContext(ctx, e.delay); err != nil {
				e.logger.Warn("sync interrupted",
					zap.String("meeting_id", meetingID),
					zap.Error(err),
				)
				return
			}
		}
	}
}

func (e *Engine) syncOne(ctx context.Context, dest Destination, t *entities.Transcript, meetingID string) {
	exists, err := dest.Exists(ctx, meetingID)
	if err != nil {
		e.logger.Error("destination duplicate check failed",
			zap.String("destination", dest.Name()),
			zap.String("meeting_id", meetingID),
			zap.Error(errors.ErrDestinationCheckFailed(dest.Name(), meetingID, err)),
		)
		return
	}
	if exists {
		e.logger.Info("meeting already present, skipping destination",
			zap.String("destination", dest.Name()),
			zap.String("meeting_id", meetingID),
		)
		return
	}

	if err := dest.Write(ctx, t); err != nil {
		e.logger.Error("destination write failed",
			zap.String("destination", dest.Name()),
			zap.String("meeting_id", meetingID),
			zap.Error(errors.ErrDestinationWriteFailed(dest.Name(), meetingID, err)),
		)
		return
	}

	e.logger.Info("destination write complete",
		zap.String("destination", dest.Name()),
		zap.String("meeting_id", meetingID),
		zap.Int("action_items", len(t.ActionItems)),
	)
}

// sleepContext pauses for d or until the context is cancelled.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
