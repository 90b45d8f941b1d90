package contract

import (
	"context"
	"time"

	"github.com/slack-schedule-collector/internal/domain/entity"
)

// Notifier is the external delivery capability. The core decides when and what
// to request; rendering is the implementation's problem.
type Notifier interface {
	// NotifyNow requests immediate delivery.
	NotifyNow(ctx context.Context, n entity.Notification) error
	// NotifyAt registers a one-shot delivery at the given instant, keyed by
	// n.ScheduleID. Registering again for the same id replaces the previous
	// registration.
	NotifyAt(ctx context.Context, n entity.Notification, at time.Time) error
	// Cancel removes a pending one-shot registration. Cancelling an unknown id
	// is a no-op.
	Cancel(ctx context.Context, scheduleID string) error
}

// ScheduleOpener is implemented by the presentation layer and invoked when a
// schedule's start notification fires.
type ScheduleOpener interface {
	OpenSchedule(scheduleID string)
}
