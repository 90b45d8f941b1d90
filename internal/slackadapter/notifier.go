package slackadapter

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/slack-go/slack"

	"github.com/slack-schedule-collector/internal/domain/entity"
	"github.com/slack-schedule-collector/pkg/logger"
)

// notifierAPI is the slice of the Slack client the notifier uses.
type notifierAPI interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
	ScheduleMessageContext(ctx context.Context, channelID, postAt string, options ...slack.MsgOption) (string, string, error)
	DeleteScheduledMessageContext(ctx context.Context, params *slack.DeleteScheduledMessageParameters) (bool, error)
}

// Notifier implements contract.Notifier by posting reminders to a Slack
// channel. One-shot registrations use chat.scheduleMessage, which fires even
// when this process is not running at the scheduled instant.
type Notifier struct {
	api       notifierAPI
	channelID string
	log       *logger.Logger

	mu        sync.Mutex
	scheduled map[string]string // schedule id -> scheduled message id
}

func NewNotifier(token, channelID string, log *logger.Logger) *Notifier {
	return &Notifier{
		api:       slack.New(token),
		channelID: channelID,
		log:       log.WithComponent("notifier"),
		scheduled: make(map[string]string),
	}
}

func (n *Notifier) NotifyNow(ctx context.Context, notification entity.Notification) error {
	_, _, err := n.api.PostMessageContext(
		ctx,
		n.channelID,
		slack.MsgOptionText(renderMessage(notification), false),
	)
	if err != nil {
		return fmt.Errorf("failed to post notification: %w", classifyError(err))
	}

	return nil
}

func (n *Notifier) NotifyAt(ctx context.Context, notification entity.Notification, at time.Time) error {
	// Replace any earlier registration for the same schedule.
	if err := n.Cancel(ctx, notification.ScheduleID); err != nil {
		n.log.Warn().Err(err).
			Str("schedule_id", notification.ScheduleID).
			Msg("failed to cancel previous registration")
	}

	_, scheduledMessageID, err := n.api.ScheduleMessageContext(
		ctx,
		n.channelID,
		fmt.Sprintf("%d", at.Unix()),
		slack.MsgOptionText(renderMessage(notification), false),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule notification: %w", classifyError(err))
	}

	n.mu.Lock()
	n.scheduled[notification.ScheduleID] = scheduledMessageID
	n.mu.Unlock()

	return nil
}

func (n *Notifier) Cancel(ctx context.Context, scheduleID string) error {
	n.mu.Lock()
	scheduledMessageID, ok := n.scheduled[scheduleID]
	delete(n.scheduled, scheduleID)
	n.mu.Unlock()

	if !ok {
		return nil
	}

	_, err := n.api.DeleteScheduledMessageContext(ctx, &slack.DeleteScheduledMessageParameters{
		Channel:            n.channelID,
		ScheduledMessageID: scheduledMessageID,
	})
	if err != nil {
		return fmt.Errorf("failed to delete scheduled notification: %w", classifyError(err))
	}

	return nil
}

func renderMessage(n entity.Notification) string {
	if n.Body == "" {
		return n.Title
	}
	return fmt.Sprintf("*%s*\n%s", n.Title, n.Body)
}
