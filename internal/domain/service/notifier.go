package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/slack-schedule-collector/internal/domain"
	"github.com/slack-schedule-collector/internal/domain/contract"
	"github.com/slack-schedule-collector/internal/domain/entity"
	"github.com/slack-schedule-collector/pkg/logger"
)

// evictGrace is how long dedup keys outlive their schedule's start time. Long
// enough to cover a MarkNotified retry, short enough to bound the set.
const evictGrace = 10 * time.Minute

// notifierService drives the per-schedule notification state machine off a
// fixed-interval poll: Pending -> AdvanceNotified (in-memory only) -> Started
// (persisted via notification_sent). Advance dedup state is process-local and
// lost on restart; only the start event is guaranteed at-most-once across
// restarts.
type notifierService struct {
	dm       contract.DataManager
	notifier contract.Notifier
	opener   contract.ScheduleOpener
	log      *logger.Logger
	now      func() time.Time

	cron *cron.Cron

	mu sync.Mutex
	// notified maps a dedup key (schedule id for start events,
	// "id:Nm" for advance minute-buckets) to the schedule's start time, which
	// drives eviction.
	notified map[string]time.Time
}

func newNotifier(dm contract.DataManager, notifier contract.Notifier, opener contract.ScheduleOpener, log *logger.Logger) *notifierService {
	return &notifierService{
		dm:       dm,
		notifier: notifier,
		opener:   opener,
		log:      log.WithComponent("notifier"),
		now:      time.Now,
		notified: make(map[string]time.Time),
	}
}

// Start begins polling. Each tick runs to completion before the next fires.
func (s *notifierService) Start() error {
	if s.cron != nil {
		return nil
	}

	s.cron = cron.New()
	spec := fmt.Sprintf("@every %s", domain.PollInterval)
	if _, err := s.cron.AddFunc(spec, func() { s.Tick(context.Background()) }); err != nil {
		return fmt.Errorf("failed to register poll job: %w", err)
	}

	s.cron.Start()
	s.log.Info().Str("interval", domain.PollInterval.String()).Msg("notification poller started")
	return nil
}

// Stop stops future ticks; an in-flight tick is allowed to finish.
func (s *notifierService) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
	s.cron = nil
	s.log.Info().Msg("notification poller stopped")
}

// Tick runs one poll pass.
func (s *notifierService) Tick(ctx context.Context) {
	now := s.now()
	s.evict(now)

	schedules, err := s.dm.Schedule().Upcoming(now, domain.AdvanceWindow)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to query upcoming schedules")
		return
	}

	for _, schedule := range schedules {
		remaining := schedule.StartAt.Sub(now)
		if remaining <= 0 {
			s.handleStart(ctx, schedule)
		} else {
			s.handleAdvance(ctx, schedule, remaining)
		}
	}
}

// handleStart delivers the start notification exactly once per process and
// persists the terminal state. Delivery is guarded by the in-memory set so a
// failed MarkNotified retries the write on the next tick without re-notifying.
func (s *notifierService) handleStart(ctx context.Context, schedule *entity.Schedule) {
	if s.markSeen(schedule.ID, schedule.StartAt) {
		err := s.notifier.NotifyNow(ctx, entity.Notification{
			ScheduleID: schedule.ID,
			Title:      schedule.Title,
			Body:       fmt.Sprintf("%s is starting now", schedule.Title),
		})
		if err != nil {
			s.log.Error().Err(err).Str("schedule_id", schedule.ID).Msg("failed to deliver start notification")
		}

		if s.opener != nil {
			s.opener.OpenSchedule(schedule.ID)
		}
	}

	if err := s.dm.Schedule().MarkNotified(schedule.ID); err != nil {
		// Retried next tick: the query still returns the schedule and the
		// seen set suppresses a duplicate delivery.
		s.log.Error().Err(err).Str("schedule_id", schedule.ID).Msg("failed to persist notification state")
	}
}

// handleAdvance delivers at most one reminder per (schedule, minute-bucket).
func (s *notifierService) handleAdvance(ctx context.Context, schedule *entity.Schedule, remaining time.Duration) {
	minutes := int(remaining.Round(time.Minute) / time.Minute)
	key := fmt.Sprintf("%s:%dm", schedule.ID, minutes)
	if !s.markSeen(key, schedule.StartAt) {
		return
	}

	err := s.notifier.NotifyNow(ctx, entity.Notification{
		ScheduleID: schedule.ID,
		Title:      schedule.Title,
		Body:       fmt.Sprintf("%s starts in %d minutes", schedule.Title, minutes),
	})
	if err != nil {
		s.log.Error().Err(err).Str("schedule_id", schedule.ID).Msg("failed to deliver advance notification")
	}
}

// Forget drops all dedup state for a schedule, typically on delete.
func (s *notifierService) Forget(scheduleID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key := range s.notified {
		if key == scheduleID || strings.HasPrefix(key, scheduleID+":") {
			delete(s.notified, key)
		}
	}
}

// markSeen records a dedup key; it reports true only the first time.
func (s *notifierService) markSeen(key string, startAt time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.notified[key]; ok {
		return false
	}
	s.notified[key] = startAt
	return true
}

// evict removes keys whose schedule start has passed, keeping the set bounded
// over long-running processes.
func (s *notifierService) evict(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, startAt := range s.notified {
		if startAt.Before(now.Add(-evictGrace)) {
			delete(s.notified, key)
		}
	}
}
