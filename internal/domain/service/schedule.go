package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/slack-schedule-collector/internal/domain"
	"github.com/slack-schedule-collector/internal/domain/contract"
	"github.com/slack-schedule-collector/internal/domain/entity"
	"github.com/slack-schedule-collector/pkg/logger"
)

type scheduleService struct {
	dm       contract.DataManager
	notifier contract.Notifier
	notifSvc *notifierService
	log      *logger.Logger
	now      func() time.Time
}

func newSchedule(dm contract.DataManager, notifier contract.Notifier, log *logger.Logger) *scheduleService {
	return &scheduleService{
		dm:       dm,
		notifier: notifier,
		notifSvc: nil, // set later to avoid a circular constructor dependency
		log:      log.WithComponent("schedule"),
		now:      time.Now,
	}
}

func (s *scheduleService) SetNotifierService(notifSvc *notifierService) {
	s.notifSvc = notifSvc
}

// Create stores a new schedule. Manually created schedules get a random id;
// future ones additionally get a one-shot delivery registration so the
// reminder fires even if the polling loop is not running at that instant.
func (s *scheduleService) Create(ctx context.Context, schedule *entity.Schedule) error {
	if schedule.ID == "" {
		schedule.ID = uuid.NewString()
	}
	if schedule.Source == "" {
		schedule.Source = entity.SourceManual
	}
	if schedule.Type == "" {
		schedule.Type = entity.TypeTask
	}
	schedule.CreatedAt = s.now().UTC()

	if err := s.dm.Schedule().Upsert(schedule); err != nil {
		return fmt.Errorf("failed to create schedule: %w", err)
	}

	s.registerOneShot(ctx, schedule)
	return nil
}

// Update overwrites an existing schedule's fields. CreatedAt is preserved by
// the store.
func (s *scheduleService) Update(ctx context.Context, schedule *entity.Schedule) error {
	existing, err := s.dm.Schedule().GetByID(schedule.ID)
	if err != nil {
		return fmt.Errorf("failed to load schedule: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("schedule %s not found", schedule.ID)
	}

	if err := s.dm.Schedule().Upsert(schedule); err != nil {
		return fmt.Errorf("failed to update schedule: %w", err)
	}

	s.registerOneShot(ctx, schedule)
	return nil
}

func (s *scheduleService) GetByID(id string) (*entity.Schedule, error) {
	return s.dm.Schedule().GetByID(id)
}

func (s *scheduleService) List() ([]*entity.Schedule, error) {
	return s.dm.Schedule().GetAll()
}

func (s *scheduleService) ListBetween(from, to time.Time) ([]*entity.Schedule, error) {
	return s.dm.Schedule().GetBetween(from, to)
}

// ToggleDone flips the done flag and returns the new value. Done schedules are
// excluded from notification queries but keep their notification state.
func (s *scheduleService) ToggleDone(ctx context.Context, id string) (bool, error) {
	schedule, err := s.dm.Schedule().GetByID(id)
	if err != nil {
		return false, fmt.Errorf("failed to load schedule: %w", err)
	}
	if schedule == nil {
		return false, fmt.Errorf("schedule %s not found", id)
	}

	done := !schedule.IsDone
	if err := s.dm.Schedule().SetDone(id, done); err != nil {
		return false, fmt.Errorf("failed to toggle done: %w", err)
	}

	return done, nil
}

// Delete removes a schedule. For workspace-sourced schedules a tombstone for
// the source message is written in the same transaction, before the row goes,
// so a later sync can never resurrect it. Any pending one-shot registration is
// cancelled and the in-memory notification state evicted.
func (s *scheduleService) Delete(ctx context.Context, id string) error {
	schedule, err := s.dm.Schedule().GetByID(id)
	if err != nil {
		return fmt.Errorf("failed to load schedule: %w", err)
	}
	if schedule == nil {
		return nil
	}

	if schedule.Source == entity.SourceWorkspace && schedule.SourceMessageTS != "" {
		err = s.dm.WithTransaction(ctx, func(dm contract.DataManager) error {
			if err := dm.Tombstone().Create(schedule.SourceMessageTS, s.now().UTC()); err != nil {
				return err
			}
			return dm.Schedule().Delete(id)
		})
	} else {
		err = s.dm.Schedule().Delete(id)
	}
	if err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}

	if cErr := s.notifier.Cancel(ctx, id); cErr != nil {
		s.log.Warn().Err(cErr).Str("schedule_id", id).Msg("failed to cancel pending notification")
	}
	if s.notifSvc != nil {
		s.notifSvc.Forget(id)
	}

	return nil
}

// ResolveTag looks up a schedule's tag reference. A dangling reference (tag
// deleted since assignment) resolves to absent, never to an error.
func (s *scheduleService) ResolveTag(tagID string) (*entity.Tag, bool, error) {
	if tagID == "" {
		return nil, false, nil
	}

	tag, err := s.dm.Tag().GetByID(tagID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to resolve tag: %w", err)
	}
	if tag == nil {
		return nil, false, nil
	}

	return tag, true, nil
}

func (s *scheduleService) registerOneShot(ctx context.Context, schedule *entity.Schedule) {
	if schedule.NotificationSent || schedule.IsDone || !schedule.StartAt.After(s.now()) {
		return
	}

	err := s.notifier.NotifyAt(ctx, entity.Notification{
		ScheduleID: schedule.ID,
		Title:      schedule.Title,
		Body:       fmt.Sprintf("%s is starting", schedule.Title),
	}, schedule.StartAt)
	if err != nil {
		s.log.Warn().Err(err).Str("schedule_id", schedule.ID).Msg("failed to register one-shot notification")
	}
}

// EnsureDefaultTags seeds the two well-known tags used for workspace-sourced
// content when they are missing. Safe to call on every startup.
func EnsureDefaultTags(dm contract.DataManager) error {
	defaults := []*entity.Tag{
		{ID: domain.MeetingTagID, Name: domain.MeetingTagName, Color: domain.MeetingColor},
		{ID: domain.MentionedTagID, Name: domain.MentionedTagName, Color: domain.MentionedColor},
	}

	for _, tag := range defaults {
		existing, err := dm.Tag().GetByID(tag.ID)
		if err != nil {
			return fmt.Errorf("failed to check default tag: %w", err)
		}
		if existing != nil {
			continue
		}
		if err := dm.Tag().Create(tag); err != nil {
			return fmt.Errorf("failed to seed default tag: %w", err)
		}
	}

	return nil
}
