package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/slack-schedule-collector/internal/domain"
	"github.com/slack-schedule-collector/internal/domain/entity"
)

func newNotifierForTest(m allMocks, now time.Time) *notifierService {
	s := newNotifier(m.mockDataManager, m.mockNotifier, m.mockOpener, testLogger())
	s.now = func() time.Time { return now }
	return s
}

func upcomingSchedule(id string, startAt time.Time) *entity.Schedule {
	return &entity.Schedule{
		ID:      id,
		Title:   "Standup",
		StartAt: startAt,
		Type:    entity.TypeMeeting,
		Source:  entity.SourceManual,
	}
}

func TestNotifierTick_StartEventIsAtMostOnce(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	now := time.Date(2025, 11, 20, 14, 0, 0, 0, time.UTC)
	s := newNotifierForTest(m, now)

	schedule := upcomingSchedule("s1", now.Add(-time.Minute))

	// The schedule keeps surfacing until MarkNotified succeeds, but delivery
	// must happen exactly once.
	m.mockScheduleRepo.EXPECT().Upcoming(now, domain.AdvanceWindow).
		Return([]*entity.Schedule{schedule}, nil).Times(3)

	m.mockNotifier.EXPECT().NotifyNow(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n entity.Notification) error {
			assert.Equal(t, "s1", n.ScheduleID)
			assert.Equal(t, "Standup is starting now", n.Body)
			return nil
		}).Times(1)
	m.mockOpener.EXPECT().OpenSchedule("s1").Times(1)

	// First two persists fail; the third tick finally lands the write.
	gomock.InOrder(
		m.mockScheduleRepo.EXPECT().MarkNotified("s1").Return(errors.New("disk full")),
		m.mockScheduleRepo.EXPECT().MarkNotified("s1").Return(errors.New("disk full")),
		m.mockScheduleRepo.EXPECT().MarkNotified("s1").Return(nil),
	)

	ctx := context.Background()
	s.Tick(ctx)
	s.Tick(ctx)
	s.Tick(ctx)
}

func TestNotifierTick_AdvanceReminderPerMinuteBucket(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	now := time.Date(2025, 11, 20, 14, 0, 0, 0, time.UTC)
	s := newNotifierForTest(m, now)

	schedule := upcomingSchedule("s1", now.Add(3*time.Minute))

	m.mockScheduleRepo.EXPECT().Upcoming(now, domain.AdvanceWindow).
		Return([]*entity.Schedule{schedule}, nil).Times(2)

	// Same minute bucket on both ticks: one reminder.
	m.mockNotifier.EXPECT().NotifyNow(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n entity.Notification) error {
			assert.Equal(t, "Standup starts in 3 minutes", n.Body)
			return nil
		}).Times(1)

	ctx := context.Background()
	s.Tick(ctx)
	s.Tick(ctx)

	// Time moves on; a new minute bucket gets its own reminder.
	s.now = func() time.Time { return now.Add(time.Minute) }
	m.mockScheduleRepo.EXPECT().Upcoming(now.Add(time.Minute), domain.AdvanceWindow).
		Return([]*entity.Schedule{schedule}, nil)
	m.mockNotifier.EXPECT().NotifyNow(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n entity.Notification) error {
			assert.Equal(t, "Standup starts in 2 minutes", n.Body)
			return nil
		})

	s.Tick(ctx)
}

func TestNotifierTick_QueryFailureSkipsPass(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	now := time.Date(2025, 11, 20, 14, 0, 0, 0, time.UTC)
	s := newNotifierForTest(m, now)

	m.mockScheduleRepo.EXPECT().Upcoming(now, domain.AdvanceWindow).
		Return(nil, errors.New("db locked"))

	// No notifications, no panics.
	s.Tick(context.Background())
}

func TestNotifier_Forget(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	now := time.Date(2025, 11, 20, 14, 0, 0, 0, time.UTC)
	s := newNotifierForTest(m, now)

	startAt := now.Add(time.Hour)
	s.markSeen("s1", startAt)
	s.markSeen("s1:5m", startAt)
	s.markSeen("s2", startAt)

	s.Forget("s1")

	assert.True(t, s.markSeen("s1", startAt), "start key dropped")
	assert.True(t, s.markSeen("s1:5m", startAt), "advance keys dropped")
	assert.False(t, s.markSeen("s2", startAt), "other schedules untouched")
}

func TestNotifier_Evict(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	now := time.Date(2025, 11, 20, 14, 0, 0, 0, time.UTC)
	s := newNotifierForTest(m, now)

	s.markSeen("old", now.Add(-evictGrace-time.Minute))
	s.markSeen("recent", now.Add(-time.Minute))

	s.evict(now)

	assert.True(t, s.markSeen("old", now), "expired key evicted")
	assert.False(t, s.markSeen("recent", now), "key inside grace kept")
}

func TestNotifier_DeliveryFailureStillPersists(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	now := time.Date(2025, 11, 20, 14, 0, 0, 0, time.UTC)
	s := newNotifierForTest(m, now)

	schedule := upcomingSchedule("s1", now)

	m.mockScheduleRepo.EXPECT().Upcoming(now, domain.AdvanceWindow).
		Return([]*entity.Schedule{schedule}, nil)
	m.mockNotifier.EXPECT().NotifyNow(gomock.Any(), gomock.Any()).
		Return(errors.New("channel archived"))
	m.mockOpener.EXPECT().OpenSchedule("s1")
	m.mockScheduleRepo.EXPECT().MarkNotified("s1").Return(nil)

	// At-most-once: a failed delivery is not retried.
	s.Tick(context.Background())
}
