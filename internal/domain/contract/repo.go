package contract

import (
	"context"
	"time"

	"github.com/slack-schedule-collector/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Schedule() ScheduleRepo
	Tag() TagRepo
	Workspace() WorkspaceRepo
	Tombstone() TombstoneRepo
}

// ScheduleRepo defines the contract for the schedule repository
type ScheduleRepo interface {
	// Upsert inserts or replaces by id; a second call with the same id
	// overwrites fields rather than creating a duplicate row. CreatedAt is
	// never overwritten.
	Upsert(schedule *entity.Schedule) error
	GetByID(id string) (*entity.Schedule, error)
	GetAll() ([]*entity.Schedule, error)
	GetBetween(from, to time.Time) ([]*entity.Schedule, error)
	// ExistingIDs reports which of the given ids are already stored.
	ExistingIDs(ids []string) (map[string]bool, error)
	// Upcoming returns not-yet-notified, not-done schedules starting within
	// the given duration, newest first. Schedules whose start just passed are
	// included while still inside their implied ongoing window.
	Upcoming(now time.Time, within time.Duration) ([]*entity.Schedule, error)
	// MarkNotified idempotently flips notification_sent to true.
	MarkNotified(id string) error
	SetDone(id string, done bool) error
	Delete(id string) error
}

// TagRepo defines the contract for the tag repository
type TagRepo interface {
	Create(tag *entity.Tag) error
	GetByID(id string) (*entity.Tag, error)
	GetAll() ([]*entity.Tag, error)
	Update(tag *entity.Tag) error
	Delete(id string) error
}

// WorkspaceRepo defines the contract for workspace configurations
type WorkspaceRepo interface {
	Create(ws *entity.WorkspaceConfig) error
	GetByID(id string) (*entity.WorkspaceConfig, error)
	GetAll() ([]*entity.WorkspaceConfig, error)
	GetEnabled() ([]*entity.WorkspaceConfig, error)
	Update(ws *entity.WorkspaceConfig) error
	Delete(id string) error
}

// TombstoneRepo defines the contract for deleted-message tombstones
type TombstoneRepo interface {
	Create(sourceMessageTS string, deletedAt time.Time) error
	Exists(sourceMessageTS string) (bool, error)
	GetAll() ([]*entity.DeletedMessage, error)
}
