package database

import (
	"context"
	"fmt"

	"github.com/slack-schedule-collector/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db            *DB
	scheduleRepo  contract.ScheduleRepo
	tagRepo       contract.TagRepo
	workspaceRepo contract.WorkspaceRepo
	tombstoneRepo contract.TombstoneRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	i := &instance{db: db}
	i.scheduleRepo = newScheduleRepo(db.conn)
	i.tagRepo = newTagRepo(db.conn)
	i.workspaceRepo = newWorkspaceRepo(db.conn)
	i.tombstoneRepo = newTombstoneRepo(db.conn)
	return i
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		scheduleRepo:  newScheduleRepo(db),
		tagRepo:       newTagRepo(db),
		workspaceRepo: newWorkspaceRepo(db),
		tombstoneRepo: newTombstoneRepo(db),
	}
}

func (i *instance) Schedule() contract.ScheduleRepo {
	return i.scheduleRepo
}

func (i *instance) Tag() contract.TagRepo {
	return i.tagRepo
}

func (i *instance) Workspace() contract.WorkspaceRepo {
	return i.workspaceRepo
}

func (i *instance) Tombstone() contract.TombstoneRepo {
	return i.tombstoneRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	if i.db == nil {
		// Already inside a transaction; run against the same connection.
		return fn(i)
	}

	tx, err := i.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
