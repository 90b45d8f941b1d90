package database

import (
	"time"

	"github.com/slack-schedule-collector/internal/domain/contract"
	"github.com/slack-schedule-collector/internal/domain/entity"
)

type tombstoneRepo struct {
	db dbConn
}

func newTombstoneRepo(db dbConn) contract.TombstoneRepo {
	return &tombstoneRepo{db: db}
}

func (r *tombstoneRepo) Create(sourceMessageTS string, deletedAt time.Time) error {
	// INSERT OR IGNORE: deleting the same message twice is not an error.
	_, err := r.db.Exec(
		`INSERT OR IGNORE INTO deleted_message_tombstones (source_message_ts, deleted_at) VALUES (?, ?)`,
		sourceMessageTS,
		deletedAt.UTC(),
	)
	if err != nil {
		return stepErr("failed to create tombstone: %w", err)
	}

	return nil
}

func (r *tombstoneRepo) Exists(sourceMessageTS string) (bool, error) {
	var count int
	err := r.db.QueryRow(
		`SELECT COUNT(1) FROM deleted_message_tombstones WHERE source_message_ts = ?`,
		sourceMessageTS,
	).Scan(&count)
	if err != nil {
		return false, stepErr("failed to check tombstone: %w", err)
	}

	return count > 0, nil
}

func (r *tombstoneRepo) GetAll() ([]*entity.DeletedMessage, error) {
	rows, err := r.db.Query(
		`SELECT source_message_ts, deleted_at FROM deleted_message_tombstones`,
	)
	if err != nil {
		return nil, stepErr("failed to list tombstones: %w", err)
	}
	defer rows.Close()

	var tombstones []*entity.DeletedMessage
	for rows.Next() {
		t := &entity.DeletedMessage{}
		if err := rows.Scan(&t.SourceMessageTS, &t.DeletedAt); err != nil {
			return nil, stepErr("failed to scan tombstone: %w", err)
		}
		tombstones = append(tombstones, t)
	}

	return tombstones, rows.Err()
}
