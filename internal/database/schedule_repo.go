package database

import (
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"github.com/slack-schedule-collector/internal/domain/contract"
	"github.com/slack-schedule-collector/internal/domain/entity"
)

const scheduleColumns = `id, title, note, location, start_at, end_at, type, source,
		workspace_id, channel_id, channel_name, source_message_ts, source_deep_link,
		source_raw_text, tag_id, links, notification_sent, is_done, created_at`

type scheduleRepo struct {
	db dbConn
}

func newScheduleRepo(db dbConn) contract.ScheduleRepo {
	return &scheduleRepo{db: db}
}

func (r *scheduleRepo) Upsert(schedule *entity.Schedule) error {
	query := `
		INSERT INTO schedules (id, title, note, location, start_at, end_at, type, source,
			workspace_id, channel_id, channel_name, source_message_ts, source_deep_link,
			source_raw_text, tag_id, links, notification_sent, is_done, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			note = excluded.note,
			location = excluded.location,
			start_at = excluded.start_at,
			end_at = excluded.end_at,
			type = excluded.type,
			source = excluded.source,
			workspace_id = excluded.workspace_id,
			channel_id = excluded.channel_id,
			channel_name = excluded.channel_name,
			source_message_ts = excluded.source_message_ts,
			source_deep_link = excluded.source_deep_link,
			source_raw_text = excluded.source_raw_text,
			tag_id = excluded.tag_id,
			links = excluded.links,
			notification_sent = excluded.notification_sent,
			is_done = excluded.is_done
	`

	linksJSON, err := json.Marshal(schedule.Links)
	if err != nil {
		return stepErr("failed to marshal links: %w", err)
	}

	var endAt interface{}
	if schedule.EndAt != nil {
		endAt = schedule.EndAt.UTC()
	}

	if schedule.CreatedAt.IsZero() {
		schedule.CreatedAt = time.Now().UTC()
	}

	_, err = r.db.Exec(query,
		schedule.ID,
		schedule.Title,
		schedule.Note,
		schedule.Location,
		schedule.StartAt.UTC(),
		endAt,
		schedule.Type,
		schedule.Source,
		schedule.WorkspaceID,
		schedule.ChannelID,
		schedule.ChannelName,
		schedule.SourceMessageTS,
		schedule.SourceDeepLink,
		schedule.SourceRawText,
		schedule.TagID,
		string(linksJSON),
		schedule.NotificationSent,
		schedule.IsDone,
		schedule.CreatedAt.UTC(),
	)
	if err != nil {
		return stepErr("failed to upsert schedule: %w", err)
	}

	return nil
}

func (r *scheduleRepo) GetByID(id string) (*entity.Schedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedules WHERE id = ?`

	schedule, err := scanSchedule(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, stepErr("failed to get schedule: %w", err)
	}

	return schedule, nil
}

func (r *scheduleRepo) GetAll() ([]*entity.Schedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedules ORDER BY start_at ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, stepErr("failed to list schedules: %w", err)
	}
	defer rows.Close()

	return scanSchedules(rows)
}

func (r *scheduleRepo) GetBetween(from, to time.Time) ([]*entity.Schedule, error) {
	query := `SELECT ` + scheduleColumns + `
		FROM schedules
		WHERE start_at >= ? AND start_at < ?
		ORDER BY start_at ASC`

	rows, err := r.db.Query(query, from.UTC(), to.UTC())
	if err != nil {
		return nil, stepErr("failed to list schedules in range: %w", err)
	}
	defer rows.Close()

	return scanSchedules(rows)
}

func (r *scheduleRepo) ExistingIDs(ids []string) (map[string]bool, error) {
	existing := make(map[string]bool)
	if len(ids) == 0 {
		return existing, nil
	}

	placeholders := strings.Repeat("?,", len(ids))
	placeholders = placeholders[:len(placeholders)-1]

	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := r.db.Query(`SELECT id FROM schedules WHERE id IN (`+placeholders+`)`, args...)
	if err != nil {
		return nil, stepErr("failed to check existing ids: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, stepErr("failed to scan id: %w", err)
		}
		existing[id] = true
	}

	return existing, rows.Err()
}

func (r *scheduleRepo) Upcoming(now time.Time, within time.Duration) ([]*entity.Schedule, error) {
	// The lower bound reaches back over the implied ongoing window so that a
	// schedule whose start just passed still surfaces until its start event is
	// marked notified.
	query := `SELECT ` + scheduleColumns + `
		FROM schedules
		WHERE notification_sent = 0
			AND is_done = 0
			AND start_at > ?
			AND start_at <= ?
		ORDER BY start_at DESC`

	lower := now.Add(-entity.OngoingWindow).UTC()
	upper := now.Add(within).UTC()

	rows, err := r.db.Query(query, lower, upper)
	if err != nil {
		return nil, stepErr("failed to query upcoming schedules: %w", err)
	}
	defer rows.Close()

	return scanSchedules(rows)
}

func (r *scheduleRepo) MarkNotified(id string) error {
	_, err := r.db.Exec(`UPDATE schedules SET notification_sent = 1 WHERE id = ?`, id)
	if err != nil {
		return stepErr("failed to mark schedule notified: %w", err)
	}
	return nil
}

func (r *scheduleRepo) SetDone(id string, done bool) error {
	_, err := r.db.Exec(`UPDATE schedules SET is_done = ? WHERE id = ?`, done, id)
	if err != nil {
		return stepErr("failed to set schedule done flag: %w", err)
	}
	return nil
}

func (r *scheduleRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM schedules WHERE id = ?`, id)
	if err != nil {
		return stepErr("failed to delete schedule: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSchedule(row rowScanner) (*entity.Schedule, error) {
	schedule := &entity.Schedule{}
	var (
		endAt     sql.NullTime
		linksJSON string
	)

	err := row.Scan(
		&schedule.ID,
		&schedule.Title,
		&schedule.Note,
		&schedule.Location,
		&schedule.StartAt,
		&endAt,
		&schedule.Type,
		&schedule.Source,
		&schedule.WorkspaceID,
		&schedule.ChannelID,
		&schedule.ChannelName,
		&schedule.SourceMessageTS,
		&schedule.SourceDeepLink,
		&schedule.SourceRawText,
		&schedule.TagID,
		&linksJSON,
		&schedule.NotificationSent,
		&schedule.IsDone,
		&schedule.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if endAt.Valid {
		t := endAt.Time
		schedule.EndAt = &t
	}

	if err := json.Unmarshal([]byte(linksJSON), &schedule.Links); err != nil {
		return nil, stepErr("failed to unmarshal links: %w", err)
	}

	return schedule, nil
}

func scanSchedules(rows *sql.Rows) ([]*entity.Schedule, error) {
	var schedules []*entity.Schedule
	for rows.Next() {
		schedule, err := scanSchedule(rows)
		if err != nil {
			return nil, stepErr("failed to scan schedule: %w", err)
		}
		schedules = append(schedules, schedule)
	}
	return schedules, rows.Err()
}
