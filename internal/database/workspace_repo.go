package database

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/slack-schedule-collector/internal/domain/contract"
	"github.com/slack-schedule-collector/internal/domain/entity"
)

const workspaceColumns = `id, name, channel_id, channel_name, token, user_id, team_id,
		keywords, enabled, color, created_at`

type workspaceRepo struct {
	db dbConn
}

func newWorkspaceRepo(db dbConn) contract.WorkspaceRepo {
	return &workspaceRepo{db: db}
}

func (r *workspaceRepo) Create(ws *entity.WorkspaceConfig) error {
	keywordsJSON, err := json.Marshal(ws.Keywords)
	if err != nil {
		return stepErr("failed to marshal keywords: %w", err)
	}

	if ws.CreatedAt.IsZero() {
		ws.CreatedAt = time.Now().UTC()
	}

	_, err = r.db.Exec(`
		INSERT INTO workspace_configurations
			(id, name, channel_id, channel_name, token, user_id, team_id, keywords, enabled, color, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ws.ID,
		ws.Name,
		ws.ChannelID,
		ws.ChannelName,
		ws.Token,
		ws.UserID,
		ws.TeamID,
		string(keywordsJSON),
		ws.Enabled,
		ws.Color,
		ws.CreatedAt.UTC(),
	)
	if err != nil {
		return stepErr("failed to create workspace configuration: %w", err)
	}

	return nil
}

func (r *workspaceRepo) GetByID(id string) (*entity.WorkspaceConfig, error) {
	ws, err := scanWorkspace(r.db.QueryRow(
		`SELECT `+workspaceColumns+` FROM workspace_configurations WHERE id = ?`, id,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, stepErr("failed to get workspace configuration: %w", err)
	}

	return ws, nil
}

func (r *workspaceRepo) GetAll() ([]*entity.WorkspaceConfig, error) {
	rows, err := r.db.Query(
		`SELECT ` + workspaceColumns + ` FROM workspace_configurations ORDER BY created_at ASC`,
	)
	if err != nil {
		return nil, stepErr("failed to list workspace configurations: %w", err)
	}
	defer rows.Close()

	return scanWorkspaces(rows)
}

func (r *workspaceRepo) GetEnabled() ([]*entity.WorkspaceConfig, error) {
	rows, err := r.db.Query(
		`SELECT ` + workspaceColumns + ` FROM workspace_configurations WHERE enabled = 1 ORDER BY created_at ASC`,
	)
	if err != nil {
		return nil, stepErr("failed to list enabled workspace configurations: %w", err)
	}
	defer rows.Close()

	return scanWorkspaces(rows)
}

func (r *workspaceRepo) Update(ws *entity.WorkspaceConfig) error {
	keywordsJSON, err := json.Marshal(ws.Keywords)
	if err != nil {
		return stepErr("failed to marshal keywords: %w", err)
	}

	_, err = r.db.Exec(`
		UPDATE workspace_configurations SET
			name = ?,
			channel_id = ?,
			channel_name = ?,
			token = ?,
			user_id = ?,
			team_id = ?,
			keywords = ?,
			enabled = ?,
			color = ?
		WHERE id = ?`,
		ws.Name,
		ws.ChannelID,
		ws.ChannelName,
		ws.Token,
		ws.UserID,
		ws.TeamID,
		string(keywordsJSON),
		ws.Enabled,
		ws.Color,
		ws.ID,
	)
	if err != nil {
		return stepErr("failed to update workspace configuration: %w", err)
	}

	return nil
}

func (r *workspaceRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM workspace_configurations WHERE id = ?`, id)
	if err != nil {
		return stepErr("failed to delete workspace configuration: %w", err)
	}

	return nil
}

func scanWorkspace(row rowScanner) (*entity.WorkspaceConfig, error) {
	ws := &entity.WorkspaceConfig{}
	var keywordsJSON string

	err := row.Scan(
		&ws.ID,
		&ws.Name,
		&ws.ChannelID,
		&ws.ChannelName,
		&ws.Token,
		&ws.UserID,
		&ws.TeamID,
		&keywordsJSON,
		&ws.Enabled,
		&ws.Color,
		&ws.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(keywordsJSON), &ws.Keywords); err != nil {
		return nil, stepErr("failed to unmarshal keywords: %w", err)
	}

	return ws, nil
}

func scanWorkspaces(rows *sql.Rows) ([]*entity.WorkspaceConfig, error) {
	var configs []*entity.WorkspaceConfig
	for rows.Next() {
		ws, err := scanWorkspace(rows)
		if err != nil {
			return nil, stepErr("failed to scan workspace configuration: %w", err)
		}
		configs = append(configs, ws)
	}
	return configs, rows.Err()
}
