package database

import (
	"database/sql"
	"time"

	"github.com/slack-schedule-collector/internal/domain/contract"
	"github.com/slack-schedule-collector/internal/domain/entity"
)

type tagRepo struct {
	db dbConn
}

func newTagRepo(db dbConn) contract.TagRepo {
	return &tagRepo{db: db}
}

func (r *tagRepo) Create(tag *entity.Tag) error {
	if tag.CreatedAt.IsZero() {
		tag.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.Exec(
		`INSERT INTO tags (id, name, color, created_at) VALUES (?, ?, ?, ?)`,
		tag.ID,
		tag.Name,
		tag.Color,
		tag.CreatedAt.UTC(),
	)
	if err != nil {
		return stepErr("failed to create tag: %w", err)
	}

	return nil
}

func (r *tagRepo) GetByID(id string) (*entity.Tag, error) {
	tag := &entity.Tag{}
	err := r.db.QueryRow(
		`SELECT id, name, color, created_at FROM tags WHERE id = ?`, id,
	).Scan(&tag.ID, &tag.Name, &tag.Color, &tag.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, stepErr("failed to get tag: %w", err)
	}

	return tag, nil
}

func (r *tagRepo) GetAll() ([]*entity.Tag, error) {
	rows, err := r.db.Query(`SELECT id, name, color, created_at FROM tags ORDER BY name ASC`)
	if err != nil {
		return nil, stepErr("failed to list tags: %w", err)
	}
	defer rows.Close()

	var tags []*entity.Tag
	for rows.Next() {
		tag := &entity.Tag{}
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.Color, &tag.CreatedAt); err != nil {
			return nil, stepErr("failed to scan tag: %w", err)
		}
		tags = append(tags, tag)
	}

	return tags, rows.Err()
}

func (r *tagRepo) Update(tag *entity.Tag) error {
	_, err := r.db.Exec(
		`UPDATE tags SET name = ?, color = ? WHERE id = ?`,
		tag.Name,
		tag.Color,
		tag.ID,
	)
	if err != nil {
		return stepErr("failed to update tag: %w", err)
	}

	return nil
}

func (r *tagRepo) Delete(id string) error {
	// No cascade: schedules keep their tag_id and resolve it to "no tag".
	_, err := r.db.Exec(`DELETE FROM tags WHERE id = ?`, id)
	if err != nil {
		return stepErr("failed to delete tag: %w", err)
	}

	return nil
}
