package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/slack-schedule-collector/internal/domain/contract"
	"github.com/slack-schedule-collector/internal/domain/entity"
	"github.com/slack-schedule-collector/pkg/logger"
)

type tagService struct {
	dm  contract.DataManager
	log *logger.Logger
}

func newTag(dm contract.DataManager, log *logger.Logger) *tagService {
	return &tagService{
		dm:  dm,
		log: log.WithComponent("tag"),
	}
}

func (s *tagService) Create(ctx context.Context, tag *entity.Tag) error {
	if tag.ID == "" {
		tag.ID = uuid.NewString()
	}
	if tag.Name == "" {
		return fmt.Errorf("tag name is required")
	}

	if err := s.dm.Tag().Create(tag); err != nil {
		return fmt.Errorf("failed to create tag: %w", err)
	}

	return nil
}

func (s *tagService) Update(ctx context.Context, tag *entity.Tag) error {
	existing, err := s.dm.Tag().GetByID(tag.ID)
	if err != nil {
		return fmt.Errorf("failed to load tag: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("tag %s not found", tag.ID)
	}

	if err := s.dm.Tag().Update(tag); err != nil {
		return fmt.Errorf("failed to update tag: %w", err)
	}

	return nil
}

func (s *tagService) GetByID(id string) (*entity.Tag, error) {
	return s.dm.Tag().GetByID(id)
}

func (s *tagService) List() ([]*entity.Tag, error) {
	return s.dm.Tag().GetAll()
}

// Delete removes a tag. Schedules referencing it keep their reference, which
// resolves to absent from then on.
func (s *tagService) Delete(ctx context.Context, id string) error {
	if err := s.dm.Tag().Delete(id); err != nil {
		return fmt.Errorf("failed to delete tag: %w", err)
	}
	return nil
}
