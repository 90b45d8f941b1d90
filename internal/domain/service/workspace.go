package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/slack-schedule-collector/internal/domain/contract"
	"github.com/slack-schedule-collector/internal/domain/entity"
	"github.com/slack-schedule-collector/pkg/logger"
)

type workspaceService struct {
	dm     contract.DataManager
	source contract.MessageSource
	log    *logger.Logger
}

func newWorkspace(dm contract.DataManager, source contract.MessageSource, log *logger.Logger) *workspaceService {
	return &workspaceService{
		dm:     dm,
		source: source,
		log:    log.WithComponent("workspace"),
	}
}

// Create validates the token against the workspace API before storing the
// configuration.
func (s *workspaceService) Create(ctx context.Context, ws *entity.WorkspaceConfig) error {
	if ws.ID == "" {
		ws.ID = uuid.NewString()
	}
	ws.CreatedAt = time.Now().UTC()

	if err := s.source.CheckAuth(ctx, ws.Token); err != nil {
		return fmt.Errorf("workspace token rejected: %w", err)
	}

	if err := s.dm.Workspace().Create(ws); err != nil {
		return fmt.Errorf("failed to create workspace configuration: %w", err)
	}

	return nil
}

func (s *workspaceService) Update(ctx context.Context, ws *entity.WorkspaceConfig) error {
	existing, err := s.dm.Workspace().GetByID(ws.ID)
	if err != nil {
		return fmt.Errorf("failed to load workspace configuration: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("workspace configuration %s not found", ws.ID)
	}

	if ws.Token != existing.Token {
		if err := s.source.CheckAuth(ctx, ws.Token); err != nil {
			return fmt.Errorf("workspace token rejected: %w", err)
		}
	}

	if err := s.dm.Workspace().Update(ws); err != nil {
		return fmt.Errorf("failed to update workspace configuration: %w", err)
	}

	return nil
}

func (s *workspaceService) SetEnabled(ctx context.Context, id string, enabled bool) error {
	ws, err := s.dm.Workspace().GetByID(id)
	if err != nil {
		return fmt.Errorf("failed to load workspace configuration: %w", err)
	}
	if ws == nil {
		return fmt.Errorf("workspace configuration %s not found", id)
	}

	ws.Enabled = enabled
	if err := s.dm.Workspace().Update(ws); err != nil {
		return fmt.Errorf("failed to update workspace configuration: %w", err)
	}

	return nil
}

func (s *workspaceService) List() ([]*entity.WorkspaceConfig, error) {
	return s.dm.Workspace().GetAll()
}

func (s *workspaceService) Delete(ctx context.Context, id string) error {
	if err := s.dm.Workspace().Delete(id); err != nil {
		return fmt.Errorf("failed to delete workspace configuration: %w", err)
	}
	return nil
}

// CheckConnection validates a stored configuration's token.
func (s *workspaceService) CheckConnection(ctx context.Context, id string) error {
	ws, err := s.dm.Workspace().GetByID(id)
	if err != nil {
		return fmt.Errorf("failed to load workspace configuration: %w", err)
	}
	if ws == nil {
		return fmt.Errorf("workspace configuration %s not found", id)
	}

	return s.source.CheckAuth(ctx, ws.Token)
}
