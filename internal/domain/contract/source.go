package contract

import (
	"context"
	"time"

	"github.com/slack-schedule-collector/internal/domain/entity"
)

// MessageSource fetches raw messages from one configured workspace.
// Implementations return only well-formed, user-authored messages at or after
// oldest, and surface failures through the typed errors in this package so the
// pipeline can tell an auth rejection from a network problem.
type MessageSource interface {
	FetchMessages(ctx context.Context, ws *entity.WorkspaceConfig, oldest time.Time) ([]entity.RawMessage, error)
	// CheckAuth validates a workspace token without fetching anything.
	CheckAuth(ctx context.Context, token string) error
}
