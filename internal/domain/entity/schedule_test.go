package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEndOrImplied(t *testing.T) {
	startAt := time.Date(2025, 11, 20, 14, 0, 0, 0, time.UTC)

	s := &Schedule{StartAt: startAt}
	assert.Equal(t, startAt.Add(OngoingWindow), s.EndOrImplied())

	endAt := startAt.Add(30 * time.Minute)
	s.EndAt = &endAt
	assert.Equal(t, endAt, s.EndOrImplied())
}

func TestWorkspaceScheduleID(t *testing.T) {
	assert.Equal(t, "slack-1700000000.000100", WorkspaceScheduleID("1700000000.000100"))
	// Deterministic: re-ingesting the same message yields the same id.
	assert.Equal(t, WorkspaceScheduleID("1.2"), WorkspaceScheduleID("1.2"))
}
