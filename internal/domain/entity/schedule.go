package entity

import (
	"time"
)

// ScheduleType classifies how a schedule came to exist semantically
type ScheduleType string

const (
	// TypeMeeting is a schedule extracted from a message with a date/time pattern
	TypeMeeting ScheduleType = "meeting"
	// TypeMention is a message that named the configured user, logged at ingestion time
	TypeMention ScheduleType = "mention"
	// TypeTask is a user-created todo-style schedule
	TypeTask ScheduleType = "task"
)

// ScheduleSource identifies where a schedule was created
type ScheduleSource string

const (
	SourceManual    ScheduleSource = "manual"
	SourceWorkspace ScheduleSource = "workspace"
)

// OngoingWindow is the implied duration of a schedule without an explicit end time.
const OngoingWindow = 2 * time.Hour

// Schedule is the central entity: a titled, timed event derived from a
// workspace message or created manually.
type Schedule struct {
	ID       string         `json:"id" db:"id"`
	Title    string         `json:"title" db:"title"`
	Note     string         `json:"note" db:"note"`
	Location string         `json:"location" db:"location"`
	StartAt  time.Time      `json:"start_at" db:"start_at"`
	EndAt    *time.Time     `json:"end_at,omitempty" db:"end_at"`
	Type     ScheduleType   `json:"type" db:"type"`
	Source   ScheduleSource `json:"source" db:"source"`

	// Workspace provenance, set only when Source == SourceWorkspace
	WorkspaceID     string `json:"workspace_id,omitempty" db:"workspace_id"`
	ChannelID       string `json:"channel_id,omitempty" db:"channel_id"`
	ChannelName     string `json:"channel_name,omitempty" db:"channel_name"`
	SourceMessageTS string `json:"source_message_ts,omitempty" db:"source_message_ts"`
	SourceDeepLink  string `json:"source_deep_link,omitempty" db:"source_deep_link"`
	SourceRawText   string `json:"source_raw_text,omitempty" db:"source_raw_text"`

	// TagID is a weak reference: the tag may be deleted independently and the
	// reference must then resolve to "no tag", never to an error.
	TagID string `json:"tag_id,omitempty" db:"tag_id"`

	Links []string `json:"links" db:"links"`

	NotificationSent bool      `json:"notification_sent" db:"notification_sent"`
	IsDone           bool      `json:"is_done" db:"is_done"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}

// EndOrImplied returns the explicit end time, or start plus the implied
// ongoing window when no end time was set.
func (s *Schedule) EndOrImplied() time.Time {
	if s.EndAt != nil {
		return *s.EndAt
	}
	return s.StartAt.Add(OngoingWindow)
}

// WorkspaceScheduleID derives the stable id for a workspace-sourced schedule
// from its source message timestamp. Re-ingesting the same message always
// yields the same id, which is what makes upserts idempotent.
func WorkspaceScheduleID(messageTS string) string {
	return "slack-" + messageTS
}

// Tag is a user-managed label. Deleting a tag does not cascade to schedules.
type Tag struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Color     string    `json:"color" db:"color"` // hex, e.g. #4A90D9
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// WorkspaceConfig describes one Slack workspace/channel to ingest from.
type WorkspaceConfig struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	ChannelID   string    `json:"channel_id" db:"channel_id"`
	ChannelName string    `json:"channel_name" db:"channel_name"`
	Token       string    `json:"-" db:"token"`
	UserID      string    `json:"user_id,omitempty" db:"user_id"` // for mention detection
	TeamID      string    `json:"team_id,omitempty" db:"team_id"` // for deep-link construction
	Keywords    []string  `json:"keywords" db:"keywords"`         // empty means no filtering
	Enabled     bool      `json:"enabled" db:"enabled"`
	Color       string    `json:"color" db:"color"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// DeletedMessage is a tombstone: it marks a source message as user-deleted so
// re-ingestion can never resurrect the schedule it produced.
type DeletedMessage struct {
	SourceMessageTS string    `json:"source_message_ts" db:"source_message_ts"`
	DeletedAt       time.Time `json:"deleted_at" db:"deleted_at"`
}

// RawMessage is a well-formed, user-authored message as returned by the
// workspace source adapter.
type RawMessage struct {
	User string
	Text string
	TS   string
}

// SyncResult summarizes one ingestion pass.
type SyncResult struct {
	StartedAt        time.Time
	Fetched          int
	Mentions         int
	Extracted        int
	Skipped          int
	Upserted         int
	FailedWorkspaces []string
}

// Notification is a delivery request handed to the external notification
// capability.
type Notification struct {
	ScheduleID string
	Title      string
	Body       string
}
