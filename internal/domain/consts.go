package domain

import "time"

// Well-known tags seeded at first run and used as default assignments for
// workspace-sourced content.
const (
	MeetingTagID   = "tag-meeting"
	MeetingTagName = "meeting"
	MeetingColor   = "#4A90D9"

	MentionedTagID   = "tag-mentioned"
	MentionedTagName = "mentioned"
	MentionedColor   = "#E06C75"
)

// SyncLookback is the fixed window the ingestion pipeline fetches messages for.
const SyncLookback = 14 * 24 * time.Hour

// FetchLimit caps how many messages a single workspace fetch requests.
const FetchLimit = 200

// Notifier timing.
const (
	PollInterval  = time.Minute
	AdvanceWindow = 5 * time.Minute
)
