package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/slack-schedule-collector/internal/domain"
	"github.com/slack-schedule-collector/internal/domain/contract"
	"github.com/slack-schedule-collector/internal/domain/entity"
	"github.com/slack-schedule-collector/internal/extractor"
	"github.com/slack-schedule-collector/internal/slackadapter"
	"github.com/slack-schedule-collector/pkg/logger"
)

const mentionTitleLimit = 80

type syncService struct {
	dm     contract.DataManager
	source contract.MessageSource
	log    *logger.Logger
	now    func() time.Time

	// running guards against overlapping passes: a Sync call while one is in
	// flight is a no-op, not queued.
	running atomic.Bool
}

func newSync(dm contract.DataManager, source contract.MessageSource, log *logger.Logger) *syncService {
	return &syncService{
		dm:     dm,
		source: source,
		log:    log.WithComponent("sync"),
		now:    time.Now,
	}
}

type workspaceResult struct {
	ws         *entity.WorkspaceConfig
	candidates []*entity.Schedule
	fetched    int
	mentions   int
	err        error
}

// Sync runs one ingestion pass: fetch every enabled workspace, extract
// schedules, and upsert whatever is new. A failing workspace is logged and
// skipped; it never aborts the others. Returns nil, nil when another pass is
// already running.
func (s *syncService) Sync(ctx context.Context) (*entity.SyncResult, error) {
	if !s.running.CompareAndSwap(false, true) {
		s.log.Debug().Msg("sync already in progress, skipping")
		return nil, nil
	}
	defer s.running.Store(false)

	now := s.now()
	result := &entity.SyncResult{StartedAt: now}

	configs, err := s.dm.Workspace().GetEnabled()
	if err != nil {
		return nil, fmt.Errorf("failed to load workspace configurations: %w", err)
	}

	oldest := now.Add(-domain.SyncLookback)

	// Per-workspace fetches are independent reads; run them concurrently and
	// join before touching the store.
	results := make([]workspaceResult, len(configs))
	var wg sync.WaitGroup
	for i, ws := range configs {
		wg.Add(1)
		go func(i int, ws *entity.WorkspaceConfig) {
			defer wg.Done()
			results[i] = s.processWorkspace(ctx, ws, oldest, now)
		}(i, ws)
	}
	wg.Wait()

	var candidates []*entity.Schedule
	for _, r := range results {
		if r.err != nil {
			s.log.Error().Err(r.err).
				Str("workspace_id", r.ws.ID).
				Str("workspace_name", r.ws.Name).
				Msg("workspace fetch failed, skipping")
			result.FailedWorkspaces = append(result.FailedWorkspaces, r.ws.ID)
			continue
		}
		result.Fetched += r.fetched
		result.Mentions += r.mentions
		candidates = append(candidates, r.candidates...)
	}
	result.Extracted = len(candidates)

	upserted, skipped, err := s.dedupAndUpsert(candidates)
	if err != nil {
		return nil, err
	}
	result.Upserted = upserted
	result.Skipped = skipped

	s.log.Info().
		Int("fetched", result.Fetched).
		Int("extracted", result.Extracted).
		Int("upserted", result.Upserted).
		Int("skipped", result.Skipped).
		Int("failed_workspaces", len(result.FailedWorkspaces)).
		Msg("sync completed")

	return result, nil
}

// processWorkspace fetches one workspace and turns its messages into schedule
// candidates: mentions first (bypassing keyword filtering), then pattern
// extraction for the rest.
func (s *syncService) processWorkspace(ctx context.Context, ws *entity.WorkspaceConfig, oldest, now time.Time) workspaceResult {
	r := workspaceResult{ws: ws}

	messages, err := s.source.FetchMessages(ctx, ws, oldest)
	if err != nil {
		r.err = err
		return r
	}
	r.fetched = len(messages)

	for _, msg := range messages {
		if isMention(msg.Text, ws.UserID) {
			r.candidates = append(r.candidates, s.buildMention(ws, msg, now))
			r.mentions++
			continue
		}

		if !matchesKeywords(msg.Text, ws.Keywords) {
			continue
		}

		fields := extractor.Extract(msg.Text, now)
		if fields == nil {
			continue
		}

		r.candidates = append(r.candidates, s.buildMeeting(ws, msg, fields, now))
	}

	return r
}

// dedupAndUpsert drops candidates whose id already exists or whose source
// message was tombstoned by a user delete, then upserts the remainder. A
// failed upsert is fatal to the pass.
func (s *syncService) dedupAndUpsert(candidates []*entity.Schedule) (upserted, skipped int, err error) {
	if len(candidates) == 0 {
		return 0, 0, nil
	}

	ids := make([]string, 0, len(candidates))
	for _, c := range candidates {
		ids = append(ids, c.ID)
	}

	existing, err := s.dm.Schedule().ExistingIDs(ids)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to check existing schedules: %w", err)
	}

	tombstones, err := s.dm.Tombstone().GetAll()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to load tombstones: %w", err)
	}
	deleted := make(map[string]bool, len(tombstones))
	for _, t := range tombstones {
		deleted[t.SourceMessageTS] = true
	}

	for _, c := range candidates {
		if existing[c.ID] || deleted[c.SourceMessageTS] {
			skipped++
			continue
		}
		if err := s.dm.Schedule().Upsert(c); err != nil {
			return upserted, skipped, fmt.Errorf("failed to upsert schedule %s: %w", c.ID, err)
		}
		upserted++
	}

	return upserted, skipped, nil
}

// buildMeeting synthesizes a meeting-type schedule from extracted fields. The
// deep link back to the source message always leads the links list.
func (s *syncService) buildMeeting(ws *entity.WorkspaceConfig, msg entity.RawMessage, fields *extractor.Fields, now time.Time) *entity.Schedule {
	deepLink := slackadapter.DeepLink(ws.TeamID, ws.ChannelID, msg.TS)

	return &entity.Schedule{
		ID:              entity.WorkspaceScheduleID(msg.TS),
		Title:           fields.Title,
		Location:        fields.Location,
		StartAt:         fields.StartAt,
		EndAt:           fields.EndAt,
		Type:            entity.TypeMeeting,
		Source:          entity.SourceWorkspace,
		WorkspaceID:     ws.ID,
		ChannelID:       ws.ChannelID,
		ChannelName:     ws.ChannelName,
		SourceMessageTS: msg.TS,
		SourceDeepLink:  deepLink,
		SourceRawText:   msg.Text,
		TagID:           domain.MeetingTagID,
		Links:           append([]string{deepLink}, fields.Links...),
		CreatedAt:       now.UTC(),
	}
}

// buildMention synthesizes a mention-type schedule. Mentions are not
// scheduled; they are logged as having just happened.
func (s *syncService) buildMention(ws *entity.WorkspaceConfig, msg entity.RawMessage, now time.Time) *entity.Schedule {
	deepLink := slackadapter.DeepLink(ws.TeamID, ws.ChannelID, msg.TS)

	return &entity.Schedule{
		ID:              entity.WorkspaceScheduleID(msg.TS),
		Title:           mentionTitle(msg.Text),
		StartAt:         now,
		Type:            entity.TypeMention,
		Source:          entity.SourceWorkspace,
		WorkspaceID:     ws.ID,
		ChannelID:       ws.ChannelID,
		ChannelName:     ws.ChannelName,
		SourceMessageTS: msg.TS,
		SourceDeepLink:  deepLink,
		SourceRawText:   msg.Text,
		TagID:           domain.MentionedTagID,
		Links:           []string{deepLink},
		CreatedAt:       now.UTC(),
	}
}

func isMention(text, userID string) bool {
	return userID != "" && strings.Contains(text, "<@"+userID+">")
}

// matchesKeywords passes everything when no keywords are configured,
// otherwise requires a case-insensitive substring match on any keyword.
func matchesKeywords(text string, keywords []string) bool {
	if len(keywords) == 0 {
		return true
	}

	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}

	return false
}

// mentionTitle derives a display title from the first line of the message.
func mentionTitle(text string) string {
	line := strings.TrimSpace(text)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = strings.TrimSpace(line[:i])
	}
	if line == "" {
		return "Mention"
	}

	if utf8.RuneCountInString(line) > mentionTitleLimit {
		runes := []rune(line)
		line = string(runes[:mentionTitleLimit]) + "…"
	}

	return line
}
