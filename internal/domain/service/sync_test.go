package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/slack-schedule-collector/internal/domain"
	"github.com/slack-schedule-collector/internal/domain/contract"
	"github.com/slack-schedule-collector/internal/domain/entity"
)

var syncNow = time.Date(2025, 11, 20, 12, 0, 0, 0, time.UTC)

func newSyncForTest(m allMocks) *syncService {
	s := newSync(m.mockDataManager, m.mockSource, testLogger())
	s.now = func() time.Time { return syncNow }
	return s
}

func syncWorkspace(id string) *entity.WorkspaceConfig {
	return &entity.WorkspaceConfig{
		ID:        id,
		Name:      "ws " + id,
		ChannelID: "C" + id,
		TeamID:    "T1",
		UserID:    "U42",
		Enabled:   true,
	}
}

func TestSync_ExtractsAndUpserts(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()
	s := newSyncForTest(m)

	ws := syncWorkspace("ws1")
	messages := []entity.RawMessage{
		{User: "U1", Text: "[Sprint Planning]\n시간: 11월 20일 오후 2시\n장소: Room A", TS: "1700000000.000100"},
		{User: "U2", Text: "just chatting", TS: "1700000000.000200"},
	}

	m.mockWorkspaceRepo.EXPECT().GetEnabled().Return([]*entity.WorkspaceConfig{ws}, nil)
	m.mockSource.EXPECT().FetchMessages(gomock.Any(), ws, syncNow.Add(-domain.SyncLookback)).Return(messages, nil)
	m.mockScheduleRepo.EXPECT().ExistingIDs([]string{"slack-1700000000.000100"}).Return(map[string]bool{}, nil)
	m.mockTombstoneRepo.EXPECT().GetAll().Return(nil, nil)

	var upserted *entity.Schedule
	m.mockScheduleRepo.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(s *entity.Schedule) error {
		upserted = s
		return nil
	})

	result, err := s.Sync(context.Background())
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, 2, result.Fetched)
	assert.Equal(t, 1, result.Extracted)
	assert.Equal(t, 1, result.Upserted)
	assert.Equal(t, 0, result.Skipped)
	assert.Empty(t, result.FailedWorkspaces)

	require.NotNil(t, upserted)
	assert.Equal(t, "slack-1700000000.000100", upserted.ID)
	assert.Equal(t, "Sprint Planning", upserted.Title)
	assert.Equal(t, "Room A", upserted.Location)
	assert.Equal(t, entity.TypeMeeting, upserted.Type)
	assert.Equal(t, entity.SourceWorkspace, upserted.Source)
	assert.Equal(t, domain.MeetingTagID, upserted.TagID)
	assert.Equal(t, time.Date(2025, 11, 20, 14, 0, 0, 0, time.UTC), upserted.StartAt)
	require.NotEmpty(t, upserted.Links)
	assert.Equal(t, upserted.SourceDeepLink, upserted.Links[0], "deep link leads the links list")
}

func TestSync_PartialWorkspaceFailure(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()
	s := newSyncForTest(m)

	good := syncWorkspace("good")
	bad := syncWorkspace("bad")

	m.mockWorkspaceRepo.EXPECT().GetEnabled().Return([]*entity.WorkspaceConfig{good, bad}, nil)
	m.mockSource.EXPECT().FetchMessages(gomock.Any(), good, gomock.Any()).Return([]entity.RawMessage{
		{User: "U1", Text: "[Standup]\n시간: 14:00", TS: "1.000100"},
	}, nil)
	m.mockSource.EXPECT().FetchMessages(gomock.Any(), bad, gomock.Any()).
		Return(nil, &contract.TransportError{Err: context.DeadlineExceeded})

	m.mockScheduleRepo.EXPECT().ExistingIDs(gomock.Any()).Return(map[string]bool{}, nil)
	m.mockTombstoneRepo.EXPECT().GetAll().Return(nil, nil)
	m.mockScheduleRepo.EXPECT().Upsert(gomock.Any()).Return(nil)

	result, err := s.Sync(context.Background())
	require.NoError(t, err, "a failing workspace must not abort the pass")
	require.NotNil(t, result)

	assert.Equal(t, []string{"bad"}, result.FailedWorkspaces)
	assert.Equal(t, 1, result.Upserted)
}

func TestSync_SkipsExistingAndTombstoned(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()
	s := newSyncForTest(m)

	ws := syncWorkspace("ws1")
	messages := []entity.RawMessage{
		{User: "U1", Text: "[A]\n시간: 14:00", TS: "1.000100"}, // already stored
		{User: "U1", Text: "[B]\n시간: 15:00", TS: "1.000200"}, // user-deleted
		{User: "U1", Text: "[C]\n시간: 16:00", TS: "1.000300"}, // new
	}

	m.mockWorkspaceRepo.EXPECT().GetEnabled().Return([]*entity.WorkspaceConfig{ws}, nil)
	m.mockSource.EXPECT().FetchMessages(gomock.Any(), ws, gomock.Any()).Return(messages, nil)
	m.mockScheduleRepo.EXPECT().ExistingIDs(gomock.Any()).
		Return(map[string]bool{"slack-1.000100": true}, nil)
	m.mockTombstoneRepo.EXPECT().GetAll().
		Return([]*entity.DeletedMessage{{SourceMessageTS: "1.000200"}}, nil)

	m.mockScheduleRepo.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(s *entity.Schedule) error {
		assert.Equal(t, "slack-1.000300", s.ID)
		return nil
	})

	result, err := s.Sync(context.Background())
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, 3, result.Extracted)
	assert.Equal(t, 1, result.Upserted)
	assert.Equal(t, 2, result.Skipped)
}

func TestSync_MentionBypassesKeywordFilter(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()
	s := newSyncForTest(m)

	ws := syncWorkspace("ws1")
	ws.Keywords = []string{"회의"}

	messages := []entity.RawMessage{
		{User: "U1", Text: "<@U42> can you take a look?", TS: "1.000100"},
		{User: "U1", Text: "[Offsite]\n시간: 14:00", TS: "1.000200"}, // no keyword match
		{User: "U1", Text: "[주간회의]\n시간: 15:00", TS: "1.000300"},    // keyword match
	}

	m.mockWorkspaceRepo.EXPECT().GetEnabled().Return([]*entity.WorkspaceConfig{ws}, nil)
	m.mockSource.EXPECT().FetchMessages(gomock.Any(), ws, gomock.Any()).Return(messages, nil)
	m.mockScheduleRepo.EXPECT().ExistingIDs(gomock.Any()).Return(map[string]bool{}, nil)
	m.mockTombstoneRepo.EXPECT().GetAll().Return(nil, nil)

	var got []*entity.Schedule
	m.mockScheduleRepo.EXPECT().Upsert(gomock.Any()).Times(2).DoAndReturn(func(s *entity.Schedule) error {
		got = append(got, s)
		return nil
	})

	result, err := s.Sync(context.Background())
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, 1, result.Mentions)
	require.Len(t, got, 2)

	mention := got[0]
	assert.Equal(t, entity.TypeMention, mention.Type)
	assert.Equal(t, domain.MentionedTagID, mention.TagID)
	assert.True(t, mention.StartAt.Equal(syncNow), "mentions are logged at ingestion time")

	meeting := got[1]
	assert.Equal(t, "주간회의", meeting.Title)
	assert.Equal(t, entity.TypeMeeting, meeting.Type)
}

func TestSync_SingleFlight(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()
	s := newSyncForTest(m)

	s.running.Store(true)

	result, err := s.Sync(context.Background())
	require.NoError(t, err)
	assert.Nil(t, result, "overlapping pass is a no-op")
}

func TestSync_NoCandidates(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()
	s := newSyncForTest(m)

	ws := syncWorkspace("ws1")
	m.mockWorkspaceRepo.EXPECT().GetEnabled().Return([]*entity.WorkspaceConfig{ws}, nil)
	m.mockSource.EXPECT().FetchMessages(gomock.Any(), ws, gomock.Any()).Return([]entity.RawMessage{
		{User: "U1", Text: "nothing to see here", TS: "1.000100"},
	}, nil)

	result, err := s.Sync(context.Background())
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, 1, result.Fetched)
	assert.Equal(t, 0, result.Extracted)
	assert.Equal(t, 0, result.Upserted)
}

func TestMatchesKeywords(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		keywords []string
		want     bool
	}{
		{"no keywords passes everything", "anything", nil, true},
		{"case-insensitive match", "Team MEETING tomorrow", []string{"meeting"}, true},
		{"korean keyword", "내일 회의 있습니다", []string{"회의"}, true},
		{"no match", "lunch plans", []string{"회의", "meeting"}, false},
		{"empty keyword ignored", "lunch plans", []string{""}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matchesKeywords(tt.text, tt.keywords))
		})
	}
}

func TestMentionTitle(t *testing.T) {
	assert.Equal(t, "first line", mentionTitle("first line\nsecond line"))
	assert.Equal(t, "Mention", mentionTitle("   \n"))

	long := ""
	for i := 0; i < 100; i++ {
		long += "가"
	}
	got := mentionTitle(long)
	assert.Equal(t, mentionTitleLimit+1, len([]rune(got)), "80 runes plus ellipsis")
}
