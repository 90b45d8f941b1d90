package extractor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fixed reference instant: 2025-11-01 10:00 UTC.
var testNow = time.Date(2025, 11, 1, 10, 0, 0, 0, time.UTC)

func TestExtract_MonthDayPattern(t *testing.T) {
	tests := []struct {
		name string
		text string
		now  time.Time
		want time.Time
	}{
		{
			name: "month day with weekday and PM hour",
			text: "[Title]\n시간: 11월 20일(목) 오후 2시",
			now:  testNow,
			want: time.Date(2025, 11, 20, 14, 0, 0, 0, time.UTC),
		},
		{
			name: "month day with AM hour",
			text: "[Title]\n시간: 11월 20일 오전 9시",
			now:  testNow,
			want: time.Date(2025, 11, 20, 9, 0, 0, 0, time.UTC),
		},
		{
			name: "month day without meridiem is 24h literal",
			text: "[Title]\n시간: 11월 20일 18시",
			now:  testNow,
			want: time.Date(2025, 11, 20, 18, 0, 0, 0, time.UTC),
		},
		{
			name: "month day with minutes",
			text: "[Title]\n시간: 11월 20일 오후 2시 30분",
			now:  testNow,
			want: time.Date(2025, 11, 20, 14, 30, 0, 0, time.UTC),
		},
		{
			name: "slash separated month day",
			text: "[Title]\n시간: 11/20 (목) 오후 2시",
			now:  testNow,
			want: time.Date(2025, 11, 20, 14, 0, 0, 0, time.UTC),
		},
		{
			name: "일시 label works like 시간",
			text: "[Title]\n일시: 11월 20일 오후 2시",
			now:  testNow,
			want: time.Date(2025, 11, 20, 14, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := Extract(tt.text, tt.now)
			require.NotNil(t, fields)
			assert.Equal(t, "Title", fields.Title)
			assert.Equal(t, tt.want, fields.StartAt)
		})
	}
}

func TestExtract_YearRollover(t *testing.T) {
	// Posted late December about a January date: the current-year candidate is
	// more than 3 months in the past, so the year rolls forward.
	now := time.Date(2025, 12, 20, 10, 0, 0, 0, time.UTC)

	fields := Extract("[Kickoff]\n시간: 1월 10일 오전 9시", now)
	require.NotNil(t, fields)
	assert.Equal(t, time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC), fields.StartAt)

	// A date only a few weeks in the past stays in the current year.
	now = time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)

	fields = Extract("[Retro]\n시간: 1월 10일 오전 9시", now)
	require.NotNil(t, fields)
	assert.Equal(t, time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC), fields.StartAt)
}

func TestExtract_MeridiemEdgeCases(t *testing.T) {
	tests := []struct {
		name     string
		phrase   string
		wantHour int
	}{
		{"AM 12 is midnight", "오전 12시", 0},
		{"PM 12 stays noon", "오후 12시", 12},
		{"PM below 12 gains 12", "오후 2시", 14},
		{"AM hour is literal", "오전 11시", 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := Extract("[Title]\n시간: "+tt.phrase, testNow)
			require.NotNil(t, fields)
			assert.Equal(t, tt.wantHour, fields.StartAt.Hour())
			assert.Equal(t, 0, fields.StartAt.Minute(), "minutes default to 0")
			// Bare meridiem hours assume the current date.
			assert.Equal(t, testNow.Year(), fields.StartAt.Year())
			assert.Equal(t, testNow.Month(), fields.StartAt.Month())
			assert.Equal(t, testNow.Day(), fields.StartAt.Day())
		})
	}
}

func TestExtract_ClockTime(t *testing.T) {
	fields := Extract("[Standup]\n시간: 14:00", testNow)
	require.NotNil(t, fields)
	assert.Equal(t, time.Date(2025, 11, 1, 14, 0, 0, 0, time.UTC), fields.StartAt)
}

func TestExtract_FullMessage(t *testing.T) {
	text := "[Sprint Planning]\n시간: 14:00\n장소: Room A\n회의록: https://x.test/doc"

	fields := Extract(text, testNow)
	require.NotNil(t, fields)

	assert.Equal(t, "Sprint Planning", fields.Title)
	assert.Equal(t, time.Date(2025, 11, 1, 14, 0, 0, 0, time.UTC), fields.StartAt)
	assert.Equal(t, "Room A", fields.Location)
	assert.Contains(t, fields.Links, "https://x.test/doc")
	assert.Nil(t, fields.EndAt)
}

func TestExtract_TitleStripsEmphasis(t *testing.T) {
	fields := Extract("[*Design Review*]\n시간: 14:00", testNow)
	require.NotNil(t, fields)
	assert.Equal(t, "Design Review", fields.Title)

	fields = Extract("[_주간회의_]\n시간: 14:00", testNow)
	require.NotNil(t, fields)
	assert.Equal(t, "주간회의", fields.Title)
}

func TestExtract_Failures(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"no bracketed title", "회의 공지\n시간: 14:00"},
		{"no time label", "[Title]\n장소: Room A"},
		{"time label without resolvable phrase", "[Title]\n시간: 미정"},
		{"empty title after stripping", "[**]\n시간: 14:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, Extract(tt.text, testNow))
		})
	}
}

func TestExtract_RulePrecedence(t *testing.T) {
	// Month/day beats a clock time later in the same phrase.
	fields := Extract("[Title]\n시간: 11월 20일 오후 2시 (원래 15:00)", testNow)
	require.NotNil(t, fields)
	assert.Equal(t, time.Date(2025, 11, 20, 14, 0, 0, 0, time.UTC), fields.StartAt)

	// Clock time beats the bare meridiem rule.
	fields = Extract("[Title]\n시간: 13:30 오후", testNow)
	require.NotNil(t, fields)
	assert.Equal(t, time.Date(2025, 11, 1, 13, 30, 0, 0, time.UTC), fields.StartAt)
}

func TestExtract_TimePhraseStopsAtLineBreak(t *testing.T) {
	// The time phrase ends at the line break; a clock time on the next line
	// must not be picked up.
	fields := Extract("[Title]\n시간: 미정\n비고: 14:00쯤", testNow)
	assert.Nil(t, fields)
}
