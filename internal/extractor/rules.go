package extractor

import (
	"regexp"
	"strconv"
	"time"
)

// timeRule is one entry of the ordered date/time resolution table. Rules are
// tried in order against the time phrase and the first match wins.
type timeRule struct {
	name    string
	re      *regexp.Regexp
	resolve func(m []string, now time.Time) (time.Time, bool)
}

const (
	meridiemAM = "오전"
	meridiemPM = "오후"
)

// timeRules in strict precedence order: explicit month/day, slash month/day,
// bare clock time, bare meridiem hour.
var timeRules = []timeRule{
	{
		name:    "month-day",
		re:      regexp.MustCompile(`(\d{1,2})월\s*(\d{1,2})일\s*(?:\([^)]*\))?\s*(오전|오후)?\s*(\d{1,2})시(?:\s*(\d{1,2})분)?`),
		resolve: resolveMonthDay,
	},
	{
		name:    "slash-month-day",
		re:      regexp.MustCompile(`(\d{1,2})/(\d{1,2})\s*(?:\([^)]*\))?\s*(오전|오후)?\s*(\d{1,2})시(?:\s*(\d{1,2})분)?`),
		resolve: resolveMonthDay,
	},
	{
		name:    "clock",
		re:      regexp.MustCompile(`(\d{1,2}):(\d{2})`),
		resolve: resolveClock,
	},
	{
		name:    "meridiem-hour",
		re:      regexp.MustCompile(`(오전|오후)\s*(\d{1,2})시(?:\s*(\d{1,2})분)?`),
		resolve: resolveMeridiemHour,
	},
}

// normalizeHour applies the meridiem: PM below 12 gains 12, AM 12 becomes
// midnight, and without a meridiem the hour is taken literally (24h).
func normalizeHour(hour int, meridiem string) int {
	switch meridiem {
	case meridiemPM:
		if hour < 12 {
			return hour + 12
		}
	case meridiemAM:
		if hour == 12 {
			return 0
		}
	}
	return hour
}

// resolveMonthDay handles both "N월 N일" and "N/N" phrases: groups are
// month, day, optional meridiem, hour, optional minute.
func resolveMonthDay(m []string, now time.Time) (time.Time, bool) {
	month := atoi(m[1])
	day := atoi(m[2])
	hour := normalizeHour(atoi(m[4]), m[3])
	minute := 0
	if m[5] != "" {
		minute = atoi(m[5])
	}

	if month < 1 || month > 12 || day < 1 || day > 31 || hour > 23 || minute > 59 {
		return time.Time{}, false
	}

	candidate := time.Date(now.Year(), time.Month(month), day, hour, minute, 0, 0, now.Location())

	// Messages never carry a year. Build the date in the current year; if that
	// lands more than 3 months in the past, the author meant next year
	// (year-end postings of January dates).
	if candidate.Before(now.AddDate(0, -3, 0)) {
		candidate = candidate.AddDate(1, 0, 0)
	}

	return candidate, true
}

func resolveClock(m []string, now time.Time) (time.Time, bool) {
	hour := atoi(m[1])
	minute := atoi(m[2])
	if hour > 23 || minute > 59 {
		return time.Time{}, false
	}

	return time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location()), true
}

func resolveMeridiemHour(m []string, now time.Time) (time.Time, bool) {
	hour := normalizeHour(atoi(m[2]), m[1])
	minute := 0
	if m[3] != "" {
		minute = atoi(m[3])
	}
	if hour > 23 || minute > 59 {
		return time.Time{}, false
	}

	return time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location()), true
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
