// Package extractor turns free-form chat messages into structured schedule
// fields. It is a fixed grammar over Korean date/time phrases, not general
// language understanding: a message yields fields only when it carries both a
// bracketed title and a recognizable time phrase.
package extractor

import (
	"regexp"
	"strings"
	"time"

	"mvdan.cc/xurls/v2"
)

// Fields is the structured result of a successful extraction.
type Fields struct {
	Title    string
	StartAt  time.Time
	EndAt    *time.Time
	Location string
	Links    []string
}

var (
	titleRe    = regexp.MustCompile(`\[([^\[\]]+)\]`)
	timeLineRe = regexp.MustCompile(`(?:시간|일시)\s*:\s*(.+)`)
	locationRe = regexp.MustCompile(`장소\s*:\s*(.+)`)
	linkRe     = xurls.Strict()
)

// Extract parses text relative to now. It returns nil unless both a title and
// a start time can be established.
func Extract(text string, now time.Time) *Fields {
	title, ok := extractTitle(text)
	if !ok {
		return nil
	}

	phrase, ok := extractTimePhrase(text)
	if !ok {
		return nil
	}

	startAt, ok := resolveDateTime(phrase, now)
	if !ok {
		return nil
	}

	fields := &Fields{
		Title:   title,
		StartAt: startAt,
		Links:   linkRe.FindAllString(text, -1),
	}

	if m := locationRe.FindStringSubmatch(text); m != nil {
		fields.Location = strings.TrimSpace(m[1])
	}

	return fields
}

// extractTitle takes the first bracketed segment and strips emphasis markers.
func extractTitle(text string) (string, bool) {
	m := titleRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}

	title := strings.TrimSpace(m[1])
	title = strings.Trim(title, "*_")
	title = strings.TrimSpace(title)
	if title == "" {
		return "", false
	}

	return title, true
}

// extractTimePhrase returns the text after a "시간:" or "일시:" label, up to
// the end of the line.
func extractTimePhrase(text string) (string, bool) {
	m := timeLineRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}

	return strings.TrimSpace(m[1]), true
}

// resolveDateTime runs the rule table against the time phrase and stops at the
// first rule that matches and resolves.
func resolveDateTime(phrase string, now time.Time) (time.Time, bool) {
	for _, rule := range timeRules {
		m := rule.re.FindStringSubmatch(phrase)
		if m == nil {
			continue
		}

		if t, ok := rule.resolve(m, now); ok {
			return t, true
		}
	}

	return time.Time{}, false
}
