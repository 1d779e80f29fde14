package zoho

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

type SanitizeMode int

const (
	// SanitizeFull makes a string safe as a single path segment.
	SanitizeFull SanitizeMode = iota
	// SanitizeDisplay only strips what would break a front matter line.
	SanitizeDisplay
)

const timestampLayout = "2006-01-02 15:04:05"

var compactOffsetPattern = regexp.MustCompile(`^[+-]\d{4}$`)

var zonedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02T15:04Z07:00",
	"2006-01-02 15:04Z07:00",
}

var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

var ErrEmptyPayload = errors.New("empty payload")

// FormatTimestamp normalizes an export timestamp to "YYYY-MM-DD HH:MM:SSZ" in UTC.
func FormatTimestamp(value string) (string, error) {
	t, err := ParseTimestamp(value)
	if err != nil {
		return "", err
	}
	return FormatTime(t), nil
}

func FormatTime(t time.Time) string {
	return t.UTC().Format(timestampLayout) + "Z"
}

// ParseTimestamp accepts ISO-8601 timestamps with "+HH:MM", "+HHMM" or "Z"
// offsets, naive timestamps (read as UTC) and unix seconds or milliseconds.
func ParseTimestamp(value string) (time.Time, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return time.Time{}, fmt.Errorf("parse timestamp: empty value")
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		if i > 1_000_000_000_000 || i < -1_000_000_000_000 {
			i = i / 1000
		}
		return time.Unix(i, 0).UTC(), nil
	}
	if len(s) > 5 && compactOffsetPattern.MatchString(s[len(s)-5:]) {
		s = s[:len(s)-2] + ":" + s[len(s)-2:]
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("parse timestamp %q: unrecognized format", value)
}

// SanitizeName replaces characters that are illegal for the given mode.
// Full mode swaps / \ : * ? " < > | for a space, display mode drops : < > |.
func SanitizeName(s string, mode SanitizeMode) string {
	illegal, replacement := `/\:*?"<>|`, " "
	if mode == SanitizeDisplay {
		illegal, replacement = ":<>|", ""
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if strings.ContainsRune(illegal, r) {
			b.WriteString(replacement)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func DecodeNotebookPayload(raw string) (NotebookPayload, error) {
	var p NotebookPayload
	if strings.TrimSpace(raw) == "" {
		return p, fmt.Errorf("decode notebook payload: %w", ErrEmptyPayload)
	}
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return p, fmt.Errorf("decode notebook payload: %w", err)
	}
	return p, nil
}

// DecodeReminderPayload strips the single pair of wrapping characters the
// export puts around the reminder object and decodes it. ok is false when
// there is nothing to decode.
func DecodeReminderPayload(raw string) (p ReminderPayload, ok bool, err error) {
	if len(raw) <= 1 {
		return p, false, nil
	}
	inner := strings.TrimSpace(raw[1 : len(raw)-1])
	if inner == "" {
		return p, false, nil
	}
	if err := json.Unmarshal([]byte(inner), &p); err != nil {
		return p, false, fmt.Errorf("decode reminder payload: %w", err)
	}
	return p, true, nil
}

func (p ReminderPayload) IsReminder() bool {
	return strings.Contains(p.Type, "reminder")
}

// Completed maps the export's completion flag to the front matter value.
func (p ReminderPayload) Completed() string {
	switch t := p.IsCompleted.(type) {
	case bool:
		if t {
			return "yes"
		}
	case float64:
		if t == 1 {
			return "yes"
		}
	case string:
		s := strings.TrimSpace(t)
		if s == "1" || strings.EqualFold(s, "true") {
			return "yes"
		}
	}
	return "no"
}

func (p ReminderPayload) DueTime() string {
	return strings.TrimSpace(asString(p.ReminderTime))
}

// IsLinkedAttachment reports whether an attachment stays a reference in the
// note body instead of being copied next to it.
func IsLinkedAttachment(attachment string) bool {
	return strings.HasPrefix(attachment, "http") || strings.Contains(attachment, "webclip")
}

func asString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	default:
		return ""
	}
}
