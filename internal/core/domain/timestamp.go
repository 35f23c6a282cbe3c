package domain

import (
	"strings"
	"time"
)

// Operation timestamps arrive as free-form strings written by the device
// tooling. Two quirks must be tolerated: Arabic AM/PM markers ("-م"/"-ص")
// and a handful of separator styles in the date portion.

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02 15:04:05",
	"2006/01/02 03:04 -PM",
	"2006/01/02 03:04-PM",
	"2006-01-02 03:04 -PM",
	"01/02/2006 03:04:05 PM",
	"2006-01-02",
	"2006/01/02",
}

// normalizeMarkers converts Arabic AM/PM indicators to their English
// equivalents before parsing.
func normalizeMarkers(s string) string {
	s = strings.ReplaceAll(s, "-م", "-PM")
	s = strings.ReplaceAll(s, "-ص", "-AM")
	return strings.TrimSpace(s)
}

// ParseTimestamp attempts to parse a free-form operation timestamp. The
// second return value reports whether any layout matched.
func ParseTimestamp(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	s = normalizeMarkers(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// MonthOf extracts the calendar month from a timestamp string. When full
// parsing fails it falls back to the date portion alone, tolerating "-", "/"
// and "." separators. Returns false when no month can be determined.
func MonthOf(s string) (time.Month, bool) {
	if t, ok := ParseTimestamp(s); ok {
		return t.Month(), true
	}

	datePart := normalizeMarkers(s)
	if i := strings.IndexAny(datePart, " T"); i > 0 {
		datePart = datePart[:i]
	}
	datePart = strings.NewReplacer("/", "-", ".", "-").Replace(datePart)
	for _, layout := range []string{"2006-01-02", "2006-1-2", "02-01-2006"} {
		if t, err := time.Parse(layout, datePart); err == nil {
			return t.Month(), true
		}
	}
	return 0, false
}
