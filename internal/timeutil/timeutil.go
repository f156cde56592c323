package timeutil

import "time"

// KickoffLayout renders a kickoff as a calendar date plus 12-hour clock.
const KickoffLayout = "2006-01-02 03:04 PM"

// StampLayout names snapshot files down to the second.
const StampLayout = "20060102_150405"

// kickoffLayouts covers the date shapes ESPN emits: RFC 3339 and the
// minute-precision variant without seconds, each with either a Z or an
// explicit offset.
var kickoffLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseKickoff parses an ISO-8601 kickoff string. A trailing Z is read
// as UTC; strings without any zone marker are read as UTC too.
func ParseKickoff(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range kickoffLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// FormatKickoff renders a kickoff in its parsed zone, e.g. "2024-09-08 05:00 PM".
func FormatKickoff(t time.Time) string {
	return t.Format(KickoffLayout)
}

// Stamp renders a timestamp for snapshot file names.
func Stamp(t time.Time) string {
	return t.Format(StampLayout)
}
