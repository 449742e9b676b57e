package nutrition

import "time"

// DateLayout is the wire and storage format for meal dates.
const DateLayout = "2006-01-02"

// WeekStart returns the Monday of the ISO week containing ref, truncated to a
// date in UTC.
func WeekStart(ref time.Time) time.Time {
	ref = ref.UTC()
	day := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)
	weekday := int(day.Weekday())
	// time.Weekday counts Sunday as 0; shift so Monday is 0.
	offset := (weekday + 6) % 7
	return day.AddDate(0, 0, -offset)
}
