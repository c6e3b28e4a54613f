package schedule

import (
	"fmt"
	"time"
)

// absoluteLayouts are tried in order for inputs that carry a date.
var absoluteLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseStartTime parses a batch start time in one of four formats:
//
//	YYYY-MM-DDTHH:MM    exact datetime (ISO 8601, no zone)
//	"YYYY-MM-DD HH:MM"  exact datetime
//	YYYY-MM-DD          midnight of that date
//	HH:MM               today if still ahead, otherwise tomorrow
//
// All results are in the local timezone.
func ParseStartTime(input string) (time.Time, error) {
	now := time.Now()
	local := now.Location()

	for _, layout := range absoluteLayouts {
		if t, err := time.ParseInLocation(layout, input, local); err == nil {
			return t, nil
		}
	}

	if t, err := time.ParseInLocation("15:04", input, local); err == nil {
		start := time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, local)
		if start.Before(now) {
			start = start.AddDate(0, 0, 1)
		}
		return start, nil
	}

	return time.Time{}, fmt.Errorf("invalid start time %q (supported: YYYY-MM-DD, HH:MM, \"YYYY-MM-DD HH:MM\", YYYY-MM-DDTHH:MM)", input)
}
