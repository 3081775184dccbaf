package orchestrator

import (
	"fmt"
	"time"
)

// buildDateContext appends today's date to the tool-selection instruction so
// "latest" or "last year's" phones map onto a released_year. An unknown
// timezone falls back to UTC.
func buildDateContext(now time.Time, timezone string) string {
	if loc, err := time.LoadLocation(timezone); err == nil {
		now = now.In(loc)
	} else {
		now = now.UTC()
	}

	year := now.Year()
	return fmt.Sprintf("\n\n[Current date]\n- Today: %s (%s)\n- \"This year\" or \"latest\" means released_year %d; \"last year\" means %d.",
		now.Format(time.DateOnly), now.Weekday(), year, year-1)
}
