package reminder

import (
	"time"

	"github.com/taskboard/taskboard/internal/db/models"
)

// DefaultLookaheadDays is how far ahead of today a realization date triggers a reminder
const DefaultLookaheadDays = 3

// Window returns the inclusive date range [today, today+days], where today is the calendar date
// of now observed in loc. A nil loc means UTC.
func Window(now time.Time, loc *time.Location, days int) (from, to models.Date) {
	if loc == nil {
		loc = time.UTC
	}
	from = models.DateOf(now.In(loc))
	return from, from.AddDays(days)
}
