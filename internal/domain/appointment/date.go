package appointment

import (
	"time"

	"github.com/vilanovabarber/booking-api/internal/httperr"
)

// Slots is the fixed booking grid offered by the shop.
var Slots = []string{
	"09:00", "10:00", "11:00", "12:00", "13:00", "14:00",
	"15:00", "16:00", "17:00", "18:00", "19:00",
}

func IsValidSlot(slot string) bool {
	for _, s := range Slots {
		if s == slot {
			return true
		}
	}
	return false
}

// NormalizeDate parses a "YYYY-MM-DD" calendar date and pins it to noon UTC.
// Building the timestamp from the date components keeps a client in any
// timezone from landing on the previous or next day.
func NormalizeDate(dateStr string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return time.Time{}, httperr.ErrBusiness("invalid_date")
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, time.UTC), nil
}

// DayBounds returns the [start, end) window of the calendar day containing t.
// Only the wall-clock day matters for slot conflicts, never the exact
// timestamp, since stored dates carry a normalized time-of-day.
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.Add(24 * time.Hour)
}
