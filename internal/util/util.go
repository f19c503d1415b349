package util

import (
	"time"

	"github.com/pkg/errors"
)

// DayLayout is the YYYY-MM-DD form used as the daily summary key.
const DayLayout = "2006-01-02"

// DayKey returns the calendar day of t in loc.
func DayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DayLayout)
}

// StartOfDay returns midnight of t's calendar day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()

	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// PreviousDay returns the day key before key. Date arithmetic is done on the calendar
// so DST transitions never skip or repeat a day.
func PreviousDay(key string) (string, error) {
	day, err := ParseDay(key)
	if err != nil {
		return "", err
	}

	return day.AddDate(0, 0, -1).Format(DayLayout), nil
}

// ParseDay validates a YYYY-MM-DD key.
func ParseDay(key string) (time.Time, error) {
	day, err := time.Parse(DayLayout, key)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "invalid day %q", key)
	}

	return day, nil
}
