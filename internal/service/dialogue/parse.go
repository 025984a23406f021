package dialogue

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
	StampLayout = DateLayout + " " + ClockLayout
)

var (
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidTime      = errors.New("invalid time")
	ErrMissingSeparator = errors.New("missing 'to' separator")
	ErrInvalidStamp     = errors.New("invalid date and time")
)

// Date is a calendar day without a zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func (d Date) String() string {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Format(DateLayout)
}

// Clock is a wall-clock time of day with minute precision.
type Clock struct {
	Hour   int
	Minute int
}

func (c Clock) String() string {
	return time.Date(0, 1, 1, c.Hour, c.Minute, 0, 0, time.UTC).Format(ClockLayout)
}

// Combine attaches the zone to the wall-clock fields without converting.
func Combine(d Date, c Clock, loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, c.Hour, c.Minute, 0, 0, loc)
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

func ParseClock(s string) (Clock, error) {
	t, err := time.Parse(ClockLayout, strings.TrimSpace(s))
	if err != nil {
		return Clock{}, ErrInvalidTime
	}
	return Clock{Hour: t.Hour(), Minute: t.Minute()}, nil
}

var rangeSeparator = regexp.MustCompile(`\s+to\s+`)

// ParseRange parses "YYYY-MM-DD HH:MM to YYYY-MM-DD HH:MM" in loc.
func ParseRange(s string, loc *time.Location) (time.Time, time.Time, error) {
	parts := rangeSeparator.Split(strings.TrimSpace(s), -1)
	if len(parts) != 2 {
		return time.Time{}, time.Time{}, ErrMissingSeparator
	}

	start, err := time.ParseInLocation(StampLayout, strings.Join(strings.Fields(parts[0]), " "), loc)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidStamp
	}
	end, err := time.ParseInLocation(StampLayout, strings.Join(strings.Fields(parts[1]), " "), loc)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidStamp
	}
	return start, end, nil
}
