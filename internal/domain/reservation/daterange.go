package reservation

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidDateRange = errors.New("end date must not be before start date")
	ErrInvalidDate      = errors.New("invalid calendar date")
)

// DateRange is an inclusive calendar-date interval. Both bounds are held at
// UTC midnight so range math never drifts across timezones.
type DateRange struct {
	start time.Time
	end   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	s := truncateToDay(start)
	e := truncateToDay(end)
	if e.Before(s) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{start: s, end: e}, nil
}

// ParseDateRange parses two YYYY-MM-DD dates, the wire format of the portal.
func ParseDateRange(start, end string) (DateRange, error) {
	s, err := time.ParseInLocation(time.DateOnly, start, time.UTC)
	if err != nil {
		return DateRange{}, ErrInvalidDate
	}
	e, err := time.ParseInLocation(time.DateOnly, end, time.UTC)
	if err != nil {
		return DateRange{}, ErrInvalidDate
	}
	return NewDateRange(s, e)
}

func (r DateRange) Start() time.Time {
	return r.start
}

func (r DateRange) End() time.Time {
	return r.end
}

// Days counts the calendar days covered, both bounds included.
func (r DateRange) Days() int {
	return int(r.end.Sub(r.start)/(24*time.Hour)) + 1
}

// Overlaps reports whether two inclusive ranges share at least one day:
// NOT (end1 < start2 OR end2 < start1).
func (r DateRange) Overlaps(other DateRange) bool {
	return !(r.end.Before(other.start) || other.end.Before(r.start))
}

// EachDay calls fn once per covered calendar day, in order.
func (r DateRange) EachDay(fn func(day time.Time)) {
	for d := r.start; !d.After(r.end); d = d.AddDate(0, 0, 1) {
		fn(d)
	}
}

func (r DateRange) String() string {
	return fmt.Sprintf("%s..%s", r.start.Format(time.DateOnly), r.end.Format(time.DateOnly))
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
