package timeshare

import (
	"time"

	"timeshare-portal/internal/domain/reservation"
)

// Fortnight is the recurring half-month template a share is fixed to. The
// same calendar slice repeats every year.
type Fortnight struct {
	Month    time.Month
	StartDay int
	EndDay   int
}

// DefaultFortnights is the template per share index: first and second halves
// of July, then of August.
var DefaultFortnights = [ShareCount]Fortnight{
	{Month: time.July, StartDay: 1, EndDay: 15},
	{Month: time.July, StartDay: 16, EndDay: 31},
	{Month: time.August, StartDay: 1, EndDay: 15},
	{Month: time.August, StartDay: 16, EndDay: 31},
}

// ForYear projects the template onto a concrete year.
func (f Fortnight) ForYear(year int) reservation.DateRange {
	start := time.Date(year, f.Month, f.StartDay, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, f.Month, f.EndDay, 0, 0, 0, 0, time.UTC)
	r, err := reservation.NewDateRange(start, end)
	if err != nil {
		// Templates are static and ordered; this cannot happen for valid data.
		panic(err)
	}
	return r
}
