//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"timeshare-portal/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRange(t *testing.T, start, end string) reservation.DateRange {
	t.Helper()
	r, err := reservation.ParseDateRange(start, end)
	require.NoError(t, err)
	return r
}

func TestDateRange(t *testing.T) {
	t.Run("parses the portal wire format", func(t *testing.T) {
		r, err := reservation.ParseDateRange("2025-07-01", "2025-07-15")
		require.NoError(t, err)

		assert.Equal(t, time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC), r.Start())
		assert.Equal(t, time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC), r.End())
		assert.Equal(t, 15, r.Days())
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		_, err := reservation.ParseDateRange("2025-07-01", "not-a-date")
		require.ErrorIs(t, err, reservation.ErrInvalidDate)

		_, err = reservation.ParseDateRange("01/07/2025", "2025-07-15")
		require.ErrorIs(t, err, reservation.ErrInvalidDate)
	})

	t.Run("rejects end before start", func(t *testing.T) {
		_, err := reservation.ParseDateRange("2025-07-15", "2025-07-01")
		require.ErrorIs(t, err, reservation.ErrInvalidDateRange)
	})

	t.Run("single day range is valid and one day long", func(t *testing.T) {
		r := mustRange(t, "2025-07-04", "2025-07-04")
		assert.Equal(t, 1, r.Days())
	})

	t.Run("normalizes bounds to UTC midnight", func(t *testing.T) {
		madrid, err := time.LoadLocation("Europe/Madrid")
		require.NoError(t, err)

		r, err := reservation.NewDateRange(
			time.Date(2025, time.July, 1, 23, 30, 0, 0, madrid),
			time.Date(2025, time.July, 15, 8, 0, 0, 0, madrid),
		)
		require.NoError(t, err)

		assert.Equal(t, time.UTC, r.Start().Location())
		assert.Equal(t, 0, r.Start().Hour())
		assert.Equal(t, 0, r.End().Hour())
	})

	t.Run("overlap is inclusive on both bounds", func(t *testing.T) {
		base := mustRange(t, "2025-07-10", "2025-07-20")

		cases := []struct {
			name     string
			other    reservation.DateRange
			overlaps bool
		}{
			{"identical", mustRange(t, "2025-07-10", "2025-07-20"), true},
			{"contained", mustRange(t, "2025-07-12", "2025-07-15"), true},
			{"containing", mustRange(t, "2025-07-01", "2025-07-31"), true},
			{"touching at start", mustRange(t, "2025-07-01", "2025-07-10"), true},
			{"touching at end", mustRange(t, "2025-07-20", "2025-07-25"), true},
			{"day before", mustRange(t, "2025-07-01", "2025-07-09"), false},
			{"day after", mustRange(t, "2025-07-21", "2025-07-31"), false},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				assert.Equal(t, c.overlaps, base.Overlaps(c.other))
				assert.Equal(t, c.overlaps, c.other.Overlaps(base))
			})
		}
	})

	t.Run("EachDay visits every covered day in order", func(t *testing.T) {
		r := mustRange(t, "2025-07-04", "2025-07-06")

		var days []string
		r.EachDay(func(day time.Time) {
			days = append(days, day.Format(time.DateOnly))
		})

		assert.Equal(t, []string{"2025-07-04", "2025-07-05", "2025-07-06"}, days)
	})
}
