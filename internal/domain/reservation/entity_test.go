//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"timeshare-portal/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reconstruct(t *testing.T, kind reservation.Kind, status reservation.Status, start, end string) *reservation.Reservation {
	t.Helper()
	now := time.Now()
	return reservation.Reconstruct(
		uuid.New(), uuid.New(), uuid.New(),
		mustRange(t, start, end),
		kind, status, 0, now, now,
	)
}

func TestNewReservation(t *testing.T) {
	propertyID := uuid.New()
	ownerID := uuid.New()
	dates := mustRange(t, "2025-07-01", "2025-07-15")

	t.Run("fixed allocation starts fija", func(t *testing.T) {
		r, err := reservation.NewFixed(propertyID, ownerID, dates)
		require.NoError(t, err)
		assert.Equal(t, reservation.KindFixed, r.Kind())
		assert.Equal(t, reservation.StatusFija, r.Status())
	})

	t.Run("ad-hoc booking starts pendiente", func(t *testing.T) {
		r, err := reservation.NewAdHoc(propertyID, ownerID, dates)
		require.NoError(t, err)
		assert.Equal(t, reservation.KindAdHoc, r.Kind())
		assert.Equal(t, reservation.StatusPendiente, r.Status())
	})

	t.Run("exchange booking carries its point cost", func(t *testing.T) {
		r, err := reservation.NewExchange(propertyID, ownerID, dates, 55)
		require.NoError(t, err)
		assert.Equal(t, reservation.KindExchange, r.Kind())
		assert.Equal(t, reservation.StatusPendiente, r.Status())
		assert.Equal(t, int64(55), r.Points())
	})

	t.Run("rejects missing parties and negative points", func(t *testing.T) {
		_, err := reservation.NewAdHoc(uuid.Nil, ownerID, dates)
		require.ErrorIs(t, err, reservation.ErrMissingProperty)

		_, err = reservation.NewAdHoc(propertyID, uuid.Nil, dates)
		require.ErrorIs(t, err, reservation.ErrMissingOwner)

		_, err = reservation.NewExchange(propertyID, ownerID, dates, -1)
		require.ErrorIs(t, err, reservation.ErrNegativePoints)
	})
}

func TestTransition(t *testing.T) {
	t.Run("applies a legal move", func(t *testing.T) {
		r := reconstruct(t, reservation.KindAdHoc, reservation.StatusPendiente, "2025-09-01", "2025-09-05")
		require.NoError(t, r.Transition(reservation.StatusAprobada))
		assert.Equal(t, reservation.StatusAprobada, r.Status())
	})

	t.Run("refuses an off-table move and keeps the status", func(t *testing.T) {
		r := reconstruct(t, reservation.KindAdHoc, reservation.StatusAprobada, "2025-09-01", "2025-09-05")
		err := r.Transition(reservation.StatusPendiente)
		require.ErrorIs(t, err, reservation.ErrIllegalTransition)
		assert.Equal(t, reservation.StatusAprobada, r.Status())
	})

	t.Run("refuses a status foreign to the kind", func(t *testing.T) {
		r := reconstruct(t, reservation.KindAdHoc, reservation.StatusPendiente, "2025-09-01", "2025-09-05")
		err := r.Transition(reservation.StatusAnulada)
		require.ErrorIs(t, err, reservation.ErrStatusNotInKind)
	})

	t.Run("fixed allocations are not manageable", func(t *testing.T) {
		r := reconstruct(t, reservation.KindFixed, reservation.StatusFija, "2025-07-01", "2025-07-15")
		err := r.Transition(reservation.StatusCancelada)
		require.ErrorIs(t, err, reservation.ErrFixedNotManageable)
	})
}

func TestFindConflicts(t *testing.T) {
	t.Run("fixed allocation blocks an overlapping request", func(t *testing.T) {
		fixed := reconstruct(t, reservation.KindFixed, reservation.StatusFija, "2025-07-01", "2025-07-15")
		candidate := mustRange(t, "2025-07-10", "2025-07-12")

		conflicts := reservation.FindConflicts([]*reservation.Reservation{fixed}, candidate)
		require.Len(t, conflicts, 1)
		assert.Equal(t, fixed.ID(), conflicts[0].ID())
	})

	t.Run("void reservations never block", func(t *testing.T) {
		existing := []*reservation.Reservation{
			reconstruct(t, reservation.KindAdHoc, reservation.StatusRechazada, "2025-07-01", "2025-07-15"),
			reconstruct(t, reservation.KindAdHoc, reservation.StatusCancelada, "2025-07-01", "2025-07-15"),
			reconstruct(t, reservation.KindExchange, reservation.StatusAnulada, "2025-07-01", "2025-07-15"),
		}
		candidate := mustRange(t, "2025-07-05", "2025-07-10")

		assert.Empty(t, reservation.FindConflicts(existing, candidate))
	})

	t.Run("conflict detection is kind-agnostic", func(t *testing.T) {
		existing := []*reservation.Reservation{
			reconstruct(t, reservation.KindFixed, reservation.StatusFija, "2025-07-01", "2025-07-15"),
			reconstruct(t, reservation.KindAdHoc, reservation.StatusPendiente, "2025-07-16", "2025-07-20"),
			reconstruct(t, reservation.KindExchange, reservation.StatusAprobada, "2025-07-25", "2025-07-31"),
		}
		candidate := mustRange(t, "2025-07-14", "2025-07-26")

		conflicts := reservation.FindConflicts(existing, candidate)
		assert.Len(t, conflicts, 3)
	})

	t.Run("no overlap yields an empty set", func(t *testing.T) {
		existing := []*reservation.Reservation{
			reconstruct(t, reservation.KindAdHoc, reservation.StatusAprobada, "2025-07-01", "2025-07-05"),
		}
		candidate := mustRange(t, "2025-07-06", "2025-07-10")

		assert.Empty(t, reservation.FindConflicts(existing, candidate))
	})
}
