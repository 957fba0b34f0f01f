package readstore

import (
	"context"
	"errors"
	"time"

	"timeshare-portal/internal/domain/reservation"
	"timeshare-portal/internal/infra"
	"timeshare-portal/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CalendarReadStore flattens ad-hoc, fixed and exchange reservations onto one
// schedule. The two tables are unioned and joined with owners so every entry
// carries a display name.
type CalendarReadStore struct {
	pool *pgxpool.Pool
}

func NewCalendarReadStore(pool *pgxpool.Pool) *CalendarReadStore {
	return &CalendarReadStore{pool: pool}
}

const calendarBaseQuery = `
SELECT entry.id,
       entry.property_id,
       entry.owner_id,
       o.name AS owner_name,
       entry.start_date,
       entry.end_date,
       entry.status,
       entry.points,
       entry.created_at
FROM (
    SELECT id, property_id, owner_id, start_date, end_date, status,
           NULL::bigint AS points, created_at
    FROM reservations
    UNION ALL
    SELECT id, property_id, owner_id, start_date, end_date, status,
           points, created_at
    FROM exchange_reservations
) entry
JOIN owners o ON o.id = entry.owner_id
`

func (s *CalendarReadStore) ListForProperty(ctx context.Context, propertyID uuid.UUID) ([]*queries.CalendarEntryView, error) {
	query := calendarBaseQuery + "WHERE entry.property_id = $1 ORDER BY entry.start_date"
	rows, err := s.pool.Query(ctx, query, propertyID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list property calendar", err)
	}
	defer rows.Close()
	return scanCalendarEntries(rows)
}

func (s *CalendarReadStore) ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.CalendarEntryView, error) {
	query := calendarBaseQuery + "WHERE entry.owner_id = $1 ORDER BY entry.start_date"
	rows, err := s.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list owner calendar", err)
	}
	defer rows.Close()
	return scanCalendarEntries(rows)
}

func (s *CalendarReadStore) FindEntry(ctx context.Context, id uuid.UUID) (*queries.CalendarEntryView, error) {
	query := calendarBaseQuery + "WHERE entry.id = $1"
	entry, err := scanCalendarEntry(s.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("calendar entry not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find calendar entry", err)
	}
	return entry, nil
}

func scanCalendarEntries(rows pgx.Rows) ([]*queries.CalendarEntryView, error) {
	var out []*queries.CalendarEntryView
	for rows.Next() {
		entry, err := scanCalendarEntry(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan calendar entry", err)
		}
		out = append(out, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed reading calendar entries", err)
	}
	return out, nil
}

func scanCalendarEntry(row pgx.Row) (*queries.CalendarEntryView, error) {
	var (
		entry              queries.CalendarEntryView
		startDate, endDate time.Time
	)
	if err := row.Scan(
		&entry.ID,
		&entry.PropertyID,
		&entry.OwnerID,
		&entry.OwnerName,
		&startDate,
		&endDate,
		&entry.Status,
		&entry.Points,
		&entry.CreatedAt,
	); err != nil {
		return nil, err
	}
	entry.StartDate = startDate.Format(time.DateOnly)
	entry.EndDate = endDate.Format(time.DateOnly)
	entry.Kind = kindForEntry(entry.Status, entry.Points)
	return &entry, nil
}

// kindForEntry recovers the reservation kind from the projection: only
// exchange rows carry a point cost, and only fixed allocations hold status
// fija.
func kindForEntry(status string, pointCost *int64) string {
	switch {
	case pointCost != nil:
		return reservation.KindExchange.String()
	case status == reservation.StatusFija.String():
		return reservation.KindFixed.String()
	default:
		return reservation.KindAdHoc.String()
	}
}
