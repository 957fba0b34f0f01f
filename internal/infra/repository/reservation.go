package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"timeshare-portal/internal/domain/reservation"
	"timeshare-portal/internal/domain/timeshare"
	"timeshare-portal/internal/infra"
	"timeshare-portal/internal/infra/db"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const reservationTable = "reservations"

type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

var reservationColumns = []string{"id", "property_id", "owner_id", "start_date", "end_date", "status", "created_at", "updated_at"}

func (r *ReservationRepository) ListForProperty(ctx context.Context, dbtx db.DBTX, propertyID uuid.UUID) ([]*reservation.Reservation, error) {
	query, args, err := qb.Select(reservationColumns...).
		From(reservationTable).
		Where(sq.Eq{"property_id": propertyID}).
		OrderBy("start_date").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build reservation list query", err)
	}

	rows, err := dbtx.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

func (r *ReservationRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	query, args, err := qb.Select(reservationColumns...).
		From(reservationTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build reservation query", err)
	}

	res, err := scanReservationRow(dbtx.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	return res, nil
}

func (r *ReservationRepository) Insert(ctx context.Context, dbtx db.DBTX, res *reservation.Reservation) error {
	query, args, err := qb.Insert(reservationTable).
		Columns("id", "property_id", "owner_id", "start_date", "end_date", "status").
		Values(res.ID(), res.PropertyID(), res.OwnerID(), res.Dates().Start(), res.Dates().End(), res.Status().String()).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build reservation insert", err)
	}
	if _, err := dbtx.Exec(ctx, query, args...); err != nil {
		return infra.WrapRepoErr("failed to insert reservation", err)
	}
	return nil
}

// LockProperty takes a transaction-scoped advisory lock on the property so
// writers on both booking tables serialize. The per-table exclusion
// constraints cannot see each other; without the lock two concurrent
// transactions, one per table, could both pass their conflict re-query and
// commit overlapping dates.
func (r *ReservationRepository) LockProperty(ctx context.Context, dbtx db.DBTX, propertyID uuid.UUID) error {
	if _, err := dbtx.Exec(ctx,
		"SELECT pg_advisory_xact_lock(hashtextextended($1::text, 0))", propertyID); err != nil {
		return infra.WrapRepoErr("failed to lock property", err)
	}
	return nil
}

// UpsertFixed writes the desired fija rows, one per allocation, keyed on
// (property_id, owner_id, start_date) so regeneration never duplicates.
func (r *ReservationRepository) UpsertFixed(ctx context.Context, dbtx db.DBTX, allocations []timeshare.FixedAllocation) error {
	if len(allocations) == 0 {
		return nil
	}

	ins := qb.Insert(reservationTable).
		Columns("id", "property_id", "owner_id", "start_date", "end_date", "status")
	for _, a := range allocations {
		ins = ins.Values(uuid.New(), a.PropertyID, a.OwnerID, a.Dates.Start(), a.Dates.End(), reservation.StatusFija.String())
	}
	query, args, err := ins.
		Suffix("ON CONFLICT (property_id, owner_id, start_date) WHERE status = 'fija' DO UPDATE SET end_date = EXCLUDED.end_date, updated_at = now()").
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build fixed upsert", err)
	}
	if _, err := dbtx.Exec(ctx, query, args...); err != nil {
		return infra.WrapRepoErr("failed to upsert fixed allocations", err)
	}
	return nil
}

// DeleteStaleFixed removes fija rows from the horizon start onwards that the
// registry no longer explains, e.g. after a share's owner was cleared or
// replaced. Past years are left alone as history.
func (r *ReservationRepository) DeleteStaleFixed(ctx context.Context, dbtx db.DBTX, propertyID uuid.UUID, keep []timeshare.FixedAllocation, fromYear int) (int64, error) {
	horizonStart := time.Date(fromYear, time.January, 1, 0, 0, 0, 0, time.UTC)

	del := qb.Delete(reservationTable).
		Where(sq.Eq{"property_id": propertyID, "status": reservation.StatusFija.String()}).
		Where(sq.GtOrEq{"start_date": horizonStart})

	if len(keep) > 0 {
		placeholders := make([]string, len(keep))
		args := make([]any, 0, len(keep)*2)
		for i, a := range keep {
			placeholders[i] = "(?, ?)"
			args = append(args, a.OwnerID, a.Dates.Start())
		}
		del = del.Where(sq.Expr(
			fmt.Sprintf("(owner_id, start_date) NOT IN (%s)", strings.Join(placeholders, ", ")),
			args...,
		))
	}

	query, args, err := del.ToSql()
	if err != nil {
		return 0, infra.WrapRepoErr("failed to build stale fixed delete", err)
	}
	tag, err := dbtx.Exec(ctx, query, args...)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete stale fixed allocations", err)
	}
	return tag.RowsAffected(), nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status reservation.Status) error {
	return updateStatus(ctx, dbtx, reservationTable, id, status)
}

func (r *ReservationRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	return deleteByID(ctx, dbtx, reservationTable, id)
}

func updateStatus(ctx context.Context, dbtx db.DBTX, table string, id uuid.UUID, status reservation.Status) error {
	query, args, err := qb.Update(table).
		Set("status", status.String()).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build status update", err)
	}
	tag, err := dbtx.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func deleteByID(ctx context.Context, dbtx db.DBTX, table string, id uuid.UUID) error {
	query, args, err := qb.Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build delete", err)
	}
	tag, err := dbtx.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanReservations(rows pgx.Rows) ([]*reservation.Reservation, error) {
	var out []*reservation.Reservation
	for rows.Next() {
		res, err := scanReservationRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation", err)
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed reading reservations", err)
	}
	return out, nil
}

func scanReservationRow(row pgx.Row) (*reservation.Reservation, error) {
	var (
		id, propertyID, ownerID uuid.UUID
		startDate, endDate      time.Time
		status                  string
		createdAt, updatedAt    time.Time
	)
	if err := row.Scan(&id, &propertyID, &ownerID, &startDate, &endDate, &status, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return reconstructReservation(id, propertyID, ownerID, startDate, endDate, status, 0, createdAt, updatedAt)
}

// reconstructReservation maps a stored row back onto the domain type. The
// ad-hoc store derives the kind from the status: fija rows are fixed
// allocations, everything else is an ad-hoc booking.
func reconstructReservation(
	id, propertyID, ownerID uuid.UUID,
	startDate, endDate time.Time,
	status string,
	points int64,
	createdAt, updatedAt time.Time,
) (*reservation.Reservation, error) {
	dates, err := reservation.NewDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	st := reservation.Status(status)
	kind := reservation.KindAdHoc
	if st == reservation.StatusFija {
		kind = reservation.KindFixed
	}
	return reservation.Reconstruct(id, propertyID, ownerID, dates, kind, st, points, createdAt, updatedAt), nil
}
