package repository

import (
	"context"
	"errors"
	"time"

	"timeshare-portal/internal/domain/reservation"
	"timeshare-portal/internal/infra"
	"timeshare-portal/internal/infra/db"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const exchangeTable = "exchange_reservations"

type ExchangeRepository struct{}

func NewExchangeRepository() *ExchangeRepository {
	return &ExchangeRepository{}
}

var exchangeColumns = []string{"id", "property_id", "owner_id", "start_date", "end_date", "status", "points", "created_at", "updated_at"}

func (r *ExchangeRepository) ListForProperty(ctx context.Context, dbtx db.DBTX, propertyID uuid.UUID) ([]*reservation.Reservation, error) {
	query, args, err := qb.Select(exchangeColumns...).
		From(exchangeTable).
		Where(sq.Eq{"property_id": propertyID}).
		OrderBy("start_date").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build exchange list query", err)
	}

	rows, err := dbtx.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list exchange reservations", err)
	}
	defer rows.Close()

	var out []*reservation.Reservation
	for rows.Next() {
		res, err := scanExchangeRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan exchange reservation", err)
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed reading exchange reservations", err)
	}
	return out, nil
}

func (r *ExchangeRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	query, args, err := qb.Select(exchangeColumns...).
		From(exchangeTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build exchange query", err)
	}

	res, err := scanExchangeRow(dbtx.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("exchange reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find exchange reservation", err)
	}
	return res, nil
}

func (r *ExchangeRepository) Insert(ctx context.Context, dbtx db.DBTX, res *reservation.Reservation) error {
	query, args, err := qb.Insert(exchangeTable).
		Columns("id", "property_id", "owner_id", "start_date", "end_date", "status", "points").
		Values(res.ID(), res.PropertyID(), res.OwnerID(), res.Dates().Start(), res.Dates().End(), res.Status().String(), res.Points()).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build exchange insert", err)
	}
	if _, err := dbtx.Exec(ctx, query, args...); err != nil {
		return infra.WrapRepoErr("failed to insert exchange reservation", err)
	}
	return nil
}

func (r *ExchangeRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status reservation.Status) error {
	return updateStatus(ctx, dbtx, exchangeTable, id, status)
}

func (r *ExchangeRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	return deleteByID(ctx, dbtx, exchangeTable, id)
}

func scanExchangeRow(row pgx.Row) (*reservation.Reservation, error) {
	var (
		id, propertyID, ownerID uuid.UUID
		startDate, endDate      time.Time
		status                  string
		pointCost               int64
		createdAt, updatedAt    time.Time
	)
	if err := row.Scan(&id, &propertyID, &ownerID, &startDate, &endDate, &status, &pointCost, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	dates, err := reservation.NewDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	return reservation.Reconstruct(id, propertyID, ownerID, dates, reservation.KindExchange, reservation.Status(status), pointCost, createdAt, updatedAt), nil
}
