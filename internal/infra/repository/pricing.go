package repository

import (
	"context"
	"errors"

	"timeshare-portal/internal/domain/points"
	"timeshare-portal/internal/infra"
	"timeshare-portal/internal/infra/db"

	"github.com/jackc/pgx/v5"
)

type PricingRepository struct{}

func NewPricingRepository() *PricingRepository {
	return &PricingRepository{}
}

// Get reads the single pricing row. The table is seeded by migration, so a
// missing row means the database was not set up.
func (r *PricingRepository) Get(ctx context.Context, dbtx db.DBTX) (points.PricingTable, error) {
	query, args, err := qb.Select("weekday_points", "weekend_points").
		From("exchange_pricing").
		ToSql()
	if err != nil {
		return points.PricingTable{}, infra.WrapRepoErr("failed to build pricing query", err)
	}

	var weekday, weekend int64
	if err := dbtx.QueryRow(ctx, query, args...).Scan(&weekday, &weekend); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return points.PricingTable{}, infra.WrapRepoErr("pricing not configured", err, infra.KindNotFound)
		}
		return points.PricingTable{}, infra.WrapRepoErr("failed to read pricing", err)
	}

	table, err := points.NewPricingTable(weekday, weekend)
	if err != nil {
		return points.PricingTable{}, infra.WrapRepoErr("stored pricing invalid", err)
	}
	return table, nil
}
