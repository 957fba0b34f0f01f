package repository

import (
	"context"
	"errors"

	"timeshare-portal/internal/infra"
	"timeshare-portal/internal/infra/db"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PointsRepository struct{}

func NewPointsRepository() *PointsRepository {
	return &PointsRepository{}
}

func (r *PointsRepository) Balance(ctx context.Context, dbtx db.DBTX, ownerID uuid.UUID) (int64, error) {
	query, args, err := qb.Select("points_balance").
		From("owners").
		Where(sq.Eq{"id": ownerID}).
		ToSql()
	if err != nil {
		return 0, infra.WrapRepoErr("failed to build balance query", err)
	}

	var balance int64
	if err := dbtx.QueryRow(ctx, query, args...).Scan(&balance); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, infra.WrapRepoErr("owner not found", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to read balance", err)
	}
	return balance, nil
}

// Debit is a single conditional write: it only touches the row when the
// balance covers the amount, so concurrent debits can never drive the balance
// negative. No matching row means either an unknown owner or insufficient
// funds; a follow-up read tells them apart.
func (r *PointsRepository) Debit(ctx context.Context, dbtx db.DBTX, ownerID uuid.UUID, amount int64) (int64, error) {
	query, args, err := qb.Update("owners").
		Set("points_balance", sq.Expr("points_balance - ?", amount)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": ownerID}).
		Where(sq.GtOrEq{"points_balance": amount}).
		Suffix("RETURNING points_balance").
		ToSql()
	if err != nil {
		return 0, infra.WrapRepoErr("failed to build debit", err)
	}

	var balance int64
	if err := dbtx.QueryRow(ctx, query, args...).Scan(&balance); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			exists, existsErr := ownerExists(ctx, dbtx, ownerID)
			if existsErr != nil {
				return 0, existsErr
			}
			if !exists {
				return 0, infra.WrapRepoErr("owner not found", err, infra.KindNotFound)
			}
			return 0, infra.WrapRepoErr("insufficient points balance", err, infra.KindConflict)
		}
		return 0, infra.WrapRepoErr("failed to debit points", err)
	}
	return balance, nil
}

func (r *PointsRepository) Credit(ctx context.Context, dbtx db.DBTX, ownerID uuid.UUID, amount int64) (int64, error) {
	query, args, err := qb.Update("owners").
		Set("points_balance", sq.Expr("points_balance + ?", amount)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": ownerID}).
		Suffix("RETURNING points_balance").
		ToSql()
	if err != nil {
		return 0, infra.WrapRepoErr("failed to build credit", err)
	}

	var balance int64
	if err := dbtx.QueryRow(ctx, query, args...).Scan(&balance); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, infra.WrapRepoErr("owner not found", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to credit points", err)
	}
	return balance, nil
}

func ownerExists(ctx context.Context, dbtx db.DBTX, ownerID uuid.UUID) (bool, error) {
	query, args, err := qb.Select("1").
		From("owners").
		Where(sq.Eq{"id": ownerID}).
		ToSql()
	if err != nil {
		return false, infra.WrapRepoErr("failed to build owner existence query", err)
	}

	var one int
	if err := dbtx.QueryRow(ctx, query, args...).Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to check owner existence", err)
	}
	return true, nil
}
