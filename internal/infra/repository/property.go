package repository

import (
	"context"
	"errors"
	"time"

	"timeshare-portal/internal/domain/timeshare"
	"timeshare-portal/internal/infra"
	"timeshare-portal/internal/infra/db"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	propertyTable = "properties"
	shareTable    = "shares"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type PropertyRepository struct{}

func NewPropertyRepository() *PropertyRepository {
	return &PropertyRepository{}
}

func (r *PropertyRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*timeshare.Property, error) {
	query, args, err := qb.Select("id", "name", "price_cents", "created_at", "updated_at").
		From(propertyTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build property query", err)
	}

	var (
		propertyID           uuid.UUID
		name                 string
		priceCents           int64
		createdAt, updatedAt time.Time
	)
	if err := dbtx.QueryRow(ctx, query, args...).Scan(&propertyID, &name, &priceCents, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("property not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find property", err)
	}

	shares, err := r.loadShares(ctx, dbtx, propertyID)
	if err != nil {
		return nil, err
	}

	return timeshare.ReconstructProperty(propertyID, name, priceCents, shares, createdAt, updatedAt), nil
}

func (r *PropertyRepository) loadShares(ctx context.Context, dbtx db.DBTX, propertyID uuid.UUID) ([timeshare.ShareCount]timeshare.Share, error) {
	var shares [timeshare.ShareCount]timeshare.Share

	query, args, err := qb.Select("idx", "status", "owner_id", "price_cents").
		From(shareTable).
		Where(sq.Eq{"property_id": propertyID}).
		OrderBy("idx").
		ToSql()
	if err != nil {
		return shares, infra.WrapRepoErr("failed to build shares query", err)
	}

	rows, err := dbtx.Query(ctx, query, args...)
	if err != nil {
		return shares, infra.WrapRepoErr("failed to load shares", err)
	}
	defer rows.Close()

	seen := 0
	for rows.Next() {
		var (
			idx        int
			status     string
			ownerID    *uuid.UUID
			priceCents int64
		)
		if err := rows.Scan(&idx, &status, &ownerID, &priceCents); err != nil {
			return shares, infra.WrapRepoErr("failed to scan share", err)
		}
		share, err := timeshare.ReconstructShare(idx, timeshare.ShareStatus(status), ownerID, priceCents)
		if err != nil {
			return shares, infra.WrapRepoErr("corrupt share row", err)
		}
		shares[idx-1] = share
		seen++
	}
	if err := rows.Err(); err != nil {
		return shares, infra.WrapRepoErr("failed reading shares", err)
	}
	if seen != timeshare.ShareCount {
		return shares, infra.WrapRepoErr("property is missing share rows", nil, infra.KindDBFailure)
	}
	return shares, nil
}

func (r *PropertyRepository) Create(ctx context.Context, dbtx db.DBTX, p *timeshare.Property) error {
	query, args, err := qb.Insert(propertyTable).
		Columns("id", "name", "price_cents").
		Values(p.ID(), p.Name(), p.PriceCents()).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build property insert", err)
	}
	if _, err := dbtx.Exec(ctx, query, args...); err != nil {
		return infra.WrapRepoErr("failed to insert property", err)
	}

	ins := qb.Insert(shareTable).Columns("property_id", "idx", "status", "owner_id", "price_cents")
	for _, share := range p.Shares() {
		ins = ins.Values(p.ID(), share.Index(), share.Status().String(), share.OwnerID(), share.PriceCents())
	}
	query, args, err = ins.ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build shares insert", err)
	}
	if _, err := dbtx.Exec(ctx, query, args...); err != nil {
		return infra.WrapRepoErr("failed to insert shares", err)
	}
	return nil
}

// UpdatePrice persists the property price together with the recomputed share
// prices.
func (r *PropertyRepository) UpdatePrice(ctx context.Context, dbtx db.DBTX, p *timeshare.Property) error {
	query, args, err := qb.Update(propertyTable).
		Set("price_cents", p.PriceCents()).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": p.ID()}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build price update", err)
	}
	if _, err := dbtx.Exec(ctx, query, args...); err != nil {
		return infra.WrapRepoErr("failed to update property price", err)
	}

	for _, share := range p.Shares() {
		query, args, err := qb.Update(shareTable).
			Set("price_cents", share.PriceCents()).
			Where(sq.Eq{"property_id": p.ID(), "idx": share.Index()}).
			ToSql()
		if err != nil {
			return infra.WrapRepoErr("failed to build share price update", err)
		}
		if _, err := dbtx.Exec(ctx, query, args...); err != nil {
			return infra.WrapRepoErr("failed to update share price", err)
		}
	}
	return nil
}

func (r *PropertyRepository) UpdateShare(ctx context.Context, dbtx db.DBTX, propertyID uuid.UUID, share timeshare.Share) error {
	query, args, err := qb.Update(shareTable).
		Set("status", share.Status().String()).
		Set("owner_id", share.OwnerID()).
		Set("price_cents", share.PriceCents()).
		Where(sq.Eq{"property_id": propertyID, "idx": share.Index()}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build share update", err)
	}
	tag, err := dbtx.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update share", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("share not found", nil, infra.KindNotFound)
	}
	return nil
}
