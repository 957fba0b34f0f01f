package readstore

import (
	"context"
	"errors"

	"timeshare-portal/internal/infra"
	"timeshare-portal/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PropertyReadStore struct {
	pool *pgxpool.Pool
}

func NewPropertyReadStore(pool *pgxpool.Pool) *PropertyReadStore {
	return &PropertyReadStore{pool: pool}
}

const propertyQuery = `
SELECT id, name, price_cents, created_at, updated_at
FROM properties
`

const sharesQuery = `
SELECT s.property_id, s.idx, s.status, s.owner_id, o.name, s.price_cents
FROM shares s
LEFT JOIN owners o ON o.id = s.owner_id
`

func (s *PropertyReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PropertyView, error) {
	var view queries.PropertyView
	err := s.pool.QueryRow(ctx, propertyQuery+"WHERE id = $1", id).Scan(
		&view.ID, &view.Name, &view.PriceCents, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("property not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find property", err)
	}

	shares, err := s.loadShares(ctx, "WHERE s.property_id = $1", id)
	if err != nil {
		return nil, err
	}
	view.Shares = shares[view.ID]
	return &view, nil
}

func (s *PropertyReadStore) List(ctx context.Context) ([]*queries.PropertyView, error) {
	rows, err := s.pool.Query(ctx, propertyQuery+"ORDER BY name")
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list properties", err)
	}
	defer rows.Close()

	var out []*queries.PropertyView
	for rows.Next() {
		var view queries.PropertyView
		if err := rows.Scan(&view.ID, &view.Name, &view.PriceCents, &view.CreatedAt, &view.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan property", err)
		}
		out = append(out, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed reading properties", err)
	}

	shares, err := s.loadShares(ctx, "")
	if err != nil {
		return nil, err
	}
	for _, view := range out {
		view.Shares = shares[view.ID]
	}
	return out, nil
}

func (s *PropertyReadStore) loadShares(ctx context.Context, where string, args ...any) (map[uuid.UUID][]queries.ShareView, error) {
	rows, err := s.pool.Query(ctx, sharesQuery+where+" ORDER BY s.property_id, s.idx", args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list shares", err)
	}
	defer rows.Close()

	byProperty := make(map[uuid.UUID][]queries.ShareView)
	for rows.Next() {
		var (
			propertyID uuid.UUID
			share      queries.ShareView
		)
		if err := rows.Scan(&propertyID, &share.Index, &share.Status, &share.OwnerID, &share.OwnerName, &share.PriceCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan share", err)
		}
		byProperty[propertyID] = append(byProperty[propertyID], share)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed reading shares", err)
	}
	return byProperty, nil
}
