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

type OwnerReadStore struct {
	pool *pgxpool.Pool
}

func NewOwnerReadStore(pool *pgxpool.Pool) *OwnerReadStore {
	return &OwnerReadStore{pool: pool}
}

const authorizedOwnerQuery = `
SELECT id, name, email, password_hash, role
FROM owners
`

func (s *OwnerReadStore) FindAuthorizedByEmail(ctx context.Context, email string) (*queries.AuthorizedOwnerView, error) {
	return s.findAuthorized(ctx, "WHERE email = $1", email)
}

func (s *OwnerReadStore) FindAuthorizedByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedOwnerView, error) {
	return s.findAuthorized(ctx, "WHERE id = $1", id)
}

func (s *OwnerReadStore) findAuthorized(ctx context.Context, where string, arg any) (*queries.AuthorizedOwnerView, error) {
	var view queries.AuthorizedOwnerView
	err := s.pool.QueryRow(ctx, authorizedOwnerQuery+where, arg).Scan(
		&view.ID, &view.Name, &view.Email, &view.PasswordHash, &view.Role,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("owner not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find owner", err)
	}
	return &view, nil
}

func (s *OwnerReadStore) Balance(ctx context.Context, ownerID uuid.UUID) (*queries.BalanceView, error) {
	view := queries.BalanceView{OwnerID: ownerID}
	err := s.pool.QueryRow(ctx, "SELECT points_balance FROM owners WHERE id = $1", ownerID).Scan(&view.Points)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("owner not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read balance", err)
	}
	return &view, nil
}
