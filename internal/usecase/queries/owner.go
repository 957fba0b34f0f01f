package queries

import (
	"context"

	"github.com/google/uuid"
)

type OwnerReadStore interface {
	FindAuthorizedByEmail(ctx context.Context, email string) (*AuthorizedOwnerView, error)
	FindAuthorizedByID(ctx context.Context, id uuid.UUID) (*AuthorizedOwnerView, error)
	Balance(ctx context.Context, ownerID uuid.UUID) (*BalanceView, error)
}

type OwnerQueries interface {
	GetAuthorized(ctx context.Context, id uuid.UUID) (*AuthorizedOwnerView, error)
	GetBalance(ctx context.Context, ownerID uuid.UUID) (*BalanceView, error)
}

type ownerQueriesImpl struct {
	store OwnerReadStore
}

func NewOwnerQueries(store OwnerReadStore) OwnerQueries {
	return &ownerQueriesImpl{store: store}
}

func (q *ownerQueriesImpl) GetAuthorized(ctx context.Context, id uuid.UUID) (*AuthorizedOwnerView, error) {
	return q.store.FindAuthorizedByID(ctx, id)
}

func (q *ownerQueriesImpl) GetBalance(ctx context.Context, ownerID uuid.UUID) (*BalanceView, error) {
	return q.store.Balance(ctx, ownerID)
}
