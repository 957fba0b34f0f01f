package queries

import (
	"context"

	"github.com/google/uuid"
)

type PropertyReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PropertyView, error)
	List(ctx context.Context) ([]*PropertyView, error)
}

type PropertyQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*PropertyView, error)
	List(ctx context.Context) ([]*PropertyView, error)
}

type propertyQueriesImpl struct {
	store PropertyReadStore
}

func NewPropertyQueries(store PropertyReadStore) PropertyQueries {
	return &propertyQueriesImpl{store: store}
}

func (q *propertyQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*PropertyView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *propertyQueriesImpl) List(ctx context.Context) ([]*PropertyView, error) {
	return q.store.List(ctx)
}
