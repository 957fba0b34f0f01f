package queries

import (
	"context"

	"github.com/google/uuid"
)

type CalendarReadStore interface {
	ListForProperty(ctx context.Context, propertyID uuid.UUID) ([]*CalendarEntryView, error)
	ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]*CalendarEntryView, error)
	FindEntry(ctx context.Context, id uuid.UUID) (*CalendarEntryView, error)
}

type CalendarQueries interface {
	ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]*CalendarEntryView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*CalendarEntryView, error)
	GetEntry(ctx context.Context, id uuid.UUID) (*CalendarEntryView, error)
}

type calendarQueriesImpl struct {
	store CalendarReadStore
}

func NewCalendarQueries(store CalendarReadStore) CalendarQueries {
	return &calendarQueriesImpl{store: store}
}

func (q *calendarQueriesImpl) ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]*CalendarEntryView, error) {
	return q.store.ListForProperty(ctx, propertyID)
}

func (q *calendarQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*CalendarEntryView, error) {
	return q.store.ListForOwner(ctx, ownerID)
}

func (q *calendarQueriesImpl) GetEntry(ctx context.Context, id uuid.UUID) (*CalendarEntryView, error) {
	return q.store.FindEntry(ctx, id)
}
