package response

import (
	"time"

	"timeshare-portal/internal/usecase/queries"

	"github.com/google/uuid"
)

// CalendarEntryResponse is the kind-agnostic schedule entry: fixed
// allocations, ad-hoc bookings and exchange reservations rendered the same
// way.
type CalendarEntryResponse struct {
	ID         uuid.UUID `json:"id"`
	PropertyID uuid.UUID `json:"property_id"`
	OwnerID    uuid.UUID `json:"owner_id"`
	OwnerName  string    `json:"owner_name"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	Kind       string    `json:"kind"`
	Status     string    `json:"status"`
	Points     *int64    `json:"points,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type CreateReservationResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromCalendarEntryView(view *queries.CalendarEntryView) *CalendarEntryResponse {
	return &CalendarEntryResponse{
		ID:         view.ID,
		PropertyID: view.PropertyID,
		OwnerID:    view.OwnerID,
		OwnerName:  view.OwnerName,
		StartDate:  view.StartDate,
		EndDate:    view.EndDate,
		Kind:       view.Kind,
		Status:     view.Status,
		Points:     view.Points,
		CreatedAt:  view.CreatedAt,
	}
}

func FromCalendarEntryViews(views []*queries.CalendarEntryView) []*CalendarEntryResponse {
	out := make([]*CalendarEntryResponse, len(views))
	for i, v := range views {
		out[i] = FromCalendarEntryView(v)
	}
	return out
}
