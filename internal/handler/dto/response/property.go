package response

import (
	"time"

	"timeshare-portal/internal/usecase/commands"
	"timeshare-portal/internal/usecase/queries"

	"github.com/google/uuid"
)

type PropertyResponse struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	PriceCents int64           `json:"price_cents"`
	Shares     []ShareResponse `json:"shares"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

type ShareResponse struct {
	Index      int        `json:"index"`
	Status     string     `json:"status"`
	OwnerID    *uuid.UUID `json:"owner_id,omitempty"`
	OwnerName  *string    `json:"owner_name,omitempty"`
	PriceCents int64      `json:"price_cents"`
}

// AssignShareResponse reports the committed assignment and how the fixed
// allocation reconciliation went. allocation_failed tells the client the
// assignment stuck but the calendar needs a regeneration.
type AssignShareResponse struct {
	PropertyID       uuid.UUID `json:"property_id"`
	ShareIndex       int       `json:"share_index"`
	Status           string    `json:"status,omitempty"`
	Upserted         int       `json:"allocations_upserted"`
	StaleRemoved     int64     `json:"allocations_removed"`
	AllocationFailed bool      `json:"allocation_failed"`
}

func FromPropertyView(view *queries.PropertyView) *PropertyResponse {
	shares := make([]ShareResponse, len(view.Shares))
	for i, s := range view.Shares {
		shares[i] = ShareResponse{
			Index:      s.Index,
			Status:     s.Status,
			OwnerID:    s.OwnerID,
			OwnerName:  s.OwnerName,
			PriceCents: s.PriceCents,
		}
	}
	return &PropertyResponse{
		ID:         view.ID,
		Name:       view.Name,
		PriceCents: view.PriceCents,
		Shares:     shares,
		CreatedAt:  view.CreatedAt,
		UpdatedAt:  view.UpdatedAt,
	}
}

func FromAssignShareResult(result *commands.AssignShareResult) *AssignShareResponse {
	return &AssignShareResponse{
		PropertyID:       result.PropertyID,
		ShareIndex:       result.ShareIndex,
		Status:           result.Status,
		Upserted:         result.Upserted,
		StaleRemoved:     result.StaleRemoved,
		AllocationFailed: result.AllocationFailed,
	}
}
