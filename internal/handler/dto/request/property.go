package request

import (
	"timeshare-portal/internal/domain/timeshare"

	"github.com/google/uuid"
)

type CreatePropertyRequest struct {
	Name       string `json:"name" binding:"required"`
	PriceCents int64  `json:"price_cents" binding:"required,gt=0"`
}

type UpdatePriceRequest struct {
	PriceCents int64 `json:"price_cents" binding:"required,gt=0"`
}

// AssignShareRequest sets or clears a share's owner. A null owner_id releases
// the share; otherwise kind decides whether the share shows as reserved or
// sold.
type AssignShareRequest struct {
	OwnerID *uuid.UUID `json:"owner_id"`
	Kind    string     `json:"kind,omitempty"`
}

func (r AssignShareRequest) AcquisitionKind() timeshare.AcquisitionKind {
	return timeshare.AcquisitionKind(r.Kind)
}
