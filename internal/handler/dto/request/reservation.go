package request

import (
	"timeshare-portal/internal/domain/reservation"

	"github.com/google/uuid"
)

// CreateReservationRequest books arbitrary dates on a property. OwnerID is
// optional: admins may book on another owner's behalf, everyone else books
// for themselves. Dates travel as YYYY-MM-DD, bounds inclusive.
type CreateReservationRequest struct {
	PropertyID uuid.UUID  `json:"property_id" binding:"required"`
	OwnerID    *uuid.UUID `json:"owner_id,omitempty"`
	StartDate  string     `json:"start_date" binding:"required"`
	EndDate    string     `json:"end_date" binding:"required"`
}

func (r CreateReservationRequest) ToDateRange() (reservation.DateRange, error) {
	return reservation.ParseDateRange(r.StartDate, r.EndDate)
}

// BookingOwner resolves who the reservation is for.
func (r CreateReservationRequest) BookingOwner(actorID uuid.UUID) uuid.UUID {
	if r.OwnerID != nil {
		return *r.OwnerID
	}
	return actorID
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
