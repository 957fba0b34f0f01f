package request

import (
	"timeshare-portal/internal/domain/reservation"

	"github.com/google/uuid"
)

type BookExchangeRequest struct {
	PropertyID uuid.UUID  `json:"property_id" binding:"required"`
	OwnerID    *uuid.UUID `json:"owner_id,omitempty"`
	StartDate  string     `json:"start_date" binding:"required"`
	EndDate    string     `json:"end_date" binding:"required"`
}

func (r BookExchangeRequest) ToDateRange() (reservation.DateRange, error) {
	return reservation.ParseDateRange(r.StartDate, r.EndDate)
}

func (r BookExchangeRequest) BookingOwner(actorID uuid.UUID) uuid.UUID {
	if r.OwnerID != nil {
		return *r.OwnerID
	}
	return actorID
}

// QuoteRequest prices a candidate range without booking; bound from query
// parameters. The property ID stays a string here because query binding has
// no uuid support; the handler parses it like any path parameter.
type QuoteRequest struct {
	PropertyID string `form:"property_id" binding:"required,uuid"`
	StartDate  string `form:"start_date" binding:"required"`
	EndDate    string `form:"end_date" binding:"required"`
}

func (r QuoteRequest) ToDateRange() (reservation.DateRange, error) {
	return reservation.ParseDateRange(r.StartDate, r.EndDate)
}
