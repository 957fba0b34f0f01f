package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type PropertyView struct {
	ID         uuid.UUID   `json:"id"`
	Name       string      `json:"name"`
	PriceCents int64       `json:"price_cents"`
	Shares     []ShareView `json:"shares"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

type ShareView struct {
	Index      int        `json:"index"`
	Status     string     `json:"status"`
	OwnerID    *uuid.UUID `json:"owner_id,omitempty"`
	OwnerName  *string    `json:"owner_name,omitempty"`
	PriceCents int64      `json:"price_cents"`
}

// CalendarEntryView is the kind-agnostic projection the calendar UI renders:
// fixed, ad-hoc and exchange reservations flattened onto one schedule.
// Dates travel as YYYY-MM-DD.
type CalendarEntryView struct {
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

type BalanceView struct {
	OwnerID uuid.UUID `json:"owner_id"`
	Points  int64     `json:"points"`
}

type AuthorizedOwnerView struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
}

type PricingView struct {
	WeekdayPoints int64 `json:"weekday_points"`
	WeekendPoints int64 `json:"weekend_points"`
}

// QuoteView prices a candidate exchange range without booking it.
type QuoteView struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Days      int    `json:"days"`
	Points    int64  `json:"points"`
}
