//go:build unit || e2e

package builder

import (
	"time"

	domres "timeshare-portal/internal/domain/reservation"
	reqdto "timeshare-portal/internal/handler/dto/request"
	"timeshare-portal/internal/usecase/commands"
	"timeshare-portal/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	PropertyID uuid.UUID
	OwnerID    uuid.UUID
	OwnerName  string
	StartDate  string
	EndDate    string
	Kind       domres.Kind
	Status     domres.Status
	Points     int64
	CreatedAt  time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		PropertyID: uuid.New(),
		OwnerID:    uuid.New(),
		OwnerName:  "Ana Garcia",
		StartDate:  "2025-07-04",
		EndDate:    "2025-07-06",
		Kind:       domres.KindAdHoc,
		Status:     domres.StatusPendiente,
		Points:     0,
		CreatedAt:  time.Now(),
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReservationBuilder) BuildDomain() (*domres.Reservation, error) {
	dates, err := domres.ParseDateRange(r.StartDate, r.EndDate)
	if err != nil {
		return nil, err
	}
	switch r.Kind {
	case domres.KindFixed:
		return domres.NewFixed(r.PropertyID, r.OwnerID, dates)
	case domres.KindExchange:
		return domres.NewExchange(r.PropertyID, r.OwnerID, dates, r.Points)
	default:
		return domres.NewAdHoc(r.PropertyID, r.OwnerID, dates)
	}
}

func (r *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		PropertyID: r.PropertyID,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
	}
}

func (r *ReservationBuilder) BuildBookExchangeRequestDTO() reqdto.BookExchangeRequest {
	return reqdto.BookExchangeRequest{
		PropertyID: r.PropertyID,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
	}
}

func (r *ReservationBuilder) BuildCalendarEntryView() *queries.CalendarEntryView {
	view := &queries.CalendarEntryView{
		ID:         uuid.New(),
		PropertyID: r.PropertyID,
		OwnerID:    r.OwnerID,
		OwnerName:  r.OwnerName,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		Kind:       r.Kind.String(),
		Status:     r.Status.String(),
		CreatedAt:  r.CreatedAt,
	}
	if r.Kind == domres.KindExchange {
		points := r.Points
		view.Points = &points
	}
	return view
}

func (r *ReservationBuilder) BuildBlocking() commands.BlockingReservation {
	return commands.BlockingReservation{
		ID:        uuid.New(),
		Kind:      r.Kind.String(),
		Status:    r.Status.String(),
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}
}

// Fluent builder methods
func (r *ReservationBuilder) WithPropertyID(propertyID uuid.UUID) *ReservationBuilder {
	r.PropertyID = propertyID
	return r
}

func (r *ReservationBuilder) WithOwnerID(ownerID uuid.UUID) *ReservationBuilder {
	r.OwnerID = ownerID
	return r
}

func (r *ReservationBuilder) WithOwnerName(name string) *ReservationBuilder {
	r.OwnerName = name
	return r
}

func (r *ReservationBuilder) WithDates(start, end string) *ReservationBuilder {
	r.StartDate = start
	r.EndDate = end
	return r
}

func (r *ReservationBuilder) WithStatus(status domres.Status) *ReservationBuilder {
	r.Status = status
	return r
}

func (r *ReservationBuilder) WithPoints(points int64) *ReservationBuilder {
	r.Points = points
	return r
}

func (r *ReservationBuilder) AsFixed() *ReservationBuilder {
	r.Kind = domres.KindFixed
	r.Status = domres.StatusFija
	return r
}

func (r *ReservationBuilder) AsExchange(points int64) *ReservationBuilder {
	r.Kind = domres.KindExchange
	r.Status = domres.StatusPendiente
	r.Points = points
	return r
}
