package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingProperty    = errors.New("reservation requires a property")
	ErrMissingOwner       = errors.New("reservation requires an owning party")
	ErrNegativePoints     = errors.New("point cost cannot be negative")
	ErrIllegalTransition  = errors.New("illegal status transition")
	ErrStatusNotInKind    = errors.New("status not valid for reservation kind")
	ErrFixedNotManageable = errors.New("fixed allocations are regenerated, not managed")
)

// Reservation is one booked date range on one property. Fixed allocations,
// ad-hoc bookings and point-funded exchange bookings all share this shape;
// the kind decides which statuses and fields apply. Exchange reservations
// carry the point cost that was charged on creation.
type Reservation struct {
	id         uuid.UUID
	propertyID uuid.UUID
	ownerID    uuid.UUID
	dates      DateRange
	kind       Kind
	status     Status
	points     int64
	createdAt  time.Time
	updatedAt  time.Time
}

func newReservation(propertyID, ownerID uuid.UUID, dates DateRange, kind Kind, status Status, points int64) (*Reservation, error) {
	if propertyID == uuid.Nil {
		return nil, ErrMissingProperty
	}
	if ownerID == uuid.Nil {
		return nil, ErrMissingOwner
	}
	if points < 0 {
		return nil, ErrNegativePoints
	}
	return &Reservation{
		id:         uuid.New(),
		propertyID: propertyID,
		ownerID:    ownerID,
		dates:      dates,
		kind:       kind,
		status:     status,
		points:     points,
	}, nil
}

// NewFixed builds a system-generated yearly allocation for an owned share.
func NewFixed(propertyID, ownerID uuid.UUID, dates DateRange) (*Reservation, error) {
	return newReservation(propertyID, ownerID, dates, KindFixed, StatusFija, 0)
}

// NewAdHoc builds an owner- or admin-initiated booking; it always starts
// pendiente.
func NewAdHoc(propertyID, ownerID uuid.UUID, dates DateRange) (*Reservation, error) {
	return newReservation(propertyID, ownerID, dates, KindAdHoc, StatusPendiente, 0)
}

// NewExchange builds a point-funded booking of any property, charging the
// given point cost.
func NewExchange(propertyID, ownerID uuid.UUID, dates DateRange, points int64) (*Reservation, error) {
	return newReservation(propertyID, ownerID, dates, KindExchange, StatusPendiente, points)
}

func Reconstruct(
	id, propertyID, ownerID uuid.UUID,
	dates DateRange,
	kind Kind,
	status Status,
	points int64,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:         id,
		propertyID: propertyID,
		ownerID:    ownerID,
		dates:      dates,
		kind:       kind,
		status:     status,
		points:     points,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Transition moves the reservation to a new status, refusing anything outside
// the kind's transition table.
func (r *Reservation) Transition(to Status) error {
	if r.kind == KindFixed {
		return ErrFixedNotManageable
	}
	if !IsValidStatus(r.kind, to) {
		return ErrStatusNotInKind
	}
	if !CanTransition(r.kind, r.status, to) {
		return ErrIllegalTransition
	}
	r.status = to
	return nil
}

func (r *Reservation) IsVoid() bool {
	return r.status.IsVoid()
}

// Blocks reports whether this reservation occupies the calendar against the
// candidate range. Conflict checking is kind-agnostic: a fija allocation
// blocks an exchange request and vice versa.
func (r *Reservation) Blocks(candidate DateRange) bool {
	return !r.IsVoid() && r.dates.Overlaps(candidate)
}

func (r *Reservation) ID() uuid.UUID         { return r.id }
func (r *Reservation) PropertyID() uuid.UUID { return r.propertyID }
func (r *Reservation) OwnerID() uuid.UUID    { return r.ownerID }
func (r *Reservation) Dates() DateRange      { return r.dates }
func (r *Reservation) Kind() Kind            { return r.kind }
func (r *Reservation) Status() Status        { return r.status }
func (r *Reservation) Points() int64         { return r.points }
func (r *Reservation) CreatedAt() time.Time  { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time  { return r.updatedAt }

// FindConflicts returns every reservation whose live date range intersects
// the candidate. The caller passes everything booked on the property,
// whatever the kind; the result names the blockers so clients can say why a
// request was refused.
func FindConflicts(existing []*Reservation, candidate DateRange) []*Reservation {
	var conflicts []*Reservation
	for _, r := range existing {
		if r.Blocks(candidate) {
			conflicts = append(conflicts, r)
		}
	}
	return conflicts
}
