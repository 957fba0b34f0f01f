package commands

import (
	"context"
	"fmt"
	"time"

	"timeshare-portal/internal/domain/owner"
	"timeshare-portal/internal/domain/reservation"
	"timeshare-portal/internal/infra"
	"timeshare-portal/internal/infra/db"
	"timeshare-portal/internal/pkg/errs"
	"timeshare-portal/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrReservationNotFound = errs.New("reservation not found")
	ErrReservationConflict = errs.New("reservation conflict")
	ErrIllegalTransition   = errs.New("illegal status transition")
	ErrForbidden           = errs.New("actor may not perform this operation")
	ErrValidation          = errs.New("invalid reservation request")
)

// Actor identifies who is performing a write. The workflows do not decide who
// may call them, but deletion rules for non-admins need the identity.
type Actor struct {
	ID   uuid.UUID
	Role owner.Role
}

// BlockingReservation names one reservation that stands in the way of a
// request, for the client to display.
type BlockingReservation struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	Status    string    `json:"status"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
}

// ConflictError carries the blocking set; it unwraps to
// ErrReservationConflict so callers can match it as a sentinel.
type ConflictError struct {
	Blocking []BlockingReservation
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("reservation conflict with %d existing reservation(s)", len(e.Blocking))
}

func (e *ConflictError) Unwrap() error {
	return ErrReservationConflict
}

func newConflictError(blocking []*reservation.Reservation) *ConflictError {
	out := make([]BlockingReservation, len(blocking))
	for i, b := range blocking {
		out[i] = BlockingReservation{
			ID:        b.ID(),
			Kind:      b.Kind().String(),
			Status:    b.Status().String(),
			StartDate: b.Dates().Start().Format(time.DateOnly),
			EndDate:   b.Dates().End().Format(time.DateOnly),
		}
	}
	return &ConflictError{Blocking: out}
}

type CreateReservationResult struct {
	ReservationID uuid.UUID
}

type ReservationCommands interface {
	CreateAdHoc(ctx context.Context, actor Actor, propertyID, bookingOwnerID uuid.UUID, dates reservation.DateRange) (*CreateReservationResult, error)
	SetStatus(ctx context.Context, actor Actor, reservationID uuid.UUID, status reservation.Status) error
	Delete(ctx context.Context, actor Actor, reservationID uuid.UUID) error
}

type reservationCommandsImpl struct {
	reservations ReservationRepository
	exchanges    ExchangeRepository
	properties   PropertyRepository
	owners       OwnerRepository
	pool         *pgxpool.Pool
}

func NewReservationCommands(
	reservations ReservationRepository,
	exchanges ExchangeRepository,
	properties PropertyRepository,
	owners OwnerRepository,
	pool *pgxpool.Pool,
) ReservationCommands {
	return &reservationCommandsImpl{
		reservations: reservations,
		exchanges:    exchanges,
		properties:   properties,
		owners:       owners,
		pool:         pool,
	}
}

// CreateAdHoc books arbitrary dates on a property for an owner (admins book
// on an owner's behalf by passing that owner). The conflict re-query and the
// insert share one transaction, and the storage layer's range-exclusion
// constraint catches whatever slips between two concurrent transactions.
func (r *reservationCommandsImpl) CreateAdHoc(
	ctx context.Context,
	actor Actor,
	propertyID, bookingOwnerID uuid.UUID,
	dates reservation.DateRange,
) (*CreateReservationResult, error) {
	if !actor.Role.IsAdmin() && actor.ID != bookingOwnerID {
		return nil, ErrForbidden
	}

	return shared.RunInTx(ctx, r.pool, func(tx db.DBTX) (*CreateReservationResult, error) {
		if err := r.reservations.LockProperty(ctx, tx, propertyID); err != nil {
			return nil, errs.Mark(err, ErrStorageFailure)
		}
		if _, err := r.properties.FindByID(ctx, tx, propertyID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrPropertyNotFound
			}
			return nil, errs.Mark(err, ErrStorageFailure)
		}
		exists, err := r.owners.ExistsByID(ctx, tx, bookingOwnerID)
		if err != nil {
			return nil, errs.Mark(err, ErrStorageFailure)
		}
		if !exists {
			return nil, ErrOwnerNotFound
		}

		if blocked, err := findConflicts(ctx, tx, r.reservations, r.exchanges, propertyID, dates); err != nil {
			return nil, err
		} else if len(blocked) > 0 {
			return nil, newConflictError(blocked)
		}

		booking, err := reservation.NewAdHoc(propertyID, bookingOwnerID, dates)
		if err != nil {
			return nil, errs.Mark(err, ErrValidation)
		}

		if err := r.reservations.Insert(ctx, tx, booking); err != nil {
			if infra.IsKind(err, infra.KindConflict) || infra.IsKind(err, infra.KindDuplicateKey) {
				return nil, ErrReservationConflict
			}
			return nil, errs.Mark(err, ErrStorageFailure)
		}

		return &CreateReservationResult{ReservationID: booking.ID()}, nil
	})
}

func (r *reservationCommandsImpl) SetStatus(ctx context.Context, actor Actor, reservationID uuid.UUID, status reservation.Status) error {
	if !actor.Role.IsAdmin() {
		// Owners may only cancel their own pending bookings; everything else
		// is an administrator decision.
		if status != reservation.StatusCancelada {
			return ErrForbidden
		}
	}

	_, err := shared.RunInTx(ctx, r.pool, func(tx db.DBTX) (struct{}, error) {
		booking, err := r.reservations.FindByID(ctx, tx, reservationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return struct{}{}, ErrReservationNotFound
			}
			return struct{}{}, errs.Mark(err, ErrStorageFailure)
		}

		if !actor.Role.IsAdmin() && booking.OwnerID() != actor.ID {
			return struct{}{}, ErrForbidden
		}

		if err := booking.Transition(status); err != nil {
			return struct{}{}, errs.Mark(err, ErrIllegalTransition)
		}

		return struct{}{}, r.reservations.UpdateStatus(ctx, tx, reservationID, status)
	})
	return err
}

// Delete removes a reservation outright; there is no soft delete. Non-admins
// may only remove their own ad-hoc bookings while still pendiente.
func (r *reservationCommandsImpl) Delete(ctx context.Context, actor Actor, reservationID uuid.UUID) error {
	_, err := shared.RunInTx(ctx, r.pool, func(tx db.DBTX) (struct{}, error) {
		booking, err := r.reservations.FindByID(ctx, tx, reservationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return struct{}{}, ErrReservationNotFound
			}
			return struct{}{}, errs.Mark(err, ErrStorageFailure)
		}

		if !actor.Role.IsAdmin() {
			if booking.OwnerID() != actor.ID ||
				booking.Kind() != reservation.KindAdHoc ||
				booking.Status() != reservation.StatusPendiente {
				return struct{}{}, ErrForbidden
			}
		}

		return struct{}{}, r.reservations.Delete(ctx, tx, reservationID)
	})
	return err
}

// findConflicts loads everything booked on the property from both stores and
// returns the live overlaps. Called inside the writing transaction so the
// answer comes from the authoritative store, not a stale view.
func findConflicts(
	ctx context.Context,
	tx db.DBTX,
	reservations ReservationRepository,
	exchanges ExchangeRepository,
	propertyID uuid.UUID,
	dates reservation.DateRange,
) ([]*reservation.Reservation, error) {
	booked, err := reservations.ListForProperty(ctx, tx, propertyID)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	exchanged, err := exchanges.ListForProperty(ctx, tx, propertyID)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	return reservation.FindConflicts(append(booked, exchanged...), dates), nil
}
