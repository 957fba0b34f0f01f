package commands

import (
	"context"
	"fmt"
	"time"

	"timeshare-portal/internal/domain/points"
	"timeshare-portal/internal/domain/reservation"
	"timeshare-portal/internal/infra"
	"timeshare-portal/internal/infra/db"
	"timeshare-portal/internal/pkg/config"
	"timeshare-portal/internal/pkg/errs"
	"timeshare-portal/internal/usecase/queries"
	"timeshare-portal/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrInsufficientPoints = errs.New("insufficient points")

// InsufficientPointsError reports the price against the balance so the client
// can tell the owner how far short they are; unwraps to the sentinel.
type InsufficientPointsError struct {
	Price   int64
	Balance int64
}

func (e *InsufficientPointsError) Error() string {
	return fmt.Sprintf("insufficient points: need %d, have %d", e.Price, e.Balance)
}

func (e *InsufficientPointsError) Unwrap() error {
	return ErrInsufficientPoints
}

type BookExchangeResult struct {
	ReservationID uuid.UUID
	Points        int64
	NewBalance    int64
}

type ExchangeCommands interface {
	// Quote prices a candidate range without writing anything.
	Quote(ctx context.Context, propertyID uuid.UUID, dates reservation.DateRange) (*queries.QuoteView, error)
	Book(ctx context.Context, actor Actor, propertyID, bookingOwnerID uuid.UUID, dates reservation.DateRange) (*BookExchangeResult, error)
	SetStatus(ctx context.Context, actor Actor, reservationID uuid.UUID, status reservation.Status) error
	Delete(ctx context.Context, actor Actor, reservationID uuid.UUID) error
}

type exchangeCommandsImpl struct {
	exchanges    ExchangeRepository
	reservations ReservationRepository
	properties   PropertyRepository
	owners       OwnerRepository
	ledger       PointsRepository
	pricing      PricingRepository
	pool         *pgxpool.Pool
	refundOnVoid bool
}

func NewExchangeCommands(
	exchanges ExchangeRepository,
	reservations ReservationRepository,
	properties PropertyRepository,
	owners OwnerRepository,
	ledger PointsRepository,
	pricing PricingRepository,
	pool *pgxpool.Pool,
	cfg config.Config,
) ExchangeCommands {
	return &exchangeCommandsImpl{
		exchanges:    exchanges,
		reservations: reservations,
		properties:   properties,
		owners:       owners,
		ledger:       ledger,
		pricing:      pricing,
		pool:         pool,
		refundOnVoid: cfg.Exchange.RefundOnVoid,
	}
}

func (e *exchangeCommandsImpl) Quote(ctx context.Context, propertyID uuid.UUID, dates reservation.DateRange) (*queries.QuoteView, error) {
	if _, err := e.properties.FindByID(ctx, e.pool, propertyID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, errs.Mark(err, ErrStorageFailure)
	}

	table, err := e.pricing.Get(ctx, e.pool)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}

	return &queries.QuoteView{
		StartDate: dates.Start().Format(time.DateOnly),
		EndDate:   dates.End().Format(time.DateOnly),
		Days:      dates.Days(),
		Points:    table.PriceRange(dates),
	}, nil
}

// Book runs the whole exchange workflow, from conflict check through debit
// and insert, inside one transaction, so an abandoned request can never leave
// a debit without its reservation. Any property may be booked; share ownership is
// irrelevant on the exchange marketplace.
func (e *exchangeCommandsImpl) Book(
	ctx context.Context,
	actor Actor,
	propertyID, bookingOwnerID uuid.UUID,
	dates reservation.DateRange,
) (*BookExchangeResult, error) {
	if !actor.Role.IsAdmin() && actor.ID != bookingOwnerID {
		return nil, ErrForbidden
	}

	return shared.RunInTx(ctx, e.pool, func(tx db.DBTX) (*BookExchangeResult, error) {
		if err := e.reservations.LockProperty(ctx, tx, propertyID); err != nil {
			return nil, errs.Mark(err, ErrStorageFailure)
		}
		if _, err := e.properties.FindByID(ctx, tx, propertyID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrPropertyNotFound
			}
			return nil, errs.Mark(err, ErrStorageFailure)
		}

		if blocked, err := findConflicts(ctx, tx, e.reservations, e.exchanges, propertyID, dates); err != nil {
			return nil, err
		} else if len(blocked) > 0 {
			return nil, newConflictError(blocked)
		}

		table, err := e.pricing.Get(ctx, tx)
		if err != nil {
			return nil, errs.Mark(err, ErrStorageFailure)
		}
		price := table.PriceRange(dates)

		balance, err := e.ledger.Balance(ctx, tx, bookingOwnerID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrOwnerNotFound
			}
			return nil, errs.Mark(err, ErrStorageFailure)
		}

		current, err := points.NewBalance(balance)
		if err != nil {
			return nil, errs.Mark(err, ErrStorageFailure)
		}
		if !current.CanAfford(price) {
			return nil, &InsufficientPointsError{Price: price, Balance: balance}
		}

		// The conditional write re-checks the balance, so a concurrent debit
		// between the read above and here still cannot overdraw.
		newBalance, err := e.ledger.Debit(ctx, tx, bookingOwnerID, price)
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return nil, &InsufficientPointsError{Price: price, Balance: balance}
			}
			return nil, errs.Mark(err, ErrStorageFailure)
		}

		booking, err := reservation.NewExchange(propertyID, bookingOwnerID, dates, price)
		if err != nil {
			return nil, errs.Mark(err, ErrValidation)
		}

		if err := e.exchanges.Insert(ctx, tx, booking); err != nil {
			if infra.IsKind(err, infra.KindConflict) || infra.IsKind(err, infra.KindDuplicateKey) {
				return nil, ErrReservationConflict
			}
			return nil, errs.Mark(err, ErrStorageFailure)
		}

		return &BookExchangeResult{
			ReservationID: booking.ID(),
			Points:        price,
			NewBalance:    newBalance,
		}, nil
	})
}

// SetStatus transitions an exchange reservation. When the refund policy is
// on, a move into a void status credits the charged points back in the same
// transaction as the status write.
func (e *exchangeCommandsImpl) SetStatus(ctx context.Context, actor Actor, reservationID uuid.UUID, status reservation.Status) error {
	if !actor.Role.IsAdmin() && status != reservation.StatusCancelada {
		return ErrForbidden
	}

	_, err := shared.RunInTx(ctx, e.pool, func(tx db.DBTX) (struct{}, error) {
		booking, err := e.exchanges.FindByID(ctx, tx, reservationID)
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

		if err := e.exchanges.UpdateStatus(ctx, tx, reservationID, status); err != nil {
			return struct{}{}, errs.Mark(err, ErrStorageFailure)
		}

		if e.refundOnVoid && status.IsVoid() && booking.Points() > 0 {
			if _, err := e.ledger.Credit(ctx, tx, booking.OwnerID(), booking.Points()); err != nil {
				return struct{}{}, errs.Mark(err, ErrStorageFailure)
			}
		}
		return struct{}{}, nil
	})
	return err
}

func (e *exchangeCommandsImpl) Delete(ctx context.Context, actor Actor, reservationID uuid.UUID) error {
	_, err := shared.RunInTx(ctx, e.pool, func(tx db.DBTX) (struct{}, error) {
		booking, err := e.exchanges.FindByID(ctx, tx, reservationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return struct{}{}, ErrReservationNotFound
			}
			return struct{}{}, errs.Mark(err, ErrStorageFailure)
		}

		if !actor.Role.IsAdmin() {
			if booking.OwnerID() != actor.ID || booking.Status() != reservation.StatusPendiente {
				return struct{}{}, ErrForbidden
			}
		}

		return struct{}{}, e.exchanges.Delete(ctx, tx, reservationID)
	})
	return err
}
