package commands

import (
	"context"
	"log/slog"

	"timeshare-portal/internal/domain/timeshare"
	"timeshare-portal/internal/infra"
	"timeshare-portal/internal/infra/db"
	"timeshare-portal/internal/pkg/clock"
	"timeshare-portal/internal/pkg/config"
	"timeshare-portal/internal/pkg/errs"
	"timeshare-portal/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrPropertyNotFound   = errs.New("property not found")
	ErrOwnerNotFound      = errs.New("owner not found")
	ErrInvalidShare       = errs.New("invalid share reference")
	ErrStorageFailure     = errs.New("storage operation failed")
	ErrInvalidPrice       = errs.New("invalid property price")
	ErrInvalidAcquisition = errs.New("invalid acquisition kind")
)

type AssignShareResult struct {
	PropertyID   uuid.UUID
	ShareIndex   int
	Status       string
	Upserted     int
	StaleRemoved int64
	// AllocationFailed is set when the share assignment itself committed but
	// regenerating fixed allocations did not. The allocations catch up on the
	// next assignment or an explicit regeneration.
	AllocationFailed bool
}

type ShareCommands interface {
	CreateProperty(ctx context.Context, name string, priceCents int64) (uuid.UUID, error)
	UpdatePropertyPrice(ctx context.Context, propertyID uuid.UUID, priceCents int64) error
	AssignShare(ctx context.Context, propertyID uuid.UUID, shareIndex int, ownerID *uuid.UUID, kind timeshare.AcquisitionKind) (*AssignShareResult, error)
	RegenerateAllocations(ctx context.Context, propertyID uuid.UUID) (*AssignShareResult, error)
}

type shareCommandsImpl struct {
	properties   PropertyRepository
	reservations ReservationRepository
	owners       OwnerRepository
	pool         *pgxpool.Pool
	clock        clock.Clock
	allocation   config.AllocationConfig
}

func NewShareCommands(
	properties PropertyRepository,
	reservations ReservationRepository,
	owners OwnerRepository,
	pool *pgxpool.Pool,
	clock clock.Clock,
	cfg config.Config,
) ShareCommands {
	return &shareCommandsImpl{
		properties:   properties,
		reservations: reservations,
		owners:       owners,
		pool:         pool,
		clock:        clock,
		allocation:   cfg.Allocation,
	}
}

func (s *shareCommandsImpl) CreateProperty(ctx context.Context, name string, priceCents int64) (uuid.UUID, error) {
	property, err := timeshare.NewProperty(name, priceCents)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidPrice)
	}

	_, err = shared.RunInTx(ctx, s.pool, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, s.properties.Create(ctx, tx, property)
	})
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrStorageFailure)
	}
	return property.ID(), nil
}

// UpdatePropertyPrice rewrites the property price; share prices follow as a
// fixed 25% each and are persisted in the same transaction.
func (s *shareCommandsImpl) UpdatePropertyPrice(ctx context.Context, propertyID uuid.UUID, priceCents int64) error {
	_, err := shared.RunInTx(ctx, s.pool, func(tx db.DBTX) (struct{}, error) {
		property, err := s.properties.FindByID(ctx, tx, propertyID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return struct{}{}, ErrPropertyNotFound
			}
			return struct{}{}, errs.Mark(err, ErrStorageFailure)
		}

		if err := property.SetPrice(priceCents); err != nil {
			return struct{}{}, errs.Mark(err, ErrInvalidPrice)
		}

		return struct{}{}, s.properties.UpdatePrice(ctx, tx, property)
	})
	return err
}

// AssignShare sets or clears a share's owner. The assignment commits on its
// own; fixed-allocation regeneration follows in a second transaction and its
// failure is reported, not fatal, so a broken allocation row can never hold a
// sale hostage.
func (s *shareCommandsImpl) AssignShare(
	ctx context.Context,
	propertyID uuid.UUID,
	shareIndex int,
	ownerID *uuid.UUID,
	kind timeshare.AcquisitionKind,
) (*AssignShareResult, error) {
	if ownerID != nil && !kind.IsValid() {
		return nil, ErrInvalidAcquisition
	}

	property, err := shared.RunInTx(ctx, s.pool, func(tx db.DBTX) (*timeshare.Property, error) {
		property, err := s.properties.FindByID(ctx, tx, propertyID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrPropertyNotFound
			}
			return nil, errs.Mark(err, ErrStorageFailure)
		}

		if ownerID != nil {
			exists, err := s.owners.ExistsByID(ctx, tx, *ownerID)
			if err != nil {
				return nil, errs.Mark(err, ErrStorageFailure)
			}
			if !exists {
				return nil, ErrOwnerNotFound
			}
		}

		if err := property.SetShareOwner(shareIndex, ownerID, kind); err != nil {
			return nil, errs.Mark(err, ErrInvalidShare)
		}

		share, err := property.Share(shareIndex)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidShare)
		}
		if err := s.properties.UpdateShare(ctx, tx, propertyID, share); err != nil {
			return nil, errs.Mark(err, ErrStorageFailure)
		}
		return property, nil
	})
	if err != nil {
		return nil, err
	}

	share, _ := property.Share(shareIndex)
	result := &AssignShareResult{
		PropertyID: propertyID,
		ShareIndex: shareIndex,
		Status:     share.Status().String(),
	}

	regen, regenErr := s.reconcileAllocations(ctx, property)
	if regenErr != nil {
		slog.Warn("fixed allocation regeneration failed; share assignment kept",
			"property_id", propertyID,
			"share_index", shareIndex,
			"error", regenErr.Error())
		result.AllocationFailed = true
		return result, nil
	}
	result.Upserted = regen.Upserted
	result.StaleRemoved = regen.StaleRemoved
	return result, nil
}

// RegenerateAllocations reruns the reconciliation for a property without
// touching any share, for recovery after a reported allocation failure.
func (s *shareCommandsImpl) RegenerateAllocations(ctx context.Context, propertyID uuid.UUID) (*AssignShareResult, error) {
	property, err := shared.RunInTx(ctx, s.pool, func(tx db.DBTX) (*timeshare.Property, error) {
		property, err := s.properties.FindByID(ctx, tx, propertyID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrPropertyNotFound
			}
			return nil, errs.Mark(err, ErrStorageFailure)
		}
		return property, nil
	})
	if err != nil {
		return nil, err
	}

	regen, err := s.reconcileAllocations(ctx, property)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	regen.PropertyID = propertyID
	return regen, nil
}

// reconcileAllocations regenerates the full desired fija set for a property
// and removes every future fija row the current registry no longer explains.
// Delete and upsert run in one transaction: the calendar never shows a half
// reconciled state. Stale rows go first; when a share moves from one owner to
// another, the new owner's rows land on the same fortnights the old owner's
// rows still occupy, and the exclusion constraint would reject the insert
// while they remain.
func (s *shareCommandsImpl) reconcileAllocations(ctx context.Context, property *timeshare.Property) (*AssignShareResult, error) {
	fromYear := s.clock.Now().UTC().Year()
	desired := timeshare.GenerateFixedAllocations(property, fromYear, s.allocation.HorizonYears)

	return shared.RunInTx(ctx, s.pool, func(tx db.DBTX) (*AssignShareResult, error) {
		if err := s.reservations.LockProperty(ctx, tx, property.ID()); err != nil {
			return nil, err
		}
		removed, err := s.reservations.DeleteStaleFixed(ctx, tx, property.ID(), desired, fromYear)
		if err != nil {
			return nil, err
		}
		if err := s.reservations.UpsertFixed(ctx, tx, desired); err != nil {
			return nil, err
		}
		return &AssignShareResult{
			PropertyID:   property.ID(),
			Upserted:     len(desired),
			StaleRemoved: removed,
		}, nil
	})
}
