package commands

import (
	"context"

	"timeshare-portal/internal/domain/points"
	"timeshare-portal/internal/domain/reservation"
	"timeshare-portal/internal/domain/timeshare"
	"timeshare-portal/internal/infra/db"

	"github.com/google/uuid"
)

// Ports for the write side. Every method takes the DBTX it must run on so a
// workflow can put its re-query, debit and insert inside one transaction.

type PropertyRepository interface {
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*timeshare.Property, error)
	Create(ctx context.Context, dbtx db.DBTX, p *timeshare.Property) error
	UpdatePrice(ctx context.Context, dbtx db.DBTX, p *timeshare.Property) error
	UpdateShare(ctx context.Context, dbtx db.DBTX, propertyID uuid.UUID, share timeshare.Share) error
}

type ReservationRepository interface {
	// ListForProperty returns every ad-hoc and fixed reservation booked on
	// the property, void or not.
	ListForProperty(ctx context.Context, dbtx db.DBTX, propertyID uuid.UUID) ([]*reservation.Reservation, error)
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*reservation.Reservation, error)
	Insert(ctx context.Context, dbtx db.DBTX, r *reservation.Reservation) error
	// LockProperty serializes every writer touching the property's calendar,
	// ad-hoc and exchange alike, for the rest of the transaction.
	LockProperty(ctx context.Context, dbtx db.DBTX, propertyID uuid.UUID) error
	// UpsertFixed writes one fija row per allocation, keyed on
	// (property_id, owner_id, start_date); rerunning never duplicates.
	UpsertFixed(ctx context.Context, dbtx db.DBTX, allocations []timeshare.FixedAllocation) error
	// DeleteStaleFixed removes fija rows for the property starting at or
	// after the horizon start that no allocation in keep explains.
	DeleteStaleFixed(ctx context.Context, dbtx db.DBTX, propertyID uuid.UUID, keep []timeshare.FixedAllocation, fromYear int) (int64, error)
	UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status reservation.Status) error
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}

type ExchangeRepository interface {
	ListForProperty(ctx context.Context, dbtx db.DBTX, propertyID uuid.UUID) ([]*reservation.Reservation, error)
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*reservation.Reservation, error)
	Insert(ctx context.Context, dbtx db.DBTX, r *reservation.Reservation) error
	UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status reservation.Status) error
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}

type PointsRepository interface {
	Balance(ctx context.Context, dbtx db.DBTX, ownerID uuid.UUID) (int64, error)
	// Debit subtracts amount in a single conditional write; it fails with
	// KindConflict when the balance cannot cover it, so no negative balance
	// is ever persisted even under concurrent debits.
	Debit(ctx context.Context, dbtx db.DBTX, ownerID uuid.UUID, amount int64) (int64, error)
	Credit(ctx context.Context, dbtx db.DBTX, ownerID uuid.UUID, amount int64) (int64, error)
}

type PricingRepository interface {
	Get(ctx context.Context, dbtx db.DBTX) (points.PricingTable, error)
}

type OwnerRepository interface {
	ExistsByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (bool, error)
}
