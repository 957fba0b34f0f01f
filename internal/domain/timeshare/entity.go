package timeshare

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidShareIndex    = errors.New("share index must be between 1 and 4")
	ErrInvalidAcquisition   = errors.New("invalid acquisition kind")
	ErrShareOwnerMismatch   = errors.New("share owner does not match status")
	ErrInvalidPrice         = errors.New("property price must be positive")
	ErrShareAlreadyAssigned = errors.New("share already has an owner")
)

// Share is one of the four fixed fractional interests in a property. The
// owner reference and status move together: disponible means (and only
// means) no owner.
type Share struct {
	index      int
	status     ShareStatus
	ownerID    *uuid.UUID
	priceCents int64
	fortnight  Fortnight
}

func (s Share) Index() int           { return s.index }
func (s Share) Status() ShareStatus  { return s.status }
func (s Share) OwnerID() *uuid.UUID  { return s.ownerID }
func (s Share) PriceCents() int64    { return s.priceCents }
func (s Share) Fortnight() Fortnight { return s.fortnight }

func (s Share) IsOwned() bool {
	return s.ownerID != nil
}

// Property aggregates the four shares. Share prices are never set directly;
// they follow the property price at a fixed 25% each.
type Property struct {
	id         uuid.UUID
	name       string
	priceCents int64
	shares     [ShareCount]Share
	createdAt  time.Time
	updatedAt  time.Time
}

func NewProperty(name string, priceCents int64) (*Property, error) {
	if priceCents <= 0 {
		return nil, ErrInvalidPrice
	}
	p := &Property{
		id:         uuid.New(),
		name:       name,
		priceCents: priceCents,
	}
	for i := 0; i < ShareCount; i++ {
		p.shares[i] = Share{
			index:      i + 1,
			status:     ShareDisponible,
			priceCents: sharePrice(priceCents),
			fortnight:  DefaultFortnights[i],
		}
	}
	return p, nil
}

func ReconstructProperty(
	id uuid.UUID,
	name string,
	priceCents int64,
	shares [ShareCount]Share,
	createdAt, updatedAt time.Time,
) *Property {
	return &Property{
		id:         id,
		name:       name,
		priceCents: priceCents,
		shares:     shares,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func ReconstructShare(index int, status ShareStatus, ownerID *uuid.UUID, priceCents int64) (Share, error) {
	if index < 1 || index > ShareCount {
		return Share{}, ErrInvalidShareIndex
	}
	if (status == ShareDisponible) != (ownerID == nil) {
		return Share{}, ErrShareOwnerMismatch
	}
	return Share{
		index:      index,
		status:     status,
		ownerID:    ownerID,
		priceCents: priceCents,
		fortnight:  DefaultFortnights[index-1],
	}, nil
}

func (p *Property) ID() uuid.UUID        { return p.id }
func (p *Property) Name() string         { return p.name }
func (p *Property) PriceCents() int64    { return p.priceCents }
func (p *Property) CreatedAt() time.Time { return p.createdAt }
func (p *Property) UpdatedAt() time.Time { return p.updatedAt }

func (p *Property) Shares() []Share {
	out := make([]Share, ShareCount)
	copy(out, p.shares[:])
	return out
}

func (p *Property) Share(index int) (Share, error) {
	if index < 1 || index > ShareCount {
		return Share{}, ErrInvalidShareIndex
	}
	return p.shares[index-1], nil
}

// SetPrice updates the property price and recomputes every share price; the
// shares have no price of their own.
func (p *Property) SetPrice(priceCents int64) error {
	if priceCents <= 0 {
		return ErrInvalidPrice
	}
	p.priceCents = priceCents
	for i := range p.shares {
		p.shares[i].priceCents = sharePrice(priceCents)
	}
	return nil
}

// SetShareOwner assigns or clears a share. Assigning with reservar marks the
// share reservada, with comprar vendida; clearing forces disponible. The
// owner/status invariant is enforced here, at write time.
func (p *Property) SetShareOwner(index int, ownerID *uuid.UUID, kind AcquisitionKind) error {
	if index < 1 || index > ShareCount {
		return ErrInvalidShareIndex
	}
	share := &p.shares[index-1]

	if ownerID == nil {
		share.ownerID = nil
		share.status = ShareDisponible
		return nil
	}

	if !kind.IsValid() {
		return ErrInvalidAcquisition
	}
	id := *ownerID
	share.ownerID = &id
	share.status = kind.shareStatus()
	return nil
}

func sharePrice(propertyPriceCents int64) int64 {
	return int64(float64(propertyPriceCents) * SharePriceFraction)
}
