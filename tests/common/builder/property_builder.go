//go:build unit || e2e

package builder

import (
	"time"

	"timeshare-portal/internal/domain/timeshare"
	reqdto "timeshare-portal/internal/handler/dto/request"
	"timeshare-portal/internal/usecase/queries"

	"github.com/google/uuid"
)

type PropertyBuilder struct {
	Name       string
	PriceCents int64
	ShareOwner *uuid.UUID
	ShareIndex int
	ShareKind  timeshare.AcquisitionKind
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewPropertyBuilder() *PropertyBuilder {
	now := time.Now()
	return &PropertyBuilder{
		Name:       "Villa del Mar",
		PriceCents: 100_000_00,
		ShareIndex: 1,
		ShareKind:  timeshare.AcquireComprar,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (p *PropertyBuilder) With(mutate func(*PropertyBuilder)) *PropertyBuilder {
	mutate(p)
	return p
}

// Build methods
func (p *PropertyBuilder) BuildDomain() (*timeshare.Property, error) {
	return timeshare.NewProperty(p.Name, p.PriceCents)
}

func (p *PropertyBuilder) BuildCreateRequestDTO() reqdto.CreatePropertyRequest {
	return reqdto.CreatePropertyRequest{
		Name:       p.Name,
		PriceCents: p.PriceCents,
	}
}

func (p *PropertyBuilder) BuildAssignRequestDTO() reqdto.AssignShareRequest {
	return reqdto.AssignShareRequest{
		OwnerID: p.ShareOwner,
		Kind:    string(p.ShareKind),
	}
}

func (p *PropertyBuilder) BuildView() *queries.PropertyView {
	id := uuid.New()
	sharePrice := p.PriceCents / int64(timeshare.ShareCount)
	shares := make([]queries.ShareView, 0, timeshare.ShareCount)
	for i := 1; i <= timeshare.ShareCount; i++ {
		share := queries.ShareView{
			Index:      i,
			Status:     "disponible",
			PriceCents: sharePrice,
		}
		if p.ShareOwner != nil && i == p.ShareIndex {
			ownerID := *p.ShareOwner
			share.OwnerID = &ownerID
			if p.ShareKind == timeshare.AcquireComprar {
				share.Status = "vendida"
			} else {
				share.Status = "reservada"
			}
		}
		shares = append(shares, share)
	}
	return &queries.PropertyView{
		ID:         id,
		Name:       p.Name,
		PriceCents: p.PriceCents,
		Shares:     shares,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

// Fluent builder methods
func (p *PropertyBuilder) WithName(name string) *PropertyBuilder {
	p.Name = name
	return p
}

func (p *PropertyBuilder) WithPriceCents(priceCents int64) *PropertyBuilder {
	p.PriceCents = priceCents
	return p
}

func (p *PropertyBuilder) WithShareOwner(index int, ownerID uuid.UUID, kind timeshare.AcquisitionKind) *PropertyBuilder {
	p.ShareIndex = index
	p.ShareOwner = &ownerID
	p.ShareKind = kind
	return p
}
