package timeshare

import (
	"timeshare-portal/internal/domain/reservation"

	"github.com/google/uuid"
)

// FixedAllocation is one desired fija reservation derived from the share
// registry: who holds which fortnight of which year.
type FixedAllocation struct {
	PropertyID uuid.UUID
	OwnerID    uuid.UUID
	ShareIndex int
	Dates      reservation.DateRange
}

// GenerateFixedAllocations derives the full desired set of fija reservations
// for a property: one per owned share per year in [fromYear, fromYear+
// horizonYears). The result is deterministic for a given registry state, so
// rerunning the generator and upserting on (property, owner, start date)
// never duplicates; anything persisted beyond this set is stale and must be
// reconciled away.
func GenerateFixedAllocations(p *Property, fromYear, horizonYears int) []FixedAllocation {
	if horizonYears <= 0 {
		return nil
	}
	var out []FixedAllocation
	for _, share := range p.Shares() {
		if !share.IsOwned() {
			continue
		}
		for year := fromYear; year < fromYear+horizonYears; year++ {
			out = append(out, FixedAllocation{
				PropertyID: p.ID(),
				OwnerID:    *share.OwnerID(),
				ShareIndex: share.Index(),
				Dates:      share.Fortnight().ForYear(year),
			})
		}
	}
	return out
}
