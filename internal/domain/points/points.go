package points

import (
	"errors"
	"time"

	"timeshare-portal/internal/domain/reservation"
)

var (
	ErrInsufficientPoints = errors.New("insufficient points")
	ErrNegativeAmount     = errors.New("point amount cannot be negative")
	ErrInvalidRates       = errors.New("pricing rates cannot be negative")
)

// PricingTable holds the two per-day rates of the exchange marketplace.
type PricingTable struct {
	WeekdayPoints int64
	WeekendPoints int64
}

func NewPricingTable(weekday, weekend int64) (PricingTable, error) {
	if weekday < 0 || weekend < 0 {
		return PricingTable{}, ErrInvalidRates
	}
	return PricingTable{WeekdayPoints: weekday, WeekendPoints: weekend}, nil
}

// PriceRange sums the per-day rate over every calendar day of the range,
// bounds included. Saturday and Sunday bill the weekend rate. Pure: same
// inputs, same cost.
func (t PricingTable) PriceRange(r reservation.DateRange) int64 {
	var total int64
	r.EachDay(func(day time.Time) {
		switch day.Weekday() {
		case time.Saturday, time.Sunday:
			total += t.WeekendPoints
		default:
			total += t.WeekdayPoints
		}
	})
	return total
}

// Balance is one owner's guest-point holding. Operations never yield a
// negative balance.
type Balance struct {
	amount int64
}

func NewBalance(amount int64) (Balance, error) {
	if amount < 0 {
		return Balance{}, ErrNegativeAmount
	}
	return Balance{amount: amount}, nil
}

func (b Balance) Amount() int64 {
	return b.amount
}

// CanAfford reports whether a debit of the given cost would succeed.
func (b Balance) CanAfford(cost int64) bool {
	return cost >= 0 && cost <= b.amount
}

// Debit subtracts cost and returns the new balance, failing with
// ErrInsufficientPoints before any state would change.
func (b Balance) Debit(cost int64) (Balance, error) {
	if cost < 0 {
		return b, ErrNegativeAmount
	}
	if cost > b.amount {
		return b, ErrInsufficientPoints
	}
	return Balance{amount: b.amount - cost}, nil
}

// Credit adds amount; used by the refund-on-void policy.
func (b Balance) Credit(amount int64) (Balance, error) {
	if amount < 0 {
		return b, ErrNegativeAmount
	}
	return Balance{amount: b.amount + amount}, nil
}
