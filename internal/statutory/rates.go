package statutory

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Rates is the statutory part of a school's payroll configuration.
type Rates struct {
	PFEnabled         bool
	PFEmployeePercent decimal.Decimal
	PFEmployerPercent decimal.Decimal
	PFWageLimit       decimal.Decimal

	ESIEnabled         bool
	ESIEmployeePercent decimal.Decimal
	ESIEmployerPercent decimal.Decimal
	ESIWageLimit       decimal.Decimal

	PTEnabled bool
	PTSlabs   []Slab

	TDSEnabled bool
	TDSSlabs   []Slab
}

// Slab is one closed bracket [Min, Max]; a nil Max leaves it open ended.
// Adjacent slabs may share a boundary value, which then falls into the
// lower slab because lookups take the first match.
// Professional tax slabs use Amount as a flat monthly charge; TDS slabs use
// RatePercent on the part of annual income falling inside the bracket.
type Slab struct {
	Min         decimal.Decimal  `json:"min"`
	Max         *decimal.Decimal `json:"max,omitempty"`
	Amount      decimal.Decimal  `json:"amount"`
	RatePercent decimal.Decimal  `json:"rate_percent"`
}

func (s Slab) contains(v decimal.Decimal) bool {
	if v.LessThan(s.Min) {
		return false
	}
	return s.Max == nil || v.LessThanOrEqual(*s.Max)
}

var ErrInvalidSlabs = errors.New("slabs must be sorted, non-overlapping and non-negative")

// ValidateSlabs checks that slabs ascend without overlap and only the last is open ended.
func ValidateSlabs(slabs []Slab) error {
	for i, s := range slabs {
		if s.Min.IsNegative() || s.Amount.IsNegative() || s.RatePercent.IsNegative() || s.RatePercent.GreaterThan(decimal.NewFromInt(100)) {
			return fmt.Errorf("slab %d: %w", i, ErrInvalidSlabs)
		}
		if s.Max != nil && !s.Max.GreaterThan(s.Min) {
			return fmt.Errorf("slab %d: max must exceed min: %w", i, ErrInvalidSlabs)
		}
		if i == 0 {
			continue
		}
		prev := slabs[i-1]
		if prev.Max == nil {
			return fmt.Errorf("slab %d follows an open ended slab: %w", i, ErrInvalidSlabs)
		}
		if s.Min.LessThan(*prev.Max) {
			return fmt.Errorf("slab %d overlaps slab %d: %w", i, i-1, ErrInvalidSlabs)
		}
	}
	return nil
}
