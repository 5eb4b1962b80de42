package pricing

import (
	"fmt"
	"math"
	"strings"

	"github.com/diillson/produce-finops-dashboard-go/internal/domain/entity"
)

// CostSource selects where the actual cost per edible cup comes from.
type CostSource string

const (
	// CostPrecomputed trusts the CupEquivalentPrice column and derives only when it is blank.
	CostPrecomputed CostSource = "precomputed"
	// CostDerived always applies retail_price * cup_size / yield.
	CostDerived CostSource = "derived"
)

// DefaultPriceTolerance is the maximum difference accepted by the price check.
const DefaultPriceTolerance = 0.01

// ParseCostSource validates a cost source name; blank means precomputed.
func ParseCostSource(s string) (CostSource, error) {
	switch CostSource(strings.ToLower(strings.TrimSpace(s))) {
	case "", CostPrecomputed:
		return CostPrecomputed, nil
	case CostDerived:
		return CostDerived, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCostSource, s)
}

// ValidateYield rejects yields outside (0, 1]. It must run before any division.
func ValidateYield(yield float64) error {
	if math.IsNaN(yield) || yield <= 0 || yield > 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidYield, yield)
	}
	return nil
}

// ActualCost computes retail_price * cup_size / yield.
func ActualCost(retailPrice, cupSize, yield float64) (float64, error) {
	if err := ValidateYield(yield); err != nil {
		return 0, err
	}
	if !isFinite(retailPrice) || !isFinite(cupSize) {
		return 0, ErrNonFiniteValue
	}
	if retailPrice < 0 || cupSize < 0 {
		return 0, ErrNegativeValue
	}
	return retailPrice * cupSize / yield, nil
}

// DeriveRecord converts a cleaned raw row into a PriceRecord with its cost columns filled.
// The tier is assigned later, once the quartiles of the whole column are known.
func DeriveRecord(row entity.RawPriceRow, source CostSource, tolerance float64) (entity.PriceRecord, error) {
	if len(row.ParseErrors) > 0 {
		return entity.PriceRecord{}, fmt.Errorf("unparsable cells: %s", strings.Join(row.ParseErrors, "; "))
	}
	if row.Yield == nil {
		return entity.PriceRecord{}, fmt.Errorf("yield: %w", ErrInvalidYield)
	}
	if err := ValidateYield(*row.Yield); err != nil {
		return entity.PriceRecord{}, err
	}
	if row.RetailPrice == nil {
		return entity.PriceRecord{}, fmt.Errorf("retail price: %w", ErrMissingValue)
	}
	if row.CupEquivalentSize == nil {
		return entity.PriceRecord{}, fmt.Errorf("cup equivalent size: %w", ErrMissingValue)
	}

	calculated, err := ActualCost(*row.RetailPrice, *row.CupEquivalentSize, *row.Yield)
	if err != nil {
		return entity.PriceRecord{}, err
	}

	record := entity.PriceRecord{
		Item:               row.Fruit,
		Form:               row.Form,
		RetailPrice:        *row.RetailPrice,
		RetailPriceUnit:    row.RetailPriceUnit,
		Yield:              *row.Yield,
		CupEquivalentSize:  *row.CupEquivalentSize,
		CupEquivalentUnit:  row.CupEquivalentUnit,
		CupEquivalentPrice: row.CupEquivalentPrice,
		CalculatedCost:     calculated,
		ActualCost:         calculated,
	}

	if row.CupEquivalentPrice != nil {
		precomputed := *row.CupEquivalentPrice
		if !isFinite(precomputed) {
			return entity.PriceRecord{}, fmt.Errorf("cup equivalent price: %w", ErrNonFiniteValue)
		}
		if precomputed < 0 {
			return entity.PriceRecord{}, fmt.Errorf("cup equivalent price: %w", ErrNegativeValue)
		}
		record.PriceCheck = math.Abs(calculated-precomputed) < tolerance
		if source == CostPrecomputed {
			record.ActualCost = precomputed
		}
	}

	return record, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
