package pricing

import (
	"math"
	"sort"

	"github.com/diillson/produce-finops-dashboard-go/internal/domain/entity"
)

// Percentile returns the p-quantile (0..1) of an ascending slice using linear
// interpolation between closest ranks: position = p * (n - 1).
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	pos := p * float64(n-1)
	lower := int(math.Floor(pos))
	upper := lower + 1
	if upper >= n {
		return sorted[lower]
	}
	frac := pos - float64(lower)
	return sorted[lower] + (sorted[upper]-sorted[lower])*frac
}

// sortedCopy devolve uma cópia ordenada; o slice original não é alterado.
func sortedCopy(values []float64) []float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return sorted
}

// Quartiles computes the 25th, 50th and 75th percentiles of a cost column.
func Quartiles(costs []float64) entity.Thresholds {
	sorted := sortedCopy(costs)
	return entity.Thresholds{
		Q1: Percentile(sorted, 0.25),
		Q2: Percentile(sorted, 0.50),
		Q3: Percentile(sorted, 0.75),
	}
}

// Classify assigns a tier to every record using the given thresholds and returns
// the classified copies. Input records are not modified.
func Classify(records []entity.PriceRecord, th entity.Thresholds) []entity.PriceRecord {
	out := make([]entity.PriceRecord, len(records))
	for i, r := range records {
		r.Tier = th.Classify(r.ActualCost)
		out[i] = r
	}
	return out
}

// Costs extracts the actual cost column.
func Costs(records []entity.PriceRecord) []float64 {
	costs := make([]float64, len(records))
	for i, r := range records {
		costs[i] = r.ActualCost
	}
	return costs
}
