package pricing

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/diillson/produce-finops-dashboard-go/internal/domain/entity"
)

// ComputeBenchmarks returns the mean actual cost per tier plus overall average,
// median, min and max. An empty tier falls back to the overall average.
// Records must already be classified.
func ComputeBenchmarks(records []entity.PriceRecord) entity.TierBenchmarks {
	if len(records) == 0 {
		return entity.TierBenchmarks{}
	}

	costs := Costs(records)
	sorted := sortedCopy(costs)

	byTier := make(map[entity.PriceTier][]float64, 4)
	for _, r := range records {
		byTier[r.Tier] = append(byTier[r.Tier], r.ActualCost)
	}

	bm := entity.TierBenchmarks{
		Average: stat.Mean(costs, nil),
		Median:  Percentile(sorted, 0.5),
		Min:     floats.Min(costs),
		Max:     floats.Max(costs),
	}

	tierMean := func(t entity.PriceTier) float64 {
		values := byTier[t]
		if len(values) == 0 {
			bm.FellBack = append(bm.FellBack, t)
			return bm.Average
		}
		return stat.Mean(values, nil)
	}

	bm.Low = tierMean(entity.TierLow)
	bm.Budget = tierMean(entity.TierBudget)
	bm.Moderate = tierMean(entity.TierModerate)
	bm.High = tierMean(entity.TierHigh)

	return bm
}

// MeanCost é a média simples do custo real; zero para conjunto vazio.
func MeanCost(records []entity.PriceRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	return stat.Mean(Costs(records), nil)
}
