package pricing

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/diillson/produce-finops-dashboard-go/internal/domain/entity"
)

const (
	DefaultTopAffordable = 10
	DefaultCheapestItems = 15
)

// cheapest ordena por custo real (estável, desempate pelo nome) e corta em n.
func cheapest(records []entity.PriceRecord, n int) []entity.PriceRecord {
	sorted := make([]entity.PriceRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].ActualCost == sorted[j].ActualCost {
			return sorted[i].Label() < sorted[j].Label()
		}
		return sorted[i].ActualCost < sorted[j].ActualCost
	})
	if n > 0 && n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// TopAffordable returns the n cheapest records of one tier.
func TopAffordable(records []entity.PriceRecord, tier entity.PriceTier, n int) []entity.PriceRecord {
	return cheapest(ApplyFilter(records, entity.ItemFilter{Tier: tier}), n)
}

// CheapestItems returns the n cheapest records overall.
func CheapestItems(records []entity.PriceRecord, n int) []entity.PriceRecord {
	return cheapest(records, n)
}

// AnalyzeYield relates edible yield to actual cost.
func AnalyzeYield(records []entity.PriceRecord) entity.YieldAnalysis {
	var ya entity.YieldAnalysis
	if len(records) == 0 {
		return ya
	}

	yields := make([]float64, len(records))
	best, worst := 0, 0
	for i, r := range records {
		yields[i] = r.Yield
		if r.Yield > records[best].Yield {
			best = i
		}
		if r.Yield < records[worst].Yield {
			worst = i
		}
		ya.Points = append(ya.Points, entity.YieldPoint{
			Label:        r.Label(),
			YieldPercent: r.YieldPercent(),
			ActualCost:   r.ActualCost,
			RetailPrice:  r.RetailPrice,
			RetailUnit:   r.RetailPriceUnit,
		})
	}

	ya.AverageYieldPercent = stat.Mean(yields, nil) * 100
	ya.MostEfficientItem = records[best].Item
	ya.HighestYieldPercent = records[best].YieldPercent()
	ya.LowestYieldItem = records[worst].Item
	ya.LowestYieldPercent = records[worst].YieldPercent()
	return ya
}
