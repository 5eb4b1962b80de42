package pricing

import (
	"github.com/diillson/produce-finops-dashboard-go/internal/domain/entity"
)

// Summarize computes the headline statistics of classified records.
func Summarize(records []entity.PriceRecord, bm entity.TierBenchmarks, households int) entity.SummaryStats {
	s := entity.SummaryStats{
		TotalItems:     len(records),
		TierCounts:     make(map[entity.PriceTier]int, 4),
		HouseholdTypes: households,
	}
	if len(records) == 0 {
		return s
	}

	unique := make(map[string]struct{})
	lowest := 0
	for i, r := range records {
		unique[r.Item] = struct{}{}
		s.TierCounts[r.Tier]++
		if r.PriceCheck {
			s.PriceCheckMatches++
		}
		if r.ActualCost < records[lowest].ActualCost {
			lowest = i
		}
	}

	ya := AnalyzeYield(records)

	s.UniqueItems = len(unique)
	s.AverageYieldPercent = ya.AverageYieldPercent
	s.MostEfficientItem = ya.MostEfficientItem
	s.HighestYieldPercent = ya.HighestYieldPercent
	s.AverageCost = bm.Average
	s.MedianCost = bm.Median
	s.MinCost = bm.Min
	s.MaxCost = bm.Max
	s.LowestCostItem = records[lowest].Item
	s.LowestCost = records[lowest].ActualCost
	s.BudgetItems = s.TierCounts[entity.TierLow]
	return s
}
