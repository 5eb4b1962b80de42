package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/diillson/produce-finops-dashboard-go/internal/domain/entity"
)

func TestComputeBenchmarks(t *testing.T) {
	records := []entity.PriceRecord{
		{ActualCost: 1, Tier: entity.TierLow},
		{ActualCost: 2, Tier: entity.TierLow},
		{ActualCost: 3, Tier: entity.TierBudget},
		{ActualCost: 6, Tier: entity.TierHigh},
	}

	bm := ComputeBenchmarks(records)
	assert.InDelta(t, 1.5, bm.Low, 1e-12)
	assert.InDelta(t, 3.0, bm.Budget, 1e-12)
	assert.InDelta(t, 6.0, bm.High, 1e-12)
	assert.InDelta(t, 3.0, bm.Average, 1e-12)
	assert.InDelta(t, 2.5, bm.Median, 1e-12)
	assert.Equal(t, 1.0, bm.Min)
	assert.Equal(t, 6.0, bm.Max)

	// tier vazio usa a média geral
	assert.InDelta(t, bm.Average, bm.Moderate, 1e-12)
	assert.Equal(t, []entity.PriceTier{entity.TierModerate}, bm.FellBack)
}

func TestComputeBenchmarks_Empty(t *testing.T) {
	assert.Equal(t, entity.TierBenchmarks{}, ComputeBenchmarks(nil))
	assert.Equal(t, 0.0, MeanCost(nil))
}
