package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/produce-finops-dashboard-go/internal/domain/entity"
)

func TestTopAffordable(t *testing.T) {
	ds, _, err := BuildDataset(ladderRows(8), Options{})
	require.NoError(t, err)

	low := TopAffordable(ds.Records(), entity.TierLow, DefaultTopAffordable)
	require.Len(t, low, 2)
	assert.Equal(t, "Item 1", low[0].Item)
	assert.Equal(t, "Item 2", low[1].Item)

	cheapest := CheapestItems(ds.Records(), 3)
	require.Len(t, cheapest, 3)
	assert.Equal(t, 3.0, cheapest[2].ActualCost)

	assert.Len(t, CheapestItems(ds.Records(), DefaultCheapestItems), 8)
}

func TestCheapestItems_TiesByLabel(t *testing.T) {
	records := []entity.PriceRecord{
		{Item: "Pears", Form: "Fresh", ActualCost: 1},
		{Item: "Apples", Form: "Fresh", ActualCost: 1},
	}
	got := CheapestItems(records, 0)
	assert.Equal(t, "Apples", got[0].Item)
	assert.Equal(t, "Pears", records[0].Item)
}

func TestAnalyzeYield(t *testing.T) {
	records := []entity.PriceRecord{
		{Item: "Apples", Form: "Fresh", Yield: 0.9, ActualCost: 0.5},
		{Item: "Pineapple", Form: "Fresh", Yield: 0.5, ActualCost: 0.9},
		{Item: "Raisins", Form: "Dried", Yield: 1, ActualCost: 0.4},
	}

	ya := AnalyzeYield(records)
	assert.InDelta(t, 80.0, ya.AverageYieldPercent, 1e-9)
	assert.Equal(t, "Raisins", ya.MostEfficientItem)
	assert.Equal(t, 100.0, ya.HighestYieldPercent)
	assert.Equal(t, "Pineapple", ya.LowestYieldItem)
	require.Len(t, ya.Points, 3)
	assert.Equal(t, "Apples (Fresh)", ya.Points[0].Label)

	assert.Empty(t, AnalyzeYield(nil).Points)
}
