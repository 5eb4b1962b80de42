package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActualCost(t *testing.T) {
	cost, err := ActualCost(1.00, 0.25, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 0.50, cost, 1e-12)

	cost, err = ActualCost(2.0, 0.5, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, cost, 1e-12)
}

func TestActualCost_RejectsInvalidYield(t *testing.T) {
	for _, y := range []float64{0, -0.2, 1.01} {
		_, err := ActualCost(1, 1, y)
		assert.ErrorIs(t, err, ErrInvalidYield, "yield %v", y)
	}
}

func TestActualCost_RejectsNonFinite(t *testing.T) {
	for _, tc := range []struct {
		name        string
		price, size float64
	}{
		{"NaN price", math.NaN(), 1},
		{"infinite price", math.Inf(1), 1},
		{"NaN size", 1, math.NaN()},
		{"negative infinite size", 1, math.Inf(-1)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ActualCost(tc.price, tc.size, 0.5)
			assert.ErrorIs(t, err, ErrNonFiniteValue)
		})
	}
}

func TestParseCostSource(t *testing.T) {
	src, err := ParseCostSource("")
	require.NoError(t, err)
	assert.Equal(t, CostPrecomputed, src)

	src, err = ParseCostSource(" Derived ")
	require.NoError(t, err)
	assert.Equal(t, CostDerived, src)

	_, err = ParseCostSource("guess")
	assert.ErrorIs(t, err, ErrUnknownCostSource)
}

func TestDeriveRecord(t *testing.T) {
	t.Run("missing yield is rejected", func(t *testing.T) {
		row := rawRow(2, "Apples", 1.5, 0.25, 0.9)
		row.Yield = nil
		_, err := DeriveRecord(row, CostPrecomputed, DefaultPriceTolerance)
		assert.ErrorIs(t, err, ErrInvalidYield)
	})

	t.Run("zero yield is rejected", func(t *testing.T) {
		_, err := DeriveRecord(rawRow(2, "Apples", 1.5, 0.25, 0), CostDerived, DefaultPriceTolerance)
		assert.ErrorIs(t, err, ErrInvalidYield)
	})

	t.Run("missing price is rejected", func(t *testing.T) {
		row := rawRow(2, "Apples", 1.5, 0.25, 0.9)
		row.RetailPrice = nil
		_, err := DeriveRecord(row, CostDerived, DefaultPriceTolerance)
		assert.ErrorIs(t, err, ErrMissingValue)
	})

	t.Run("parse errors are rejected", func(t *testing.T) {
		row := rawRow(2, "Apples", 1.5, 0.25, 0.9)
		row.ParseErrors = []string{`RetailPrice: "abc"`}
		_, err := DeriveRecord(row, CostDerived, DefaultPriceTolerance)
		assert.ErrorContains(t, err, "RetailPrice")
	})

	t.Run("non-finite precomputed price is rejected in both modes", func(t *testing.T) {
		for _, v := range []float64{math.NaN(), math.Inf(1)} {
			row := rawRow(2, "Kiwi", 1.00, 0.25, 0.5)
			row.CupEquivalentPrice = ptr(v)
			for _, src := range []CostSource{CostPrecomputed, CostDerived} {
				_, err := DeriveRecord(row, src, DefaultPriceTolerance)
				assert.ErrorIs(t, err, ErrNonFiniteValue, "%v / %s", v, src)
			}
		}
	})

	t.Run("precomputed price is used and checked", func(t *testing.T) {
		row := rawRow(2, "Apples", 1.00, 0.25, 0.5)
		row.CupEquivalentPrice = ptr(0.505)

		rec, err := DeriveRecord(row, CostPrecomputed, DefaultPriceTolerance)
		require.NoError(t, err)
		assert.InDelta(t, 0.50, rec.CalculatedCost, 1e-12)
		assert.Equal(t, 0.505, rec.ActualCost)
		assert.True(t, rec.PriceCheck)
	})

	t.Run("derived mode ignores the precomputed price", func(t *testing.T) {
		row := rawRow(2, "Apples", 1.00, 0.25, 0.5)
		row.CupEquivalentPrice = ptr(0.80)

		rec, err := DeriveRecord(row, CostDerived, DefaultPriceTolerance)
		require.NoError(t, err)
		assert.InDelta(t, 0.50, rec.ActualCost, 1e-12)
		assert.False(t, rec.PriceCheck)
	})

	t.Run("blank precomputed price falls back to the formula", func(t *testing.T) {
		rec, err := DeriveRecord(rawRow(2, "Apples", 1.00, 0.25, 0.5), CostPrecomputed, DefaultPriceTolerance)
		require.NoError(t, err)
		assert.InDelta(t, 0.50, rec.ActualCost, 1e-12)
		assert.Nil(t, rec.CupEquivalentPrice)
	})

	t.Run("negative precomputed price is rejected", func(t *testing.T) {
		row := rawRow(2, "Apples", 1.00, 0.25, 0.5)
		row.CupEquivalentPrice = ptr(-1)
		_, err := DeriveRecord(row, CostPrecomputed, DefaultPriceTolerance)
		assert.ErrorIs(t, err, ErrNegativeValue)
	})
}
