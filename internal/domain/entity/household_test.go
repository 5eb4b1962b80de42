package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriod(t *testing.T) {
	for in, want := range map[string]Period{
		"daily":   PeriodDaily,
		"Weekly":  PeriodWeekly,
		"month":   PeriodMonthly,
		"ANNUAL":  PeriodYearly,
		" year  ": PeriodYearly,
	} {
		got, err := ParsePeriod(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParsePeriod("fortnight")
	assert.Error(t, err)
}

func TestHouseholdCostRow_CostValuesFollowHeaders(t *testing.T) {
	row := HouseholdCostRow{Description: "Single Adult", DailyCups: 5}
	for i, b := range Benchmarks() {
		price := float64(i + 1)
		row.Costs = append(row.Costs, TierCost{
			Benchmark: b, PricePerCup: price,
			Daily: 5 * price, Weekly: 35 * price, Monthly: 150 * price, Yearly: 1825 * price,
		})
	}

	headers := HouseholdCostHeaders()
	values := row.CostValues()
	require.Len(t, headers, 5+len(values))
	assert.Equal(t, "low_Daily_Cost", headers[5])
	assert.Equal(t, "avg_Yearly_Cost", headers[len(headers)-1])
	assert.Equal(t, 5.0, values[0])
	assert.Equal(t, 1825.0*5, values[len(values)-1])

	weekly, ok := row.Cost(BenchmarkBudget, PeriodWeekly)
	require.True(t, ok)
	assert.Equal(t, 70.0, weekly)

	_, ok = row.Cost(Benchmark("premium"), PeriodDaily)
	assert.False(t, ok)
}

func TestCostEstimate_Summary(t *testing.T) {
	est := CostEstimate{
		Composition: HouseholdComposition{Adults: 2, Children: 1},
		Yearly:      1234567.4,
	}
	assert.Equal(t,
		"Estimated annual cost for 2 adult(s), 1 child(ren), and 0 teen(s): $1,234,567",
		est.Summary())

	assert.Equal(t, "999", formatThousands(999))
	assert.Equal(t, "1,000", formatThousands(999.6))
	assert.Equal(t, "-12,345", formatThousands(-12345))
}

func TestAgeGroup_TotalCups(t *testing.T) {
	g := AgeGroup{FruitCups: 1.5, VegetableCups: 2.5}
	assert.Equal(t, 4.0, g.TotalCups())
}
