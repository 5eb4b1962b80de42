package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupAgeGroup_Composites(t *testing.T) {
	tests := []struct {
		key   string
		total float64
	}{
		{CompositeAdult, 4.5},
		{CompositeChild, 3},
		{CompositeTeen, 5},
		{Men31to50, 5},
		{Children2to3, 2},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			g, err := LookupAgeGroup(tt.key)
			require.NoError(t, err)
			assert.InDelta(t, tt.total, g.TotalCups(), 1e-12)
		})
	}

	_, err := LookupAgeGroup("seniors")
	assert.ErrorIs(t, err, ErrUnknownAgeGroup)
}

func TestHouseholdCatalogue_DailyTargets(t *testing.T) {
	want := map[string]float64{
		"single_adult":             5,
		"couple_no_kids":           9,
		"family_2adults_2children": 16,
		"single_parent_2children":  11,
	}

	catalogue := HouseholdCatalogue()
	require.Len(t, catalogue, len(want))
	for _, h := range catalogue {
		fruit, veg, err := DailyTarget(h.Members)
		require.NoError(t, err)
		assert.InDelta(t, want[h.Key], fruit+veg, 1e-12, h.Key)
	}
}

func TestHouseholdCatalogue_ReturnsCopies(t *testing.T) {
	first := HouseholdCatalogue()
	first[0].Members[0] = Children2to3
	first[0].Description = "changed"

	second := HouseholdCatalogue()
	assert.Equal(t, Men31to50, second[0].Members[0])
	assert.Equal(t, "Single Adult", second[0].Description)

	groups := AgeGroups()
	groups[0].FruitCups = 99
	assert.Equal(t, 1.0, AgeGroups()[0].FruitCups)
}
