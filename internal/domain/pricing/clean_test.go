package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/produce-finops-dashboard-go/internal/domain/entity"
)

func TestNormalizeItemName(t *testing.T) {
	assert.Equal(t, "Red Apples", NormalizeItemName("  red APPLES"))
	assert.Equal(t, "Kiwi", NormalizeItemName("kiwi"))
	assert.Equal(t, "", NormalizeItemName("   "))
}

func TestClean(t *testing.T) {
	rows := []entity.RawPriceRow{
		{Line: 2, Fruit: "apples"},
		{Line: 3, Fruit: "  "},
		{Line: 4, Fruit: "Peas", Form: "Frozen", CupEquivalentUnit: "pounds", RetailPriceUnit: "per pound"},
	}

	cleaned, issues := Clean(rows)
	require.Len(t, cleaned, 2)
	require.Len(t, issues, 1)
	assert.Equal(t, 3, issues[0].Line)

	assert.Equal(t, "Apples", cleaned[0].Fruit)
	assert.Equal(t, DefaultForm, cleaned[0].Form)
	assert.Equal(t, DefaultCupUnit, cleaned[0].CupEquivalentUnit)
	assert.Equal(t, DefaultRetailPriceUnit, cleaned[0].RetailPriceUnit)

	assert.Equal(t, "Frozen", cleaned[1].Form)
	assert.Equal(t, "pounds", cleaned[1].CupEquivalentUnit)

	// a entrada não é alterada
	assert.Equal(t, "apples", rows[0].Fruit)
}
