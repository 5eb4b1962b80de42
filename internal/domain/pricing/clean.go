package pricing

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/diillson/produce-finops-dashboard-go/internal/domain/entity"
)

// Valores padrão para campos categóricos ausentes.
const (
	DefaultForm            = "Fresh"
	DefaultCupUnit         = "cup"
	DefaultRetailPriceUnit = "per pound"
)

// NormalizeItemName trims and title-cases an item name ("  red APPLES" -> "Red Apples").
func NormalizeItemName(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}
	// Caser guarda estado; um por chamada.
	return cases.Title(language.English).String(trimmed)
}

// Clean fills categorical defaults and normalizes casing.
// Rows without an item name are dropped and reported; nothing here is fatal.
func Clean(rows []entity.RawPriceRow) ([]entity.RawPriceRow, []entity.RowIssue) {
	cleaned := make([]entity.RawPriceRow, 0, len(rows))
	var issues []entity.RowIssue

	for _, row := range rows {
		row.Fruit = NormalizeItemName(row.Fruit)
		if row.Fruit == "" {
			issues = append(issues, entity.RowIssue{Line: row.Line, Reason: "missing item name"})
			continue
		}

		row.Form = strings.TrimSpace(row.Form)
		if row.Form == "" {
			row.Form = DefaultForm
		}
		row.CupEquivalentUnit = strings.TrimSpace(row.CupEquivalentUnit)
		if row.CupEquivalentUnit == "" {
			row.CupEquivalentUnit = DefaultCupUnit
		}
		row.RetailPriceUnit = strings.TrimSpace(row.RetailPriceUnit)
		if row.RetailPriceUnit == "" {
			row.RetailPriceUnit = DefaultRetailPriceUnit
		}

		cleaned = append(cleaned, row)
	}

	return cleaned, issues
}
