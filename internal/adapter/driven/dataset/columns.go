package dataset

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/diillson/produce-finops-dashboard-go/internal/domain/entity"
	"github.com/diillson/produce-finops-dashboard-go/internal/shared/types"
)

// Nomes canônicos das colunas, já normalizados por normalizeHeader.
const (
	colFruit              = "fruit"
	colForm               = "form"
	colRetailPrice        = "retailprice"
	colRetailPriceUnit    = "retailpriceunit"
	colYield              = "yield"
	colCupEquivalentSize  = "cupequivalentsize"
	colCupEquivalentUnit  = "cupequivalentunit"
	colCupEquivalentPrice = "cupequivalentprice"
)

var requiredColumns = []string{colFruit, colRetailPrice, colYield, colCupEquivalentSize}

// headerAliases aceita variações comuns de planilhas exportadas.
var headerAliases = map[string]string{
	"item":      colFruit,
	"vegetable": colFruit,
	"name":      colFruit,
}

// normalizeHeader lowercases and strips spaces, underscores and dashes ("Retail_Price" -> "retailprice").
func normalizeHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.NewReplacer(" ", "", "_", "", "-", "").Replace(h)
	if alias, ok := headerAliases[h]; ok {
		return alias
	}
	return h
}

// columnIndex maps canonical column names to their position in the header row.
type columnIndex map[string]int

func newColumnIndex(header []string) (columnIndex, error) {
	idx := make(columnIndex, len(header))
	for i, h := range header {
		name := normalizeHeader(h)
		if name == "" {
			continue
		}
		if _, dup := idx[name]; !dup {
			idx[name] = i
		}
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", types.ErrMissingColumn, strings.Join(missing, ", "))
	}
	return idx, nil
}

func (c columnIndex) cell(row []string, col string) string {
	i, ok := c[col]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

var errNotFinite = errors.New("not a finite number")

// parseNumber interpreta uma célula numérica; vazia vira nil.
// Aceita "$1.25" e "1,234.5".
func parseNumber(cell string) (*float64, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" || strings.EqualFold(cell, "na") || strings.EqualFold(cell, "n/a") {
		return nil, nil
	}
	cleaned := strings.NewReplacer("$", "", ",", "").Replace(cell)
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil, err
	}
	// ParseFloat aceita "NaN" e "Inf"; para preço e tamanho isso é lixo
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, errNotFinite
	}
	return &v, nil
}

// isBlank reports whether every cell of the row is empty.
func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// toRawRow converte uma linha da tabela; erros de conversão ficam em ParseErrors.
func (c columnIndex) toRawRow(row []string, line int) entity.RawPriceRow {
	raw := entity.RawPriceRow{
		Line:              line,
		Fruit:             c.cell(row, colFruit),
		Form:              c.cell(row, colForm),
		RetailPriceUnit:   c.cell(row, colRetailPriceUnit),
		CupEquivalentUnit: c.cell(row, colCupEquivalentUnit),
	}

	numeric := []struct {
		col   string
		label string
		dst   **float64
	}{
		{colRetailPrice, "RetailPrice", &raw.RetailPrice},
		{colYield, "Yield", &raw.Yield},
		{colCupEquivalentSize, "CupEquivalentSize", &raw.CupEquivalentSize},
		{colCupEquivalentPrice, "CupEquivalentPrice", &raw.CupEquivalentPrice},
	}
	for _, n := range numeric {
		cell := c.cell(row, n.col)
		v, err := parseNumber(cell)
		if errors.Is(err, errNotFinite) {
			raw.ParseErrors = append(raw.ParseErrors, fmt.Sprintf("%s: %q is not a finite number", n.label, cell))
			continue
		}
		if err != nil {
			raw.ParseErrors = append(raw.ParseErrors, fmt.Sprintf("%s: %q is not a number", n.label, cell))
			continue
		}
		*n.dst = v
	}
	return raw
}

// tableToRows converts a header + data matrix into raw rows. Line numbers are 1-based
// with the header on line 1.
func tableToRows(table [][]string) ([]entity.RawPriceRow, error) {
	if len(table) == 0 {
		return nil, fmt.Errorf("%w: the table is empty", types.ErrMissingColumn)
	}
	idx, err := newColumnIndex(table[0])
	if err != nil {
		return nil, err
	}

	rows := make([]entity.RawPriceRow, 0, len(table)-1)
	for i, record := range table[1:] {
		if isBlank(record) {
			continue
		}
		rows = append(rows, idx.toRawRow(record, i+2))
	}
	return rows, nil
}
