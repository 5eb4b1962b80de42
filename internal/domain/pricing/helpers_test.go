package pricing

import (
	"fmt"

	"github.com/diillson/produce-finops-dashboard-go/internal/domain/entity"
)

func ptr(v float64) *float64 { return &v }

func rawRow(line int, name string, price, size, yield float64) entity.RawPriceRow {
	return entity.RawPriceRow{
		Line:              line,
		Fruit:             name,
		RetailPrice:       ptr(price),
		Yield:             ptr(yield),
		CupEquivalentSize: ptr(size),
	}
}

// ladderRows gera itens "Item 1".."Item n" com custo real igual a i.
func ladderRows(n int) []entity.RawPriceRow {
	rows := make([]entity.RawPriceRow, n)
	for i := range rows {
		rows[i] = rawRow(i+2, fmt.Sprintf("item %d", i+1), float64(i+1), 1, 1)
	}
	return rows
}
