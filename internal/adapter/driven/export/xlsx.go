package export

import (
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/diillson/produce-finops-dashboard-go/internal/domain/entity"
)

// Nomes das abas da planilha exportada.
const (
	SheetHouseholds = "Households"
	SheetItems      = "Items"
	SheetTiers      = "Tiers"
)

// ExportToXLSX grava households, itens e benchmarks por tier em abas separadas.
func (r *ExportRepositoryImpl) ExportToXLSX(report entity.DashboardReport, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "xlsx")
	if err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetHouseholds); err != nil {
		return "", fmt.Errorf("error preparing workbook: %w", err)
	}
	for _, name := range []string{SheetItems, SheetTiers} {
		if _, err := f.NewSheet(name); err != nil {
			return "", fmt.Errorf("error creating sheet %s: %w", name, err)
		}
	}

	households := [][]interface{}{toRow(entity.HouseholdCostHeaders())}
	for _, h := range report.Households {
		row := []interface{}{h.Description, h.DailyCups, h.FruitCups, h.VegetableCups, h.Members}
		for _, v := range h.CostValues() {
			row = append(row, v)
		}
		households = append(households, row)
	}

	items := [][]interface{}{toRow(itemHeaders)}
	for _, rec := range report.View.Records {
		var precomputed interface{}
		if rec.CupEquivalentPrice != nil {
			precomputed = *rec.CupEquivalentPrice
		}
		items = append(items, []interface{}{
			rec.Item, rec.Form, rec.RetailPrice, rec.RetailPriceUnit, rec.Yield, rec.CupEquivalentSize,
			rec.CupEquivalentUnit, precomputed, rec.CalculatedCost, rec.ActualCost, rec.PriceCheck, rec.Tier.String(),
		})
	}

	tiers := [][]interface{}{{"Tier", "Items", "AvgCostPerCup", "SavingsVsAveragePct", "FellBackToAverage"}}
	for _, t := range entity.PriceTiers() {
		tiers = append(tiers, []interface{}{
			t.String(),
			report.Summary.TierCounts[t],
			report.Benchmarks.ForTier(t),
			report.Benchmarks.SavingsPercent(t),
			containsTier(report.Benchmarks.FellBack, t),
		})
	}
	tiers = append(tiers,
		[]interface{}{"Average", report.Summary.TotalItems, report.Benchmarks.Average, 0.0, false},
		[]interface{}{"Q1", nil, report.Thresholds.Q1},
		[]interface{}{"Median", nil, report.Thresholds.Q2},
		[]interface{}{"Q3", nil, report.Thresholds.Q3},
	)

	for sheet, rows := range map[string][][]interface{}{
		SheetHouseholds: households,
		SheetItems:      items,
		SheetTiers:      tiers,
	} {
		if err := writeSheet(f, sheet, rows); err != nil {
			return "", err
		}
	}

	if err := f.SaveAs(outputFilename); err != nil {
		return "", fmt.Errorf("error writing XLSX file: %w", err)
	}
	return filepath.Abs(outputFilename)
}

func writeSheet(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("error writing sheet %s: %w", sheet, err)
		}
	}
	return nil
}

func toRow(values []string) []interface{} {
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	return row
}

func containsTier(tiers []entity.PriceTier, t entity.PriceTier) bool {
	for _, x := range tiers {
		if x == t {
			return true
		}
	}
	return false
}
