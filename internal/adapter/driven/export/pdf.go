package export

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/diillson/produce-finops-dashboard-go/internal/domain/entity"
	"github.com/diillson/produce-finops-dashboard-go/internal/domain/pricing"
)

// pdfItemLimit limita a lista de itens no PDF; o CSV/XLSX trazem a tabela inteira.
const pdfItemLimit = pricing.DefaultCheapestItems

func (r *ExportRepositoryImpl) ExportToPDF(report entity.DashboardReport, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	period := report.Period
	if period == 0 {
		period = entity.PeriodYearly
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	sectionTitle := func(title string) {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)

		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)
	}

	drawSection := func(title string, content string) {
		if content == "" {
			return
		}
		sectionTitle(title)
		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.MultiCell(190, 5, tr(content), "", "L", false)
		pdf.Ln(8)
	}

	drawTable := func(title string, headers []string, widths []float64, rows [][]string) {
		if len(rows) == 0 {
			return
		}
		sectionTitle(title)

		pdf.SetFont("Arial", "B", 9)
		pdf.SetFillColor(240, 240, 240)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		for i, h := range headers {
			pdf.CellFormat(widths[i], 7, tr(h), "B", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Arial", "", 9)
		for _, row := range rows {
			for i, cell := range row {
				align := "L"
				if i > 0 {
					align = "R"
				}
				pdf.CellFormat(widths[i], 6, tr(cell), "", 0, align, false, 0, "")
			}
			pdf.Ln(-1)
		}
		pdf.Ln(8)
	}

	pdf.AddPage()

	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr("  Fruit & Vegetable Affordability Report"), "", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Source: %s  |  Cost source: %s", filepath.Base(report.Source), report.CostSource)), "", 1, "L", true, 0, "")
	pdf.Ln(10)

	drawSection("Summary", summaryText(report))

	tierRows := make([][]string, 0, 4)
	for _, t := range entity.PriceTiers() {
		tierRows = append(tierRows, []string{
			t.String(),
			fmt.Sprintf("%d", report.Summary.TierCounts[t]),
			fmt.Sprintf("$%.2f", report.Benchmarks.ForTier(t)),
			fmt.Sprintf("%.1f%%", report.Benchmarks.SavingsPercent(t)),
		})
	}
	drawTable("Price Tiers", []string{"Tier", "Items", "Avg Cost/Cup", "vs Average"},
		[]float64{70, 30, 45, 45}, tierRows)

	householdHeaders := []string{"Household", "Cups/Day"}
	householdWidths := []float64{60, 20}
	for _, b := range entity.Benchmarks() {
		householdHeaders = append(householdHeaders, b.Title())
		householdWidths = append(householdWidths, 22)
	}
	var householdRows [][]string
	for _, h := range report.Households {
		row := []string{h.Description, fmt.Sprintf("%.1f", h.DailyCups)}
		for _, b := range entity.Benchmarks() {
			v, _ := h.Cost(b, period)
			row = append(row, fmt.Sprintf("$%.2f", v))
		}
		householdRows = append(householdRows, row)
	}
	drawTable(fmt.Sprintf("Household Costs (%s)", period), householdHeaders, householdWidths, householdRows)

	var itemRows [][]string
	for _, rec := range pricing.CheapestItems(report.View.Records, pdfItemLimit) {
		itemRows = append(itemRows, []string{
			truncate(rec.Label(), 45),
			fmt.Sprintf("$%.2f", rec.RetailPrice),
			fmt.Sprintf("%.0f%%", rec.YieldPercent()),
			fmt.Sprintf("$%.2f", rec.ActualCost),
			rec.Tier.String(),
		})
	}
	drawTable("Most Affordable Items", []string{"Item", "Retail", "Yield", "Cost/Cup", "Tier"},
		[]float64{80, 25, 20, 25, 40}, itemRows)

	if report.Estimate != nil {
		e := report.Estimate
		drawSection("Custom Household Estimate", strings.Join([]string{
			e.Summary(),
			fmt.Sprintf("Daily cups: %.1f (fruit %.1f, vegetables %.1f) at $%.2f per cup", e.DailyCups, e.FruitCups, e.VegetableCups, e.PricePerCup),
			fmt.Sprintf("Daily $%.2f | Weekly $%.2f | Monthly $%.2f", e.Daily, e.Weekly, e.Monthly),
		}, "\n"))
	}

	if n := len(report.Issues); n > 0 {
		drawSection("Data Quality", fmt.Sprintf("%d row(s) were excluded from cost computation.", n))
	}

	pdf.SetY(-15)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(128, 128, 128)
	footerText := fmt.Sprintf("Generated by Produce FinOps Dashboard (Go) | %s | %s", report.GeneratedAt.Format("2006-01-02"), report.ID)
	pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func summaryText(report entity.DashboardReport) string {
	s := report.Summary
	lines := []string{
		fmt.Sprintf("Items analysed: %d (%d unique)", s.TotalItems, s.UniqueItems),
		fmt.Sprintf("Average cost per cup: $%.2f (median $%.2f, range %s)", s.AverageCost, s.MedianCost, s.CostRange()),
		fmt.Sprintf("Lowest cost item: %s at $%.2f", s.LowestCostItem, s.LowestCost),
		fmt.Sprintf("Average yield: %.1f%% (most efficient: %s, %.0f%%)", s.AverageYieldPercent, s.MostEfficientItem, s.HighestYieldPercent),
		fmt.Sprintf("Quartile thresholds: Q1 $%.2f | Median $%.2f | Q3 $%.2f", report.Thresholds.Q1, report.Thresholds.Q2, report.Thresholds.Q3),
	}
	if s.PriceCheckMatches > 0 {
		lines = append(lines, fmt.Sprintf("Precomputed prices matching the formula: %d", s.PriceCheckMatches))
	}
	return strings.Join(lines, "\n")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
