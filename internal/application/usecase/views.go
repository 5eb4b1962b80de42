package usecase

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/pterm/pterm"

	"github.com/diillson/produce-finops-dashboard-go/internal/domain/entity"
	"github.com/diillson/produce-finops-dashboard-go/internal/domain/pricing"
	"github.com/diillson/produce-finops-dashboard-go/internal/shared/types"
)

// densityBars é quantas barras da curva KDE são exibidas no terminal.
const densityBars = 20

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// tierLabel colore o rótulo do tier para as tabelas.
func tierLabel(t entity.PriceTier) string {
	switch t {
	case entity.TierLow:
		return pterm.FgGreen.Sprint(t.String())
	case entity.TierBudget:
		return pterm.FgCyan.Sprint(t.String())
	case entity.TierModerate:
		return pterm.FgYellow.Sprint(t.String())
	case entity.TierHigh:
		return pterm.FgRed.Sprint(t.String())
	default:
		return t.String()
	}
}

func describeFilter(f entity.ItemFilter) string {
	var parts []string
	if f.HasItems() {
		parts = append(parts, "items="+strings.Join(f.Items, ","))
	}
	if f.Unit != "" {
		parts = append(parts, "unit="+f.Unit)
	}
	if f.Tier != entity.TierUnknown {
		parts = append(parts, "tier="+f.Tier.String())
	}
	return strings.Join(parts, " ")
}

func formatThresholds(th entity.Thresholds) string {
	return fmt.Sprintf("Q1 %s | Median %s | Q3 %s", money(th.Q1), money(th.Q2), money(th.Q3))
}

// renderDashboard é a visão padrão: resumo, tiers, custos por domicílio e itens filtrados.
func (uc *DashboardUseCase) renderDashboard(ds *pricing.Dataset, view entity.FilteredView, period entity.Period) {
	s := ds.Summary()
	bm := ds.Benchmarks()

	lines := []string{
		fmt.Sprintf("Total items:            %d (%d unique)", s.TotalItems, s.UniqueItems),
		fmt.Sprintf("Average cost per cup:   %s (median %s)", money(s.AverageCost), money(s.MedianCost)),
		fmt.Sprintf("Cost range:             %s", s.CostRange()),
		fmt.Sprintf("Lowest cost item:       %s at %s", s.LowestCostItem, money(s.LowestCost)),
		fmt.Sprintf("Average yield:          %.1f%%", s.AverageYieldPercent),
		fmt.Sprintf("Most efficient:         %s (%.1f%%)", s.MostEfficientItem, s.HighestYieldPercent),
		fmt.Sprintf("Budget-friendly items:  %d", s.BudgetItems),
		fmt.Sprintf("Household types:        %d", s.HouseholdTypes),
	}
	if ds.CostSource() == pricing.CostPrecomputed {
		lines = append(lines, fmt.Sprintf("Price check matches:    %d/%d", s.PriceCheckMatches, s.TotalItems))
	}
	uc.console.DisplayPanel("Dataset Summary", lines)

	th := ds.Thresholds()
	tiers := uc.console.CreateTable()
	tiers.AddColumn("Price Tier")
	tiers.AddColumn("Items")
	tiers.AddColumn("Range")
	tiers.AddColumn("Avg Cost/Cup")
	tiers.AddColumn("vs Average")
	bounds := map[entity.PriceTier]string{
		entity.TierLow:      fmt.Sprintf("<= %s", money(th.Q1)),
		entity.TierBudget:   fmt.Sprintf("%s - %s", money(th.Q1), money(th.Q2)),
		entity.TierModerate: fmt.Sprintf("%s - %s", money(th.Q2), money(th.Q3)),
		entity.TierHigh:     fmt.Sprintf("> %s", money(th.Q3)),
	}
	for _, t := range entity.PriceTiers() {
		tiers.AddRow(
			tierLabel(t),
			fmt.Sprintf("%d", s.TierCounts[t]),
			bounds[t],
			money(bm.ForTier(t)),
			fmt.Sprintf("%+.1f%%", -bm.SavingsPercent(t)),
		)
	}
	uc.console.Print(tiers.Render())
	if len(bm.FellBack) > 0 {
		names := make([]string, len(bm.FellBack))
		for i, t := range bm.FellBack {
			names[i] = t.String()
		}
		uc.console.LogWarning("No items in tier(s) %s; using the overall average", strings.Join(names, ", "))
	}

	households := uc.console.CreateTable()
	households.AddColumn("Household Type")
	households.AddColumn("Members")
	households.AddColumn("Cups/Day")
	for _, b := range entity.Benchmarks() {
		households.AddColumn(fmt.Sprintf("%s (%s)", b.Title(), period))
	}
	for _, h := range ds.Households() {
		cells := []interface{}{h.Description, fmt.Sprintf("%d", h.Members), fmt.Sprintf("%.1f", h.DailyCups)}
		for _, b := range entity.Benchmarks() {
			v, _ := h.Cost(b, period)
			cells = append(cells, money(v))
		}
		households.AddRow(cells...)
	}
	uc.console.Print(households.Render())

	uc.renderView(view)
}

// renderView lista os itens do filtro atual, do mais barato ao mais caro.
func (uc *DashboardUseCase) renderView(view entity.FilteredView) {
	if !view.Filter.IsEmpty() {
		uc.console.LogInfo("Filter: %s", describeFilter(view.Filter))
	}
	if len(view.Records) == 0 {
		uc.console.LogWarning("No items match the current filters")
		return
	}

	table := uc.console.CreateTable()
	table.AddColumn("Item")
	table.AddColumn("Form")
	table.AddColumn("Retail Price")
	table.AddColumn("Yield")
	table.AddColumn("Cup Size")
	table.AddColumn("Cost/Cup")
	table.AddColumn("Tier")
	for _, r := range pricing.CheapestItems(view.Records, 0) {
		table.AddRow(
			r.Item,
			r.Form,
			fmt.Sprintf("%s %s", money(r.RetailPrice), r.RetailPriceUnit),
			fmt.Sprintf("%.0f%%", r.YieldPercent()),
			fmt.Sprintf("%.4g %s", r.CupEquivalentSize, r.CupEquivalentUnit),
			money(r.ActualCost),
			tierLabel(r.Tier),
		)
	}
	uc.console.Print(table.Render())

	uc.console.LogInfo("%d item(s), average cost per cup %s", len(view.Records), money(view.AverageCost))
	uc.console.LogInfo("Global thresholds: %s", formatThresholds(view.GlobalThresholds))
	if view.LocalThresholds != nil {
		uc.console.LogInfo("Filtered thresholds (informational): %s", formatThresholds(*view.LocalThresholds))
	}
}

// renderTiers mostra, para cada tier, a economia em relação à média e os itens mais baratos.
func (uc *DashboardUseCase) renderTiers(ds *pricing.Dataset) {
	bm := ds.Benchmarks()
	records := ds.Records()
	counts := ds.Summary().TierCounts

	for _, t := range entity.PriceTiers() {
		savings := bm.SavingsPercent(t)
		direction := "below"
		if savings < 0 {
			direction = "above"
		}
		lines := []string{
			fmt.Sprintf("%d item(s) averaging %s per cup", counts[t], money(bm.ForTier(t))),
			fmt.Sprintf("%.1f%% %s the overall average of %s", math.Abs(savings), direction, money(bm.Average)),
		}
		uc.console.DisplayPanel(t.String(), lines)

		top := pricing.TopAffordable(records, t, pricing.DefaultTopAffordable)
		if len(top) == 0 {
			uc.console.LogWarning("No items in the %s tier", t)
			continue
		}
		table := uc.console.CreateTable()
		table.AddColumn("#")
		table.AddColumn("Item")
		table.AddColumn("Cost/Cup")
		table.AddColumn("Yield")
		for i, r := range top {
			table.AddRow(fmt.Sprintf("%d", i+1), r.Label(), money(r.ActualCost), fmt.Sprintf("%.0f%%", r.YieldPercent()))
		}
		uc.console.Print(table.Render())
	}
}

// renderYield relaciona o rendimento comestível com o custo real.
func (uc *DashboardUseCase) renderYield(view entity.FilteredView) {
	if len(view.Records) == 0 {
		uc.console.LogWarning("No items match the current filters")
		return
	}
	ya := pricing.AnalyzeYield(view.Records)

	uc.console.DisplayPanel("Yield Analysis", []string{
		fmt.Sprintf("Average yield:  %.1f%%", ya.AverageYieldPercent),
		fmt.Sprintf("Highest yield:  %s (%.1f%%)", ya.MostEfficientItem, ya.HighestYieldPercent),
		fmt.Sprintf("Lowest yield:   %s (%.1f%%)", ya.LowestYieldItem, ya.LowestYieldPercent),
	})

	points := append([]entity.YieldPoint(nil), ya.Points...)
	sort.SliceStable(points, func(i, j int) bool { return points[i].YieldPercent > points[j].YieldPercent })

	table := uc.console.CreateTable()
	table.AddColumn("Item")
	table.AddColumn("Yield")
	table.AddColumn("Retail Price")
	table.AddColumn("Cost/Cup")
	for _, p := range points {
		table.AddRow(p.Label, fmt.Sprintf("%.1f%%", p.YieldPercent),
			fmt.Sprintf("%s %s", money(p.RetailPrice), p.RetailUnit), money(p.ActualCost))
	}
	uc.console.Print(table.Render())
}

// renderDistribution desenha o histograma e uma amostra da curva de densidade.
func (uc *DashboardUseCase) renderDistribution(ds *pricing.Dataset, filter entity.ItemFilter) {
	dist, err := ds.Distribution(filter)
	if len(dist.Bins) == 0 {
		uc.console.LogWarning("No items match the current filters")
		return
	}

	bars := make([]types.BarValue, 0, len(dist.Bins))
	for _, b := range dist.Bins {
		bars = append(bars, types.BarValue{
			Label: fmt.Sprintf("%s-%s", money(b.Lower), money(b.Upper)),
			Value: b.Density,
			Note:  fmt.Sprintf("%d", b.Count),
		})
	}
	uc.console.DisplayBars(fmt.Sprintf("Cost per Cup Distribution (%d items)", dist.Count), bars)

	markers := make([]string, 0, len(dist.Markers))
	for _, m := range dist.Markers {
		markers = append(markers, fmt.Sprintf("%-7s %s", m.Name+":", money(m.Value)))
	}

	if errors.Is(err, pricing.ErrInsufficientData) {
		uc.console.DisplayPanel("Markers", markers)
		uc.console.LogWarning("Density curve skipped: %s", err)
		return
	}
	markers = append(markers, fmt.Sprintf("Bandwidth: %.4f (Scott)", dist.Bandwidth))
	uc.console.DisplayPanel("Markers", markers)

	step := len(dist.Density) / densityBars
	if step < 1 {
		step = 1
	}
	var curve []types.BarValue
	for i := 0; i < len(dist.Density); i += step {
		p := dist.Density[i]
		curve = append(curve, types.BarValue{Label: money(p.X), Value: p.Y})
	}
	uc.console.DisplayBars("Kernel Density Estimate", curve)
}

// renderCompare compara preço de varejo com o custo real por xícara dos itens mais baratos.
func (uc *DashboardUseCase) renderCompare(view entity.FilteredView) {
	items := pricing.CheapestItems(view.Records, pricing.DefaultCheapestItems)
	if len(items) == 0 {
		uc.console.LogWarning("No items match the current filters")
		return
	}

	table := uc.console.CreateTable()
	table.AddColumn("Item")
	table.AddColumn("Retail Price")
	table.AddColumn("Cost/Cup")
	table.AddColumn("Yield Loss")
	table.AddColumn("Tier")

	bars := make([]types.BarValue, 0, len(items))
	for _, r := range items {
		loss := r.ActualCost - r.RetailPrice*r.CupEquivalentSize
		table.AddRow(
			r.Label(),
			fmt.Sprintf("%s %s", money(r.RetailPrice), r.RetailPriceUnit),
			money(r.ActualCost),
			money(loss),
			tierLabel(r.Tier),
		)
		bars = append(bars, types.BarValue{Label: r.Label(), Value: r.ActualCost, Note: money(r.ActualCost)})
	}
	uc.console.Print(table.Render())
	uc.console.DisplayBars("Most Affordable Items (cost per cup)", bars)
}

// renderEstimate exibe o resultado da calculadora.
func (uc *DashboardUseCase) renderEstimate(est entity.CostEstimate) {
	lines := []string{
		fmt.Sprintf("Daily cups:     %.2f (fruit %.2f, vegetables %.2f)", est.DailyCups, est.FruitCups, est.VegetableCups),
		fmt.Sprintf("Price per cup:  %s", money(est.PricePerCup)),
	}
	if len(est.Items) > 0 {
		lines = append(lines, fmt.Sprintf("Selected items: %s (%d matching record(s))", strings.Join(est.Items, ", "), est.MatchedRecords))
	}
	uc.console.DisplayPanel("Custom Household Estimate", lines)

	if est.UsedFallback {
		uc.console.LogWarning("None of the selected items matched; using the overall average price")
	}
	if est.DailyCups == 0 {
		uc.console.LogWarning("Household is empty; add --adults, --children or --teens")
	}

	table := uc.console.CreateTable()
	table.AddColumn("Period")
	table.AddColumn("Cost")
	table.AddRow(entity.PeriodDaily.String(), money(est.Daily))
	table.AddRow(entity.PeriodWeekly.String(), money(est.Weekly))
	table.AddRow(entity.PeriodMonthly.String(), money(est.Monthly))
	table.AddRow(entity.PeriodYearly.String(), money(est.Yearly))
	uc.console.Print(table.Render())

	uc.console.LogSuccess("%s", est.Summary())
}
