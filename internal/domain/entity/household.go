package entity

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Period is a projection horizon expressed in days.
type Period int

const (
	PeriodDaily   Period = 1
	PeriodWeekly  Period = 7
	PeriodMonthly Period = 30
	PeriodYearly  Period = 365
)

// Periods returns the projection periods in display order.
func Periods() []Period {
	return []Period{PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodYearly}
}

// Days returns the period multiplier.
func (p Period) Days() float64 {
	return float64(p)
}

func (p Period) String() string {
	switch p {
	case PeriodDaily:
		return "Daily"
	case PeriodWeekly:
		return "Weekly"
	case PeriodMonthly:
		return "Monthly"
	case PeriodYearly:
		return "Yearly"
	default:
		return fmt.Sprintf("%dd", int(p))
	}
}

// ParsePeriod aceita "daily", "weekly", "monthly" ou "yearly" (case-insensitive).
func ParsePeriod(s string) (Period, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "daily", "day":
		return PeriodDaily, nil
	case "weekly", "week":
		return PeriodWeekly, nil
	case "monthly", "month":
		return PeriodMonthly, nil
	case "yearly", "year", "annual":
		return PeriodYearly, nil
	}
	return 0, fmt.Errorf("unknown period %q (use daily, weekly, monthly or yearly)", s)
}

// AgeGroup is one row of the daily fruit/vegetable cup recommendations.
type AgeGroup struct {
	Key           string  `json:"key"`
	Label         string  `json:"label"`
	FruitCups     float64 `json:"fruit_cups"`
	VegetableCups float64 `json:"vegetable_cups"`
}

// TotalCups is always derived, never stored.
func (g AgeGroup) TotalCups() float64 {
	return g.FruitCups + g.VegetableCups
}

// HouseholdType is a named household composition from the fixed catalogue.
// Members holds age group keys, one entry per person.
type HouseholdType struct {
	Key         string   `json:"key"`
	Description string   `json:"description"`
	Members     []string `json:"members"`
}

// TierCost is the projected cost of one household at one benchmark price.
type TierCost struct {
	Benchmark   Benchmark `json:"benchmark"`
	PricePerCup float64   `json:"price_per_cup"`
	Daily       float64   `json:"daily"`
	Weekly      float64   `json:"weekly"`
	Monthly     float64   `json:"monthly"`
	Yearly      float64   `json:"yearly"`
}

// ForPeriod returns the cost for the requested period.
func (c TierCost) ForPeriod(p Period) float64 {
	switch p {
	case PeriodDaily:
		return c.Daily
	case PeriodWeekly:
		return c.Weekly
	case PeriodMonthly:
		return c.Monthly
	case PeriodYearly:
		return c.Yearly
	default:
		return c.Daily * p.Days()
	}
}

// HouseholdCostRow is the denormalized household x benchmark x period row.
type HouseholdCostRow struct {
	Key           string     `json:"key"`
	Description   string     `json:"household_type"`
	DailyCups     float64    `json:"usda_daily_cups"`
	FruitCups     float64    `json:"fruit_cups_daily"`
	VegetableCups float64    `json:"vegetable_cups_daily"`
	Members       int        `json:"total_members"`
	Costs         []TierCost `json:"costs"`
}

// Cost looks up the projected cost for a benchmark and period.
func (r HouseholdCostRow) Cost(b Benchmark, p Period) (float64, bool) {
	for _, c := range r.Costs {
		if c.Benchmark == b {
			return c.ForPeriod(p), true
		}
	}
	return 0, false
}

// HouseholdCostHeaders returns the wide-table column names in export order.
func HouseholdCostHeaders() []string {
	headers := []string{"Household Type", "USDA Daily Cups", "Fruit Cups Daily", "Vegetable Cups Daily", "Total Members"}
	for _, b := range Benchmarks() {
		for _, p := range Periods() {
			headers = append(headers, fmt.Sprintf("%s_%s_Cost", b, p))
		}
	}
	return headers
}

// CostValues flattens Costs following the order of HouseholdCostHeaders.
func (r HouseholdCostRow) CostValues() []float64 {
	values := make([]float64, 0, len(Benchmarks())*len(Periods()))
	for _, b := range Benchmarks() {
		for _, p := range Periods() {
			v, _ := r.Cost(b, p)
			values = append(values, v)
		}
	}
	return values
}

// HouseholdComposition is the calculator input: number of people per age bracket.
type HouseholdComposition struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Teens    int `json:"teens"`
}

// CostEstimate is the result of the custom household calculator.
type CostEstimate struct {
	Composition    HouseholdComposition `json:"composition"`
	Form           string               `json:"form,omitempty"`
	Items          []string             `json:"items,omitempty"`
	DailyCups      float64              `json:"daily_cups"`
	FruitCups      float64              `json:"fruit_cups"`
	VegetableCups  float64              `json:"vegetable_cups"`
	PricePerCup    float64              `json:"price_per_cup"`
	MatchedRecords int                  `json:"matched_records"`
	UsedFallback   bool                 `json:"used_fallback"`
	Daily          float64              `json:"daily"`
	Weekly         float64              `json:"weekly"`
	Monthly        float64              `json:"monthly"`
	Yearly         float64              `json:"yearly"`
}

// Summary produz a frase de resumo exibida após o cálculo.
func (e CostEstimate) Summary() string {
	return fmt.Sprintf("Estimated annual cost for %d adult(s), %d child(ren), and %d teen(s): $%s",
		e.Composition.Adults, e.Composition.Children, e.Composition.Teens, formatThousands(e.Yearly))
}

// formatThousands formats a value rounded to whole dollars with comma separators.
func formatThousands(v float64) string {
	return message.NewPrinter(language.English).Sprintf("%.0f", v)
}
