package entity

import (
	"fmt"
	"strings"
	"time"
)

// SummaryStats are the headline numbers of the loaded dataset.
type SummaryStats struct {
	TotalItems          int               `json:"total_items"`
	UniqueItems         int               `json:"unique_items"`
	AverageYieldPercent float64           `json:"avg_yield"`
	AverageCost         float64           `json:"avg_actual_cost"`
	MedianCost          float64           `json:"median_actual_cost"`
	MinCost             float64           `json:"min_actual_cost"`
	MaxCost             float64           `json:"max_actual_cost"`
	MostEfficientItem   string            `json:"most_efficient"`
	HighestYieldPercent float64           `json:"highest_yield"`
	LowestCostItem      string            `json:"lowest_cost_item"`
	LowestCost          float64           `json:"lowest_cost"`
	TierCounts          map[PriceTier]int `json:"tier_counts"`
	BudgetItems         int               `json:"budget_items"`
	PriceCheckMatches   int               `json:"price_check_matches"`
	HouseholdTypes      int               `json:"household_types"`
}

// CostRange formats the min/max actual cost like "$0.25 - $3.47".
func (s SummaryStats) CostRange() string {
	return fmt.Sprintf("$%.2f - $%.2f", s.MinCost, s.MaxCost)
}

// ItemFilter narrows the record set. Zero values mean "no restriction".
type ItemFilter struct {
	Items []string  `json:"items,omitempty"`
	Unit  string    `json:"unit,omitempty"`
	Tier  PriceTier `json:"tier,omitempty"`
}

// IsEmpty reports whether the filter restricts nothing. Blank item names and
// a blank unit do not count as restrictions.
func (f ItemFilter) IsEmpty() bool {
	return !f.HasItems() && strings.TrimSpace(f.Unit) == "" && f.Tier == TierUnknown
}

// HasItems reports whether at least one non-blank item name was given.
func (f ItemFilter) HasItems() bool {
	for _, it := range f.Items {
		if strings.TrimSpace(it) != "" {
			return true
		}
	}
	return false
}

// HistogramBin is one equal-width bin of the cost histogram.
type HistogramBin struct {
	Lower   float64 `json:"lower"`
	Upper   float64 `json:"upper"`
	Count   int     `json:"count"`
	Density float64 `json:"density"`
}

// DensityPoint is one evaluation of the kernel density estimate.
type DensityPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Marker is a named reference value (Min, Q1, Median, Q3, Max).
type Marker struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Distribution is the histogram + KDE view of the actual cost column.
type Distribution struct {
	Count     int            `json:"count"`
	Bins      []HistogramBin `json:"bins"`
	Density   []DensityPoint `json:"density,omitempty"`
	Bandwidth float64        `json:"bandwidth,omitempty"`
	Markers   []Marker       `json:"markers"`
}

// YieldPoint relates the edible yield of an item to its actual cost.
type YieldPoint struct {
	Label        string  `json:"label"`
	YieldPercent float64 `json:"yield_percent"`
	ActualCost   float64 `json:"actual_cost"`
	RetailPrice  float64 `json:"retail_price"`
	RetailUnit   string  `json:"retail_unit"`
}

// YieldAnalysis summarises how yield loss affects actual cost.
type YieldAnalysis struct {
	AverageYieldPercent float64      `json:"avg_yield_percent"`
	MostEfficientItem   string       `json:"most_efficient_item"`
	HighestYieldPercent float64      `json:"highest_yield_percent"`
	LowestYieldItem     string       `json:"lowest_yield_item"`
	LowestYieldPercent  float64      `json:"lowest_yield_percent"`
	Points              []YieldPoint `json:"points"`
}

// FilteredView is the result of applying an ItemFilter to the dataset.
type FilteredView struct {
	Filter           ItemFilter    `json:"filter"`
	Records          []PriceRecord `json:"records"`
	GlobalThresholds Thresholds    `json:"global_thresholds"`
	// LocalThresholds são apenas informativos: nunca reclassificam registros.
	LocalThresholds *Thresholds `json:"local_thresholds,omitempty"`
	AverageCost     float64     `json:"avg_actual_cost"`
}

// DashboardReport aggregates everything exported by the dashboard.
type DashboardReport struct {
	ID          string             `json:"id"`
	GeneratedAt time.Time          `json:"generated_at"`
	Source      string             `json:"source"`
	CostSource  string             `json:"cost_source"`
	Period      Period             `json:"period"`
	Summary     SummaryStats       `json:"summary"`
	Thresholds  Thresholds         `json:"thresholds"`
	Benchmarks  TierBenchmarks     `json:"benchmarks"`
	Households  []HouseholdCostRow `json:"households"`
	View        FilteredView       `json:"view"`
	Estimate    *CostEstimate      `json:"estimate,omitempty"`
	Issues      []RowIssue         `json:"issues,omitempty"`
}
