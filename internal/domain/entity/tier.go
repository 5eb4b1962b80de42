package entity

import (
	"fmt"
	"strings"
)

// PriceTier is the quartile-derived affordability bucket of a record.
type PriceTier int

const (
	TierUnknown PriceTier = iota
	TierLow
	TierBudget
	TierModerate
	TierHigh
)

// PriceTiers lists the tiers from cheapest to most expensive.
func PriceTiers() []PriceTier {
	return []PriceTier{TierLow, TierBudget, TierModerate, TierHigh}
}

// String returns the display label used across tables and exports.
func (t PriceTier) String() string {
	switch t {
	case TierLow:
		return "Low Budget"
	case TierBudget:
		return "Budget"
	case TierModerate:
		return "Moderate"
	case TierHigh:
		return "High Budget"
	default:
		return "Unknown"
	}
}

// Key returns the short benchmark key ("low", "budget", "moderate", "high").
func (t PriceTier) Key() string {
	switch t {
	case TierLow:
		return "low"
	case TierBudget:
		return "budget"
	case TierModerate:
		return "moderate"
	case TierHigh:
		return "high"
	default:
		return ""
	}
}

// MarshalText permite usar PriceTier como valor e como chave de mapa em JSON.
func (t PriceTier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText é o inverso de MarshalText.
func (t *PriceTier) UnmarshalText(text []byte) error {
	parsed, err := ParsePriceTier(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParsePriceTier accepts the display label, the key or a dashed form ("low-budget").
func ParsePriceTier(s string) (PriceTier, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer("-", " ", "_", " ").Replace(normalized)

	switch normalized {
	case "low", "low budget":
		return TierLow, nil
	case "budget":
		return TierBudget, nil
	case "moderate":
		return TierModerate, nil
	case "high", "high budget":
		return TierHigh, nil
	}
	return TierUnknown, fmt.Errorf("unknown price tier %q", s)
}

// Thresholds holds the 25th/50th/75th percentiles of the actual cost column.
type Thresholds struct {
	Q1 float64 `json:"q1"`
	Q2 float64 `json:"median"`
	Q3 float64 `json:"q3"`
}

// Classify bins a cost into the right-closed quartile intervals.
// Costs equal to a threshold fall into the lower bin.
func (th Thresholds) Classify(cost float64) PriceTier {
	switch {
	case cost <= th.Q1:
		return TierLow
	case cost <= th.Q2:
		return TierBudget
	case cost <= th.Q3:
		return TierModerate
	default:
		return TierHigh
	}
}

// Benchmark identifies a reference price used for household projections.
type Benchmark string

const (
	BenchmarkLow      Benchmark = "low"
	BenchmarkBudget   Benchmark = "budget"
	BenchmarkModerate Benchmark = "moderate"
	BenchmarkHigh     Benchmark = "high"
	BenchmarkAverage  Benchmark = "avg"
)

// Benchmarks returns the projection benchmarks in display order.
func Benchmarks() []Benchmark {
	return []Benchmark{BenchmarkLow, BenchmarkBudget, BenchmarkModerate, BenchmarkHigh, BenchmarkAverage}
}

// Title returns a human label, e.g. "Low Budget" or "Average".
func (b Benchmark) Title() string {
	switch b {
	case BenchmarkLow:
		return "Low Budget"
	case BenchmarkBudget:
		return "Budget"
	case BenchmarkModerate:
		return "Moderate"
	case BenchmarkHigh:
		return "High Budget"
	case BenchmarkAverage:
		return "Average"
	default:
		return string(b)
	}
}

// TierBenchmarks contains the mean actual cost per tier plus overall statistics.
type TierBenchmarks struct {
	Low      float64 `json:"low"`
	Budget   float64 `json:"budget"`
	Moderate float64 `json:"moderate"`
	High     float64 `json:"high"`
	Average  float64 `json:"avg"`
	Median   float64 `json:"median"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	// FellBack lista os tiers vazios que receberam a média geral.
	FellBack []PriceTier `json:"fell_back,omitempty"`
}

// Price returns the reference price for a projection benchmark.
func (b TierBenchmarks) Price(bm Benchmark) float64 {
	switch bm {
	case BenchmarkLow:
		return b.Low
	case BenchmarkBudget:
		return b.Budget
	case BenchmarkModerate:
		return b.Moderate
	case BenchmarkHigh:
		return b.High
	default:
		return b.Average
	}
}

// ForTier returns the mean price of a tier.
func (b TierBenchmarks) ForTier(t PriceTier) float64 {
	return b.Price(Benchmark(t.Key()))
}

// SavingsPercent is how much cheaper the tier is compared with the overall average.
func (b TierBenchmarks) SavingsPercent(t PriceTier) float64 {
	if b.Average == 0 {
		return 0
	}
	return (1 - b.ForTier(t)/b.Average) * 100
}
