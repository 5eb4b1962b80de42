package pricing

import (
	"fmt"

	"github.com/diillson/produce-finops-dashboard-go/internal/domain/entity"
)

// Options controls how raw rows become a Dataset.
type Options struct {
	CostSource CostSource
	// Tolerance of the precomputed-vs-formula price check; 0 means DefaultPriceTolerance.
	Tolerance float64
	// Households overrides the default catalogue (tests only; nil uses HouseholdCatalogue).
	Households []entity.HouseholdType
}

// LoadReport describes what happened to the raw rows during BuildDataset.
type LoadReport struct {
	RawRows      int
	ValidRecords int
	Issues       []entity.RowIssue
}

// Rejected is the number of rows excluded from cost computation.
func (r LoadReport) Rejected() int {
	return r.RawRows - r.ValidRecords
}

// Dataset is the immutable analytics context built once per load.
// All derived tables are computed in BuildDataset; accessors hand out copies.
type Dataset struct {
	costSource CostSource
	records    []entity.PriceRecord
	thresholds entity.Thresholds
	benchmarks entity.TierBenchmarks
	households []entity.HouseholdCostRow
	summary    entity.SummaryStats
}

// BuildDataset runs clean -> derive -> classify -> benchmark -> project.
// Row-level problems end up in the LoadReport; only an empty result is an error.
func BuildDataset(rows []entity.RawPriceRow, opts Options) (*Dataset, LoadReport, error) {
	report := LoadReport{RawRows: len(rows)}

	source := opts.CostSource
	if source == "" {
		source = CostPrecomputed
	}
	if _, err := ParseCostSource(string(source)); err != nil {
		return nil, report, err
	}
	tolerance := opts.Tolerance
	if tolerance <= 0 {
		tolerance = DefaultPriceTolerance
	}

	cleaned, issues := Clean(rows)
	report.Issues = append(report.Issues, issues...)

	records := make([]entity.PriceRecord, 0, len(cleaned))
	for _, row := range cleaned {
		rec, err := DeriveRecord(row, source, tolerance)
		if err != nil {
			report.Issues = append(report.Issues, entity.RowIssue{Line: row.Line, Item: row.Fruit, Reason: err.Error()})
			continue
		}
		records = append(records, rec)
	}
	report.ValidRecords = len(records)

	if len(records) == 0 {
		return nil, report, ErrEmptyDataset
	}

	thresholds := Quartiles(Costs(records))
	records = Classify(records, thresholds)
	benchmarks := ComputeBenchmarks(records)

	catalogue := opts.Households
	if catalogue == nil {
		catalogue = HouseholdCatalogue()
	}
	households, err := ProjectHouseholds(catalogue, benchmarks)
	if err != nil {
		return nil, report, fmt.Errorf("project household costs: %w", err)
	}

	ds := &Dataset{
		costSource: source,
		records:    records,
		thresholds: thresholds,
		benchmarks: benchmarks,
		households: households,
		summary:    Summarize(records, benchmarks, len(households)),
	}
	return ds, report, nil
}

// CostSource returns the policy used to compute actual costs.
func (d *Dataset) CostSource() CostSource { return d.costSource }

// Len returns the number of valid records.
func (d *Dataset) Len() int { return len(d.records) }

// Records returns a copy of the classified records.
func (d *Dataset) Records() []entity.PriceRecord {
	out := make([]entity.PriceRecord, len(d.records))
	copy(out, d.records)
	return out
}

// Thresholds returns the global quartile thresholds fixed at load time.
func (d *Dataset) Thresholds() entity.Thresholds { return d.thresholds }

// Benchmarks returns the per-tier mean prices.
func (d *Dataset) Benchmarks() entity.TierBenchmarks {
	bm := d.benchmarks
	bm.FellBack = append([]entity.PriceTier(nil), d.benchmarks.FellBack...)
	return bm
}

// Households returns a copy of the household cost table.
func (d *Dataset) Households() []entity.HouseholdCostRow {
	out := make([]entity.HouseholdCostRow, len(d.households))
	for i, h := range d.households {
		h.Costs = append([]entity.TierCost(nil), h.Costs...)
		out[i] = h
	}
	return out
}

// Summary returns the headline statistics.
func (d *Dataset) Summary() entity.SummaryStats {
	s := d.summary
	s.TierCounts = make(map[entity.PriceTier]int, len(d.summary.TierCounts))
	for k, v := range d.summary.TierCounts {
		s.TierCounts[k] = v
	}
	return s
}

// Items returns the sorted distinct item names.
func (d *Dataset) Items() []string {
	return distinct(d.records, func(r entity.PriceRecord) string { return r.Item })
}

// Units returns the sorted distinct cup equivalent units.
func (d *Dataset) Units() []string {
	return distinct(d.records, func(r entity.PriceRecord) string { return r.CupEquivalentUnit })
}

// Forms returns the distinct forms in first-seen order.
func (d *Dataset) Forms() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range d.records {
		if _, ok := seen[r.Form]; ok {
			continue
		}
		seen[r.Form] = struct{}{}
		out = append(out, r.Form)
	}
	return out
}

// View applies a filter. Global thresholds are reported unchanged; the thresholds of
// the filtered subset are attached for information only.
func (d *Dataset) View(f entity.ItemFilter) entity.FilteredView {
	records := ApplyFilter(d.records, f)
	view := entity.FilteredView{
		Filter:           f,
		Records:          records,
		GlobalThresholds: d.thresholds,
		AverageCost:      MeanCost(records),
	}
	if len(records) > 0 && !f.IsEmpty() {
		local := Quartiles(Costs(records))
		view.LocalThresholds = &local
	}
	return view
}

// Distribution builds the histogram/KDE of a filtered view (or the whole set).
func (d *Dataset) Distribution(f entity.ItemFilter) (entity.Distribution, error) {
	return BuildDistribution(Costs(ApplyFilter(d.records, f)), DefaultHistogramBins, DefaultDensityPoints)
}
