package pricing

import (
	"strings"

	"github.com/diillson/produce-finops-dashboard-go/internal/domain/entity"
)

// ProjectCost is daily_target * price * period days.
func ProjectCost(dailyCups, pricePerCup float64, period entity.Period) float64 {
	return dailyCups * pricePerCup * period.Days()
}

// tierCost monta o custo de um benchmark em todos os períodos.
func tierCost(b entity.Benchmark, dailyCups, price float64) entity.TierCost {
	return entity.TierCost{
		Benchmark:   b,
		PricePerCup: price,
		Daily:       ProjectCost(dailyCups, price, entity.PeriodDaily),
		Weekly:      ProjectCost(dailyCups, price, entity.PeriodWeekly),
		Monthly:     ProjectCost(dailyCups, price, entity.PeriodMonthly),
		Yearly:      ProjectCost(dailyCups, price, entity.PeriodYearly),
	}
}

// ProjectHouseholds builds one wide cost row per household type.
func ProjectHouseholds(households []entity.HouseholdType, bm entity.TierBenchmarks) ([]entity.HouseholdCostRow, error) {
	rows := make([]entity.HouseholdCostRow, 0, len(households))

	for _, h := range households {
		fruit, vegetable, err := DailyTarget(h.Members)
		if err != nil {
			return nil, err
		}
		daily := fruit + vegetable

		row := entity.HouseholdCostRow{
			Key:           h.Key,
			Description:   h.Description,
			DailyCups:     daily,
			FruitCups:     fruit,
			VegetableCups: vegetable,
			Members:       len(h.Members),
		}
		for _, b := range entity.Benchmarks() {
			row.Costs = append(row.Costs, tierCost(b, daily, bm.Price(b)))
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// EstimateRequest holds the calculator inputs.
type EstimateRequest struct {
	Composition entity.HouseholdComposition
	Form        string
	Items       []string
}

const maxMembersPerGroup = 10

// Estimate runs the custom calculator against the dataset.
// With picked items the price is the mean cost of those items (restricted to Form when set);
// an empty selection falls back to the overall average.
func Estimate(ds *Dataset, req EstimateRequest) (entity.CostEstimate, error) {
	c := req.Composition
	for _, n := range []int{c.Adults, c.Children, c.Teens} {
		if n < 0 || n > maxMembersPerGroup {
			return entity.CostEstimate{}, ErrInvalidHousehold
		}
	}

	var members []string
	members = appendN(members, CompositeAdult, c.Adults)
	members = appendN(members, CompositeChild, c.Children)
	members = appendN(members, CompositeTeen, c.Teens)

	fruit, vegetable, err := DailyTarget(members)
	if err != nil {
		return entity.CostEstimate{}, err
	}

	est := entity.CostEstimate{
		Composition:   c,
		Form:          strings.TrimSpace(req.Form),
		Items:         req.Items,
		FruitCups:     fruit,
		VegetableCups: vegetable,
		DailyCups:     fruit + vegetable,
		PricePerCup:   ds.Benchmarks().Average,
	}

	if len(req.Items) > 0 {
		matched := ApplyFilter(ds.Records(), entity.ItemFilter{Items: req.Items})
		if est.Form != "" {
			matched = filterByForm(matched, est.Form)
		}
		est.MatchedRecords = len(matched)
		if len(matched) > 0 {
			est.PricePerCup = MeanCost(matched)
		} else {
			est.UsedFallback = true
		}
	}

	est.Daily = ProjectCost(est.DailyCups, est.PricePerCup, entity.PeriodDaily)
	est.Weekly = ProjectCost(est.DailyCups, est.PricePerCup, entity.PeriodWeekly)
	est.Monthly = ProjectCost(est.DailyCups, est.PricePerCup, entity.PeriodMonthly)
	est.Yearly = ProjectCost(est.DailyCups, est.PricePerCup, entity.PeriodYearly)

	return est, nil
}

func appendN(dst []string, key string, n int) []string {
	for i := 0; i < n; i++ {
		dst = append(dst, key)
	}
	return dst
}

func filterByForm(records []entity.PriceRecord, form string) []entity.PriceRecord {
	out := make([]entity.PriceRecord, 0, len(records))
	for _, r := range records {
		if strings.EqualFold(r.Form, form) {
			out = append(out, r)
		}
	}
	return out
}
