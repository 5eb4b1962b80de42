package pricing

import (
	"strings"

	"github.com/diillson/produce-finops-dashboard-go/internal/domain/entity"
)

// ApplyFilter narrows records by item membership, cup unit and tier (all conjunctive).
// An empty filter returns every record; an empty result is not an error.
// Item lists made only of blank names do not restrict anything.
func ApplyFilter(records []entity.PriceRecord, f entity.ItemFilter) []entity.PriceRecord {
	var items map[string]struct{}
	if f.HasItems() {
		items = make(map[string]struct{}, len(f.Items))
		for _, it := range f.Items {
			if name := NormalizeItemName(it); name != "" {
				items[name] = struct{}{}
			}
		}
	}
	unit := strings.TrimSpace(f.Unit)

	out := make([]entity.PriceRecord, 0, len(records))
	for _, r := range records {
		if items != nil {
			if _, ok := items[r.Item]; !ok {
				continue
			}
		}
		if unit != "" && !strings.EqualFold(r.CupEquivalentUnit, unit) {
			continue
		}
		if f.Tier != entity.TierUnknown && r.Tier != f.Tier {
			continue
		}
		out = append(out, r)
	}
	return out
}
