package pricing

import (
	"sort"

	"github.com/diillson/produce-finops-dashboard-go/internal/domain/entity"
)

func distinct(records []entity.PriceRecord, key func(entity.PriceRecord) string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, r := range records {
		k := key(r)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
