package aggregator

import (
	"errors"
	"sort"

	"github.com/laudwin/Dashlite-v5/internal/analytics/core/domain"
)

var ErrFieldRequired = errors.New("grouping field is required")

// CategoryTotals sums the measure per category over the whole dataset.
// With a non-empty order the output has exactly those categories, in that
// order, zero-filled; otherwise every observed category sorted by name.
func CategoryTotals(ds *domain.Dataset, field string, order []string) ([]domain.CategoryTotal, error) {
	sums, err := sumByCategory(ds, field)
	if err != nil {
		return nil, err
	}

	if len(order) > 0 {
		out := make([]domain.CategoryTotal, len(order))
		for i, c := range order {
			out[i] = domain.CategoryTotal{Category: c, Total: sums[c]}
		}
		return out, nil
	}

	out := make([]domain.CategoryTotal, 0, len(sums))
	for c, v := range sums {
		out = append(out, domain.CategoryTotal{Category: c, Total: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out, nil
}

// TopCategories returns the n largest categories by total, ties broken by
// name. n <= 0 returns all of them.
func TopCategories(ds *domain.Dataset, field string, n int) ([]domain.CategoryTotal, error) {
	totals, err := CategoryTotals(ds, field, nil)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Total > totals[j].Total
	})
	if n > 0 && n < len(totals) {
		totals = totals[:n]
	}
	return totals, nil
}

func sumByCategory(ds *domain.Dataset, field string) (map[string]float64, error) {
	if field == "" {
		return nil, ErrFieldRequired
	}
	if !ds.HasDimension(field) {
		return nil, missingField(ds, field)
	}
	sums := make(map[string]float64)
	for _, e := range ds.Events {
		sums[e.Label(field)] += e.Value()
	}
	return sums, nil
}
