package aggregator

import (
	"sort"

	"github.com/laudwin/Dashlite-v5/internal/analytics/core/domain"
)

// Aggregate sums event measures by (period, category). An empty field means
// no grouping: every event lands in domain.UngroupedCategory.
//
// Every category seen anywhere in the dataset gets an entry in every
// period, zero when absent, so stacked series never have gaps.
func Aggregate(ds *domain.Dataset, g domain.Granularity, field string) (*domain.AggregationResult, error) {
	if _, err := domain.ParseGranularity(string(g)); err != nil {
		return nil, err
	}
	if field != "" && !ds.HasDimension(field) {
		return nil, missingField(ds, field)
	}

	res := &domain.AggregationResult{
		Granularity: g,
		Field:       field,
		Periods:     []domain.Period{},
		Categories:  []string{},
		Values:      [][]float64{},
	}
	if ds.Len() == 0 {
		return res, nil
	}

	periods, err := Bucketize(ds, g)
	if err != nil {
		return nil, err
	}

	byKey := make(map[string]domain.Period)
	sums := make(map[string]map[string]float64)
	seen := make(map[string]struct{})

	for i, e := range ds.Events {
		p := periods[i]
		category := domain.UngroupedCategory
		if field != "" {
			category = e.Label(field)
		}

		if _, ok := byKey[p.Key()]; !ok {
			byKey[p.Key()] = p
			sums[p.Key()] = make(map[string]float64)
		}
		sums[p.Key()][category] += e.Value()
		seen[category] = struct{}{}
	}

	for _, p := range byKey {
		res.Periods = append(res.Periods, p)
	}
	sortPeriods(res.Periods, g)

	for c := range seen {
		res.Categories = append(res.Categories, c)
	}
	sort.Strings(res.Categories)

	res.Values = make([][]float64, len(res.Periods))
	for i, p := range res.Periods {
		row := make([]float64, len(res.Categories))
		for j, c := range res.Categories {
			row[j] = sums[p.Key()][c]
		}
		res.Values[i] = row
	}

	return res, nil
}

func sortPeriods(periods []domain.Period, g domain.Granularity) {
	sort.Slice(periods, func(i, j int) bool {
		return periods[i].Less(periods[j], g)
	})
}

// missingField builds the SchemaError for a field ds does not carry. A nil
// dataset has no dimensions.
func missingField(ds *domain.Dataset, field string) error {
	name := ""
	if ds != nil {
		name = ds.Name
	}
	return &domain.SchemaError{Dataset: name, Field: field}
}
