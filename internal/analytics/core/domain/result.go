package domain

const (
	// UngroupedCategory is the single series of an aggregation without a
	// grouping field.
	UngroupedCategory = "total"
	// UnlabeledCategory collects events that lack the grouping label.
	UnlabeledCategory = "Unlabeled"
)

// AggregationResult is a dense period x category matrix of sums.
type AggregationResult struct {
	Granularity Granularity
	Field       string // grouping field, empty when ungrouped
	Periods     []Period
	Categories  []string
	Values      [][]float64 // [period][category]
}

func (r *AggregationResult) Empty() bool {
	return r == nil || len(r.Periods) == 0
}

// Value returns the sum for a period/category pair, 0 when absent.
func (r *AggregationResult) Value(period Period, category string) float64 {
	pi := r.periodIndex(period.Key())
	ci := r.categoryIndex(category)
	if pi < 0 || ci < 0 {
		return 0
	}
	return r.Values[pi][ci]
}

// PeriodTotal sums every category of the i-th period.
func (r *AggregationResult) PeriodTotal(i int) float64 {
	var total float64
	for _, v := range r.Values[i] {
		total += v
	}
	return total
}

// Series returns the values of one category along the period axis.
func (r *AggregationResult) Series(category string) []float64 {
	ci := r.categoryIndex(category)
	out := make([]float64, len(r.Periods))
	if ci < 0 {
		return out
	}
	for i := range r.Periods {
		out[i] = r.Values[i][ci]
	}
	return out
}

// Total sums the whole matrix.
func (r *AggregationResult) Total() float64 {
	var total float64
	for i := range r.Values {
		total += r.PeriodTotal(i)
	}
	return total
}

func (r *AggregationResult) periodIndex(key string) int {
	for i, p := range r.Periods {
		if p.Key() == key {
			return i
		}
	}
	return -1
}

func (r *AggregationResult) categoryIndex(category string) int {
	for i, c := range r.Categories {
		if c == category {
			return i
		}
	}
	return -1
}

// RatioSeries is a per-period ratio between two aggregations.
type RatioSeries struct {
	Granularity Granularity
	Periods     []Period
	Values      []float64
}

// CategoryChange is a category's share of the first and last period.
type CategoryChange struct {
	StartPct float64
	EndPct   float64
	ChangePP float64
}

// ProfileKind selects the recurring slot a profile groups daily totals by.
type ProfileKind string

const (
	ProfileFiscalMonth ProfileKind = "fiscal_month"
	ProfileDayOfMonth  ProfileKind = "day_of_month"
	ProfileWeekday     ProfileKind = "weekday"
)

// ProfileBucket summarizes the daily totals that fall into one slot.
type ProfileBucket struct {
	Label  string
	Count  int
	Mean   float64
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

type CategoryTotal struct {
	Category string
	Total    float64
}
