package aggregator

import (
	"errors"
	"math"

	"github.com/laudwin/Dashlite-v5/internal/analytics/core/domain"
)

// RatioEpsilon replaces zero denominators in Ratio. A period with signal but
// no noise yields a very large finite ratio, capped at math.MaxFloat64.
const RatioEpsilon = 1e-9

var ErrGranularityMismatch = errors.New("aggregations use different granularities")

// NormalizeToPercent rescales every period so its categories sum to 100.
// Periods whose total is 0 are reported as all zeros.
func NormalizeToPercent(r *domain.AggregationResult) *domain.AggregationResult {
	out := &domain.AggregationResult{Values: [][]float64{}}
	if r == nil {
		return out
	}
	out.Granularity = r.Granularity
	out.Field = r.Field
	out.Periods = append([]domain.Period{}, r.Periods...)
	out.Categories = append([]string{}, r.Categories...)

	out.Values = make([][]float64, len(r.Values))
	for i, row := range r.Values {
		total := r.PeriodTotal(i)
		norm := make([]float64, len(row))
		if total != 0 {
			for j, v := range row {
				norm[j] = v / total * 100
			}
		}
		out.Values[i] = norm
	}
	return out
}

// Ratio divides the numerator's period totals by the denominator's over the
// union of both period axes. A period missing on one side counts as 0 there.
func Ratio(num, den *domain.AggregationResult) (*domain.RatioSeries, error) {
	if num == nil || den == nil {
		return nil, errors.New("ratio needs two aggregations")
	}
	if num.Granularity != den.Granularity {
		return nil, ErrGranularityMismatch
	}

	numTotals := totalsByKey(num)
	denTotals := totalsByKey(den)

	axis := make(map[string]domain.Period)
	for _, p := range num.Periods {
		axis[p.Key()] = p
	}
	for _, p := range den.Periods {
		axis[p.Key()] = p
	}

	out := &domain.RatioSeries{Granularity: num.Granularity}
	for _, p := range axis {
		out.Periods = append(out.Periods, p)
	}
	sortPeriods(out.Periods, num.Granularity)

	out.Values = make([]float64, len(out.Periods))
	for i, p := range out.Periods {
		d := denTotals[p.Key()]
		if d == 0 {
			d = RatioEpsilon
		}
		out.Values[i] = math.Min(numTotals[p.Key()]/d, math.MaxFloat64)
	}
	return out, nil
}

// PeriodOverPeriodChange compares each category's share of the first period
// with its share of the last one, in percentage points.
func PeriodOverPeriodChange(r *domain.AggregationResult) (map[string]domain.CategoryChange, error) {
	if r == nil || len(r.Periods) < 2 {
		got := 0
		if r != nil {
			got = len(r.Periods)
		}
		return nil, &domain.InsufficientDataError{Need: 2, Got: got}
	}

	first, last := 0, len(r.Periods)-1
	firstTotal := r.PeriodTotal(first)
	lastTotal := r.PeriodTotal(last)

	out := make(map[string]domain.CategoryChange, len(r.Categories))
	for j, c := range r.Categories {
		start := share(r.Values[first][j], firstTotal)
		end := share(r.Values[last][j], lastTotal)
		out[c] = domain.CategoryChange{
			StartPct: start,
			EndPct:   end,
			ChangePP: end - start,
		}
	}
	return out, nil
}

func share(v, total float64) float64 {
	if total == 0 {
		return 0
	}
	return v / total * 100
}

func totalsByKey(r *domain.AggregationResult) map[string]float64 {
	out := make(map[string]float64, len(r.Periods))
	for i, p := range r.Periods {
		out[p.Key()] += r.PeriodTotal(i)
	}
	return out
}
