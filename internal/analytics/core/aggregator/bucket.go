// Package aggregator turns filtered mention datasets into period-bucketed
// series. Every function is pure: inputs are never mutated and nothing is
// retained between calls, so concurrent requests need no coordination.
//
// All bucketing happens in UTC. Weeks start on Monday.
package aggregator

import (
	"time"

	"github.com/jinzhu/now"

	"github.com/laudwin/Dashlite-v5/internal/analytics/core/domain"
)

// WeekStart is the first day of a weekly bucket.
const WeekStart = time.Monday

var calendar = &now.Config{
	WeekStartDay: WeekStart,
	TimeLocation: time.UTC,
}

// PeriodOf maps a timestamp to its bucket under g.
func PeriodOf(ts time.Time, g domain.Granularity) (domain.Period, error) {
	t := calendar.With(ts.UTC())

	switch g {
	case domain.Daily:
		return domain.NewPeriod(t.BeginningOfDay()), nil
	case domain.Weekly:
		return domain.NewPeriod(t.BeginningOfWeek()), nil
	case domain.Monthly:
		return domain.NewPeriod(t.BeginningOfMonth()), nil
	case domain.Yearly:
		return domain.NewPeriod(t.BeginningOfYear()), nil
	case domain.FiscalMonth:
		return domain.NewFiscalPeriod(t.Month()), nil
	default:
		return domain.Period{}, domain.ErrInvalidGranularity
	}
}

// Bucketize assigns one period to each event, index-aligned with ds.Events.
func Bucketize(ds *domain.Dataset, g domain.Granularity) ([]domain.Period, error) {
	if _, err := domain.ParseGranularity(string(g)); err != nil {
		return nil, err
	}
	if ds.Len() == 0 {
		return []domain.Period{}, nil
	}

	periods := make([]domain.Period, len(ds.Events))
	for i, e := range ds.Events {
		p, err := PeriodOf(e.Timestamp, g)
		if err != nil {
			return nil, err
		}
		periods[i] = p
	}
	return periods, nil
}
