package aggregator

import (
	"errors"
	"strconv"
	"time"

	"github.com/montanaflynn/stats"

	"github.com/laudwin/Dashlite-v5/internal/analytics/core/domain"
)

var ErrInvalidProfileKind = errors.New("invalid profile kind")

var weekdayOrder = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Profile summarizes daily totals by a recurring slot (fiscal month, day
// of month or weekday). Slots without any observed day are omitted; the
// rest follow the slot's natural order.
func Profile(ds *domain.Dataset, kind domain.ProfileKind) ([]domain.ProfileBucket, error) {
	order, slotOf, err := profileSlots(kind)
	if err != nil {
		return nil, err
	}
	if ds.Len() == 0 {
		return []domain.ProfileBucket{}, nil
	}

	daily, err := Aggregate(ds, domain.Daily, "")
	if err != nil {
		return nil, err
	}

	samples := make(map[string][]float64)
	for i, p := range daily.Periods {
		slot := slotOf(p.Start)
		samples[slot] = append(samples[slot], daily.PeriodTotal(i))
	}

	out := make([]domain.ProfileBucket, 0, len(samples))
	for _, slot := range order {
		data, ok := samples[slot]
		if !ok {
			continue
		}
		out = append(out, summarize(slot, data))
	}
	return out, nil
}

func profileSlots(kind domain.ProfileKind) ([]string, func(time.Time) string, error) {
	switch kind {
	case domain.ProfileFiscalMonth:
		return domain.FiscalMonths, func(t time.Time) string {
			return domain.NewFiscalPeriod(t.Month()).Label
		}, nil
	case domain.ProfileDayOfMonth:
		days := make([]string, 31)
		for i := range days {
			days[i] = strconv.Itoa(i + 1)
		}
		return days, func(t time.Time) string {
			return strconv.Itoa(t.Day())
		}, nil
	case domain.ProfileWeekday:
		return weekdayOrder, func(t time.Time) string {
			return t.Weekday().String()[:3]
		}, nil
	default:
		return nil, nil, ErrInvalidProfileKind
	}
}

func summarize(label string, data []float64) domain.ProfileBucket {
	b := domain.ProfileBucket{Label: label, Count: len(data)}
	b.Mean, _ = stats.Mean(data)
	b.Min, _ = stats.Min(data)
	b.Max, _ = stats.Max(data)
	b.Median, _ = stats.Median(data)

	// Quartile needs two samples to split the data in halves.
	if len(data) < 2 {
		b.Q1, b.Q3 = b.Median, b.Median
		return b
	}
	q, _ := stats.Quartile(data)
	b.Q1, b.Q3 = q.Q1, q.Q3
	return b
}
