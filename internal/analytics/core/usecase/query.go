package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jinzhu/now"
	"github.com/samber/lo"

	"github.com/laudwin/Dashlite-v5/internal/analytics/core/domain"
	"github.com/laudwin/Dashlite-v5/internal/analytics/core/ports"
)

var (
	ErrInvalidDataset   = errors.New("dataset is required")
	ErrInvalidTimeRange = errors.New("invalid time range")
)

// AutoGranularity picks daily or monthly buckets from the range length.
const AutoGranularity = "auto"

// autoDailyLimit is the longest range still bucketed daily under "auto".
const autoDailyLimit = 31 * 24 * time.Hour

// QueryInput is shared by every read use case.
type QueryInput struct {
	Dataset     string
	From        int64 // unix second
	To          int64 // unix second
	Granularity string

	Match   map[string]string
	Exclude map[string]string

	WholeMonths bool // snap the range to calendar months
}

type resolvedQuery struct {
	filter      ports.DatasetFilter
	granularity domain.Granularity
}

func resolve(in QueryInput) (resolvedQuery, error) {
	if strings.TrimSpace(in.Dataset) == "" {
		return resolvedQuery{}, ErrInvalidDataset
	}
	if in.From <= 0 || in.To <= 0 || in.From > in.To {
		return resolvedQuery{}, ErrInvalidTimeRange
	}

	from := time.Unix(in.From, 0).UTC()
	to := time.Unix(in.To, 0).UTC()
	if in.WholeMonths {
		from, to = WholeMonths(from, to)
	}

	g, err := ResolveGranularity(in.Granularity, from, to)
	if err != nil {
		return resolvedQuery{}, err
	}

	return resolvedQuery{
		filter: ports.DatasetFilter{
			Dataset: in.Dataset,
			From:    from,
			To:      to,
			Match:   in.Match,
			Exclude: in.Exclude,
		},
		granularity: g,
	}, nil
}

// ResolveGranularity parses s. An empty value or "auto" selects daily
// buckets for ranges shorter than 31 days and monthly buckets otherwise.
func ResolveGranularity(s string, from, to time.Time) (domain.Granularity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", AutoGranularity:
		if to.Sub(from) < autoDailyLimit {
			return domain.Daily, nil
		}
		return domain.Monthly, nil
	}
	return domain.ParseGranularity(s)
}

// WholeMonths widens [from, to] to the first instant of from's month and the
// last instant of to's month.
func WholeMonths(from, to time.Time) (time.Time, time.Time) {
	cfg := &now.Config{TimeLocation: time.UTC}
	return cfg.With(from.UTC()).BeginningOfMonth(), cfg.With(to.UTC()).EndOfMonth()
}

// MonthSpan counts the calendar months touched by [from, to], both ends
// included. It returns 0 when to is before from.
func MonthSpan(from, to time.Time) int {
	from, to = from.UTC(), to.UTC()
	if to.Before(from) {
		return 0
	}
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month()) + 1
}

// load reads the filtered dataset and rejects filters on unknown fields.
func load(ctx context.Context, reader ports.DatasetReaderPort, f ports.DatasetFilter) (*domain.Dataset, error) {
	ds, err := reader.LoadDataset(ctx, f)
	if err != nil {
		return nil, err
	}
	if ds == nil {
		ds = &domain.Dataset{Name: f.Dataset}
	}

	unknown, found := lo.Find(f.Fields(), func(field string) bool {
		return !ds.HasDimension(field)
	})
	if found {
		return nil, &domain.SchemaError{Dataset: f.Dataset, Field: unknown}
	}
	return ds, nil
}
