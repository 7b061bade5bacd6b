package usecase

import (
	"context"
	"sort"

	"github.com/laudwin/Dashlite-v5/internal/analytics/core/aggregator"
	"github.com/laudwin/Dashlite-v5/internal/analytics/core/domain"
	"github.com/laudwin/Dashlite-v5/internal/analytics/core/ports"
)

type GetChangeInput struct {
	Query   QueryInput
	GroupBy string
}

type ChangeRow struct {
	Category string
	domain.CategoryChange
}

// ChangeReport compares the first and last period of a grouped series.
type ChangeReport struct {
	Granularity domain.Granularity
	First       domain.Period
	Last        domain.Period
	Rows        []ChangeRow // sorted by ChangePP, largest gain first
}

type GetChangeUseCase struct {
	reader ports.DatasetReaderPort
}

func NewGetChangeUseCase(reader ports.DatasetReaderPort) *GetChangeUseCase {
	return &GetChangeUseCase{reader: reader}
}

func (uc *GetChangeUseCase) Execute(ctx context.Context, in GetChangeInput) (*ChangeReport, error) {
	if in.GroupBy == "" {
		return nil, aggregator.ErrFieldRequired
	}

	q, err := resolve(in.Query)
	if err != nil {
		return nil, err
	}

	ds, err := load(ctx, uc.reader, q.filter)
	if err != nil {
		return nil, err
	}

	res, err := aggregator.Aggregate(ds, q.granularity, in.GroupBy)
	if err != nil {
		return nil, err
	}

	changes, err := aggregator.PeriodOverPeriodChange(res)
	if err != nil {
		return nil, err
	}

	report := &ChangeReport{
		Granularity: res.Granularity,
		First:       res.Periods[0],
		Last:        res.Periods[len(res.Periods)-1],
		Rows:        make([]ChangeRow, 0, len(changes)),
	}
	for _, c := range res.Categories {
		report.Rows = append(report.Rows, ChangeRow{Category: c, CategoryChange: changes[c]})
	}
	// categories arrive sorted by name, so ties keep name order
	sort.SliceStable(report.Rows, func(i, j int) bool {
		return report.Rows[i].ChangePP > report.Rows[j].ChangePP
	})

	return report, nil
}
