package usecase

import (
	"context"

	"github.com/laudwin/Dashlite-v5/internal/analytics/core/aggregator"
	"github.com/laudwin/Dashlite-v5/internal/analytics/core/domain"
	"github.com/laudwin/Dashlite-v5/internal/analytics/core/ports"
)

type GetSeriesInput struct {
	Query     QueryInput
	GroupBy   string // empty for a single total series
	Normalize bool   // percent of period total
}

type GetSeriesUseCase struct {
	reader ports.DatasetReaderPort
}

func NewGetSeriesUseCase(reader ports.DatasetReaderPort) *GetSeriesUseCase {
	return &GetSeriesUseCase{reader: reader}
}

func (uc *GetSeriesUseCase) Execute(ctx context.Context, in GetSeriesInput) (*domain.AggregationResult, error) {
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

	if in.Normalize {
		return aggregator.NormalizeToPercent(res), nil
	}
	return res, nil
}
