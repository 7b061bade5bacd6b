package usecase

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/laudwin/Dashlite-v5/internal/analytics/core/aggregator"
	"github.com/laudwin/Dashlite-v5/internal/analytics/core/domain"
	"github.com/laudwin/Dashlite-v5/internal/analytics/core/ports"
)

var ErrNoiseDatasetRequired = errors.New("noise dataset is required")

type GetSignalToNoiseInput struct {
	Query        QueryInput // Query.Dataset is the filtered (signal) dataset
	NoiseDataset string     // the unfiltered dataset
}

type SignalToNoise struct {
	Signal *domain.AggregationResult
	Noise  *domain.AggregationResult
	Ratio  *domain.RatioSeries
}

type GetSignalToNoiseUseCase struct {
	reader ports.DatasetReaderPort
}

func NewGetSignalToNoiseUseCase(reader ports.DatasetReaderPort) *GetSignalToNoiseUseCase {
	return &GetSignalToNoiseUseCase{reader: reader}
}

func (uc *GetSignalToNoiseUseCase) Execute(ctx context.Context, in GetSignalToNoiseInput) (*SignalToNoise, error) {
	if in.NoiseDataset == "" {
		return nil, ErrNoiseDatasetRequired
	}

	q, err := resolve(in.Query)
	if err != nil {
		return nil, err
	}

	noiseFilter := q.filter
	noiseFilter.Dataset = in.NoiseDataset

	var signal, noise *domain.AggregationResult

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ds, err := load(gctx, uc.reader, q.filter)
		if err != nil {
			return err
		}
		signal, err = aggregator.Aggregate(ds, q.granularity, "")
		return err
	})
	g.Go(func() error {
		ds, err := load(gctx, uc.reader, noiseFilter)
		if err != nil {
			return err
		}
		noise, err = aggregator.Aggregate(ds, q.granularity, "")
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ratio, err := aggregator.Ratio(signal, noise)
	if err != nil {
		return nil, err
	}

	return &SignalToNoise{Signal: signal, Noise: noise, Ratio: ratio}, nil
}
