package usecase

import (
	"context"

	"github.com/laudwin/Dashlite-v5/internal/analytics/core/aggregator"
	"github.com/laudwin/Dashlite-v5/internal/analytics/core/domain"
	"github.com/laudwin/Dashlite-v5/internal/analytics/core/ports"
)

type GetProfileInput struct {
	Query QueryInput // Query.Granularity is ignored
	Kind  string     // fiscal_month | day_of_month | weekday
}

type GetProfileUseCase struct {
	reader ports.DatasetReaderPort
}

func NewGetProfileUseCase(reader ports.DatasetReaderPort) *GetProfileUseCase {
	return &GetProfileUseCase{reader: reader}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, in GetProfileInput) ([]domain.ProfileBucket, error) {
	kind := domain.ProfileKind(in.Kind)
	switch kind {
	case domain.ProfileFiscalMonth, domain.ProfileDayOfMonth, domain.ProfileWeekday:
	default:
		return nil, aggregator.ErrInvalidProfileKind
	}

	in.Query.Granularity = ""
	q, err := resolve(in.Query)
	if err != nil {
		return nil, err
	}

	ds, err := load(ctx, uc.reader, q.filter)
	if err != nil {
		return nil, err
	}

	return aggregator.Profile(ds, kind)
}
