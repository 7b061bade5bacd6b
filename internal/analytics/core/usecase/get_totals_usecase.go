package usecase

import (
	"context"
	"errors"

	"github.com/samber/lo"

	"github.com/laudwin/Dashlite-v5/internal/analytics/core/aggregator"
	"github.com/laudwin/Dashlite-v5/internal/analytics/core/domain"
	"github.com/laudwin/Dashlite-v5/internal/analytics/core/ports"
)

var ErrInvalidTotalsQuery = errors.New("top and order cannot be combined")

type GetTotalsInput struct {
	Query   QueryInput // Query.Granularity is ignored
	GroupBy string
	Top     int      // n largest categories, 0 for all
	Order   []string // fixed output order, zero-filled
}

type GetTotalsUseCase struct {
	reader ports.DatasetReaderPort
}

func NewGetTotalsUseCase(reader ports.DatasetReaderPort) *GetTotalsUseCase {
	return &GetTotalsUseCase{reader: reader}
}

func (uc *GetTotalsUseCase) Execute(ctx context.Context, in GetTotalsInput) ([]domain.CategoryTotal, error) {
	if in.GroupBy == "" {
		return nil, aggregator.ErrFieldRequired
	}
	if in.Top < 0 || (in.Top > 0 && len(in.Order) > 0) {
		return nil, ErrInvalidTotalsQuery
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

	if in.Top > 0 {
		return aggregator.TopCategories(ds, in.GroupBy, in.Top)
	}
	order := lo.Uniq(lo.Compact(in.Order))
	return aggregator.CategoryTotals(ds, in.GroupBy, order)
}
