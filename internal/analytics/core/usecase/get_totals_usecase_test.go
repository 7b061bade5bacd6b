package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/laudwin/Dashlite-v5/internal/analytics/core/aggregator"
	"github.com/laudwin/Dashlite-v5/internal/analytics/core/domain"
	"github.com/laudwin/Dashlite-v5/internal/analytics/core/ports"
	"github.com/laudwin/Dashlite-v5/internal/analytics/core/usecase"
)

func totalsReader() *fakeDatasetReader {
	return &fakeDatasetReader{
		LoadFn: func(ctx context.Context, f ports.DatasetFilter) (*domain.Dataset, error) {
			return thematic(
				themed(at(2024, 1, 1), "Network Issues", 7),
				themed(at(2024, 1, 2), "Customer Service Issues", 2),
				themed(at(2024, 1, 3), "Pricing and Affordability", 4),
			), nil
		},
	}
}

func TestGetTotals_Top(t *testing.T) {
	uc := usecase.NewGetTotalsUseCase(totalsReader())

	out, err := uc.Execute(context.Background(), usecase.GetTotalsInput{
		Query:   query(at(2024, 1, 1), at(2024, 2, 1)),
		GroupBy: "ThemeName",
		Top:     2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 || out[0].Category != "Network Issues" || out[1].Category != "Pricing and Affordability" {
		t.Fatalf("unexpected top: %+v", out)
	}
}

func TestGetTotals_Order(t *testing.T) {
	uc := usecase.NewGetTotalsUseCase(totalsReader())

	out, err := uc.Execute(context.Background(), usecase.GetTotalsInput{
		Query:   query(at(2024, 1, 1), at(2024, 2, 1)),
		GroupBy: "ThemeName",
		Order:   []string{"Coverage", "Network Issues", "", "Coverage"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 totals, got %+v", out)
	}
	if out[0].Category != "Coverage" || out[0].Total != 0 {
		t.Fatalf("expected zero-filled Coverage first, got %+v", out[0])
	}
	if out[1].Total != 7 {
		t.Fatalf("expected Network Issues=7, got %+v", out[1])
	}
}

func TestGetTotals_InvalidInputs(t *testing.T) {
	uc := usecase.NewGetTotalsUseCase(totalsReader())
	q := query(at(2024, 1, 1), at(2024, 2, 1))

	_, err := uc.Execute(context.Background(), usecase.GetTotalsInput{Query: q})
	if !errors.Is(err, aggregator.ErrFieldRequired) {
		t.Fatalf("expected ErrFieldRequired, got %v", err)
	}

	_, err = uc.Execute(context.Background(), usecase.GetTotalsInput{
		Query: q, GroupBy: "ThemeName", Top: 3, Order: []string{"A"},
	})
	if !errors.Is(err, usecase.ErrInvalidTotalsQuery) {
		t.Fatalf("expected ErrInvalidTotalsQuery, got %v", err)
	}
}

func TestGetProfile_Weekday(t *testing.T) {
	uc := usecase.NewGetProfileUseCase(totalsReader())

	q := query(at(2024, 1, 1), at(2024, 2, 1))
	q.Granularity = "not-used"

	out, err := uc.Execute(context.Background(), usecase.GetProfileInput{Query: q, Kind: "weekday"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 2024-01-01 is a Monday
	if len(out) != 3 || out[0].Label != "Mon" || out[2].Label != "Wed" {
		t.Fatalf("unexpected buckets: %+v", out)
	}
}

func TestGetProfile_InvalidKind(t *testing.T) {
	reader := totalsReader()
	uc := usecase.NewGetProfileUseCase(reader)

	_, err := uc.Execute(context.Background(), usecase.GetProfileInput{
		Query: query(at(2024, 1, 1), at(2024, 2, 1)),
		Kind:  "hourly",
	})
	if !errors.Is(err, aggregator.ErrInvalidProfileKind) {
		t.Fatalf("expected ErrInvalidProfileKind, got %v", err)
	}
	if reader.called {
		t.Fatalf("expected LoadDataset NOT to be called")
	}
}
