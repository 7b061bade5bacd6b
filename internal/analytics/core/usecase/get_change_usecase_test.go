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

func TestGetChange_Success_SortedByChange(t *testing.T) {
	reader := &fakeDatasetReader{
		LoadFn: func(ctx context.Context, f ports.DatasetFilter) (*domain.Dataset, error) {
			return thematic(
				themed(at(2024, 1, 5), "A", 80),
				themed(at(2024, 1, 5), "B", 20),
				themed(at(2024, 2, 5), "A", 20),
				themed(at(2024, 2, 5), "B", 80),
			), nil
		},
	}
	uc := usecase.NewGetChangeUseCase(reader)

	in := query(at(2024, 1, 1), at(2024, 2, 28))
	in.Granularity = "monthly"

	out, err := uc.Execute(context.Background(), usecase.GetChangeInput{Query: in, GroupBy: "ThemeName"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(out.Rows))
	}
	if out.Rows[0].Category != "B" || out.Rows[0].ChangePP != 60 {
		t.Fatalf("expected B +60 first, got %+v", out.Rows[0])
	}
	if out.Rows[1].Category != "A" || out.Rows[1].ChangePP != -60 {
		t.Fatalf("expected A -60 last, got %+v", out.Rows[1])
	}
	if out.First.Key() != "2024-01-01" || out.Last.Key() != "2024-02-01" {
		t.Fatalf("unexpected first/last: %s %s", out.First.Key(), out.Last.Key())
	}
}

func TestGetChange_GroupByRequired(t *testing.T) {
	reader := &fakeDatasetReader{}
	uc := usecase.NewGetChangeUseCase(reader)

	_, err := uc.Execute(context.Background(), usecase.GetChangeInput{Query: query(at(2024, 1, 1), at(2024, 2, 1))})
	if !errors.Is(err, aggregator.ErrFieldRequired) {
		t.Fatalf("expected ErrFieldRequired, got %v", err)
	}
	if reader.called {
		t.Fatalf("expected LoadDataset NOT to be called")
	}
}

func TestGetChange_SinglePeriod(t *testing.T) {
	reader := &fakeDatasetReader{
		LoadFn: func(ctx context.Context, f ports.DatasetFilter) (*domain.Dataset, error) {
			return thematic(themed(at(2024, 1, 5), "A", 1)), nil
		},
	}
	uc := usecase.NewGetChangeUseCase(reader)

	in := query(at(2024, 1, 1), at(2024, 1, 20))
	_, err := uc.Execute(context.Background(), usecase.GetChangeInput{Query: in, GroupBy: "ThemeName"})
	if !errors.Is(err, domain.ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
}
