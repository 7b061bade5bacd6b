package fiber_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	httpadapter "github.com/laudwin/Dashlite-v5/internal/analytics/adapters/http/fiber"
	"github.com/laudwin/Dashlite-v5/internal/analytics/core/domain"
	"github.com/laudwin/Dashlite-v5/internal/analytics/core/ports"
	"github.com/laudwin/Dashlite-v5/internal/analytics/core/usecase"
)

// Fake use cases implementing the interfaces the handler depends on.

type fakeSeriesUseCase struct {
	ExecuteFn func(ctx context.Context, in usecase.GetSeriesInput) (*domain.AggregationResult, error)
	lastInput usecase.GetSeriesInput
	called    bool
}

func (f *fakeSeriesUseCase) Execute(ctx context.Context, in usecase.GetSeriesInput) (*domain.AggregationResult, error) {
	f.called = true
	f.lastInput = in
	if f.ExecuteFn != nil {
		return f.ExecuteFn(ctx, in)
	}
	return &domain.AggregationResult{}, nil
}

type fakeChangeUseCase struct {
	ExecuteFn func(ctx context.Context, in usecase.GetChangeInput) (*usecase.ChangeReport, error)
}

func (f *fakeChangeUseCase) Execute(ctx context.Context, in usecase.GetChangeInput) (*usecase.ChangeReport, error) {
	return f.ExecuteFn(ctx, in)
}

type fakeRatioUseCase struct {
	ExecuteFn func(ctx context.Context, in usecase.GetSignalToNoiseInput) (*usecase.SignalToNoise, error)
}

func (f *fakeRatioUseCase) Execute(ctx context.Context, in usecase.GetSignalToNoiseInput) (*usecase.SignalToNoise, error) {
	return f.ExecuteFn(ctx, in)
}

type fakeProfileUseCase struct {
	ExecuteFn func(ctx context.Context, in usecase.GetProfileInput) ([]domain.ProfileBucket, error)
}

func (f *fakeProfileUseCase) Execute(ctx context.Context, in usecase.GetProfileInput) ([]domain.ProfileBucket, error) {
	return f.ExecuteFn(ctx, in)
}

type fakeTotalsUseCase struct {
	ExecuteFn func(ctx context.Context, in usecase.GetTotalsInput) ([]domain.CategoryTotal, error)
	lastInput usecase.GetTotalsInput
}

func (f *fakeTotalsUseCase) Execute(ctx context.Context, in usecase.GetTotalsInput) ([]domain.CategoryTotal, error) {
	f.lastInput = in
	return f.ExecuteFn(ctx, in)
}

type fakes struct {
	series  *fakeSeriesUseCase
	change  *fakeChangeUseCase
	ratio   *fakeRatioUseCase
	profile *fakeProfileUseCase
	totals  *fakeTotalsUseCase
}

func newFakes() *fakes {
	return &fakes{
		series:  &fakeSeriesUseCase{},
		change:  &fakeChangeUseCase{},
		ratio:   &fakeRatioUseCase{},
		profile: &fakeProfileUseCase{},
		totals:  &fakeTotalsUseCase{},
	}
}

func setupApp(t *testing.T, f *fakes) *fiber.App {
	t.Helper()
	app := fiber.New()
	h := httpadapter.NewAnalyticsHandler(f.series, f.change, f.ratio, f.profile, f.totals)
	app.Get("/datasets/:dataset/series", h.GetSeries)
	app.Get("/datasets/:dataset/change", h.GetChange)
	app.Get("/datasets/:dataset/signal-to-noise", h.GetSignalToNoise)
	app.Get("/datasets/:dataset/profile", h.GetProfile)
	app.Get("/datasets/:dataset/totals", h.GetTotals)
	return app
}

func rangeParams() url.Values {
	params := url.Values{}
	params.Set("from", "1704067200") // 2024-01-01
	params.Set("to", "1709251200")   // 2024-03-01
	return params
}

func month(m time.Month) domain.Period {
	return domain.NewPeriod(time.Date(2024, m, 1, 0, 0, 0, 0, time.UTC))
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

// ------------------------------------------------------------
// SUCCESS: series
// ------------------------------------------------------------

func TestGetSeries_Success(t *testing.T) {
	f := newFakes()
	f.series.ExecuteFn = func(ctx context.Context, in usecase.GetSeriesInput) (*domain.AggregationResult, error) {
		if in.Query.Dataset != "thematic" {
			t.Fatalf("expected dataset=thematic, got %s", in.Query.Dataset)
		}
		if in.Query.From != 1704067200 || in.Query.To != 1709251200 {
			t.Fatalf("unexpected range: %d..%d", in.Query.From, in.Query.To)
		}
		if in.GroupBy != "ThemeName" || !in.Normalize {
			t.Fatalf("unexpected input: %+v", in)
		}
		if in.Query.Match["PromptName"] != "gpt4o" || in.Query.Exclude["CodeName"] != "Unclassified" {
			t.Fatalf("unexpected filters: match=%v exclude=%v", in.Query.Match, in.Query.Exclude)
		}
		return &domain.AggregationResult{
			Granularity: domain.Monthly,
			Field:       "ThemeName",
			Periods:     []domain.Period{month(time.January), month(time.February)},
			Categories:  []string{"A", "B"},
			Values:      [][]float64{{25, 75}, {50, 50}},
		}, nil
	}
	app := setupApp(t, f)

	params := rangeParams()
	params.Set("group_by", "ThemeName")
	params.Set("normalize", "true")
	params.Set("granularity", "monthly")
	params.Set("match.PromptName", "gpt4o")
	params.Set("exclude.CodeName", "Unclassified")

	req := httptest.NewRequest(http.MethodGet, "/datasets/thematic/series?"+params.Encode(), nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	var body httpadapter.SeriesResponse
	decode(t, resp, &body)

	if body.TickFormat != "%b-%y" {
		t.Fatalf("expected monthly tick format, got %q", body.TickFormat)
	}
	if len(body.Periods) != 2 || body.Periods[0] != "2024-01-01" {
		t.Fatalf("unexpected periods: %v", body.Periods)
	}
	if len(body.Series) != 2 || body.Series[1].Name != "B" || body.Series[1].Values[0] != 75 {
		t.Fatalf("unexpected series: %+v", body.Series)
	}
}

// ------------------------------------------------------------
// VALIDATION ERROR: missing from/to
// ------------------------------------------------------------

func TestGetSeries_MissingRange(t *testing.T) {
	f := newFakes()
	app := setupApp(t, f)

	req := httptest.NewRequest(http.MethodGet, "/datasets/thematic/series", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.StatusCode)
	}
	if f.series.called {
		t.Fatalf("expected usecase NOT to be called")
	}
}

func TestGetSeries_InvalidFrom(t *testing.T) {
	f := newFakes()
	app := setupApp(t, f)

	params := rangeParams()
	params.Set("from", "yesterday")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/datasets/thematic/series?"+params.Encode(), nil))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.StatusCode)
	}
}

// ------------------------------------------------------------
// ERROR MAPPING
// ------------------------------------------------------------

func TestGetSeries_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		status   int
		wantCode string
	}{
		{"invalid time range", usecase.ErrInvalidTimeRange, http.StatusBadRequest, "invalid_query"},
		{"invalid granularity", domain.ErrInvalidGranularity, http.StatusBadRequest, "invalid_query"},
		{"schema error", &domain.SchemaError{Dataset: "thematic", Field: "Nope"}, http.StatusBadRequest, "schema_error"},
		{"insufficient data", &domain.InsufficientDataError{Need: 2, Got: 1}, http.StatusBadRequest, "insufficient_data"},
		{"dataset not found", ports.ErrDatasetNotFound, http.StatusNotFound, "dataset_not_found"},
		{"unexpected", errors.New("disk on fire"), http.StatusInternalServerError, "internal_server_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFakes()
			f.series.ExecuteFn = func(ctx context.Context, in usecase.GetSeriesInput) (*domain.AggregationResult, error) {
				return nil, tt.err
			}
			app := setupApp(t, f)

			req := httptest.NewRequest(http.MethodGet, "/datasets/thematic/series?"+rangeParams().Encode(), nil)
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test error: %v", err)
			}
			if resp.StatusCode != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.StatusCode)
			}

			var body httpadapter.ErrorResponse
			decode(t, resp, &body)
			if body.Error != tt.wantCode {
				t.Fatalf("expected error code %s, got %s", tt.wantCode, body.Error)
			}
		})
	}
}

// ------------------------------------------------------------
// SUCCESS: change
// ------------------------------------------------------------

func TestGetChange_Success(t *testing.T) {
	f := newFakes()
	f.change.ExecuteFn = func(ctx context.Context, in usecase.GetChangeInput) (*usecase.ChangeReport, error) {
		if in.GroupBy != "ThemeName" {
			t.Fatalf("expected group_by=ThemeName, got %s", in.GroupBy)
		}
		return &usecase.ChangeReport{
			Granularity: domain.Monthly,
			First:       month(time.January),
			Last:        month(time.February),
			Rows: []usecase.ChangeRow{
				{Category: "B", CategoryChange: domain.CategoryChange{StartPct: 20, EndPct: 80, ChangePP: 60}},
				{Category: "A", CategoryChange: domain.CategoryChange{StartPct: 80, EndPct: 20, ChangePP: -60}},
			},
		}, nil
	}
	app := setupApp(t, f)

	params := rangeParams()
	params.Set("group_by", "ThemeName")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/datasets/thematic/change?"+params.Encode(), nil))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	var body httpadapter.ChangeResponse
	decode(t, resp, &body)
	if body.FirstPeriod != "2024-01-01" || body.LastPeriod != "2024-02-01" {
		t.Fatalf("unexpected periods: %s %s", body.FirstPeriod, body.LastPeriod)
	}
	if len(body.Rows) != 2 || body.Rows[0].Category != "B" || body.Rows[0].ChangePP != 60 {
		t.Fatalf("unexpected rows: %+v", body.Rows)
	}
}

// ------------------------------------------------------------
// SUCCESS: signal-to-noise
// ------------------------------------------------------------

func TestGetSignalToNoise_Success(t *testing.T) {
	f := newFakes()
	f.ratio.ExecuteFn = func(ctx context.Context, in usecase.GetSignalToNoiseInput) (*usecase.SignalToNoise, error) {
		if in.NoiseDataset != "time_series_unfiltered" {
			t.Fatalf("expected noise dataset, got %s", in.NoiseDataset)
		}
		jan, feb := month(time.January), month(time.February)
		return &usecase.SignalToNoise{
			Signal: &domain.AggregationResult{
				Granularity: domain.Monthly,
				Periods:     []domain.Period{jan},
				Categories:  []string{domain.UngroupedCategory},
				Values:      [][]float64{{2}},
			},
			Noise: &domain.AggregationResult{
				Granularity: domain.Monthly,
				Periods:     []domain.Period{jan, feb},
				Categories:  []string{domain.UngroupedCategory},
				Values:      [][]float64{{8}, {5}},
			},
			Ratio: &domain.RatioSeries{
				Granularity: domain.Monthly,
				Periods:     []domain.Period{jan, feb},
				Values:      []float64{0.25, 0},
			},
		}, nil
	}
	app := setupApp(t, f)

	params := rangeParams()
	params.Set("noise", "time_series_unfiltered")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/datasets/time_series/signal-to-noise?"+params.Encode(), nil))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	var body httpadapter.SignalToNoiseResponse
	decode(t, resp, &body)
	if len(body.Signal) != 2 || body.Signal[0] != 2 || body.Signal[1] != 0 {
		t.Fatalf("expected signal aligned to ratio axis, got %v", body.Signal)
	}
	if body.Noise[1] != 5 || body.Ratio[0] != 0.25 {
		t.Fatalf("unexpected body: %+v", body)
	}
}

// ------------------------------------------------------------
// SUCCESS: profile / totals
// ------------------------------------------------------------

func TestGetProfile_Success(t *testing.T) {
	f := newFakes()
	f.profile.ExecuteFn = func(ctx context.Context, in usecase.GetProfileInput) ([]domain.ProfileBucket, error) {
		if in.Kind != "weekday" {
			t.Fatalf("expected kind=weekday, got %s", in.Kind)
		}
		return []domain.ProfileBucket{{Label: "Mon", Count: 3, Mean: 4, Median: 4}}, nil
	}
	app := setupApp(t, f)

	params := rangeParams()
	params.Set("kind", "weekday")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/datasets/thematic/profile?"+params.Encode(), nil))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	var body httpadapter.ProfileResponse
	decode(t, resp, &body)
	if len(body.Buckets) != 1 || body.Buckets[0].Label != "Mon" || body.Buckets[0].Count != 3 {
		t.Fatalf("unexpected buckets: %+v", body.Buckets)
	}
}

func TestGetTotals_ParsesOrderAndTop(t *testing.T) {
	f := newFakes()
	f.totals.ExecuteFn = func(ctx context.Context, in usecase.GetTotalsInput) ([]domain.CategoryTotal, error) {
		return []domain.CategoryTotal{{Category: "Coverage", Total: 0}, {Category: "Billing", Total: 3}}, nil
	}
	app := setupApp(t, f)

	params := rangeParams()
	params.Set("group_by", "ThemeName")
	params.Set("order", "Coverage, Billing")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/datasets/thematic/totals?"+params.Encode(), nil))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	in := f.totals.lastInput
	if len(in.Order) != 2 || in.Order[1] != "Billing" || in.Top != 0 {
		t.Fatalf("unexpected totals input: %+v", in)
	}

	var body httpadapter.TotalsResponse
	decode(t, resp, &body)
	if len(body.Totals) != 2 || body.Totals[1].Total != 3 {
		t.Fatalf("unexpected totals: %+v", body.Totals)
	}
}

func TestTickFormat(t *testing.T) {
	cases := map[domain.Granularity]string{
		domain.Daily:       "%d-%b-%y",
		domain.Weekly:      "%d-%b-%y",
		domain.Monthly:     "%b-%y",
		domain.Yearly:      "%Y",
		domain.FiscalMonth: "",
	}
	for g, want := range cases {
		if got := httpadapter.TickFormat(g); got != want {
			t.Fatalf("granularity %s: expected %q, got %q", g, want, got)
		}
	}
}
