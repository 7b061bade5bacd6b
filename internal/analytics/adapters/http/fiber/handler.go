package fiber

import (
	"context"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"

	"github.com/laudwin/Dashlite-v5/internal/analytics/core/domain"
	"github.com/laudwin/Dashlite-v5/internal/analytics/core/usecase"
)

type GetSeriesUseCase interface {
	Execute(ctx context.Context, in usecase.GetSeriesInput) (*domain.AggregationResult, error)
}

type GetChangeUseCase interface {
	Execute(ctx context.Context, in usecase.GetChangeInput) (*usecase.ChangeReport, error)
}

type GetSignalToNoiseUseCase interface {
	Execute(ctx context.Context, in usecase.GetSignalToNoiseInput) (*usecase.SignalToNoise, error)
}

type GetProfileUseCase interface {
	Execute(ctx context.Context, in usecase.GetProfileInput) ([]domain.ProfileBucket, error)
}

type GetTotalsUseCase interface {
	Execute(ctx context.Context, in usecase.GetTotalsInput) ([]domain.CategoryTotal, error)
}

type AnalyticsHandler struct {
	series  GetSeriesUseCase
	change  GetChangeUseCase
	ratio   GetSignalToNoiseUseCase
	profile GetProfileUseCase
	totals  GetTotalsUseCase
}

func NewAnalyticsHandler(
	series GetSeriesUseCase,
	change GetChangeUseCase,
	ratio GetSignalToNoiseUseCase,
	profile GetProfileUseCase,
	totals GetTotalsUseCase,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		series:  series,
		change:  change,
		ratio:   ratio,
		profile: profile,
		totals:  totals,
	}
}

// GetSeries godoc
// @Summary Time-bucketed series
// @Description Sums the dataset measure per period, optionally grouped by a label and normalized to percent of period
// @Tags Analytics
// @Produce json
// @Param dataset path string true "Dataset name"
// @Param from query int true "From timestamp (unix seconds)"
// @Param to query int true "To timestamp (unix seconds)"
// @Param granularity query string false "daily | weekly | monthly | yearly | fiscal_month | auto"
// @Param group_by query string false "Label to group by"
// @Param normalize query bool false "Percent of period total"
// @Param whole_months query bool false "Snap the range to calendar months"
// @Success 200 {object} SeriesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /datasets/{dataset}/series [get]
func (h *AnalyticsHandler) GetSeries(c *fiber.Ctx) error {
	q, err := parseQuery(c)
	if err != nil {
		return badRequest(c, "invalid_query", err)
	}

	in := usecase.GetSeriesInput{
		Query:     q,
		GroupBy:   c.Query("group_by", ""),
		Normalize: c.QueryBool("normalize", false),
	}

	res, err := h.series.Execute(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}

	resp := SeriesResponse{
		Dataset:     q.Dataset,
		Granularity: string(res.Granularity),
		GroupBy:     in.GroupBy,
		Normalized:  in.Normalize,
		TickFormat:  TickFormat(res.Granularity),
		Periods:     periodLabels(res.Periods),
		Categories:  res.Categories,
		Series:      make([]SeriesItemResponse, 0, len(res.Categories)),
	}
	for _, cat := range res.Categories {
		resp.Series = append(resp.Series, SeriesItemResponse{Name: cat, Values: res.Series(cat)})
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// GetChange godoc
// @Summary First vs last period share change
// @Description Share of each category in the first and last period, and the difference in percentage points
// @Tags Analytics
// @Produce json
// @Param dataset path string true "Dataset name"
// @Param from query int true "From timestamp (unix seconds)"
// @Param to query int true "To timestamp (unix seconds)"
// @Param granularity query string false "daily | weekly | monthly | yearly | fiscal_month | auto"
// @Param group_by query string true "Label to group by"
// @Success 200 {object} ChangeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /datasets/{dataset}/change [get]
func (h *AnalyticsHandler) GetChange(c *fiber.Ctx) error {
	q, err := parseQuery(c)
	if err != nil {
		return badRequest(c, "invalid_query", err)
	}

	groupBy := c.Query("group_by", "")
	report, err := h.change.Execute(c.UserContext(), usecase.GetChangeInput{Query: q, GroupBy: groupBy})
	if err != nil {
		return writeError(c, err)
	}

	resp := ChangeResponse{
		Dataset:     q.Dataset,
		Granularity: string(report.Granularity),
		GroupBy:     groupBy,
		FirstPeriod: report.First.Key(),
		LastPeriod:  report.Last.Key(),
		Rows: lo.Map(report.Rows, func(r usecase.ChangeRow, _ int) ChangeRowResponse {
			return ChangeRowResponse{
				Category: r.Category,
				StartPct: r.StartPct,
				EndPct:   r.EndPct,
				ChangePP: r.ChangePP,
			}
		}),
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// GetSignalToNoise godoc
// @Summary Signal-to-noise ratio
// @Description Per-period ratio between a filtered dataset and its unfiltered counterpart
// @Tags Analytics
// @Produce json
// @Param dataset path string true "Filtered (signal) dataset"
// @Param noise query string true "Unfiltered (noise) dataset"
// @Param from query int true "From timestamp (unix seconds)"
// @Param to query int true "To timestamp (unix seconds)"
// @Param granularity query string false "daily | weekly | monthly | yearly | fiscal_month | auto"
// @Success 200 {object} SignalToNoiseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /datasets/{dataset}/signal-to-noise [get]
func (h *AnalyticsHandler) GetSignalToNoise(c *fiber.Ctx) error {
	q, err := parseQuery(c)
	if err != nil {
		return badRequest(c, "invalid_query", err)
	}

	noise := c.Query("noise", "")
	out, err := h.ratio.Execute(c.UserContext(), usecase.GetSignalToNoiseInput{Query: q, NoiseDataset: noise})
	if err != nil {
		return writeError(c, err)
	}

	periods := out.Ratio.Periods
	resp := SignalToNoiseResponse{
		Dataset:      q.Dataset,
		NoiseDataset: noise,
		Granularity:  string(out.Ratio.Granularity),
		TickFormat:   TickFormat(out.Ratio.Granularity),
		Periods:      periodLabels(periods),
		Signal:       make([]float64, len(periods)),
		Noise:        make([]float64, len(periods)),
		Ratio:        out.Ratio.Values,
	}
	if resp.Ratio == nil {
		resp.Ratio = []float64{}
	}
	for i, p := range periods {
		resp.Signal[i] = out.Signal.Value(p, domain.UngroupedCategory)
		resp.Noise[i] = out.Noise.Value(p, domain.UngroupedCategory)
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// GetProfile godoc
// @Summary Daily total distribution by recurring slot
// @Description Box-plot statistics of daily totals per fiscal month, day of month or weekday
// @Tags Analytics
// @Produce json
// @Param dataset path string true "Dataset name"
// @Param from query int true "From timestamp (unix seconds)"
// @Param to query int true "To timestamp (unix seconds)"
// @Param kind query string true "fiscal_month | day_of_month | weekday"
// @Success 200 {object} ProfileResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /datasets/{dataset}/profile [get]
func (h *AnalyticsHandler) GetProfile(c *fiber.Ctx) error {
	q, err := parseQuery(c)
	if err != nil {
		return badRequest(c, "invalid_query", err)
	}

	kind := c.Query("kind", "")
	buckets, err := h.profile.Execute(c.UserContext(), usecase.GetProfileInput{Query: q, Kind: kind})
	if err != nil {
		return writeError(c, err)
	}

	resp := ProfileResponse{
		Dataset: q.Dataset,
		Kind:    kind,
		Buckets: lo.Map(buckets, func(b domain.ProfileBucket, _ int) ProfileBucketResponse {
			return ProfileBucketResponse{
				Label:  b.Label,
				Count:  b.Count,
				Mean:   b.Mean,
				Min:    b.Min,
				Q1:     b.Q1,
				Median: b.Median,
				Q3:     b.Q3,
				Max:    b.Max,
			}
		}),
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// GetTotals godoc
// @Summary Category totals
// @Description Total measure per category, either the top N or reindexed to a fixed order
// @Tags Analytics
// @Produce json
// @Param dataset path string true "Dataset name"
// @Param from query int true "From timestamp (unix seconds)"
// @Param to query int true "To timestamp (unix seconds)"
// @Param group_by query string true "Label to total by"
// @Param top query int false "Only the N largest categories"
// @Param order query string false "Comma separated category order, zero-filled"
// @Success 200 {object} TotalsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /datasets/{dataset}/totals [get]
func (h *AnalyticsHandler) GetTotals(c *fiber.Ctx) error {
	q, err := parseQuery(c)
	if err != nil {
		return badRequest(c, "invalid_query", err)
	}

	in := usecase.GetTotalsInput{
		Query:   q,
		GroupBy: c.Query("group_by", ""),
		Top:     c.QueryInt("top", 0),
	}
	if order := c.Query("order", ""); order != "" {
		in.Order = lo.Map(strings.Split(order, ","), func(s string, _ int) string {
			return strings.TrimSpace(s)
		})
	}

	totals, err := h.totals.Execute(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}

	resp := TotalsResponse{
		Dataset: q.Dataset,
		GroupBy: in.GroupBy,
		Totals: lo.Map(totals, func(t domain.CategoryTotal, _ int) CategoryTotalResponse {
			return CategoryTotalResponse{Category: t.Category, Total: t.Total}
		}),
	}

	return c.Status(http.StatusOK).JSON(resp)
}
