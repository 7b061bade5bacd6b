package fiber

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/laudwin/Dashlite-v5/internal/analytics/core/aggregator"
	"github.com/laudwin/Dashlite-v5/internal/analytics/core/domain"
	"github.com/laudwin/Dashlite-v5/internal/analytics/core/ports"
	"github.com/laudwin/Dashlite-v5/internal/analytics/core/usecase"
	applog "github.com/laudwin/Dashlite-v5/internal/log"
)

const (
	matchPrefix   = "match."
	excludePrefix = "exclude."
)

var errMissingRange = errors.New("from and to are required")

// TickFormat is the strftime hint a chart uses for the period axis of g.
func TickFormat(g domain.Granularity) string {
	switch g {
	case domain.Monthly:
		return "%b-%y"
	case domain.Weekly, domain.Daily:
		return "%d-%b-%y"
	case domain.Yearly:
		return "%Y"
	default:
		return ""
	}
}

func parseQuery(c *fiber.Ctx) (usecase.QueryInput, error) {
	in := usecase.QueryInput{
		Dataset:     c.Params("dataset"),
		Granularity: c.Query("granularity", ""),
		WholeMonths: c.QueryBool("whole_months", false),
	}

	fromStr := c.Query("from", "")
	toStr := c.Query("to", "")
	if fromStr == "" || toStr == "" {
		return in, errMissingRange
	}

	var err error
	if in.From, err = strconv.ParseInt(fromStr, 10, 64); err != nil {
		return in, errors.New("invalid 'from' parameter")
	}
	if in.To, err = strconv.ParseInt(toStr, 10, 64); err != nil {
		return in, errors.New("invalid 'to' parameter")
	}

	for k, v := range c.Queries() {
		switch {
		case strings.HasPrefix(k, matchPrefix) && len(k) > len(matchPrefix):
			if in.Match == nil {
				in.Match = map[string]string{}
			}
			in.Match[strings.TrimPrefix(k, matchPrefix)] = v
		case strings.HasPrefix(k, excludePrefix) && len(k) > len(excludePrefix):
			if in.Exclude == nil {
				in.Exclude = map[string]string{}
			}
			in.Exclude[strings.TrimPrefix(k, excludePrefix)] = v
		}
	}

	return in, nil
}

func badRequest(c *fiber.Ctx, code string, err error) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Error:   code,
		Message: err.Error(),
	})
}

// writeError maps use case errors onto HTTP responses.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ports.ErrDatasetNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Error:   "dataset_not_found",
			Message: err.Error(),
		})
	case errors.Is(err, domain.ErrSchema):
		return badRequest(c, "schema_error", err)
	case errors.Is(err, domain.ErrInsufficientData):
		return badRequest(c, "insufficient_data", err)
	case errors.Is(err, usecase.ErrInvalidDataset),
		errors.Is(err, usecase.ErrInvalidTimeRange),
		errors.Is(err, usecase.ErrNoiseDatasetRequired),
		errors.Is(err, usecase.ErrInvalidTotalsQuery),
		errors.Is(err, domain.ErrInvalidGranularity),
		errors.Is(err, aggregator.ErrFieldRequired),
		errors.Is(err, aggregator.ErrInvalidProfileKind):
		return badRequest(c, "invalid_query", err)
	default:
		applog.FromFiber(c).ErrorContext(c.UserContext(), "analytics request failed",
			applog.FieldPath, c.Path(),
			applog.FieldError, err.Error(),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}

func periodLabels(periods []domain.Period) []string {
	out := make([]string, len(periods))
	for i, p := range periods {
		out[i] = p.Key()
	}
	return out
}
