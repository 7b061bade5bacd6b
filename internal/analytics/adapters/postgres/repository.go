package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/laudwin/Dashlite-v5/internal/analytics/core/domain"
	"github.com/laudwin/Dashlite-v5/internal/analytics/core/ports"
)

const dimensionsSQL = `
SELECT DISTINCT jsonb_object_keys(labels) AS dimension
FROM mention_events
WHERE dataset = $1
ORDER BY dimension`

const datasetExistsSQL = `
SELECT EXISTS (SELECT 1 FROM mention_events WHERE dataset = $1)`

type DatasetRepository struct {
	db       DB
	observer ports.LoadObserver
}

var _ ports.DatasetReaderPort = (*DatasetRepository)(nil)

func NewDatasetRepository(db DB, observer ports.LoadObserver) *DatasetRepository {
	return &DatasetRepository{db: db, observer: observer}
}

func (r *DatasetRepository) LoadDataset(ctx context.Context, f ports.DatasetFilter) (*domain.Dataset, error) {
	start := time.Now()

	dims, err := r.dimensions(ctx, f.Dataset)
	if err != nil {
		return nil, err
	}
	if len(dims) == 0 {
		exists, err := r.exists(ctx, f.Dataset)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, ports.ErrDatasetNotFound
		}
	}

	query, args := buildEventsQuery(f)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query mention events: %w", err)
	}
	defer rows.Close()

	ds := &domain.Dataset{Name: f.Dataset, Dimensions: dims}
	skipped := 0

	for rows.Next() {
		var (
			ts      time.Time
			measure sql.NullFloat64
			raw     []byte
		)
		if err := rows.Scan(&ts, &measure, &raw); err != nil {
			return nil, err
		}

		labels, err := decodeLabels(raw)
		if err != nil {
			skipped++
			continue
		}

		e := domain.Event{Timestamp: ts.UTC(), Labels: labels}
		if measure.Valid {
			if !domain.ValidMeasure(measure.Float64) {
				skipped++
				continue
			}
			e.Measure = domain.Float(measure.Float64)
		}
		ds.Events = append(ds.Events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if r.observer != nil {
		r.observer.ObserveLoad(f.Dataset, time.Since(start), skipped)
	}
	return ds, nil
}

func (r *DatasetRepository) dimensions(ctx context.Context, dataset string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, dimensionsSQL, dataset)
	if err != nil {
		return nil, fmt.Errorf("query dimensions: %w", err)
	}
	defer rows.Close()

	var dims []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		dims = append(dims, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return dims, nil
}

func (r *DatasetRepository) exists(ctx context.Context, dataset string) (bool, error) {
	rows, err := r.db.QueryContext(ctx, datasetExistsSQL, dataset)
	if err != nil {
		return false, fmt.Errorf("query dataset: %w", err)
	}
	defer rows.Close()

	var exists bool
	if rows.Next() {
		if err := rows.Scan(&exists); err != nil {
			return false, err
		}
	}
	return exists, rows.Err()
}

// buildEventsQuery renders the filter as SQL. Map filters are emitted in key
// order so the statement text is stable.
func buildEventsQuery(f ports.DatasetFilter) (string, []any) {
	where := []string{"dataset = $1"}
	args := []any{f.Dataset}
	argIndex := 2

	if !f.From.IsZero() {
		where = append(where, fmt.Sprintf("published_at >= $%d", argIndex))
		args = append(args, f.From.UTC())
		argIndex++
	}
	if !f.To.IsZero() {
		where = append(where, fmt.Sprintf("published_at <= $%d", argIndex))
		args = append(args, f.To.UTC())
		argIndex++
	}

	for _, field := range sortedKeys(f.Match) {
		where = append(where, fmt.Sprintf("labels->>$%d = $%d", argIndex, argIndex+1))
		args = append(args, field, f.Match[field])
		argIndex += 2
	}
	for _, field := range sortedKeys(f.Exclude) {
		if f.Exclude[field] == "" {
			continue
		}
		where = append(where, fmt.Sprintf(
			"strpos(lower(COALESCE(labels->>$%d, '')), lower($%d)) = 0", argIndex, argIndex+1))
		args = append(args, field, f.Exclude[field])
		argIndex += 2
	}

	query := `
SELECT
    published_at,
    measure,
    labels
FROM mention_events
WHERE ` + strings.Join(where, " AND ") + `
ORDER BY published_at`

	return query, args
}

func sortedKeys(m map[string]string) []string {
	keys := lo.Keys(m)
	sort.Strings(keys)
	return keys
}

// decodeLabels flattens a jsonb object into string labels. Non-string
// values are rendered with fmt.
func decodeLabels(raw []byte) (map[string]string, error) {
	out := map[string]string{}
	if len(raw) == 0 {
		return out, nil
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	for k, v := range m {
		switch x := v.(type) {
		case nil:
		case string:
			out[k] = x
		default:
			out[k] = fmt.Sprint(x)
		}
	}
	return out, nil
}
