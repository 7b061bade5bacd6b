// Package file loads mention datasets from parquet, CSV or XLSX files kept
// in one directory, one file per dataset.
package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/laudwin/Dashlite-v5/internal/analytics/core/domain"
	"github.com/laudwin/Dashlite-v5/internal/analytics/core/ports"
	applog "github.com/laudwin/Dashlite-v5/internal/log"
)

type Config struct {
	Dir             string
	TimestampColumn string
	MeasureColumns  []string // first existing column wins
}

type decoder func(path string) (*table, error)

// extensions in lookup order
var extensions = []struct {
	ext    string
	decode decoder
}{
	{".parquet", readParquet},
	{".csv", readCSV},
	{".xlsx", readXLSX},
}

var datasetName = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

type DatasetReader struct {
	cfg      Config
	logger   *applog.Logger
	observer ports.LoadObserver
}

var _ ports.DatasetReaderPort = (*DatasetReader)(nil)

func NewDatasetReader(cfg Config, logger *applog.Logger, observer ports.LoadObserver) *DatasetReader {
	if logger == nil {
		logger = applog.Nop()
	}
	return &DatasetReader{
		cfg:      cfg,
		logger:   logger.WithComponent(applog.ComponentLoader),
		observer: observer,
	}
}

func (r *DatasetReader) LoadDataset(ctx context.Context, f ports.DatasetFilter) (*domain.Dataset, error) {
	start := time.Now()

	path, decode, err := r.locate(f.Dataset)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t, err := decode(path)
	if err != nil {
		return nil, fmt.Errorf("load dataset %s: %w", f.Dataset, err)
	}

	ds, skipped, err := r.toDataset(f.Dataset, t)
	if err != nil {
		return nil, err
	}
	total := ds.Len()
	ds.Events = filterEvents(ds.Events, f)

	if skipped > 0 {
		r.logger.WarnContext(ctx, "rows skipped while loading dataset",
			applog.FieldDataset, f.Dataset,
			applog.FieldSkippedRows, skipped,
		)
	}
	r.logger.DebugContext(ctx, "dataset loaded",
		applog.FieldDataset, f.Dataset,
		applog.FieldSource, filepath.Base(path),
		applog.FieldRows, total,
	)
	if r.observer != nil {
		r.observer.ObserveLoad(f.Dataset, time.Since(start), skipped)
	}

	return ds, nil
}

func (r *DatasetReader) locate(name string) (string, decoder, error) {
	if !datasetName.MatchString(name) {
		return "", nil, ports.ErrDatasetNotFound
	}
	for _, e := range extensions {
		path := filepath.Join(r.cfg.Dir, name+e.ext)
		info, err := os.Stat(path)
		if err == nil && !info.IsDir() {
			return path, e.decode, nil
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", nil, fmt.Errorf("stat %s: %w", path, err)
		}
	}
	return "", nil, ports.ErrDatasetNotFound
}

// toDataset maps table columns onto events. Rows whose timestamp or measure
// cannot be parsed are dropped and counted.
func (r *DatasetReader) toDataset(name string, t *table) (*domain.Dataset, int, error) {
	if !t.has(r.cfg.TimestampColumn) {
		return nil, 0, &domain.SchemaError{Dataset: name, Field: r.cfg.TimestampColumn}
	}

	measure, _ := lo.Find(r.cfg.MeasureColumns, t.has)

	dims := lo.Filter(t.headers, func(h string, _ int) bool {
		return t.text[h] && h != r.cfg.TimestampColumn && !lo.Contains(r.cfg.MeasureColumns, h)
	})

	ds := &domain.Dataset{
		Name:       name,
		Dimensions: dims,
		Events:     make([]domain.Event, 0, len(t.rows)),
	}

	skipped := 0
	for _, row := range t.rows {
		ts, ok := t.parseTimestamp(row[r.cfg.TimestampColumn])
		if !ok {
			skipped++
			continue
		}

		e := domain.Event{Timestamp: ts, Labels: make(map[string]string, len(dims))}
		if measure != "" {
			if raw := row[measure]; raw != "" {
				v, err := strconv.ParseFloat(raw, 64)
				if err != nil || !domain.ValidMeasure(v) {
					skipped++
					continue
				}
				e.Measure = domain.Float(v)
			}
		}
		for _, d := range dims {
			if v, ok := row[d]; ok {
				e.Labels[d] = v
			}
		}
		ds.Events = append(ds.Events, e)
	}

	return ds, skipped, nil
}

// filterEvents keeps events inside [From, To] that satisfy every match and
// no exclude. A zero bound is open.
func filterEvents(events []domain.Event, f ports.DatasetFilter) []domain.Event {
	return lo.Filter(events, func(e domain.Event, _ int) bool {
		if !f.From.IsZero() && e.Timestamp.Before(f.From) {
			return false
		}
		if !f.To.IsZero() && e.Timestamp.After(f.To) {
			return false
		}
		for field, want := range f.Match {
			if e.Labels[field] != want {
				return false
			}
		}
		for field, needle := range f.Exclude {
			if needle == "" {
				continue
			}
			if strings.Contains(strings.ToLower(e.Labels[field]), strings.ToLower(needle)) {
				return false
			}
		}
		return true
	})
}
