package ports

import (
	"context"
	"errors"
	"time"

	"github.com/laudwin/Dashlite-v5/internal/analytics/core/domain"
)

var ErrDatasetNotFound = errors.New("dataset not found")

type DatasetFilter struct {
	Dataset string
	From    time.Time // inclusive
	To      time.Time // inclusive

	Match   map[string]string // label must equal value
	Exclude map[string]string // label containing value (case-insensitive) is dropped
}

// Fields returns every label field the filter refers to.
func (f DatasetFilter) Fields() []string {
	fields := make([]string, 0, len(f.Match)+len(f.Exclude))
	for k := range f.Match {
		fields = append(fields, k)
	}
	for k := range f.Exclude {
		fields = append(fields, k)
	}
	return fields
}

type DatasetReaderPort interface {
	LoadDataset(ctx context.Context, f DatasetFilter) (*domain.Dataset, error)
}

// LoadObserver receives one call per completed dataset load.
type LoadObserver interface {
	ObserveLoad(dataset string, took time.Duration, skipped int)
}
