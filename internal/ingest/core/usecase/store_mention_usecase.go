package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/laudwin/Dashlite-v5/internal/ingest/core/domain"
	"github.com/laudwin/Dashlite-v5/internal/ingest/core/ports"
)

// MaxBulkSize caps the number of mentions accepted by one bulk call.
const MaxBulkSize = 1000

var (
	ErrInvalidMention  = errors.New("invalid mention")
	ErrFutureTime      = errors.New("timestamp cannot be in the future")
	ErrNegativeMeasure = errors.New("measure cannot be negative")
	ErrBulkTooLarge    = fmt.Errorf("bulk request exceeds %d mentions", MaxBulkSize)
)

// Observer receives the outcome of every store call.
type Observer interface {
	ObserveIngest(created, duplicates int)
}

type StoreMentionUseCase struct {
	repo     ports.MentionRepositoryPort
	observer Observer
	now      func() time.Time
}

func NewStoreMentionUseCase(repo ports.MentionRepositoryPort, observer Observer) *StoreMentionUseCase {
	return &StoreMentionUseCase{repo: repo, observer: observer, now: time.Now}
}

type StoreMentionInput struct {
	Dataset   string
	Timestamp int64 // unix second
	Measure   *float64
	Labels    map[string]string
}

func (uc *StoreMentionUseCase) Execute(ctx context.Context, in StoreMentionInput) (bool, error) {
	if err := uc.validateInput(in); err != nil {
		return false, err
	}

	created, err := uc.store(ctx, in)
	if err != nil {
		return false, err
	}

	if created {
		uc.observe(1, 0)
	} else {
		uc.observe(0, 1)
	}
	return created, nil
}

func (uc *StoreMentionUseCase) store(ctx context.Context, in StoreMentionInput) (bool, error) {
	publishedAt := time.Unix(in.Timestamp, 0).UTC()

	labels := make(map[string]string, len(in.Labels))
	for k, v := range in.Labels {
		labels[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}

	m := &domain.Mention{
		Dataset:     in.Dataset,
		PublishedAt: publishedAt,
		Measure:     in.Measure,
		Labels:      labels,
		DedupeKey:   buildDedupeKey(in.Dataset, publishedAt, in.Measure, labels),
	}

	return uc.repo.InsertMention(ctx, m)
}

// buildDedupeKey: dataset | unix_timestamp | sorted k=v labels | measure
func buildDedupeKey(dataset string, t time.Time, measure *float64, labels map[string]string) string {
	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = k + "=" + labels[k]
	}

	m := "-"
	if measure != nil {
		m = strconv.FormatFloat(*measure, 'g', -1, 64)
	}

	return fmt.Sprintf("%s|%d|%s|%s", dataset, t.Unix(), strings.Join(pairs, ","), m)
}

type BulkStoreInput struct {
	Mentions []StoreMentionInput
}

type BulkStoreResult struct {
	Created    int
	Duplicates int
}

// BulkStore validates every mention before writing any of them.
func (uc *StoreMentionUseCase) BulkStore(ctx context.Context, in BulkStoreInput) (BulkStoreResult, error) {
	var res BulkStoreResult

	if len(in.Mentions) > MaxBulkSize {
		return res, ErrBulkTooLarge
	}
	for i, m := range in.Mentions {
		if err := uc.validateInput(m); err != nil {
			return res, fmt.Errorf("mention %d: %w", i, err)
		}
	}

	for _, m := range in.Mentions {
		ok, err := uc.store(ctx, m)
		if err != nil {
			uc.observe(res.Created, res.Duplicates)
			return res, err
		}
		if ok {
			res.Created++
		} else {
			res.Duplicates++
		}
	}

	uc.observe(res.Created, res.Duplicates)
	return res, nil
}

func (uc *StoreMentionUseCase) observe(created, duplicates int) {
	if uc.observer != nil {
		uc.observer.ObserveIngest(created, duplicates)
	}
}

func (uc *StoreMentionUseCase) validateInput(in StoreMentionInput) error {
	if strings.TrimSpace(in.Dataset) == "" || in.Timestamp <= 0 {
		return ErrInvalidMention
	}
	for k := range in.Labels {
		if strings.TrimSpace(k) == "" {
			return ErrInvalidMention
		}
	}

	if in.Measure != nil && *in.Measure < 0 {
		return ErrNegativeMeasure
	}

	if in.Timestamp > uc.now().Unix() {
		return ErrFutureTime
	}

	return nil
}
