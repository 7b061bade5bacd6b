package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/laudwin/Dashlite-v5/internal/ingest/core/domain"
	"github.com/laudwin/Dashlite-v5/internal/ingest/core/ports"
)

type MentionRepository struct {
	db DB
}

func NewMentionRepository(db DB) *MentionRepository {
	return &MentionRepository{db: db}
}

var _ ports.MentionRepositoryPort = (*MentionRepository)(nil)

const insertMentionSQL = `
INSERT INTO mention_events (
    dataset,
    published_at,
    measure,
    labels,
    dedupe_key
) VALUES (
    $1, $2, $3, $4, $5
)
ON CONFLICT (dedupe_key) DO NOTHING;
`

func (r *MentionRepository) InsertMention(ctx context.Context, m *domain.Mention) (bool, error) {
	var measure any
	if m.Measure != nil {
		measure = *m.Measure
	}

	labels := m.Labels
	if labels == nil {
		labels = map[string]string{}
	}
	labelsJSON, err := json.Marshal(labels)
	if err != nil {
		return false, err
	}

	res, err := r.db.ExecContext(ctx, insertMentionSQL,
		m.Dataset,
		m.PublishedAt,
		measure,
		labelsJSON,
		m.DedupeKey,
	)
	if err != nil {
		return false, fmt.Errorf("insert mention: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	// rows == 0 -> duplicate (ON CONFLICT DO NOTHING)
	return rows > 0, nil
}
