package ports

import (
	"context"

	"github.com/laudwin/Dashlite-v5/internal/ingest/core/domain"
)

type MentionRepositoryPort interface {
	// InsertMention:
	//   created = true,  err = nil  -> new record
	//   created = false, err = nil  -> duplicate (idempotent)
	//   created = false, err != nil -> DB error
	InsertMention(ctx context.Context, m *domain.Mention) (created bool, err error)
}
