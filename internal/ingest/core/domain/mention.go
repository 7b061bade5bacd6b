package domain

import "time"

// Mention is one social-media mention row as stored in mention_events.
type Mention struct {
	Dataset     string
	PublishedAt time.Time
	Measure     *float64 // nil counts as 1 when aggregated
	Labels      map[string]string
	DedupeKey   string
}
