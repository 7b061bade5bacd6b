package domain

import (
	"math"
	"slices"
	"time"
)

// Event is one observed mention record.
type Event struct {
	Timestamp time.Time
	Measure   *float64          // nil means the row counts as 1
	Labels    map[string]string // dimension name -> value
}

// Value returns the measure to aggregate.
func (e Event) Value() float64 {
	if e.Measure == nil {
		return 1
	}
	return *e.Measure
}

// Label returns the value of a dimension, or UnlabeledCategory when the
// event does not carry it.
func (e Event) Label(field string) string {
	if v, ok := e.Labels[field]; ok && v != "" {
		return v
	}
	return UnlabeledCategory
}

// Dataset is a read-only, already filtered set of events plus the label
// fields its source exposes.
type Dataset struct {
	Name       string
	Dimensions []string
	Events     []Event
}

// HasDimension reports whether field is a label of d. A nil dataset has none.
func (d *Dataset) HasDimension(field string) bool {
	if d == nil {
		return false
	}
	return slices.Contains(d.Dimensions, field)
}

func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Events)
}

// Float returns a pointer to v, for building measured events.
func Float(v float64) *float64 {
	return &v
}

// ValidMeasure reports whether v can be aggregated: finite and not negative.
func ValidMeasure(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
