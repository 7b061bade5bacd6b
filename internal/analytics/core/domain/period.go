package domain

import (
	"errors"
	"strings"
	"time"
)

type Granularity string

const (
	Daily       Granularity = "daily"
	Weekly      Granularity = "weekly"
	Monthly     Granularity = "monthly"
	Yearly      Granularity = "yearly"
	FiscalMonth Granularity = "fiscal_month"
)

var ErrInvalidGranularity = errors.New("invalid granularity")

// FiscalMonths is the display order of the fiscal-month axis (Mar..Feb).
var FiscalMonths = []string{
	"Mar", "Apr", "May", "Jun", "Jul", "Aug",
	"Sep", "Oct", "Nov", "Dec", "Jan", "Feb",
}

func ParseGranularity(s string) (Granularity, error) {
	switch g := Granularity(strings.ToLower(strings.TrimSpace(s))); g {
	case Daily, Weekly, Monthly, Yearly, FiscalMonth:
		return g, nil
	default:
		return "", ErrInvalidGranularity
	}
}

// Chronological reports whether periods of g are ordered by start instant.
func (g Granularity) Chronological() bool {
	return g != FiscalMonth
}

// Period is a bucket key. Chronological periods carry their UTC start;
// fiscal-month periods only carry the month label.
type Period struct {
	Start time.Time
	Label string
}

const periodKeyLayout = "2006-01-02"

func NewPeriod(start time.Time) Period {
	return Period{Start: start, Label: start.Format(periodKeyLayout)}
}

func NewFiscalPeriod(month time.Month) Period {
	return Period{Label: month.String()[:3]}
}

func (p Period) Key() string {
	return p.Label
}

// FiscalIndex returns the slot of a fiscal-month period on the Mar..Feb
// axis, or -1 for any other period.
func (p Period) FiscalIndex() int {
	for i, m := range FiscalMonths {
		if m == p.Label {
			return i
		}
	}
	return -1
}

// Less orders two periods of the same granularity.
func (p Period) Less(o Period, g Granularity) bool {
	if g.Chronological() {
		return p.Start.Before(o.Start)
	}
	return p.FiscalIndex() < o.FiscalIndex()
}
