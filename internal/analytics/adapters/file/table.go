package file

import (
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// table is a decoded source file: one string per cell, keyed by header.
type table struct {
	headers []string
	text    map[string]bool // columns that may serve as dimensions
	rows    []map[string]string

	serialDates bool // numeric timestamps are spreadsheet serial dates
}

func newTable(headers []string) *table {
	t := &table{text: make(map[string]bool, len(headers))}
	for _, h := range headers {
		h = strings.TrimSpace(h)
		t.headers = append(t.headers, h)
		t.text[h] = true
	}
	return t
}

func (t *table) has(column string) bool {
	for _, h := range t.headers {
		if h == column {
			return true
		}
	}
	return false
}

// appendRecords adds header-aligned string records, ignoring cells past the
// last header and leaving short records' missing cells empty.
func (t *table) appendRecords(records [][]string) {
	for _, rec := range records {
		row := make(map[string]string, len(t.headers))
		for j, cell := range rec {
			if j >= len(t.headers) {
				break
			}
			row[t.headers[j]] = strings.TrimSpace(cell)
		}
		t.rows = append(t.rows, row)
	}
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
	"01-02-06",
	"1/2/2006",
	"1/2/2006 15:04",
}

// parseTimestamp reads a cell as a UTC instant. Layouts without a zone are
// taken as UTC.
func (t *table) parseTimestamp(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts.UTC(), true
		}
	}
	if t.serialDates {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			if ts, err := excelize.ExcelDateToTime(f, false); err == nil {
				return ts.UTC(), true
			}
		}
	}
	return time.Time{}, false
}
