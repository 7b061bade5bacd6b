package file

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/format"
)

type parquetColumn struct {
	name  string
	index int
	typ   parquet.Type
}

// readParquet decodes the flat top-level columns of a parquet file. Nested
// groups are skipped.
func readParquet(path string) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open parquet file: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, err
	}
	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("read parquet footer: %w", err)
	}

	schema := pf.Schema()
	var cols []parquetColumn
	for _, field := range schema.Fields() {
		if !field.Leaf() {
			continue
		}
		leaf, ok := schema.Lookup(field.Name())
		if !ok {
			continue
		}
		cols = append(cols, parquetColumn{name: field.Name(), index: leaf.ColumnIndex, typ: field.Type()})
	}

	t := &table{text: make(map[string]bool, len(cols))}
	for _, c := range cols {
		t.headers = append(t.headers, c.name)
		kind := c.typ.Kind()
		t.text[c.name] = kind == parquet.ByteArray || kind == parquet.FixedLenByteArray
	}

	for _, rg := range pf.RowGroups() {
		n := int(rg.NumRows())
		block := make([]map[string]string, n)
		for i := range block {
			block[i] = make(map[string]string, len(cols))
		}

		chunks := rg.ColumnChunks()
		for _, c := range cols {
			values, err := readColumn(chunks[c.index])
			if err != nil {
				return nil, fmt.Errorf("read column %s: %w", c.name, err)
			}
			for i, v := range values {
				if i >= n {
					break
				}
				if v.IsNull() {
					continue
				}
				block[i][c.name] = formatValue(v, c.typ)
			}
		}
		t.rows = append(t.rows, block...)
	}

	return t, nil
}

func readColumn(chunk parquet.ColumnChunk) ([]parquet.Value, error) {
	pages := chunk.Pages()
	defer pages.Close()

	var out []parquet.Value
	for {
		p, err := pages.ReadPage()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return nil, err
		}
		buf := make([]parquet.Value, p.NumValues())
		n, err := p.Values().ReadValues(buf)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		out = append(out, buf[:n]...)
	}
}

func formatValue(v parquet.Value, typ parquet.Type) string {
	lt := typ.LogicalType()

	switch v.Kind() {
	case parquet.ByteArray, parquet.FixedLenByteArray:
		return string(v.ByteArray())
	case parquet.Int64:
		if lt != nil && lt.Timestamp != nil {
			return fromUnit(v.Int64(), lt.Timestamp.Unit).Format(time.RFC3339Nano)
		}
		return strconv.FormatInt(v.Int64(), 10)
	case parquet.Int32:
		if lt != nil && lt.Date != nil {
			return time.Unix(int64(v.Int32())*86400, 0).UTC().Format(time.RFC3339Nano)
		}
		return strconv.FormatInt(int64(v.Int32()), 10)
	case parquet.Double:
		return strconv.FormatFloat(v.Double(), 'f', -1, 64)
	case parquet.Float:
		return strconv.FormatFloat(float64(v.Float()), 'f', -1, 32)
	case parquet.Boolean:
		return strconv.FormatBool(v.Boolean())
	default:
		return v.String()
	}
}

func fromUnit(n int64, unit format.TimeUnit) time.Time {
	switch {
	case unit.Millis != nil:
		return time.UnixMilli(n).UTC()
	case unit.Micros != nil:
		return time.UnixMicro(n).UTC()
	default:
		return time.Unix(0, n).UTC()
	}
}
