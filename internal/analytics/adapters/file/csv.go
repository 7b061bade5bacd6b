package file

import (
	"encoding/csv"
	"fmt"
	"os"
)

func readCSV(path string) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv file: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv file %s has no header row", path)
	}

	t := newTable(records[0])
	t.appendRecords(records[1:])
	return t, nil
}
