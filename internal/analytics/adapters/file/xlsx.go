package file

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// readXLSX decodes the first sheet. Cells are read raw so dates arrive as
// serial numbers regardless of the workbook's display format.
func readXLSX(path string) (*table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("xlsx file %s has no sheets", path)
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("xlsx file %s has no header row", path)
	}

	t := newTable(rows[0])
	t.serialDates = true
	t.appendRecords(rows[1:])
	return t, nil
}
