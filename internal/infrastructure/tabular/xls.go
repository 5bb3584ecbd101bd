package tabular

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/extrame/xls"
	"github.com/pkg/errors"
)

// readXLS reads the first sheet of a legacy BIFF workbook.
func readXLS(name string, r io.Reader) (t *Table, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: read workbook", name)
	}

	// The BIFF decoder panics on some malformed input.
	defer func() {
		if p := recover(); p != nil {
			t, err = nil, errors.Errorf("%s: open workbook: %v", name, p)
		}
	}()

	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, errors.Wrapf(err, "%s: open workbook", name)
	}
	if wb.NumSheets() == 0 {
		return &Table{Name: name}, nil
	}
	sheet := wb.GetSheet(0)
	if sheet == nil {
		return &Table{Name: name}, nil
	}

	var records [][]string
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			records = append(records, nil)
			continue
		}
		// LastCol is inclusive in some writers and exclusive in others.
		cells := make([]string, 0, row.LastCol()+1)
		for j := 0; j <= row.LastCol(); j++ {
			cells = append(cells, strings.TrimSpace(fmt.Sprint(row.Col(j))))
		}
		records = append(records, trimTrailingEmpty(cells))
	}
	for len(records) > 0 && len(records[0]) == 0 {
		records = records[1:]
	}
	return split(name, records), nil
}

func trimTrailingEmpty(cells []string) []string {
	n := len(cells)
	for n > 0 && cells[n-1] == "" {
		n--
	}
	return cells[:n]
}
