package tabular

import (
	"io"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

func readXLSX(name string, r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: open workbook", name)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return &Table{Name: name}, nil
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrapf(err, "%s: read sheet %q", name, sheets[0])
	}
	return split(name, rows), nil
}
