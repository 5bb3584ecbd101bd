package tabular

import (
	"encoding/csv"
	"io"

	"github.com/pkg/errors"
)

func readCSV(name string, r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "%s: parse csv", name)
	}
	return split(name, records), nil
}

// WriteCSV writes header and records as CSV.
func WriteCSV(w io.Writer, header []string, records [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return errors.Wrap(err, "write csv header")
	}
	if err := cw.WriteAll(records); err != nil {
		return errors.Wrap(err, "write csv records")
	}
	return nil
}
