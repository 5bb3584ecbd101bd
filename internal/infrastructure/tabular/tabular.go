package tabular

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// ErrUnsupportedFormat is returned for file types no reader handles.
var ErrUnsupportedFormat = errors.New("unsupported table format")

// Table is a header row plus string data rows.
type Table struct {
	Name   string
	Header []string
	Rows   [][]string
}

// Read parses r according to the extension of name. Spreadsheets are read
// from their first sheet; .csv, .txt and extensionless names are read as CSV.
func Read(name string, r io.Reader) (*Table, error) {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".xlsx", ".xlsm":
		return readXLSX(name, r)
	case ".xls":
		return readXLS(name, r)
	case ".csv", ".txt", "":
		return readCSV(name, r)
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%s: %s files", name, ext)
	}
}

// ReadFile opens path and reads it with Read. The table is named after the
// file's base name.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open table")
	}
	defer f.Close()
	return Read(filepath.Base(path), f)
}

func split(name string, records [][]string) *Table {
	t := &Table{Name: name}
	if len(records) == 0 {
		return t
	}
	t.Header = records[0]
	t.Rows = records[1:]
	return t
}
