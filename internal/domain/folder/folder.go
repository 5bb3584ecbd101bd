package folder

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// Extensions lists the file types a question folder may hold.
var Extensions = []string{".csv", ".xlsx", ".xlsm", ".xls"}

// Folder is a fixed repository folder of question sources. Every supported
// file in it is loaded and combined into one bank.
type Folder struct {
	Path    string
	Sources []string // file names relative to Path, sorted
}

// Scan lists the supported files at the root of fsys. Hidden files and
// sub-directories are skipped.
func Scan(fsys fs.FS, dir string) (*Folder, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, err
	}

	f := &Folder{Path: dir}
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") || strings.HasPrefix(e.Name(), "~$") {
			continue
		}
		if Supported(e.Name()) {
			f.Sources = append(f.Sources, e.Name())
		}
	}
	sort.Strings(f.Sources)
	return f, nil
}

// Supported reports whether name has a loadable extension.
func Supported(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Paths joins each source with the folder path, ready for os.Open.
func (f *Folder) Paths() []string {
	out := make([]string, len(f.Sources))
	for i, s := range f.Sources {
		out[i] = filepath.Join(f.Path, s)
	}
	return out
}
