package dataset

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
)

// LoadOptions configures how a source file is parsed.
type LoadOptions struct {
	SheetName string // XLSX only: sheet to read (default: first sheet)
	Delimiter rune   // CSV only: field delimiter (default ',')
}

// Load reads a survey export from a file path, dispatching on extension.
// Supported: .xlsx (spreadsheet) and .csv (UTF-8 delimited text). Any other
// extension fails with ErrUnsupportedFormat before the file is opened.
func Load(path string, opts LoadOptions) (*Dataset, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".xlsx", ".csv":
	default:
		return nil, eris.Wrapf(ErrUnsupportedFormat, "dataset: extension %q", ext)
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, eris.Wrapf(ErrSourceNotFound, "dataset: %s", path)
		}
		return nil, eris.Wrapf(err, "dataset: stat %s", path)
	}

	if ext == ".xlsx" {
		return loadXLSX(path, opts)
	}
	return loadCSV(path, opts)
}

// FromBytes parses an in-memory upload. The name is only used for extension
// dispatch; there is no existence check since the bytes are already here.
func FromBytes(name string, data []byte, opts LoadOptions) (*Dataset, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx":
		return readXLSXBytes(data, opts)
	case ".csv":
		return readCSV(bytes.NewReader(data), opts)
	default:
		return nil, eris.Wrapf(ErrUnsupportedFormat, "dataset: extension %q", filepath.Ext(name))
	}
}
