package dataset

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/rotisserie/eris"
)

// loadCSV parses a UTF-8 delimited-text export. The first record is the
// header row; variable-width records are tolerated and padded by fromRecords.
func loadCSV(path string, opts LoadOptions) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "dataset: open %s", path)
	}
	defer f.Close()

	return readCSV(f, opts)
}

// readCSV parses delimited text from any reader. Split out so tests and
// in-memory uploads can bypass the filesystem.
func readCSV(r io.Reader, opts LoadOptions) (*Dataset, error) {
	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1 // allow variable fields

	var header []string
	var records [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrap(ErrMalformedSource, err.Error())
		}
		if header == nil {
			header = record
			continue
		}
		records = append(records, record)
	}

	if header == nil {
		return nil, eris.Wrap(ErrMalformedSource, "dataset: csv has no header row")
	}

	return fromRecords(header, records)
}
