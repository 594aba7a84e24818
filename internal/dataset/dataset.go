// Package dataset loads and models the tabular survey export (XLSX or CSV).
package dataset

import (
	"strings"

	"github.com/rotisserie/eris"
)

// Row maps a column header to the cell value for one survey response.
// Missing cells are the empty string.
type Row map[string]string

// Dataset is an immutable snapshot of one loaded survey export.
// Columns preserves the header order of the source file.
type Dataset struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// HasColumn reports whether the dataset contains the given column header.
func (d *Dataset) HasColumn(name string) bool {
	for _, c := range d.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Column returns all values of one column in row order.
func (d *Dataset) Column(name string) ([]string, error) {
	if !d.HasColumn(name) {
		return nil, eris.Wrapf(ErrMissingColumn, "dataset: column %q", name)
	}
	values := make([]string, len(d.Rows))
	for i, row := range d.Rows {
		values[i] = row[name]
	}
	return values, nil
}

// WithColumn returns a copy of the dataset with one derived column appended.
// The source dataset is not modified. Values must match the row count.
func (d *Dataset) WithColumn(name string, values []string) (*Dataset, error) {
	if d.HasColumn(name) {
		return nil, eris.Errorf("dataset: column %q already exists", name)
	}
	if len(values) != len(d.Rows) {
		return nil, eris.Errorf("dataset: column %q has %d values for %d rows", name, len(values), len(d.Rows))
	}

	out := &Dataset{
		Columns: append(append([]string{}, d.Columns...), name),
		Rows:    make([]Row, len(d.Rows)),
	}
	for i, row := range d.Rows {
		nr := make(Row, len(row)+1)
		for k, v := range row {
			nr[k] = v
		}
		nr[name] = values[i]
		out.Rows[i] = nr
	}
	return out, nil
}

// RequireColumns verifies that every listed header is present, surfacing the
// first missing one. Called right after load, before any computation.
func (d *Dataset) RequireColumns(names ...string) error {
	for _, name := range names {
		if !d.HasColumn(name) {
			return eris.Wrapf(ErrMissingColumn, "dataset: required column %q", name)
		}
	}
	return nil
}

// fromRecords builds a Dataset from a header row plus data records.
// Headers and cell values are whitespace-trimmed; short records are padded
// with empty cells, long ones truncated to the header width.
func fromRecords(header []string, records [][]string) (*Dataset, error) {
	columns := make([]string, len(header))
	seen := make(map[string]struct{}, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if _, dup := seen[h]; dup {
			return nil, eris.Wrapf(ErrMalformedSource, "dataset: duplicate column %q", h)
		}
		seen[h] = struct{}{}
		columns[i] = h
	}

	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		row := make(Row, len(columns))
		for i, col := range columns {
			if i < len(rec) {
				row[col] = strings.TrimSpace(rec[i])
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}

	return &Dataset{Columns: columns, Rows: rows}, nil
}
