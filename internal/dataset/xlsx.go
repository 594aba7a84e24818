package dataset

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
)

// loadXLSX parses a spreadsheet export. The first row of the selected sheet
// is the header row.
func loadXLSX(path string, opts LoadOptions) (*Dataset, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrap(ErrMalformedSource, err.Error())
	}
	return sheetToDataset(f, opts)
}

// readXLSXBytes parses an in-memory spreadsheet upload.
func readXLSXBytes(data []byte, opts LoadOptions) (*Dataset, error) {
	f, err := xlsx.OpenBinary(data)
	if err != nil {
		return nil, eris.Wrap(ErrMalformedSource, err.Error())
	}
	return sheetToDataset(f, opts)
}

func sheetToDataset(f *xlsx.File, opts LoadOptions) (*Dataset, error) {
	sheet, err := pickSheet(f, opts.SheetName)
	if err != nil {
		return nil, err
	}

	var header []string
	var records [][]string
	for i, row := range sheet.Rows {
		cells := make([]string, len(row.Cells))
		for j, cell := range row.Cells {
			cells[j] = cell.String()
		}
		if i == 0 {
			header = cells
			continue
		}
		records = append(records, cells)
	}

	if header == nil {
		return nil, eris.Wrap(ErrMalformedSource, "dataset: sheet has no header row")
	}

	return fromRecords(header, records)
}

func pickSheet(f *xlsx.File, name string) (*xlsx.Sheet, error) {
	if name != "" {
		sheet, ok := f.Sheet[name]
		if !ok {
			return nil, eris.Wrapf(ErrMalformedSource, "dataset: sheet %q not found", name)
		}
		return sheet, nil
	}
	if len(f.Sheets) == 0 {
		return nil, eris.Wrap(ErrMalformedSource, "dataset: workbook has no sheets")
	}
	return f.Sheets[0], nil
}
