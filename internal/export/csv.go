// Package export serializes frequency tables as the dashboard's UTF-8 CSV
// downloads and parses them back for verification.
package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/minedu-grd/encuesta-cli/internal/survey"
)

// Frequency-table CSV header, fixed by the dashboard's download format.
var freqHeader = []string{"Respuesta", "Frecuencia", "Porcentaje (%)"}

// WriteFreqCSV writes a frequency table, Total row included.
func WriteFreqCSV(w io.Writer, t survey.FreqTable) error {
	return writeTable(w, freqHeader, t)
}

// WriteSummaryCSV writes a region summary table. Same triple shape as a
// frequency table but with the region column name in the header.
func WriteSummaryCSV(w io.Writer, regionCol string, t survey.FreqTable) error {
	return writeTable(w, []string{regionCol, "Respuestas", "% del total"}, t)
}

func writeTable(w io.Writer, header []string, t survey.FreqTable) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return eris.Wrap(err, "export: write header")
	}
	for _, row := range t.Rows {
		record := []string{row.Label, strconv.Itoa(row.Count), strconv.Itoa(row.Percent)}
		if err := cw.Write(record); err != nil {
			return eris.Wrap(err, "export: write row")
		}
	}
	cw.Flush()
	return eris.Wrap(cw.Error(), "export: flush")
}

// ParseFreqCSV reads a frequency-table CSV back into its triples, preserving
// row order. Round-trips exactly with WriteFreqCSV.
func ParseFreqCSV(r io.Reader) (survey.FreqTable, error) {
	cr := csv.NewReader(r)

	records, err := cr.ReadAll()
	if err != nil {
		return survey.FreqTable{}, eris.Wrap(err, "export: parse csv")
	}
	if len(records) == 0 {
		return survey.FreqTable{}, eris.New("export: empty csv")
	}

	var t survey.FreqTable
	for _, rec := range records[1:] {
		if len(rec) != 3 {
			return survey.FreqTable{}, eris.Errorf("export: expected 3 fields, got %d", len(rec))
		}
		count, err := strconv.Atoi(rec[1])
		if err != nil {
			return survey.FreqTable{}, eris.Wrapf(err, "export: count %q", rec[1])
		}
		percent, err := strconv.Atoi(rec[2])
		if err != nil {
			return survey.FreqTable{}, eris.Wrapf(err, "export: percent %q", rec[2])
		}
		t.Rows = append(t.Rows, survey.FreqRow{Label: rec[0], Count: count, Percent: percent})
	}
	return t, nil
}

// Filename derives the download filename for one question's table: the
// question text clipped to 40 runes, spaces replaced by underscores.
func Filename(question string) string {
	runes := []rune(question)
	if len(runes) > 40 {
		runes = runes[:40]
	}
	return "frecuencias_" + strings.ReplaceAll(string(runes), " ", "_") + ".csv"
}
