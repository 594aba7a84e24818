package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "encuesta.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func createTestXLSX(t *testing.T, sheets map[string][][]string) string {
	t.Helper()
	f := xlsx.NewFile()
	for name, rows := range sheets {
		sheet, err := f.AddSheet(name)
		require.NoError(t, err)
		for _, rowData := range rows {
			row := sheet.AddRow()
			for _, cellData := range rowData {
				cell := row.AddCell()
				cell.SetString(cellData)
			}
		}
	}
	path := filepath.Join(t.TempDir(), "encuesta.xlsx")
	require.NoError(t, f.Save(path))
	return path
}

func TestLoadCSV_Basic(t *testing.T) {
	path := writeTempCSV(t, "Región , Respuesta\nLima, Sí \nCusco,No\n")

	ds, err := Load(path, LoadOptions{})
	require.NoError(t, err)

	// Headers and cells are trimmed
	assert.Equal(t, []string{"Región", "Respuesta"}, ds.Columns)
	require.Len(t, ds.Rows, 2)
	assert.Equal(t, "Lima", ds.Rows[0]["Región"])
	assert.Equal(t, "Sí", ds.Rows[0]["Respuesta"])
	assert.Equal(t, "No", ds.Rows[1]["Respuesta"])
}

func TestLoadCSV_ShortRowsPadded(t *testing.T) {
	path := writeTempCSV(t, "a,b,c\n1,2\n")

	ds, err := Load(path, LoadOptions{})
	require.NoError(t, err)
	require.Len(t, ds.Rows, 1)
	assert.Equal(t, "", ds.Rows[0]["c"])
}

func TestLoadCSV_SemicolonDelimiter(t *testing.T) {
	path := writeTempCSV(t, "a;b\n1;2\n")

	ds, err := Load(path, LoadOptions{Delimiter: ';'})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ds.Columns)
	assert.Equal(t, "2", ds.Rows[0]["b"])
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	_, err := Load("datos.json", LoadOptions{})
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestLoad_SourceNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.csv"), LoadOptions{})
	assert.True(t, errors.Is(err, ErrSourceNotFound))
}

func TestLoadCSV_DuplicateHeaders(t *testing.T) {
	path := writeTempCSV(t, "a,a\n1,2\n")

	_, err := Load(path, LoadOptions{})
	assert.True(t, errors.Is(err, ErrMalformedSource))
}

func TestLoadCSV_Empty(t *testing.T) {
	path := writeTempCSV(t, "")

	_, err := Load(path, LoadOptions{})
	assert.True(t, errors.Is(err, ErrMalformedSource))
}

func TestLoadXLSX_Basic(t *testing.T) {
	path := createTestXLSX(t, map[string][][]string{
		"Hoja1": {
			{" Región ", "Respuesta"},
			{"Lima", " Sí "},
			{"Cusco", "No"},
		},
	})

	ds, err := Load(path, LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Región", "Respuesta"}, ds.Columns)
	require.Len(t, ds.Rows, 2)
	assert.Equal(t, "Sí", ds.Rows[0]["Respuesta"])
}

func TestLoadXLSX_SheetByName(t *testing.T) {
	path := createTestXLSX(t, map[string][][]string{
		"Datos": {
			{"a"},
			{"1"},
		},
	})

	ds, err := Load(path, LoadOptions{SheetName: "Datos"})
	require.NoError(t, err)
	require.Len(t, ds.Rows, 1)

	_, err = Load(path, LoadOptions{SheetName: "NoExiste"})
	assert.True(t, errors.Is(err, ErrMalformedSource))
}

func TestLoadXLSX_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roto.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("not a zip archive"), 0o644))

	_, err := Load(path, LoadOptions{})
	assert.True(t, errors.Is(err, ErrMalformedSource))
}

func TestFromBytes(t *testing.T) {
	ds, err := FromBytes("subida.csv", []byte("a,b\n1,2\n"), LoadOptions{})
	require.NoError(t, err)
	require.Len(t, ds.Rows, 1)
	assert.Equal(t, "2", ds.Rows[0]["b"])

	xlsxPath := createTestXLSX(t, map[string][][]string{
		"Hoja1": {{"a"}, {"1"}},
	})
	data, err := os.ReadFile(xlsxPath)
	require.NoError(t, err)

	ds, err = FromBytes("subida.xlsx", data, LoadOptions{})
	require.NoError(t, err)
	require.Len(t, ds.Rows, 1)

	_, err = FromBytes("subida.txt", []byte("a,b\n"), LoadOptions{})
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestWithColumn(t *testing.T) {
	ds := &Dataset{
		Columns: []string{"a"},
		Rows:    []Row{{"a": "1"}, {"a": "2"}},
	}

	out, err := ds.WithColumn("b", []string{"x", "y"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, out.Columns)
	assert.Equal(t, "y", out.Rows[1]["b"])

	// Source dataset unchanged
	assert.Equal(t, []string{"a"}, ds.Columns)
	_, hasB := ds.Rows[0]["b"]
	assert.False(t, hasB)

	_, err = ds.WithColumn("a", []string{"x", "y"})
	assert.Error(t, err)

	_, err = ds.WithColumn("c", []string{"x"})
	assert.Error(t, err)
}

func TestRequireColumns(t *testing.T) {
	ds := &Dataset{Columns: []string{"Región", "Instancia"}}

	require.NoError(t, ds.RequireColumns("Región", "Instancia"))

	err := ds.RequireColumns("Región", "Cargo")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingColumn))
	assert.Contains(t, err.Error(), "Cargo")
}
