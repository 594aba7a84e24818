package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minedu-grd/encuesta-cli/internal/survey"
)

func sampleTable() survey.FreqTable {
	return survey.FreqTable{Rows: []survey.FreqRow{
		{Label: "No", Count: 1, Percent: 17},
		{Label: "No sé", Count: 1, Percent: 17},
		{Label: "Sí", Count: 3, Percent: 50},
		{Label: "Sin respuesta", Count: 1, Percent: 17},
		{Label: "Total", Count: 6, Percent: 100},
	}}
}

func TestWriteFreqCSV_Header(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteFreqCSV(&buf, sampleTable()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, "Respuesta,Frecuencia,Porcentaje (%)", lines[0])
	assert.Len(t, lines, 6) // header + 4 answers + Total
	assert.Equal(t, "Total,6,100", lines[5])
}

func TestFreqCSV_RoundTrip(t *testing.T) {
	table := sampleTable()

	var buf bytes.Buffer
	require.NoError(t, WriteFreqCSV(&buf, table))

	got, err := ParseFreqCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, table, got)
}

func TestFreqCSV_RoundTrip_QuotedLabels(t *testing.T) {
	table := survey.FreqTable{Rows: []survey.FreqRow{
		{Label: `Charlas, talleres y "simulacros"`, Count: 2, Percent: 100},
		{Label: "Total", Count: 2, Percent: 100},
	}}

	var buf bytes.Buffer
	require.NoError(t, WriteFreqCSV(&buf, table))

	got, err := ParseFreqCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, table, got)
}

func TestWriteSummaryCSV_Header(t *testing.T) {
	var buf bytes.Buffer
	table := survey.FreqTable{Rows: []survey.FreqRow{
		{Label: "Lima", Count: 2, Percent: 100},
		{Label: "Total", Count: 2, Percent: 100},
	}}
	require.NoError(t, WriteSummaryCSV(&buf, "Región en la que trabaja", table))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, "Región en la que trabaja,Respuestas,% del total", lines[0])
}

func TestParseFreqCSV_Malformed(t *testing.T) {
	_, err := ParseFreqCSV(strings.NewReader(""))
	assert.Error(t, err)

	_, err = ParseFreqCSV(strings.NewReader("Respuesta,Frecuencia,Porcentaje (%)\nSí,tres,50\n"))
	assert.Error(t, err)

	_, err = ParseFreqCSV(strings.NewReader("a,b\n1,2\n"))
	assert.Error(t, err)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "frecuencias_¿Conoce_el_plan?.csv", Filename("¿Conoce el plan?"))

	long := "¿Con qué frecuencia participa en simulacros organizados por su institución?"
	got := Filename(long)
	assert.True(t, strings.HasPrefix(got, "frecuencias_"))
	assert.True(t, strings.HasSuffix(got, ".csv"))
	core := strings.TrimSuffix(strings.TrimPrefix(got, "frecuencias_"), ".csv")
	assert.Len(t, []rune(core), 40)
	assert.NotContains(t, core, " ")
}
