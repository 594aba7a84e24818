package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minedu-grd/encuesta-cli/internal/dataset"
)

func TestRegionSummary(t *testing.T) {
	ds := &dataset.Dataset{
		Columns: []string{"Región"},
		Rows: []dataset.Row{
			{"Región": "Puno"},
			{"Región": "Lima"},
			{"Región": "Lima"},
			{"Región": "Áncash"},
		},
	}

	got, err := RegionSummary(ds, "Región")
	require.NoError(t, err)

	// Sorted by region with accent-aware collation, Total last.
	assert.Equal(t, []FreqRow{
		{Label: "Áncash", Count: 1, Percent: 25},
		{Label: "Lima", Count: 2, Percent: 50},
		{Label: "Puno", Count: 1, Percent: 25},
		{Label: TotalLabel, Count: 4, Percent: 100},
	}, got.Rows)
}

func TestRegionSummary_MissingColumn(t *testing.T) {
	ds := &dataset.Dataset{Columns: []string{"otra"}}
	_, err := RegionSummary(ds, "Región")
	assert.Error(t, err)
}

func TestHeadline(t *testing.T) {
	ds := &dataset.Dataset{
		Columns: []string{"Región", "Instancia (Normalizada)"},
		Rows: []dataset.Row{
			{"Región": "Lima", "Instancia (Normalizada)": "UGEL"},
			{"Región": "Lima", "Instancia (Normalizada)": "DRE/GRE"},
			{"Región": "Cusco", "Instancia (Normalizada)": "UGEL"},
			{"Región": "", "Instancia (Normalizada)": "OTRAS"},
		},
	}

	kpi := Headline(ds, "Región", "Instancia (Normalizada)")
	assert.Equal(t, KPI{Responses: 4, Regions: 2, Tiers: 3}, kpi)
}
