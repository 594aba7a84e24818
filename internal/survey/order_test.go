package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func labelsOf(t FreqTable) []string {
	labels := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		labels = append(labels, row.Label)
	}
	return labels
}

func TestReorder_FrequencyScale(t *testing.T) {
	table := Tabulate([]string{"A veces", "Nunca", "Siempre", "A veces", ""})
	got := Reorder(table, DefaultScales())

	// Subset match: missing options simply don't appear, relative order of
	// the scale is imposed, Total last.
	assert.Equal(t, []string{"Nunca", "A veces", "Siempre", "Sin respuesta", "Total"}, labelsOf(got))
}

func TestReorder_FullFrequencyScale(t *testing.T) {
	table := Tabulate([]string{"Siempre", "Frecuentemente", "A veces", "Rara vez", "Nunca"})
	got := Reorder(table, DefaultScales())
	assert.Equal(t, []string{"Nunca", "Rara vez", "A veces", "Frecuentemente", "Siempre", "Total"}, labelsOf(got))
}

func TestReorder_AgreementScale(t *testing.T) {
	table := Tabulate([]string{"De acuerdo", "Muy en desacuerdo", "Neutral"})
	got := Reorder(table, DefaultScales())
	assert.Equal(t, []string{"Muy en desacuerdo", "Neutral", "De acuerdo", "Total"}, labelsOf(got))
}

func TestReorder_TernaryScale(t *testing.T) {
	// Spec'd worked example: canonicalized Sí/No/No sé column.
	values := Canonicalize([]string{"Sí", "Si", "No", "No sé", "Sí", ""}, DefaultCanonical())
	got := Reorder(Tabulate(values), DefaultScales())
	assert.Equal(t, []string{"No", "No sé", "Sí", "Sin respuesta", "Total"}, labelsOf(got))
}

func TestReorder_PriorityOrder(t *testing.T) {
	// {No, No sé} is a subset of both ternary scales; the earlier one wins.
	table := Tabulate([]string{"No sé", "No"})
	got := Reorder(table, DefaultScales())
	assert.Equal(t, []string{"No", "No sé", "Total"}, labelsOf(got))
}

func TestReorder_AlphabeticalFallback(t *testing.T) {
	table := Tabulate([]string{"Radio", "Charlas", "Afiches", "Sí, claro"})
	got := Reorder(table, DefaultScales())
	assert.Equal(t, []string{"Afiches", "Charlas", "Radio", "Sí, claro", "Total"}, labelsOf(got))
}

func TestReorder_FallbackSpanishCollation(t *testing.T) {
	// Byte order would put "Sí" (0xC3AD) after "Sin respuesta"; Spanish
	// collation keeps "Sí" first. "Simulacros" forces the fallback path.
	table := Tabulate([]string{"Sin respuesta", "Sí", "Simulacros"})
	got := Reorder(table, DefaultScales())
	assert.Equal(t, []string{"Sí", "Simulacros", "Sin respuesta", "Total"}, labelsOf(got))
}

func TestReorder_TotalAlwaysLast(t *testing.T) {
	tables := [][]string{
		{"Nunca", "Siempre"},
		{"zzz", "aaa"},
		{"No", "Sí", "No sé", ""},
	}
	for _, values := range tables {
		got := Reorder(Tabulate(values), DefaultScales())
		assert.Equal(t, TotalLabel, got.Rows[len(got.Rows)-1].Label)
	}
}

func TestReorder_PreservesCounts(t *testing.T) {
	table := Tabulate([]string{"Siempre", "Nunca", "Siempre"})
	got := Reorder(table, DefaultScales())

	byLabel := make(map[string]FreqRow)
	for _, row := range got.Rows {
		byLabel[row.Label] = row
	}
	assert.Equal(t, 2, byLabel["Siempre"].Count)
	assert.Equal(t, 1, byLabel["Nunca"].Count)
	assert.Equal(t, 3, byLabel[TotalLabel].Count)
}
