// Package survey implements the descriptive-analytics core: tier
// normalization, answer canonicalization, frequency tabulation, response
// ordering, and filtering over a loaded dataset. Everything here is a pure
// transformation; no I/O, no shared mutable state.
package survey

// Labels fixed by the survey's Spanish questionnaire.
const (
	// NoResponse replaces a missing answer cell.
	NoResponse = "Sin respuesta"

	// TotalLabel is the synthetic grand-total row label.
	TotalLabel = "Total"

	// MatchAll is the filter sentinel that disables a constraint.
	MatchAll = "Todas"
)

// Normalized tier taxonomy. Every row gets exactly one of these.
const (
	TierUGEL        = "UGEL"
	TierDREGRE      = "DRE/GRE"
	TierODENAGED    = "ODENAGED"
	TierMINEDU      = "MINEDU"
	TierOther       = "OTRAS"
	TierUnspecified = "Sin especificar"
)

// DefaultCanonical is the fix-list of known answer spelling variants. It is
// deliberately narrow: only exact post-trim matches are rewritten, anything
// else passes through untouched.
func DefaultCanonical() []Replacement {
	return []Replacement{
		{From: "Si", To: "Sí"},
		{From: "si", To: "Sí"},
		{From: "SI", To: "Sí"},
		{From: "sí", To: "Sí"},
		{From: "NO", To: "No"},
		{From: "no", To: "No"},
		{From: "No se", To: "No sé"},
		{From: "no sé", To: "No sé"},
		{From: "No sabe", To: "No sé"},
	}
}

// DefaultScales returns the known ordered response scales in priority order.
// Each scale implicitly also admits NoResponse and TotalLabel as trailing
// members; Reorder accounts for that.
func DefaultScales() []Scale {
	return []Scale{
		{"Nunca", "Rara vez", "A veces", "Frecuentemente", "Siempre"},
		{"Muy en desacuerdo", "En desacuerdo", "Neutral", "De acuerdo", "Muy de acuerdo"},
		{"No", "No sé", "Sí"},
		{"Si", "No", "No sé"},
	}
}

// DefaultExcluded lists the metadata columns that are never treated as
// questions: identifiers, timestamps, the filter dimensions, and the
// free-text "specify other" fields.
func DefaultExcluded(regionCol, tierCol, normalizedCol string) []string {
	return []string{
		"ID",
		"Hora de inicio",
		"Hora de finalización",
		regionCol,
		tierCol,
		normalizedCol,
		"Seleccione su cargo: ",
		"Seleccione sus años de experiencia: ",
		"Especificar otro cargo",
		"Especificar si seleccionó otros",
	}
}
