package survey

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Scale is a predefined ordered list of answer options. NoResponse and
// TotalLabel are implicit trailing members of every scale.
type Scale []string

// Reorder imposes a meaningful display order on a frequency table. The first
// scale (in the given priority order) whose option set is a superset of the
// table's labels wins and dictates the row order. When no scale covers the
// labels — free-text and open-ended questions — rows are sorted
// alphabetically using Spanish collation, with the Total row pinned last.
func Reorder(t FreqTable, scales []Scale) FreqTable {
	byLabel := make(map[string]FreqRow, len(t.Rows))
	for _, row := range t.Rows {
		byLabel[row.Label] = row
	}

	for _, scale := range scales {
		if !coversLabels(scale, t) {
			continue
		}
		full := append(append(Scale{}, scale...), NoResponse, TotalLabel)
		rows := make([]FreqRow, 0, len(t.Rows))
		for _, label := range full {
			if row, ok := byLabel[label]; ok {
				rows = append(rows, row)
			}
		}
		return FreqTable{Rows: rows}
	}

	// Alphabetical fallback. Byte order misplaces accented labels
	// ("Sí" would sort after "Sin respuesta"), hence the collator.
	answers := append([]FreqRow{}, t.Answers()...)
	c := collate.New(language.Spanish)
	sort.SliceStable(answers, func(i, j int) bool {
		return c.CompareString(answers[i].Label, answers[j].Label) < 0
	})
	return FreqTable{Rows: append(answers, t.Total())}
}

// coversLabels reports whether every label of the table belongs to the
// scale's option set (including the implicit NoResponse and Total slots).
// Subset, not equality: a table missing some options still matches.
func coversLabels(scale Scale, t FreqTable) bool {
	allowed := make(map[string]struct{}, len(scale)+2)
	for _, opt := range scale {
		allowed[opt] = struct{}{}
	}
	allowed[NoResponse] = struct{}{}
	allowed[TotalLabel] = struct{}{}

	for _, row := range t.Rows {
		if _, ok := allowed[row.Label]; !ok {
			return false
		}
	}
	return true
}
