package survey

import "strings"

// FreqRow is one (answer, count, percentage) triple of a frequency table.
type FreqRow struct {
	Label   string `json:"label"`
	Count   int    `json:"count"`
	Percent int    `json:"percent"`
}

// FreqTable is an ordered frequency table for one question, ending with a
// synthetic Total row whose count is the sum of all others and whose
// percentage is pinned at 100.
type FreqTable struct {
	Rows []FreqRow `json:"rows"`
}

// Total returns the trailing Total row.
func (t FreqTable) Total() FreqRow {
	if len(t.Rows) == 0 {
		return FreqRow{Label: TotalLabel, Percent: 100}
	}
	return t.Rows[len(t.Rows)-1]
}

// Answers returns the rows without the trailing Total row.
func (t FreqTable) Answers() []FreqRow {
	if len(t.Rows) == 0 {
		return nil
	}
	return t.Rows[:len(t.Rows)-1]
}

// Tabulate groups a column of answers by distinct value, in discovery order,
// and computes counts plus whole-number percentages. Missing values are
// counted under NoResponse even when the caller skipped Canonicalize.
//
// Percentages use round-half-up; their sum may drift from 100 because each
// row rounds independently. The Total row is pinned at 100 regardless.
func Tabulate(values []string) FreqTable {
	var order []string
	counts := make(map[string]int)
	for _, v := range values {
		label := strings.TrimSpace(v)
		if label == "" {
			label = NoResponse
		}
		if _, seen := counts[label]; !seen {
			order = append(order, label)
		}
		counts[label]++
	}

	total := len(values)
	rows := make([]FreqRow, 0, len(order)+1)
	for _, label := range order {
		rows = append(rows, FreqRow{
			Label:   label,
			Count:   counts[label],
			Percent: percentOf(counts[label], total),
		})
	}
	rows = append(rows, FreqRow{Label: TotalLabel, Count: total, Percent: 100})

	return FreqTable{Rows: rows}
}

// percentOf computes round-half-up(count*100/total) in integer arithmetic.
func percentOf(count, total int) int {
	if total == 0 {
		return 0
	}
	return (count*100*2 + total) / (total * 2)
}
