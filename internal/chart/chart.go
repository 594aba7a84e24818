// Package chart turns ordered frequency tables into chart-ready bar series.
package chart

import (
	"fmt"
	"strings"

	"github.com/minedu-grd/encuesta-cli/internal/survey"
)

// Orientation is the layout hint for a bar series.
type Orientation string

const (
	Vertical   Orientation = "vertical"
	Horizontal Orientation = "horizontal"
)

// Point is one bar: the grouping label, a display-only wrapped variant, the
// count, and the percentage annotation shown next to the bar.
type Point struct {
	Label        string `json:"label"`
	WrappedLabel string `json:"wrapped_label"`
	Count        int    `json:"count"`
	Annotation   string `json:"annotation"`
}

// Series is a chart-ready bar series for one frequency table.
type Series struct {
	Title       string      `json:"title"`
	Orientation Orientation `json:"orientation"`
	Points      []Point     `json:"points"`
}

// Options controls layout decisions.
type Options struct {
	WrapWidth   int // soft-wrap width for display labels, in runes
	MaxLabels   int // above this many bars, switch to horizontal
	MaxLabelLen int // above this label length (runes), switch to horizontal
}

// DefaultOptions matches the dashboard's responsive layout thresholds.
func DefaultOptions() Options {
	return Options{WrapWidth: 24, MaxLabels: 5, MaxLabelLen: 18}
}

// Render builds a series from an ordered frequency table. The Total row is
// never drawn. Wrapping only affects WrappedLabel; Label stays byte-identical
// to the table row so joins against the table keep working.
func Render(t survey.FreqTable, title string, opts Options) Series {
	answers := t.Answers()

	longest := 0
	points := make([]Point, 0, len(answers))
	for _, row := range answers {
		if n := len([]rune(row.Label)); n > longest {
			longest = n
		}
		points = append(points, Point{
			Label:        row.Label,
			WrappedLabel: wrap(row.Label, opts.WrapWidth),
			Count:        row.Count,
			Annotation:   fmt.Sprintf("%d%%", row.Percent),
		})
	}

	orientation := Vertical
	if len(points) > opts.MaxLabels || longest > opts.MaxLabelLen {
		orientation = Horizontal
	}

	return Series{Title: title, Orientation: orientation, Points: points}
}

// wrap soft-wraps text at word boundaries to at most width runes per line.
// A single word longer than the width stays on its own overlong line.
func wrap(text string, width int) string {
	if width <= 0 {
		return text
	}

	var lines []string
	var line strings.Builder
	lineLen := 0
	for _, word := range strings.Fields(text) {
		wordLen := len([]rune(word))
		if lineLen > 0 && lineLen+1+wordLen > width {
			lines = append(lines, line.String())
			line.Reset()
			lineLen = 0
		}
		if lineLen > 0 {
			line.WriteByte(' ')
			lineLen++
		}
		line.WriteString(word)
		lineLen += wordLen
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	if len(lines) == 0 {
		return text
	}
	return strings.Join(lines, "\n")
}
