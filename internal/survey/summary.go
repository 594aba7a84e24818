package survey

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/minedu-grd/encuesta-cli/internal/dataset"
)

// KPI holds the headline counts for the current filter selection.
type KPI struct {
	Responses int `json:"responses"`
	Regions   int `json:"regions"`
	Tiers     int `json:"tiers"`
}

// Headline computes response, distinct-region, and distinct-tier counts over
// a (typically filtered) dataset.
func Headline(ds *dataset.Dataset, regionCol, tierCol string) KPI {
	regions := make(map[string]struct{})
	tiers := make(map[string]struct{})
	for _, row := range ds.Rows {
		if v := row[regionCol]; v != "" {
			regions[v] = struct{}{}
		}
		if v := row[tierCol]; v != "" {
			tiers[v] = struct{}{}
		}
	}
	return KPI{Responses: len(ds.Rows), Regions: len(regions), Tiers: len(tiers)}
}

// RegionSummary tabulates responses per region, sorted alphabetically by
// region name with the Total row last. Same triple shape as a question
// table, so it exports and charts the same way.
func RegionSummary(ds *dataset.Dataset, regionCol string) (FreqTable, error) {
	values, err := ds.Column(regionCol)
	if err != nil {
		return FreqTable{}, err
	}

	t := Tabulate(values)
	answers := append([]FreqRow{}, t.Answers()...)
	c := collate.New(language.Spanish)
	sort.SliceStable(answers, func(i, j int) bool {
		return c.CompareString(answers[i].Label, answers[j].Label) < 0
	})
	return FreqTable{Rows: append(answers, t.Total())}, nil
}
