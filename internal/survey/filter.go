package survey

import (
	"github.com/rotisserie/eris"

	"github.com/minedu-grd/encuesta-cli/internal/dataset"
)

// Errors signalling valid terminal states of a render pass. Callers show a
// message and stop the current computation; they are not process failures.
var (
	// ErrEmptyFilterResult means the filter combination matched zero rows.
	ErrEmptyFilterResult = eris.New("no rows match the selected filters")

	// ErrNoQuestions means the question selection is empty.
	ErrNoQuestions = eris.New("no questions selected")
)

// Filter is a conjunction of up to two equality constraints over the filter
// dimensions. An empty value or the MatchAll sentinel disables a constraint.
type Filter struct {
	Region string `json:"region"`
	Tier   string `json:"tier"`
}

func (f Filter) wantRegion() bool { return f.Region != "" && f.Region != MatchAll }
func (f Filter) wantTier() bool   { return f.Tier != "" && f.Tier != MatchAll }

// Apply restricts the dataset to rows satisfying every set constraint.
// Zero matching rows is reported as ErrEmptyFilterResult, a valid terminal
// state the caller must surface as a "no data" message.
func (f Filter) Apply(ds *dataset.Dataset, regionCol, tierCol string) (*dataset.Dataset, error) {
	if !f.wantRegion() && !f.wantTier() {
		return ds, nil
	}

	out := &dataset.Dataset{Columns: ds.Columns}
	for _, row := range ds.Rows {
		if f.wantRegion() && row[regionCol] != f.Region {
			continue
		}
		if f.wantTier() && row[tierCol] != f.Tier {
			continue
		}
		out.Rows = append(out.Rows, row)
	}

	if len(out.Rows) == 0 {
		return nil, eris.Wrapf(ErrEmptyFilterResult, "survey: region=%q tier=%q", f.Region, f.Tier)
	}
	return out, nil
}
