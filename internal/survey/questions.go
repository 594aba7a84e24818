package survey

import (
	"github.com/rotisserie/eris"

	"github.com/minedu-grd/encuesta-cli/internal/dataset"
)

// Questions returns the dataset columns that are survey questions: every
// column not in the exclusion set, in source header order. No per-question
// metadata exists beyond the label text.
func Questions(ds *dataset.Dataset, excluded []string) []string {
	skip := make(map[string]struct{}, len(excluded))
	for _, col := range excluded {
		skip[col] = struct{}{}
	}

	var questions []string
	for _, col := range ds.Columns {
		if _, ok := skip[col]; ok {
			continue
		}
		questions = append(questions, col)
	}
	return questions
}

// SelectQuestions validates a user selection against the detected question
// set. An empty selection after validation is ErrNoQuestions; a nil or empty
// input means "all questions". Unknown names fail fast so a typo is reported
// instead of silently dropping a question.
func SelectQuestions(available, selected []string) ([]string, error) {
	if len(available) == 0 {
		return nil, eris.Wrap(ErrNoQuestions, "survey: dataset has no question columns")
	}
	if len(selected) == 0 {
		return available, nil
	}

	known := make(map[string]struct{}, len(available))
	for _, q := range available {
		known[q] = struct{}{}
	}

	var out []string
	for _, q := range selected {
		if _, ok := known[q]; !ok {
			return nil, eris.Errorf("survey: unknown question %q", q)
		}
		out = append(out, q)
	}
	return out, nil
}
