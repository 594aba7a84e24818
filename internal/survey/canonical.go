package survey

import "strings"

// Replacement rewrites one known answer spelling to its canonical form.
type Replacement struct {
	From string `json:"from" yaml:"from" mapstructure:"from"`
	To   string `json:"to" yaml:"to" mapstructure:"to"`
}

// Canonicalize returns a copy of an answer column where missing values become
// NoResponse and known spelling variants are rewritten per the fix-list.
// Matching is exact after trimming; there is no fuzzy matching on purpose.
// Idempotent: canonical spellings are never in the From side of the list.
func Canonicalize(values []string, dict []Replacement) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = canonicalizeOne(v, dict)
	}
	return out
}

func canonicalizeOne(v string, dict []Replacement) string {
	s := strings.TrimSpace(v)
	if s == "" {
		return NoResponse
	}
	for _, r := range dict {
		if s == r.From {
			return r.To
		}
	}
	return s
}
