package survey

import (
	"strings"

	"github.com/rotisserie/eris"

	"github.com/minedu-grd/encuesta-cli/internal/dataset"
)

// tierRules maps substring tokens to tier labels in priority order. Order is
// load-bearing: a cell mentioning both "DRE" and "UGEL" is classified UGEL
// because that rule is evaluated first.
var tierRules = []struct {
	tokens []string
	label  string
}{
	{tokens: []string{"UGEL"}, label: TierUGEL},
	{tokens: []string{"DRE", "GRE"}, label: TierDREGRE},
	{tokens: []string{"ODENAGED"}, label: TierODENAGED},
	{tokens: []string{"MINEDU"}, label: TierMINEDU},
}

// nullishTier are literal cell values treated as unspecified, compared
// case-insensitively after trimming.
var nullishTier = []string{"-", "nan", "none"}

// NormalizeTier maps one raw free-text tier cell onto the fixed taxonomy.
// Deterministic and total: every input yields exactly one of the six labels.
func NormalizeTier(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return TierUnspecified
	}
	for _, null := range nullishTier {
		if strings.EqualFold(s, null) {
			return TierUnspecified
		}
	}

	upper := strings.ToUpper(s)
	for _, rule := range tierRules {
		for _, token := range rule.tokens {
			if strings.Contains(upper, token) {
				return rule.label
			}
		}
	}
	return TierOther
}

// NormalizeTiers derives the normalized-tier column for a whole dataset,
// returning a copy with the derived column appended under normalizedCol.
func NormalizeTiers(ds *dataset.Dataset, tierCol, normalizedCol string) (*dataset.Dataset, error) {
	raw, err := ds.Column(tierCol)
	if err != nil {
		return nil, eris.Wrap(err, "survey: normalize tiers")
	}
	normalized := make([]string, len(raw))
	for i, v := range raw {
		normalized[i] = NormalizeTier(v)
	}
	return ds.WithColumn(normalizedCol, normalized)
}
