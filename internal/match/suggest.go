package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent folds case and drops separators: "Example_Model" and
// "exampleModel" both become "examplemodel".
func NormalizeIdent(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		if r == '_' || r == '-' || unicode.IsSpace(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// Suggest returns the candidate closest to name. Candidates further than a
// third of the normalized name length (at least one edit) are not
// suggested. Ties keep the earlier candidate.
func Suggest(name string, candidates []string) (string, bool) {
	norm := NormalizeIdent(name)
	limit := max(1, len([]rune(norm))/3)

	best, bestDist := "", limit+1
	for _, c := range candidates {
		if c == name {
			continue
		}

		if d := Levenshtein(norm, NormalizeIdent(c)); d < bestDist {
			best, bestDist = c, d
		}
	}

	return best, best != ""
}
