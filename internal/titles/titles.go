// Package titles canonicalizes raw show titles for comparison. Normalization
// lowers the string, strips punctuation, and folds known franchise variants
// into one canonical token.
package titles

import (
	"regexp"
	"strings"
)

var (
	nonWordPattern    = regexp.MustCompile(`[^\w\s]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

type alias struct {
	base     string
	variants []string
}

// Normalizer canonicalizes show titles using a static franchise alias table.
// The zero value is not usable; construct one with NewNormalizer.
type Normalizer struct {
	aliases []alias
}

// NewNormalizer returns a Normalizer seeded with the built-in alias table.
// The table is ordered so lookups stay deterministic when a title could
// match more than one franchise.
func NewNormalizer() *Normalizer {
	return &Normalizer{
		aliases: []alias{
			{base: "smackdown", variants: []string{"wwe smackdown", "smackdown live", "friday night smackdown"}},
			{base: "raw", variants: []string{"wwe raw", "monday night raw"}},
			{base: "nxt", variants: []string{"wwe nxt", "nxt wrestling"}},
		},
	}
}

// Normalize lower-cases the title, strips punctuation, collapses whitespace,
// and replaces the whole string with a canonical franchise token when the
// result contains a known variant.
func (n *Normalizer) Normalize(raw string) string {
	normalized := strings.ToLower(raw)
	normalized = nonWordPattern.ReplaceAllString(normalized, "")
	normalized = strings.TrimSpace(whitespacePattern.ReplaceAllString(normalized, " "))

	for _, a := range n.aliases {
		if strings.Contains(normalized, a.base) {
			return a.base
		}
		for _, variant := range a.variants {
			if strings.Contains(normalized, variant) {
				return a.base
			}
		}
	}
	return normalized
}
