package scrub

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Apply replaces every non-overlapping match of re in input, left to right.
// It is pure and total: a pattern with zero matches returns input unchanged.
// Each match's replacement is computed independently of edits made for
// earlier matches.
func Apply(re *regexp.Regexp, input, placeholder string, maintainLength bool) string {
	return re.ReplaceAllStringFunc(input, func(match string) string {
		return Replacement(match, placeholder, maintainLength)
	})
}

// Replacement computes the substitute text for one matched span. With
// maintainLength false the placeholder is used verbatim. Otherwise the
// replacement is sized to the match's character count: a single-rune
// placeholder is repeated, a longer one is tiled and cut at the match
// boundary. Counts are runes, not bytes, so multi-byte text keeps its
// visible width. An empty placeholder deletes the match regardless of
// maintainLength; there is nothing to tile.
func Replacement(match, placeholder string, maintainLength bool) string {
	if !maintainLength || placeholder == "" {
		return placeholder
	}
	n := utf8.RuneCountInString(match)
	pr := []rune(placeholder)
	if len(pr) == 1 {
		return strings.Repeat(string(pr), n)
	}
	// Tiling never pads: a match shorter than the placeholder yields a
	// truncated prefix.
	q, r := n/len(pr), n%len(pr)
	return strings.Repeat(placeholder, q) + string(pr[:r])
}
