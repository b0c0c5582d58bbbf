package matcher

import (
	"sort"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var diacriticFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// FoldName lowers, strips diacritics and token-sorts a person name so that
// "Müller, Hans" and "hans mueller " compare as close strings. Token sorting
// absorbs the first/last order banks disagree on.
func FoldName(name string) string {
	folded, _, err := transform.String(diacriticFold, name)
	if err != nil {
		folded = name
	}

	folded = strings.ToLower(folded)
	folded = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return ' '
	}, folded)

	tokens := strings.Fields(folded)
	sort.Strings(tokens)

	return strings.Join(tokens, " ")
}

// Similarity is a normalized levenshtein ratio over folded names, 1.0 for
// identical, 0.0 for nothing in common.
func Similarity(a, b string) float64 {
	a = FoldName(a)
	b = FoldName(b)

	if a == "" || b == "" {
		return 0
	}

	if a == b {
		return 1
	}

	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}

	distance := levenshtein.ComputeDistance(a, b)

	return 1 - float64(distance)/float64(longest)
}
