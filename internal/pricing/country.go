package pricing

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeCountry maps an ISO 3166-1 alpha-2 code, a canonical country
// name or a known alias to the ISO code used as the table key. Matching
// ignores case, surrounding whitespace and diacritics.
func (rt *RateTable) NormalizeCountry(input string) (string, error) {
	if code, ok := rt.names[foldName(input)]; ok {
		return code, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCountry, input)
}

func foldName(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	folded = strings.NewReplacer("’", "'", "`", "'").Replace(folded)
	return strings.ToLower(strings.Join(strings.Fields(folded), " "))
}
