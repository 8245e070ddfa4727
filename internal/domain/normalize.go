package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeText prepares generated text for storage:
//   - trims leading/trailing whitespace
//   - strips one pair of wrapping quotes the model sometimes adds
//   - compresses runs of whitespace into a single space
//
// Case and diacritics are preserved.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if len(text) >= 2 {
		for _, q := range []string{`"`, "„", "“", "'"} {
			if strings.HasPrefix(text, q) && strings.HasSuffix(text, closingQuote(q)) && len(text) > len(q)+len(closingQuote(q)) {
				text = strings.TrimSpace(text[len(q) : len(text)-len(closingQuote(q))])
				break
			}
		}
	}
	return strings.Join(strings.Fields(text), " ")
}

func closingQuote(open string) string {
	switch open {
	case "„":
		return "”"
	case "“":
		return "”"
	}
	return open
}

// FoldDiacritics removes combining marks, so "Ștefan Bălan" becomes "Stefan Balan".
func FoldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Slugify turns a display name into an ASCII local part: diacritics folded,
// lowercased, words joined by dots, anything else dropped.
func Slugify(name string) string {
	folded := strings.ToLower(FoldDiacritics(name))

	words := strings.FieldsFunc(folded, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
	return strings.Join(words, ".")
}
