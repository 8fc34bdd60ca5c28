// Package slugx derives URL-safe slugs from human-readable names.
package slugx

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Slugify converts text to a lowercase, hyphen-separated, ASCII slug.
// Accented characters are folded to their base form ("Álex" -> "alex"),
// punctuation is dropped, and runs of whitespace, underscores, and hyphens
// collapse to a single hyphen. The result carries no leading or trailing
// hyphen. Uniqueness is the caller's concern.
func Slugify(text string) string {
	// NFKD splits accented characters into base + combining marks so the
	// marks can be stripped below.
	decomposed := norm.NFKD.String(text)

	var b strings.Builder
	b.Grow(len(decomposed))

	lastHyphen := true // suppress leading hyphen
	for _, r := range decomposed {
		switch {
		case unicode.Is(unicode.Mn, r):
			// combining mark from NFKD decomposition
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if r > unicode.MaxASCII {
				continue
			}
			b.WriteRune(unicode.ToLower(r))
			lastHyphen = false
		case unicode.IsSpace(r) || r == '-' || r == '_':
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.TrimRight(b.String(), "-")
}
