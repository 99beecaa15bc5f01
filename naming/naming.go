// Package naming maps upstream icon identifiers to component identifiers.
package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Suffix is appended to every resolved component name.
const Suffix = "Icon"

// Resolve converts a raw icon identifier such as "arrow-left" or "bar-chart-2"
// into a PascalCase component identifier ("ArrowLeftIcon", "BarChart2Icon").
//
// Any rune that is not a letter or digit separates words, and a letter that
// follows a digit starts a new word. The first rune of every word is upper
// cased and the remainder is kept as is. A result that would start with a
// digit is prefixed with Suffix so it stays a valid identifier.
func Resolve(raw string) string {
	var b strings.Builder
	for _, segment := range Segments(raw) {
		b.WriteString(capitalize(segment))
	}

	name := b.String()
	if name != "" && unicode.IsDigit([]rune(name)[0]) {
		name = Suffix + name
	}
	return name + Suffix
}

// Segments splits raw into the words Resolve capitalizes.
func Segments(raw string) []string {
	var (
		segments []string
		current  []rune
		prev     rune
	)

	flush := func() {
		if len(current) > 0 {
			segments = append(segments, string(current))
			current = current[:0]
		}
	}

	for _, r := range raw {
		switch {
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			flush()
		case unicode.IsLetter(r) && unicode.IsDigit(prev) && len(current) > 0:
			flush()
			current = append(current, r)
		default:
			current = append(current, r)
		}
		prev = r
	}
	flush()

	return segments
}

// capitalize upper cases the first letter of word and keeps the rest.
// A Caser holds transform state, so each call gets its own.
func capitalize(word string) string {
	return cases.Title(language.Und, cases.NoLower).String(word)
}
