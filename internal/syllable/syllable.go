// Package syllable marks syllable boundaries in Hungarian words. It runs a
// pattern-based hyphenator and then patches two boundaries the Hungarian
// patterns are known to miss: after a lone leading vowel and between two
// word-final vowels. Compound words are not handled.
package syllable

import (
	"regexp"
	"strings"

	"codeberg.org/snonux/meixner/internal/curriculum"
)

// Hyphen is the syllable separator written into words.
const Hyphen = "-"

// Hyphenator inserts hyphens at the break points it knows about.
type Hyphenator interface {
	Inserted(word, hyphen string) string
}

var (
	vowelClass = strings.Join(curriculum.Vowels(), "")

	// vowel, optional consonant or two-letter graph, vowel
	leadingVowel = regexp.MustCompile(
		`^([` + vowelClass + `])(([^` + vowelClass + Hyphen + `]|cs|gy|ny|sz|ty|zs)?[` + vowelClass + `])`)

	trailingVowels = regexp.MustCompile(`([` + vowelClass + `])([` + vowelClass + `])$`)
)

// FixLeadingVowel splits a lone leading vowel from the next syllable:
// "alak" becomes "a-lak", "asztal" stays, "eszik" becomes "e-szik".
func FixLeadingVowel(s string) string {
	return leadingVowel.ReplaceAllString(s, "${1}"+Hyphen+"${2}")
}

// FixTrailingVowels splits two word-final vowels: "boa" becomes "bo-a".
func FixTrailingVowels(s string) string {
	return trailingVowels.ReplaceAllString(s, "${1}"+Hyphen+"${2}")
}

// Corrector hyphenates words and applies both fixes.
type Corrector struct {
	engine Hyphenator
}

// NewCorrector wraps engine.
func NewCorrector(engine Hyphenator) *Corrector {
	return &Corrector{engine: engine}
}

// Hyphenate returns word with its syllable boundaries marked.
func (c *Corrector) Hyphenate(word string) string {
	return FixTrailingVowels(FixLeadingVowel(c.engine.Inserted(word, Hyphen)))
}
