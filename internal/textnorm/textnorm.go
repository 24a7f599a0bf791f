// Package textnorm folds chat text into the canonical form used to compare
// guesses, secret words and leader messages.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// variants maps accepted letter variants (after case folding) to their base letter
var variants = map[rune]rune{
	'ё': 'е',
}

func foldVariant(r rune) rune {
	if base, ok := variants[r]; ok {
		return base
	}
	return r
}

// newTransformer builds a fresh chain; casers keep state and are not safe to share.
func newTransformer() transform.Transformer {
	return transform.Chain(
		norm.NFC,
		cases.Fold(),
		runes.Map(foldVariant),
		runes.Remove(runes.NotIn(unicode.Letter)),
	)
}

// Normalize lowercases text, folds letter variants and strips everything
// that is not a letter. Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	out, _, err := transform.String(newTransformer(), s)
	if err != nil {
		return ""
	}
	return out
}

// Tokens splits text into words on any non-letter boundary and normalizes
// each one. Empty tokens are dropped.
func Tokens(s string) []string {
	fields := strings.FieldsFunc(norm.NFC.String(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.Is(unicode.Mn, r)
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if t := Normalize(f); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// Length returns the number of letters in an already normalized string
func Length(normalized string) int {
	return len([]rune(normalized))
}

// IsAlphabetic reports whether s is non-empty and every rune is a letter
// (combining marks attached to letters are allowed).
func IsAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range norm.NFC.String(s) {
		if !unicode.IsLetter(r) && !unicode.Is(unicode.Mn, r) {
			return false
		}
	}
	return true
}
