/*
Package match implements the word puzzle matchers.

All matchers are pure functions over explicit inputs: a word list (or a
Lexicon when membership checks are needed) and the user's pattern, positions
or selection. Results always keep dictionary order, duplicates included.

# Wildcard

A wildcard pattern uses '?' for exactly one arbitrary character; every other
character must match literally and the whole word must match:

	MatchWildcard([]string{"cat", "hat", "cats", "at"}, "?at", false) // [cat hat]

# Letter picking

Positions are 1-based rune indexes. The picked letters of each word form a
derived string, reported when it is a different word of the same dictionary:

	Pick(dict, []int{1, 3}, PickOptions{ExcludeSelf: true}) // cat -> ct

Positions outside a word are skipped silently.

# Selection

Selected compares the concatenated, lowercased selection against every word.
*/
package match

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Wildcard is the character matching any single character in a pattern.
const Wildcard = '?'

// anyChar matches one rune except line terminators.
const anyChar = `[^\n\r\x{2028}\x{2029}]`

// IsWildcard reports whether pattern contains a wildcard character.
func IsWildcard(pattern string) bool {
	return strings.ContainsRune(pattern, Wildcard)
}

// CompileWildcard translates pattern into an anchored regular expression.
// With foldCase the pattern is lowercased first, so it lines up with the
// lowercased dictionary.
func CompileWildcard(pattern string, foldCase bool) (*regexp.Regexp, error) {
	if foldCase {
		pattern = cases.Lower(language.Und).String(pattern)
	}

	var b strings.Builder
	b.Grow(len(pattern) + 8)
	b.WriteByte('^')
	for _, r := range pattern {
		if r == Wildcard {
			b.WriteString(anyChar)
			continue
		}
		b.WriteString(regexp.QuoteMeta(string(r)))
	}
	b.WriteByte('$')

	return regexp.Compile(b.String())
}

// MatchWildcard returns the words fully matching pattern, in input order.
func MatchWildcard(words []string, pattern string, foldCase bool) ([]string, error) {
	re, err := CompileWildcard(pattern, foldCase)
	if err != nil {
		return nil, err
	}

	var matches []string
	for _, w := range words {
		if re.MatchString(w) {
			matches = append(matches, w)
		}
	}
	return matches, nil
}
