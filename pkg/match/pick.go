package match

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrInvalidPosition is returned for position entries that are not integers.
var ErrInvalidPosition = errors.New("invalid position")

// Lexicon is the read side of a dictionary the pickers need.
type Lexicon interface {
	// Words returns the entries in dictionary order.
	Words() []string
	// Contains reports whether word is an entry.
	Contains(word string) bool
}

// Pair is a letter picking hit: Derived was picked out of Word.
type Pair struct {
	Word    string
	Derived string
}

// PickOptions tunes Pick.
type PickOptions struct {
	// ExcludeSelf drops pairs where the derived string equals the word.
	ExcludeSelf bool
}

// ParsePositions parses a comma separated list of 1-based positions.
// Blank entries are skipped; entries that are not integers fail.
func ParsePositions(s string) ([]int, error) {
	var positions []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPosition, field)
		}
		positions = append(positions, n)
	}
	return positions, nil
}

// PickLetters concatenates the runes of word found at the 1-based positions.
// Positions below 1 or past the end of the word are skipped.
func PickLetters(word string, positions []int) string {
	runes := []rune(word)

	var b strings.Builder
	b.Grow(len(positions) * utf8.UTFMax)
	for _, p := range positions {
		if p < 1 || p > len(runes) {
			continue
		}
		b.WriteRune(runes[p-1])
	}
	return b.String()
}

// Pick derives a string from every word of lex and reports the ones that are
// themselves words of lex.
func Pick(lex Lexicon, positions []int, opts PickOptions) []Pair {
	if len(positions) == 0 {
		return nil
	}

	var pairs []Pair
	for _, w := range lex.Words() {
		derived := PickLetters(w, positions)
		if derived == "" {
			continue
		}
		if opts.ExcludeSelf && derived == w {
			continue
		}
		if lex.Contains(derived) {
			pairs = append(pairs, Pair{Word: w, Derived: derived})
		}
	}
	return pairs
}

// Selected returns the words equal to the lowercased concatenation of the
// selected characters.
func Selected(words []string, selection []string) []string {
	if len(selection) == 0 {
		return nil
	}
	picked := cases.Lower(language.Und).String(strings.Join(selection, ""))
	if picked == "" {
		return nil
	}

	var matches []string
	for _, w := range words {
		if w == picked {
			matches = append(matches, w)
		}
	}
	return matches
}
