/*
Package dictionary loads and holds the word lists searched by wordpick.

A word list is a plain UTF-8 text resource with one word per line, named after
its locale (words_en.txt, words_ja.txt). Every line is trimmed and lowercased,
and blank lines are dropped. The resulting Dictionary keeps source order and
duplicates, and indexes its words in a Patricia trie for membership checks.

	loader := dictionary.NewLoader(dictionary.NewDirSource("data/"), 0)
	dict, err := loader.Load(ctx, dictionary.English)
	if dict.Contains("cat") { ... }
*/
package dictionary

import (
	"slices"
	"strings"

	"github.com/tchap/go-patricia/v2/patricia"
)

// Locale selects one of the two supported word lists.
type Locale string

const (
	English  Locale = "en"
	Japanese Locale = "ja"
)

// ParseLocale maps user input to a Locale. Anything but "en" is Japanese.
func ParseLocale(s string) Locale {
	if strings.EqualFold(strings.TrimSpace(s), string(English)) {
		return English
	}
	return Japanese
}

// FileName returns the resource name of the locale's word list.
func (l Locale) FileName() string {
	if l == English {
		return "words_en.txt"
	}
	return "words_ja.txt"
}

// Dictionary is an immutable, ordered list of normalized words.
type Dictionary struct {
	locale Locale
	words  []string
	index  *patricia.Trie
}

// New builds a Dictionary from already normalized words.
func New(locale Locale, words []string) *Dictionary {
	index := patricia.NewTrie()
	for i, w := range words {
		if w == "" {
			continue
		}
		// first occurrence wins, Insert is a no-op for duplicates
		index.Insert(patricia.Prefix(w), i)
	}
	return &Dictionary{
		locale: locale,
		words:  slices.Clone(words),
		index:  index,
	}
}

// Locale returns the locale the dictionary was loaded for.
func (d *Dictionary) Locale() Locale {
	return d.locale
}

// Words returns a copy of the words in source order.
func (d *Dictionary) Words() []string {
	return slices.Clone(d.words)
}

// Len returns the number of entries, duplicates included.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// Contains reports whether word is an entry of the dictionary.
func (d *Dictionary) Contains(word string) bool {
	if word == "" {
		return false
	}
	return d.index.Match(patricia.Prefix(word))
}
