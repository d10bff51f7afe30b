package dictionary

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrFetch marks failures to retrieve or read a word list resource.
var ErrFetch = errors.New("dictionary fetch failed")

// maxLineSize caps a single word list line.
const maxLineSize = 1 << 20

// Loader fetches word lists from a Source and normalizes them.
// It never caches: every Load reads the resource again.
type Loader struct {
	source   Source
	maxWords int
}

// NewLoader creates a loader. maxWords limits the number of kept words,
// 0 keeps all of them.
func NewLoader(source Source, maxWords int) *Loader {
	return &Loader{
		source:   source,
		maxWords: maxWords,
	}
}

// Load retrieves and normalizes the word list for locale.
func (l *Loader) Load(ctx context.Context, locale Locale) (*Dictionary, error) {
	name := locale.FileName()
	start := time.Now()

	rc, err := l.source.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFetch, name, err)
	}
	defer rc.Close()

	words, err := ReadWords(rc, l.maxWords)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFetch, name, err)
	}

	log.Debugf("Loaded %d words from %s in %v", len(words), name, time.Since(start))
	return New(locale, words), nil
}

// ReadWords reads a newline delimited word list. Lines are split on \n, \r\n
// or a lone \r, trimmed, lowercased and dropped when empty.
func ReadWords(r io.Reader, maxWords int) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	scanner.Split(scanAnyLine)

	lower := cases.Lower(language.Und)
	var words []string
	for scanner.Scan() {
		word := lower.String(trim(scanner.Text()))
		if word == "" {
			continue
		}
		words = append(words, word)
		if maxWords > 0 && len(words) >= maxWords {
			log.Debugf("Word limit of %d reached, ignoring the rest", maxWords)
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// Normalize trims and lowercases s the same way word list lines are.
func Normalize(s string) string {
	return cases.Lower(language.Und).String(trim(s))
}

// trim strips surrounding whitespace and byte order marks.
func trim(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
}

// scanAnyLine is bufio.ScanLines extended to treat a lone \r as a line break.
func scanAnyLine(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		// \r: need one more byte to tell \r\n from a lone \r
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
