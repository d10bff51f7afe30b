// Package search is the single decision point between the matchers: it loads
// a fresh dictionary per request and dispatches on the pattern.
package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bastiangx/wordpick/pkg/dictionary"
	"github.com/bastiangx/wordpick/pkg/match"
	"github.com/charmbracelet/log"
)

// ErrEmptyInput is returned when neither a pattern nor a selection is given.
var ErrEmptyInput = errors.New("nothing to search: no pattern and no selection")

// Mode selects how a pattern without wildcards is interpreted.
type Mode string

const (
	// ModePositions reads the pattern as comma separated 1-based positions.
	ModePositions Mode = "positions"
	// ModeSelect matches the explicit character selection.
	ModeSelect Mode = "select"
)

// ParseMode maps user input to a Mode, defaulting to ModePositions.
func ParseMode(s string) Mode {
	if strings.EqualFold(strings.TrimSpace(s), string(ModeSelect)) {
		return ModeSelect
	}
	return ModePositions
}

// Kind names the matcher that produced a Result.
type Kind string

const (
	KindNone      Kind = "none"
	KindWildcard  Kind = "wildcard"
	KindPositions Kind = "positions"
	KindSelection Kind = "selection"
)

// Request is one search submission.
type Request struct {
	Locale    dictionary.Locale
	Pattern   string
	Selection []string
	Mode      Mode
}

// Result holds the matches of one search. Words is filled by the wildcard
// and selection matchers, Pairs by letter picking.
type Result struct {
	Kind    Kind
	Locale  dictionary.Locale
	Words   []string
	Pairs   []match.Pair
	Elapsed time.Duration
}

// Count returns the number of hits regardless of kind.
func (r *Result) Count() int {
	return len(r.Words) + len(r.Pairs)
}

// Empty reports whether the search found nothing.
func (r *Result) Empty() bool {
	return r.Count() == 0
}

// Options tunes matcher behavior.
type Options struct {
	// FoldPattern lowercases wildcard patterns before matching.
	FoldPattern bool
	// ExcludeSelf drops letter picks equal to their source word.
	ExcludeSelf bool
}

// DefaultOptions folds pattern case and excludes self picks.
func DefaultOptions() Options {
	return Options{FoldPattern: true, ExcludeSelf: true}
}

// Loader loads the dictionary of a locale.
type Loader interface {
	Load(ctx context.Context, locale dictionary.Locale) (*dictionary.Dictionary, error)
}

// Searcher runs load-then-match searches.
type Searcher struct {
	loader Loader
	opts   Options

	mu    sync.Mutex
	stats map[string]int
}

// NewSearcher creates a Searcher on top of loader.
func NewSearcher(loader Loader, opts Options) *Searcher {
	return &Searcher{
		loader: loader,
		opts:   opts,
		stats:  make(map[string]int),
	}
}

// Search validates the request, loads the dictionary and runs the matcher
// picked by the pattern and mode.
func (s *Searcher) Search(ctx context.Context, req Request) (*Result, error) {
	pattern := strings.TrimSpace(req.Pattern)
	if pattern == "" && len(req.Selection) == 0 {
		s.count("emptyInputs")
		return nil, ErrEmptyInput
	}

	kind := dispatch(pattern, req)

	// parse before loading so malformed input never costs a fetch
	var positions []int
	if kind == KindPositions {
		var err error
		positions, err = match.ParsePositions(pattern)
		if err != nil {
			s.count("invalidInputs")
			return nil, err
		}
	}

	start := time.Now()
	dict, err := s.loader.Load(ctx, req.Locale)
	if err != nil {
		s.count("fetchErrors")
		return nil, fmt.Errorf("load %s dictionary: %w", req.Locale, err)
	}
	s.count("searches")

	result := &Result{Kind: kind, Locale: dict.Locale()}
	if kind != KindNone {
		s.count(string(kind))
	}

	switch kind {
	case KindWildcard:
		result.Words, err = match.MatchWildcard(dict.Words(), pattern, s.opts.FoldPattern)
		if err != nil {
			return nil, fmt.Errorf("compile pattern %q: %w", pattern, err)
		}
	case KindSelection:
		result.Words = match.Selected(dict.Words(), req.Selection)
	case KindPositions:
		result.Pairs = match.Pick(dict, positions, match.PickOptions{ExcludeSelf: s.opts.ExcludeSelf})
	}

	result.Elapsed = time.Since(start)
	log.Debugf("Search kind=%s locale=%s pattern=%q hits=%d took=%v",
		result.Kind, result.Locale, pattern, result.Count(), result.Elapsed)
	return result, nil
}

// dispatch picks the matcher for a non-empty request. A wildcard always wins;
// otherwise the mode decides, and a bare selection is matched in either mode.
func dispatch(pattern string, req Request) Kind {
	switch {
	case match.IsWildcard(pattern):
		return KindWildcard
	case len(req.Selection) > 0 && (req.Mode == ModeSelect || pattern == ""):
		return KindSelection
	case req.Mode == ModeSelect:
		return KindNone
	default:
		return KindPositions
	}
}

// Stats returns counters of searches per matcher and failures.
func (s *Searcher) Stats() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := make(map[string]int, len(s.stats))
	for k, v := range s.stats {
		stats[k] = v
	}
	return stats
}

func (s *Searcher) count(key string) {
	s.mu.Lock()
	s.stats[key]++
	s.mu.Unlock()
}
