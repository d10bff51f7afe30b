package search

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/bastiangx/wordpick/pkg/dictionary"
	"github.com/bastiangx/wordpick/pkg/match"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

// countingLoader records how often the dictionary was fetched.
type countingLoader struct {
	inner *dictionary.Loader
	loads int
}

func (l *countingLoader) Load(ctx context.Context, locale dictionary.Locale) (*dictionary.Dictionary, error) {
	l.loads++
	return l.inner.Load(ctx, locale)
}

func newTestSearcher(t *testing.T, opts Options) (*Searcher, *countingLoader) {
	t.Helper()
	fsys := fstest.MapFS{
		"words_en.txt": {Data: []byte("cat\nhat\ncats\nat\nct\ncot\nact\n")},
		"words_ja.txt": {Data: []byte("ねこ\nねぎ\nこね\n")},
	}
	loader := &countingLoader{inner: dictionary.NewLoader(dictionary.NewFSSource(fsys), 0)}
	return NewSearcher(loader, opts), loader
}

func TestSearchEmptyInput(t *testing.T) {
	s, loader := newTestSearcher(t, DefaultOptions())

	for _, req := range []Request{
		{Locale: dictionary.English},
		{Locale: dictionary.English, Pattern: "   "},
		{Locale: dictionary.Japanese, Mode: ModeSelect, Selection: []string{}},
	} {
		_, err := s.Search(context.Background(), req)
		assert.ErrorIs(t, err, ErrEmptyInput)
	}

	stats := s.Stats()
	assert.Equal(t, 0, loader.loads)
	assert.Equal(t, 3, stats["emptyInputs"])
	assert.Zero(t, stats[string(KindWildcard)]+stats[string(KindPositions)]+stats[string(KindSelection)])
}

func TestSearchWildcard(t *testing.T) {
	s, _ := newTestSearcher(t, DefaultOptions())

	res, err := s.Search(context.Background(), Request{Locale: dictionary.English, Pattern: "?at"})
	require.NoError(t, err)
	assert.Equal(t, KindWildcard, res.Kind)
	assert.Equal(t, []string{"cat", "hat"}, res.Words)
	assert.Empty(t, res.Pairs)
	assert.Equal(t, 2, res.Count())

	// a wildcard wins over the selection in select mode
	res, err = s.Search(context.Background(), Request{
		Locale:    dictionary.English,
		Pattern:   "c?t",
		Mode:      ModeSelect,
		Selection: []string{"a"},
	})
	require.NoError(t, err)
	assert.Equal(t, KindWildcard, res.Kind)
	assert.Equal(t, []string{"cat", "cot"}, res.Words)
}

func TestSearchWildcardCaseFolding(t *testing.T) {
	folding, _ := newTestSearcher(t, Options{FoldPattern: true, ExcludeSelf: true})
	res, err := folding.Search(context.Background(), Request{Locale: dictionary.English, Pattern: "?AT"})
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "hat"}, res.Words)

	literal, _ := newTestSearcher(t, Options{FoldPattern: false, ExcludeSelf: true})
	res, err = literal.Search(context.Background(), Request{Locale: dictionary.English, Pattern: "?AT"})
	require.NoError(t, err)
	assert.True(t, res.Empty())
}

func TestSearchPositions(t *testing.T) {
	s, _ := newTestSearcher(t, DefaultOptions())

	res, err := s.Search(context.Background(), Request{Locale: dictionary.English, Pattern: "1,3"})
	require.NoError(t, err)
	assert.Equal(t, KindPositions, res.Kind)
	assert.Contains(t, res.Pairs, match.Pair{Word: "cat", Derived: "ct"})
	assert.Empty(t, res.Words)
}

func TestSearchInvalidPositions(t *testing.T) {
	s, loader := newTestSearcher(t, DefaultOptions())

	_, err := s.Search(context.Background(), Request{Locale: dictionary.English, Pattern: "cat"})
	assert.ErrorIs(t, err, match.ErrInvalidPosition)
	assert.Equal(t, 0, loader.loads)
}

func TestSearchSelection(t *testing.T) {
	s, _ := newTestSearcher(t, DefaultOptions())

	res, err := s.Search(context.Background(), Request{
		Locale:    dictionary.English,
		Pattern:   "tac",
		Mode:      ModeSelect,
		Selection: []string{"A", "c", "t"},
	})
	require.NoError(t, err)
	assert.Equal(t, KindSelection, res.Kind)
	assert.Equal(t, []string{"act"}, res.Words)

	res, err = s.Search(context.Background(), Request{
		Locale:    dictionary.Japanese,
		Pattern:   "ねこ",
		Mode:      ModeSelect,
		Selection: []string{"こ", "ね"},
	})
	require.NoError(t, err)
	assert.Equal(t, dictionary.Japanese, res.Locale)
	assert.Equal(t, []string{"こね"}, res.Words)
}

func TestSearchSelectModeWithoutSelection(t *testing.T) {
	s, _ := newTestSearcher(t, DefaultOptions())

	res, err := s.Search(context.Background(), Request{Locale: dictionary.English, Pattern: "cat", Mode: ModeSelect})
	require.NoError(t, err)
	assert.Equal(t, KindNone, res.Kind)
	assert.True(t, res.Empty())
}

func TestSearchFetchFailure(t *testing.T) {
	loader := dictionary.NewLoader(dictionary.NewFSSource(fstest.MapFS{}), 0)
	s := NewSearcher(loader, DefaultOptions())

	_, err := s.Search(context.Background(), Request{Locale: dictionary.English, Pattern: "?at"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, dictionary.ErrFetch))
	assert.Equal(t, 1, s.Stats()["fetchErrors"])
}

func TestSearchLoadsFreshEveryTime(t *testing.T) {
	s, loader := newTestSearcher(t, DefaultOptions())

	for i := 0; i < 3; i++ {
		_, err := s.Search(context.Background(), Request{Locale: dictionary.English, Pattern: "??"})
		require.NoError(t, err)
	}
	assert.Equal(t, 3, loader.loads)
	assert.Equal(t, 3, s.Stats()["searches"])
}

func TestParseMode(t *testing.T) {
	assert.Equal(t, ModeSelect, ParseMode("select"))
	assert.Equal(t, ModeSelect, ParseMode(" SELECT "))
	assert.Equal(t, ModePositions, ParseMode("positions"))
	assert.Equal(t, ModePositions, ParseMode(""))
}
