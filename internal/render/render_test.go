package render

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/bastiangx/wordpick/pkg/dictionary"
	"github.com/bastiangx/wordpick/pkg/match"
	"github.com/bastiangx/wordpick/pkg/search"
	"github.com/bastiangx/wordpick/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessagesFor(t *testing.T) {
	assert.Equal(t, "No matching words were found.", MessagesFor(dictionary.English).NoMatches)
	assert.Equal(t, "一致する単語は見つかりませんでした。", MessagesFor(dictionary.Japanese).NoMatches)
	assert.Equal(t, "結果（日本語）", MessagesFor(dictionary.Locale("fr")).Heading)
}

func TestErrorMessage(t *testing.T) {
	msg := MessagesFor(dictionary.English)

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"empty input", search.ErrEmptyInput, "Please enter or select characters."},
		{"fetch", fmt.Errorf("load en dictionary: %w", dictionary.ErrFetch), "Could not load the dictionary."},
		{"positions", fmt.Errorf("%w: %q", match.ErrInvalidPosition, "x"), msg.InvalidPosition},
		{"button", session.ErrNoSuchButton, msg.NoSuchButton},
		{"other", errors.New("boom"), "boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, msg.ErrorMessage(tt.err))
		})
	}
}

func TestResultWords(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, false)

	err := r.Result(&search.Result{
		Kind:   search.KindWildcard,
		Locale: dictionary.English,
		Words:  []string{"cat", "hat"},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Results (English)")
	assert.Contains(t, out, "cat")
	assert.Contains(t, out, "hat")
	assert.NotContains(t, out, "No matching words")
	assert.NotContains(t, out, "hits in")
}

func TestResultPairs(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, true)

	err := r.Result(&search.Result{
		Kind:    search.KindPositions,
		Locale:  dictionary.English,
		Pairs:   []match.Pair{{Word: "cat", Derived: "ct"}},
		Elapsed: 2 * time.Millisecond,
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Picked")
	assert.Contains(t, out, "ct")
	assert.Contains(t, out, "1 hits in 2ms")
}

func TestResultEmptyJapanese(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, false)

	require.NoError(t, r.Result(&search.Result{Kind: search.KindSelection, Locale: dictionary.Japanese}))
	out := buf.String()
	assert.Contains(t, out, "結果（日本語）")
	assert.Contains(t, out, "一致する単語は見つかりませんでした。")
}

func TestErrorAndButtons(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, false)

	require.NoError(t, r.Error(dictionary.Japanese, search.ErrEmptyInput))
	assert.Contains(t, buf.String(), "文字を入力または選択してください。")

	buf.Reset()
	buttons := []session.Button{{Index: 0, Char: "t"}, {Index: 1, Char: "a"}}
	require.NoError(t, r.Buttons(buttons, []string{"a", "t"}))
	assert.Contains(t, buf.String(), "[0:t] [1:a]")
	assert.Contains(t, buf.String(), "at")
}
