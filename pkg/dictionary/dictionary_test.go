package dictionary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDictionaryContains(t *testing.T) {
	var testCases = []struct {
		words            []string
		shouldNotContain []string
	}{
		{
			words:            []string{"cat", "ct", "cot", "at"},
			shouldNotContain: []string{"c", "ca", "cats", "t", ""},
		},
		{
			words:            []string{"ねこ", "いぬ"},
			shouldNotContain: []string{"ね", "ねこね", "cat"},
		},
		{
			words:            []string{},
			shouldNotContain: []string{"cat", ""},
		},
	}

	for _, tc := range testCases {
		d := New(English, tc.words)

		for _, w := range tc.words {
			assert.True(t, d.Contains(w), "expected dictionary to contain %q", w)
		}
		for _, w := range tc.shouldNotContain {
			assert.False(t, d.Contains(w), "expected dictionary to not contain %q", w)
		}
	}
}

func TestDictionaryKeepsOrderAndDuplicates(t *testing.T) {
	d := New(English, []string{"hat", "cat", "hat"})

	assert.Equal(t, []string{"hat", "cat", "hat"}, d.Words())
	assert.Equal(t, 3, d.Len())
	assert.True(t, d.Contains("hat"))
	assert.False(t, d.Contains("bat"))
}

func TestDictionaryIsImmutable(t *testing.T) {
	src := []string{"cat", "hat"}
	d := New(English, src)

	src[0] = "dog"
	words := d.Words()
	words[1] = "bat"

	assert.Equal(t, []string{"cat", "hat"}, d.Words())
	assert.False(t, d.Contains("dog"))
}
