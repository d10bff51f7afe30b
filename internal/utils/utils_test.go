package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func TestStripDigits(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"c4a2t", "cat"},
		{"123", ""},
		{"ね1こ", "ねこ"},
		{"?a?", "?a?"},
		{"１２", "１２"}, // full width digits are not stripped
		{"", ""},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expected, StripDigits(tc.input), "input %q", tc.input)
	}
}

func TestContainsNumbers(t *testing.T) {
	assert.True(t, ContainsNumbers("ca7"))
	assert.False(t, ContainsNumbers("cat"))
}

func TestIsPositionList(t *testing.T) {
	assert.True(t, IsPositionList("1,3"))
	assert.True(t, IsPositionList(" 1, -2 ,10 "))
	assert.False(t, IsPositionList("cat"))
	assert.False(t, IsPositionList("?at"))
	assert.False(t, IsPositionList("  "))
}

func TestParseIndexes(t *testing.T) {
	assert.Equal(t, []int{0, 2, 1}, ParseIndexes("0 2 1"))
	assert.Equal(t, []int{3, 4}, ParseIndexes("3,x, 4"))
	assert.Empty(t, ParseIndexes(""))
}

func TestTOMLRoundTripAndRecovery(t *testing.T) {
	type section struct {
		Name  string `toml:"name"`
		Count int    `toml:"count"`
		On    bool   `toml:"on"`
	}
	type doc struct {
		Main section `toml:"main"`
	}

	path := filepath.Join(t.TempDir(), "conf.toml")
	require.NoError(t, SaveTOMLFile(doc{Main: section{Name: "x", Count: 3, On: true}}, path))
	assert.True(t, FileExists(path))

	var got doc
	require.NoError(t, LoadTOMLFile(path, &got))
	assert.Equal(t, section{Name: "x", Count: 3, On: true}, got.Main)

	raw, err := ParseTOMLWithRecovery(path)
	require.NoError(t, err)
	main, ok := ExtractSection(raw, "main")
	require.True(t, ok)

	name, ok := ExtractString(main, "name")
	assert.True(t, ok)
	assert.Equal(t, "x", name)
	count, ok := ExtractInt64(main, "count")
	assert.True(t, ok)
	assert.Equal(t, 3, count)
	on, ok := ExtractBool(main, "on")
	assert.True(t, ok)
	assert.True(t, on)

	_, ok = ExtractInt64(main, "name")
	assert.False(t, ok)
}

func TestLoadTOMLFileTypeMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[main]\ncount = \"three\"\n"), 0644))

	var got struct {
		Main struct {
			Count int `toml:"count"`
		} `toml:"main"`
	}
	assert.Error(t, LoadTOMLFile(path, &got))

	raw, err := ParseTOMLWithRecovery(path)
	require.NoError(t, err)
	_, ok := ExtractSection(raw, "main")
	assert.True(t, ok)
}

func TestCheckDirStatus(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "dir")
	res := CheckDirStatus(dir)
	assert.NoError(t, res.Error)
	assert.True(t, res.Exists)
	assert.True(t, res.Writable)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "write probe must be cleaned up")
}

func TestGetDataDir(t *testing.T) {
	dataDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "words_ja.txt"), []byte("ねこ\n"), 0644))

	pr := &PathResolver{executableDir: t.TempDir(), homeDir: t.TempDir(), configDir: t.TempDir()}
	assert.Equal(t, dataDir, pr.GetDataDir(dataDir))

	missing := filepath.Join(t.TempDir(), "missing")
	assert.Equal(t, missing, pr.GetDataDir(missing))
}

func TestGetAbsolutePath(t *testing.T) {
	assert.Equal(t, "unknown", GetAbsolutePath(""))
	assert.True(t, filepath.IsAbs(GetAbsolutePath("config.toml")))
}
