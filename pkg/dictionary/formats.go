package dictionary

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"
)

// sniffSize is how much of a word list is inspected during validation.
const sniffSize = 1024

// ValidateWordList checks that filename looks like a usable plain text word
// list: a .txt extension, non-empty, and UTF-8 in its first block.
func ValidateWordList(filename string) error {
	fileInfo, err := os.Stat(filename)
	if err != nil {
		return fmt.Errorf("failed to stat file %s: %w", filename, err)
	}
	if fileInfo.IsDir() {
		return fmt.Errorf("%s is a directory", filename)
	}
	if fileInfo.Size() < 1 {
		return fmt.Errorf("word list %s is empty", filename)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".txt" {
		return fmt.Errorf("file %s has invalid extension %s for a word list (expected: .txt)", filename, ext)
	}

	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", filename, err)
	}
	defer file.Close()

	buffer := make([]byte, sniffSize)
	n, err := io.ReadFull(file, buffer)
	if err != nil && err != io.ErrUnexpectedEOF {
		return fmt.Errorf("failed to read from word list %s: %w", filename, err)
	}
	buffer = buffer[:n]

	// a full block may end inside a multibyte rune
	if n == sniffSize {
		if last := bytes.LastIndexByte(buffer, '\n'); last >= 0 {
			buffer = buffer[:last]
		}
	}
	if !utf8.Valid(buffer) {
		return fmt.Errorf("word list %s is not valid UTF-8", filename)
	}

	log.Debugf("Word list %s validated", filename)
	return nil
}

// HasWordLists reports whether dir holds a valid word list for at least one
// locale.
func HasWordLists(dir string) bool {
	for _, locale := range []Locale{English, Japanese} {
		err := ValidateWordList(filepath.Join(dir, locale.FileName()))
		if err == nil {
			return true
		}
		log.Debugf("No usable %s word list in %s: %v", locale, dir, err)
	}
	return false
}
