/*
Package session owns the interactive state of one search form: the pattern
being typed, the character buttons built from it and the ordered selection
made by pressing those buttons.

Every new Input starts a fresh cycle: buttons are rebuilt and the selection is
cleared. Submit turns the current state into a search request.

	s := session.New(searcher, dictionary.English, search.ModeSelect)
	s.Input("tac")   // buttons t, a, c
	s.Press(1)       // a
	s.Press(2)       // c
	s.Press(0)       // t
	res, err := s.Submit(ctx)
*/
package session

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/bastiangx/wordpick/internal/utils"
	"github.com/bastiangx/wordpick/pkg/dictionary"
	"github.com/bastiangx/wordpick/pkg/search"
	"github.com/charmbracelet/log"
)

// ErrNoSuchButton is returned when a pressed index has no button.
var ErrNoSuchButton = errors.New("no such button")

// Searcher runs a search request.
type Searcher interface {
	Search(ctx context.Context, req search.Request) (*search.Result, error)
}

// Button is one clickable character of the current pattern.
type Button struct {
	Index int    `msgpack:"i"`
	Char  string `msgpack:"ch"`
}

// Session is the state behind one search form. It is not safe for
// concurrent use.
type Session struct {
	searcher  Searcher
	locale    dictionary.Locale
	mode      search.Mode
	pattern   string
	buttons   []Button
	selection []string
}

// New creates an empty session.
func New(searcher Searcher, locale dictionary.Locale, mode search.Mode) *Session {
	return &Session{
		searcher: searcher,
		locale:   locale,
		mode:     mode,
	}
}

// Input replaces the pattern. In select mode digits are stripped, since
// buttons stand for letters. Buttons are rebuilt and the selection reset.
func (s *Session) Input(text string) string {
	if s.mode == search.ModeSelect {
		text = utils.StripDigits(text)
	}
	s.pattern = text

	s.buttons = s.buttons[:0]
	for i, r := range []rune(text) {
		s.buttons = append(s.buttons, Button{Index: i, Char: string(r)})
	}
	s.selection = nil

	log.Debugf("Session input %q, %d buttons", text, len(s.buttons))
	return text
}

// Press appends the character of button index to the selection.
func (s *Session) Press(index int) error {
	if index < 0 || index >= len(s.buttons) {
		return fmt.Errorf("%w: %d (have %d)", ErrNoSuchButton, index, len(s.buttons))
	}
	s.selection = append(s.selection, s.buttons[index].Char)
	return nil
}

// Clear drops the selection but keeps the pattern and buttons.
func (s *Session) Clear() {
	s.selection = nil
}

// SetLocale switches the dictionary used by the next Submit.
func (s *Session) SetLocale(locale dictionary.Locale) {
	s.locale = locale
}

// SetMode switches the interpretation of plain patterns and re-applies the
// current pattern under the new mode. Setting the current mode again keeps
// the selection.
func (s *Session) SetMode(mode search.Mode) {
	if mode == s.mode {
		return
	}
	s.mode = mode
	s.Input(s.pattern)
}

// Pattern returns the current pattern.
func (s *Session) Pattern() string { return s.pattern }

// Buttons returns a copy of the current buttons.
func (s *Session) Buttons() []Button { return slices.Clone(s.buttons) }

// Selection returns a copy of the selected characters, in press order.
func (s *Session) Selection() []string { return slices.Clone(s.selection) }

// Locale returns the current locale.
func (s *Session) Locale() dictionary.Locale { return s.locale }

// Mode returns the current mode.
func (s *Session) Mode() search.Mode { return s.mode }

// Request builds the search request for the current state.
func (s *Session) Request() search.Request {
	return search.Request{
		Locale:    s.locale,
		Pattern:   s.pattern,
		Selection: s.Selection(),
		Mode:      s.mode,
	}
}

// Submit searches with the current state.
func (s *Session) Submit(ctx context.Context) (*search.Result, error) {
	return s.searcher.Search(ctx, s.Request())
}
