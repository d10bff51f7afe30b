package render

import (
	"errors"

	"github.com/bastiangx/wordpick/pkg/dictionary"
	"github.com/bastiangx/wordpick/pkg/match"
	"github.com/bastiangx/wordpick/pkg/search"
	"github.com/bastiangx/wordpick/pkg/session"
)

// Messages is the user facing text of one locale.
type Messages struct {
	EmptyInput      string
	NoMatches       string
	Heading         string
	FetchFailure    string
	InvalidPosition string
	NoSuchButton    string
	WordColumn      string
	DerivedColumn   string
}

var english = Messages{
	EmptyInput:      "Please enter or select characters.",
	NoMatches:       "No matching words were found.",
	Heading:         "Results (English)",
	FetchFailure:    "Could not load the dictionary.",
	InvalidPosition: "Positions must be comma separated numbers.",
	NoSuchButton:    "There is no such button.",
	WordColumn:      "Word",
	DerivedColumn:   "Picked",
}

var japanese = Messages{
	EmptyInput:      "文字を入力または選択してください。",
	NoMatches:       "一致する単語は見つかりませんでした。",
	Heading:         "結果（日本語）",
	FetchFailure:    "辞書を読み込めませんでした。",
	InvalidPosition: "位置はカンマ区切りの数字で指定してください。",
	NoSuchButton:    "そのボタンはありません。",
	WordColumn:      "単語",
	DerivedColumn:   "抽出",
}

// MessagesFor returns the messages of locale. Anything but English is
// Japanese.
func MessagesFor(locale dictionary.Locale) Messages {
	if locale == dictionary.English {
		return english
	}
	return japanese
}

// ErrorMessage maps a search or session error to its localized message.
// Unknown errors are shown as is.
func (m Messages) ErrorMessage(err error) string {
	switch {
	case errors.Is(err, search.ErrEmptyInput):
		return m.EmptyInput
	case errors.Is(err, dictionary.ErrFetch):
		return m.FetchFailure
	case errors.Is(err, match.ErrInvalidPosition):
		return m.InvalidPosition
	case errors.Is(err, session.ErrNoSuchButton):
		return m.NoSuchButton
	default:
		return err.Error()
	}
}
