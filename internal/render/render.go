// Package render writes search results, buttons and errors for terminal
// users. Text comes from templates, results are laid out in a lipgloss table.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/template"

	"github.com/bastiangx/wordpick/pkg/dictionary"
	"github.com/bastiangx/wordpick/pkg/search"
	"github.com/bastiangx/wordpick/pkg/session"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	wordStyle = lipgloss.NewStyle().Padding(0, 1).
			Foreground(lipgloss.AdaptiveColor{Light: "#286983", Dark: "#9ccfd8"})
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	borderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#9893a5", Dark: "#6e6a86"})
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#b4637a", Dark: "#eb6f92"})
	selectedStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#d7827e", Dark: "#ea9a97"})
)

var templates = template.Must(template.New("render").Funcs(template.FuncMap{
	"heading": func(s string) string { return headingStyle.Render(s) },
	"failure": func(s string) string { return errorStyle.Render(s) },
	"chosen":  func(s string) string { return selectedStyle.Render(s) },
}).Parse(`
{{- define "result" -}}
{{heading .Msg.Heading}}
{{if .Empty}}{{.Msg.NoMatches}}{{else}}{{.Table}}{{end}}
{{- if .Timings}}
{{.Count}} hits in {{.Elapsed}}
{{- end}}
{{end -}}

{{- define "error" -}}
{{failure .}}
{{end -}}

{{- define "buttons" -}}
{{range $i, $b := .Buttons}}{{if $i}} {{end}}[{{$b.Index}}:{{$b.Char}}]{{end}}
{{- if .Selection}}
> {{chosen .Selection}}
{{- end}}
{{end -}}
`))

// Renderer writes localized output to w.
type Renderer struct {
	w       io.Writer
	timings bool
}

// New creates a Renderer. With timings set, results end with hit count and
// search duration.
func New(w io.Writer, timings bool) *Renderer {
	return &Renderer{w: w, timings: timings}
}

type resultView struct {
	Msg     Messages
	Empty   bool
	Table   string
	Timings bool
	Count   int
	Elapsed string
}

// Result writes the heading and either the result table or the no matches
// message.
func (r *Renderer) Result(res *search.Result) error {
	view := resultView{
		Msg:     MessagesFor(res.Locale),
		Empty:   res.Empty(),
		Timings: r.timings,
		Count:   res.Count(),
		Elapsed: res.Elapsed.String(),
	}
	if !view.Empty {
		view.Table = resultTable(res, view.Msg)
	}
	return templates.ExecuteTemplate(r.w, "result", view)
}

// Error writes the localized message for err.
func (r *Renderer) Error(locale dictionary.Locale, err error) error {
	return templates.ExecuteTemplate(r.w, "error", MessagesFor(locale).ErrorMessage(err))
}

// Buttons writes the character buttons and the current selection.
func (r *Renderer) Buttons(buttons []session.Button, selection []string) error {
	return templates.ExecuteTemplate(r.w, "buttons", struct {
		Buttons   []session.Button
		Selection string
	}{buttons, strings.Join(selection, "")})
}

// Message writes a plain line.
func (r *Renderer) Message(format string, args ...any) error {
	_, err := fmt.Fprintf(r.w, format+"\n", args...)
	return err
}

func resultTable(res *search.Result, msg Messages) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 1:
				return wordStyle
			default:
				return cellStyle
			}
		})

	if len(res.Pairs) > 0 {
		t.Headers("#", msg.WordColumn, msg.DerivedColumn)
		for i, p := range res.Pairs {
			t.Row(strconv.Itoa(i+1), p.Word, p.Derived)
		}
		return t.String()
	}

	t.Headers("#", msg.WordColumn)
	for i, w := range res.Words {
		t.Row(strconv.Itoa(i+1), w)
	}
	return t.String()
}
