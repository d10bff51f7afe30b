// Package cli handles cmd line input for searching words interactively.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/bastiangx/wordpick/internal/render"
	"github.com/bastiangx/wordpick/internal/utils"
	"github.com/bastiangx/wordpick/pkg/dictionary"
	"github.com/bastiangx/wordpick/pkg/match"
	"github.com/bastiangx/wordpick/pkg/search"
	"github.com/bastiangx/wordpick/pkg/session"
	"github.com/charmbracelet/log"
)

const help = `commands:
  <pattern>        search; '?' matches one character, "1,3" picks letters
  /press 0 2 1     press buttons by index (select mode)
  /search          search with the current pattern and selection
  /clear           drop the selection
  /lang en|ja      switch dictionary
  /mode positions|select
  /state           show buttons and selection
  /help            show this
  /quit            exit`

// InputHandler reads lines from in and drives a session with them.
// In positions mode every plain line is searched right away. In select mode
// a plain line builds the buttons, a line of numbers presses them and /search
// submits.
type InputHandler struct {
	session      *session.Session
	render       *render.Renderer
	in           io.Reader
	out          io.Writer
	requestCount int
}

// NewInputHandler handles initialization of the InputHandler.
func NewInputHandler(sess *session.Session, in io.Reader, out io.Writer, timings bool) *InputHandler {
	return &InputHandler{
		session: sess,
		render:  render.New(out, timings),
		in:      in,
		out:     out,
	}
}

// Start begins the interface loop. It ends on EOF, /quit or when ctx is
// cancelled.
func (h *InputHandler) Start(ctx context.Context) error {
	h.shown(h.render.Message("wordpick CLI [%s, %s] type /help for commands (Ctrl+C to exit)",
		h.session.Locale(), h.session.Mode()))

	scanner := bufio.NewScanner(h.in)
	for {
		fmt.Fprint(h.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(h.out)
			return scanner.Err()
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "/quit" || line == "/exit" {
			return nil
		}
		h.handleInput(ctx, line)
	}
}

// handleInput runs a single line.
func (h *InputHandler) handleInput(ctx context.Context, line string) {
	if cmd, ok := strings.CutPrefix(line, "/"); ok {
		h.handleCommand(ctx, cmd)
		return
	}

	if h.session.Mode() == search.ModeSelect {
		if utils.IsPositionList(line) && len(h.session.Buttons()) > 0 {
			h.press(line)
			return
		}
		if utils.ContainsNumbers(line) {
			log.Debugf("Digits dropped from %q in select mode", line)
		}
		h.session.Input(line)
		if !match.IsWildcard(line) {
			h.shown(h.render.Buttons(h.session.Buttons(), h.session.Selection()))
			return
		}
	} else {
		h.session.Input(line)
	}
	h.submit(ctx)
}

func (h *InputHandler) handleCommand(ctx context.Context, cmd string) {
	name, arg, _ := strings.Cut(cmd, " ")
	arg = strings.TrimSpace(arg)

	switch name {
	case "press", "p":
		h.press(arg)
	case "search", "s":
		h.submit(ctx)
	case "clear":
		h.session.Clear()
		h.shown(h.render.Buttons(h.session.Buttons(), h.session.Selection()))
	case "lang":
		h.session.SetLocale(dictionary.ParseLocale(arg))
		h.shown(h.render.Message("lang: %s", h.session.Locale()))
	case "mode":
		h.session.SetMode(search.ParseMode(arg))
		h.shown(h.render.Message("mode: %s", h.session.Mode()))
	case "state":
		h.shown(h.render.Message("lang: %s, mode: %s, pattern: %q", h.session.Locale(), h.session.Mode(), h.session.Pattern()))
		h.shown(h.render.Buttons(h.session.Buttons(), h.session.Selection()))
	case "help", "h":
		h.shown(h.render.Message("%s", help))
	default:
		log.Errorf("Unknown command: /%s", name)
	}
}

func (h *InputHandler) press(arg string) {
	indexes := utils.ParseIndexes(arg)
	if len(indexes) == 0 {
		log.Errorf("Nothing to press in %q", arg)
		return
	}
	for _, i := range indexes {
		if err := h.session.Press(i); err != nil {
			log.Debugf("Press %d: %v", i, err)
			h.shown(h.render.Error(h.session.Locale(), err))
			break
		}
	}
	h.shown(h.render.Buttons(h.session.Buttons(), h.session.Selection()))
}

func (h *InputHandler) submit(ctx context.Context) {
	h.requestCount++
	log.Debug("Processing request", "n", h.requestCount, "pattern", h.session.Pattern(), "selection", h.session.Selection())

	res, err := h.session.Submit(ctx)
	if err != nil {
		log.Debugf("Search failed: %v", err)
		h.shown(h.render.Error(h.session.Locale(), err))
		return
	}
	h.shown(h.render.Result(res))
}

// shown logs output that could not be written.
func (h *InputHandler) shown(err error) {
	if err != nil {
		log.Debugf("Writing output: %v", err)
	}
}
