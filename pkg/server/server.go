package server

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/bastiangx/wordpick/internal/logger"
	"github.com/bastiangx/wordpick/pkg/dictionary"
	"github.com/bastiangx/wordpick/pkg/match"
	"github.com/bastiangx/wordpick/pkg/search"
	"github.com/bastiangx/wordpick/pkg/session"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
)

// Error codes sent in ErrorResponse.
const (
	CodeBadRequest  = 400
	CodeInternal    = 500
	CodeFetchFailed = 502
)

var errUnknownAction = errors.New("unknown action")

// Searcher runs searches and keeps counters about them.
type Searcher interface {
	session.Searcher
	Stats() map[string]int
}

// Server handles the msgpack IPC. Requests are processed one at a time.
type Server struct {
	searcher Searcher
	session  *session.Session
	locale   dictionary.Locale
	mode     search.Mode

	decoder *msgpack.Decoder
	encoder *msgpack.Encoder
	logger  *log.Logger

	requestCount int
}

// NewServer creates a server reading requests from r and writing responses
// to w. locale and mode are used when a request leaves them out.
func NewServer(searcher Searcher, locale dictionary.Locale, mode search.Mode, r io.Reader, w io.Writer) *Server {
	return &Server{
		searcher: searcher,
		session:  session.New(searcher, locale, mode),
		locale:   locale,
		mode:     mode,
		decoder:  msgpack.NewDecoder(r),
		encoder:  msgpack.NewEncoder(w),
		logger:   logger.New("ipc"),
	}
}

// Start processes requests until the input ends or ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Debug("Starting msgpack IPC server")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		// read whole values so a malformed request never desyncs the stream
		raw, err := s.decoder.DecodeRaw()
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Debug("Client closed the stream", "requests", s.requestCount)
				return nil
			}
			return fmt.Errorf("read request: %w", err)
		}

		var req Request
		if err := msgpack.Unmarshal(raw, &req); err != nil {
			id := requestID(raw)
			s.logger.Errorf("Decoding request %q: %v", id, err)
			if sendErr := s.sendError(id, fmt.Sprintf("invalid msgpack request: %v", err), CodeBadRequest); sendErr != nil {
				return sendErr
			}
			continue
		}

		if err := s.handleRequest(ctx, req); err != nil {
			return err
		}
	}
}

// handleRequest answers one request. Only write failures are returned.
func (s *Server) handleRequest(ctx context.Context, req Request) error {
	s.requestCount++
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	s.logger.Debug("Request", "id", req.ID, "action", req.Action, "lang", req.Lang, "p", req.Pattern)

	switch req.Action {
	case "", "search":
		return s.handleSearch(ctx, req)
	case "input", "press", "clear", "state", "submit":
		return s.handleSession(ctx, req)
	case "stats":
		return s.send(StatsResponse{ID: req.ID, Stats: s.searcher.Stats()})
	default:
		return s.fail(req.ID, fmt.Errorf("%w: %q", errUnknownAction, req.Action))
	}
}

func (s *Server) handleSearch(ctx context.Context, req Request) error {
	res, err := s.searcher.Search(ctx, search.Request{
		Locale:    s.localeOf(req.Lang),
		Pattern:   req.Pattern,
		Selection: req.Selection,
		Mode:      s.modeOf(req.Mode),
	})
	if err != nil {
		return s.fail(req.ID, err)
	}
	return s.send(toSearchResponse(req.ID, res))
}

func (s *Server) handleSession(ctx context.Context, req Request) error {
	if req.Lang != "" {
		s.session.SetLocale(dictionary.ParseLocale(req.Lang))
	}
	if req.Mode != "" {
		s.session.SetMode(search.ParseMode(req.Mode))
	}

	switch req.Action {
	case "input":
		s.session.Input(req.Text)
	case "press":
		if req.Index == nil {
			return s.fail(req.ID, fmt.Errorf("%w: press without index", session.ErrNoSuchButton))
		}
		if err := s.session.Press(*req.Index); err != nil {
			return s.fail(req.ID, err)
		}
	case "clear":
		s.session.Clear()
	case "submit":
		res, err := s.session.Submit(ctx)
		if err != nil {
			return s.fail(req.ID, err)
		}
		return s.send(toSearchResponse(req.ID, res))
	}

	return s.send(SessionResponse{
		ID:        req.ID,
		Lang:      string(s.session.Locale()),
		Mode:      string(s.session.Mode()),
		Pattern:   s.session.Pattern(),
		Buttons:   s.session.Buttons(),
		Selection: s.session.Selection(),
	})
}

// requestID recovers the id of a request that failed to decode, if any.
func requestID(raw msgpack.RawMessage) string {
	var head struct {
		ID string `msgpack:"id"`
	}
	if err := msgpack.Unmarshal(raw, &head); err != nil {
		return ""
	}
	return head.ID
}

func (s *Server) localeOf(lang string) dictionary.Locale {
	if lang == "" {
		return s.locale
	}
	return dictionary.ParseLocale(lang)
}

func (s *Server) modeOf(mode string) search.Mode {
	if mode == "" {
		return s.mode
	}
	return search.ParseMode(mode)
}

func toSearchResponse(id string, res *search.Result) SearchResponse {
	resp := SearchResponse{
		ID:        id,
		Kind:      string(res.Kind),
		Words:     res.Words,
		Count:     res.Count(),
		TimeTaken: res.Elapsed.Microseconds(),
	}
	for _, p := range res.Pairs {
		resp.Picks = append(resp.Picks, Pick{Word: p.Word, Derived: p.Derived})
	}
	return resp
}

// fail logs err and answers with the matching error code.
func (s *Server) fail(id string, err error) error {
	code := errorCode(err)
	if code == CodeBadRequest {
		s.logger.Debug("Rejected request", "id", id, "err", err)
	} else {
		s.logger.Error("Request failed", "id", id, "code", code, "err", err)
	}
	return s.sendError(id, err.Error(), code)
}

func errorCode(err error) int {
	switch {
	case errors.Is(err, search.ErrEmptyInput),
		errors.Is(err, match.ErrInvalidPosition),
		errors.Is(err, session.ErrNoSuchButton),
		errors.Is(err, errUnknownAction):
		return CodeBadRequest
	case errors.Is(err, dictionary.ErrFetch):
		return CodeFetchFailed
	default:
		return CodeInternal
	}
}

func (s *Server) sendError(id, message string, code int) error {
	return s.send(ErrorResponse{ID: id, Error: message, Code: code})
}

func (s *Server) send(response any) error {
	if err := s.encoder.Encode(response); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	return nil
}
