/*
Package server implements msgpack IPC for wordpick.

Clients write msgpack maps to stdin, one after another, and read one response
map per request from stdout. Every message carries an id; requests without one
get a generated UUID, which the response echoes.

A search request runs one search against a freshly loaded dictionary:

	{"id": "q1", "lang": "en", "p": "?at"}
	{"id": "q2", "lang": "en", "p": "1,3"}
	{"id": "q3", "lang": "ja", "mode": "select", "p": "ねこ", "sel": ["こ", "ね"]}

and is answered with the matches, count and time taken in microseconds:

	{"id": "q1", "m": "wildcard", "w": ["cat", "hat"], "c": 2, "t": 145}
	{"id": "q2", "m": "positions", "pr": [{"w": "cat", "d": "ct"}], "c": 1, "t": 98}

Session actions drive the character buttons of the server side session:

	{"id": "s1", "action": "input", "text": "tac", "mode": "select"}
	{"id": "s2", "action": "press", "i": 1}
	{"id": "s3", "action": "clear"}
	{"id": "s4", "action": "state"}
	{"id": "s5", "action": "submit"}
	{"id": "s6", "action": "stats"}

Failures are reported as {"id", "e", "c"}: 400 for bad input, 502 when the
dictionary could not be fetched and 500 for everything else.
*/
package server

import "github.com/bastiangx/wordpick/pkg/session"

// Request is the envelope of every incoming message. An empty Action (or
// "search") is a search request, any other value a session action.
type Request struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"action,omitempty"`

	// search, and locale or mode switches for session actions
	Lang      string   `msgpack:"lang,omitempty"`
	Mode      string   `msgpack:"mode,omitempty"`
	Pattern   string   `msgpack:"p,omitempty"`
	Selection []string `msgpack:"sel,omitempty"`

	// session actions
	Text  string `msgpack:"text,omitempty"`
	Index *int   `msgpack:"i,omitempty"`
}

// Pick is one letter picking hit.
type Pick struct {
	Word    string `msgpack:"w"`
	Derived string `msgpack:"d"`
}

// SearchResponse carries the matches of one search.
type SearchResponse struct {
	ID        string   `msgpack:"id"`
	Kind      string   `msgpack:"m"`
	Words     []string `msgpack:"w,omitempty"`
	Picks     []Pick   `msgpack:"pr,omitempty"`
	Count     int      `msgpack:"c"`
	TimeTaken int64    `msgpack:"t"`
}

// SessionResponse describes the session after an action.
type SessionResponse struct {
	ID        string           `msgpack:"id"`
	Lang      string           `msgpack:"lang"`
	Mode      string           `msgpack:"mode"`
	Pattern   string           `msgpack:"p"`
	Buttons   []session.Button `msgpack:"b"`
	Selection []string         `msgpack:"sel"`
}

// StatsResponse carries the searcher counters.
type StatsResponse struct {
	ID    string         `msgpack:"id"`
	Stats map[string]int `msgpack:"stats"`
}

// ErrorResponse holds basic error information for failed requests
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
