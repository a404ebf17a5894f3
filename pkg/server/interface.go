/*
Package server implements msgpack IPC for dictionary filtering services.

The server package provides a minimal interface for suggestion filtering and
word checking using msgpack serialization over stdin/stdout.

The protocol uses binary msgpack encoding and supports membership checks,
spelling suggestions, list filtering, and health probes. Messages are
processed synchronously with timing info included in responses.

# IPC

The server operates on a request response model where clients send structured
messages via stdin and receive responses through stdout. Each message carries
an ID, an op field for dispatch, and op-specific parameters.

Membership checks use this structure:

	{"id": "req_001", "op": "check", "w": "apple"}

The server responds with the lookup result:

	{"id": "req_001", "f": true, "t": 12}

Filter requests carry the suggestion lines inline and an optional count;
omitting the count filters every line:

	{"id": "flt_001", "op": "filter", "lines": ["apple foo", "pear bar"], "n": 2}

Suggestion requests return dictionary words near a misspelt input:

	{"id": "sug_001", "op": "suggest", "w": "aple", "l": 8}

Error responses carry the failing request's ID, a message and a code.
*/
package server

// Request is the single inbound message shape; Op selects the operation.
type Request struct {
	ID     string   `msgpack:"id"`
	Op     string   `msgpack:"op"` // "check", "suggest", "filter", "health"
	Word   string   `msgpack:"w,omitempty"`
	Limit  int      `msgpack:"l,omitempty"`
	Lines  []string `msgpack:"lines,omitempty"`
	Count  *int     `msgpack:"n,omitempty"` // filter only; nil means all lines
}

// CheckResponse answers a membership check
type CheckResponse struct {
	ID        string `msgpack:"id"`
	Found     bool   `msgpack:"f"`
	TimeTaken int64  `msgpack:"t"`
}

// SuggestResponse answers a suggestion request
type SuggestResponse struct {
	ID          string   `msgpack:"id"`
	Suggestions []string `msgpack:"s"`
	Count       int      `msgpack:"c"`
	TimeTaken   int64    `msgpack:"t"`
}

// FilterResponse answers a filter request
type FilterResponse struct {
	ID        string   `msgpack:"id"`
	Kept      []string `msgpack:"k"`
	Count     int      `msgpack:"c"`
	Dropped   int      `msgpack:"d"`
	TimeTaken int64    `msgpack:"t"`
}

// StatusResponse reports server state ("ready", "ok")
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
}

// ErrorResponse holds basic error information for failed requests
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
