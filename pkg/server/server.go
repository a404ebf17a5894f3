package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lexsift/lexsift/internal/logger"
	"github.com/lexsift/lexsift/pkg/dictionary"
	"github.com/lexsift/lexsift/pkg/filter"
	"github.com/lexsift/lexsift/pkg/spell"
	"github.com/vmihailenco/msgpack/v5"
)

const defaultSuggestLimit = 8

// Server handles the IPC for dictionary lookups and filtering
type Server struct {
	dict    *dictionary.Dict
	decoder *msgpack.Decoder
	encoder *msgpack.Encoder
	log     *log.Logger
}

// NewServer creates a filtering server over the given streams.
func NewServer(dict *dictionary.Dict, r io.Reader, w io.Writer) *Server {
	return &Server{
		dict:    dict,
		decoder: msgpack.NewDecoder(r),
		encoder: msgpack.NewEncoder(w),
		log:     logger.New("ipc"),
	}
}

// NewStdioServer creates a server using stdin/stdout for IPC
func NewStdioServer(dict *dictionary.Dict) *Server {
	return NewServer(dict, os.Stdin, os.Stdout)
}

// Start begins listening for IPC requests. Returns nil on clean EOF.
func (s *Server) Start() error {
	s.log.Debug("Starting server.")

	// Signal that the server is ready
	s.sendResponse(StatusResponse{Status: "ready"})

	for {
		var request Request
		if err := s.decoder.Decode(&request); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			s.log.Errorf("Decoding request: %v", err)
			return err
		}
		s.handleRequest(request)
	}
}

// handleRequest dispatches an incoming request on its op field
func (s *Server) handleRequest(request Request) {
	switch request.Op {
	case "check":
		s.handleCheck(request)
	case "suggest":
		s.handleSuggest(request)
	case "filter":
		s.handleFilter(request)
	case "health":
		s.sendResponse(StatusResponse{ID: request.ID, Status: "ok"})
	default:
		s.sendError(request.ID, fmt.Sprintf("Unknown op: %s", request.Op), 400)
	}
}

// handleCheck answers an exact membership lookup.
func (s *Server) handleCheck(request Request) {
	if request.Word == "" {
		s.sendError(request.ID, "Missing 'w' parameter", 400)
		return
	}

	start := time.Now()
	found := s.dict.Contains(request.Word)
	elapsed := time.Since(start)

	s.sendResponse(CheckResponse{
		ID:        request.ID,
		Found:     found,
		TimeTaken: elapsed.Microseconds(),
	})
}

// handleSuggest returns dictionary words near a misspelt input.
func (s *Server) handleSuggest(request Request) {
	if request.Word == "" {
		s.sendError(request.ID, "Missing 'w' parameter", 400)
		return
	}

	limit := request.Limit
	if limit < 1 {
		limit = defaultSuggestLimit
	}

	start := time.Now()
	suggestions := spell.Suggest(s.dict, request.Word, limit)
	elapsed := time.Since(start)

	s.sendResponse(SuggestResponse{
		ID:          request.ID,
		Suggestions: suggestions,
		Count:       len(suggestions),
		TimeTaken:   elapsed.Microseconds(),
	})
}

// handleFilter runs the suggestion filter over inline lines.
func (s *Server) handleFilter(request Request) {
	count := len(request.Lines)
	if request.Count != nil {
		count = *request.Count
	}

	start := time.Now()
	res, err := filter.Run(s.dict, request.Lines, count)
	elapsed := time.Since(start)
	if err != nil {
		s.sendError(request.ID, err.Error(), 422)
		return
	}

	s.sendResponse(FilterResponse{
		ID:        request.ID,
		Kept:      res.Kept,
		Count:     len(res.Kept),
		Dropped:   res.Dropped,
		TimeTaken: elapsed.Microseconds(),
	})
}

// sendResponse encodes a response onto the output stream.
func (s *Server) sendResponse(response any) {
	if err := s.encoder.Encode(response); err != nil {
		s.log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	s.sendResponse(ErrorResponse{
		ID:    id,
		Error: message,
		Code:  code,
	})
}
