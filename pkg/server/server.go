package server

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/bastiangx/wordbiter/internal/utils"
	"github.com/bastiangx/wordbiter/pkg/config"
	"github.com/bastiangx/wordbiter/pkg/dictionary"
	"github.com/bastiangx/wordbiter/pkg/solver"
)

// rawRequest is the superset of all request frames; dispatch is on
// the Action field (empty means a solve request).
type rawRequest struct {
	ID            string   `msgpack:"id"`
	Action        string   `msgpack:"action"`
	Single        []string `msgpack:"s"`
	Horizontal    []string `msgpack:"h"`
	Vertical      []string `msgpack:"v"`
	MinLength     int      `msgpack:"min"`
	MaxHorizontal int      `msgpack:"maxh"`
	MaxVertical   int      `msgpack:"maxv"`
	Direction     string   `msgpack:"dir"`
}

// Server handles the IPC for board solving
type Server struct {
	dict    *dictionary.Dict
	cfg     *config.Config
	decoder *msgpack.Decoder
	encoder *msgpack.Encoder
}

// NewServer creates a solve server using stdin/stdout for IPC
func NewServer(dict *dictionary.Dict, cfg *config.Config) *Server {
	return NewServerWithIO(dict, cfg, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a solve server on explicit streams
func NewServerWithIO(dict *dictionary.Dict, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	return &Server{
		dict:    dict,
		cfg:     cfg,
		decoder: msgpack.NewDecoder(r),
		encoder: msgpack.NewEncoder(w),
	}
}

// Start begins listening for IPC requests. Returns nil on EOF.
func (s *Server) Start() error {
	log.Debug("Starting solve server")

	s.send(ReadyFrame{Status: "ready", Words: s.dict.Len()})

	for {
		var req rawRequest
		if err := s.decoder.Decode(&req); err != nil {
			if err == io.EOF {
				return nil
			}
			// A corrupt frame leaves the stream position unknown, so
			// bail out rather than spin on the same bytes.
			log.Errorf("Decoding request: %v", err)
			s.sendError("", "Invalid msgpack request", 400)
			return err
		}
		s.handleRequest(req)
	}
}

// handleRequest dispatches one decoded frame
func (s *Server) handleRequest(req rawRequest) {
	switch req.Action {
	case "":
		s.handleSolve(req)
	case "get_info":
		s.send(DictResponse{
			ID:        req.ID,
			Status:    "ok",
			WordCount: s.dict.Len(),
			Source:    s.dict.Source(),
		})
	default:
		s.sendError(req.ID, fmt.Sprintf("Unknown action: %s", req.Action), 400)
	}
}

// handleSolve validates a solve request, runs the board query and
// sends the response with timing info.
func (s *Server) handleSolve(req rawRequest) {
	input := solver.Input{
		Single:     uppercaseAll(req.Single),
		Horizontal: uppercaseAll(req.Horizontal),
		Vertical:   uppercaseAll(req.Vertical),
	}

	if len(input.Single)+len(input.Horizontal)+len(input.Vertical) == 0 {
		s.sendError(req.ID, "At least one tile must be provided", 400)
		return
	}
	if total := len(input.Single) + len(input.Horizontal) + len(input.Vertical); total > s.cfg.Server.MaxTiles {
		s.sendError(req.ID, fmt.Sprintf("Too many tiles: %d (max %d)", total, s.cfg.Server.MaxTiles), 400)
		return
	}
	if bad, ok := utils.ValidateTiles(input.Single, false); !ok {
		s.sendError(req.ID, fmt.Sprintf("Invalid single tile: %q", bad), 400)
		return
	}
	if bad, ok := utils.ValidateTiles(input.Horizontal, true); !ok {
		s.sendError(req.ID, fmt.Sprintf("Invalid horizontal tile: %q", bad), 400)
		return
	}
	if bad, ok := utils.ValidateTiles(input.Vertical, true); !ok {
		s.sendError(req.ID, fmt.Sprintf("Invalid vertical tile: %q", bad), 400)
		return
	}

	opts := solver.DefaultOptions()
	opts.MinLength = s.cfg.Solver.MinLength
	opts.MaxHorizontal = s.cfg.Solver.MaxHorizontalLength
	opts.MaxVertical = s.cfg.Solver.MaxVerticalLength
	if req.MinLength > 0 {
		opts.MinLength = req.MinLength
	}
	if req.MaxHorizontal > 0 {
		opts.MaxHorizontal = req.MaxHorizontal
	}
	if req.MaxVertical > 0 {
		opts.MaxVertical = req.MaxVertical
	}

	dir, err := solver.ParseDirection(req.Direction)
	if err != nil {
		s.sendError(req.ID, err.Error(), 400)
		return
	}
	opts.Direction = dir

	start := time.Now()
	result, err := solver.Solve(input, s.dict, opts)
	if err != nil {
		s.sendError(req.ID, err.Error(), 422)
		return
	}
	elapsed := time.Since(start)

	s.send(SolveResponse{
		ID:              req.ID,
		Horizontal:      result.Horizontal,
		Vertical:        result.Vertical,
		HorizontalCount: len(result.Horizontal),
		VerticalCount:   len(result.Vertical),
		Total:           result.Total(),
		TimeTaken:       elapsed.Microseconds(),
	})
}

// send encodes one response frame
func (s *Server) send(response interface{}) {
	if err := s.encoder.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error frame
func (s *Server) sendError(id, message string, code int) {
	s.send(SolveError{
		ID:    id,
		Error: message,
		Code:  code,
	})
}

func uppercaseAll(tiles []string) []string {
	out := make([]string, 0, len(tiles))
	for _, t := range tiles {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		out = append(out, strings.ToUpper(t))
	}
	return out
}
