package main

import (
	"errors"
	"fmt"
	"net"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultReadLimit bounds the single read taken from each connection.
// A request line longer than this is truncated; known limitation.
const DefaultReadLimit = 1024

type handlerFunc func(s *Server, req *Request) *Response

// Method dispatch is an exact, case-sensitive table lookup. Anything
// not in the table, including an empty method from a malformed
// request line, falls through to the 501 handler.
var handlers = map[string]handlerFunc{
	"GET": handleGET,
}

// Server accepts TCP connections and serves one request per
// connection: read, parse, dispatch, respond, close. Connections are
// handled strictly in acceptance order, one at a time.
type Server struct {
	root      string
	readLimit int
	log       zerolog.Logger
	ln        net.Listener
}

func NewServer(root string, logger zerolog.Logger) (*Server, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("Failed to resolve root %q: %w", root, err)
	}
	return &Server{
		root:      filepath.Clean(abs),
		readLimit: DefaultReadLimit,
		log:       logger,
	}, nil
}

// Listen binds the listener without serving, so callers can bind port
// 0 and read the assigned address back via Addr before Serve.
func (s *Server) Listen(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("Failed to listen on %s: %w", addr, err)
	}
	s.ln = ln
	s.log.Info().Str("addr", ln.Addr().String()).Str("root", s.root).Msg("listening")
	return nil
}

func (s *Server) Addr() string {
	if s.ln == nil {
		return ""
	}
	return s.ln.Addr().String()
}

// Serve runs the accept loop until Close. A failure on one connection
// never stops the loop; only a closed listener ends it, and that
// returns nil.
func (s *Server) Serve() error {
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			s.log.Warn().Err(err).Msg("accept error")
			continue
		}
		s.handleConn(conn)
	}
}

// Close shuts the listener down and unblocks Serve.
func (s *Server) Close() error {
	if s.ln == nil {
		return nil
	}
	return s.ln.Close()
}

func (s *Server) handleConn(conn net.Conn) {
	defer conn.Close()

	buf := make([]byte, s.readLimit)
	n, err := conn.Read(buf)
	if err != nil {
		s.log.Warn().Err(err).Msg("read error")
		return
	}

	req := ParseRequest(buf[:n])
	handler, ok := handlers[req.Method]
	if !ok {
		handler = handleNotImplemented
	}
	res := handler(s, req)

	if err := WriteResponse(conn, res); err != nil {
		s.log.Warn().Err(err).Msg("write error")
		return
	}
	s.log.Info().
		Str("remote", conn.RemoteAddr().String()).
		Str("method", req.Method).
		Str("uri", req.URI).
		Int("status", res.Status).
		Msg("handled")
}

func handleGET(s *Server, req *Request) *Response {
	urlPath := strings.Trim(req.URI, "/")

	l, err := NewDirListing(s.root, urlPath)
	if err != nil {
		return ResponseNotFound()
	}
	body, err := l.HTML()
	if err != nil {
		s.log.Warn().Err(err).Str("uri", req.URI).Msg("listing error")
		return ResponseNotFound()
	}
	return NewResponse(200, HTTPHeader{"Content-Type": "text/html"}, []byte(body))
}

func handleNotImplemented(s *Server, req *Request) *Response {
	return ResponseNotImplemented()
}
