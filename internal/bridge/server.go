package bridge

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"time"

	"github.com/framehaus/cadbridge/internal/protocol"
)

// Server accepts one JSON command per connection and processes commands
// strictly serially: the native API is single-writer, so the accept
// loop is the serialization point.
type Server struct {
	dispatcher *Dispatcher
	timeout    time.Duration
	log        *slog.Logger
	ln         net.Listener
}

// NewServer wraps a dispatcher in a TCP server. timeout bounds each
// connection's read and write.
func NewServer(d *Dispatcher, timeout time.Duration, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{dispatcher: d, timeout: timeout, log: logger}
}

// Listen binds the server to addr.
func (s *Server) Listen(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.ln = ln
	s.log.Info("bridge listening", "addr", ln.Addr().String(), "commands", len(s.dispatcher.handlers))
	return nil
}

// Addr returns the bound listen address. Only valid after Listen.
func (s *Server) Addr() net.Addr {
	return s.ln.Addr()
}

// Serve runs the accept loop until ctx is canceled. It must be called
// after Listen.
func (s *Server) Serve(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			s.ln.Close()
		case <-done:
		}
	}()

	for {
		conn, err := s.ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				s.log.Info("bridge shutting down")
				return nil
			}
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			s.log.Error("accept failed", "error", err)
			continue
		}
		s.handleConn(ctx, conn)
	}
}

func (s *Server) handleConn(ctx context.Context, conn net.Conn) {
	defer conn.Close()

	deadline := time.Now().Add(s.timeout)
	if err := conn.SetDeadline(deadline); err != nil {
		s.log.Error("set deadline failed", "error", err)
		return
	}

	req, err := protocol.ReadRequest(conn)
	if err != nil {
		s.log.Warn("bad request", "remote", conn.RemoteAddr().String(), "error", err)
		// Best effort: tell the peer what went wrong.
		_ = protocol.WriteResponse(conn, protocol.Errorf("invalid request: %v", err))
		return
	}

	start := time.Now()
	resp := s.dispatcher.Dispatch(ctx, req)
	s.log.Info("command handled",
		"command", req.Command,
		"status", resp.Status,
		"duration", time.Since(start),
	)

	if err := protocol.WriteResponse(conn, resp); err != nil {
		s.log.Error("write response failed", "command", req.Command, "error", err)
	}
}
