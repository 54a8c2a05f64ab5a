// Package wsbridge exposes the equity engine, luck scorer, and bankroll
// simulator over a websocket so that long-running browser or bot clients
// can request computations without shelling out to the CLI. Its shape is
// grounded on the teacher's internal/server (Server/Connection split,
// /ws upgrade handler, ping/pong keepalive).
package wsbridge

import (
	"context"
	"io"
	"net"
	"net/http"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/lox/pokercore/internal/config"
)

// Server serves the wsbridge protocol over a single "/ws" route plus a
// "/health" liveness check.
type Server struct {
	upgrader   websocket.Upgrader
	mux        *http.ServeMux
	logger     *log.Logger
	defaults   *config.Config
	httpServer *http.Server
	routesOnce sync.Once
}

// New builds a Server. A nil logger falls back to a discarding logger; a
// nil defaults falls back to config.Default(). defaults supplies the
// equity worker cap and bankroll fallback values for requests that omit
// them, mirroring the CLI's own config.Load-backed defaults.
func New(logger *log.Logger, defaults *config.Config) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if defaults == nil {
		defaults = config.Default()
	}
	return &Server{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		mux:      http.NewServeMux(),
		logger:   logger,
		defaults: defaults,
	}
}

func (s *Server) ensureRoutes() {
	s.routesOnce.Do(func() {
		s.mux.HandleFunc("/ws", s.handleWebSocket)
		s.mux.HandleFunc("/health", s.handleHealth)
	})
}

// Start listens on addr and serves until the process exits or Shutdown is
// called.
func (s *Server) Start(addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(listener)
}

// Serve serves the bridge protocol on an existing listener.
func (s *Server) Serve(listener net.Listener) error {
	s.ensureRoutes()
	s.httpServer = &http.Server{Handler: s.mux}
	s.logger.Info("wsbridge starting", "addr", listener.Addr().String())
	return s.httpServer.Serve(listener)
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("upgrade failed", "error", err)
		return
	}
	c := newConnection(conn, s.logger, s.defaults)
	c.start()
}
