package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"
)

type Config struct {
	Addr       string
	SocketPath string
	Handler    http.Handler
	Logger     *zap.Logger
}

// Server serves one handler on TCP and, optionally, a unix socket. Both
// listeners are bound by New so a bad address fails early.
type Server struct {
	cfg    Config
	log    *zap.Logger
	http   *http.Server
	tcpLn  net.Listener
	unix   *http.Server
	unixLn net.Listener
}

func New(cfg Config) (*Server, error) {
	if cfg.Addr == "" {
		return nil, errors.New("addr required")
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	h := cfg.Handler
	if h == nil {
		h = http.NotFoundHandler()
	}
	errLog, err := zap.NewStdLogAt(log.Named("http"), zap.WarnLevel)
	if err != nil {
		return nil, fmt.Errorf("http error log: %w", err)
	}
	newHTTP := func() *http.Server {
		return &http.Server{Handler: h, ReadHeaderTimeout: 10 * time.Second, ErrorLog: errLog}
	}

	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return nil, fmt.Errorf("tcp listen: %w", err)
	}
	s := &Server{cfg: cfg, log: log, http: newHTTP(), tcpLn: ln}

	if cfg.SocketPath != "" {
		// stale socket from a previous run
		if err := os.Remove(cfg.SocketPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			ln.Close()
			return nil, fmt.Errorf("remove stale socket: %w", err)
		}
		uln, err := net.Listen("unix", cfg.SocketPath)
		if err != nil {
			ln.Close()
			return nil, fmt.Errorf("unix listen: %w", err)
		}
		if err := os.Chmod(cfg.SocketPath, 0660); err != nil {
			ln.Close()
			uln.Close()
			return nil, fmt.Errorf("chmod socket: %w", err)
		}
		s.unixLn = uln
		s.unix = newHTTP()
	}
	return s, nil
}

// Start blocks serving TCP until Shutdown. It returns nil after a clean
// shutdown.
func (s *Server) Start() error {
	if s.unixLn != nil {
		go func() {
			if err := s.unix.Serve(s.unixLn); err != nil && !errors.Is(err, http.ErrServerClosed) {
				s.log.Error("unix socket server", zap.Error(err))
			}
		}()
		s.log.Info("listening", zap.String("socket", s.cfg.SocketPath))
	}
	s.log.Info("listening", zap.String("addr", s.Addr()))
	if err := s.http.Serve(s.tcpLn); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	var firstErr error
	if s.unix != nil {
		if err := s.unix.Shutdown(ctx); err != nil {
			firstErr = err
		}
		os.Remove(s.cfg.SocketPath)
	}
	if err := s.http.Shutdown(ctx); err != nil && firstErr == nil {
		firstErr = err
	}
	// listeners Serve never took over are still open
	_ = s.tcpLn.Close()
	if s.unixLn != nil {
		_ = s.unixLn.Close()
	}
	s.log.Info("server stopped")
	return firstErr
}

// Addr is the bound TCP address, useful when Config.Addr used port 0.
func (s *Server) Addr() string {
	return s.tcpLn.Addr().String()
}

func (s *Server) SocketPath() string {
	return s.cfg.SocketPath
}
