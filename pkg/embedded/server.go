// Package embedded runs a significado server inside another process.
package embedded

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/mistakeknot/significado/internal/auth"
	httpapi "github.com/mistakeknot/significado/internal/http"
	"github.com/mistakeknot/significado/internal/server"
	"github.com/mistakeknot/significado/internal/storage"
	"github.com/mistakeknot/significado/internal/storage/sqlite"
	"github.com/mistakeknot/significado/internal/ws"
)

// MemoryDB selects a throwaway in-memory SQLite database.
const MemoryDB = ":memory:"

type Config struct {
	// Addr defaults to 127.0.0.1:7340. Use port 0 for an ephemeral port.
	Addr       string
	SocketPath string

	// Store overrides DBPath when set. The server closes it on Stop.
	Store storage.Store
	// DBPath defaults to ~/.significado/significado.db.
	DBPath string

	// Keyring enables key auth; nil serves everyone.
	Keyring *auth.Keyring
	Logger  *zap.Logger

	SearchTTL     time.Duration
	SweepInterval time.Duration
}

type Server struct {
	cfg     Config
	log     *zap.Logger
	store   storage.Store
	hub     *ws.Hub
	sweeper *storage.Sweeper
	srv     *server.Server

	mu      sync.Mutex
	started bool
	done    chan error
}

func New(cfg Config) (*Server, error) {
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:7340"
	}
	if cfg.SearchTTL <= 0 {
		cfg.SearchTTL = 24 * time.Hour
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = 10 * time.Minute
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	store := cfg.Store
	if store == nil {
		var err error
		if store, err = openSQLite(cfg.DBPath, log); err != nil {
			return nil, err
		}
	}

	hub := ws.NewHub(log.Named("ws"))
	svc := httpapi.NewService(store, log.Named("http")).WithBroadcaster(hub)
	var authMW func(http.Handler) http.Handler
	if cfg.Keyring != nil {
		authMW = auth.Middleware(cfg.Keyring)
	}
	router := httpapi.NewRouter(svc, hub.Handler(), authMW)

	srv, err := server.New(server.Config{
		Addr:       cfg.Addr,
		SocketPath: cfg.SocketPath,
		Handler:    router,
		Logger:     log,
	})
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("init server: %w", err)
	}

	return &Server{
		cfg:     cfg,
		log:     log,
		store:   store,
		hub:     hub,
		sweeper: storage.NewSweeper(store, hub, log.Named("sweeper"), cfg.SweepInterval, cfg.SearchTTL),
		srv:     srv,
	}, nil
}

func openSQLite(path string, log *zap.Logger) (storage.Store, error) {
	if path == MemoryDB {
		st, err := sqlite.NewInMemory(sqlite.WithLogger(log))
		if err != nil {
			return nil, fmt.Errorf("init store: %w", err)
		}
		return sqlite.NewResilient(st, log), nil
	}
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		path = filepath.Join(home, ".significado", "significado.db")
	}
	st, err := sqlite.New(path, sqlite.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("init store: %w", err)
	}
	return sqlite.NewResilient(st, log), nil
}

// Start serves in the background and begins sweeping idle searches.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return nil
	}
	s.started = true
	s.done = make(chan error, 1)
	s.sweeper.Start(ctx)
	go func() {
		err := s.srv.Start()
		if err != nil {
			s.log.Error("server error", zap.Error(err))
		}
		s.done <- err
	}()
	return nil
}

// Done yields the serve error, or nil after Stop.
func (s *Server) Done() <-chan error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done
}

// Stop shuts the server down and closes the store.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	started := s.started
	s.started = false
	s.mu.Unlock()

	errs := []error{s.srv.Shutdown(ctx)}
	if started {
		s.sweeper.Stop()
	}
	errs = append(errs, s.store.Close())
	return errors.Join(errs...)
}

func (s *Server) Addr() string { return s.srv.Addr() }

func (s *Server) URL() string { return "http://" + s.srv.Addr() }

// Store gives direct access to persisted searches.
func (s *Server) Store() storage.Store { return s.store }
