package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mistakeknot/significado/internal/auth"
	"github.com/mistakeknot/significado/internal/config"
	"github.com/mistakeknot/significado/internal/logging"
	"github.com/mistakeknot/significado/internal/storage"
	"github.com/mistakeknot/significado/internal/storage/redis"
	"github.com/mistakeknot/significado/internal/storage/sqlite"
	"github.com/mistakeknot/significado/pkg/embedded"
)

func serveCmd() *cobra.Command {
	var envFile string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var files []string
			if envFile != "" {
				files = append(files, envFile)
			}
			cfg, err := config.Load(files...)
			if err != nil {
				return err
			}
			log, err := logging.New(cfg.LogLevel, cfg.LogFile)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer log.Sync()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, log)
		},
	}
	cmd.Flags().StringVar(&envFile, "env-file", "", "dotenv file to load (default .env)")
	return cmd
}

func serve(ctx context.Context, cfg config.Config, log *zap.Logger) error {
	store, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	keysPath := cfg.KeysFile
	if keysPath == "" {
		keysPath = auth.ResolveKeysPath()
	}
	ring, err := auth.LoadKeyring(keysPath)
	if err != nil {
		store.Close()
		return fmt.Errorf("auth init: %w", err)
	}

	srv, err := embedded.New(embedded.Config{
		Addr:          cfg.Addr,
		SocketPath:    cfg.Socket,
		Store:         store,
		Keyring:       ring,
		Logger:        log,
		SearchTTL:     cfg.SearchTTL,
		SweepInterval: cfg.SweepInterval,
	})
	if err != nil {
		return err
	}
	if err := srv.Start(ctx); err != nil {
		return err
	}
	log.Info("significado serving",
		zap.String("addr", srv.Addr()),
		zap.String("store", cfg.Store),
		zap.String("keys_file", keysPath))

	var serveErr error
	select {
	case <-ctx.Done():
	case serveErr = <-srv.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil && serveErr == nil {
		serveErr = err
	}
	return serveErr
}

func openStore(ctx context.Context, cfg config.Config, log *zap.Logger) (storage.Store, error) {
	switch cfg.Store {
	case config.StoreMemory:
		return storage.NewInMemory(), nil
	case config.StoreRedis:
		return redis.New(ctx, redis.Config{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			TTL:      cfg.SearchTTL,
		}, log.Named("redis"))
	default:
		st, err := sqlite.New(cfg.DBPath, sqlite.WithLogger(log.Named("sqlite")))
		if err != nil {
			return nil, fmt.Errorf("store init: %w", err)
		}
		return sqlite.NewResilient(st, log), nil
	}
}
