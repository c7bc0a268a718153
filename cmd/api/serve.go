package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"paws-sync/internal/adapters/auth/jwtverifier"
	"paws-sync/internal/adapters/auth/odin"
	"paws-sync/internal/adapters/blobstore/filesystem"
	"paws-sync/internal/adapters/breeds/thedogapi"
	pg "paws-sync/internal/adapters/storage/postgres"
	"paws-sync/internal/platform/config"
	"paws-sync/internal/platform/livestream"
	"paws-sync/internal/platform/logger"
	"paws-sync/internal/ports/auth"
	"paws-sync/internal/router"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serve(ctx, cfg)
	},
}

func serve(ctx context.Context, cfg config.Config) error {
	log := cfg.Logger()

	verifier, err := buildVerifier(cfg.Auth, log)
	if err != nil {
		return err
	}

	opts := router.Options{
		AuthVerifier: verifier,
		Logger:       log,
		Stream: &livestream.Settings{
			HandshakeTimeout: livestream.DefaultSettings().HandshakeTimeout,
			WriteTimeout:     cfg.Stream.WriteTimeout,
			ReadTimeout:      cfg.Stream.ReadTimeout,
			PingTimeout:      cfg.Stream.PingTimeout,
		},
	}

	if cfg.Database.DSN != "" {
		db, err := pg.Open(cfg.Database.DSN, pg.PoolOptions{})
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer db.Close()
		if err := pg.Migrate(ctx, db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		store := pg.NewStore(db, log)
		defer store.Close()
		opts.Store = store
		log.Info("using postgres store", nil)
	} else {
		log.Warn("DB_DSN not set, using in-memory store", nil)
	}

	if cfg.Blobs.Dir != "" {
		blobs, err := filesystem.NewStore(cfg.Blobs.Dir, cfg.Blobs.BaseURL)
		if err != nil {
			return fmt.Errorf("blob store: %w", err)
		}
		opts.Blobs = blobs
	}

	catalog, err := thedogapi.New(thedogapi.Config{
		BaseURL: cfg.DogAPI.BaseURL,
		APIKey:  cfg.DogAPI.APIKey,
		Timeout: cfg.DogAPI.Timeout,
	}, log)
	if err != nil {
		return fmt.Errorf("breed catalog: %w", err)
	}
	opts.Catalog = catalog

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router.NewRouter(opts),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// buildVerifier: JWT si hay secreto, Odin si está configurado, nil (modo dev) si no.
func buildVerifier(cfg config.AuthConfig, log logger.Logger) (auth.AuthVerifier, error) {
	if cfg.JWTSecret != "" {
		log.Info("auth: jwt", nil)
		return jwtverifier.New(jwtverifier.Config{Secret: cfg.JWTSecret, Issuer: cfg.JWTIssuer}), nil
	}
	if cfg.OdinBaseURL != "" {
		c, err := odin.NewClient(odin.Config{BaseURL: cfg.OdinBaseURL, APIKey: cfg.OdinAPIKey})
		if err != nil {
			return nil, fmt.Errorf("odin client: %w", err)
		}
		log.Info("auth: odin", nil)
		return odin.NewVerifier(c), nil
	}
	log.Warn("auth: dev mode (X-Debug-User-ID)", nil)
	return nil, nil
}
