// QuestTown API server.
//
// @title QuestTown API
// @version 1.0
// @description Quest, shop, wardrobe and save slot endpoints for QuestTown players.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/QuestTown_Go/internal/config"
	"github.com/osse101/QuestTown_Go/internal/content"
	"github.com/osse101/QuestTown_Go/internal/event"
	"github.com/osse101/QuestTown_Go/internal/gamestate"
	"github.com/osse101/QuestTown_Go/internal/handler"
	"github.com/osse101/QuestTown_Go/internal/metrics"
	"github.com/osse101/QuestTown_Go/internal/persistence"
	"github.com/osse101/QuestTown_Go/internal/server"
	"github.com/osse101/QuestTown_Go/internal/session"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("QuestTown server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	initLogger(cfg)

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		return err
	}
	for _, w := range warnings {
		slog.Warn(w)
	}

	table, err := loadContent(cfg.ContentPath)
	if err != nil {
		return err
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider, err := persistence.Open(ctx, cfg.Persistence())
	if err != nil {
		return err
	}
	defer func() {
		if err := provider.Close(); err != nil {
			slog.Warn("Failed to close storage", "error", err)
		}
	}()

	bus := event.NewMemoryBus()
	metrics.NewEventMetricsCollector().Register(bus)

	opts := []gamestate.Option{
		gamestate.WithEventBus(bus),
		gamestate.WithLocation(loc),
	}
	if !cfg.EquipRequiresOwnership {
		opts = append(opts, gamestate.WithLenientEquip())
	}

	sessions := session.NewManager(provider, table, session.Config{
		CacheSize: cfg.SessionCacheSize,
		TTL:       cfg.SessionTTL,
	}, opts...)

	srv := server.NewServer(server.Config{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
	}, sessions)

	slog.Info("QuestTown starting",
		"version", handler.Version,
		"content_version", table.Version(),
		"storage", cfg.StorageBackend,
		"locations", len(table.Locations()))

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Stop(shutdownCtx)
}

func loadContent(path string) (*content.Table, error) {
	if path == "" {
		return content.Default(), nil
	}
	return content.Load(path)
}
