package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/QuestTown_Go/internal/handler"
	"github.com/osse101/QuestTown_Go/internal/metrics"
	"github.com/osse101/QuestTown_Go/internal/session"
)

// Config holds the HTTP surface settings
type Config struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	MaxBodyBytes   int64          // zero uses DefaultMaxBodyBytes
	Limits         ActivityLimits // zero uses DefaultActivityLimits
}

// Server is the QuestTown HTTP API
type Server struct {
	httpServer *http.Server
	sessions   *session.Manager
}

// NewServer builds the router over sessions
func NewServer(cfg Config, sessions *session.Manager) *Server {
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if cfg.Limits == (ActivityLimits{}) {
		cfg.Limits = DefaultActivityLimits()
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           newRouter(cfg, sessions),
			ReadHeaderTimeout: DefaultReadHeaderTimeout,
		},
		sessions: sessions,
	}
}

func newRouter(cfg Config, sessions *session.Manager) chi.Router {
	r := chi.NewRouter()
	detector := NewActivityDetector(cfg.Limits)

	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(RateLimitMiddleware(cfg.TrustedProxies, detector))
	r.Use(AuthMiddleware(cfg.APIKey, cfg.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(cfg.MaxBodyBytes))
	r.Use(metrics.Middleware)

	table := sessions.Table()

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(sessions))
	r.Get("/version", handler.HandleVersion(table.Version()))
	r.Handle("/metrics", promhttp.Handler())

	game := handler.NewGameHandler(sessions, table)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/locations", game.HandleGetLocations)
		r.Get("/shop", game.HandleGetShop)

		r.Post("/players", game.HandleCreatePlayer)
		r.Route("/players/{"+handler.ParamPlayerID+"}", func(r chi.Router) {
			r.Get("/", game.HandleGetPlayer)
			r.Get("/shop", game.HandleGetPlayerShop)
			r.Post("/shop/buy", game.HandleBuyItem)
			r.Post("/purchase", game.HandlePurchaseItem)
			r.Post("/equip", game.HandleEquipItem)

			r.Post("/quest", game.HandleRequestQuest)
			r.Post("/quest/complete", game.HandleCompleteQuest)

			r.Get("/saves", game.HandleListSaves)
			r.Post("/saves/{"+handler.ParamSlotID+"}", game.HandleSaveGame)
			r.Post("/saves/{"+handler.ParamSlotID+"}/load", game.HandleLoadGame)
		})
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start listens until the server is stopped
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr, "cached_sessions", s.sessions.Len())
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
