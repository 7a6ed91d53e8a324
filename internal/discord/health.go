package discord

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
)

// HealthStatus represents the bot's health status
type HealthStatus struct {
	Status           string    `json:"status"`
	Uptime           string    `json:"uptime"`
	Connected        bool      `json:"connected"`
	CommandsReceived int64     `json:"commands_received"`
	LastCommandTime  time.Time `json:"last_command_time,omitempty"`
	APIReachable     bool      `json:"api_reachable"`
}

var (
	startTime       = time.Now()
	commandCounter  int64
	lastCommandMu   sync.Mutex
	lastCommandTime time.Time
)

// RecordCommand increments the command counter
func RecordCommand() {
	atomic.AddInt64(&commandCounter, 1)
	lastCommandMu.Lock()
	lastCommandTime = time.Now()
	lastCommandMu.Unlock()
}

func lastCommand() time.Time {
	lastCommandMu.Lock()
	defer lastCommandMu.Unlock()
	return lastCommandTime
}

// HTTPServer serves the bot's health endpoint
type HTTPServer struct {
	server *http.Server
	bot    *Bot
}

// NewHTTPServer creates a new HTTP server
func NewHTTPServer(port string, bot *Bot) *HTTPServer {
	mux := http.NewServeMux()

	srv := &HTTPServer{
		server: &http.Server{
			Addr:              ":" + port,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		bot: bot,
	}

	mux.HandleFunc("/healthz", srv.HandleHealth)
	return srv
}

// Start starts the HTTP server
func (s *HTTPServer) Start() {
	go func() {
		slog.Info(LogMsgHealthServer, "addr", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error(LogMsgHealthServerError, "error", err)
		}
	}()
}

// Stop stops the HTTP server
func (s *HTTPServer) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.server.Shutdown(ctx); err != nil {
		slog.Error(LogMsgHealthServerError, "error", err)
	}
}

// HandleHealth returns the bot's health status
func (s *HTTPServer) HandleHealth(w http.ResponseWriter, r *http.Request) {
	connected := s.bot.Session != nil && s.bot.Session.DataReady

	apiReachable := false
	if s.bot.Client != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		apiReachable = s.bot.Client.Healthz(ctx)
		cancel()
	}

	health := HealthStatus{
		Status:           "healthy",
		Uptime:           time.Since(startTime).String(),
		Connected:        connected,
		CommandsReceived: atomic.LoadInt64(&commandCounter),
		LastCommandTime:  lastCommand(),
		APIReachable:     apiReachable,
	}

	w.Header().Set("Content-Type", "application/json")
	if !connected || !apiReachable {
		health.Status = "degraded"
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	_ = json.NewEncoder(w).Encode(health)
}
