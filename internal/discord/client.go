package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/osse101/QuestTown_Go/internal/domain"
	"github.com/osse101/QuestTown_Go/internal/handler"
)

const (
	apiPrefix         = "/api/v1"
	defaultTimeout    = 10 * time.Second
	defaultMaxRetries = 3
	defaultRetryDelay = 500 * time.Millisecond
)

// APIError is a non-2xx answer from the game API
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error: %s", e.Message)
}

// APIClient talks to the QuestTown HTTP API
type APIClient struct {
	BaseURL    string
	Client     *http.Client
	APIKey     string
	MaxRetries int
	RetryDelay time.Duration
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		BaseURL:    baseURL,
		Client:     &http.Client{Timeout: defaultTimeout},
		APIKey:     apiKey,
		MaxRetries: defaultMaxRetries,
		RetryDelay: defaultRetryDelay,
	}
}

// do sends a request and decodes a 2xx JSON answer into out. Server
// errors and transport failures are retried with exponential backoff.
func (c *APIClient) do(ctx context.Context, method, path string, body, out interface{}) error {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return fmt.Errorf("failed to marshal body: %w", err)
		}
	}

	target := c.BaseURL + path
	var lastErr error
	for attempt := 0; attempt <= c.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := c.RetryDelay * time.Duration(1<<uint(attempt-1))
			slog.Info(LogMsgRetrying, "attempt", attempt, "path", path, "delay", delay)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}

		req, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(payload))
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		if c.APIKey != "" {
			req.Header.Set("X-API-Key", c.APIKey)
		}

		resp, err := c.Client.Do(req)
		if err != nil {
			lastErr = err
			slog.Warn(LogMsgRequestFailed, "error", err, "attempt", attempt)
			continue
		}

		if resp.StatusCode >= http.StatusInternalServerError {
			resp.Body.Close()
			lastErr = fmt.Errorf("server error: %d", resp.StatusCode)
			slog.Warn(LogMsgRequestFailed, "status", resp.StatusCode, "attempt", attempt)
			continue
		}

		return decodeResponse(resp, out)
	}

	return fmt.Errorf("max retries exceeded: %w", lastErr)
}

func decodeResponse(resp *http.Response, out interface{}) error {
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var errResp handler.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error != "" {
			return &APIError{Status: resp.StatusCode, Message: errResp.Error}
		}
		return &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func playerPath(playerID string, parts ...string) string {
	p := apiPrefix + "/players/" + url.PathEscape(playerID)
	for _, part := range parts {
		p += "/" + url.PathEscape(part)
	}
	return p
}

// EnsurePlayer registers the player if needed and returns their state
func (c *APIClient) EnsurePlayer(ctx context.Context, playerID string) (handler.PlayerView, error) {
	var resp handler.CreatePlayerResponse
	err := c.do(ctx, http.MethodPost, apiPrefix+"/players", handler.CreatePlayerRequest{PlayerID: playerID}, &resp)
	return resp.Player, err
}

// GetLocations lists the quest locations
func (c *APIClient) GetLocations(ctx context.Context) ([]handler.LocationView, error) {
	var out []handler.LocationView
	err := c.do(ctx, http.MethodGet, apiPrefix+"/locations", nil, &out)
	return out, err
}

// RequestQuest draws a quest at location
func (c *APIClient) RequestQuest(ctx context.Context, playerID, location string) (domain.Quest, error) {
	var resp handler.QuestResponse
	err := c.do(ctx, http.MethodPost, playerPath(playerID, "quest"), handler.QuestRequest{Location: location}, &resp)
	return resp.Quest, err
}

// CompleteQuest pays out the active quest
func (c *APIClient) CompleteQuest(ctx context.Context, playerID string) (handler.CompleteQuestResponse, error) {
	var resp handler.CompleteQuestResponse
	err := c.do(ctx, http.MethodPost, playerPath(playerID, "quest", "complete"), nil, &resp)
	return resp, err
}

// GetShop returns the shop as seen by the player
func (c *APIClient) GetShop(ctx context.Context, playerID string) (handler.PlayerShopResponse, error) {
	var resp handler.PlayerShopResponse
	err := c.do(ctx, http.MethodGet, playerPath(playerID, "shop"), nil, &resp)
	return resp, err
}

// BuyItem buys a catalog entry
func (c *APIClient) BuyItem(ctx context.Context, playerID, itemID string) (handler.BuyItemResponse, error) {
	var resp handler.BuyItemResponse
	err := c.do(ctx, http.MethodPost, playerPath(playerID, "shop", "buy"), handler.BuyItemRequest{ItemID: itemID}, &resp)
	return resp, err
}

// EquipItem changes the avatar
func (c *APIClient) EquipItem(ctx context.Context, playerID, slot, item string) (handler.PlayerView, error) {
	var view handler.PlayerView
	err := c.do(ctx, http.MethodPost, playerPath(playerID, "equip"), handler.EquipRequest{Slot: slot, Item: item}, &view)
	return view, err
}

// ListSaves summarizes the player's save slots
func (c *APIClient) ListSaves(ctx context.Context, playerID string) ([]domain.SaveSlotSummary, error) {
	var out []domain.SaveSlotSummary
	err := c.do(ctx, http.MethodGet, playerPath(playerID, "saves"), nil, &out)
	return out, err
}

// SaveGame writes the player's progress to a slot
func (c *APIClient) SaveGame(ctx context.Context, playerID, slotID string) (handler.SaveGameResponse, error) {
	var resp handler.SaveGameResponse
	err := c.do(ctx, http.MethodPost, playerPath(playerID, "saves", slotID), nil, &resp)
	return resp, err
}

// LoadGame restores a slot
func (c *APIClient) LoadGame(ctx context.Context, playerID, slotID string) (handler.LoadGameResponse, error) {
	var resp handler.LoadGameResponse
	err := c.do(ctx, http.MethodPost, playerPath(playerID, "saves", slotID, "load"), nil, &resp)
	return resp, err
}

// Healthz reports whether the API answers its liveness probe
func (c *APIClient) Healthz(ctx context.Context) bool {
	return c.do(ctx, http.MethodGet, "/healthz", nil, nil) == nil
}

// IsStatus reports whether err is an APIError with the given status
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}
