package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/osse101/QuestTown_Go/internal/content"
	"github.com/osse101/QuestTown_Go/internal/gamestate"
	"github.com/osse101/QuestTown_Go/internal/persistence"
	"github.com/osse101/QuestTown_Go/internal/session"
)

type testEnv struct {
	router   chi.Router
	sessions *session.Manager
	provider *persistence.MemoryProvider
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	provider := persistence.NewMemoryProvider()
	table := content.Default()
	sessions := session.NewManager(provider, table, session.Config{},
		gamestate.WithRand(func(int) int { return 0 }))
	h := NewGameHandler(sessions, table)

	r := chi.NewRouter()
	r.Get("/locations", h.HandleGetLocations)
	r.Get("/shop", h.HandleGetShop)
	r.Post("/players", h.HandleCreatePlayer)
	r.Route("/players/{playerID}", func(r chi.Router) {
		r.Get("/", h.HandleGetPlayer)
		r.Get("/shop", h.HandleGetPlayerShop)
		r.Post("/quest", h.HandleRequestQuest)
		r.Post("/quest/complete", h.HandleCompleteQuest)
		r.Post("/shop/buy", h.HandleBuyItem)
		r.Post("/purchase", h.HandlePurchaseItem)
		r.Post("/equip", h.HandleEquipItem)
		r.Get("/saves", h.HandleListSaves)
		r.Post("/saves/{slotID}", h.HandleSaveGame)
		r.Post("/saves/{slotID}/load", h.HandleLoadGame)
	})

	return &testEnv{router: r, sessions: sessions, provider: provider}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) createPlayer(t *testing.T, id string) {
	t.Helper()
	_, _, err := e.sessions.Create(context.Background(), id)
	require.NoError(t, err)
}

// completeQuests finishes n home quests for the player
func (e *testEnv) completeQuests(t *testing.T, id string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		w := e.do(t, http.MethodPost, "/players/"+id+"/quest", QuestRequest{Location: "home"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		w = e.do(t, http.MethodPost, "/players/"+id+"/quest/complete", nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}
}

func readJSON[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}
