package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/QuestTown_Go/internal/domain"
	"github.com/osse101/QuestTown_Go/internal/gamestate"
)

func TestHandleCreatePlayer(t *testing.T) {
	t.Run("Generated ID", func(t *testing.T) {
		env := newTestEnv(t)

		w := env.do(t, http.MethodPost, "/players", nil)
		require.Equal(t, http.StatusCreated, w.Code)

		resp := readJSON[CreatePlayerResponse](t, w)
		assert.True(t, resp.Created)
		assert.NotEmpty(t, resp.Player.PlayerID)
		assert.Equal(t, domain.DefaultLevel, resp.Player.Level)
		assert.Equal(t, domain.DefaultAvatar(), resp.Player.Avatar)
		assert.False(t, resp.Player.ShopUnlocked)
	})

	t.Run("Existing ID Keeps Progress", func(t *testing.T) {
		env := newTestEnv(t)
		env.createPlayer(t, "alice")
		env.completeQuests(t, "alice", 1)

		w := env.do(t, http.MethodPost, "/players", CreatePlayerRequest{PlayerID: "alice"})
		require.Equal(t, http.StatusOK, w.Code)

		resp := readJSON[CreatePlayerResponse](t, w)
		assert.False(t, resp.Created)
		assert.Equal(t, 1, resp.Player.CompletedTasks)
	})

	t.Run("Invalid ID", func(t *testing.T) {
		env := newTestEnv(t)

		w := env.do(t, http.MethodPost, "/players", CreatePlayerRequest{PlayerID: "no spaces"})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		resp := readJSON[ValidationErrorResponse](t, w)
		assert.Contains(t, resp.Fields, "playerid")
	})

	t.Run("Malformed Body", func(t *testing.T) {
		env := newTestEnv(t)

		w := env.do(t, http.MethodPost, "/players", "{not json")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidRequest)
	})
}

func TestHandleGetPlayer(t *testing.T) {
	env := newTestEnv(t)
	env.createPlayer(t, "alice")

	w := env.do(t, http.MethodGet, "/players/alice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	view := readJSON[PlayerView](t, w)
	assert.Equal(t, "alice", view.PlayerID)
	assert.Nil(t, view.Quest)

	w = env.do(t, http.MethodGet, "/players/bob", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgPlayerNotFoundError)
}

func TestHandleGetLocations(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/locations", nil)
	require.Equal(t, http.StatusOK, w.Code)

	locations := readJSON[[]LocationView](t, w)
	require.Len(t, locations, 3)
	assert.Equal(t, "home", locations[0].Key)
	assert.Equal(t, domain.Rewards{XP: 6, Coins: 3}, locations[0].Rewards)
	assert.Equal(t, 5, locations[0].QuestCount)
}

func TestHandleQuestFlow(t *testing.T) {
	env := newTestEnv(t)
	env.createPlayer(t, "alice")

	w := env.do(t, http.MethodPost, "/players/alice/quest/complete", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgNoActiveQuestError)

	w = env.do(t, http.MethodPost, "/players/alice/quest", QuestRequest{Location: "gym"})
	require.Equal(t, http.StatusOK, w.Code)
	quest := readJSON[QuestResponse](t, w).Quest
	assert.Equal(t, "gym", quest.Location)
	assert.Equal(t, "Do 3x12 squats.", quest.Text)

	w = env.do(t, http.MethodGet, "/players/alice", nil)
	view := readJSON[PlayerView](t, w)
	require.NotNil(t, view.Quest)
	assert.Equal(t, quest, *view.Quest)

	w = env.do(t, http.MethodPost, "/players/alice/quest/complete", nil)
	require.Equal(t, http.StatusOK, w.Code)
	done := readJSON[CompleteQuestResponse](t, w)
	assert.Equal(t, domain.Rewards{XP: 10, Coins: 5}, done.Rewards)
	assert.Equal(t, 10, done.Player.XP)
	assert.Equal(t, 5, done.Player.Coins)
	assert.Equal(t, 1, done.Player.CompletedTasks)
	assert.Nil(t, done.Player.Quest)
	assert.Equal(t, "home", done.NextScreen)
}

func TestHandleRequestQuest_Errors(t *testing.T) {
	env := newTestEnv(t)
	env.createPlayer(t, "alice")

	tests := []struct {
		name           string
		body           interface{}
		expectedStatus int
		expectedBody   string
	}{
		{"Unknown Location", QuestRequest{Location: "moon"}, http.StatusBadRequest, ErrMsgInvalidLocationError},
		{"Missing Location", QuestRequest{}, http.StatusBadRequest, ErrMsgInvalidRequestSummary},
		{"Empty Body", nil, http.StatusBadRequest, ErrMsgInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(t, http.MethodPost, "/players/alice/quest", tt.body)
			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestHandleShop(t *testing.T) {
	env := newTestEnv(t)
	env.createPlayer(t, "alice")

	w := env.do(t, http.MethodGet, "/shop", nil)
	require.Equal(t, http.StatusOK, w.Code)
	catalog := readJSON[ShopCatalogResponse](t, w)
	assert.Equal(t, 5, catalog.UnlockThreshold)
	assert.Len(t, catalog.Items, 2)

	w = env.do(t, http.MethodPost, "/players/alice/shop/buy", BuyItemRequest{ItemID: "shirt_blue"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgShopLockedError)

	env.completeQuests(t, "alice", 5)

	w = env.do(t, http.MethodGet, "/players/alice/shop", nil)
	require.Equal(t, http.StatusOK, w.Code)
	shop := readJSON[PlayerShopResponse](t, w)
	assert.True(t, shop.Unlocked)
	assert.Equal(t, 15, shop.Coins)
	require.Len(t, shop.Offers, 2)
	assert.True(t, shop.Offers[0].CanBuy)
	assert.False(t, shop.Offers[0].Owned)

	w = env.do(t, http.MethodPost, "/players/alice/shop/buy", BuyItemRequest{ItemID: "shirt_blue"})
	require.Equal(t, http.StatusOK, w.Code)
	bought := readJSON[BuyItemResponse](t, w)
	assert.Equal(t, "blue", bought.Item.Item)
	assert.Equal(t, 5, bought.Player.Coins)
	assert.Equal(t, []string{"red", "blue"}, bought.Player.Inventory["shirts"])

	w = env.do(t, http.MethodPost, "/players/alice/shop/buy", BuyItemRequest{ItemID: "shirt_blue"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgAlreadyOwnedError)

	w = env.do(t, http.MethodPost, "/players/alice/shop/buy", BuyItemRequest{ItemID: "shirt_green"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgNotEnoughCoinsError)

	w = env.do(t, http.MethodPost, "/players/alice/shop/buy", BuyItemRequest{ItemID: "hat"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandlePurchaseItem(t *testing.T) {
	env := newTestEnv(t)
	env.createPlayer(t, "alice")
	env.completeQuests(t, "alice", 2)

	tests := []struct {
		name      string
		req       PurchaseRequest
		completed bool
		outcome   string
		coins     int
	}{
		{"Too Expensive", PurchaseRequest{Slot: "shirts", Item: "blue", Cost: 10}, false, "insufficient_funds", 6},
		{"Negative Cost", PurchaseRequest{Slot: "shirts", Item: "blue", Cost: -1}, false, "invalid_cost", 6},
		{"Affordable", PurchaseRequest{Slot: "shirts", Item: "blue", Cost: 4}, true, "completed", 2},
		{"Already Owned", PurchaseRequest{Slot: "shirts", Item: "blue", Cost: 0}, false, "already_owned", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(t, http.MethodPost, "/players/alice/purchase", tt.req)
			require.Equal(t, http.StatusOK, w.Code)

			resp := readJSON[PurchaseResponse](t, w)
			assert.Equal(t, tt.completed, resp.Completed)
			assert.Equal(t, tt.outcome, resp.Outcome)
			assert.Equal(t, tt.coins, resp.Player.Coins)
		})
	}
}

func TestHandleEquipItem(t *testing.T) {
	env := newTestEnv(t)
	env.createPlayer(t, "alice")

	w := env.do(t, http.MethodPost, "/players/alice/equip", EquipRequest{Slot: "shirt", Item: "blue"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgItemNotOwnedError)

	w = env.do(t, http.MethodPost, "/players/alice/equip", EquipRequest{Slot: "shirt"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodPost, "/players/alice/purchase", PurchaseRequest{Slot: "shirts", Item: "blue", Cost: 0})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodPost, "/players/alice/equip", EquipRequest{Slot: "shirt", Item: "blue"})
	require.Equal(t, http.StatusOK, w.Code)
	view := readJSON[PlayerView](t, w)
	assert.Equal(t, "blue", view.Avatar["shirt"])
	assert.Equal(t, "black", view.Avatar["hair"])
}

func TestHandleSaveAndLoad(t *testing.T) {
	env := newTestEnv(t)
	env.createPlayer(t, "alice")

	w := env.do(t, http.MethodGet, "/players/alice/saves", nil)
	require.Equal(t, http.StatusOK, w.Code)
	slots := readJSON[[]domain.SaveSlotSummary](t, w)
	require.Len(t, slots, 3)
	for _, slot := range slots {
		assert.True(t, slot.Empty)
	}

	w = env.do(t, http.MethodPost, "/players/alice/saves/saveSlot2/load", nil)
	require.Equal(t, http.StatusOK, w.Code)
	empty := readJSON[LoadGameResponse](t, w)
	assert.False(t, empty.Loaded)
	assert.Equal(t, MsgEmptySlot, empty.Message)
	assert.Empty(t, empty.NextScreen)

	env.completeQuests(t, "alice", 1)

	w = env.do(t, http.MethodPost, "/players/alice/saves/saveSlot1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	saved := readJSON[SaveGameResponse](t, w)
	assert.Equal(t, "saveSlot1", saved.Slot.SlotID)
	assert.False(t, saved.Slot.Empty)
	assert.Equal(t, 6, saved.Slot.XP)
	assert.NotEmpty(t, saved.Slot.LastSave)

	env.completeQuests(t, "alice", 2)

	w = env.do(t, http.MethodPost, "/players/alice/saves/saveSlot1/load", nil)
	require.Equal(t, http.StatusOK, w.Code)
	loaded := readJSON[LoadGameResponse](t, w)
	assert.True(t, loaded.Loaded)
	assert.Equal(t, 6, loaded.Player.XP)
	assert.Equal(t, 1, loaded.Player.CompletedTasks)
	assert.Equal(t, "home", loaded.NextScreen)

	err := env.sessions.With(context.Background(), "alice", func(s *gamestate.Store) error {
		assert.Equal(t, 6, s.Record().XP)
		return nil
	})
	require.NoError(t, err)
}

func TestHandleSaveGame_InvalidSlot(t *testing.T) {
	env := newTestEnv(t)
	env.createPlayer(t, "alice")

	w := env.do(t, http.MethodPost, "/players/alice/saves/bad.slot", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleUnknownPlayer(t *testing.T) {
	env := newTestEnv(t)

	paths := []struct {
		method string
		path   string
		body   interface{}
	}{
		{http.MethodPost, "/players/ghost/quest", QuestRequest{Location: "home"}},
		{http.MethodPost, "/players/ghost/quest/complete", nil},
		{http.MethodPost, "/players/ghost/shop/buy", BuyItemRequest{ItemID: "shirt_blue"}},
		{http.MethodPost, "/players/ghost/purchase", PurchaseRequest{Slot: "shirts", Item: "blue"}},
		{http.MethodPost, "/players/ghost/equip", EquipRequest{Slot: "shirt", Item: "red"}},
		{http.MethodGet, "/players/ghost/saves", nil},
		{http.MethodPost, "/players/ghost/saves/saveSlot1", nil},
		{http.MethodPost, "/players/ghost/saves/saveSlot1/load", nil},
	}

	for _, p := range paths {
		t.Run(p.method+" "+p.path, func(t *testing.T) {
			w := env.do(t, p.method, p.path, p.body)
			assert.Equal(t, http.StatusNotFound, w.Code)
		})
	}

	_, err := env.provider.Load(context.Background(), domain.PlayerKey("ghost"))
	assert.ErrorIs(t, err, domain.ErrBlobNotFound)
}
