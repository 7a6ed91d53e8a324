package handler

import (
	"net/http"

	"github.com/osse101/QuestTown_Go/internal/domain"
	"github.com/osse101/QuestTown_Go/internal/gamestate"
)

// ShopCatalogResponse lists the catalog and the unlock requirement
type ShopCatalogResponse struct {
	UnlockThreshold int               `json:"unlock_threshold"`
	Items           []domain.ShopItem `json:"items"`
}

// ShopOffer is a catalog entry as seen by one player
type ShopOffer struct {
	domain.ShopItem
	Owned  bool `json:"owned"`
	CanBuy bool `json:"can_buy"`
}

// PlayerShopResponse is the shop as seen by one player
type PlayerShopResponse struct {
	Unlocked        bool        `json:"unlocked"`
	UnlockThreshold int         `json:"unlock_threshold"`
	Coins           int         `json:"coins"`
	Offers          []ShopOffer `json:"offers"`
}

// BuyItemRequest buys a catalog entry
type BuyItemRequest struct {
	ItemID string `json:"item_id" validate:"required,max=64,key"`
}

// BuyItemResponse reports a completed catalog purchase
type BuyItemResponse struct {
	Item   domain.ShopItem `json:"item"`
	Player PlayerView      `json:"player"`
}

// PurchaseRequest is a raw purchase with a caller-supplied price
type PurchaseRequest struct {
	Slot string `json:"slot" validate:"required,max=64,key"`
	Item string `json:"item" validate:"required,max=64,key"`
	Cost int    `json:"cost"`
}

// PurchaseResponse reports what a raw purchase did. A denied purchase is
// not an error; the record is simply left unchanged.
type PurchaseResponse struct {
	Completed bool       `json:"completed"`
	Outcome   string     `json:"outcome"`
	Message   string     `json:"message"`
	Player    PlayerView `json:"player"`
}

// HandleGetShop lists the shop catalog
// @Summary Shop catalog
// @Tags shop
// @Produce json
// @Success 200 {object} ShopCatalogResponse
// @Router /api/v1/shop [get]
func (h *GameHandler) HandleGetShop(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, ShopCatalogResponse{
		UnlockThreshold: h.table.UnlockThreshold(),
		Items:           h.table.Shop(),
	})
}

// HandleGetPlayerShop lists the catalog with ownership and affordability
// @Summary Player shop
// @Tags shop
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 {object} PlayerShopResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/players/{playerID}/shop [get]
func (h *GameHandler) HandleGetPlayerShop(w http.ResponseWriter, r *http.Request) {
	playerID, ok := GetPathParam(r, w, ParamPlayerID)
	if !ok {
		return
	}

	var resp PlayerShopResponse
	err := h.sessions.With(r.Context(), playerID, func(s *gamestate.Store) error {
		rec := s.Record()
		unlocked := s.ShopUnlocked()
		resp = PlayerShopResponse{
			Unlocked:        unlocked,
			UnlockThreshold: h.table.UnlockThreshold(),
			Coins:           rec.Coins,
		}
		for _, item := range h.table.Shop() {
			resp.Offers = append(resp.Offers, ShopOffer{
				ShopItem: item,
				Owned:    rec.Owns(item.Slot, item.Item),
				CanBuy:   unlocked && s.CanPurchase(item.Slot, item.Item, item.Cost),
			})
		}
		return nil
	})
	if err != nil {
		respondServiceError(w, r, "Get shop", err)
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

// HandleBuyItem buys a catalog entry at its listed price
// @Summary Buy item
// @Tags shop
// @Accept json
// @Produce json
// @Param playerID path string true "Player ID"
// @Param request body BuyItemRequest true "Catalog item"
// @Success 200 {object} BuyItemResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/players/{playerID}/shop/buy [post]
func (h *GameHandler) HandleBuyItem(w http.ResponseWriter, r *http.Request) {
	playerID, ok := GetPathParam(r, w, ParamPlayerID)
	if !ok {
		return
	}

	var req BuyItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Buy item"); err != nil {
		return
	}

	var resp BuyItemResponse
	err := h.sessions.With(r.Context(), playerID, func(s *gamestate.Store) error {
		_, item, err := s.BuyItem(r.Context(), req.ItemID)
		if err != nil {
			return err
		}
		resp = BuyItemResponse{Item: item, Player: newPlayerView(playerID, s)}
		return nil
	})
	if err != nil {
		respondServiceError(w, r, "Buy item", err)
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

// HandlePurchaseItem applies a raw purchase. Denials answer 200 with the
// outcome and an unchanged player.
// @Summary Raw purchase
// @Tags shop
// @Accept json
// @Produce json
// @Param playerID path string true "Player ID"
// @Param request body PurchaseRequest true "Slot, item and cost"
// @Success 200 {object} PurchaseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/players/{playerID}/purchase [post]
func (h *GameHandler) HandlePurchaseItem(w http.ResponseWriter, r *http.Request) {
	playerID, ok := GetPathParam(r, w, ParamPlayerID)
	if !ok {
		return
	}

	var req PurchaseRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Purchase item"); err != nil {
		return
	}

	var resp PurchaseResponse
	err := h.sessions.With(r.Context(), playerID, func(s *gamestate.Store) error {
		_, outcome := s.PurchaseItem(r.Context(), req.Slot, req.Item, req.Cost)
		resp = PurchaseResponse{
			Completed: outcome.Succeeded(),
			Outcome:   outcome.String(),
			Message:   MsgPurchaseSkipped,
			Player:    newPlayerView(playerID, s),
		}
		if outcome.Succeeded() {
			resp.Message = MsgPurchaseDone
		}
		return nil
	})
	if err != nil {
		respondServiceError(w, r, "Purchase item", err)
		return
	}

	respondJSON(w, http.StatusOK, resp)
}
