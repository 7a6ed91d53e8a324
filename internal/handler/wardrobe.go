package handler

import (
	"net/http"

	"github.com/osse101/QuestTown_Go/internal/gamestate"
)

// EquipRequest puts an item on an avatar slot
type EquipRequest struct {
	Slot string `json:"slot" validate:"required,max=64,key"`
	Item string `json:"item" validate:"required,max=64,key"`
}

// HandleEquipItem changes the avatar
// @Summary Equip item
// @Tags wardrobe
// @Accept json
// @Produce json
// @Param playerID path string true "Player ID"
// @Param request body EquipRequest true "Avatar slot and item"
// @Success 200 {object} PlayerView
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/players/{playerID}/equip [post]
func (h *GameHandler) HandleEquipItem(w http.ResponseWriter, r *http.Request) {
	playerID, ok := GetPathParam(r, w, ParamPlayerID)
	if !ok {
		return
	}

	var req EquipRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Equip item"); err != nil {
		return
	}

	var view PlayerView
	err := h.sessions.With(r.Context(), playerID, func(s *gamestate.Store) error {
		if _, err := s.EquipItem(r.Context(), req.Slot, req.Item); err != nil {
			return err
		}
		view = newPlayerView(playerID, s)
		return nil
	})
	if err != nil {
		respondServiceError(w, r, "Equip item", err)
		return
	}

	respondJSON(w, http.StatusOK, view)
}
