package handler

import (
	"net/http"

	"github.com/osse101/QuestTown_Go/internal/domain"
	"github.com/osse101/QuestTown_Go/internal/gamestate"
	"github.com/osse101/QuestTown_Go/internal/screen"
)

// SaveGameResponse reports the slot that was written
type SaveGameResponse struct {
	Message string                 `json:"message"`
	Slot    domain.SaveSlotSummary `json:"slot"`
	Player  PlayerView             `json:"player"`
}

// LoadGameResponse reports whether a snapshot was restored. Loading an
// empty slot changes nothing and is not an error.
type LoadGameResponse struct {
	Loaded     bool       `json:"loaded"`
	Message    string     `json:"message"`
	Player     PlayerView `json:"player"`
	NextScreen string     `json:"next_screen,omitempty"`
}

// HandleListSaves summarizes the player's save slots
// @Summary List save slots
// @Tags saves
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 {array} domain.SaveSlotSummary
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/players/{playerID}/saves [get]
func (h *GameHandler) HandleListSaves(w http.ResponseWriter, r *http.Request) {
	playerID, ok := GetPathParam(r, w, ParamPlayerID)
	if !ok {
		return
	}

	var slots []domain.SaveSlotSummary
	err := h.sessions.With(r.Context(), playerID, func(s *gamestate.Store) error {
		slots = s.SaveSlots()
		return nil
	})
	if err != nil {
		respondServiceError(w, r, "List saves", err)
		return
	}

	respondJSON(w, http.StatusOK, slots)
}

// HandleSaveGame snapshots the player's record into a slot
// @Summary Save game
// @Tags saves
// @Produce json
// @Param playerID path string true "Player ID"
// @Param slotID path string true "Save slot"
// @Success 200 {object} SaveGameResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/players/{playerID}/saves/{slotID} [post]
func (h *GameHandler) HandleSaveGame(w http.ResponseWriter, r *http.Request) {
	playerID, ok := GetPathParam(r, w, ParamPlayerID)
	if !ok {
		return
	}
	slotID, ok := GetPathParam(r, w, ParamSlotID)
	if !ok {
		return
	}

	var resp SaveGameResponse
	err := h.sessions.With(r.Context(), playerID, func(s *gamestate.Store) error {
		rec := s.SaveGame(r.Context(), slotID)
		resp = SaveGameResponse{
			Message: MsgGameSaved,
			Slot:    rec.SaveSlots[slotID].Summary(slotID),
			Player:  newPlayerView(playerID, s),
		}
		return nil
	})
	if err != nil {
		respondServiceError(w, r, "Save game", err)
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

// HandleLoadGame restores the snapshot in a slot
// @Summary Load game
// @Tags saves
// @Produce json
// @Param playerID path string true "Player ID"
// @Param slotID path string true "Save slot"
// @Success 200 {object} LoadGameResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/players/{playerID}/saves/{slotID}/load [post]
func (h *GameHandler) HandleLoadGame(w http.ResponseWriter, r *http.Request) {
	playerID, ok := GetPathParam(r, w, ParamPlayerID)
	if !ok {
		return
	}
	slotID, ok := GetPathParam(r, w, ParamSlotID)
	if !ok {
		return
	}

	var resp LoadGameResponse
	err := h.sessions.With(r.Context(), playerID, func(s *gamestate.Store) error {
		_, loaded := s.LoadGame(r.Context(), slotID)
		resp = LoadGameResponse{
			Loaded:  loaded,
			Message: MsgEmptySlot,
			Player:  newPlayerView(playerID, s),
		}
		if loaded {
			resp.Message = MsgGameLoaded
			resp.NextScreen = screen.AfterLoadGame().String()
		}
		return nil
	})
	if err != nil {
		respondServiceError(w, r, "Load game", err)
		return
	}

	respondJSON(w, http.StatusOK, resp)
}
