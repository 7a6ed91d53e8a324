package handler

import (
	"net/http"

	"github.com/osse101/QuestTown_Go/internal/gamestate"
	"github.com/osse101/QuestTown_Go/internal/logger"
)

// CreatePlayerRequest registers a player. An omitted id gets a generated one.
type CreatePlayerRequest struct {
	PlayerID string `json:"player_id" validate:"omitempty,max=64,key"`
}

// CreatePlayerResponse reports the registered player
type CreatePlayerResponse struct {
	Created bool       `json:"created"`
	Player  PlayerView `json:"player"`
}

// HandleCreatePlayer registers a player with a fresh record. Registering an
// existing id returns the stored progress with 200.
// @Summary Create player
// @Tags players
// @Accept json
// @Produce json
// @Param request body CreatePlayerRequest false "Optional player id"
// @Success 201 {object} CreatePlayerResponse
// @Success 200 {object} CreatePlayerResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/players [post]
func (h *GameHandler) HandleCreatePlayer(w http.ResponseWriter, r *http.Request) {
	var req CreatePlayerRequest
	if err := DecodeOptionalRequest(r, w, &req, "Create player"); err != nil {
		return
	}

	ctx := r.Context()
	playerID, created, err := h.sessions.Create(ctx, req.PlayerID)
	if err != nil {
		respondServiceError(w, r, ErrMsgCreatePlayerFailed, err)
		return
	}

	var view PlayerView
	err = h.sessions.With(ctx, playerID, func(s *gamestate.Store) error {
		view = newPlayerView(playerID, s)
		return nil
	})
	if err != nil {
		respondServiceError(w, r, ErrMsgCreatePlayerFailed, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
		logger.FromContext(ctx).Info(LogMsgPlayerCreated, logger.AttrKeyPlayerID, playerID)
	}
	respondJSON(w, status, CreatePlayerResponse{Created: created, Player: view})
}

// HandleGetPlayer returns a player's progress and active quest
// @Summary Get player
// @Tags players
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 {object} PlayerView
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/players/{playerID} [get]
func (h *GameHandler) HandleGetPlayer(w http.ResponseWriter, r *http.Request) {
	playerID, ok := GetPathParam(r, w, ParamPlayerID)
	if !ok {
		return
	}

	var view PlayerView
	err := h.sessions.With(r.Context(), playerID, func(s *gamestate.Store) error {
		view = newPlayerView(playerID, s)
		return nil
	})
	if err != nil {
		respondServiceError(w, r, ErrMsgGetPlayerFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, view)
}
