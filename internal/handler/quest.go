package handler

import (
	"net/http"

	"github.com/osse101/QuestTown_Go/internal/domain"
	"github.com/osse101/QuestTown_Go/internal/gamestate"
	"github.com/osse101/QuestTown_Go/internal/screen"
)

// LocationView lists a location without its quest texts
type LocationView struct {
	Key        string         `json:"key"`
	Name       string         `json:"name"`
	Rewards    domain.Rewards `json:"rewards"`
	QuestCount int            `json:"quest_count"`
}

// QuestRequest asks for a quest at a location
type QuestRequest struct {
	Location string `json:"location" validate:"required,max=64,key"`
}

// QuestResponse carries the newly active quest
type QuestResponse struct {
	Quest domain.Quest `json:"quest"`
}

// CompleteQuestResponse reports the payout and the screen to return to
type CompleteQuestResponse struct {
	Rewards    domain.Rewards `json:"rewards"`
	Player     PlayerView     `json:"player"`
	NextScreen string         `json:"next_screen"`
}

// HandleGetLocations lists the quest locations
// @Summary List locations
// @Tags quests
// @Produce json
// @Success 200 {array} LocationView
// @Router /api/v1/locations [get]
func (h *GameHandler) HandleGetLocations(w http.ResponseWriter, r *http.Request) {
	locations := h.table.Locations()
	out := make([]LocationView, len(locations))
	for i, loc := range locations {
		out[i] = LocationView{
			Key:        loc.Key,
			Name:       loc.Name,
			Rewards:    loc.Rewards,
			QuestCount: len(loc.Quests),
		}
	}
	respondJSON(w, http.StatusOK, out)
}

// HandleRequestQuest draws a quest at the requested location, replacing
// any unfinished one
// @Summary Request quest
// @Tags quests
// @Accept json
// @Produce json
// @Param playerID path string true "Player ID"
// @Param request body QuestRequest true "Location"
// @Success 200 {object} QuestResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/players/{playerID}/quest [post]
func (h *GameHandler) HandleRequestQuest(w http.ResponseWriter, r *http.Request) {
	playerID, ok := GetPathParam(r, w, ParamPlayerID)
	if !ok {
		return
	}

	var req QuestRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Request quest"); err != nil {
		return
	}

	var quest domain.Quest
	err := h.sessions.With(r.Context(), playerID, func(s *gamestate.Store) error {
		var err error
		quest, err = s.RequestQuest(r.Context(), req.Location)
		return err
	})
	if err != nil {
		respondServiceError(w, r, "Request quest", err)
		return
	}

	respondJSON(w, http.StatusOK, QuestResponse{Quest: quest})
}

// HandleCompleteQuest pays out the active quest
// @Summary Complete quest
// @Tags quests
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 {object} CompleteQuestResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/players/{playerID}/quest/complete [post]
func (h *GameHandler) HandleCompleteQuest(w http.ResponseWriter, r *http.Request) {
	playerID, ok := GetPathParam(r, w, ParamPlayerID)
	if !ok {
		return
	}

	var resp CompleteQuestResponse
	err := h.sessions.With(r.Context(), playerID, func(s *gamestate.Store) error {
		quest, _ := s.CurrentQuest()
		if _, err := s.CompleteQuest(r.Context()); err != nil {
			return err
		}
		resp = CompleteQuestResponse{
			Rewards:    quest.Rewards,
			Player:     newPlayerView(playerID, s),
			NextScreen: screen.AfterCompleteQuest().String(),
		}
		return nil
	})
	if err != nil {
		respondServiceError(w, r, "Complete quest", err)
		return
	}

	respondJSON(w, http.StatusOK, resp)
}
