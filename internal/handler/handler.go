package handler

import (
	"context"

	"github.com/osse101/QuestTown_Go/internal/content"
	"github.com/osse101/QuestTown_Go/internal/domain"
	"github.com/osse101/QuestTown_Go/internal/gamestate"
)

// Sessions hands out per-player stores. session.Manager implements it.
type Sessions interface {
	Create(ctx context.Context, id string) (playerID string, created bool, err error)
	With(ctx context.Context, playerID string, fn func(*gamestate.Store) error) error
}

// GameHandler serves the player-facing game endpoints
type GameHandler struct {
	sessions Sessions
	table    *content.Table
}

// NewGameHandler creates a GameHandler
func NewGameHandler(sessions Sessions, table *content.Table) *GameHandler {
	return &GameHandler{
		sessions: sessions,
		table:    table,
	}
}

// PlayerView is the API representation of a player. Save slot contents are
// listed separately by the saves endpoint.
type PlayerView struct {
	PlayerID       string              `json:"player_id"`
	XP             int                 `json:"xp"`
	Coins          int                 `json:"coins"`
	CompletedTasks int                 `json:"completed_tasks"`
	Level          int                 `json:"level"`
	Avatar         map[string]string   `json:"avatar"`
	Inventory      map[string][]string `json:"inventory"`
	ShopUnlocked   bool                `json:"shop_unlocked"`
	Quest          *domain.Quest       `json:"quest,omitempty"`
}

func newPlayerView(playerID string, s *gamestate.Store) PlayerView {
	rec := s.Record()
	view := PlayerView{
		PlayerID:       playerID,
		XP:             rec.XP,
		Coins:          rec.Coins,
		CompletedTasks: rec.CompletedTasks,
		Level:          rec.Level,
		Avatar:         rec.Avatar,
		Inventory:      rec.Inventory,
		ShopUnlocked:   s.ShopUnlocked(),
	}
	if q, ok := s.CurrentQuest(); ok {
		view.Quest = &q
	}
	return view
}
