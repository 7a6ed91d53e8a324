package discord

import (
	"sync/atomic"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogFromTable(t *testing.T) {
	cat := testCatalog()

	require.Len(t, cat.Locations, 3)
	assert.Len(t, cat.Shop, 2)
	assert.Equal(t, []string{"saveSlot1", "saveSlot2", "saveSlot3"}, cat.SaveSlots)
	assert.Equal(t, []string{"shirt", "hair"}, cat.AvatarSlots)

	choices := cat.locationChoices()
	require.Len(t, choices, 3)
	for i, c := range choices {
		assert.Equal(t, cat.Locations[i].Key, c.Value)
		assert.Equal(t, cat.Locations[i].Name, c.Name)
	}
}

func TestCommandRegistry(t *testing.T) {
	r := NewCommandRegistry()
	r.RegisterAll(testCatalog().Factories())

	assert.Equal(t, []string{"buy", "complete", "equip", "load", "profile", "quest", "save", "saves", "shop"}, r.Names())
	for name, cmd := range r.Commands {
		assert.NotEmpty(t, cmd.Description, name)
		assert.LessOrEqual(t, len(cmd.Description), 100, name)
	}
}

func TestCommandRegistry_Handle(t *testing.T) {
	r := NewCommandRegistry()
	var calls int32
	r.Register(&discordgo.ApplicationCommand{Name: "ping", Description: "Ping"},
		func(*discordgo.Session, *discordgo.InteractionCreate, *APIClient) { atomic.AddInt32(&calls, 1) })

	before := atomic.LoadInt64(&commandCounter)

	assert.True(t, r.Handle(nil, newInteraction("ping", nil), nil))
	assert.False(t, r.Handle(nil, newInteraction("unknown", nil), nil))

	autocomplete := newInteraction("ping", nil)
	autocomplete.Type = discordgo.InteractionApplicationCommandAutocomplete
	assert.False(t, r.Handle(nil, autocomplete, nil))

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Equal(t, before+1, atomic.LoadInt64(&commandCounter))
}

func TestCommandsEqual(t *testing.T) {
	build := func() []*discordgo.ApplicationCommand {
		r := NewCommandRegistry()
		r.RegisterAll(testCatalog().Factories())
		out := make([]*discordgo.ApplicationCommand, 0, len(r.Commands))
		for _, name := range r.Names() {
			out = append(out, r.Commands[name])
		}
		return out
	}

	existing, desired := build(), build()
	assert.True(t, commandsEqual(existing, desired))

	// order does not matter
	existing[0], existing[1] = existing[1], existing[0]
	assert.True(t, commandsEqual(existing, desired))

	changed := build()
	changed[0].Options[0].Choices = changed[0].Options[0].Choices[:1]
	assert.False(t, commandsEqual(changed, desired))

	assert.False(t, commandsEqual(existing[:1], desired))
}
