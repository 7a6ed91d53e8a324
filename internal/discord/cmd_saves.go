package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

func (c Catalog) slotOption(description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "slot",
		Description: description,
		Required:    true,
		Choices:     keyChoices(c.SaveSlots),
	}
}

// SavesCommand lists the caller's save slots
func SavesCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "saves",
		Description: "List your save slots",
	}

	h := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handlePlayerCommand(s, i, client, func(ctx context.Context, client *APIClient, id string) (*discordgo.MessageEmbed, error) {
			slots, err := client.ListSaves(ctx, id)
			if err != nil {
				return nil, err
			}

			var b strings.Builder
			for _, slot := range slots {
				if slot.Empty {
					fmt.Fprintf(&b, "**%s**: empty\n", displayName(slot.SlotID))
					continue
				}
				fmt.Fprintf(&b, "**%s**: level %d, %d XP (%s)\n", displayName(slot.SlotID), slot.Level, slot.XP, slot.LastSave)
			}
			return createEmbed("💾 Save Slots", b.String(), ColorSave), nil
		})
	}

	return cmd, h
}

// SaveCommand saves the caller's progress into a slot
func (c Catalog) SaveCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "save",
		Description: "Save your progress",
		Options:     []*discordgo.ApplicationCommandOption{c.slotOption("Slot to overwrite")},
	}

	h := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		slot := optionString(i, "slot")
		handlePlayerCommand(s, i, client, func(ctx context.Context, client *APIClient, id string) (*discordgo.MessageEmbed, error) {
			resp, err := client.SaveGame(ctx, id, slot)
			if err != nil {
				return nil, err
			}
			desc := fmt.Sprintf("Saved to **%s** at %s.", displayName(resp.Slot.SlotID), resp.Slot.LastSave)
			return createEmbed("💾 Game Saved", desc, ColorSave), nil
		})
	}

	return cmd, h
}

// LoadCommand restores a save slot
func (c Catalog) LoadCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "load",
		Description: "Load a saved game",
		Options:     []*discordgo.ApplicationCommandOption{c.slotOption("Slot to restore")},
	}

	h := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		slot := optionString(i, "slot")
		handlePlayerCommand(s, i, client, func(ctx context.Context, client *APIClient, id string) (*discordgo.MessageEmbed, error) {
			resp, err := client.LoadGame(ctx, id, slot)
			if err != nil {
				return nil, err
			}
			if !resp.Loaded {
				return createEmbed("💾 Load Game", MsgEmptySaveSlot, ColorSave), nil
			}
			desc := fmt.Sprintf("Loaded **%s**. You are level %d with %d XP and %d coins.",
				displayName(slot), resp.Player.Level, resp.Player.XP, resp.Player.Coins)
			return createEmbed("💾 Game Loaded", desc, ColorSave), nil
		})
	}

	return cmd, h
}
