package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// QuestCommand hands out a quest at a chosen location
func (c Catalog) QuestCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "quest",
		Description: "Get a quest at a location in town",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "location",
				Description: "Where to go",
				Required:    true,
				Choices:     c.locationChoices(),
			},
		},
	}

	h := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		location := optionString(i, "location")
		handlePlayerCommand(s, i, client, func(ctx context.Context, client *APIClient, id string) (*discordgo.MessageEmbed, error) {
			quest, err := client.RequestQuest(ctx, id, location)
			if err != nil {
				return nil, err
			}
			desc := fmt.Sprintf("%s\n\nReward: **%d XP**, **%d coins**\nUse `/complete` when you are done.",
				quest.Text, quest.Rewards.XP, quest.Rewards.Coins)
			return createEmbed("📜 Quest at "+c.locationName(quest.Location), desc, ColorQuest), nil
		})
	}

	return cmd, h
}

func (c Catalog) locationName(key string) string {
	for _, loc := range c.Locations {
		if loc.Key == key {
			return loc.Name
		}
	}
	return displayName(key)
}

// CompleteCommand pays out the caller's active quest
func CompleteCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "complete",
		Description: "Mark your active quest as done",
	}

	h := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handlePlayerCommand(s, i, client, func(ctx context.Context, client *APIClient, id string) (*discordgo.MessageEmbed, error) {
			resp, err := client.CompleteQuest(ctx, id)
			if err != nil {
				return nil, err
			}
			desc := fmt.Sprintf("+%d XP, +%d coins\nYou now have **%d XP** and **%d coins** after %d quests.",
				resp.Rewards.XP, resp.Rewards.Coins, resp.Player.XP, resp.Player.Coins, resp.Player.CompletedTasks)
			return createEmbed("✅ Quest Complete", desc, ColorReward), nil
		})
	}

	return cmd, h
}
