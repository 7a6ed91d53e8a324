package discord

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/QuestTown_Go/internal/handler"
)

// ProfileCommand shows the caller's progress
func ProfileCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "profile",
		Description: "View your QuestTown progress",
	}

	h := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		user := getInteractionUser(i)
		handlePlayerCommand(s, i, client, func(ctx context.Context, client *APIClient, id string) (*discordgo.MessageEmbed, error) {
			view, err := client.EnsurePlayer(ctx, id)
			if err != nil {
				return nil, err
			}
			embed := profileEmbed(user.Username, view)
			embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: user.AvatarURL("")}
			return embed, nil
		})
	}

	return cmd, h
}

func profileEmbed(username string, view handler.PlayerView) *discordgo.MessageEmbed {
	embed := createEmbed(fmt.Sprintf("%s's Profile", username), "", ColorProfile)
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Level", Value: strconv.Itoa(view.Level), Inline: true},
		{Name: "XP", Value: strconv.Itoa(view.XP), Inline: true},
		{Name: "Coins", Value: strconv.Itoa(view.Coins), Inline: true},
		{Name: "Quests Done", Value: strconv.Itoa(view.CompletedTasks), Inline: true},
		{Name: "Outfit", Value: formatAvatar(view.Avatar), Inline: true},
	}

	shop := "🔒 Locked"
	if view.ShopUnlocked {
		shop = "🛍️ Open"
	}
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "Shop", Value: shop, Inline: true})

	if view.Quest != nil {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Active Quest",
			Value: view.Quest.Text,
		})
	}
	return embed
}

func formatAvatar(avatar map[string]string) string {
	slots := make([]string, 0, len(avatar))
	for slot := range avatar {
		slots = append(slots, slot)
	}
	sort.Strings(slots)

	parts := make([]string, len(slots))
	for i, slot := range slots {
		parts[i] = fmt.Sprintf("%s: %s", displayName(slot), displayName(avatar[slot]))
	}
	return strings.Join(parts, "\n")
}
