package discord

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/QuestTown_Go/internal/handler"
)

var titleCaser = cases.Title(language.English)

// displayName turns a key like "shirt_blue" into "Shirt Blue"
func displayName(key string) string {
	return titleCaser.String(strings.NewReplacer("_", " ", "-", " ").Replace(key))
}

// playerID maps a Discord user to their API player id
func playerID(user *discordgo.User) string {
	return PlayerIDPrefix + user.ID
}

// getInteractionUser extracts the user from an interaction. Guild
// interactions carry it on the member, DMs on the interaction.
func getInteractionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

// optionString returns the named string option, or "" if absent
func optionString(i *discordgo.InteractionCreate, name string) string {
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == name {
			return opt.StringValue()
		}
	}
	return ""
}

// deferResponse acknowledges an interaction before slow work. Returns
// false if the acknowledgement failed and the handler should stop.
func deferResponse(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}); err != nil {
		slog.Error(LogMsgDeferFailed, "error", err)
		return false
	}
	return true
}

// respondError replaces the deferred response with a plain message
func respondError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &message,
	}); err != nil {
		slog.Error(LogMsgEditFailed, "error", err)
	}
}

// respondFriendlyError explains an API failure in game terms
func respondFriendlyError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) {
	respondError(s, i, formatFriendlyError(err))
}

// formatFriendlyError maps the API's user messages to Discord copy
func formatFriendlyError(err error) string {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return MsgServerError
	}

	switch apiErr.Message {
	case handler.ErrMsgNotEnoughCoinsError:
		return MsgNotEnoughCoins
	case handler.ErrMsgAlreadyOwnedError:
		return MsgAlreadyOwned
	case handler.ErrMsgItemNotOwnedError:
		return MsgItemNotOwned
	case handler.ErrMsgShopLockedError:
		return MsgShopLocked
	case handler.ErrMsgNoActiveQuestError:
		return MsgNoActiveQuest
	case handler.ErrMsgInvalidLocationError:
		return MsgUnknownLocation
	case handler.ErrMsgShopItemNotFoundErr:
		return MsgUnknownItem
	case handler.ErrMsgGenericServerError:
		return MsgGenericError
	default:
		return "❌ " + apiErr.Message
	}
}

// createEmbed creates an embed with the standard footer
func createEmbed(title, description string, color int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Footer:      &discordgo.MessageEmbedFooter{Text: FooterQuestTown},
	}
}

// sendEmbed replaces the deferred response with an embed
func sendEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	}); err != nil {
		slog.Error(LogMsgEditFailed, "error", err)
	}
}

// commandTimeout bounds the API calls one command makes
const commandTimeout = 15 * time.Second

// playerAction runs against the caller's player id and returns the embed
// to show
type playerAction func(ctx context.Context, client *APIClient, playerID string) (*discordgo.MessageEmbed, error)

// handlePlayerCommand defers the response, makes sure the caller is
// registered, runs action and sends its embed or a friendly error
func handlePlayerCommand(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient, action playerAction) {
	if !deferResponse(s, i) {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	id := playerID(getInteractionUser(i))
	if _, err := client.EnsurePlayer(ctx, id); err != nil {
		slog.Error(LogMsgActionFailed, "command", i.ApplicationCommandData().Name, "player_id", id, "error", err)
		respondFriendlyError(s, i, err)
		return
	}

	embed, err := action(ctx, client, id)
	if err != nil {
		slog.Warn(LogMsgActionFailed, "command", i.ApplicationCommandData().Name, "player_id", id, "error", err)
		respondFriendlyError(s, i, err)
		return
	}
	sendEmbed(s, i, embed)
}
