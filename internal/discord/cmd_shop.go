package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/QuestTown_Go/internal/handler"
)

// ShopCommand lists the shop for the caller
func ShopCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "shop",
		Description: "Browse the clothing shop",
	}

	h := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handlePlayerCommand(s, i, client, func(ctx context.Context, client *APIClient, id string) (*discordgo.MessageEmbed, error) {
			shop, err := client.GetShop(ctx, id)
			if err != nil {
				return nil, err
			}
			return shopEmbed(shop), nil
		})
	}

	return cmd, h
}

func shopEmbed(shop handler.PlayerShopResponse) *discordgo.MessageEmbed {
	if !shop.Unlocked {
		return createEmbed("🛍️ Shop", fmt.Sprintf("%s\nThe shop opens after %d quests.", MsgShopLocked, shop.UnlockThreshold), ColorShop)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You have **%d coins**.\n\n", shop.Coins)
	for _, offer := range shop.Offers {
		status := ""
		switch {
		case offer.Owned:
			status = " (owned)"
		case !offer.CanBuy:
			status = " (can't afford)"
		}
		fmt.Fprintf(&b, "• **%s** - %d coins%s\n", offer.Name, offer.Cost, status)
	}
	return createEmbed("🛍️ Shop", b.String(), ColorShop)
}

// BuyCommand buys a catalog item
func (c Catalog) BuyCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "buy",
		Description: "Buy an item from the shop",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "item",
				Description: "What to buy",
				Required:    true,
				Choices:     c.shopChoices(),
			},
		},
	}

	h := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		itemID := optionString(i, "item")
		handlePlayerCommand(s, i, client, func(ctx context.Context, client *APIClient, id string) (*discordgo.MessageEmbed, error) {
			resp, err := client.BuyItem(ctx, id, itemID)
			if err != nil {
				return nil, err
			}
			desc := fmt.Sprintf("You bought **%s** for %d coins. %d coins left.\nWear it with `/equip`.",
				resp.Item.Name, resp.Item.Cost, resp.Player.Coins)
			return createEmbed("💰 Purchase Complete", desc, ColorShop), nil
		})
	}

	return cmd, h
}

// EquipCommand changes the caller's outfit
func (c Catalog) EquipCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "equip",
		Description: "Wear something from your wardrobe",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "slot",
				Description: "Avatar slot",
				Required:    true,
				Choices:     keyChoices(c.AvatarSlots),
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "item",
				Description: "Item to wear, e.g. blue",
				Required:    true,
			},
		},
	}

	h := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		slot := optionString(i, "slot")
		item := strings.ToLower(strings.TrimSpace(optionString(i, "item")))
		handlePlayerCommand(s, i, client, func(ctx context.Context, client *APIClient, id string) (*discordgo.MessageEmbed, error) {
			view, err := client.EquipItem(ctx, id, slot, item)
			if err != nil {
				return nil, err
			}
			return createEmbed("👕 Outfit Updated", formatAvatar(view.Avatar), ColorWardrobe), nil
		})
	}

	return cmd, h
}
