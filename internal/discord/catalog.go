package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/osse101/QuestTown_Go/internal/content"
	"github.com/osse101/QuestTown_Go/internal/domain"
)

// Catalog is the static game content slash command choices are built from
type Catalog struct {
	Locations   []domain.Location
	Shop        []domain.ShopItem
	AvatarSlots []string
	SaveSlots   []string
}

// CatalogFromTable builds a Catalog from a content table
func CatalogFromTable(t *content.Table) Catalog {
	cat := Catalog{
		Locations: t.Locations(),
		Shop:      t.Shop(),
		SaveSlots: t.SaveSlotIDs(),
	}
	for _, w := range t.Wardrobe() {
		cat.AvatarSlots = append(cat.AvatarSlots, w.AvatarSlot)
	}
	return cat
}

// Factories returns every game command
func (c Catalog) Factories() []CommandFactory {
	return []CommandFactory{
		ProfileCommand,
		c.QuestCommand,
		CompleteCommand,
		ShopCommand,
		c.BuyCommand,
		c.EquipCommand,
		SavesCommand,
		c.SaveCommand,
		c.LoadCommand,
	}
}

func (c Catalog) locationChoices() []*discordgo.ApplicationCommandOptionChoice {
	out := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(c.Locations))
	for _, loc := range c.Locations {
		out = append(out, &discordgo.ApplicationCommandOptionChoice{Name: loc.Name, Value: loc.Key})
	}
	return out
}

func (c Catalog) shopChoices() []*discordgo.ApplicationCommandOptionChoice {
	out := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(c.Shop))
	for _, item := range c.Shop {
		out = append(out, &discordgo.ApplicationCommandOptionChoice{Name: item.Name, Value: item.ID})
	}
	return out
}

func keyChoices(keys []string) []*discordgo.ApplicationCommandOptionChoice {
	out := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(keys))
	for _, key := range keys {
		out = append(out, &discordgo.ApplicationCommandOptionChoice{Name: displayName(key), Value: key})
	}
	return out
}
