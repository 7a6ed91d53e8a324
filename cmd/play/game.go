package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/QuestTown_Go/internal/content"
	"github.com/osse101/QuestTown_Go/internal/domain"
	"github.com/osse101/QuestTown_Go/internal/gamestate"
	"github.com/osse101/QuestTown_Go/internal/screen"
)

var titleCaser = cases.Title(language.English)

// game is one terminal session over a single store
type game struct {
	store  *gamestate.Store
	table  *content.Table
	screen screen.Screen
	out    io.Writer
}

func newGame(store *gamestate.Store, table *content.Table, out io.Writer) *game {
	return &game{store: store, table: table, screen: screen.Home, out: out}
}

func (g *game) printf(format string, args ...any) {
	fmt.Fprintf(g.out, format, args...)
}

func title(key string) string {
	return titleCaser.String(strings.NewReplacer("_", " ", "-", " ").Replace(key))
}

// exec runs one input line and reports whether the player quit
func (g *game) exec(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	var err error
	switch cmd {
	case "quit", "exit":
		return true
	case "help":
		g.help()
	case "go":
		err = g.goTo(args)
	case "look":
		g.look()
	case "status":
		g.status()
	case "quest":
		err = g.quest(ctx)
	case "done":
		err = g.done(ctx)
	case "buy":
		err = g.buy(ctx, args)
	case "wear":
		err = g.wear(ctx, args)
	case "save":
		err = g.save(ctx, args)
	case "load":
		err = g.load(ctx, args)
	default:
		err = fmt.Errorf("unknown command %q, try help", cmd)
	}

	if err != nil {
		g.printf("! %s\n", friendly(err))
	}
	return false
}

func friendly(err error) string {
	switch {
	case errors.Is(err, domain.ErrNoActiveQuest):
		return "You have no active quest."
	case errors.Is(err, domain.ErrShopLocked):
		return "The shop is still closed."
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "Not enough coins."
	case errors.Is(err, domain.ErrAlreadyOwned):
		return "You already own that."
	case errors.Is(err, domain.ErrItemNotOwned):
		return "That is not in your wardrobe."
	case errors.Is(err, domain.ErrShopItemNotFound):
		return "The shop does not sell that."
	case errors.Is(err, screen.ErrInvalidTransition):
		return "You can't get there from here. Go to the town map first."
	}
	return err.Error()
}

func (g *game) help() {
	g.printf(`Commands:
  go <screen>        home, townMap, gym, library, shop, customize, saveGame
  look               describe where you are
  status             show your progress
  quest              get a quest here
  done               complete your active quest
  buy <item id>      buy from the shop
  wear <slot> <item> change your outfit
  save <slot>        save into a slot
  load <slot>        load a slot
  quit
`)
}

func (g *game) goTo(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: go <screen>")
	}
	to, err := screen.Parse(args[0])
	if err != nil {
		return err
	}
	if g.screen, err = screen.Next(g.screen, to); err != nil {
		return err
	}
	g.look()
	return nil
}

func (g *game) require(s screen.Screen) error {
	if g.screen != s {
		return fmt.Errorf("go to %s first", s)
	}
	return nil
}

func (g *game) look() {
	g.printf("== %s ==\n", title(g.screen.String()))

	if key, ok := g.screen.LocationKey(); ok {
		if loc, ok := g.table.Location(key); ok {
			g.printf("%s: quests pay %d XP and %d coins. Type quest.\n", loc.Name, loc.Rewards.XP, loc.Rewards.Coins)
		}
	}
	if q, ok := g.store.CurrentQuest(); ok {
		g.printf("Active quest: %s\n", q.Text)
	}

	switch g.screen {
	case screen.TownMap:
		g.printf("From here: gym, library, shop.\n")
	case screen.Shop:
		g.shop()
	case screen.Customize:
		g.wardrobe()
	case screen.SaveGame:
		for _, s := range g.store.SaveSlots() {
			if s.Empty {
				g.printf("  %s: empty\n", s.SlotID)
				continue
			}
			g.printf("  %s: level %d, %d XP, %s\n", s.SlotID, s.Level, s.XP, s.LastSave)
		}
	}
}

func (g *game) status() {
	rec := g.store.Record()
	g.printf("Level %d | %d XP | %d coins | %d quests done\n", rec.Level, rec.XP, rec.Coins, rec.CompletedTasks)
	g.printf("Wearing: %s\n", outfit(rec.Avatar))
}

func outfit(avatar map[string]string) string {
	slots := make([]string, 0, len(avatar))
	for slot := range avatar {
		slots = append(slots, slot)
	}
	sort.Strings(slots)
	parts := make([]string, len(slots))
	for i, slot := range slots {
		parts[i] = title(avatar[slot]) + " " + slot
	}
	return strings.Join(parts, ", ")
}

func (g *game) quest(ctx context.Context) error {
	key, ok := g.screen.LocationKey()
	if !ok {
		return errors.New("there are no quests here")
	}
	q, err := g.store.RequestQuest(ctx, key)
	if err != nil {
		return err
	}
	g.printf("Quest: %s (+%d XP, +%d coins)\n", q.Text, q.Rewards.XP, q.Rewards.Coins)
	return nil
}

func (g *game) done(ctx context.Context) error {
	q, ok := g.store.CurrentQuest()
	rec, err := g.store.CompleteQuest(ctx)
	if err != nil {
		return err
	}
	if ok {
		g.printf("Done! +%d XP, +%d coins. You have %d coins.\n", q.Rewards.XP, q.Rewards.Coins, rec.Coins)
	}
	g.screen = screen.AfterCompleteQuest()
	return nil
}

func (g *game) shop() {
	if !g.store.ShopUnlocked() {
		g.printf("The shop opens after %d quests.\n", g.table.UnlockThreshold())
		return
	}
	for _, item := range g.table.Shop() {
		state := ""
		switch {
		case g.store.Record().Owns(item.Slot, item.Item):
			state = " (owned)"
		case !g.store.CanPurchase(item.Slot, item.Item, item.Cost):
			state = " (can't afford)"
		}
		g.printf("  %-12s %s, %d coins%s\n", item.ID, item.Name, item.Cost, state)
	}
}

func (g *game) buy(ctx context.Context, args []string) error {
	if err := g.require(screen.Shop); err != nil {
		return err
	}
	if len(args) != 1 {
		return errors.New("usage: buy <item id>")
	}
	rec, item, err := g.store.BuyItem(ctx, args[0])
	if err != nil {
		return err
	}
	g.printf("Bought %s. %d coins left.\n", item.Name, rec.Coins)
	return nil
}

func (g *game) wardrobe() {
	rec := g.store.Record()
	for _, w := range g.table.Wardrobe() {
		g.printf("  %s: wearing %s, owns %s\n", w.AvatarSlot, rec.Avatar[w.AvatarSlot], strings.Join(rec.Inventory[w.InventorySlot], ", "))
	}
}

func (g *game) wear(ctx context.Context, args []string) error {
	if err := g.require(screen.Customize); err != nil {
		return err
	}
	if len(args) != 2 {
		return errors.New("usage: wear <slot> <item>")
	}
	rec, err := g.store.EquipItem(ctx, args[0], strings.ToLower(args[1]))
	if err != nil {
		return err
	}
	g.printf("Now wearing: %s\n", outfit(rec.Avatar))
	return nil
}

func (g *game) save(ctx context.Context, args []string) error {
	if err := g.require(screen.SaveGame); err != nil {
		return err
	}
	if len(args) != 1 {
		return errors.New("usage: save <slot>")
	}
	if err := g.checkSlot(args[0]); err != nil {
		return err
	}
	g.store.SaveGame(ctx, args[0])
	g.printf("Saved to %s.\n", args[0])
	return nil
}

func (g *game) load(ctx context.Context, args []string) error {
	if err := g.require(screen.SaveGame); err != nil {
		return err
	}
	if len(args) != 1 {
		return errors.New("usage: load <slot>")
	}
	if err := g.checkSlot(args[0]); err != nil {
		return err
	}
	if _, ok := g.store.LoadGame(ctx, args[0]); !ok {
		g.printf("%s is empty.\n", args[0])
		return nil
	}
	g.screen = screen.AfterLoadGame()
	g.printf("Loaded %s.\n", args[0])
	g.status()
	return nil
}

func (g *game) checkSlot(slotID string) error {
	ids := g.table.SaveSlotIDs()
	for _, id := range ids {
		if id == slotID {
			return nil
		}
	}
	return fmt.Errorf("unknown slot %q, pick one of %s", slotID, strings.Join(ids, ", "))
}
