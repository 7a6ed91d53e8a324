// Package content holds the read-only table of locations, quests, shop items
// and wardrobe slots that gameplay draws from.
package content

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/QuestTown_Go/internal/domain"
	"github.com/osse101/QuestTown_Go/internal/validation"
)

// Sentinel errors for content loading
var (
	ErrInvalidContent = errors.New("invalid content table")
	ErrDuplicateKey   = errors.New("duplicate key")
)

//go:embed default.json
var defaultDocument []byte

//go:embed content.schema.json
var schemaDocument []byte

// ShopConfig is the shop section of a content document
type ShopConfig struct {
	UnlockThreshold int               `json:"unlock_threshold"`
	Items           []domain.ShopItem `json:"items"`
}

// Document is the JSON shape of a content table
type Document struct {
	Version   string                `json:"version"`
	Locations []domain.Location     `json:"locations"`
	Shop      ShopConfig            `json:"shop"`
	Wardrobe  []domain.WardrobeSlot `json:"wardrobe"`
	SaveSlots []string              `json:"save_slots"`
}

// Table is a validated, immutable content table
type Table struct {
	version         string
	locations       []domain.Location
	locationIndex   map[string]int
	shop            []domain.ShopItem
	shopIndex       map[string]int
	unlockThreshold int
	wardrobe        []domain.WardrobeSlot
	saveSlots       []string
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the built-in content table: home, gym and library with
// five quests each, two shirts in the shop and three save slots
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := Parse(defaultDocument)
		if err != nil {
			panic(fmt.Sprintf("embedded content table is invalid: %v", err))
		}
		defaultTable = t
	})
	return defaultTable
}

// Load reads a content table from a JSON file
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadContentFailed, path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, err
	}
	slog.Default().Info(LogMsgContentLoaded, "path", path, "version", t.version, "locations", len(t.locations))
	return t, nil
}

// Parse validates data against the content schema and builds a Table
func Parse(data []byte) (*Table, error) {
	sv := validation.NewSchemaValidator()
	if err := sv.RegisterSchema(SchemaName, schemaDocument); err != nil {
		return nil, fmt.Errorf(ErrMsgParseContentFailed, err)
	}
	if err := sv.ValidateBytes(data, SchemaName); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidContent, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf(ErrMsgParseContentFailed, err)
	}
	return FromDocument(doc)
}

// FromDocument builds a Table from an in-memory document. Missing display
// names are derived from keys; a missing wardrobe defaults to shirt/hair.
func FromDocument(doc Document) (*Table, error) {
	if err := Validate(doc); err != nil {
		return nil, err
	}

	title := cases.Title(language.English)

	t := &Table{
		version:         doc.Version,
		locations:       make([]domain.Location, 0, len(doc.Locations)),
		locationIndex:   make(map[string]int, len(doc.Locations)),
		shop:            make([]domain.ShopItem, 0, len(doc.Shop.Items)),
		shopIndex:       make(map[string]int, len(doc.Shop.Items)),
		unlockThreshold: doc.Shop.UnlockThreshold,
		wardrobe:        wardrobeOrDefault(doc.Wardrobe),
		saveSlots:       append([]string(nil), doc.SaveSlots...),
	}

	for _, loc := range doc.Locations {
		loc.Quests = append([]string(nil), loc.Quests...)
		if loc.Name == "" {
			loc.Name = title.String(loc.Key)
		}
		t.locationIndex[loc.Key] = len(t.locations)
		t.locations = append(t.locations, loc)
	}

	for _, item := range doc.Shop.Items {
		if item.Name == "" {
			item.Name = title.String(item.Item)
		}
		t.shopIndex[item.ID] = len(t.shop)
		t.shop = append(t.shop, item)
	}

	return t, nil
}

// Validate checks the semantic rules the schema cannot express
func Validate(doc Document) error {
	if len(doc.Locations) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidContent, ErrMsgNoLocations)
	}

	seen := make(map[string]bool, len(doc.Locations))
	for _, loc := range doc.Locations {
		if loc.Key == "" {
			return fmt.Errorf("%w: location: %s", ErrInvalidContent, ErrMsgEmptyKey)
		}
		if seen[loc.Key] {
			return fmt.Errorf("%w: location %q", ErrDuplicateKey, loc.Key)
		}
		seen[loc.Key] = true
		if len(loc.Quests) == 0 {
			return fmt.Errorf("%w: "+ErrMsgNoQuestsFmt, ErrInvalidContent, loc.Key)
		}
		if loc.Rewards.XP < 0 || loc.Rewards.Coins < 0 {
			return fmt.Errorf("%w: "+ErrMsgNegativeRewardFmt, ErrInvalidContent, loc.Key)
		}
	}

	if doc.Shop.UnlockThreshold < 0 {
		return fmt.Errorf("%w: %s", ErrInvalidContent, ErrMsgNegativeThreshold)
	}

	inventorySlots := make(map[string]bool)
	for _, w := range wardrobeOrDefault(doc.Wardrobe) {
		inventorySlots[w.InventorySlot] = true
	}

	items := make(map[string]bool, len(doc.Shop.Items))
	for _, item := range doc.Shop.Items {
		if item.ID == "" || item.Item == "" {
			return fmt.Errorf("%w: shop item: %s", ErrInvalidContent, ErrMsgEmptyKey)
		}
		if items[item.ID] {
			return fmt.Errorf("%w: shop item %q", ErrDuplicateKey, item.ID)
		}
		items[item.ID] = true
		if item.Cost < 0 {
			return fmt.Errorf("%w: "+ErrMsgNegativeCostFmt, ErrInvalidContent, item.ID)
		}
		if !inventorySlots[item.Slot] {
			return fmt.Errorf("%w: "+ErrMsgUnknownShopSlotFmt, ErrInvalidContent, item.ID, item.Slot)
		}
	}

	return nil
}

func wardrobeOrDefault(w []domain.WardrobeSlot) []domain.WardrobeSlot {
	if len(w) > 0 {
		return append([]domain.WardrobeSlot(nil), w...)
	}
	return []domain.WardrobeSlot{
		{AvatarSlot: domain.AvatarSlotShirt, InventorySlot: domain.InventorySlotShirts},
		{AvatarSlot: domain.AvatarSlotHair, InventorySlot: domain.InventorySlotHair},
	}
}
