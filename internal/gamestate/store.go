// Package gamestate owns one player's game record and every rule that
// changes it. Each mutation writes the new record through to persistence.
package gamestate

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/osse101/QuestTown_Go/internal/content"
	"github.com/osse101/QuestTown_Go/internal/domain"
	"github.com/osse101/QuestTown_Go/internal/event"
	"github.com/osse101/QuestTown_Go/internal/logger"
	"github.com/osse101/QuestTown_Go/internal/persistence"
)

// Store holds the current record and the active quest. It is not safe for
// concurrent use.
type Store struct {
	provider persistence.Provider
	table    *content.Table
	bus      event.Bus

	key          string
	now          func() time.Time
	loc          *time.Location
	intn         func(n int) int
	lenientEquip bool
	diagnostics  func(error)

	record domain.GameRecord
	quest  *domain.Quest
}

// New loads the record stored under the store key. A missing blob starts a
// default record; an unreadable one does too and is reported as a diagnostic.
func New(ctx context.Context, provider persistence.Provider, table *content.Table, opts ...Option) *Store {
	s := &Store{
		provider: provider,
		table:    table,
		key:      domain.PersistenceKey,
		now:      time.Now,
		loc:      time.Local,
		intn:     rand.Intn,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.record = s.initialize(ctx)
	return s
}

func (s *Store) initialize(ctx context.Context) domain.GameRecord {
	log := logger.FromContext(ctx).With("key", s.key)

	blob, err := s.provider.Load(ctx, s.key)
	if errors.Is(err, domain.ErrBlobNotFound) {
		log.Debug(LogMsgStateDefaulted)
		return domain.DefaultRecord()
	}
	if err != nil {
		s.reportFailure(ctx, OpLoad, fmt.Errorf("%w: %v", domain.ErrPersistenceRead, err))
		return domain.DefaultRecord()
	}

	rec, fieldErrs, err := decode(blob)
	if err != nil {
		s.reportFailure(ctx, OpLoad, err)
		return domain.DefaultRecord()
	}
	for _, fe := range fieldErrs {
		log.Warn(LogMsgFieldFallback, "error", fe)
	}

	log.Debug(LogMsgStateInitialized, "xp", rec.XP, "coins", rec.Coins, "completed_tasks", rec.CompletedTasks)
	return rec
}

// Key returns the blob key the record is persisted under
func (s *Store) Key() string {
	return s.key
}

// Record returns a copy of the current record
func (s *Store) Record() domain.GameRecord {
	return s.record.Clone()
}

// CurrentQuest returns the active quest, if any
func (s *Store) CurrentQuest() (domain.Quest, bool) {
	if s.quest == nil {
		return domain.Quest{}, false
	}
	return *s.quest, true
}

// ShopUnlocked reports whether enough quests are done to use the shop
func (s *Store) ShopUnlocked() bool {
	return s.table.ShopUnlocked(s.record.CompletedTasks)
}

// CanPurchase reports whether PurchaseItem with the same arguments would succeed
func (s *Store) CanPurchase(slot, itemID string, cost int) bool {
	return domain.CheckPurchase(s.record, slot, itemID, cost).Succeeded()
}

// SaveSlots summarizes the configured save slots followed by any other
// slots present in the record
func (s *Store) SaveSlots() []domain.SaveSlotSummary {
	ids := s.table.SaveSlotIDs()
	known := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		known[id] = struct{}{}
	}

	var extra []string
	for id := range s.record.SaveSlots {
		if _, ok := known[id]; !ok {
			extra = append(extra, id)
		}
	}
	sort.Strings(extra)

	out := make([]domain.SaveSlotSummary, 0, len(ids)+len(extra))
	for _, id := range append(ids, extra...) {
		out = append(out, s.record.SaveSlots[id].Summary(id))
	}
	return out
}

// RequestQuest draws a random quest at the location and makes it active,
// replacing any unfinished quest. The quest is not persisted.
func (s *Store) RequestQuest(ctx context.Context, locationKey string) (domain.Quest, error) {
	loc, ok := s.table.Location(locationKey)
	if !ok {
		return domain.Quest{}, fmt.Errorf("%w: %q", domain.ErrInvalidLocation, locationKey)
	}

	log := logger.FromContext(ctx)
	if s.quest != nil {
		log.Debug(LogMsgQuestAbandoned, "key", s.key, "location", s.quest.Location)
	}

	q := domain.Quest{
		Text:     loc.Quests[s.intn(len(loc.Quests))],
		Location: loc.Key,
		Rewards:  loc.Rewards,
	}
	s.quest = &q

	log.Info(LogMsgQuestRequested, "key", s.key, "location", loc.Key)
	s.publish(ctx, event.QuestRequested, event.QuestPayloadV1{Location: loc.Key, XP: loc.Rewards.XP, Coins: loc.Rewards.Coins})
	return q, nil
}

// CompleteQuest pays out the active quest and clears it
func (s *Store) CompleteQuest(ctx context.Context) (domain.GameRecord, error) {
	if s.quest == nil {
		return s.Record(), domain.ErrNoActiveQuest
	}
	q := *s.quest

	next := s.record.Clone()
	next.XP += q.Rewards.XP
	next.Coins += q.Rewards.Coins
	next.CompletedTasks++

	s.quest = nil
	s.commit(ctx, next)

	logger.FromContext(ctx).Info(LogMsgQuestCompleted,
		"key", s.key, "location", q.Location, "xp", next.XP, "coins", next.Coins, "completed_tasks", next.CompletedTasks)
	s.publish(ctx, event.QuestCompleted, event.QuestPayloadV1{Location: q.Location, XP: q.Rewards.XP, Coins: q.Rewards.Coins})
	return s.Record(), nil
}

// PurchaseItem buys itemID into an inventory slot when the player can afford
// it and does not own it yet. Any other case leaves the record untouched.
func (s *Store) PurchaseItem(ctx context.Context, slot, itemID string, cost int) (domain.GameRecord, domain.PurchaseOutcome) {
	outcome := domain.CheckPurchase(s.record, slot, itemID, cost)
	payload := event.PurchasePayloadV1{Slot: slot, Item: itemID, Cost: cost, Outcome: outcome.String()}
	log := logger.FromContext(ctx)

	if !outcome.Succeeded() {
		log.Info(LogMsgPurchaseDenied, "key", s.key, "slot", slot, "item", itemID, "cost", cost, "outcome", outcome.String())
		s.publish(ctx, event.ItemPurchased, payload)
		return s.Record(), outcome
	}

	next := s.record.Clone()
	next.Coins -= cost
	next.Inventory[slot] = append(next.Inventory[slot], itemID)
	s.commit(ctx, next)

	log.Info(LogMsgPurchaseCompleted, "key", s.key, "slot", slot, "item", itemID, "cost", cost, "coins", next.Coins)
	s.publish(ctx, event.ItemPurchased, payload)
	return s.Record(), outcome
}

// BuyItem purchases a catalog entry at its listed price. Unlike PurchaseItem
// it requires the shop to be unlocked and reports denials as errors.
func (s *Store) BuyItem(ctx context.Context, shopItemID string) (domain.GameRecord, domain.ShopItem, error) {
	item, ok := s.table.ShopItem(shopItemID)
	if !ok {
		return s.Record(), domain.ShopItem{}, fmt.Errorf("%w: %q", domain.ErrShopItemNotFound, shopItemID)
	}
	if !s.ShopUnlocked() {
		return s.Record(), item, fmt.Errorf("%w: %d of %d quests completed",
			domain.ErrShopLocked, s.record.CompletedTasks, s.table.UnlockThreshold())
	}

	rec, outcome := s.PurchaseItem(ctx, item.Slot, item.Item, item.Cost)
	return rec, item, domain.PurchaseError(outcome)
}

// EquipItem puts itemID on the avatar slot. Unless lenient equip is enabled
// the item must be in the matching inventory slot.
func (s *Store) EquipItem(ctx context.Context, avatarSlot, itemID string) (domain.GameRecord, error) {
	if avatarSlot == "" || itemID == "" {
		return s.Record(), fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgEmptyAvatarKey)
	}

	inventorySlot := s.table.InventorySlotFor(avatarSlot)
	if !s.lenientEquip && !s.record.Owns(inventorySlot, itemID) {
		return s.Record(), fmt.Errorf("%w: %q in %q", domain.ErrItemNotOwned, itemID, inventorySlot)
	}

	next := s.record.Clone()
	next.Avatar[avatarSlot] = itemID
	s.commit(ctx, next)

	logger.FromContext(ctx).Info(LogMsgItemEquipped, "key", s.key, "slot", avatarSlot, "item", itemID)
	s.publish(ctx, event.ItemEquipped, event.EquipPayloadV1{Slot: avatarSlot, Item: itemID})
	return s.Record(), nil
}

// SaveGame snapshots the current record into slotID, replacing whatever
// the slot held
func (s *Store) SaveGame(ctx context.Context, slotID string) domain.GameRecord {
	snap := &domain.SaveSnapshot{
		GameRecord: s.record.Clone(),
		LastSave:   s.now().In(s.loc).Format(domain.LastSaveLayout),
	}

	next := s.record.Clone()
	next.SaveSlots[slotID] = snap
	s.commit(ctx, next)

	logger.FromContext(ctx).Info(LogMsgGameSaved, "key", s.key, "slot", slotID, "last_save", snap.LastSave)
	s.publish(ctx, event.GameSaved, event.SavePayloadV1{SlotID: slotID})
	return s.Record()
}

// LoadGame replaces the whole record, save slots included, with the
// snapshot in slotID. It reports false and changes nothing for an empty slot.
// The active quest is kept.
func (s *Store) LoadGame(ctx context.Context, slotID string) (domain.GameRecord, bool) {
	log := logger.FromContext(ctx)

	snap := s.record.SaveSlots[slotID]
	if snap == nil {
		log.Info(LogMsgLoadEmptySlot, "key", s.key, "slot", slotID)
		s.publish(ctx, event.GameLoaded, event.SavePayloadV1{SlotID: slotID, Loaded: false})
		return s.Record(), false
	}

	s.commit(ctx, snap.GameRecord.Clone())

	log.Info(LogMsgGameLoaded, "key", s.key, "slot", slotID, "last_save", snap.LastSave)
	s.publish(ctx, event.GameLoaded, event.SavePayloadV1{SlotID: slotID, Loaded: true})
	return s.Record(), true
}

// commit installs next as the current record and writes it through.
// A failed write is reported and the new record stays.
func (s *Store) commit(ctx context.Context, next domain.GameRecord) {
	s.record = next

	blob, err := Encode(next)
	if err == nil {
		err = s.provider.Save(ctx, s.key, blob)
	}
	if err != nil {
		s.reportFailure(ctx, OpSave, fmt.Errorf("%w: %v", domain.ErrPersistenceWrite, err))
	}
}

func (s *Store) reportFailure(ctx context.Context, op string, err error) {
	msg := LogMsgPersistFailed
	if op == OpLoad {
		msg = LogMsgStateReadFailed
	}
	logger.FromContext(ctx).Warn(msg, "key", s.key, "op", op, "error", err)

	s.publish(ctx, event.PersistenceFailed, event.PersistencePayloadV1{Op: op, Error: err.Error()})
	if s.diagnostics != nil {
		s.diagnostics(err)
	}
}

func (s *Store) publish(ctx context.Context, t event.Type, payload interface{}) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, event.New(t, s.key, payload)); err != nil {
		logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "type", t, "error", err)
	}
}
