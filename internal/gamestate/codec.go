package gamestate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/osse101/QuestTown_Go/internal/domain"
)

// Encode serializes a record to its stored JSON form
func Encode(r domain.GameRecord) ([]byte, error) {
	return json.Marshal(r)
}

// Decode parses a stored record. A blob that is not a JSON object yields the
// default record and an error wrapping domain.ErrPersistenceRead. Individual
// fields that are missing or invalid fall back to their defaults.
func Decode(data []byte) (domain.GameRecord, error) {
	rec, _, err := decode(data)
	return rec, err
}

func decode(data []byte) (domain.GameRecord, []error, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return domain.DefaultRecord(), nil, fmt.Errorf("%w: %v", domain.ErrPersistenceRead, err)
	}
	if fields == nil {
		return domain.DefaultRecord(), nil, fmt.Errorf("%w: %s", domain.ErrPersistenceRead, ErrMsgNullBlob)
	}

	d := &decoder{}
	return d.record(fields, ""), d.errs, nil
}

type decoder struct {
	errs []error
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// field unmarshals fields[name] into dst. It reports false when the field is
// absent, null or of the wrong type.
func (d *decoder) field(fields map[string]json.RawMessage, path, name string, dst any) bool {
	raw, ok := fields[name]
	if !ok || isNull(raw) {
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		d.errs = append(d.errs, fmt.Errorf(ErrMsgFieldFormat, path+name, err))
		return false
	}
	return true
}

func (d *decoder) intField(fields map[string]json.RawMessage, path, name string, def, floor int) int {
	var n int
	if !d.field(fields, path, name, &n) {
		return def
	}
	if n < floor {
		d.errs = append(d.errs, fmt.Errorf(ErrMsgFieldFormat, path+name, errors.New("out of range")))
		return floor
	}
	return n
}

func (d *decoder) record(fields map[string]json.RawMessage, path string) domain.GameRecord {
	rec := domain.DefaultRecord()

	rec.XP = d.intField(fields, path, fieldXP, 0, 0)
	rec.Coins = d.intField(fields, path, fieldCoins, 0, 0)
	rec.CompletedTasks = d.intField(fields, path, fieldCompletedTasks, 0, 0)
	rec.Level = d.intField(fields, path, fieldLevel, domain.DefaultLevel, domain.DefaultLevel)

	var avatar map[string]string
	if d.field(fields, path, fieldAvatar, &avatar) {
		rec.Avatar = avatar
	}

	var inventory map[string][]string
	if d.field(fields, path, fieldInventory, &inventory) {
		rec.Inventory = make(map[string][]string, len(inventory))
		for slot, items := range inventory {
			if items == nil {
				continue
			}
			rec.Inventory[slot] = dedupe(items)
		}
	}

	var slots map[string]json.RawMessage
	if d.field(fields, path, fieldSaveSlots, &slots) {
		for id, raw := range slots {
			if isNull(raw) {
				continue
			}
			slotPath := path + fieldSaveSlots + "." + id + "."
			var snapFields map[string]json.RawMessage
			if err := json.Unmarshal(raw, &snapFields); err != nil {
				d.errs = append(d.errs, fmt.Errorf(ErrMsgFieldFormat, slotPath[:len(slotPath)-1], err))
				continue
			}
			snap := &domain.SaveSnapshot{GameRecord: d.record(snapFields, slotPath)}
			d.field(snapFields, slotPath, fieldLastSave, &snap.LastSave)
			rec.SaveSlots[id] = snap
		}
	}

	return rec
}

// dedupe drops repeated items keeping first-acquisition order
func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
