package gamestate

import (
	"time"

	"github.com/osse101/QuestTown_Go/internal/event"
)

// Option configures a Store
type Option func(*Store)

// WithKey sets the blob key the record is stored under
func WithKey(key string) Option {
	return func(s *Store) {
		s.key = key
	}
}

// WithClock sets the time source used for save timestamps
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithLocation sets the time zone save timestamps are rendered in
func WithLocation(loc *time.Location) Option {
	return func(s *Store) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithRand sets the quest picker. intn must return a value in [0, n).
func WithRand(intn func(n int) int) Option {
	return func(s *Store) {
		s.intn = intn
	}
}

// WithLenientEquip lets players equip items they do not own
func WithLenientEquip() Option {
	return func(s *Store) {
		s.lenientEquip = true
	}
}

// WithDiagnostics receives every non-fatal persistence failure
func WithDiagnostics(fn func(error)) Option {
	return func(s *Store) {
		s.diagnostics = fn
	}
}

// WithEventBus publishes game events on bus
func WithEventBus(bus event.Bus) Option {
	return func(s *Store) {
		s.bus = bus
	}
}
