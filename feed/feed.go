// Package feed pushes accepted draft picks out to live subscribers. The
// store half gives receivers idempotent merge semantics: events are keyed by
// primary key and an event whose key has already been applied is dropped, so
// redundant or out-of-order delivery never duplicates state.
package feed

import (
	"fmt"
	"sync"

	"github.com/dkush22/nfl-playoff-draft/model"
)

// PickEvent is one accepted pick, scoped to a league.
type PickEvent struct {
	LeagueID int32      `json:"league_id"`
	Pick     model.Pick `json:"pick"`
}

// Key is the event's primary key: a pick number is unique within a league.
func (e *PickEvent) Key() string {
	return fmt.Sprintf("%d:%d", e.LeagueID, e.Pick.PickNum)
}

// Feed fans pick events out to subscribers. Subscribers that fall behind
// have events dropped rather than blocking the publisher; the UI reconciles
// against the authoritative pick list anyway.
type Feed struct {
	mu   sync.Mutex
	subs map[chan PickEvent]int32
}

func New() *Feed {
	return &Feed{
		subs: make(map[chan PickEvent]int32),
	}
}

// Subscribe registers for events from one league. The returned channel is
// closed by Unsubscribe.
func (f *Feed) Subscribe(leagueID int32) chan PickEvent {
	ch := make(chan PickEvent, 16)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.subs[ch] = leagueID

	return ch
}

func (f *Feed) Unsubscribe(ch chan PickEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.subs[ch]; ok {
		delete(f.subs, ch)
		close(ch)
	}
}

// CloseAll closes every subscriber channel. Used at shutdown so open
// websocket write loops end before the http server starts draining.
func (f *Feed) CloseAll() {
	f.mu.Lock()
	defer f.mu.Unlock()

	for ch := range f.subs {
		delete(f.subs, ch)
		close(ch)
	}
}

func (f *Feed) Publish(event PickEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for ch, leagueID := range f.subs {
		if leagueID != event.LeagueID {
			continue
		}
		select {
		case ch <- event:
		default:
		}
	}
}

// Store is a keyed collection with insert-if-absent semantics. Apply
// returns true only the first time a key is seen.
type Store[V any] struct {
	mu     sync.Mutex
	values map[string]V
}

func NewStore[V any]() *Store[V] {
	return &Store[V]{
		values: make(map[string]V),
	}
}

func (s *Store[V]) Apply(key string, value V) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.values[key]; ok {
		return false
	}
	s.values[key] = value
	return true
}

func (s *Store[V]) Get(key string) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.values[key]
	return v, ok
}

func (s *Store[V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.values)
}
