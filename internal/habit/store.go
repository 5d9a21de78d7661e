package habit

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Store or Log.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock overrides the time source (tests).
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Store is the in-memory habit collection. Habits keep insertion order; ids
// come from a counter that never goes backward, so a deleted habit's id is
// not handed out again within the process lifetime.
type Store struct {
	mu     sync.RWMutex
	habits []*Habit
	nextID int
	now    func() time.Time
	logger zerolog.Logger
}

// NewStore creates an empty habit store.
func NewStore(logger zerolog.Logger, opts ...Option) *Store {
	o := buildOptions(opts)
	return &Store{
		nextID: 1,
		now:    o.now,
		logger: logger.With().Str("component", "habit_store").Logger(),
	}
}

// List returns a snapshot of all habits in insertion order.
func (s *Store) List() []Habit {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Habit, 0, len(s.habits))
	for _, h := range s.habits {
		out = append(out, *h)
	}
	return out
}

// Create appends a new habit and returns it. An empty icon gets DefaultIcon.
func (s *Store) Create(name, icon string) Habit {
	if icon == "" {
		icon = DefaultIcon
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	h := &Habit{
		ID:        s.nextID,
		Name:      name,
		Icon:      icon,
		Streak:    0,
		CreatedAt: s.now().UTC(),
	}
	s.nextID++
	s.habits = append(s.habits, h)

	s.logger.Info().Int("habit_id", h.ID).Str("name", h.Name).Msg("habit created")
	return *h
}

// Delete removes all habits with the given id. Deleting an unknown id is not
// an error.
func (s *Store) Delete(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.habits[:0]
	removed := 0
	for _, h := range s.habits {
		if h.ID == id {
			removed++
			continue
		}
		kept = append(kept, h)
	}
	s.habits = kept

	if removed > 0 {
		s.logger.Info().Int("habit_id", id).Int("removed", removed).Msg("habit deleted")
	}
}

// Count returns the number of habits currently tracked.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.habits)
}

// bumpStreak increments the event streak of the habit with the given id.
// Returns false if no such habit exists.
func (s *Store) bumpStreak(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, h := range s.habits {
		if h.ID == id {
			h.Streak++
			return true
		}
	}
	return false
}
