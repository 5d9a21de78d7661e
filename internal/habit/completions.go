package habit

import (
	"math"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Log is the append-only completion log. Entries are never deduplicated: the
// same (habit_id, date) pair may be recorded any number of times.
type Log struct {
	mu          sync.RWMutex
	completions []Completion
	habits      *Store
	now         func() time.Time
	logger      zerolog.Logger
}

// NewLog creates an empty completion log bound to a habit store. Recording a
// completed entry bumps the habit's event streak as a side effect.
func NewLog(habits *Store, logger zerolog.Logger, opts ...Option) *Log {
	o := buildOptions(opts)
	return &Log{
		habits: habits,
		now:    o.now,
		logger: logger.With().Str("component", "completion_log").Logger(),
	}
}

// Record appends a completion. An empty date defaults to today.
func (l *Log) Record(habitID int, date string, completed bool) Completion {
	now := l.now().UTC()
	if date == "" {
		date = now.Format(DateFormat)
	}

	c := Completion{
		HabitID:   habitID,
		Date:      date,
		Completed: completed,
		Timestamp: now,
	}

	l.mu.Lock()
	l.completions = append(l.completions, c)
	l.mu.Unlock()

	if completed {
		if !l.habits.bumpStreak(habitID) {
			l.logger.Debug().Int("habit_id", habitID).Msg("completion for unknown habit; streak not bumped")
		}
	}

	l.logger.Info().
		Int("habit_id", habitID).
		Str("date", date).
		Bool("completed", completed).
		Msg("completion recorded")

	return c
}

// Today returns all completions recorded for the current calendar date,
// along with that date.
func (l *Log) Today() ([]Completion, string) {
	today := l.now().UTC().Format(DateFormat)

	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Completion, 0)
	for _, c := range l.completions {
		if c.Date == today {
			out = append(out, c)
		}
	}
	return out, today
}

// History returns one entry per day for the last days calendar days,
// oldest first, ending at today. days values below 1 fall back to 7.
func (l *Log) History(days int) []DayHistory {
	if days < 1 {
		days = 7
	}

	today := l.now().UTC()
	total := l.habits.Count()

	l.mu.RLock()
	completedByDate := make(map[string]int)
	for _, c := range l.completions {
		if c.Completed {
			completedByDate[c.Date]++
		}
	}
	l.mu.RUnlock()

	history := make([]DayHistory, 0, days)
	for i := 0; i < days; i++ {
		date := today.AddDate(0, 0, -(days - 1 - i)).Format(DateFormat)
		done := completedByDate[date]

		percentage := 0
		if total > 0 {
			percentage = int(math.Round(float64(done) / float64(total) * 100))
		}

		history = append(history, DayHistory{
			Date:       date,
			Completed:  done,
			Total:      total,
			Percentage: percentage,
		})
	}
	return history
}

// all returns a snapshot of the whole log (stats engine use).
func (l *Log) all() []Completion {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Completion, len(l.completions))
	copy(out, l.completions)
	return out
}
