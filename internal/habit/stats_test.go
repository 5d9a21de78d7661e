package habit

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func newTestEngine(t *testing.T) (*Store, *Log, *Engine) {
	t.Helper()
	clock := fixedClock()
	s := NewStore(zerolog.Nop(), WithClock(clock))
	l := NewLog(s, zerolog.Nop(), WithClock(clock))
	e := NewEngine(s, l, WithClock(clock))
	return s, l, e
}

func TestEngine_ZeroHabits(t *testing.T) {
	_, l, e := newTestEngine(t)

	// Orphan completions must not produce a streak without habits.
	l.Record(1, "", true)

	stats := e.Summary()
	assert.Equal(t, Stats{}, stats)
}

func TestEngine_SingleHabitSingleDay(t *testing.T) {
	s, l, e := newTestEngine(t)
	h := s.Create("Read", "")
	l.Record(h.ID, "", true)

	stats := e.Summary()
	assert.Equal(t, 1, stats.TotalHabits)
	assert.Equal(t, 1, stats.CurrentStreak)
	assert.Equal(t, 1, stats.LongestStreak)
	// 1 completion / (1 habit * 30 days) = 3.33% → 3
	assert.Equal(t, 3, stats.CompletionRate)
}

func TestEngine_CurrentStreakStopsAtGap(t *testing.T) {
	s, l, e := newTestEngine(t)
	h := s.Create("Read", "")

	l.Record(h.ID, "2026-03-15", true)
	l.Record(h.ID, "2026-03-14", true)
	// 2026-03-13 missed
	l.Record(h.ID, "2026-03-12", true)

	assert.Equal(t, 2, e.Summary().CurrentStreak)
}

func TestEngine_CurrentStreakZeroWhenTodayIncomplete(t *testing.T) {
	s, l, e := newTestEngine(t)
	h := s.Create("Read", "")
	l.Record(h.ID, "2026-03-14", true)

	stats := e.Summary()
	assert.Equal(t, 0, stats.CurrentStreak)
	// The earlier run still shows in the year-long scan.
	assert.Equal(t, 1, stats.LongestStreak)
}

func TestEngine_DayCountsRequireAllHabits(t *testing.T) {
	s, l, e := newTestEngine(t)
	a := s.Create("Read", "")
	s.Create("Exercise", "")

	// Only one of two habits done today.
	l.Record(a.ID, "", true)
	assert.Equal(t, 0, e.Summary().CurrentStreak)
}

func TestEngine_DuplicateCompletionsDontInflateStreak(t *testing.T) {
	s, l, e := newTestEngine(t)
	a := s.Create("Read", "")
	s.Create("Exercise", "")

	// Same habit marked twice today; the second habit never done.
	l.Record(a.ID, "", true)
	l.Record(a.ID, "", true)

	assert.Equal(t, 0, e.Summary().CurrentStreak)
}

func TestEngine_IncompleteEntriesIgnored(t *testing.T) {
	s, l, e := newTestEngine(t)
	h := s.Create("Read", "")
	l.Record(h.ID, "", false)

	stats := e.Summary()
	assert.Equal(t, 0, stats.CurrentStreak)
	assert.Equal(t, 0, stats.CompletionRate)
}

func TestEngine_LongestStreakScansAcrossGaps(t *testing.T) {
	s, l, e := newTestEngine(t)
	h := s.Create("Read", "")

	// Current run: 2 days ending today.
	l.Record(h.ID, "2026-03-15", true)
	l.Record(h.ID, "2026-03-14", true)
	// Older, longer run: 3 days.
	l.Record(h.ID, "2026-03-10", true)
	l.Record(h.ID, "2026-03-09", true)
	l.Record(h.ID, "2026-03-08", true)

	stats := e.Summary()
	assert.Equal(t, 2, stats.CurrentStreak)
	assert.Equal(t, 3, stats.LongestStreak)
}

func TestEngine_CompletionRateRounded(t *testing.T) {
	s, l, e := newTestEngine(t)
	h := s.Create("Read", "")

	// 15 completed days / 30 possible = 50%.
	for i := 0; i < 15; i++ {
		l.Record(h.ID, fixedClock()().AddDate(0, 0, -i).Format(DateFormat), true)
	}

	stats := e.Summary()
	assert.Equal(t, 50, stats.CompletionRate)
	assert.GreaterOrEqual(t, stats.CompletionRate, 0)
	assert.LessOrEqual(t, stats.CompletionRate, 100)
}

func TestEngine_CompletionRateIgnoresOldEntries(t *testing.T) {
	s, l, e := newTestEngine(t)
	h := s.Create("Read", "")

	l.Record(h.ID, "2025-01-01", true)
	assert.Equal(t, 0, e.Summary().CompletionRate)
}
