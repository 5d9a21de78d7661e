package habit

import (
	"math"
	"time"
)

const (
	completionRateWindowDays = 30
	longestStreakLookback    = 365
)

// Engine derives summary statistics from the habit store and completion log.
// Everything is recomputed from the raw log on each call; there is no cache.
type Engine struct {
	habits      *Store
	completions *Log
	now         func() time.Time
}

// NewEngine creates a stats engine over a store and log.
func NewEngine(habits *Store, completions *Log, opts ...Option) *Engine {
	o := buildOptions(opts)
	return &Engine{habits: habits, completions: completions, now: o.now}
}

// Summary computes the full statistics snapshot. With zero habits no day can
// ever count, so every figure is zero.
func (e *Engine) Summary() Stats {
	total := e.habits.Count()
	log := e.completions.all()
	today := e.now().UTC()

	// Distinct completed habit ids per date drive the day-counting rule;
	// the raw completed count per date drives the 30-day rate.
	doneByDate := make(map[string]map[int]struct{})
	completedCount := make(map[string]int)
	for _, c := range log {
		if !c.Completed {
			continue
		}
		set, ok := doneByDate[c.Date]
		if !ok {
			set = make(map[int]struct{})
			doneByDate[c.Date] = set
		}
		set[c.HabitID] = struct{}{}
		completedCount[c.Date]++
	}

	dayCounts := func(date string) bool {
		return total > 0 && len(doneByDate[date]) == total
	}

	// Current streak: consecutive counting days ending today.
	currentStreak := 0
	for day := today; dayCounts(day.Format(DateFormat)); day = day.AddDate(0, 0, -1) {
		currentStreak++
	}

	// Completion rate over the trailing 30-day window, today inclusive.
	completionRate := 0
	if total > 0 {
		done := 0
		for i := 0; i < completionRateWindowDays; i++ {
			done += completedCount[today.AddDate(0, 0, -i).Format(DateFormat)]
		}
		possible := total * completionRateWindowDays
		completionRate = int(math.Round(float64(done) / float64(possible) * 100))
	}

	// Longest streak within the trailing year. A non-counting day breaks the
	// run but the scan continues across the whole window.
	longestStreak := 0
	run := 0
	for i := 0; i < longestStreakLookback; i++ {
		if dayCounts(today.AddDate(0, 0, -i).Format(DateFormat)) {
			run++
			if run > longestStreak {
				longestStreak = run
			}
		} else {
			run = 0
		}
	}

	return Stats{
		TotalHabits:    total,
		CurrentStreak:  currentStreak,
		CompletionRate: completionRate,
		LongestStreak:  longestStreak,
	}
}
