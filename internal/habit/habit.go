// Package habit holds the in-memory habit store, the append-only completion
// log and the statistics engine derived from both.
package habit

import "time"

// DateFormat is the calendar-date layout used throughout the API.
const DateFormat = "2006-01-02"

// DefaultIcon is assigned to habits created without an icon.
const DefaultIcon = "🎯"

// Habit is a named recurring activity tracked for daily completion.
//
// Streak is the event streak: incremented once per completed completion event,
// never decremented or recomputed. It is intentionally a different metric from
// the stats engine's current streak (all habits completed on consecutive days).
type Habit struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon"`
	Streak    int       `json:"streak"`
	CreatedAt time.Time `json:"created_at"`
}

// Completion records that a habit was (or wasn't) done on a calendar date.
// The referenced habit is not required to exist; the log is append-only and
// survives habit deletion.
type Completion struct {
	HabitID   int       `json:"habit_id"`
	Date      string    `json:"date"`
	Completed bool      `json:"completed"`
	Timestamp time.Time `json:"timestamp"`
}

// DayHistory is one day's rollup in the completion history.
type DayHistory struct {
	Date       string `json:"date"`
	Completed  int    `json:"completed"`
	Total      int    `json:"total"`
	Percentage int    `json:"percentage"`
}

// Stats is the derived summary over the habit store and completion log.
type Stats struct {
	TotalHabits    int `json:"total_habits"`
	CurrentStreak  int `json:"current_streak"`
	CompletionRate int `json:"completion_rate"`
	LongestStreak  int `json:"longest_streak"`
}
