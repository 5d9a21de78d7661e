// Package leaderboard serves the static mock ranking. Entries can be seeded
// from a YAML file; without one the built-in demo data is used.
package leaderboard

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Entry is one leaderboard row.
type Entry struct {
	Rank   int    `json:"rank" yaml:"rank"`
	Name   string `json:"name" yaml:"name"`
	Avatar string `json:"avatar" yaml:"avatar"`
	Streak int    `json:"streak" yaml:"streak"`
	Score  int    `json:"score" yaml:"score"`
}

// Leaderboard holds a fixed ranking for the process lifetime.
type Leaderboard struct {
	entries []Entry
}

// defaultEntries mirrors the demo ranking the service shipped with.
func defaultEntries() []Entry {
	return []Entry{
		{Rank: 1, Name: "Trịnh Đình Thắng", Avatar: "TĐ", Streak: 15, Score: 1250},
		{Rank: 2, Name: "Nguyễn Văn A", Avatar: "NV", Streak: 12, Score: 980},
		{Rank: 3, Name: "Lê Thị B", Avatar: "LT", Streak: 10, Score: 850},
		{Rank: 4, Name: "Phạm Thị C", Avatar: "PT", Streak: 8, Score: 720},
	}
}

// New returns the built-in leaderboard.
func New() *Leaderboard {
	return &Leaderboard{entries: defaultEntries()}
}

// LoadFile reads a leaderboard from a YAML seed file.
func LoadFile(path string) (*Leaderboard, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading leaderboard seed: %w", err)
	}

	var doc struct {
		Leaderboard []Entry `yaml:"leaderboard"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing leaderboard seed: %w", err)
	}
	if len(doc.Leaderboard) == 0 {
		return nil, fmt.Errorf("leaderboard seed %s has no entries", path)
	}

	return &Leaderboard{entries: doc.Leaderboard}, nil
}

// Entries returns a copy of the ranking.
func (l *Leaderboard) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}
