package prediction

import (
	"sync"
	"time"
)

// Record is one archived prediction. The unrounded score is kept here even
// though the API returns a rounded one.
type Record struct {
	HabitID    *int      `json:"habit_id,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
	Prediction float64   `json:"prediction"`
}

// AuditLog is the append-only prediction archive. No exposed operation reads
// it back; it exists for operators (count surfaces in metrics).
type AuditLog struct {
	mu      sync.Mutex
	records []Record
}

// NewAuditLog creates an empty audit log.
func NewAuditLog() *AuditLog {
	return &AuditLog{}
}

// Append archives a prediction.
func (a *AuditLog) Append(r Record) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.records = append(a.records, r)
}

// Count returns the number of archived predictions.
func (a *AuditLog) Count() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.records)
}
