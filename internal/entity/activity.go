package entity

import "time"

// ActivityEntry is append-only and scoped to the process lifetime. Entries
// are never mutated, deleted, or persisted.
type ActivityEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Action    string    `json:"action"`
	Details   string    `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
