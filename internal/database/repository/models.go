package repository

import "time"

// Snapshot summarizes the persisted catalog.
type Snapshot struct {
	ID      string
	SavedAt time.Time
	Count   int
}
