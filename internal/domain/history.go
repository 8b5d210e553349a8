package domain

import "time"

// HistoryEntry is an immutable audit record of a status transition.
// The history slice on an order is append-only and monotonically
// non-decreasing by date.
type HistoryEntry struct {
	ID      string
	Date    time.Time
	Status  Status // order status at the time of the entry
	Actor   string
	Comment string
}

// Comment is a free-text note left on an order. Append-only, like history.
type Comment struct {
	ID    string
	Date  time.Time
	Actor string
	Text  string
}
