package order

import "time"

// StatusHistoryEntry is one accepted status change. Entries are values: once
// appended to an order's ledger they are never changed or removed.
type StatusHistoryEntry struct {
	from      Status
	to        Status
	reason    string
	timestamp time.Time
}

// NewStatusHistoryEntry records a change from -> to at the given time. reason may be empty.
func NewStatusHistoryEntry(from, to Status, reason string, timestamp time.Time) StatusHistoryEntry {
	return StatusHistoryEntry{
		from:      from,
		to:        to,
		reason:    reason,
		timestamp: timestamp,
	}
}

// From returns the status before the change.
func (e StatusHistoryEntry) From() Status { return e.from }

// To returns the status after the change.
func (e StatusHistoryEntry) To() Status { return e.to }

// Reason returns the free-text reason, possibly empty.
func (e StatusHistoryEntry) Reason() string { return e.reason }

// Timestamp returns when the change was accepted.
func (e StatusHistoryEntry) Timestamp() time.Time { return e.timestamp }
