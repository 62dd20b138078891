package domain

import "time"

// AuditEntry holds one recorded transition of a transaction record.
// Entries are append-only; they are never mutated or deleted.
type AuditEntry struct {
	ID         int64     `json:"id"`
	RecordID   string    `json:"record_id"`
	FromStatus Status    `json:"from_status"`
	ToStatus   Status    `json:"to_status"`
	Actor      string    `json:"actor"`
	Reason     string    `json:"reason"`
	CreatedAt  time.Time `json:"created_at"`
}
