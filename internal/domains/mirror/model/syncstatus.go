package model

import "time"

const (
	SyncStatusTableName  = "sync_status"
	SyncStatusEntityName = "sync status"

	FieldSyncID = "id"
)

// Sync lifecycle states. A row stays in its terminal state (success or
// error) until the next run flips it back to running.
const (
	SyncStateNever   = "never"
	SyncStateRunning = "running"
	SyncStateSuccess = "success"
	SyncStateError   = "error"
)

// SyncStatus is the per-domain sync ledger, one row per synced domain
// (bookings, properties). LastSyncAt only moves on terminal transitions so a
// crashed run never advances the watermark.
type SyncStatus struct {
	ID            string     `db:"id"`
	Status        string     `db:"status"`
	StartedAt     *time.Time `db:"started_at"`
	LastSyncAt    *time.Time `db:"last_sync_at"`
	LastError     *string    `db:"last_error"`
	BookingsCount int        `db:"bookings_count"`
	ListingsCount int        `db:"listings_count"`
	FailedCount   int        `db:"failed_count"`
	DurationMs    int64      `db:"duration_ms"`
	UpdatedAt     time.Time  `db:"updated_at"`
}
