package model

import "time"

// Metadata carries the audit columns shared by all mirrored documents.
// CreatedAt is written once on insert; UpdatedAt and SyncedAt are refreshed
// on every upsert.
type Metadata struct {
	CreatedAt time.Time `db:"created_at" update:"-"`
	UpdatedAt time.Time `db:"updated_at"`
	SyncedAt  time.Time `db:"synced_at"`
}
