package domain

import "time"

// SyncStats holds statistics about an ingestion run.
type SyncStats struct {
	Source    string
	Fetched   int
	New       int
	Updated   int
	Skipped   int
	Errors    int
	Published int
	Duration  time.Duration
}

func (s *SyncStats) Add(o SyncStats) {
	s.Fetched += o.Fetched
	s.New += o.New
	s.Updated += o.Updated
	s.Skipped += o.Skipped
	s.Errors += o.Errors
	s.Published += o.Published
}

// SyncState is the persisted run state of one pull source (a query slot).
type SyncState struct {
	ID           int64     `db:"id"`
	SourceID     string    `db:"source_id"`
	LastSyncedAt time.Time `db:"last_synced_at"`
	LastPostID   int64     `db:"last_post_id"`
	TotalSynced  int64     `db:"total_synced"`
}
