package models

import "time"

// Pipeline report statuses.
const (
	StatusOK      = "ok"
	StatusPartial = "partial"
	StatusFailed  = "failed"
	StatusAborted = "aborted"
)

// MigrateReport is the structured result of a Migrate run.
// When the store is already populated and force is false, Status is
// "aborted" and ExistingCount carries the untouched record count.
type MigrateReport struct {
	Status        string         `json:"status"`
	ExistingCount int            `json:"existing_count,omitempty"`
	Deleted       int            `json:"deleted,omitempty"`
	Inserted      int            `json:"inserted"`
	Categories    map[string]int `json:"categories,omitempty"`
	Failures      []EntryFailure `json:"failures,omitempty"`
	RanAt         time.Time      `json:"ran_at"`
}

// RebuildReport is the structured result of a Rebuild run.
type RebuildReport struct {
	Status   string         `json:"status"`
	Deleted  int            `json:"deleted"`
	Inserted int            `json:"inserted"`
	Failures []EntryFailure `json:"failures,omitempty"`
	RanAt    time.Time      `json:"ran_at"`
}

// EntryFailure records a single keyword that failed during a pipeline run.
type EntryFailure struct {
	Keyword string `json:"keyword"`
	Error   string `json:"error"`
}

// ExportReport carries a freshly generated canonical-table source snapshot.
type ExportReport struct {
	Count       int       `json:"count"`
	Source      string    `json:"source"`
	GeneratedAt time.Time `json:"generated_at"`
}
