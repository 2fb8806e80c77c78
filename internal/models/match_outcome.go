package models

import "time"

// Match outcome constants
const (
	OutcomeExact    = "exact"
	OutcomeAlias    = "alias"
	OutcomePartial  = "partial"
	OutcomeFallback = "fallback" // resolved against the compiled-in table
	OutcomeDefault  = "default"  // no keyword matched, default reply sent
)

// MatchOutcome represents a per-keyword hit count by outcome.
type MatchOutcome struct {
	Keyword    string
	Outcome    string
	Count      int64
	LastSeenAt time.Time
}
