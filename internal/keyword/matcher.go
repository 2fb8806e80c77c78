package keyword

import (
	"strings"

	"github.com/guimashan/platfrom-sub000/internal/models"
)

// MatchReason records which rule produced a match.
type MatchReason string

const (
	ReasonExact   MatchReason = "exact"
	ReasonAlias   MatchReason = "alias"
	ReasonPartial MatchReason = "partial"
)

// Match is a resolved keyword hit.
type Match struct {
	Record models.KeywordRecord
	Reason MatchReason
}

// Resolve maps raw user text to at most one keyword record. Records must
// already be sorted by priority descending; Resolve never reorders or
// deduplicates them, so for a fixed input and ordering the result is stable.
//
// The scan is a single linear pass, first hit wins. Per record:
// exact match on the normalized keyword, then exact match on any normalized
// alias, then substring containment of the normalized keyword in the input.
// Aliases deliberately do not participate in substring matching; reply
// routing has always depended on that asymmetry.
func Resolve(raw string, records []models.KeywordRecord) *Match {
	input := Normalize(raw)
	if input == "" {
		return nil
	}

	for i := range records {
		rec := &records[i]
		if rec.NormalizedKeyword == "" {
			continue
		}

		if input == rec.NormalizedKeyword {
			return &Match{Record: *rec, Reason: ReasonExact}
		}

		for _, alias := range rec.Aliases {
			if input == Normalize(alias) {
				return &Match{Record: *rec, Reason: ReasonAlias}
			}
		}

		if strings.Contains(input, rec.NormalizedKeyword) {
			return &Match{Record: *rec, Reason: ReasonPartial}
		}
	}

	return nil
}
