// Package catalog holds the canonical keyword table compiled into the
// binary. It is the ground truth used to seed the remote store and the
// disaster fallback answering requests when the remote store is unusable.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/guimashan/platfrom-sub000/internal/keyword"
	"github.com/guimashan/platfrom-sub000/internal/models"
)

// SystemAuthor stamps audit fields on records seeded from the canonical table.
const SystemAuthor = "system"

// Entry is one canonical keyword definition. Entries carry the raw keyword
// only; the normalized form is derived when converting to records.
type Entry struct {
	Keyword     string              `json:"keyword"`
	Aliases     []string            `json:"aliases,omitempty"`
	Category    string              `json:"category"`
	Priority    int                 `json:"priority"`
	Enabled     bool                `json:"enabled"`
	Action      models.Action       `json:"action"`
	Reply       models.ReplyPayload `json:"reply"`
	Description string              `json:"description,omitempty"`
}

// Catalog is the in-process canonical table. The compiled-in entries can be
// replaced wholesale by an exported override snapshot; reads always see a
// complete table.
type Catalog struct {
	mu      sync.RWMutex
	entries []Entry
}

// New returns a catalog seeded with the compiled-in table.
func New() *Catalog {
	return &Catalog{entries: defaultEntries}
}

// Entries returns a copy of the current canonical entries.
func (c *Catalog) Entries() []Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len returns the number of canonical entries.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Records converts the canonical entries to keyword records with the
// normalized keyword stamped and system audit fields set, sorted by
// priority descending. The sort is stable so entry order breaks ties.
func (c *Catalog) Records() []models.KeywordRecord {
	entries := c.Entries()
	now := time.Now()

	records := make([]models.KeywordRecord, 0, len(entries))
	for _, e := range entries {
		records = append(records, models.KeywordRecord{
			Keyword:           e.Keyword,
			NormalizedKeyword: keyword.Normalize(e.Keyword),
			Aliases:           append([]string(nil), e.Aliases...),
			Category:          e.Category,
			Priority:          e.Priority,
			Enabled:           e.Enabled,
			Action:            e.Action,
			ReplyPayload:      e.Reply,
			Description:       e.Description,
			CreatedBy:         SystemAuthor,
			CreatedAt:         now,
			UpdatedBy:         SystemAuthor,
			UpdatedAt:         now,
		})
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Priority > records[j].Priority
	})
	return records
}

// EnabledRecords returns only the enabled records, priority descending.
// This is the fallback snapshot served when the remote store is unusable.
func (c *Catalog) EnabledRecords() []models.KeywordRecord {
	all := c.Records()
	out := all[:0:0]
	for _, r := range all {
		if r.Enabled {
			out = append(out, r)
		}
	}
	return out
}

// LoadOverride replaces the canonical entries with a JSON snapshot, as
// produced by the export pipeline. A snapshot that fails to parse or
// validate leaves the current table untouched.
func (c *Catalog) LoadOverride(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read override snapshot: %w", err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("failed to parse override snapshot: %w", err)
	}
	if len(entries) == 0 {
		return fmt.Errorf("override snapshot %s contains no entries", path)
	}
	for _, e := range entries {
		if err := e.Action.Validate(); err != nil {
			return fmt.Errorf("override entry %q: %w", e.Keyword, err)
		}
	}

	c.mu.Lock()
	c.entries = entries
	c.mu.Unlock()
	return nil
}
