package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/guimashan/platfrom-sub000/internal/keyword"
	"github.com/guimashan/platfrom-sub000/internal/models"
)

func validCategory(category string) bool {
	for _, c := range models.CategoryOrder {
		if c == category {
			return true
		}
	}
	return false
}

func TestDefaultEntriesAreValid(t *testing.T) {
	seen := make(map[string]string)
	for _, e := range defaultEntries {
		if e.Keyword == "" {
			t.Error("entry with empty keyword")
		}
		if err := e.Action.Validate(); err != nil {
			t.Errorf("entry %q: invalid action: %v", e.Keyword, err)
		}
		if !validCategory(e.Category) {
			t.Errorf("entry %q: unknown category %q", e.Keyword, e.Category)
		}

		// Keywords and aliases share one namespace after normalization;
		// a collision anywhere would make match results depend on order.
		terms := append([]string{e.Keyword}, e.Aliases...)
		for _, term := range terms {
			norm := keyword.Normalize(term)
			if prev, dup := seen[norm]; dup {
				t.Errorf("terms %q and %q normalize to the same trigger %q", prev, term, norm)
			}
			seen[norm] = term
		}
	}
}

func TestRecords(t *testing.T) {
	c := New()
	records := c.Records()

	if len(records) != len(defaultEntries) {
		t.Fatalf("got %d records, want %d", len(records), len(defaultEntries))
	}

	for i := 1; i < len(records); i++ {
		if records[i-1].Priority < records[i].Priority {
			t.Fatalf("records not sorted by priority descending at index %d", i)
		}
	}

	for _, r := range records {
		if r.NormalizedKeyword != keyword.Normalize(r.Keyword) {
			t.Errorf("record %q: normalized form not stamped", r.Keyword)
		}
		if r.CreatedBy != SystemAuthor || r.UpdatedBy != SystemAuthor {
			t.Errorf("record %q: audit fields = %q/%q, want system", r.Keyword, r.CreatedBy, r.UpdatedBy)
		}
	}
}

func TestEnabledRecords(t *testing.T) {
	c := New()
	for _, r := range c.EnabledRecords() {
		if !r.Enabled {
			t.Errorf("EnabledRecords returned disabled record %q", r.Keyword)
		}
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	c := New()
	entries := c.Entries()
	entries[0].Keyword = "tampered"

	if c.Entries()[0].Keyword == "tampered" {
		t.Error("mutating the returned slice changed the catalog")
	}
}

func TestLoadOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keywords.json")
	snapshot := `[
		{
			"keyword": "測試關鍵字",
			"category": "other",
			"priority": 10,
			"enabled": true,
			"action": {"type": "text"},
			"reply": {"text": "這是測試回覆"}
		}
	]`
	if err := os.WriteFile(path, []byte(snapshot), 0o644); err != nil {
		t.Fatal(err)
	}

	c := New()
	if err := c.LoadOverride(path); err != nil {
		t.Fatalf("LoadOverride error: %v", err)
	}
	if c.Len() != 1 {
		t.Fatalf("catalog has %d entries after override, want 1", c.Len())
	}
	if got := c.Entries()[0].Keyword; got != "測試關鍵字" {
		t.Errorf("keyword = %q", got)
	}
}

func TestLoadOverrideRejectsBadSnapshot(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed json", `{not json`},
		{"empty list", `[]`},
		{"invalid action", `[{"keyword": "x", "category": "other", "action": {"type": "carrier_pigeon"}}]`},
		{"composed without app", `[{"keyword": "x", "category": "other", "action": {"type": "composed"}}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "keywords.json")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}

			c := New()
			before := c.Len()
			if err := c.LoadOverride(path); err == nil {
				t.Fatal("LoadOverride accepted a bad snapshot")
			}
			if c.Len() != before {
				t.Errorf("catalog changed after rejected override: %d -> %d", before, c.Len())
			}
		})
	}
}

func TestLoadOverrideMissingFile(t *testing.T) {
	c := New()
	if err := c.LoadOverride(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("LoadOverride accepted a missing file")
	}
}
