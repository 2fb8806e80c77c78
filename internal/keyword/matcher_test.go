package keyword

import (
	"testing"

	"github.com/guimashan/platfrom-sub000/internal/models"
)

func record(kw string, aliases []string, priority int) models.KeywordRecord {
	return models.KeywordRecord{
		Keyword:           kw,
		NormalizedKeyword: Normalize(kw),
		Aliases:           aliases,
		Priority:          priority,
		Enabled:           true,
	}
}

func TestResolve(t *testing.T) {
	records := []models.KeywordRecord{
		record("奉香簽到", []string{"奉香", "打卡簽到"}, 100),
		record("安太歲", nil, 90),
		record("點光明燈", []string{"光明燈"}, 90),
		record("服務項目", nil, 50),
	}

	tests := []struct {
		name        string
		input       string
		wantKeyword string
		wantReason  MatchReason
	}{
		{"exact", "奉香簽到", "奉香簽到", ReasonExact},
		{"exact with whitespace", " 奉香簽到 ", "奉香簽到", ReasonExact},
		{"alias exact", "奉香", "奉香簽到", ReasonAlias},
		{"second alias exact", "打卡簽到", "奉香簽到", ReasonAlias},
		{"partial containment", "我要奉香簽到謝謝", "奉香簽到", ReasonPartial},
		{"partial lower priority", "想點光明燈", "點光明燈", ReasonPartial},
		{"no match", "龜馬山在哪裡", "", ""},
		{"empty input", "", "", ""},
		{"whitespace only input", "   ", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.input, records)
			if tt.wantKeyword == "" {
				if got != nil {
					t.Fatalf("Resolve(%q) = %q, want no match", tt.input, got.Record.Keyword)
				}
				return
			}
			if got == nil {
				t.Fatalf("Resolve(%q) = nil, want %q", tt.input, tt.wantKeyword)
			}
			if got.Record.Keyword != tt.wantKeyword {
				t.Errorf("Resolve(%q) keyword = %q, want %q", tt.input, got.Record.Keyword, tt.wantKeyword)
			}
			if got.Reason != tt.wantReason {
				t.Errorf("Resolve(%q) reason = %q, want %q", tt.input, got.Reason, tt.wantReason)
			}
		})
	}
}

// A message containing an alias as a substring must not match; only whole
// keywords participate in containment.
func TestResolveAliasNoSubstring(t *testing.T) {
	records := []models.KeywordRecord{
		record("奉香簽到", []string{"奉香"}, 100),
	}

	if got := Resolve("今天想去奉香拜拜", records); got != nil {
		t.Errorf("Resolve matched %q via alias substring, want no match", got.Record.Keyword)
	}
}

// First record in slice order wins; the caller is responsible for priority
// sorting, and ties keep insertion order.
func TestResolveFirstHitWins(t *testing.T) {
	records := []models.KeywordRecord{
		record("安太歲", nil, 90),
		record("點光明燈", nil, 90),
	}

	// Input contains both keywords; the record earlier in the slice wins.
	got := Resolve("想安太歲順便點光明燈", records)
	if got == nil {
		t.Fatal("Resolve returned nil, want a match")
	}
	if got.Record.Keyword != "安太歲" {
		t.Errorf("Resolve keyword = %q, want 安太歲", got.Record.Keyword)
	}
}

func TestResolveSkipsEmptyNormalizedKeyword(t *testing.T) {
	records := []models.KeywordRecord{
		{Keyword: "   ", NormalizedKeyword: "", Priority: 100, Enabled: true},
		record("安太歲", nil, 50),
	}

	got := Resolve("安太歲", records)
	if got == nil || got.Record.Keyword != "安太歲" {
		t.Fatalf("Resolve = %+v, want 安太歲 match", got)
	}
}
