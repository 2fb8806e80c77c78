package validation

import (
	"strings"
	"testing"
)

func TestValidateKeyword(t *testing.T) {
	tests := []struct {
		name    string
		keyword string
		want    bool
	}{
		{"chinese keyword", "奉香簽到", true},
		{"chinese single char", "香", true},
		{"ascii keyword", "checkin", true},
		{"mixed script", "LINE點燈", true},
		{"with inner space", "奉香 簽到", true},
		{"max length", strings.Repeat("香", 50), true},
		{"empty string", "", false},
		{"too long", strings.Repeat("香", 51), false},
		{"whitespace only", "   ", false},
		{"contains newline", "奉香\n簽到", false},
		{"contains tab", "奉香\t簽到", false},
		{"contains null byte", "奉香\x00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateKeyword(tt.keyword)
			if got != tt.want {
				t.Errorf("ValidateKeyword(%q) = %v, want %v", tt.keyword, got, tt.want)
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		valid   bool
		wantMsg string
	}{
		{"valid https", "https://liff.line.me/2004873710-home0001", true, ""},
		{"valid http", "http://example.com", true, ""},
		{"valid with query", "https://example.com?foo=bar", true, ""},
		{"empty string", "", false, "URL is required"},
		{"javascript scheme", "javascript:alert(1)", false, "URL must use http:// or https:// scheme"},
		{"data scheme", "data:text/html,x", false, "URL must use http:// or https:// scheme"},
		{"no scheme", "example.com", false, "URL must use http:// or https:// scheme"},
		{"relative url", "/path/to/page", false, "URL must use http:// or https:// scheme"},
		{"uppercase scheme", "HTTPS://example.com", true, ""},
		{"scheme only", "https://", false, "URL must have a valid host"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, msg := ValidateURL(tt.url)
			if valid != tt.valid {
				t.Errorf("ValidateURL(%q) valid = %v, want %v", tt.url, valid, tt.valid)
			}
			if !valid && msg != tt.wantMsg {
				t.Errorf("ValidateURL(%q) msg = %q, want %q", tt.url, msg, tt.wantMsg)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want bool
	}{
		{"empty path", "", true},
		{"slash path", "/checkin", true},
		{"query path", "?mode=incense", true},
		{"nested path", "/events/2026", true},
		{"bare segment", "checkin", false},
		{"scheme smuggling", "https://evil.example", false},
		{"dot segment", "../other-app", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidatePath(tt.path); got != tt.want {
				t.Errorf("ValidatePath(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
