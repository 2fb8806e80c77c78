package keyword

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain chinese", "奉香簽到", "奉香簽到"},
		{"inner space stripped", "奉香 簽到", "奉香簽到"},
		{"leading and trailing space", "  安太歲  ", "安太歲"},
		{"fullwidth space stripped", "奉香　簽到", "奉香簽到"},
		{"tabs and newlines stripped", "奉香\t簽\n到", "奉香簽到"},
		{"ascii lowercased", "CheckIn", "checkin"},
		{"fullwidth latin collapses", "ＬＩＮＥ", "line"},
		{"fullwidth digits collapse", "１２３", "123"},
		{"empty string", "", ""},
		{"whitespace only", " \t\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"奉香 簽到", "ＬＩＮＥ點燈", "CheckIn Now", "安太歲"}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
