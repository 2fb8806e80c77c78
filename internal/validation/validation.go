package validation

import (
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxKeywordLength bounds trigger phrases. Measured in runes since most
// keywords are CJK.
const MaxKeywordLength = 50

// ValidateKeyword checks that a trigger phrase is printable and within bounds.
// Unlike URL slugs, keywords may contain any letter script (奉香簽到 is valid),
// but control characters and empty strings are rejected.
func ValidateKeyword(keyword string) bool {
	if keyword == "" || utf8.RuneCountInString(keyword) > MaxKeywordLength {
		return false
	}
	if strings.TrimSpace(keyword) == "" {
		return false
	}
	for _, r := range keyword {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}

// ValidateURL checks if a URL is valid and uses an allowed scheme (http/https only).
// This prevents javascript:, data:, vbscript:, and other dangerous URL schemes.
func ValidateURL(urlStr string) (bool, string) {
	if urlStr == "" {
		return false, "URL is required"
	}

	u, err := url.Parse(urlStr)
	if err != nil {
		return false, "Invalid URL format"
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return false, "URL must use http:// or https:// scheme"
	}

	if u.Host == "" {
		return false, "URL must have a valid host"
	}

	return true, ""
}

// ValidatePath checks a ComposedLink app-relative path: empty is allowed,
// otherwise it must start with "/" or "?" so concatenation with the LIFF
// base URL cannot change the target app.
func ValidatePath(path string) bool {
	if path == "" {
		return true
	}
	return strings.HasPrefix(path, "/") || strings.HasPrefix(path, "?")
}
