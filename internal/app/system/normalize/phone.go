// internal/app/system/normalize/phone.go

// Package normalize canonicalizes the loosely formatted field values that
// arrive in signup-form spreadsheet exports: phone numbers, birthdates,
// and gender tokens. Every function here is total — bad input degrades to
// a best-effort value, never an error.
package normalize

import "strings"

// Phone canonicalizes a raw phone value. All characters except digits and
// hyphens are stripped. A hyphenless 11-digit number becomes 3-4-4
// (010-1234-5678) and a hyphenless 10-digit number becomes 3-3-4
// (010-123-4567). Anything else — already hyphenated, or an odd digit
// count — passes through as the stripped string.
func Phone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	s := b.String()
	if strings.Contains(s, "-") {
		return s
	}
	switch len(s) {
	case 11:
		return s[:3] + "-" + s[3:7] + "-" + s[7:]
	case 10:
		return s[:3] + "-" + s[3:6] + "-" + s[6:]
	}
	return s
}
