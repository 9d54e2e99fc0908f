// internal/app/system/normalize/birthdate.go
package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Birthdate formats seen in real exports, tried in order. The first match
// wins, so "900501" is handled by the compact two-digit-year form even
// though it would also match the bare six-digit form.
var (
	reFullDate    = regexp.MustCompile(`^\d{4}[-/]\d{1,2}[-/]\d{1,2}$`)
	reCompactDate = regexp.MustCompile(`^\d{2}[-/]?\d{2}[-/]?\d{2}$`)
	reKoreanYear  = regexp.MustCompile(`(\d{4})년`)
	reEightDigit  = regexp.MustCompile(`^\d{8}$`)
)

// BirthYear extracts a four-digit birth year from a raw birthdate value.
// Two-digit years use a fixed pivot: YY > 30 is 19YY, otherwise 20YY.
// The second return is false when no known format matches.
func BirthYear(raw string) (int, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}

	switch {
	case reFullDate.MatchString(s):
		y, _ := strconv.Atoi(s[:4])
		return y, true
	case reCompactDate.MatchString(s):
		return expandTwoDigitYear(s[:2]), true
	case strings.Contains(s, "년"):
		m := reKoreanYear.FindStringSubmatch(s)
		if m == nil {
			return 0, false
		}
		y, _ := strconv.Atoi(m[1])
		return y, true
	case reEightDigit.MatchString(s):
		y, _ := strconv.Atoi(s[:4])
		return y, true
	}
	return 0, false
}

func expandTwoDigitYear(yy string) int {
	y, _ := strconv.Atoi(yy)
	if y > 30 {
		return 1900 + y
	}
	return 2000 + y
}

// AgeAt computes an applicant's age from a raw birthdate value as of now.
// Precision is year-only: the result is the difference of calendar years
// and can be off by one around a birthday. That approximation is part of
// the record contract — downstream consumers expect it. Returns 0 when
// the birthdate is unparseable or would produce a negative age.
func AgeAt(raw string, now time.Time) int {
	year, ok := BirthYear(raw)
	if !ok {
		return 0
	}
	age := now.Year() - year
	if age < 0 {
		return 0
	}
	return age
}
