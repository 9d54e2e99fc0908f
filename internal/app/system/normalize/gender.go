// internal/app/system/normalize/gender.go
package normalize

import "strings"

// Gender canonical values. Unknown is the empty string.
const (
	GenderMale   = "남"
	GenderFemale = "여"
)

// Substring hints for inferring gender from a given name when the form
// left the gender column blank. These lists are a fixed heuristic tuned
// against historical signup data; the female list is checked first, so a
// name matching both (several hints overlap, e.g. "민" and "현") resolves
// female. Do not "fix" the overlaps — reordering changes recorded data.
var (
	femaleNameHints = []string{"지", "지현", "현", "예", "민", "지민", "현아", "서", "서연", "연", "은", "지은", "은지"}
	maleNameHints   = []string{"민", "준", "현", "민준", "준호", "석", "승", "우", "석우", "승호", "민우", "철", "석호"}
)

// Gender resolves the gender for an applicant. An explicit token wins:
// "male"/"female" (any case) map to the canonical Korean values, and any
// other non-empty token is assumed to already be canonical and passes
// through unchanged. With no token, the name is tested against the hint
// lists after dropping the first character (the surname). Returns "" when
// nothing matches.
func Gender(token, name string) string {
	token = strings.TrimSpace(token)
	if token != "" {
		switch strings.ToLower(token) {
		case "male":
			return GenderMale
		case "female":
			return GenderFemale
		}
		return token
	}

	runes := []rune(name)
	if len(runes) < 2 {
		return ""
	}
	given := string(runes[1:])

	for _, hint := range femaleNameHints {
		if strings.Contains(given, hint) {
			return GenderFemale
		}
	}
	for _, hint := range maleNameHints {
		if strings.Contains(given, hint) {
			return GenderMale
		}
	}
	return ""
}
