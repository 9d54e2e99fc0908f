package normalize

import "testing"

func TestGender_ExplicitToken(t *testing.T) {
	tests := []struct {
		token string
		name  string
		want  string
	}{
		{"male", "김철호", "남"},
		{"MALE", "김철호", "남"},
		{"female", "김철호", "여"},
		{"Female", "김철호", "여"},
		{"남", "이영희", "남"}, // already canonical → unchanged
		{"여", "김민준", "여"},
		{"기타", "김민준", "기타"}, // unknown token passes through
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got := Gender(tt.token, tt.name)
			if got != tt.want {
				t.Errorf("Gender(%q, %q) = %q, want %q", tt.token, tt.name, got, tt.want)
			}
		})
	}
}

func TestGender_InferredFromName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"김지민", "여"}, // "지" hits the female list before any male hint
		{"박준호", "남"},
		{"이철수", "남"},  // "철"
		{"김현아", "여"},  // "현" is on both lists; female list wins
		{"최소라", ""},   // no hint matches
		{"김", ""},     // surname only, nothing to test
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Gender("", tt.name)
			if got != tt.want {
				t.Errorf("Gender(\"\", %q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

// The surname is dropped before matching, so hints never fire on the
// family name itself.
func TestGender_SurnameExcluded(t *testing.T) {
	// "서" is a female hint but appears only as the surname here.
	if got := Gender("", "서태오"); got != "" {
		t.Errorf("Gender(\"\", 서태오) = %q, want \"\"", got)
	}
}
