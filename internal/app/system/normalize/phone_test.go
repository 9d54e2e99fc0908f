package normalize

import "testing"

func TestPhone(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"01012345678", "010-1234-5678"},
		{"0101234567", "010-123-4567"},
		{"010-1234-5678", "010-1234-5678"},
		{"010 1234 5678", "010-1234-5678"},
		{"(010) 1234-5678", "0101234-5678"}, // hyphen present → stripped form passes through
		{"+82 10 1234 5678", "821012345678"}, // 12 digits, no reformatting
		{"010.1234.5678", "010-1234-5678"},
		{"12345", "12345"}, // odd length, best effort
		{"", ""},
		{"phone: 01012345678", "010-1234-5678"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Phone(tt.input)
			if got != tt.want {
				t.Errorf("Phone(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPhone_ElevenDigitShape(t *testing.T) {
	got := Phone("01098765432")
	if len(got) != 13 || got[3] != '-' || got[8] != '-' {
		t.Errorf("expected DDD-DDDD-DDDD shape, got %q", got)
	}
}

func TestPhone_TenDigitShape(t *testing.T) {
	got := Phone("0212345678")
	if len(got) != 12 || got[3] != '-' || got[7] != '-' {
		t.Errorf("expected DDD-DDD-DDDD shape, got %q", got)
	}
}
