package normalize

import (
	"testing"
	"time"
)

func TestBirthYear(t *testing.T) {
	tests := []struct {
		input  string
		want   int
		wantOK bool
	}{
		{"1990-05-01", 1990, true},
		{"1990/05/01", 1990, true},
		{"1990-5-1", 1990, true},
		{"900501", 1990, true},  // 90 > 30 → 1900s
		{"050501", 2005, true},  // 05 ≤ 30 → 2000s
		{"90-05-01", 1990, true},
		{"05/05/01", 2005, true},
		{"1990년 01월 01일", 1990, true},
		{"19900501", 1990, true},
		{"310101", 1931, true}, // pivot boundary: 31 → 1900s
		{"300101", 2030, true}, // pivot boundary: 30 → 2000s
		{"not-a-date", 0, false},
		{"", 0, false},
		{"년", 0, false},
		{"123", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := BirthYear(tt.input)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("BirthYear(%q) = (%d, %v), want (%d, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestAgeAt(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		input string
		want  int
	}{
		{"1990-05-01", 36},
		{"900501", 36},
		{"050501", 21},
		{"not-a-date", 0},
		{"", 0},
		{"300101", 0}, // 2030 birth year would be negative → unknown
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := AgeAt(tt.input, now)
			if got != tt.want {
				t.Errorf("AgeAt(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}
