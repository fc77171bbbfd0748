package main

import "testing"

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"short string unchanged", "Ulysses", 50, "Ulysses"},
		{"exact length unchanged", "abcde", 5, "abcde"},
		{"long string truncated", "A very long modernist monograph title", 20, "A very long moder..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncateString(tt.input, tt.maxLen); got != tt.want {
				t.Errorf("truncateString(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestFormatAuthorsShort(t *testing.T) {
	tests := []struct {
		name     string
		authors  []string
		maxCount int
		want     string
	}{
		{"empty", nil, 3, ""},
		{"single", []string{"V. Woolf"}, 3, "V. Woolf"},
		{"under limit", []string{"V. Woolf", "T.S. Eliot"}, 3, "V. Woolf, T.S. Eliot"},
		{"over limit", []string{"A", "B", "C", "D"}, 2, "A, B, et al."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatAuthorsShort(tt.authors, tt.maxCount); got != tt.want {
				t.Errorf("formatAuthorsShort(%v, %d) = %q, want %q", tt.authors, tt.maxCount, got, tt.want)
			}
		})
	}
}
