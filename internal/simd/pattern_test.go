package simd

import "testing"

func TestFindPattern(t *testing.T) {
	tests := []struct {
		name    string
		hay     string
		pattern string
		want    int
	}{
		{"empty pattern", "abcdef", "", -1},
		{"single byte pattern", "abcdef", "d", 3},
		{"not present", "abcdef", "xyz", -1},
		{"present at start", "||abc", "||", 0},
		{"present mid string", "abc||def", "||", 3},
		{"false candidate then real match", "a|b||c", "||", 3},
		{"pattern longer than remaining haystack", "ab", "abc", -1},
		{"pattern equals haystack", "abc", "abc", 0},
		{"overlapping false starts", "aaab", "aab", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindPattern([]byte(tt.hay), []byte(tt.pattern))
			if got != tt.want {
				t.Fatalf("FindPattern(%q, %q) = %d, want %d", tt.hay, tt.pattern, got, tt.want)
			}
		})
	}
}
