package fielddecoder

import (
	"bytes"
	"testing"
)

func TestHasEscape(t *testing.T) {
	if HasEscape([]byte("abcdef"), []byte(`"`)) {
		t.Fatalf("HasEscape() = true, want false")
	}
	if !HasEscape([]byte(`ab""cd`), []byte(`"`)) {
		t.Fatalf("HasEscape() = false, want true")
	}
	if !HasEscape([]byte("ab~~~~cd"), []byte("~~")) {
		t.Fatalf("HasEscape() = false, want true for multi-byte escape")
	}
}

func TestDecodeSingleByteEscape(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"no escape", "hello", "hello"},
		{"one doubled pair", `he""llo`, `he"llo`},
		{"two doubled pairs", `a""b""c`, `a"b"c`},
		{"trailing lone quote terminates", `abc"`, "abc"},
		{"doubled pair then lone terminator", `a""b"`, `a"b`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]byte, 0, len(tt.src))
			got := Decode(dst, []byte(tt.src), []byte(`"`))
			if !bytes.Equal(got, []byte(tt.want)) {
				t.Fatalf("Decode(%q) = %q, want %q", tt.src, got, tt.want)
			}
		})
	}
}

func TestDecodeMultiByteEscape(t *testing.T) {
	tests := []struct {
		name string
		src  string
		esc  string
		want string
	}{
		{"doubled two-byte escape", "a~~~~b", "~~", "a~~b"},
		{"lone two-byte terminator", "abc~~", "~~", "abc"},
		{"multiple doubled pairs", "a~~~~b~~~~c", "~~", "a~~b~~c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]byte, 0, len(tt.src))
			got := Decode(dst, []byte(tt.src), []byte(tt.esc))
			if !bytes.Equal(got, []byte(tt.want)) {
				t.Fatalf("Decode(%q, esc=%q) = %q, want %q", tt.src, tt.esc, got, tt.want)
			}
		})
	}
}

func TestIndexPattern(t *testing.T) {
	if indexPattern([]byte("abc"), []byte{}) != -1 {
		t.Fatalf("indexPattern() with empty pattern should be -1")
	}
	if got := indexPattern([]byte("abcdef"), []byte("cd")); got != 2 {
		t.Fatalf("indexPattern() = %d, want 2", got)
	}
}
