package simd

import "github.com/shapestone/csvcore/internal/config"

// DelimiterKind distinguishes the two kinds of field/row boundary the
// engine recognizes.
type DelimiterKind int

const (
	// KindSeparator marks a field boundary (the row continues).
	KindSeparator DelimiterKind = iota
	// KindNewline marks a row boundary.
	KindNewline
)

// DelimiterMatch is the result of FindNextDelimiter: the byte offset of
// the boundary, what kind it is, and how many bytes it occupies.
type DelimiterMatch struct {
	Pos  int
	Kind DelimiterKind
	Len  int
}

// FindNextDelimiter finds the next field or row boundary in haystack:
// either a separator match or a newline. '\r' immediately followed by
// '\n' is reported as one newline of length 2; a lone '\r' or a lone
// '\n' is a newline of length 1 (spec.md §4.2).
//
// On the single-byte-separator fast path this is exactly
// FindAnyOfThree(haystack, sep, '\n', '\r'). On the general path (a
// multi-byte or multi-pattern separator configuration) it scans for any
// separator's first byte or a newline byte, verifies a full separator
// match at each candidate, and advances past candidates that fail
// verification — so a byte that merely collides with a separator's
// first byte, but isn't followed by the rest of the pattern, is
// correctly skipped.
func FindNextDelimiter(haystack []byte, cfg *config.Config) (DelimiterMatch, bool) {
	if cfg.IsSingleByteSep() {
		idx := FindAnyOfThree(haystack, cfg.SingleByteSep(), '\n', '\r')
		if idx == -1 {
			return DelimiterMatch{}, false
		}
		if haystack[idx] == cfg.SingleByteSep() {
			return DelimiterMatch{Pos: idx, Kind: KindSeparator, Len: 1}, true
		}
		return DelimiterMatch{Pos: idx, Kind: KindNewline, Len: newlineLen(haystack, idx)}, true
	}

	set := make([]byte, 0, len(cfg.SeparatorFirstBytes())+2)
	set = append(set, cfg.SeparatorFirstBytes()...)
	set = append(set, '\n', '\r')

	pos := 0
	for pos < len(haystack) {
		rel := findAnyOfSet(haystack[pos:], set)
		if rel == -1 {
			return DelimiterMatch{}, false
		}
		candidate := pos + rel
		b := haystack[candidate]
		if b == '\n' || b == '\r' {
			return DelimiterMatch{Pos: candidate, Kind: KindNewline, Len: newlineLen(haystack, candidate)}, true
		}
		if n, ok := cfg.MatchSeparatorAt(haystack, candidate); ok {
			return DelimiterMatch{Pos: candidate, Kind: KindSeparator, Len: n}, true
		}
		pos = candidate + 1
	}
	return DelimiterMatch{}, false
}

func newlineLen(haystack []byte, pos int) int {
	if haystack[pos] == '\r' {
		if pos+1 < len(haystack) && haystack[pos+1] == '\n' {
			return 2
		}
		return 1
	}
	return 1
}
