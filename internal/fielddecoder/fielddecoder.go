// Package fielddecoder collapses doubled escape sequences inside a
// quoted field, the way fastparser/zerocopy.go's parseQuotedField does
// for the single-byte double-quote case, generalized to an arbitrary
// (possibly multi-byte) escape pattern (spec.md §4.3).
package fielddecoder

// HasEscape reports whether src contains at least one occurrence of the
// escape pattern. It is a check for the zero-copy fast path: a quoted
// field with no escape occurrence at all can be returned as a direct
// slice of the input buffer, exactly as fastparser/zerocopy.go returns
// the raw slice when hasEscapedQuotes never gets set on the scan pass.
func HasEscape(src []byte, esc []byte) bool {
	return indexPattern(src, esc) != -1
}

// Decode writes src into dst with every doubled occurrence of esc
// collapsed to a single occurrence (the RFC 4180 "" -> " rule,
// generalized to esc instead of a hardcoded quote byte). dst must have
// capacity at least len(src); Decode returns the written prefix of dst.
//
// This mirrors the second pass of fastparser/zerocopy.go's
// parseQuotedField: walk src, copy the run up to the next escape
// occurrence, then either collapse a doubled pair and continue past
// both, or treat a lone trailing occurrence as the field's closing
// delimiter and stop.
func Decode(dst, src []byte, esc []byte) []byte {
	dst = dst[:0]
	copyStart := 0
	pos := 0
	n := len(src)
	elen := len(esc)

	for pos < n {
		idx := indexPattern(src[pos:], esc)
		if idx == -1 {
			pos = n
			break
		}
		at := pos + idx
		dst = append(dst, src[copyStart:at]...)

		if at+elen+elen <= n && matchAt(src, at+elen, esc) {
			// Doubled escape: collapse to one occurrence.
			dst = append(dst, esc...)
			pos = at + elen + elen
			copyStart = pos
			continue
		}

		// Lone escape occurrence: this is the field's terminator, not
		// part of the field's content. Stop here; the caller is
		// responsible for consuming the terminator itself.
		copyStart = at
		pos = at
		break
	}

	dst = append(dst, src[copyStart:pos]...)
	return dst
}

// indexPattern returns the index of the first occurrence of pattern in
// haystack, or -1. fielddecoder intentionally does its own tiny search
// instead of importing internal/simd: this package's inputs are already
// isolated single-field buffers (typically well under a cache line by
// the time the engine hands them over), so the accelerated scanner's
// per-call overhead buys nothing here.
func indexPattern(haystack, pattern []byte) int {
	if len(pattern) == 0 {
		return -1
	}
	for i := 0; i+len(pattern) <= len(haystack); i++ {
		if matchAt(haystack, i, pattern) {
			return i
		}
	}
	return -1
}

func matchAt(haystack []byte, pos int, pattern []byte) bool {
	if pos+len(pattern) > len(haystack) {
		return false
	}
	for i, b := range pattern {
		if haystack[pos+i] != b {
			return false
		}
	}
	return true
}
