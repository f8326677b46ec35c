package simd

// FindPattern returns the index of the first occurrence of pattern in
// haystack, or -1 if it does not occur. It uses FindByte on pattern[0]
// as a cheap candidate filter, then does a full equality check of the
// remaining bytes at each candidate; on mismatch it advances one byte
// past the candidate and repeats (spec.md §4.2).
func FindPattern(haystack []byte, pattern []byte) int {
	if len(pattern) == 0 {
		return -1
	}
	if len(pattern) == 1 {
		return FindByte(haystack, pattern[0])
	}

	pos := 0
	for {
		if pos >= len(haystack) {
			return -1
		}
		rel := FindByte(haystack[pos:], pattern[0])
		if rel == -1 {
			return -1
		}
		candidate := pos + rel
		if candidate+len(pattern) > len(haystack) {
			return -1
		}
		if patternEqual(haystack[candidate:candidate+len(pattern)], pattern) {
			return candidate
		}
		pos = candidate + 1
	}
}

func patternEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
