package simd

import (
	"encoding/binary"
	"math/bits"
)

const (
	loMask = 0x0101010101010101
	hiMask = 0x8080808080808080
)

// laneMatchMask returns a mask with the high bit of each matching byte
// lane set, using the classic "subtract one, clear original, mask high
// bits" zero-byte detection trick (the same one fastparser/chunked.go's
// hasDelimiter/findDelimiterPos use for a single delimiter; here it is
// computed once per target byte and OR'd together, which is the
// scalar/SWAR analogue of three broadcast vector compares ORed into one
// mask). The subtraction can borrow across lanes, so a lane directly
// above a matching lane may also be flagged; only the lowest set lane
// is guaranteed to be a real match.
func laneMatchMask(word uint64, b byte) uint64 {
	bc := uint64(b) * loMask
	x := word ^ bc
	return (x - loMask) &^ x & hiMask
}

// firstLaneIndex returns the byte offset, within an 8-byte word, of the
// lowest set lane in mask. mask must have been produced by
// laneMatchMask (or an OR of several), so only bit 7 of each byte lane
// is ever set.
func firstLaneIndex(mask uint64) int {
	return bits.TrailingZeros64(mask) / 8
}

// FindAnyOfThree returns the index of the first occurrence of a, b, or c
// in haystack, or -1 if none occur. It processes VectorWidth bytes
// (four 8-byte lanes) per iteration: three broadcast compares per lane,
// ORed into one mask, with the index of the lowest set bit extracted
// via trailing-zero count. A scalar loop handles the final partial
// vector (spec.md §4.2).
func FindAnyOfThree(haystack []byte, a, b, c byte) int {
	n := len(haystack)
	i := 0
	for ; i+VectorWidth <= n; i += VectorWidth {
		for lane := 0; lane < lanesPerVector; lane++ {
			off := i + lane*wordSize
			word := binary.LittleEndian.Uint64(haystack[off : off+wordSize])
			mask := laneMatchMask(word, a) | laneMatchMask(word, b) | laneMatchMask(word, c)
			if mask != 0 {
				return off + firstLaneIndex(mask)
			}
		}
	}
	for ; i+wordSize <= n; i += wordSize {
		word := binary.LittleEndian.Uint64(haystack[i : i+wordSize])
		mask := laneMatchMask(word, a) | laneMatchMask(word, b) | laneMatchMask(word, c)
		if mask != 0 {
			return i + firstLaneIndex(mask)
		}
	}
	for ; i < n; i++ {
		if haystack[i] == a || haystack[i] == b || haystack[i] == c {
			return i
		}
	}
	return -1
}

// FindByte returns the index of the first occurrence of b in haystack,
// or -1 if absent. Same vectorized/scalar-epilogue shape as
// FindAnyOfThree, specialized to a single target byte.
func FindByte(haystack []byte, b byte) int {
	n := len(haystack)
	i := 0
	for ; i+VectorWidth <= n; i += VectorWidth {
		for lane := 0; lane < lanesPerVector; lane++ {
			off := i + lane*wordSize
			word := binary.LittleEndian.Uint64(haystack[off : off+wordSize])
			if mask := laneMatchMask(word, b); mask != 0 {
				return off + firstLaneIndex(mask)
			}
		}
	}
	for ; i+wordSize <= n; i += wordSize {
		word := binary.LittleEndian.Uint64(haystack[i : i+wordSize])
		if mask := laneMatchMask(word, b); mask != 0 {
			return i + firstLaneIndex(mask)
		}
	}
	for ; i < n; i++ {
		if haystack[i] == b {
			return i
		}
	}
	return -1
}

// CountByte returns the number of occurrences of b in haystack, using
// the population count of a per-lane comparison mask. The mask here is
// the carry-free exact-zero test rather than laneMatchMask (whose
// borrow can flag extra lanes), so each matching byte sets exactly one
// mask bit and no other byte sets any: bits.OnesCount64 of the mask is
// the match count for that word.
func CountByte(haystack []byte, b byte) int {
	const lo7Mask = 0x7F7F7F7F7F7F7F7F
	n := len(haystack)
	i := 0
	count := 0
	bc := uint64(b) * loMask
	for ; i+wordSize <= n; i += wordSize {
		x := binary.LittleEndian.Uint64(haystack[i:i+wordSize]) ^ bc
		count += bits.OnesCount64(^(((x & lo7Mask) + lo7Mask) | x | lo7Mask))
	}
	for ; i < n; i++ {
		if haystack[i] == b {
			count++
		}
	}
	return count
}

// findAnyOfSet is the general-purpose prefilter used by
// FindNextDelimiter's multi-pattern path: haystack may need to be
// scanned for any of up to MaxSeparators+2 candidate first bytes
// (every separator's first byte, plus '\n' and '\r'). FindAnyOfThree
// is kept as its own named entry point because spec.md §4.2 specifies
// it as a public primitive in its own right (the common one-separator
// fast path never needs more than three targets); this helper is its
// natural generalization for the handful of callers that do.
func findAnyOfSet(haystack []byte, set []byte) int {
	n := len(haystack)
	i := 0
	for ; i+wordSize <= n; i += wordSize {
		word := binary.LittleEndian.Uint64(haystack[i : i+wordSize])
		var mask uint64
		for _, b := range set {
			mask |= laneMatchMask(word, b)
		}
		if mask != 0 {
			return i + firstLaneIndex(mask)
		}
	}
	for ; i < n; i++ {
		for _, b := range set {
			if haystack[i] == b {
				return i
			}
		}
	}
	return -1
}
