// Package config holds the parsed, validated representation of a CSV
// dialect: its separator patterns and its escape pattern.
//
// A Config is immutable once built by New or Decode. Validation happens
// once, at construction, the same way shape-csv's pkg/csv/options.go
// validates dialect options before a parse ever begins.
package config

import "fmt"

// MaxSeparators is the maximum number of distinct separator patterns a
// Config may hold.
const MaxSeparators = 8

// MaxPatternLen is the maximum byte length of any separator or the
// escape pattern.
const MaxPatternLen = 16

// Config is the immutable, validated dialect a parse runs against.
type Config struct {
	separators [][]byte
	escape     []byte

	singleByteSep bool
	singleByteSepByte byte

	singleByteEsc bool
	singleByteEscByte byte

	firstBytes []byte // deduplicated first byte of every separator, len <= MaxSeparators
}

// New builds a Config from explicit separator and escape patterns.
//
// Construction fails if seps is empty, has more than MaxSeparators
// entries, contains a zero-length or over-length pattern, or if esc is
// zero-length or over-length. Separators are tried in the order given;
// this order is the deterministic tie-break when two separators share a
// prefix (spec.md §4.1).
func New(seps [][]byte, esc []byte) (*Config, error) {
	if len(seps) == 0 {
		return nil, fmt.Errorf("csvcore: %w", ErrNoSeparators)
	}
	if len(seps) > MaxSeparators {
		return nil, fmt.Errorf("csvcore: %w: got %d", ErrTooManySeparators, len(seps))
	}
	for i, s := range seps {
		if len(s) == 0 || len(s) > MaxPatternLen {
			return nil, fmt.Errorf("csvcore: %w: separator %d has length %d", ErrSeparatorLength, i, len(s))
		}
	}
	if len(esc) == 0 || len(esc) > MaxPatternLen {
		return nil, fmt.Errorf("csvcore: %w: length %d", ErrEscapeLength, len(esc))
	}

	c := &Config{
		separators: make([][]byte, len(seps)),
		escape:     append([]byte(nil), esc...),
	}
	for i, s := range seps {
		c.separators[i] = append([]byte(nil), s...)
	}

	if len(c.separators) == 1 && len(c.separators[0]) == 1 {
		c.singleByteSep = true
		c.singleByteSepByte = c.separators[0][0]
	}
	if len(c.escape) == 1 {
		c.singleByteEsc = true
		c.singleByteEscByte = c.escape[0]
	}

	seen := make(map[byte]bool, MaxSeparators)
	for _, s := range c.separators {
		b := s[0]
		if !seen[b] {
			seen[b] = true
			c.firstBytes = append(c.firstBytes, b)
		}
	}

	return c, nil
}

// Default returns the conventional comma/double-quote dialect.
func Default() *Config {
	c, err := New([][]byte{[]byte(",")}, []byte(`"`))
	if err != nil {
		// unreachable: the default dialect is always valid
		panic(err)
	}
	return c
}

// Decode parses the length-prefixed separator encoding from spec.md §6:
// <count:u8><len1:u8><bytes1>...<lenN:u8><bytesN>, with 1<=count<=8 and
// 1<=lenI<=16. It returns an error (rather than silently defaulting) so
// callers can decide whether to fall back to Default themselves — the
// "decoder returns None, triggering a default" rule in spec.md is a
// caller-side policy, not a core-package concern.
func Decode(encoded []byte, esc []byte) (*Config, error) {
	if len(encoded) < 1 {
		return nil, fmt.Errorf("csvcore: %w: empty separator encoding", ErrMalformedEncoding)
	}
	count := int(encoded[0])
	if count < 1 || count > MaxSeparators {
		return nil, fmt.Errorf("csvcore: %w: count %d out of range", ErrMalformedEncoding, count)
	}

	seps := make([][]byte, 0, count)
	pos := 1
	for i := 0; i < count; i++ {
		if pos >= len(encoded) {
			return nil, fmt.Errorf("csvcore: %w: truncated at separator %d", ErrMalformedEncoding, i)
		}
		l := int(encoded[pos])
		pos++
		if l < 1 || l > MaxPatternLen {
			return nil, fmt.Errorf("csvcore: %w: separator %d length %d out of range", ErrMalformedEncoding, i, l)
		}
		if pos+l > len(encoded) {
			return nil, fmt.Errorf("csvcore: %w: truncated bytes for separator %d", ErrMalformedEncoding, i)
		}
		seps = append(seps, encoded[pos:pos+l])
		pos += l
	}

	return New(seps, esc)
}

// Separators returns the configured separator patterns in match order.
// The returned slices must not be modified.
func (c *Config) Separators() [][]byte { return c.separators }

// Escape returns the configured escape pattern. The returned slice must
// not be modified.
func (c *Config) Escape() []byte { return c.escape }

// IsSingleByteSep reports whether the fast path for a lone one-byte
// separator applies.
func (c *Config) IsSingleByteSep() bool { return c.singleByteSep }

// SingleByteSep returns the separator byte when IsSingleByteSep is true.
func (c *Config) SingleByteSep() byte { return c.singleByteSepByte }

// IsSingleByteEsc reports whether the fast path for a one-byte escape
// pattern applies.
func (c *Config) IsSingleByteEsc() bool { return c.singleByteEsc }

// SingleByteEsc returns the escape byte when IsSingleByteEsc is true.
func (c *Config) SingleByteEsc() byte { return c.singleByteEscByte }

// SeparatorFirstBytes returns the deduplicated set of first bytes across
// all separator patterns, used as the SIMD prefilter on the general
// (multi-pattern or multi-byte) path. Length is at most MaxSeparators.
func (c *Config) SeparatorFirstBytes() []byte { return c.firstBytes }

// MatchSeparatorAt tries each separator pattern, in configured order,
// for a full match starting at pos. It returns the matched pattern's
// length and true on the first match; patterns are tried in caller-
// supplied order so that when two separators share a prefix (e.g. ","
// and ",,") the earlier one wins deterministically.
func (c *Config) MatchSeparatorAt(input []byte, pos int) (int, bool) {
	if c.singleByteSep {
		if pos < len(input) && input[pos] == c.singleByteSepByte {
			return 1, true
		}
		return 0, false
	}
	for _, sep := range c.separators {
		if matchAt(input, pos, sep) {
			return len(sep), true
		}
	}
	return 0, false
}

// MatchEscapeAt reports whether the escape pattern matches in full
// starting at pos, returning its length on success.
func (c *Config) MatchEscapeAt(input []byte, pos int) (int, bool) {
	if c.singleByteEsc {
		if pos < len(input) && input[pos] == c.singleByteEscByte {
			return 1, true
		}
		return 0, false
	}
	if matchAt(input, pos, c.escape) {
		return len(c.escape), true
	}
	return 0, false
}

// EscapeLen returns the byte length of the escape pattern.
func (c *Config) EscapeLen() int { return len(c.escape) }

func matchAt(input []byte, pos int, pattern []byte) bool {
	if pos < 0 || pos+len(pattern) > len(input) {
		return false
	}
	for i, b := range pattern {
		if input[pos+i] != b {
			return false
		}
	}
	return true
}
