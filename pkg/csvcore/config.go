// Package csvcore is the public surface over csvcore's parsing core: a
// byte-stream engine with four interchangeable Emitters (Copying,
// Slicing, Chunk-with-offset, Streaming body), a streaming coordinator
// for bounded-memory processing of unbounded input, and a parallel
// entry point for splitting large inputs across worker goroutines.
package csvcore

import "github.com/shapestone/csvcore/internal/config"

// MaxSeparators and MaxPatternLen mirror the construction limits
// enforced by internal/config: up to 8 separator patterns, each
// 1-16 bytes, and a single 1-16 byte escape pattern.
const (
	MaxSeparators = config.MaxSeparators
	MaxPatternLen = config.MaxPatternLen
)

// Config is the validated, immutable parser configuration: separator
// patterns and an escape pattern, plus the fast-path predicates and
// derived prefilter data the engine and scanner consume.
type Config = config.Config

// NewConfig validates and builds a Config from separator patterns and
// an escape pattern. It fails if the separator list is empty, exceeds
// MaxSeparators, or any pattern is zero-length or exceeds MaxPatternLen.
func NewConfig(separators [][]byte, escape []byte) (*Config, error) {
	return config.New(separators, escape)
}

// DefaultConfig returns the common case: a single comma separator and
// a double-quote escape.
func DefaultConfig() *Config {
	return config.Default()
}

// DecodeConfig builds a Config from the wire-format separator encoding
// `<count:u8><len1:u8><bytes1>...<lenN:u8><bytesN>` plus a raw escape
// byte sequence (spec.md §6). Malformed encodings return an error;
// callers that want the "fall back to a default config" behavior the
// spec describes should catch the error themselves and call
// DefaultConfig.
func DecodeConfig(encoded []byte, escape []byte) (*Config, error) {
	return config.Decode(encoded, escape)
}
