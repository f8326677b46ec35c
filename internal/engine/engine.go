// Package engine implements the single generic parse driver
// (spec.md §4.4): one pass over an input buffer that recognizes quoted
// and unquoted fields, separator and newline boundaries, and dispatches
// to a caller-supplied Emitter. It generalizes the four independent,
// near-duplicate parsers in fastparser (Parse, ParseByteRecords,
// ParseZeroCopy, ParseChunked) into one driver parameterized by an
// Emitter interface, so the scanning/quoting/escaping logic exists
// exactly once.
package engine

import (
	"github.com/shapestone/csvcore/internal/config"
	"github.com/shapestone/csvcore/internal/simd"
)

// Emitter is the engine's event sink. Field and row-end events arrive
// once per field/row in input order; Finish is called exactly once at
// end of input and returns the Emitter's materialized result.
type Emitter interface {
	OnField(input []byte, start, end int, needsUnescape bool, cfg *config.Config)
	OnRowEnd(isComplete bool)
	Finish() any
}

// UnterminatedQuoteHook is an optional Emitter capability: implement it
// to be notified when EOF is reached inside an open quoted field.
type UnterminatedQuoteHook interface {
	OnUnterminatedQuote()
}

// MidFieldEscapeHook is an optional Emitter capability: implement it to
// be notified when an escape pattern occurs inside an unquoted field's
// span (RFC 4180 strictness — see spec.md §7).
type MidFieldEscapeHook interface {
	OnMidFieldEscape(pos int)
}

// OOMHook is an optional Emitter capability: implement it to be
// notified when the emitter's own row storage fails to grow. The
// engine itself never triggers this — it is surfaced by Emitters that
// wrap an internal/rowcollector.Collector and observe its OOM flag.
type OOMHook interface {
	OnOOM()
}

// RowOffsetHook is an optional Emitter capability: implement it to
// learn the exact byte offset at which each row ends (including its
// terminating newline, when one was consumed). The Chunk-with-offset
// Emitter uses this to track last_row_end (spec.md §4.4).
type RowOffsetHook interface {
	OnRowOffset(pos int)
}

// Parse runs the engine over input with cfg, driving emitter, and
// returns emitter.Finish(). The engine never aborts mid-parse: it
// always reaches the end of input and reports structural problems
// (unterminated quotes, escape characters inside unquoted fields)
// through the Emitter's optional hooks rather than by returning early.
func Parse(input []byte, cfg *config.Config, emitter Emitter) any {
	n := len(input)
	if n == 0 {
		return emitter.Finish()
	}

	pos := 0
	elen := cfg.EscapeLen()

rows:
	for pos <= n {
		if pos >= n {
			break
		}

	fields:
		for {
			var fieldEnd int

			if k, ok := cfg.MatchEscapeAt(input, pos); ok {
				pos += k
				contentStart := pos
				needsUnescape := false
				unterminated := false

				for {
					idx := simd.FindPattern(input[pos:], cfg.Escape())
					if idx == -1 {
						if h, ok := emitter.(UnterminatedQuoteHook); ok {
							h.OnUnterminatedQuote()
						}
						unterminated = true
						pos = n
						break
					}
					occ := pos + idx
					if n2, ok2 := cfg.MatchEscapeAt(input, occ+elen); ok2 {
						needsUnescape = true
						pos = occ + elen + n2
						continue
					}
					pos = occ + elen
					break
				}

				if unterminated {
					// The row containing an unterminated quoted field
					// is discarded in its entirety rather than emitted
					// with a truncated/garbage final field: the
					// on_field call this would otherwise require does
					// not happen, and neither does on_row_end for this
					// row.
					break rows
				}

				contentEnd := pos - elen
				if contentEnd < contentStart {
					contentEnd = contentStart
				}
				emitter.OnField(input, contentStart, contentEnd, needsUnescape, cfg)
				fieldEnd = pos
			} else {
				start := pos
				end := n
				if m, found := simd.FindNextDelimiter(input[pos:], cfg); found {
					end = pos + m.Pos
				}
				if idx := simd.FindPattern(input[start:end], cfg.Escape()); idx != -1 {
					if h, ok := emitter.(MidFieldEscapeHook); ok {
						h.OnMidFieldEscape(start + idx)
					}
				}
				emitter.OnField(input, start, end, false, cfg)
				pos = end
				fieldEnd = end
			}
			_ = fieldEnd

			if pos < n {
				if sl, ok := cfg.MatchSeparatorAt(input, pos); ok {
					pos += sl
					continue fields
				}
				if input[pos] == '\r' || input[pos] == '\n' {
					pos += newlineLenAt(input, pos)
					break fields
				}
				// Neither a configured separator nor a newline follows
				// the field we just emitted. Well-formed input never
				// reaches this branch (the scanner's boundary is
				// always one of the two); rather than raise an error
				// kind the spec doesn't define, resume the fields loop
				// at the same position so the stray byte becomes the
				// start of the next field. Progress is still
				// guaranteed: find_next_delimiter already failed to
				// match at pos, so the next field's scan advances past
				// it.
				continue fields
			}
			break fields
		}

		if h, ok := emitter.(RowOffsetHook); ok {
			h.OnRowOffset(pos)
		}
		emitter.OnRowEnd(true)
		if pos >= n {
			break
		}
	}

	return emitter.Finish()
}

func newlineLenAt(input []byte, pos int) int {
	if input[pos] == '\r' {
		if pos+1 < len(input) && input[pos+1] == '\n' {
			return 2
		}
		return 1
	}
	return 1
}
