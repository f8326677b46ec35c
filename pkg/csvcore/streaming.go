package csvcore

import "github.com/shapestone/csvcore/internal/engine"

// StreamingBodyEmitter receives the prefix identified as a
// complete-row prefix by a StreamingCoordinator and delegates entirely
// to the Copying Emitter (spec.md §4.4).
type StreamingBodyEmitter struct {
	*CopyingEmitter
}

// NewStreamingBodyEmitter returns a StreamingBodyEmitter.
func NewStreamingBodyEmitter(stackCapacity, maxRows int) *StreamingBodyEmitter {
	return &StreamingBodyEmitter{CopyingEmitter: NewCopyingEmitter(stackCapacity, maxRows)}
}

// StreamingCoordinator accumulates input chunks and invokes the engine
// only over the prefix known to be a safe, complete-row boundary,
// retaining the rest for the next feed (spec.md §4.6). It generalizes
// raceordie690-simdcsv's cross-chunk splitRow carry and
// entreya-csvquery's findSafeRecordBoundary into one stateful type
// whose boundary search (LastCompleteRowBoundary) is its own in_quotes
// walk over the Config's escape matcher, the same matcher the engine
// uses, instead of a bytes.IndexByte-only search, so multi-byte escape
// patterns are handled correctly.
type StreamingCoordinator struct {
	buffer []byte
	cfg    *Config

	// maxRowSize is the back-pressure guard: a feed that would grow
	// buffer past this size is rejected with a MaxRowSizeError instead
	// of accepted, bounding memory when a quoted field never closes.
	// 0 means unbounded.
	maxRowSize int

	stackCapacity int
	maxRows       int

	// pendingCRLF is set when the most recent cut consumed every byte
	// fed so far and that cut ended on a lone '\r' — i.e. it was
	// ambiguous whether the row terminator was a bare CR or the first
	// half of a CRLF pair split across chunks. If the next feed's
	// first byte is '\n', it completes that pair and is dropped
	// silently instead of being parsed as an empty field/row, which is
	// how the boundary law in spec.md §4.6 ("CRLF split across chunks
	// ... produces no empty row") is satisfied.
	pendingCRLF bool
}

// NewStreamingCoordinator returns a StreamingCoordinator for cfg.
// maxRowSize is the back-pressure guard (0 for unbounded).
func NewStreamingCoordinator(cfg *Config, maxRowSize int) *StreamingCoordinator {
	return &StreamingCoordinator{cfg: cfg, maxRowSize: maxRowSize}
}

// Feed appends chunk to the internal buffer, runs the engine over the
// longest safe complete-row prefix, emits those rows, and compacts the
// buffer to the unconsumed suffix. It returns (nil, nil) when chunk
// contains no complete row yet.
func (s *StreamingCoordinator) Feed(chunk []byte) ([][][]byte, error) {
	attempted := len(s.buffer) + len(chunk)
	if s.maxRowSize > 0 && attempted > s.maxRowSize {
		return nil, &MaxRowSizeError{Limit: s.maxRowSize, Attempted: attempted}
	}
	s.buffer = append(s.buffer, chunk...)

	if s.pendingCRLF && len(s.buffer) > 0 && s.buffer[0] == '\n' {
		s.buffer = s.buffer[1:]
	}
	s.pendingCRLF = false

	cut := LastCompleteRowBoundary(s.buffer, s.cfg)
	if cut <= 0 {
		return nil, nil
	}

	if cut == len(s.buffer) && s.buffer[cut-1] == '\r' {
		s.pendingCRLF = true
	}

	e := NewStreamingBodyEmitter(s.stackCapacity, s.maxRows)
	result := engine.Parse(s.buffer[:cut], s.cfg, e).(Result)

	remaining := make([]byte, len(s.buffer)-cut)
	copy(remaining, s.buffer[cut:])
	s.buffer = remaining

	return result.Rows, result.Err
}

// Finalize runs the engine over whatever remains in the buffer, clears
// it, and returns the resulting rows.
func (s *StreamingCoordinator) Finalize() ([][][]byte, error) {
	e := NewStreamingBodyEmitter(s.stackCapacity, s.maxRows)
	result := engine.Parse(s.buffer, s.cfg, e).(Result)
	s.buffer = nil
	return result.Rows, result.Err
}

// Status reports the current buffer length and whether it holds any
// retained, not-yet-dispatched bytes.
func (s *StreamingCoordinator) Status() (bufferLen int, hasResidual bool) {
	return len(s.buffer), len(s.buffer) > 0
}

// LastCompleteRowBoundary walks buffer left to right tracking a single
// in_quotes flag, and returns the highest byte offset after which no
// quoted field is open and an unquoted newline has just been consumed
// (spec.md's "last complete-row boundary"), or 0 if none was found.
//
// At each escape-pattern occurrence: if already in_quotes and the
// following k bytes are also the escape pattern, it's an inner doubled
// escape (skip both, stay in_quotes); otherwise the occurrence toggles
// in_quotes. Outside quotes, '\n' or '\r' advances the recorded cut.
func LastCompleteRowBoundary(buffer []byte, cfg *Config) int {
	inQuotes := false
	cut := 0
	i := 0
	n := len(buffer)

	for i < n {
		if k, ok := cfg.MatchEscapeAt(buffer, i); ok {
			if inQuotes {
				if n2, ok2 := cfg.MatchEscapeAt(buffer, i+k); ok2 {
					i += k + n2
					continue
				}
				inQuotes = false
				i += k
				continue
			}
			inQuotes = true
			i += k
			continue
		}

		if !inQuotes {
			if buffer[i] == '\n' {
				cut = i + 1
				i++
				continue
			}
			if buffer[i] == '\r' {
				if i+1 < n && buffer[i+1] == '\n' {
					cut = i + 2
					i += 2
				} else {
					cut = i + 1
					i++
				}
				continue
			}
		}
		i++
	}

	return cut
}
