package csvcore

import (
	"github.com/shapestone/csvcore/internal/config"
	"github.com/shapestone/csvcore/internal/engine"
	"github.com/shapestone/csvcore/internal/fielddecoder"
	"github.com/shapestone/csvcore/internal/rowcollector"
)

// scopedUnescapeBufSize is the size of the fixed unescape buffer held
// inside the Copying and Chunk-with-offset Emitters (spec.md §4.4 and the open questions in §9 note this as an
// undocumented performance knob in the source; 64 KiB is the value
// named in the spec).
const scopedUnescapeBufSize = 64 * 1024

// CopyingEmitter materializes every field into a new byte value owned
// by the caller, building each row as an ordered [][]byte.
type CopyingEmitter struct {
	rows   *rowcollector.Collector[[][]byte]
	row    [][]byte
	scoped [scopedUnescapeBufSize]byte

	reason  PartialReason
	bytePos int
}

// NewCopyingEmitter returns a CopyingEmitter. stackCapacity and maxRows
// are forwarded to the underlying row collector (0 for either uses
// sensible defaults / no limit).
func NewCopyingEmitter(stackCapacity, maxRows int) *CopyingEmitter {
	return &CopyingEmitter{rows: rowcollector.NewWithLimit[[][]byte](stackCapacity, maxRows)}
}

func (e *CopyingEmitter) OnField(input []byte, start, end int, needsUnescape bool, cfg *config.Config) {
	raw := input[start:end]
	if !needsUnescape {
		val := make([]byte, len(raw))
		copy(val, raw)
		e.row = append(e.row, val)
		return
	}

	var dst []byte
	if len(raw) <= scopedUnescapeBufSize {
		dst = e.scoped[:0]
	} else {
		dst = make([]byte, 0, len(raw))
	}
	decoded := fielddecoder.Decode(dst, raw, cfg.Escape())
	val := make([]byte, len(decoded))
	copy(val, decoded)
	e.row = append(e.row, val)
}

func (e *CopyingEmitter) OnRowEnd(isComplete bool) {
	if !e.rows.Push(e.row) {
		if e.reason == ReasonNone {
			e.reason = ReasonOOM
		}
	}
	e.row = nil
}

func (e *CopyingEmitter) OnUnterminatedQuote() {
	if e.reason == ReasonNone {
		e.reason = ReasonUnterminatedEscape
	}
}

func (e *CopyingEmitter) OnMidFieldEscape(pos int) {
	if e.reason == ReasonNone {
		e.reason = ReasonUnexpectedEscape
		e.bytePos = pos
	}
}

func (e *CopyingEmitter) OnOOM() {
	if e.reason == ReasonNone {
		e.reason = ReasonOOM
	}
}

// Finish implements engine.Emitter. It returns a Result (the struct
// defined below).
func (e *CopyingEmitter) Finish() any {
	return e.result()
}

func (e *CopyingEmitter) result() Result {
	rows := e.rows.Finish()
	if e.rows.OOM() && e.reason == ReasonNone {
		e.reason = ReasonOOM
	}
	if e.reason == ReasonNone {
		return Result{Rows: rows}
	}
	return Result{Rows: rows, Err: &PartialError{Reason: e.reason, BytePos: e.bytePos, RowCount: len(rows)}}
}

// Result is the outcome of a Copying or Slicing parse: the rows
// collected and, if a structural condition was observed, the
// PartialError describing it (spec.md §6 "error outputs").
type Result struct {
	Rows [][][]byte
	Err  error
}

var _ engine.Emitter = (*CopyingEmitter)(nil)
var _ engine.UnterminatedQuoteHook = (*CopyingEmitter)(nil)
var _ engine.MidFieldEscapeHook = (*CopyingEmitter)(nil)
var _ engine.OOMHook = (*CopyingEmitter)(nil)

// SlicingEmitter records a zero-copy FieldView for every field: a
// reference into the input buffer plus its needs-unescape flag. It does
// not decode fields during the parse; FieldView.Bytes decodes a field
// with doubled escape sequences into a newly allocated buffer each time
// it is called. The caller must keep the input buffer passed to Parse alive for as long
// as the returned FieldViews are in use.
type SlicingEmitter struct {
	rows *rowcollector.Collector[[]FieldView]
	row  []FieldView

	reason  PartialReason
	bytePos int
}

// NewSlicingEmitter returns a SlicingEmitter.
func NewSlicingEmitter(stackCapacity, maxRows int) *SlicingEmitter {
	return &SlicingEmitter{rows: rowcollector.NewWithLimit[[]FieldView](stackCapacity, maxRows)}
}

func (e *SlicingEmitter) OnField(input []byte, start, end int, needsUnescape bool, cfg *config.Config) {
	e.row = append(e.row, newFieldView(input, start, end, needsUnescape, cfg))
}

func (e *SlicingEmitter) OnRowEnd(isComplete bool) {
	if !e.rows.Push(e.row) && e.reason == ReasonNone {
		e.reason = ReasonOOM
	}
	e.row = nil
}

func (e *SlicingEmitter) OnUnterminatedQuote() {
	if e.reason == ReasonNone {
		e.reason = ReasonUnterminatedEscape
	}
}

func (e *SlicingEmitter) OnMidFieldEscape(pos int) {
	if e.reason == ReasonNone {
		e.reason = ReasonUnexpectedEscape
		e.bytePos = pos
	}
}

// SlicingResult is the outcome of a Slicing parse.
type SlicingResult struct {
	Rows [][]FieldView
	Err  error
}

func (e *SlicingEmitter) Finish() any {
	rows := e.rows.Finish()
	if e.rows.OOM() && e.reason == ReasonNone {
		e.reason = ReasonOOM
	}
	if e.reason == ReasonNone {
		return SlicingResult{Rows: rows}
	}
	return SlicingResult{Rows: rows, Err: &PartialError{Reason: e.reason, BytePos: e.bytePos, RowCount: len(rows)}}
}

var _ engine.Emitter = (*SlicingEmitter)(nil)
var _ engine.UnterminatedQuoteHook = (*SlicingEmitter)(nil)
var _ engine.MidFieldEscapeHook = (*SlicingEmitter)(nil)

// ChunkOffsetEmitter behaves like CopyingEmitter but also tracks the
// byte offset at which the last completed row ended, and materializes
// each row as a ByteRecord (fastparser/byterecord.go's offset-tracking
// representation) instead of a [][]byte.
type ChunkOffsetEmitter struct {
	rows   *rowcollector.Collector[*ByteRecord]
	scoped [scopedUnescapeBufSize]byte

	rowData    []byte
	rowOffsets []int

	lastRowEnd int
	reason     PartialReason
	bytePos    int
}

// NewChunkOffsetEmitter returns a ChunkOffsetEmitter.
func NewChunkOffsetEmitter(stackCapacity, maxRows int) *ChunkOffsetEmitter {
	return &ChunkOffsetEmitter{rows: rowcollector.NewWithLimit[*ByteRecord](stackCapacity, maxRows)}
}

func (e *ChunkOffsetEmitter) OnField(input []byte, start, end int, needsUnescape bool, cfg *config.Config) {
	if len(e.rowOffsets) == 0 {
		e.rowOffsets = append(e.rowOffsets, 0)
	}

	raw := input[start:end]
	if needsUnescape {
		var dst []byte
		if len(raw) <= scopedUnescapeBufSize {
			dst = e.scoped[:0]
		} else {
			dst = make([]byte, 0, len(raw))
		}
		raw = fielddecoder.Decode(dst, raw, cfg.Escape())
	}

	e.rowData = append(e.rowData, raw...)
	e.rowOffsets = append(e.rowOffsets, len(e.rowData))
}

func (e *ChunkOffsetEmitter) OnRowOffset(pos int) {
	e.lastRowEnd = pos
}

func (e *ChunkOffsetEmitter) OnRowEnd(isComplete bool) {
	rec := &ByteRecord{data: e.rowData, offsets: e.rowOffsets}
	if !e.rows.Push(rec) && e.reason == ReasonNone {
		e.reason = ReasonOOM
	}
	e.rowData = nil
	e.rowOffsets = nil
}

func (e *ChunkOffsetEmitter) OnUnterminatedQuote() {
	if e.reason == ReasonNone {
		e.reason = ReasonUnterminatedEscape
	}
}

func (e *ChunkOffsetEmitter) OnMidFieldEscape(pos int) {
	if e.reason == ReasonNone {
		e.reason = ReasonUnexpectedEscape
		e.bytePos = pos
	}
}

// ChunkOffsetResult is the outcome of a Chunk-with-offset parse:
// every row as a ByteRecord, plus the byte offset at which the last
// complete row ended (0 if none completed).
type ChunkOffsetResult struct {
	Rows       []*ByteRecord
	LastRowEnd int
	Err        error
}

func (e *ChunkOffsetEmitter) Finish() any {
	rows := e.rows.Finish()
	if e.rows.OOM() && e.reason == ReasonNone {
		e.reason = ReasonOOM
	}
	result := ChunkOffsetResult{Rows: rows, LastRowEnd: e.lastRowEnd}
	if e.reason != ReasonNone {
		result.Err = &PartialError{Reason: e.reason, BytePos: e.bytePos, RowCount: len(rows)}
	}
	return result
}

var _ engine.Emitter = (*ChunkOffsetEmitter)(nil)
var _ engine.UnterminatedQuoteHook = (*ChunkOffsetEmitter)(nil)
var _ engine.MidFieldEscapeHook = (*ChunkOffsetEmitter)(nil)
var _ engine.RowOffsetHook = (*ChunkOffsetEmitter)(nil)
