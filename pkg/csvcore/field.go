package csvcore

import (
	"github.com/shapestone/csvcore/internal/config"
	"github.com/shapestone/csvcore/internal/fielddecoder"
)

// FieldView is the Slicing Emitter's zero-copy field representation: a
// reference into the input buffer plus enough information to decode it
// lazily. The caller must keep the input buffer alive for as long as
// any FieldView derived from it is in use (spec.md §4.4, Slicing
// Emitter).
type FieldView struct {
	input         []byte
	start, end    int
	needsUnescape bool
	escape        []byte
}

// Bytes materializes the field's value. Fields that need no unescaping
// return a direct subslice of the input buffer (no allocation); fields
// with doubled escape sequences are decoded into a freshly allocated
// buffer.
func (f FieldView) Bytes() []byte {
	raw := f.input[f.start:f.end]
	if !f.needsUnescape {
		return raw
	}
	return fielddecoder.Decode(make([]byte, 0, len(raw)), raw, f.escape)
}

// String is a convenience wrapper around Bytes.
func (f FieldView) String() string {
	return string(f.Bytes())
}

// Start and End report the field's raw byte range in the input buffer,
// before any unescaping. They satisfy spec.md's start <= end <= len(input)
// invariant.
func (f FieldView) Start() int { return f.start }
func (f FieldView) End() int   { return f.end }

// NeedsUnescape reports whether the field's interior contained one or
// more doubled escape sequences.
func (f FieldView) NeedsUnescape() bool { return f.needsUnescape }

func newFieldView(input []byte, start, end int, needsUnescape bool, cfg *config.Config) FieldView {
	return FieldView{input: input, start: start, end: end, needsUnescape: needsUnescape, escape: cfg.Escape()}
}

// ByteRecord is the Chunk-with-offset Emitter's row representation,
// grounded in fastparser/byterecord.go's offset-tracking ByteRecord:
// one contiguous backing slice plus N+1 offsets marking field
// boundaries, so field access is lazy and allocation-free until a
// caller actually asks for a string.
type ByteRecord struct {
	data    []byte
	offsets []int
}

// NumFields returns the number of fields in the record.
func (r *ByteRecord) NumFields() int {
	if len(r.offsets) == 0 {
		return 0
	}
	return len(r.offsets) - 1
}

// Field returns the i-th field as a string, or "" if i is out of range.
func (r *ByteRecord) Field(i int) string {
	b := r.FieldBytes(i)
	if b == nil {
		return ""
	}
	return string(b)
}

// FieldBytes returns the i-th field as a []byte sharing memory with the
// record's backing data, or nil if i is out of range.
func (r *ByteRecord) FieldBytes(i int) []byte {
	if i < 0 || i >= r.NumFields() {
		return nil
	}
	return r.data[r.offsets[i]:r.offsets[i+1]]
}

// Fields returns every field as a string.
func (r *ByteRecord) Fields() []string {
	out := make([]string, r.NumFields())
	for i := range out {
		out[i] = r.Field(i)
	}
	return out
}
