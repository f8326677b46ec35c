package csvcore

import "fmt"

// PartialReason identifies why a parse produced a partial result
// instead of running to full completion (spec.md §6/§7). The engine
// never aborts mid-parse: it always reaches the end of input and
// reports one of these reasons alongside the rows it collected.
type PartialReason int

const (
	// ReasonNone means the parse completed with no structural error.
	ReasonNone PartialReason = iota
	// ReasonUnterminatedEscape means EOF was reached inside an open
	// quoted field.
	ReasonUnterminatedEscape
	// ReasonUnexpectedEscape means an escape pattern occurred inside
	// the span of an unquoted field.
	ReasonUnexpectedEscape
	// ReasonOOM means the row collector failed to grow and silently
	// dropped one or more rows.
	ReasonOOM
)

func (r PartialReason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonUnterminatedEscape:
		return "unterminated_escape"
	case ReasonUnexpectedEscape:
		return "unexpected_escape"
	case ReasonOOM:
		return "oom"
	default:
		return "unknown"
	}
}

// PartialError describes a structural parse condition: its reason, the
// byte position it occurred at (meaningful only for
// ReasonUnexpectedEscape), and the number of rows collected. The rows
// themselves are not held here; they are returned next to it in the
// result's Rows field.
type PartialError struct {
	Reason   PartialReason
	BytePos  int
	RowCount int
}

func (e *PartialError) Error() string {
	if e.Reason == ReasonUnexpectedEscape {
		return fmt.Sprintf("csvcore: partial result (%s at byte %d), %d rows recovered", e.Reason, e.BytePos, e.RowCount)
	}
	return fmt.Sprintf("csvcore: partial result (%s), %d rows recovered", e.Reason, e.RowCount)
}

// MaxRowSizeError is returned by the streaming coordinator when the
// back-pressure guard rejects a feed that would grow the internal
// buffer past the configured limit (spec.md §4.6).
type MaxRowSizeError struct {
	Limit     int
	Attempted int
}

func (e *MaxRowSizeError) Error() string {
	return fmt.Sprintf("csvcore: feed would grow buffer to %d bytes, exceeding max_row_size %d", e.Attempted, e.Limit)
}
