package csvcore

import "github.com/shapestone/csvcore/internal/engine"

// Parse runs the Copying Emitter over data with cfg: every field is
// copied into caller-owned storage. Err is non-nil only when a
// structural condition (unterminated quote, escape inside an unquoted
// field, or row-collector OOM) was observed. Rows holds every row
// collected: for an unterminated quote, the rows before the one that
// opened it; for OOM, the rows accepted before the collector stopped;
// for an escape inside an unquoted field, all rows, since parsing
// continues past it.
func Parse(data []byte, cfg *Config) Result {
	e := NewCopyingEmitter(0, 0)
	return engine.Parse(data, cfg, e).(Result)
}

// ParseZeroCopy runs the Slicing Emitter over data with cfg. The
// returned FieldViews reference data directly for fields that need no
// unescaping; data must outlive the returned SlicingResult.
func ParseZeroCopy(data []byte, cfg *Config) SlicingResult {
	e := NewSlicingEmitter(0, 0)
	return engine.Parse(data, cfg, e).(SlicingResult)
}

// ParseChunked runs the Chunk-with-offset Emitter over data with cfg,
// additionally reporting the byte offset at which the last complete
// row ended.
func ParseChunked(data []byte, cfg *Config) ChunkOffsetResult {
	e := NewChunkOffsetEmitter(0, 0)
	return engine.Parse(data, cfg, e).(ChunkOffsetResult)
}
