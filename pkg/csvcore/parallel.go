package csvcore

import (
	"runtime"
	"sync"
)

// ParseParallel splits data into roughly workerCount quote-aware,
// row-aligned chunks and parses each chunk concurrently with its own
// Copying Emitter, then concatenates the rows in order. Each worker
// holds its own in-flight parse with no shared mutable state, matching
// the "parallel threads, no shared mutable parser state" resource
// model (spec.md §5). This is a new entry point — not present in any
// single teacher file — built from raceordie690-simdcsv's
// channel/goroutine chunk pipeline and entreya-csvquery's
// worker-boundary splitting, composed over csvcore's own engine
// instead of encoding/csv.
//
// workerCount <= 0 uses runtime.GOMAXPROCS(0), scaled up when
// DetectCapabilities reports no wide-vector support: the scanner's
// scalar SWAR fallback processes fewer bytes per cycle than the
// vectorized path, so more, smaller workers keep wall-clock comparable
// to a host with real AVX2/AVX512 lanes.
func ParseParallel(data []byte, cfg *Config, workerCount int) Result {
	if workerCount <= 0 {
		workerCount = runtime.GOMAXPROCS(0)
		if caps := DetectCapabilities(); !caps.AVX2 && !caps.AVX512 {
			workerCount *= 2
		}
	}
	if workerCount < 1 {
		workerCount = 1
	}

	chunks := splitIntoSafeChunks(data, cfg, workerCount)
	results := make([]Result, len(chunks))

	var wg sync.WaitGroup
	for i, chunk := range chunks {
		wg.Add(1)
		go func(i int, chunk []byte) {
			defer wg.Done()
			results[i] = Parse(chunk, cfg)
		}(i, chunk)
	}
	wg.Wait()

	return mergeResults(results)
}

// splitIntoSafeChunks partitions data into up to workerCount pieces,
// each ending at a quote-aware row boundary (so no worker ever sees
// half of a quoted field), using the same in_quotes walk as
// LastCompleteRowBoundary. Each piece targets len(data)/workerCount
// bytes; the final piece takes whatever remains.
func splitIntoSafeChunks(data []byte, cfg *Config, workerCount int) [][]byte {
	if len(data) == 0 || workerCount <= 1 {
		return [][]byte{data}
	}
	targetSize := len(data) / workerCount
	if targetSize == 0 {
		return [][]byte{data}
	}

	var chunks [][]byte
	inQuotes := false
	chunkStart := 0
	nextHint := targetSize
	i := 0
	n := len(data)

	for i < n {
		if len(chunks) >= workerCount-1 {
			break
		}

		if k, ok := cfg.MatchEscapeAt(data, i); ok {
			if inQuotes {
				if n2, ok2 := cfg.MatchEscapeAt(data, i+k); ok2 {
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

		if inQuotes {
			i++
			continue
		}

		var cut int
		switch {
		case data[i] == '\n':
			cut = i + 1
			i++
		case data[i] == '\r':
			if i+1 < n && data[i+1] == '\n' {
				cut = i + 2
				i += 2
			} else {
				cut = i + 1
				i++
			}
		default:
			i++
			continue
		}

		if cut >= nextHint && cut < n {
			chunks = append(chunks, data[chunkStart:cut])
			chunkStart = cut
			nextHint = chunkStart + targetSize
		}
	}

	chunks = append(chunks, data[chunkStart:])
	return chunks
}

func mergeResults(results []Result) Result {
	var merged Result
	for _, r := range results {
		merged.Rows = append(merged.Rows, r.Rows...)
		if merged.Err == nil && r.Err != nil {
			merged.Err = r.Err
		}
	}
	return merged
}
