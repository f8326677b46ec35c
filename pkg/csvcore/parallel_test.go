package csvcore

import (
	"bytes"
	"fmt"
	"testing"
)

func buildLargeCSV(rows int) []byte {
	var buf bytes.Buffer
	for i := 0; i < rows; i++ {
		fmt.Fprintf(&buf, "%d,name-%d,\"quoted, value %d\"\n", i, i, i)
	}
	return buf.Bytes()
}

func TestParseParallelMatchesParseAcrossWorkerCounts(t *testing.T) {
	cfg := DefaultConfig()
	data := buildLargeCSV(500)

	want := Parse(data, cfg)
	if want.Err != nil {
		t.Fatalf("sequential Parse() error: %v", want.Err)
	}

	for _, workers := range []int{0, 1, 2, 3, 8, 64} {
		got := ParseParallel(data, cfg, workers)
		if got.Err != nil {
			t.Fatalf("workers=%d: ParseParallel() error: %v", workers, got.Err)
		}
		if len(got.Rows) != len(want.Rows) {
			t.Fatalf("workers=%d: got %d rows, want %d", workers, len(got.Rows), len(want.Rows))
		}
		for i := range want.Rows {
			if len(got.Rows[i]) != len(want.Rows[i]) {
				t.Fatalf("workers=%d: row %d has %d fields, want %d", workers, i, len(got.Rows[i]), len(want.Rows[i]))
			}
			for j := range want.Rows[i] {
				if !bytes.Equal(got.Rows[i][j], want.Rows[i][j]) {
					t.Fatalf("workers=%d: row %d field %d = %q, want %q", workers, i, j, got.Rows[i][j], want.Rows[i][j])
				}
			}
		}
	}
}

func TestSplitIntoSafeChunksNeverSplitsInsideQuotedField(t *testing.T) {
	cfg := DefaultConfig()
	data := []byte("a,\"multi\nline,value\"\nb,c\nd,e\nf,g\n")

	chunks := splitIntoSafeChunks(data, cfg, 4)

	var reassembled []byte
	for _, c := range chunks {
		reassembled = append(reassembled, c...)
	}
	if !bytes.Equal(reassembled, data) {
		t.Fatalf("chunks do not reassemble to original data")
	}

	for i, c := range chunks {
		if len(c) == 0 {
			continue
		}
		cut := LastCompleteRowBoundary(c, cfg)
		if cut != len(c) {
			t.Fatalf("chunk %d does not end on a complete-row boundary: %q", i, c)
		}
	}
}

func TestSplitIntoSafeChunksSingleWorkerReturnsWholeInput(t *testing.T) {
	cfg := DefaultConfig()
	data := []byte("a,b\n1,2\n")
	chunks := splitIntoSafeChunks(data, cfg, 1)
	if len(chunks) != 1 || !bytes.Equal(chunks[0], data) {
		t.Fatalf("splitIntoSafeChunks(workerCount=1) = %v, want [data]", chunks)
	}
}

func TestSplitIntoSafeChunksEmptyInput(t *testing.T) {
	cfg := DefaultConfig()
	chunks := splitIntoSafeChunks(nil, cfg, 4)
	if len(chunks) != 1 || len(chunks[0]) != 0 {
		t.Fatalf("splitIntoSafeChunks(nil) = %v, want [[]]", chunks)
	}
}

func TestParseParallelWellFormedInputHasNoError(t *testing.T) {
	cfg := DefaultConfig()
	data := buildLargeCSV(50)

	result := ParseParallel(data, cfg, 4)
	if result.Err != nil {
		t.Fatalf("ParseParallel() error = %v, want nil for well-formed input", result.Err)
	}
}
