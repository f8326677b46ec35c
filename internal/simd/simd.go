// Package simd implements the byte-scanning core of csvcore: vectorized
// search for small byte classes (delimiters, newlines, escape markers)
// over a CSV input buffer.
//
// The accelerated path here is a portable SWAR (SIMD-within-a-register)
// implementation, not hand-written assembly: shape-csv's own
// fastparser/simd package declares an AVX2 assembly entry point
// (stage1_amd64.go) whose .s file is not present anywhere in this
// pack's retrieval, and hand-authoring new assembly that can never be
// run through a compiler in this environment is not a risk worth
// taking. Every teacher file that does real scanning work —
// fastparser/chunked.go's hasDelimiter/findDelimiterPos, and the
// scalar fallbacks in fastparser/simd and entreya-csvquery/internal/simd
// — already uses this same broadword trick; this package generalizes
// it to the spec's "process V bytes per iteration, OR the masks,
// return the lowest set bit, scalar epilogue for the tail" shape
// instead of hand-rolling one-off loops per caller.
package simd

import "github.com/klauspost/cpuid/v2"

// VectorWidth is the number of bytes processed per accelerated
// iteration. shape-csv's own AVX2 path and entreya-csvquery's AVX2/SSE4.2
// path both process 64 bytes (two 32-byte lanes); this portable
// SWAR implementation processes four 8-byte machine words per
// iteration, the same 32-byte grouping spec.md §4.2 calls out as the
// baseline ("V = 32 bytes... implementation may choose 16 where
// 32-wide vectors are unavailable").
const VectorWidth = 32

const wordSize = 8
const lanesPerVector = VectorWidth / wordSize

// Capabilities reports the CPU's actual SIMD feature set, via
// github.com/klauspost/cpuid/v2 — the real dependency raceordie690's
// port of minio/simdcsv declares in its go.mod. csvcore's own scan
// loops are portable Go (see package doc), so these flags are
// diagnostic: callers size worker pools for ParseParallel and report
// which native capability the host actually has, without csvcore
// depending on unverifiable hand-written assembly to use it.
type Capabilities struct {
	AVX2   bool
	SSE42  bool
	AVX512 bool
}

// DetectCapabilities probes the running CPU once via cpuid.CPU.
func DetectCapabilities() Capabilities {
	return Capabilities{
		AVX2:   cpuid.CPU.Supports(cpuid.AVX2),
		SSE42:  cpuid.CPU.Supports(cpuid.SSE42),
		AVX512: cpuid.CPU.Supports(cpuid.AVX512F, cpuid.AVX512BW, cpuid.AVX512VL),
	}
}
