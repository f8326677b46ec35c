package csvcore

import "github.com/shapestone/csvcore/internal/simd"

// Capabilities reports the CPU's actual SIMD feature set (spec.md §4's
// CPU-capability reporting). csvcore's scan loops are portable SWAR Go
// rather than hand-written vector assembly (internal/simd's package doc
// explains why), so these flags aren't a dispatch switch between two
// scan implementations; they're a real input to ParseParallel's default
// worker-count heuristic (see parallel.go) and a diagnostic callers can
// use to explain observed throughput on a given host.
type Capabilities = simd.Capabilities

// DetectCapabilities probes the running CPU once via
// github.com/klauspost/cpuid/v2 and returns the result.
func DetectCapabilities() Capabilities {
	return simd.DetectCapabilities()
}
