package csvcore

import "testing"

var benchCSV = buildLargeCSV(1000)

func BenchmarkParse_Large(b *testing.B) {
	cfg := DefaultConfig()
	b.ReportAllocs()
	b.SetBytes(int64(len(benchCSV)))
	for i := 0; i < b.N; i++ {
		if result := Parse(benchCSV, cfg); result.Err != nil {
			b.Fatalf("Parse() error: %v", result.Err)
		}
	}
}

func BenchmarkParseZeroCopy_Large(b *testing.B) {
	cfg := DefaultConfig()
	b.ReportAllocs()
	b.SetBytes(int64(len(benchCSV)))
	for i := 0; i < b.N; i++ {
		if result := ParseZeroCopy(benchCSV, cfg); result.Err != nil {
			b.Fatalf("ParseZeroCopy() error: %v", result.Err)
		}
	}
}

func BenchmarkParseChunked_Large(b *testing.B) {
	cfg := DefaultConfig()
	b.ReportAllocs()
	b.SetBytes(int64(len(benchCSV)))
	for i := 0; i < b.N; i++ {
		if result := ParseChunked(benchCSV, cfg); result.Err != nil {
			b.Fatalf("ParseChunked() error: %v", result.Err)
		}
	}
}

func BenchmarkParseParallel_Large(b *testing.B) {
	cfg := DefaultConfig()
	b.ReportAllocs()
	b.SetBytes(int64(len(benchCSV)))
	for i := 0; i < b.N; i++ {
		if result := ParseParallel(benchCSV, cfg, 0); result.Err != nil {
			b.Fatalf("ParseParallel() error: %v", result.Err)
		}
	}
}

func BenchmarkStreamingCoordinator_Feed(b *testing.B) {
	cfg := DefaultConfig()
	const chunkSize = 4096

	b.ReportAllocs()
	b.SetBytes(int64(len(benchCSV)))
	for i := 0; i < b.N; i++ {
		sc := NewStreamingCoordinator(cfg, 0)
		for off := 0; off < len(benchCSV); off += chunkSize {
			end := off + chunkSize
			if end > len(benchCSV) {
				end = len(benchCSV)
			}
			if _, err := sc.Feed(benchCSV[off:end]); err != nil {
				b.Fatalf("Feed() error: %v", err)
			}
		}
		if _, err := sc.Finalize(); err != nil {
			b.Fatalf("Finalize() error: %v", err)
		}
	}
}
