package engine

import (
	"testing"

	"github.com/shapestone/csvcore/internal/config"
)

// generateCSV mirrors the teacher's fastparser/benchmark_test.go helper:
// rows x cols of either plain or quoted field content.
func generateCSV(rows, cols int, quoted bool) []byte {
	var data []byte
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c > 0 {
				data = append(data, ',')
			}
			if quoted {
				data = append(data, '"')
			}
			data = append(data, "field"...)
			if quoted {
				data = append(data, '"')
			}
		}
		data = append(data, '\n')
	}
	return data
}

var (
	smallCSV  = generateCSV(3, 3, false)
	mediumCSV = generateCSV(100, 10, false)
	largeCSV  = generateCSV(1000, 10, false)
	quotedCSV = generateCSV(100, 10, true)
)

func benchmarkParse(b *testing.B, data []byte) {
	b.Helper()
	cfg := config.Default()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	for i := 0; i < b.N; i++ {
		e := newRecordingEmitter([]byte(`"`))
		Parse(data, cfg, e)
	}
}

func BenchmarkParse_Small(b *testing.B)  { benchmarkParse(b, smallCSV) }
func BenchmarkParse_Medium(b *testing.B) { benchmarkParse(b, mediumCSV) }
func BenchmarkParse_Large(b *testing.B)  { benchmarkParse(b, largeCSV) }
func BenchmarkParse_Quoted(b *testing.B) { benchmarkParse(b, quotedCSV) }

func BenchmarkParse_MultiBytePatternSeparator(b *testing.B) {
	cfg, err := config.New([][]byte{[]byte("||")}, []byte(`"`))
	if err != nil {
		b.Fatalf("config.New() error: %v", err)
	}
	var data []byte
	for r := 0; r < 100; r++ {
		data = append(data, "field1||field2||field3\n"...)
	}

	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	for i := 0; i < b.N; i++ {
		e := newRecordingEmitter([]byte(`"`))
		Parse(data, cfg, e)
	}
}
