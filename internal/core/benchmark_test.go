package core

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

// ============================================================================
// Pipeline Stage Benchmarks
// ============================================================================

// syntheticCSV builds a rows x cols numeric file with a header line.
func syntheticCSV(rows, cols int) string {
	var b strings.Builder
	for c := 0; c < cols; c++ {
		if c > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "col%d", c)
	}
	b.WriteByte('\n')
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c > 0 {
				b.WriteByte(',')
			}
			fmt.Fprintf(&b, "%d.%d", r, c)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// BenchmarkConvertCell benchmarks single-cell conversion.
// This is the hot path: it runs once per cell of every parsed file.
func BenchmarkConvertCell(b *testing.B) {
	cells := []string{
		"123",
		"-456.78",
		"1,5",
		"2024-01-15",
		"some free text",
		"",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, c := range cells {
			convertCell(c, DecimalDot)
		}
	}
}

// BenchmarkDetectDelimiter benchmarks separator detection on a sample.
func BenchmarkDetectDelimiter(b *testing.B) {
	lines := []string{
		"col0,col1,col2,col3",
		"1.0,2.0,3.0,4.0",
		"5.0,6.0,7.0,8.0",
		"9.0,10.0,11.0,12.0",
		"13.0,14.0,15.0,16.0",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		DetectDelimiter(lines)
	}
}

// BenchmarkClassifyColumns benchmarks column typing on converted rows.
func BenchmarkClassifyColumns(b *testing.B) {
	rows := make([][]any, 1000)
	for i := range rows {
		rows[i] = []any{float64(i), fmt.Sprintf("2024-01-%02d", i%28+1), "text"}
	}
	names := []string{"n", "d", "s"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ClassifyColumns(names, rows)
	}
}

// ============================================================================
// End-to-End Benchmarks
// ============================================================================

// BenchmarkParse_Small measures full pipeline latency on a typical
// interactive upload (100 rows).
func BenchmarkParse_Small(b *testing.B) {
	text := syntheticCSV(100, 4)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Parse(context.Background(), text, Options{}); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkParse_Large measures throughput on a 10k-row file.
func BenchmarkParse_Large(b *testing.B) {
	text := syntheticCSV(10000, 8)
	b.SetBytes(int64(len(text)))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Parse(context.Background(), text, Options{}); err != nil {
			b.Fatal(err)
		}
	}
}
