package bn

import (
	"math"
	"testing"
)

const benchSize = 4096

func benchFloat64Array(b *testing.B, nan bool) *Array {
	b.Helper()
	data := make([]float64, benchSize)
	for i := range data {
		data[i] = float64(i % 7)
		if nan && i%7 == 0 {
			data[i] = math.NaN()
		}
	}
	a, err := FromSlice(data, benchSize)
	if err != nil {
		b.Fatalf("FromSlice: %v", err)
	}
	return a
}

func BenchmarkReplaceFloat64(b *testing.B) {
	a := benchFloat64Array(b, false)
	b.SetBytes(benchSize * 8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Replace(a, 3, 3)
	}
}

func BenchmarkReplaceFloat64NaN(b *testing.B) {
	a := benchFloat64Array(b, true)
	b.SetBytes(benchSize * 8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Replace(a, math.NaN(), math.NaN())
	}
}

func BenchmarkReplaceInt64(b *testing.B) {
	data := make([]int64, benchSize)
	for i := range data {
		data[i] = int64(i % 7)
	}
	a, err := FromSlice(data, benchSize)
	if err != nil {
		b.Fatalf("FromSlice: %v", err)
	}
	b.SetBytes(benchSize * 8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Replace(a, 3, 3)
	}
}

func BenchmarkReplaceInt8(b *testing.B) {
	data := make([]int8, benchSize)
	for i := range data {
		data[i] = int8(i % 7)
	}
	a, err := FromSlice(data, benchSize)
	if err != nil {
		b.Fatalf("FromSlice: %v", err)
	}
	b.SetBytes(benchSize)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Replace(a, 3, 3)
	}
}

func BenchmarkReplaceSlowPathRank3(b *testing.B) {
	data := make([]float64, benchSize)
	for i := range data {
		data[i] = float64(i % 7)
	}
	a, err := FromSlice(data, 16, 16, 16)
	if err != nil {
		b.Fatalf("FromSlice: %v", err)
	}
	b.SetBytes(benchSize * 8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Replace(a, 3, 3)
	}
}

func BenchmarkSelectRoutine(b *testing.B) {
	a, err := Zeros[float64](benchSize)
	if err != nil {
		b.Fatalf("Zeros: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := SelectRoutine(a); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkReplacePreselected(b *testing.B) {
	a, err := Zeros[float64](benchSize)
	if err != nil {
		b.Fatalf("Zeros: %v", err)
	}
	scan, err := SelectRoutine(a)
	if err != nil {
		b.Fatalf("SelectRoutine: %v", err)
	}
	b.SetBytes(benchSize * 8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		scan(a, 3, 3)
	}
}
