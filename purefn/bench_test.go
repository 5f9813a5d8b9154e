package purefn_test

import (
	"fmt"
	"testing"

	"github.com/on-the-ground/memo_ive_go/pure"
	"github.com/on-the-ground/memo_ive_go/purefn"
)

func BenchmarkNaiveFib20(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = purefn.NaiveFibonacci(20)
	}
}

// BenchmarkMemoizedFib20 builds a cold table on every iteration.
func BenchmarkMemoizedFib20(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = purefn.Fibonacci(20)
	}
}

// BenchmarkWarmFib20 measures a pure table hit.
func BenchmarkWarmFib20(b *testing.B) {
	fib := purefn.NewFibonacci()
	_ = fib.Call(20)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = fib.Call(20)
	}
}

func naiveLevenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	if a[0] == b[0] {
		return naiveLevenshtein(a[1:], b[1:])
	}
	return 1 + min(
		naiveLevenshtein(a[1:], b),
		naiveLevenshtein(a, b[1:]),
		naiveLevenshtein(a[1:], b[1:]),
	)
}

func BenchmarkNaiveLevenshtein(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = naiveLevenshtein("kitten", "sitting")
	}
}

func BenchmarkMemoizedLevenshtein(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = purefn.Levenshtein("kitten", "sitting")
	}
}

func BenchmarkBinomial(b *testing.B) {
	for _, n := range []uint{10, 30, 60} {
		b.Run(fmt.Sprintf("N_%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = purefn.Binomial(n, n/2)
			}
		})
	}
}

type point struct {
	X, Y float64
}

func naiveDist(p1, p2 point) float64 {
	dx := p1.X - p2.X
	dy := p1.Y - p2.Y
	return dx*dx + dy*dy
}

func BenchmarkNaiveDist(b *testing.B) {
	p1 := point{1.5, 2.5}
	p2 := point{3.0, 4.0}
	for i := 0; i < b.N; i++ {
		_ = naiveDist(p1, p2)
	}
}

func BenchmarkTableizedDist(b *testing.B) {
	dist := pure.TableizeI2O1(naiveDist)

	p1 := point{1.5, 2.5}
	p2 := point{3.0, 4.0}
	for i := 0; i < b.N; i++ {
		_ = dist(p1, p2)
	}
}
