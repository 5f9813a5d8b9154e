package purefn

import "github.com/on-the-ground/memo_ive_go/pure"

// MaxFibonacciIndex is the largest n for which F(n) fits in a uint64.
const MaxFibonacciIndex = 93

// NaiveFibonacci is the unmemoized recurrence. It makes O(2^n) calls.
func NaiveFibonacci(n uint) uint64 {
	v, _ := CountingNaiveFibonacci(n)
	return v
}

// CountingNaiveFibonacci returns F(n) and how many times the recurrence body ran.
func CountingNaiveFibonacci(n uint) (value uint64, calls int) {
	var fib func(uint) uint64
	fib = func(k uint) uint64 {
		calls++
		if k <= 1 {
			return uint64(k)
		}
		return fib(k-1) + fib(k-2)
	}
	value = fib(n)
	return value, calls
}

// NewFibonacci returns a memoized Fibonacci evaluator.
// Results above MaxFibonacciIndex wrap around modulo 2^64.
func NewFibonacci(opts ...pure.Option) *pure.Evaluator[uint, uint64] {
	return pure.Memoize(func(self func(uint) uint64, n uint) uint64 {
		if n <= 1 {
			return uint64(n)
		}
		return self(n-1) + self(n-2)
	}, opts...)
}

// Fibonacci returns F(n) using a fresh memo table.
func Fibonacci(n uint) uint64 {
	return NewFibonacci(pure.WithName("fibonacci"), pure.WithSizeHint(fibonacciSizeHint(n))).Call(n)
}

// fibonacciSizeHint caps the table pre-size at the indices that fit in a uint64.
func fibonacciSizeHint(n uint) int {
	return int(min(n, MaxFibonacciIndex)) + 1
}

// FibonacciIndex returns the smallest i with F(i) == v, or -1 if v is not a
// Fibonacci number. One memo table is shared by all lookups.
func FibonacciIndex(v uint64) int {
	fib := NewFibonacci(pure.WithName("fibonacci_index"))
	for i := uint(0); i <= MaxFibonacciIndex; i++ {
		f := fib.Call(i)
		if f == v {
			return int(i)
		}
		if f > v {
			break
		}
	}
	return -1
}
