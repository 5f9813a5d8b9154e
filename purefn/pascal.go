package purefn

import (
	"fmt"
	"math"

	"github.com/on-the-ground/memo_ive_go/pure"
)

// NewBinomial returns a memoized C(n, k) built on Pascal's rule
// C(n, k) = C(n-1, k-1) + C(n-1, k). C(n, k) is 0 for k > n.
// A result that does not fit in a uint64 fails with ErrOverflow and is not cached.
func NewBinomial(opts ...pure.Option) func(n, k uint) (uint64, error) {
	var binomial func(n, k uint) (uint64, error)
	binomial = pure.TableizeI2Err(func(n, k uint) (uint64, error) {
		switch {
		case k > n:
			return 0, nil
		case k == 0 || k == n:
			return 1, nil
		}
		a, err := binomial(n-1, k-1)
		if err != nil {
			return 0, err
		}
		b, err := binomial(n-1, k)
		if err != nil {
			return 0, err
		}
		if a > math.MaxUint64-b {
			return 0, fmt.Errorf("binomial(%d, %d): %w", n, k, ErrOverflow)
		}
		return a + b, nil
	}, opts...)
	return binomial
}

// Binomial returns C(n, k) using a fresh memo table.
func Binomial(n, k uint) (uint64, error) {
	return NewBinomial(pure.WithName("binomial"))(n, k)
}

// PascalRow returns the n-th row of Pascal's triangle, counting from 1.
// Row 0 is empty.
func PascalRow(n uint) ([]uint64, error) {
	return pascalRow(NewBinomial(pure.WithName("pascal_row")), n)
}

// PascalTriangle returns rows 1 through n sharing one memo table.
func PascalTriangle(n uint) ([][]uint64, error) {
	binomial := NewBinomial(pure.WithName("pascal_triangle"))
	rows := make([][]uint64, 0, n)
	for i := uint(1); i <= n; i++ {
		row, err := pascalRow(binomial, i)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func pascalRow(binomial func(n, k uint) (uint64, error), n uint) ([]uint64, error) {
	if n == 0 {
		return []uint64{}, nil
	}
	row := make([]uint64, n)
	for k := uint(0); k < n; k++ {
		v, err := binomial(n-1, k)
		if err != nil {
			return nil, err
		}
		row[k] = v
	}
	return row, nil
}

// FibonacciViaPascal returns F(n) as the sum of a shallow diagonal of Pascal's
// triangle: F(n) = sum of C(n-1-k, k) for k = 0 .. (n-1)/2.
// It fails with ErrOverflow past MaxFibonacciIndex.
func FibonacciViaPascal(n uint) (uint64, error) {
	if n == 0 {
		return 0, nil
	}
	binomial := NewBinomial(pure.WithName("fibonacci_via_pascal"))
	var sum uint64
	for k := uint(0); 2*k <= n-1; k++ {
		v, err := binomial(n-1-k, k)
		if err != nil {
			return 0, err
		}
		if sum > math.MaxUint64-v {
			return 0, fmt.Errorf("fibonacci_via_pascal(%d): %w", n, ErrOverflow)
		}
		sum += v
	}
	return sum, nil
}
