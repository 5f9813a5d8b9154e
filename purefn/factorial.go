package purefn

import (
	"fmt"
	"math"

	"github.com/on-the-ground/memo_ive_go/pure"
)

// NewFactorial returns a memoized n! that fails with ErrOverflow instead of wrapping.
// Failed inputs are not cached.
func NewFactorial(opts ...pure.Option) *pure.FallibleEvaluator[uint, uint64] {
	return pure.MemoizeErr(func(self func(uint) (uint64, error), n uint) (uint64, error) {
		if n <= 1 {
			return 1, nil
		}
		prev, err := self(n - 1)
		if err != nil {
			return 0, err
		}
		if prev > math.MaxUint64/uint64(n) {
			return 0, fmt.Errorf("factorial(%d): %w", n, ErrOverflow)
		}
		return uint64(n) * prev, nil
	}, opts...)
}

// Factorial returns n! using a fresh memo table.
func Factorial(n uint) (uint64, error) {
	return NewFactorial(pure.WithName("factorial")).Call(n)
}
