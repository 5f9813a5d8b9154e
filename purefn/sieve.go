package purefn

import (
	"math"
	"slices"

	"github.com/on-the-ground/memo_ive_go/pure"
)

// NewPrimes returns a memoized sieve of Eratosthenes.
// The primes up to n are found by crossing out multiples of the primes up to
// sqrt(n), which come from the same table. The returned slices are shared with
// the table and must not be modified.
func NewPrimes(opts ...pure.Option) *pure.Evaluator[uint, []uint] {
	return pure.Memoize(func(self func(uint) []uint, n uint) []uint {
		if n < 2 {
			return []uint{}
		}
		composite := make([]bool, n+1)
		for _, p := range self(isqrt(n)) {
			for m := p * p; m <= n; m += p {
				composite[m] = true
			}
		}
		primes := make([]uint, 0)
		for i := uint(2); i <= n; i++ {
			if !composite[i] {
				primes = append(primes, i)
			}
		}
		return primes
	}, opts...)
}

// PrimesUpTo returns the primes less than or equal to n in ascending order.
func PrimesUpTo(n uint) []uint {
	return slices.Clone(NewPrimes(pure.WithName("primes")).Call(n))
}

func isqrt(n uint) uint {
	r := uint(math.Sqrt(float64(n)))
	for r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}
