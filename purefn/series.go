package purefn

import "github.com/on-the-ground/memo_ive_go/pure"

// MultipleOfThree returns 3n by the recurrence m(n) = 3 + m(n-1).
func MultipleOfThree(n uint) uint64 {
	return pure.Memoize(func(self func(uint) uint64, k uint) uint64 {
		if k == 0 {
			return 0
		}
		return 3 + self(k-1)
	}, pure.WithName("multiple_of_three")).Call(n)
}

// SumFirstN returns 1 + 2 + ... + n by the recurrence s(n) = n + s(n-1).
func SumFirstN(n uint) uint64 {
	return pure.Memoize(func(self func(uint) uint64, k uint) uint64 {
		if k == 0 {
			return 0
		}
		return uint64(k) + self(k-1)
	}, pure.WithName("sum_first_n")).Call(n)
}
