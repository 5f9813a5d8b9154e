package pure

import (
	"fmt"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// Keyer lets types that Go cannot compare with == act as cache keys.
//
// Hash only picks a bucket; Equal decides whether two keys are the same call,
// so a collision costs a scan but never returns another key's result.
// Clone must return a copy the caller can no longer mutate.
type Keyer[K any] interface {
	Hash(K) uint64
	Equal(a, b K) bool
	Clone(K) K
}

// Slices returns a Keyer for slices of comparable elements.
// Two slices are the same key iff they have the same length and equal elements.
func Slices[E comparable]() Keyer[[]E] {
	return sliceKeyer[E]{}
}

type sliceKeyer[E comparable] struct{}

func (sliceKeyer[E]) Hash(s []E) uint64 {
	d := xxhash.New()
	_, _ = fmt.Fprintf(d, "%d\x1e", len(s))
	for _, e := range s {
		_, _ = fmt.Fprintf(d, "%#v\x1f", e)
	}
	return d.Sum64()
}

func (sliceKeyer[E]) Equal(a, b []E) bool {
	return slices.Equal(a, b)
}

func (sliceKeyer[E]) Clone(s []E) []E {
	return slices.Clone(s)
}
