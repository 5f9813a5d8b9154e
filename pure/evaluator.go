package pure

import "github.com/google/uuid"

// Evaluator memoizes a deterministic single-key function.
//
// The body receives the memoizing callable as self, so recursive sub-calls made
// through self are served from the same table:
//
//	fib := pure.Memoize(func(self func(int) int, n int) int {
//	    if n <= 1 {
//	        return n
//	    }
//	    return self(n-1) + self(n-2)
//	})
//	fib.Call(90)
//
// An Evaluator is not safe for concurrent use.
type Evaluator[K comparable, V any] struct {
	body  func(self func(K) V, k K) V
	table *Table[K, V]
	memo  *memo[K, V]
}

// Memoize builds an Evaluator around body. It panics if body is nil.
func Memoize[K comparable, V any](
	body func(self func(K) V, k K) V,
	opts ...Option,
) *Evaluator[K, V] {
	if body == nil {
		panic("pure: Memoize requires a non-nil body")
	}
	cfg := NewConfig(opts...)
	table := NewTable[K, V](cfg.SizeHint)
	return &Evaluator[K, V]{
		body:  body,
		table: table,
		memo:  newMemo[K, V](cfg, table),
	}
}

// Wrap memoizes a function that does not recurse through the cache.
func Wrap[K comparable, V any](fn func(K) V, opts ...Option) func(K) V {
	if fn == nil {
		panic("pure: Wrap requires a non-nil function")
	}
	return Memoize(func(_ func(K) V, k K) V {
		return fn(k)
	}, opts...).Call
}

// Call returns the cached result for k, computing it on first use.
func (e *Evaluator[K, V]) Call(k K) V {
	v, _ := e.memo.do(k, func() (V, error) {
		return e.body(e.Call, k), nil
	})
	return v
}

// Func returns Call as a plain function value.
func (e *Evaluator[K, V]) Func() func(K) V {
	return e.Call
}

// Cached reports the stored result for k without computing anything.
func (e *Evaluator[K, V]) Cached(k K) (V, bool) {
	return e.table.Load(k)
}

func (e *Evaluator[K, V]) Keys() []K {
	return e.table.Keys()
}

func (e *Evaluator[K, V]) Len() int {
	return e.table.Len()
}

func (e *Evaluator[K, V]) Stats() Stats {
	return e.memo.stats
}

func (e *Evaluator[K, V]) ID() uuid.UUID {
	return e.memo.id
}

func (e *Evaluator[K, V]) Name() string {
	return e.memo.cfg.Name
}
