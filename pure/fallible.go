package pure

import "github.com/google/uuid"

// FallibleEvaluator memoizes a deterministic function that may fail.
// Failures are returned unchanged and never stored, so retrying the same key
// invokes the body again.
type FallibleEvaluator[K comparable, V any] struct {
	body  func(self func(K) (V, error), k K) (V, error)
	table *Table[K, V]
	memo  *memo[K, V]
}

// MemoizeErr builds a FallibleEvaluator around body. It panics if body is nil.
func MemoizeErr[K comparable, V any](
	body func(self func(K) (V, error), k K) (V, error),
	opts ...Option,
) *FallibleEvaluator[K, V] {
	if body == nil {
		panic("pure: MemoizeErr requires a non-nil body")
	}
	cfg := NewConfig(opts...)
	table := NewTable[K, V](cfg.SizeHint)
	return &FallibleEvaluator[K, V]{
		body:  body,
		table: table,
		memo:  newMemo[K, V](cfg, table),
	}
}

// WrapErr memoizes a fallible function that does not recurse through the cache.
func WrapErr[K comparable, V any](fn func(K) (V, error), opts ...Option) func(K) (V, error) {
	if fn == nil {
		panic("pure: WrapErr requires a non-nil function")
	}
	return MemoizeErr(func(_ func(K) (V, error), k K) (V, error) {
		return fn(k)
	}, opts...).Call
}

func (e *FallibleEvaluator[K, V]) Call(k K) (V, error) {
	return e.memo.do(k, func() (V, error) {
		return e.body(e.Call, k)
	})
}

func (e *FallibleEvaluator[K, V]) Func() func(K) (V, error) {
	return e.Call
}

func (e *FallibleEvaluator[K, V]) Cached(k K) (V, bool) {
	return e.table.Load(k)
}

func (e *FallibleEvaluator[K, V]) Keys() []K {
	return e.table.Keys()
}

func (e *FallibleEvaluator[K, V]) Len() int {
	return e.table.Len()
}

func (e *FallibleEvaluator[K, V]) Stats() Stats {
	return e.memo.stats
}

func (e *FallibleEvaluator[K, V]) ID() uuid.UUID {
	return e.memo.id
}

func (e *FallibleEvaluator[K, V]) Name() string {
	return e.memo.cfg.Name
}
