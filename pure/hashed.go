package pure

import "github.com/google/uuid"

// HashedEvaluator is an Evaluator for keys described by a Keyer,
// such as slices. Keys are cloned before they are stored.
type HashedEvaluator[K any, V any] struct {
	body  func(self func(K) V, k K) V
	table *HashedTable[K, V]
	memo  *memo[K, V]
}

// MemoizeHashed builds a HashedEvaluator. It panics if keyer or body is nil.
func MemoizeHashed[K any, V any](
	keyer Keyer[K],
	body func(self func(K) V, k K) V,
	opts ...Option,
) *HashedEvaluator[K, V] {
	if keyer == nil {
		panic("pure: MemoizeHashed requires a non-nil keyer")
	}
	if body == nil {
		panic("pure: MemoizeHashed requires a non-nil body")
	}
	cfg := NewConfig(opts...)
	table := NewHashedTable[K, V](keyer, cfg.SizeHint)
	return &HashedEvaluator[K, V]{
		body:  body,
		table: table,
		memo:  newMemo[K, V](cfg, table),
	}
}

func (e *HashedEvaluator[K, V]) Call(k K) V {
	v, _ := e.memo.do(k, func() (V, error) {
		return e.body(e.Call, k), nil
	})
	return v
}

func (e *HashedEvaluator[K, V]) Func() func(K) V {
	return e.Call
}

func (e *HashedEvaluator[K, V]) Cached(k K) (V, bool) {
	return e.table.Load(k)
}

func (e *HashedEvaluator[K, V]) Keys() []K {
	return e.table.Keys()
}

func (e *HashedEvaluator[K, V]) Len() int {
	return e.table.Len()
}

func (e *HashedEvaluator[K, V]) Stats() Stats {
	return e.memo.stats
}

func (e *HashedEvaluator[K, V]) ID() uuid.UUID {
	return e.memo.id
}

func (e *HashedEvaluator[K, V]) Name() string {
	return e.memo.cfg.Name
}
