package pure

// Table is the result cache of one memoizing wrapper.
// It only grows: there is no delete, no eviction and no size bound.
// Table is not safe for concurrent use.
type Table[K comparable, V any] struct {
	entries map[K]V
}

func NewTable[K comparable, V any](sizeHint int) *Table[K, V] {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &Table[K, V]{
		entries: make(map[K]V, sizeHint),
	}
}

func (t *Table[K, V]) Load(key K) (V, bool) {
	v, ok := t.entries[key]
	return v, ok
}

func (t *Table[K, V]) Store(key K, value V) {
	t.entries[key] = value
}

func (t *Table[K, V]) Len() int {
	return len(t.entries)
}

// Keys returns the cached keys in no particular order.
func (t *Table[K, V]) Keys() []K {
	keys := make([]K, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	return keys
}

// Range calls fn for every entry until fn returns false.
func (t *Table[K, V]) Range(fn func(K, V) bool) {
	for k, v := range t.entries {
		if !fn(k, v) {
			return
		}
	}
}
