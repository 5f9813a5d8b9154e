package pure

type hashedEntry[K any, V any] struct {
	key   K
	value V
}

// HashedTable is a Table for keys that are not comparable with ==.
// Entries are bucketed by Keyer.Hash and matched with Keyer.Equal.
// Stored keys are cloned. HashedTable is not safe for concurrent use.
type HashedTable[K any, V any] struct {
	keyer   Keyer[K]
	buckets map[uint64][]hashedEntry[K, V]
	size    int
}

func NewHashedTable[K any, V any](keyer Keyer[K], sizeHint int) *HashedTable[K, V] {
	if keyer == nil {
		panic("pure: NewHashedTable requires a non-nil keyer")
	}
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &HashedTable[K, V]{
		keyer:   keyer,
		buckets: make(map[uint64][]hashedEntry[K, V], sizeHint),
	}
}

func (t *HashedTable[K, V]) Load(key K) (V, bool) {
	for _, e := range t.buckets[t.keyer.Hash(key)] {
		if t.keyer.Equal(e.key, key) {
			return e.value, true
		}
	}
	var zero V
	return zero, false
}

func (t *HashedTable[K, V]) Store(key K, value V) {
	h := t.keyer.Hash(key)
	bucket := t.buckets[h]
	for i := range bucket {
		if t.keyer.Equal(bucket[i].key, key) {
			bucket[i].value = value
			return
		}
	}
	t.buckets[h] = append(bucket, hashedEntry[K, V]{key: t.keyer.Clone(key), value: value})
	t.size++
}

func (t *HashedTable[K, V]) Len() int {
	return t.size
}

// Keys returns clones of the cached keys in no particular order.
func (t *HashedTable[K, V]) Keys() []K {
	keys := make([]K, 0, t.size)
	for _, bucket := range t.buckets {
		for _, e := range bucket {
			keys = append(keys, t.keyer.Clone(e.key))
		}
	}
	return keys
}
