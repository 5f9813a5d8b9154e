package pure

import (
	"time"

	"github.com/google/uuid"
	"github.com/rickb777/date/v2/timespan"
)

// store abstracts the table so comparable and hashed keys share one call path.
type store[K any, V any] interface {
	Load(K) (V, bool)
	Store(K, V)
}

// memo is the call path shared by every wrapper in this package:
// look up the key, otherwise invoke the body and keep the result only if it succeeded.
type memo[K any, V any] struct {
	id    uuid.UUID
	cfg   Config
	table store[K, V]
	stats Stats
}

func newMemo[K any, V any](cfg Config, table store[K, V]) *memo[K, V] {
	return &memo[K, V]{
		id:    uuid.New(),
		cfg:   cfg,
		table: table,
	}
}

func (m *memo[K, V]) do(key K, compute func() (V, error)) (V, error) {
	if v, ok := m.table.Load(key); ok {
		m.stats.Hits++
		m.cfg.Observer.Hit(m.event(key, timespan.TimeSpan{}, nil))
		return v, nil
	}

	m.stats.Misses++
	start := time.Now()
	returned := false
	defer func() {
		if !returned {
			m.stats.Failures++
			m.cfg.Observer.Failed(m.event(key, timespan.BetweenTimes(start, time.Now()), ErrInvocationPanicked))
		}
	}()

	v, err := compute()
	returned = true
	span := timespan.BetweenTimes(start, time.Now())
	if err != nil {
		m.stats.Failures++
		m.cfg.Observer.Failed(m.event(key, span, err))
		return v, err
	}

	m.table.Store(key, v)
	m.cfg.Observer.Computed(m.event(key, span, nil))
	return v, nil
}

func (m *memo[K, V]) event(key K, span timespan.TimeSpan, err error) Event {
	return Event{
		EvaluatorID: m.id,
		Name:        m.cfg.Name,
		Key:         key,
		Span:        span,
		Err:         err,
	}
}
