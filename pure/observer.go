package pure

import (
	"github.com/google/uuid"
	"github.com/rickb777/date/v2/timespan"
)

// Event describes one interaction with a memoizing wrapper.
type Event struct {
	EvaluatorID uuid.UUID
	Name        string
	Key         any
	// Span brackets the body invocation. It is zero for hits.
	Span timespan.TimeSpan
	Err  error
}

// Observer is notified synchronously from inside Call.
// Implementations must not call back into the wrapper that notified them.
//
// When a body panics, Failed is called with ErrInvocationPanicked once for
// every memoized call the panic unwinds through, innermost first.
type Observer interface {
	Hit(Event)
	Computed(Event)
	Failed(Event)
}

// NopObserver ignores every event.
type NopObserver struct{}

func (NopObserver) Hit(Event)      {}
func (NopObserver) Computed(Event) {}
func (NopObserver) Failed(Event)   {}
