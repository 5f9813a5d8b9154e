package pure

import "errors"

// ErrInvocationPanicked is reported to the observer when the wrapped body panicked.
// The panic itself is never recovered.
var ErrInvocationPanicked = errors.New("pure: invocation panicked")
