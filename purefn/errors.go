package purefn

import "errors"

// ErrOverflow is returned when a result does not fit in a uint64.
var ErrOverflow = errors.New("purefn: result overflows uint64")
