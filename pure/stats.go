package pure

// Stats counts what a wrapper did since it was built.
//
// A panic unwinds every enclosing recursive call, and each of those calls
// counts as a failure: a panic at the leaf of fib(30) adds one failure per
// frame still on the stack, not one in total.
type Stats struct {
	Hits     int // calls answered from the table
	Misses   int // body invocations, failed ones included
	Failures int // body invocations that returned an error or panicked
}

// Calls is the total number of calls made through the wrapper.
func (s Stats) Calls() int {
	return s.Hits + s.Misses
}
