// Package purefn is a catalog of pure recursive functions memoized with package pure.
//
// Each function here is the textbook recursion, unchanged, with its recursive
// sub-calls routed through a memo table. That turns the exponential Fibonacci
// recurrence into a linear one and makes Pascal's triangle and edit distance
// polynomial, without rewriting them as loops.
//
// Every exported helper builds a fresh table per call, so nothing is shared
// between callers or goroutines. To reuse a table across calls, build one with
// NewFibonacci, NewBinomial or NewFactorial and keep it on one call stack.
//
// See the benchmarks for naive versus memoized timings.
package purefn
