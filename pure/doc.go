// Package pure memoizes pure functions by their input values.
//
// Memoization is not just a speed trick.
// Wrapping a function here *forces the developer to ask*:
//
//	→ "Is this function really pure?"
//	→ "Can this computation be treated as a lazy table?"
//
// If the answer is yes, a call becomes a table lookup: the first call with a
// key runs the body, every later call with an equal key returns the stored
// result. A failed call (an error or a panic) stores nothing.
//
// Features:
//   - Memoize / MemoizeErr: recursive evaluators whose body receives the
//     memoizing callable, so sub-calls hit the same table.
//   - TableizeI1O1 to TableizeI4O2 and TableizeI1Err to TableizeI4Err:
//     typed memoizers for common arities, keyed by exact argument tuples.
//   - MemoizeHashed + Keyer: memoization over non-comparable keys such as slices.
//   - Observer hooks for logging and metrics; silent by default.
//
// Tables only grow. There is no eviction, no size bound and no locking:
// a wrapper belongs to one call stack.
//
// WARNING: Do not memoize impure functions (e.g., those depending on time, I/O, etc).
// A stale result is indistinguishable from a fresh one.
package pure
