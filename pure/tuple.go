package pure

// Tuple2, Tuple3 and Tuple4 are the keys of fixed-arity wrappers.
// Two calls hit the same entry iff their tuples compare equal with ==.

type Tuple2[A, B comparable] struct {
	V1 A
	V2 B
}

type Tuple3[A, B, C comparable] struct {
	V1 A
	V2 B
	V3 C
}

type Tuple4[A, B, C, D comparable] struct {
	V1 A
	V2 B
	V3 C
	V4 D
}
