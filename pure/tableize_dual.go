package pure

type result[O1 any, O2 any] struct {
	O1 O1
	O2 O2
}

// TableizeI1O2 memoizes a pure function with two outputs. Both are cached together.
// For functions returning an error use TableizeI1Err, which does not cache failures.
func TableizeI1O2[I1 comparable, O1, O2 any](
	pureFn func(I1) (O1, O2),
	opts ...Option,
) func(I1) (O1, O2) {
	tableized := tableize[I1, result[O1, O2]](opts)
	return func(i1 I1) (O1, O2) {
		res := tableized(i1, func() result[O1, O2] {
			v1, v2 := pureFn(i1)
			return result[O1, O2]{v1, v2}
		})
		return res.O1, res.O2
	}
}

func TableizeI2O2[I1, I2 comparable, O1, O2 any](
	pureFn func(I1, I2) (O1, O2),
	opts ...Option,
) func(I1, I2) (O1, O2) {
	tableized := tableize[Tuple2[I1, I2], result[O1, O2]](opts)
	return func(i1 I1, i2 I2) (O1, O2) {
		res := tableized(Tuple2[I1, I2]{i1, i2}, func() result[O1, O2] {
			v1, v2 := pureFn(i1, i2)
			return result[O1, O2]{v1, v2}
		})
		return res.O1, res.O2
	}
}

func TableizeI3O2[I1, I2, I3 comparable, O1, O2 any](
	pureFn func(I1, I2, I3) (O1, O2),
	opts ...Option,
) func(I1, I2, I3) (O1, O2) {
	tableized := tableize[Tuple3[I1, I2, I3], result[O1, O2]](opts)
	return func(i1 I1, i2 I2, i3 I3) (O1, O2) {
		res := tableized(Tuple3[I1, I2, I3]{i1, i2, i3}, func() result[O1, O2] {
			v1, v2 := pureFn(i1, i2, i3)
			return result[O1, O2]{v1, v2}
		})
		return res.O1, res.O2
	}
}

func TableizeI4O2[I1, I2, I3, I4 comparable, O1, O2 any](
	pureFn func(I1, I2, I3, I4) (O1, O2),
	opts ...Option,
) func(I1, I2, I3, I4) (O1, O2) {
	tableized := tableize[Tuple4[I1, I2, I3, I4], result[O1, O2]](opts)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) (O1, O2) {
		res := tableized(Tuple4[I1, I2, I3, I4]{i1, i2, i3, i4}, func() result[O1, O2] {
			v1, v2 := pureFn(i1, i2, i3, i4)
			return result[O1, O2]{v1, v2}
		})
		return res.O1, res.O2
	}
}
