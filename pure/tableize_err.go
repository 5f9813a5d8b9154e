package pure

// TableizeI1Err memoizes a deterministic function that may fail.
// Only successful results are cached; an error is returned as is and the
// next call with the same arguments runs pureFn again.
func TableizeI1Err[I1 comparable, O any](
	pureFn func(I1) (O, error),
	opts ...Option,
) func(I1) (O, error) {
	tableized := tableizeErr[I1, O](opts)
	return func(i1 I1) (O, error) {
		return tableized(i1, func() (O, error) {
			return pureFn(i1)
		})
	}
}

func TableizeI2Err[I1, I2 comparable, O any](
	pureFn func(I1, I2) (O, error),
	opts ...Option,
) func(I1, I2) (O, error) {
	tableized := tableizeErr[Tuple2[I1, I2], O](opts)
	return func(i1 I1, i2 I2) (O, error) {
		return tableized(Tuple2[I1, I2]{i1, i2}, func() (O, error) {
			return pureFn(i1, i2)
		})
	}
}

func TableizeI3Err[I1, I2, I3 comparable, O any](
	pureFn func(I1, I2, I3) (O, error),
	opts ...Option,
) func(I1, I2, I3) (O, error) {
	tableized := tableizeErr[Tuple3[I1, I2, I3], O](opts)
	return func(i1 I1, i2 I2, i3 I3) (O, error) {
		return tableized(Tuple3[I1, I2, I3]{i1, i2, i3}, func() (O, error) {
			return pureFn(i1, i2, i3)
		})
	}
}

func TableizeI4Err[I1, I2, I3, I4 comparable, O any](
	pureFn func(I1, I2, I3, I4) (O, error),
	opts ...Option,
) func(I1, I2, I3, I4) (O, error) {
	tableized := tableizeErr[Tuple4[I1, I2, I3, I4], O](opts)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) (O, error) {
		return tableized(Tuple4[I1, I2, I3, I4]{i1, i2, i3, i4}, func() (O, error) {
			return pureFn(i1, i2, i3, i4)
		})
	}
}

func tableizeErr[K comparable, O any](opts []Option) func(K, func() (O, error)) (O, error) {
	cfg := NewConfig(opts...)
	m := newMemo[K, O](cfg, NewTable[K, O](cfg.SizeHint))
	return m.do
}
