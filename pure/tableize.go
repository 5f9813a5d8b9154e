package pure

// TableizeI1O1 memoizes a pure one-argument function.
// To memoize recursion, assign the result to a variable the body calls:
//
//	var fib func(int) int
//	fib = pure.TableizeI1O1(func(n int) int {
//	    if n <= 1 {
//	        return n
//	    }
//	    return fib(n-1) + fib(n-2)
//	})
func TableizeI1O1[I1 comparable, O1 any](
	pureFn func(I1) O1,
	opts ...Option,
) func(I1) O1 {
	tableized := tableize[I1, O1](opts)
	return func(i1 I1) O1 {
		return tableized(i1, func() O1 {
			return pureFn(i1)
		})
	}
}

func TableizeI2O1[I1, I2 comparable, O1 any](
	pureFn func(I1, I2) O1,
	opts ...Option,
) func(I1, I2) O1 {
	tableized := tableize[Tuple2[I1, I2], O1](opts)
	return func(i1 I1, i2 I2) O1 {
		return tableized(Tuple2[I1, I2]{i1, i2}, func() O1 {
			return pureFn(i1, i2)
		})
	}
}

func TableizeI3O1[I1, I2, I3 comparable, O1 any](
	pureFn func(I1, I2, I3) O1,
	opts ...Option,
) func(I1, I2, I3) O1 {
	tableized := tableize[Tuple3[I1, I2, I3], O1](opts)
	return func(i1 I1, i2 I2, i3 I3) O1 {
		return tableized(Tuple3[I1, I2, I3]{i1, i2, i3}, func() O1 {
			return pureFn(i1, i2, i3)
		})
	}
}

func TableizeI4O1[I1, I2, I3, I4 comparable, O1 any](
	pureFn func(I1, I2, I3, I4) O1,
	opts ...Option,
) func(I1, I2, I3, I4) O1 {
	tableized := tableize[Tuple4[I1, I2, I3, I4], O1](opts)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) O1 {
		return tableized(Tuple4[I1, I2, I3, I4]{i1, i2, i3, i4}, func() O1 {
			return pureFn(i1, i2, i3, i4)
		})
	}
}

func tableize[K comparable, O any](opts []Option) func(K, func() O) O {
	cfg := NewConfig(opts...)
	m := newMemo[K, O](cfg, NewTable[K, O](cfg.SizeHint))
	return func(key K, compute func() O) O {
		v, _ := m.do(key, func() (O, error) {
			return compute(), nil
		})
		return v
	}
}
