package pure_test

import (
	"errors"
	"testing"

	"github.com/on-the-ground/memo_ive_go/pure"

	"github.com/stretchr/testify/assert"
)

func TestTableizeI1O1(t *testing.T) {
	count := 0
	fn := pure.TableizeI1O1(func(i int) int {
		count++
		return i * 2
	})

	assert.Equal(t, 4, fn(2))
	assert.Equal(t, 4, fn(2)) // cached
	assert.Equal(t, 1, count)
}

func TestTableizeI2O1(t *testing.T) {
	count := 0
	fn := pure.TableizeI2O1(func(a, b int) int {
		count++
		return a - b
	})

	assert.Equal(t, -1, fn(2, 3))
	assert.Equal(t, -1, fn(2, 3))
	assert.Equal(t, 1, fn(3, 2)) // argument order is part of the key
	assert.Equal(t, 2, count)
}

func TestTableizeI3O1(t *testing.T) {
	count := 0
	fn := pure.TableizeI3O1(func(a, b, c int) int {
		count++
		return a * b * c
	})

	assert.Equal(t, 24, fn(2, 3, 4))
	assert.Equal(t, 24, fn(2, 3, 4))
	assert.Equal(t, 1, count)
}

func TestTableizeI4O1(t *testing.T) {
	count := 0
	fn := pure.TableizeI4O1(func(a, b, c, d int) int {
		count++
		return a + b + c + d
	})

	assert.Equal(t, 10, fn(1, 2, 3, 4))
	assert.Equal(t, 10, fn(1, 2, 3, 4))
	assert.Equal(t, 1, count)
}

func TestTableizeI1O2(t *testing.T) {
	count := 0
	fn := pure.TableizeI1O2(func(i int) (int, string) {
		count++
		return i, "val"
	})

	a, b := fn(10)
	assert.Equal(t, 10, a)
	assert.Equal(t, "val", b)
	a2, b2 := fn(10)
	assert.Equal(t, 10, a2)
	assert.Equal(t, "val", b2)
	assert.Equal(t, 1, count)
}

func TestTableizeI2O2(t *testing.T) {
	count := 0
	fn := pure.TableizeI2O2(func(a, b int) (int, string) {
		count++
		return a * b, "mul"
	})

	x, y := fn(3, 4)
	assert.Equal(t, 12, x)
	assert.Equal(t, "mul", y)
	_, _ = fn(3, 4)
	assert.Equal(t, 1, count)
}

func TestTableizeI3O2(t *testing.T) {
	count := 0
	fn := pure.TableizeI3O2(func(a, b, c int) (int, string) {
		count++
		return a + b + c, "sum"
	})

	x, y := fn(1, 2, 3)
	assert.Equal(t, 6, x)
	assert.Equal(t, "sum", y)
	_, _ = fn(1, 2, 3)
	assert.Equal(t, 1, count)
}

func TestTableizeI4O2(t *testing.T) {
	count := 0
	fn := pure.TableizeI4O2(func(a, b, c, d int) (int, string) {
		count++
		return a * b * c * d, "product"
	})

	x, y := fn(1, 2, 3, 4)
	assert.Equal(t, 24, x)
	assert.Equal(t, "product", y)
	_, _ = fn(1, 2, 3, 4)
	assert.Equal(t, 1, count)
}

func TestTableizeI1O1_Recursive(t *testing.T) {
	count := 0
	var fib func(int) uint64
	fib = pure.TableizeI1O1(func(n int) uint64 {
		count++
		if n <= 1 {
			return uint64(n)
		}
		return fib(n-1) + fib(n-2)
	})

	assert.Equal(t, uint64(12586269025), fib(50))
	assert.Equal(t, 51, count)
}

type point struct {
	X, Y float64
}

func TestTableizeI2O1_StructKeys(t *testing.T) {
	count := 0
	dist := pure.TableizeI2O1(func(p1, p2 point) float64 {
		count++
		dx := p1.X - p2.X
		dy := p1.Y - p2.Y
		return dx*dx + dy*dy
	})

	assert.Equal(t, 25.0, dist(point{0, 0}, point{3, 4}))
	assert.Equal(t, 25.0, dist(point{0, 0}, point{3, 4}))
	assert.Equal(t, 1, count)
}

type label string

func (l label) String() string { return "same" }

func TestTableize_NoStringerNormalization(t *testing.T) {
	count := 0
	fn := pure.TableizeI1O1(func(l label) string {
		count++
		return string(l)
	})

	assert.Equal(t, "a", fn("a"))
	assert.Equal(t, "b", fn("b"))
	assert.Equal(t, 2, count)
}

type nonComparable struct {
	Field []int
}

func TestTableize_PanicsOnNonComparableDynamicKey(t *testing.T) {
	count := 0
	fn := pure.TableizeI1O1(func(v any) int {
		count++
		return 0
	})

	assert.Panics(t, func() {
		_ = fn(nonComparable{Field: []int{1}})
	})
	assert.Equal(t, 0, count)
}

func TestTableizeErr(t *testing.T) {
	errOdd := errors.New("odd")
	count := 0
	fn := pure.TableizeI2Err(func(a, b int) (int, error) {
		count++
		if (a+b)%2 != 0 {
			return 0, errOdd
		}
		return (a + b) / 2, nil
	})

	v, err := fn(2, 4)
	assert.NoError(t, err)
	assert.Equal(t, 3, v)
	_, _ = fn(2, 4)
	assert.Equal(t, 1, count)

	_, err = fn(1, 2)
	assert.ErrorIs(t, err, errOdd)
	_, err = fn(1, 2)
	assert.ErrorIs(t, err, errOdd)
	assert.Equal(t, 3, count)
}

func TestTableizeErr_Arities(t *testing.T) {
	count := 0
	f1 := pure.TableizeI1Err(func(a int) (int, error) { count++; return a, nil })
	f3 := pure.TableizeI3Err(func(a, b, c int) (int, error) { count++; return a + b + c, nil })
	f4 := pure.TableizeI4Err(func(a, b, c, d int) (int, error) { count++; return a + b + c + d, nil })

	for i := 0; i < 3; i++ {
		v1, _ := f1(1)
		v3, _ := f3(1, 2, 3)
		v4, _ := f4(1, 2, 3, 4)
		assert.Equal(t, 1, v1)
		assert.Equal(t, 6, v3)
		assert.Equal(t, 10, v4)
	}
	assert.Equal(t, 3, count)
}

func TestTableize_IndependentTables(t *testing.T) {
	count := 0
	body := func(i int) int {
		count++
		return i
	}
	a := pure.TableizeI1O1(body)
	b := pure.TableizeI1O1(body)

	_ = a(1)
	_ = b(1)
	assert.Equal(t, 2, count)
}
