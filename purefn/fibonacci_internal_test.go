package purefn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFibonacciSizeHint_Capped(t *testing.T) {
	assert.Equal(t, 1, fibonacciSizeHint(0))
	assert.Equal(t, 11, fibonacciSizeHint(10))
	assert.Equal(t, MaxFibonacciIndex+1, fibonacciSizeHint(MaxFibonacciIndex))
	assert.Equal(t, MaxFibonacciIndex+1, fibonacciSizeHint(MaxFibonacciIndex+1))
	assert.Equal(t, MaxFibonacciIndex+1, fibonacciSizeHint(math.MaxUint))
}
