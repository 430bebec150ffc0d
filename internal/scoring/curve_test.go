package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEarnedPoints_Endpoints(t *testing.T) {
	for _, max := range []float64{0, 1, 4, 12, 40, 400, 1234} {
		assert.Equal(t, 0.0, EarnedPoints(0, max), "max=%v", max)
		assert.Equal(t, max, EarnedPoints(1, max), "max=%v", max)
	}
}

func TestEarnedPoints_ZeroMax(t *testing.T) {
	for _, f := range []float64{0, 0.1, 0.5, 0.99, 1} {
		assert.Equal(t, 0.0, EarnedPoints(f, 0))
	}
}

func TestEarnedPoints_Monotonic(t *testing.T) {
	for _, max := range []float64{4, 8, 100} {
		prev := EarnedPoints(0, max)
		for i := 1; i <= 1000; i++ {
			cur := EarnedPoints(float64(i)/1000, max)
			assert.GreaterOrEqual(t, cur, prev, "max=%v step=%d", max, i)
			assert.LessOrEqual(t, cur, max)
			prev = cur
		}
	}
}

func TestEarnedPoints_FavorsEarlyTests(t *testing.T) {
	// half of the tests passing is worth more than half of the points
	assert.Greater(t, EarnedPoints(0.5, 8), 4.0)
	assert.InDelta(t, 4.9, EarnedPoints(0.5, 8), 1e-9)
	assert.InDelta(t, 2.7*0.25-4.2*0.0625+2.5*0.015625, EarnedPoints(0.25, 1), 1e-9)
}

func TestEarnedPoints_ClampsFraction(t *testing.T) {
	assert.Equal(t, 0.0, EarnedPoints(-0.5, 4))
	assert.Equal(t, 4.0, EarnedPoints(1.5, 4))
}
