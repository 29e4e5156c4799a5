package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSample(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		var s Sample
		assert.Equal(t, 0, s.Count())
		assert.Zero(t, s.Mean())
		assert.Zero(t, s.StdDev())
		assert.Zero(t, s.Percent())
	})

	t.Run("mean and stddev", func(t *testing.T) {
		var s Sample
		for _, v := range []float64{2, 4, 6} {
			s.Add(v)
		}
		assert.Equal(t, 3, s.Count())
		assert.InDelta(t, 4.0, s.Mean(), 1e-12)
		assert.InDelta(t, 2.0, s.StdDev(), 1e-12)
	})

	t.Run("percent of booleans", func(t *testing.T) {
		test := []struct {
			flags []bool
			exp   float64
		}{
			{flags: []bool{true, true, true}, exp: 100},
			{flags: []bool{false, false, false}, exp: 0},
			{flags: []bool{true, false, true}, exp: float64(2) / float64(3) * 100},
			{flags: []bool{false, true, false}, exp: float64(1) / float64(3) * 100},
		}
		for _, tt := range test {
			var s Sample
			for _, ok := range tt.flags {
				s.AddBool(ok)
			}
			assert.Equal(t, tt.exp, s.Percent())
		}
	})

	t.Run("single value has no spread", func(t *testing.T) {
		var s Sample
		s.Add(math.Pi)
		assert.Equal(t, math.Pi, s.Mean())
		assert.Zero(t, s.StdDev())
	})
}
