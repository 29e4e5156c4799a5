package stats

import "gonum.org/v1/gonum/stat"

// Sample collects observations of a single measured quantity.
type Sample struct {
	values []float64
}

func (s *Sample) Add(value float64) {
	s.values = append(s.values, value)
}

// AddBool records ok as 1 and !ok as 0.
func (s *Sample) AddBool(ok bool) {
	if ok {
		s.Add(1)
		return
	}
	s.Add(0)
}

func (s *Sample) Count() int { return len(s.values) }

// Mean returns 0 for an empty sample.
func (s *Sample) Mean() float64 {
	if len(s.values) == 0 {
		return 0
	}
	return stat.Mean(s.values, nil)
}

// StdDev is the unbiased standard deviation; 0 below two observations.
func (s *Sample) StdDev() float64 {
	if len(s.values) < 2 {
		return 0
	}
	return stat.StdDev(s.values, nil)
}

// Percent is Mean scaled to 0..100, the share of true values for boolean samples.
func (s *Sample) Percent() float64 { return s.Mean() * 100 }
