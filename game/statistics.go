package game

import "math"

// RunningStats accumulates the count, mean, population variance and maximum of a stream of samples
// without keeping the samples themselves. The zero value is ready to use.
type RunningStats struct {
	count int
	mean  float64
	m2    float64
	max   float64
}

// Add records a sample. Non-finite samples are dropped.
func (s *RunningStats) Add(v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return
	}
	s.count++
	if s.count == 1 || v > s.max {
		s.max = v
	}
	delta := v - s.mean
	s.mean += delta / float64(s.count)
	s.m2 += delta * (v - s.mean)
}

// Count ...
func (s *RunningStats) Count() int {
	return s.count
}

// Mean ...
func (s *RunningStats) Mean() float64 {
	return s.mean
}

// Variance returns the population variance of the samples added.
func (s *RunningStats) Variance() float64 {
	if s.count == 0 {
		return 0
	}
	return s.m2 / float64(s.count)
}

// StandardDeviation ...
func (s *RunningStats) StandardDeviation() float64 {
	return math.Sqrt(s.Variance())
}

// Max returns the largest sample added, or 0 if there are none.
func (s *RunningStats) Max() float64 {
	return s.max
}

// Round64 will round a float64 to a given precision.
func Round64(val float64, precision int) float64 {
	pwr := math.Pow(10, float64(precision))
	return math.Round(val*pwr) / pwr
}
