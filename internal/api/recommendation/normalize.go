package recommendation

import "gonum.org/v1/gonum/floats"

// neutralMidpoint stands in for a signal that is expected but carries no
// discriminating information.
const neutralMidpoint = 0.5

// minMaxNormalize rescales a column linearly into [0,1]. A constant or
// single-row column normalizes to the neutral 0.5 everywhere instead of
// dividing by zero.
func minMaxNormalize(values []float64) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}
	min := floats.Min(values)
	max := floats.Max(values)
	if max <= min {
		for i := range out {
			out[i] = neutralMidpoint
		}
		return out
	}
	span := max - min
	for i, v := range values {
		out[i] = (v - min) / span
	}
	return out
}

func constantColumn(n int, value float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
