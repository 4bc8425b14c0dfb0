package gamemath

import "math/rand"

// Uniform returns a float in [min, max).
func Uniform(r *rand.Rand, min, max float64) float64 {
	return min + r.Float64()*(max-min)
}

// RandInt returns an int in [min, max], both ends included.
func RandInt(r *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + r.Intn(max-min+1)
}
