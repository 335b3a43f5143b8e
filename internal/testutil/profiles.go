// Package testutil provides deterministic profile generators and
// tolerance assertions shared by the package tests.
package testutil

import (
	"math"
	"math/rand"
)

// GaussianNoise generates zero-mean Gaussian white noise with the given
// standard deviation and a fixed seed for reproducibility.
func GaussianNoise(seed int64, sigma float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = sigma * rng.NormFloat64()
	}
	return out
}

// AlternatingBackground generates the {0, 1, 0, 1, ...} background used
// by the end-to-end scenarios: even bins are 1, odd bins are 0. For an
// even length its population standard deviation is exactly 0.5.
func AlternatingBackground(length int) []float64 {
	out := make([]float64, length)
	for i := 0; i < length; i += 2 {
		out[i] = 1
	}
	return out
}

// InjectPulse sets profile[start:start+width] to amplitude, wrapping
// circularly past the end. The profile is modified in place and also
// returned for chaining.
func InjectPulse(profile []float64, start, width int, amplitude float64) []float64 {
	n := len(profile)
	for i := 0; i < width; i++ {
		profile[(start+i)%n] = amplitude
	}
	return profile
}

// Drift generates one period of a slow sinusoid of the given amplitude,
// a stand-in for red-noise background drift.
func Drift(amplitude float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = amplitude * math.Sin(2*math.Pi*float64(i)/float64(length))
	}
	return out
}

// AddInPlace adds b to a element-wise. Panics on length mismatch.
func AddInPlace(a, b []float64) {
	if len(a) != len(b) {
		panic("testutil: length mismatch")
	}
	for i := range a {
		a[i] += b[i]
	}
}
