// Package cpad pads phase-folded profiles to power-of-two lengths using
// circular (wraparound) padding.
//
// FFT-based circular correlation wants power-of-two transform sizes.
// Zero-padding a folded pulse profile would inject a discontinuity at the
// original length; wraparound padding repeats values from the start of
// the profile instead, preserving its periodic nature so the circular
// convolution identity stays exact over the original bin range.
package cpad

// CeilPow2 returns the smallest power of two >= n.
func CeilPow2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}

// IsPow2 reports whether n is a power of two.
func IsPow2(n int) bool {
	return n > 0 && (n&(n-1)) == 0
}

// PadPow2 pads x to the next power-of-two length by wrapping values from
// the start of x. When len(x) is already a power of two the result is a
// plain copy. The input is never modified.
func PadPow2(x []float64) []float64 {
	n := len(x)
	if n == 0 {
		return []float64{}
	}
	out := make([]float64, CeilPow2(n))
	copy(out, x)
	for i := n; i < len(out); i++ {
		out[i] = x[i-n]
	}
	return out
}

// PadPow2Batch applies [PadPow2] to every row of x. All rows must have
// the same length; the caller's data is never modified.
func PadPow2Batch(x [][]float64) [][]float64 {
	out := make([][]float64, len(x))
	for i, row := range x {
		out[i] = PadPow2(row)
	}
	return out
}
