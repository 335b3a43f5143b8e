// Package noise estimates the background noise statistics of pulse
// profiles.
//
// Estimators operate along the phase axis of one profile at a time and
// are selected by name, forming a closed registry: [Mean] accepts
// "median", [Std] accepts "iqr" and "diffcov". Unknown names are
// rejected with [ErrUnknownMethod] before any numeric work.
//
// The two standard-deviation estimators trade off differently:
//
//   - "iqr" converts the inter-quartile range to a Gaussian-equivalent
//     sigma. It is robust to outliers such as a bright pulse, but a slow
//     (red) background drift widens the quartiles and biases it upward.
//   - "diffcov" isolates the white-noise variance from the lag-1
//     covariance of the first-difference sequence. It is robust to slow
//     drift but sensitive to isolated outliers.
package noise

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Estimator method names accepted by Mean and Std.
const (
	MethodMedian  = "median"
	MethodIQR     = "iqr"
	MethodDiffCov = "diffcov"
)

// Errors returned by the estimation entry points.
var (
	ErrUnknownMethod = errors.New("noise: unknown estimation method")
	ErrShortProfile  = errors.New("noise: profile too short")
)

// iqrToSigma converts an inter-quartile range to the standard deviation
// of a Gaussian with the same quartiles: Phi^-1(0.75) - Phi^-1(0.25).
const iqrToSigma = 1.3489795003921634

type method struct {
	fn     func([]float64) float64
	minLen int
}

var meanMethods = map[string]method{
	MethodMedian: {Median, 1},
}

var stdMethods = map[string]method{
	MethodIQR:     {IQRStd, 1},
	MethodDiffCov: {DiffCovStd, 4},
}

// MeanMethods returns the valid mean estimation method names, sorted.
func MeanMethods() []string {
	return methodNames(meanMethods)
}

// StdMethods returns the valid standard-deviation estimation method
// names, sorted.
func StdMethods() []string {
	return methodNames(stdMethods)
}

func methodNames(m map[string]method) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Mean estimates the background noise mean of every profile using the
// named method. Each row of profiles is one phase-folded profile.
func Mean(profiles [][]float64, methodName string) ([]float64, error) {
	m, ok := meanMethods[methodName]
	if !ok {
		return nil, fmt.Errorf("%w: %q (valid choices: %v)", ErrUnknownMethod, methodName, MeanMethods())
	}
	return apply(profiles, methodName, m)
}

// Std estimates the background white-noise standard deviation of every
// profile using the named method.
func Std(profiles [][]float64, methodName string) ([]float64, error) {
	m, ok := stdMethods[methodName]
	if !ok {
		return nil, fmt.Errorf("%w: %q (valid choices: %v)", ErrUnknownMethod, methodName, StdMethods())
	}
	return apply(profiles, methodName, m)
}

func apply(profiles [][]float64, methodName string, m method) ([]float64, error) {
	out := make([]float64, len(profiles))
	for i, p := range profiles {
		if len(p) < m.minLen {
			return nil, fmt.Errorf("%w: profile %d has %d bins, %q needs at least %d",
				ErrShortProfile, i, len(p), methodName, m.minLen)
		}
		out[i] = m.fn(p)
	}
	return out, nil
}

// Median returns the median of x. The pulse itself barely moves the
// median as long as it occupies less than half the profile's duty cycle.
// Returns NaN for empty input.
func Median(x []float64) float64 {
	return percentile(sortedCopy(x), 0.5)
}

// IQRStd estimates the white-noise standard deviation of x from its
// inter-quartile range. Returns NaN for empty input.
func IQRStd(x []float64) float64 {
	sorted := sortedCopy(x)
	return (percentile(sorted, 0.75) - percentile(sorted, 0.25)) / iqrToSigma
}

// DiffCovStd estimates the white-noise standard deviation of x from the
// negative lag-1 covariance of its first-difference sequence.
//
// If x is the sum of white noise with variance s_w^2 and a red-noise
// process whose sample-to-sample increments have variance s_r^2, then
// for y = diff(x): Cov(y[k], y[k+1]) = -s_w^2, independent of s_r. The
// red-noise power cancels, which is what makes this estimator immune to
// slow drift.
//
// Needs at least 4 samples (three differences); returns NaN otherwise,
// or when the lag-1 covariance comes out positive.
func DiffCovStd(x []float64) float64 {
	if len(x) < 4 {
		return math.NaN()
	}

	d := make([]float64, len(x)-1)
	for i := range d {
		d[i] = x[i+1] - x[i]
	}

	sw2 := -stat.Covariance(d[:len(d)-1], d[1:], nil)
	return math.Sqrt(sw2)
}

func sortedCopy(x []float64) []float64 {
	out := make([]float64, len(x))
	copy(out, x)
	sort.Float64s(out)
	return out
}

// percentile evaluates the q-quantile (q in [0, 1]) of sorted data with
// linear interpolation between closest ranks: the convention the
// iqrToSigma constant is calibrated against.
func percentile(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if n == 1 {
		return sorted[0]
	}

	pos := q * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}

	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
