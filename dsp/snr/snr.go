package snr

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-snr/dsp/cpad"
	"github.com/cwbudde/algo-snr/dsp/noise"
	"github.com/cwbudde/algo-snr/dsp/template"
)

// Errors returned by the engine before any numeric work begins.
var (
	ErrNoProfiles   = errors.New("snr: no profiles")
	ErrEmptyProfile = errors.New("snr: empty profile")
	ErrRaggedBatch  = errors.New("snr: profiles have differing lengths")
	ErrNilTemplates = errors.New("snr: nil or empty template set")
	ErrInvalidStd   = errors.New("snr: literal noise std must be positive")
)

// ComputeProfile computes the S/N map of a single profile. It is
// equivalent to [Compute] with a one-row batch.
func ComputeProfile(profile []float64, set template.Set, opts ...Option) (*Result, error) {
	return Compute([][]float64{profile}, set, opts...)
}

// Compute computes the S/N map of a batch of profiles against a template
// set. Each row of profiles is one phase-folded profile; all rows must
// share the same length. The caller's data is never modified.
//
// The noise mean and standard deviation of each profile are estimated
// with the configured methods (median and IQR by default) unless literal
// values are supplied via [WithMean] / [WithStd]. Each profile is
// normalized to zero mean and unit noise deviation, circularly padded to
// the next power of two, and correlated against every template in the
// frequency domain. The output map is truncated back to the original
// phase range; the padding region carries only wraparound artifacts.
func Compute(profiles [][]float64, set template.Set, opts ...Option) (*Result, error) {
	if set == nil {
		return nil, ErrNilTemplates
	}
	ntemp := set.Len()
	if ntemp == 0 {
		return nil, fmt.Errorf("%w: set has no templates", ErrNilTemplates)
	}

	nprof := len(profiles)
	if nprof == 0 {
		return nil, ErrNoProfiles
	}
	p := len(profiles[0])
	if p == 0 {
		return nil, fmt.Errorf("%w: profile 0", ErrEmptyProfile)
	}
	for i, row := range profiles {
		if len(row) != p {
			return nil, fmt.Errorf("%w: profile %d has %d bins, profile 0 has %d", ErrRaggedBatch, i, len(row), p)
		}
	}

	cfg := applyOptions(opts)
	if cfg.stdLiteral && !(cfg.stdValue > 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidStd, cfg.stdValue)
	}

	mean, err := resolveMean(profiles, cfg, nprof)
	if err != nil {
		return nil, err
	}
	std, err := resolveStd(profiles, cfg, nprof)
	if err != nil {
		return nil, err
	}

	// Normalize into a working copy: x = (data - mean) / std.
	x := make([][]float64, nprof)
	for i, row := range profiles {
		xi := make([]float64, p)
		for k, v := range row {
			xi[k] = (v - mean[i]) / std[i]
		}
		x[i] = xi
	}

	padded := cpad.PadPow2Batch(x)
	n := len(padded[0])

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("snr: failed to create FFT plan: %w", err)
	}

	profFreq, err := forwardProfiles(plan, padded, n)
	if err != nil {
		return nil, err
	}
	tmplFreq, err := forwardTemplates(plan, set, n)
	if err != nil {
		return nil, err
	}

	// Multiply spectra per (profile, template) pair and inverse-transform.
	// The real part of the first p bins is the S/N map.
	out := make([][][]float32, nprof)
	scratch := make([]complex128, n)
	for i := 0; i < nprof; i++ {
		out[i] = make([][]float32, ntemp)
		for j := 0; j < ntemp; j++ {
			fx := profFreq[i]
			fy := tmplFreq[j]
			for k := range scratch {
				scratch[k] = fx[k] * fy[k]
			}

			if err := plan.Inverse(scratch, scratch); err != nil {
				return nil, fmt.Errorf("snr: inverse FFT failed: %w", err)
			}

			row := make([]float32, p)
			for k := 0; k < p; k++ {
				row[k] = float32(real(scratch[k]))
			}
			out[i][j] = row
		}
	}

	res := &Result{SNR: out, Mean: mean, Std: std}
	if cfg.models {
		res.Models = reconstructModels(res, set, p)
	}
	return res, nil
}

func resolveMean(profiles [][]float64, cfg config, nprof int) ([]float64, error) {
	if cfg.meanLiteral {
		return broadcast(cfg.meanValue, nprof), nil
	}
	return noise.Mean(profiles, cfg.meanMethod)
}

func resolveStd(profiles [][]float64, cfg config, nprof int) ([]float64, error) {
	if cfg.stdLiteral {
		return broadcast(cfg.stdValue, nprof), nil
	}
	return noise.Std(profiles, cfg.stdMethod)
}

func broadcast(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// forwardProfiles transforms every padded profile, shape (nprof, n).
func forwardProfiles(plan *algofft.Plan[complex128], padded [][]float64, n int) ([][]complex128, error) {
	out := make([][]complex128, len(padded))
	for i, row := range padded {
		freq := make([]complex128, n)
		for k, v := range row {
			freq[k] = complex(v, 0)
		}

		if err := plan.Forward(freq, freq); err != nil {
			return nil, fmt.Errorf("snr: forward FFT failed: %w", err)
		}
		out[i] = freq
	}
	return out, nil
}

// forwardTemplates transforms every template's prepared (padded, aligned,
// time-reversed) data, shape (ntemp, n).
func forwardTemplates(plan *algofft.Plan[complex128], set template.Set, n int) ([][]complex128, error) {
	out := make([][]complex128, set.Len())
	for j := range out {
		prep, err := set.At(j).PreparedData(n)
		if err != nil {
			return nil, err
		}

		freq := make([]complex128, n)
		for k, v := range prep {
			freq[k] = complex(float64(v), 0)
		}

		if err := plan.Forward(freq, freq); err != nil {
			return nil, fmt.Errorf("snr: forward FFT failed: %w", err)
		}
		out[j] = freq
	}
	return out, nil
}
