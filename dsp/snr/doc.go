// Package snr computes matched-filter signal-to-noise maps of
// phase-folded pulse profiles against banks of noise-free templates.
//
// The engine normalizes each profile by its estimated (or caller-supplied)
// noise mean and standard deviation, pads the phase axis to a power of
// two with circular padding, and evaluates the circular correlation
// against every template via FFT. The resulting map reads:
//
//	SNR[i][j][k] = matched-filter amplitude, in noise-sigma units, of
//	profile i when template j's reference bin is aligned with phase bin k
//
// A typical call:
//
//	bank, _ := template.Boxcars([]int{1, 2, 4, 8, 16})
//	res, err := snr.Compute(profiles, bank)
//	iprof, itemp, ibin, peak := res.Peak()
//
// Estimator selection uses functional options; literal values bypass
// estimation entirely:
//
//	res, err := snr.Compute(profiles, bank,
//		snr.WithStdMethod(noise.MethodDiffCov))
//	res, err := snr.ComputeProfile(profile, tpl, snr.WithStd(0.5))
//
// Unless disabled with [WithoutModels], the engine also reconstructs,
// per profile, the best-fit noise-free model from the highest-scoring
// (template, phase) pair.
//
// A call either fully succeeds or fails validation before any numeric
// work; there is no partial-result path. Profiles in a batch are
// independent, and a Result is immutable once returned, so concurrent
// calls sharing templates are safe.
package snr
