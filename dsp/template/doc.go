// Package template provides noise-free pulse shape templates for
// matched-filter signal-to-noise estimation.
//
// A [Template] is an immutable, unit-energy pulse shape tagged with a
// reference bin: the sample index that semantically anchors the pulse
// (the onset of a boxcar, the peak of a Gaussian). The reference bin
// determines how output bin indices of an S/N map translate back to
// pulse phases.
//
// Templates are created from raw samples with [New], or with the named
// constructors [Boxcar] and [Gaussian]. A [Bank] is an ordered immutable
// collection of templates; its order fixes the template axis of all
// downstream results.
//
// # Prepared data
//
// [Template.PreparedData] returns the template padded to a target length
// and transformed so that a frequency-domain multiplication with an input
// profile yields a true circular correlation (matched filter) rather than
// a convolution:
//
//	prep, err := tpl.PreparedData(fftSize)
//
// The output is right zero-padded, rotated so the reference bin sits at
// index 0, and circularly time-reversed (y[k] = x[-k mod n], which keeps
// index 0 fixed). Multiplying its spectrum with a profile's spectrum and
// inverse-transforming puts, at output bin k, the correlation of the
// profile with the template anchored at phase k.
package template
