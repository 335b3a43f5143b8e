package snr

import "github.com/cwbudde/algo-snr/dsp/template"

// Result holds the S/N map and the noise statistics it was normalized
// with. All fields are co-indexed by profile; a Result is immutable once
// returned by the engine.
type Result struct {
	// SNR has shape (nprof, ntemp, nbins). SNR[i][j][k] is the
	// matched-filter amplitude, in noise-sigma units, of profile i with
	// template j's reference bin aligned at phase bin k.
	SNR [][][]float32

	// Mean and Std are the per-profile noise background estimates (or
	// broadcast literals) used for normalization.
	Mean []float64
	Std  []float64

	// Models holds, per profile, the best noise-free reconstruction from
	// the highest-scoring (template, phase) pair. Nil when reconstruction
	// was disabled with WithoutModels.
	Models [][]float32
}

// NumProfiles returns the profile count of the map.
func (r *Result) NumProfiles() int {
	return len(r.SNR)
}

// NumTemplates returns the template count of the map.
func (r *Result) NumTemplates() int {
	if len(r.SNR) == 0 {
		return 0
	}
	return len(r.SNR[0])
}

// NumBins returns the phase bin count of the map.
func (r *Result) NumBins() int {
	if len(r.SNR) == 0 || len(r.SNR[0]) == 0 {
		return 0
	}
	return len(r.SNR[0][0])
}

// ProfilePeak returns the argmax of profile i's S/N plane: the winning
// template index, phase bin, and S/N value.
func (r *Result) ProfilePeak(i int) (itemp, ibin int, value float32) {
	value = r.SNR[i][0][0]
	for j, row := range r.SNR[i] {
		for k, v := range row {
			if v > value {
				itemp, ibin, value = j, k, v
			}
		}
	}
	return itemp, ibin, value
}

// Peak returns the argmax over the full 3-D S/N map: the winning profile
// index, template index, phase bin, and S/N value.
func (r *Result) Peak() (iprof, itemp, ibin int, value float32) {
	value = r.SNR[0][0][0]
	for i := range r.SNR {
		j, k, v := r.ProfilePeak(i)
		if v > value {
			iprof, itemp, ibin, value = i, j, k, v
		}
	}
	return iprof, itemp, ibin, value
}

// reconstructModels builds the best-fit noise-free model of every
// profile: the winning template's normalized shape scaled by
// std * peakSNR, offset by the profile mean, circularly shifted so the
// reference bin lands on the winning phase bin.
func reconstructModels(r *Result, set template.Set, p int) [][]float32 {
	models := make([][]float32, len(r.SNR))
	for i := range r.SNR {
		itemp, ibin, peak := r.ProfilePeak(i)
		t := set.At(itemp)

		model := make([]float32, p)
		base := float32(r.Mean[i])
		for k := range model {
			model[k] = base
		}

		amp := r.Std[i] * float64(peak)
		for m, v := range t.Data() {
			pos := ((ibin+m-t.RefBin())%p + p) % p
			model[pos] += float32(amp * v)
		}
		models[i] = model
	}
	return models
}
