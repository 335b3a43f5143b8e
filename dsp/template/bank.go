package template

import (
	"fmt"
	"sort"
)

// Bank is an ordered, immutable collection of templates. The stored
// order determines the template-index axis of all downstream S/N results.
type Bank struct {
	templates []*Template
}

// NewBank creates a bank from the given templates. The slice is copied;
// the bank never mutates or exposes its internal storage.
//
// Returns ErrInvalidBank when templates is empty or contains a nil entry.
func NewBank(templates []*Template) (*Bank, error) {
	if len(templates) == 0 {
		return nil, fmt.Errorf("%w: no templates", ErrInvalidBank)
	}
	for i, t := range templates {
		if t == nil {
			return nil, fmt.Errorf("%w: nil template at index %d", ErrInvalidBank, i)
		}
	}

	own := make([]*Template, len(templates))
	copy(own, templates)
	return &Bank{templates: own}, nil
}

// Boxcars creates a bank of boxcar templates with the given widths,
// stored in increasing width order. Duplicate widths are kept.
func Boxcars(widths []int) (*Bank, error) {
	sorted := make([]int, len(widths))
	copy(sorted, widths)
	sort.Ints(sorted)

	templates := make([]*Template, 0, len(sorted))
	for _, w := range sorted {
		t, err := Boxcar(w)
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return NewBank(templates)
}

// Gaussians creates a bank of Gaussian templates with the given FWHM
// values, stored in increasing width order. Duplicate widths are kept.
func Gaussians(widths []float64) (*Bank, error) {
	sorted := make([]float64, len(widths))
	copy(sorted, widths)
	sort.Float64s(sorted)

	templates := make([]*Template, 0, len(sorted))
	for _, w := range sorted {
		t, err := Gaussian(w)
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return NewBank(templates)
}

// Len returns the number of templates in the bank.
func (b *Bank) Len() int {
	return len(b.templates)
}

// At returns the template at index i in bank order.
func (b *Bank) At(i int) *Template {
	return b.templates[i]
}

// Templates returns a copy of the bank's template slice in stored order.
func (b *Bank) Templates() []*Template {
	out := make([]*Template, len(b.templates))
	copy(out, b.templates)
	return out
}

// MaxSize returns the size of the largest template in the bank.
func (b *Bank) MaxSize() int {
	max := 0
	for _, t := range b.templates {
		if t.Size() > max {
			max = t.Size()
		}
	}
	return max
}

// PreparedData returns every member's prepared transform stacked along a
// new leading axis, shape (len, n). See [Template.PreparedData].
func (b *Bank) PreparedData(n int) ([][]float32, error) {
	out := make([][]float32, len(b.templates))
	for i, t := range b.templates {
		prep, err := t.PreparedData(n)
		if err != nil {
			return nil, err
		}
		out[i] = prep
	}
	return out, nil
}
