package template

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by template constructors and preparation.
var (
	ErrInvalidShape     = errors.New("template: invalid shape data")
	ErrInvalidParameter = errors.New("template: invalid shape parameter")
	ErrPadLength        = errors.New("template: pad length smaller than template size")
	ErrInvalidBank      = errors.New("template: invalid template bank")
)

// Set is an ordered collection of templates. It is satisfied by both
// *Template (a one-element set) and *Bank, mirroring APIs that accept
// either a single template or a whole bank.
type Set interface {
	// Len returns the number of templates in the set.
	Len() int

	// At returns the template at index i in set order.
	At(i int) *Template
}

// Template is an immutable noise-free pulse shape, normalized to unit
// sum of squares at construction time.
type Template struct {
	data        []float64
	refbin      int
	reference   string
	kind        string
	shapeParams map[string]float64
}

// New creates a template from raw shape samples.
//
// The samples are normalized to unit sum of squares; no mean subtraction
// is applied, so amplitude sign and offset information is preserved.
// refbin must lie in [0, len(data)). reference and kind are free-form
// descriptive labels with no computed effect, as is shapeParams.
func New(data []float64, refbin int, reference, kind string, shapeParams map[string]float64) (*Template, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: data is empty", ErrInvalidShape)
	}
	if refbin < 0 || refbin >= len(data) {
		return nil, fmt.Errorf("%w: refbin %d outside [0, %d)", ErrInvalidShape, refbin, len(data))
	}

	params := make(map[string]float64, len(shapeParams))
	for k, v := range shapeParams {
		params[k] = v
	}

	return &Template{
		data:        normalize(data),
		refbin:      refbin,
		reference:   reference,
		kind:        kind,
		shapeParams: params,
	}, nil
}

// Boxcar creates a unit-height step template of the given width in bins.
// The reference bin is the start of the boxcar (bin 0).
func Boxcar(width int) (*Template, error) {
	if width < 1 {
		return nil, fmt.Errorf("%w: boxcar width %d, must be >= 1", ErrInvalidParameter, width)
	}

	data := make([]float64, width)
	for i := range data {
		data[i] = 1
	}

	return New(data, 0, "start", "boxcar", map[string]float64{"w": float64(width)})
}

// Gaussian creates a Gaussian pulse template with the given full width at
// half maximum, expressed in bins. The template covers the symmetric
// range of +-3.5 sigma where sigma = fwhm / (2*sqrt(2*ln 2)), giving a
// total extent of 2*ceil(3.5*sigma)+1 bins with a minimum of 3. The
// reference bin is the center sample (the peak).
func Gaussian(fwhm float64) (*Template, error) {
	if !(fwhm > 0) {
		return nil, fmt.Errorf("%w: gaussian fwhm %v, must be > 0", ErrInvalidParameter, fwhm)
	}

	sigma := fwhm / (2 * math.Sqrt(2*math.Ln2))
	xmax := int(math.Ceil(3.5 * sigma))

	size := 2*xmax + 1
	data := make([]float64, size)
	for i := range data {
		x := float64(i - xmax)
		data[i] = math.Exp(-x * x / (2 * sigma * sigma))
	}

	return New(data, xmax, "peak", "gaussian", map[string]float64{"w": fwhm})
}

// Data returns a copy of the normalized template samples.
func (t *Template) Data() []float64 {
	out := make([]float64, len(t.data))
	copy(out, t.data)
	return out
}

// Size returns the number of samples in the template.
func (t *Template) Size() int {
	return len(t.data)
}

// RefBin returns the reference bin index.
func (t *Template) RefBin() int {
	return t.refbin
}

// Reference returns the descriptive label of the reference bin
// (e.g. "start", "peak").
func (t *Template) Reference() string {
	return t.reference
}

// Kind returns the descriptive shape label (e.g. "boxcar", "gaussian").
func (t *Template) Kind() string {
	return t.kind
}

// ShapeParams returns a copy of the shape-generation parameters.
func (t *Template) ShapeParams() map[string]float64 {
	out := make(map[string]float64, len(t.shapeParams))
	for k, v := range t.shapeParams {
		out[k] = v
	}
	return out
}

// Len implements [Set] for a single template.
func (t *Template) Len() int {
	return 1
}

// At implements [Set] for a single template.
func (t *Template) At(int) *Template {
	return t
}

// PreparedData returns the template padded to n bins and arranged for
// frequency-domain circular correlation against an n-bin profile.
//
// The normalized samples are zero-padded on the right (so the reference
// bin keeps its absolute position), circularly rotated to place the
// reference bin at index 0, and circularly time-reversed: the output y
// satisfies y[k] = x[(n-k) mod n], which keeps index 0 fixed rather than
// reversing element order. The result is cast to float32, the working
// precision of the S/N engine.
//
// Returns ErrPadLength when n is smaller than the template size.
func (t *Template) PreparedData(n int) ([]float32, error) {
	size := len(t.data)
	if n < size {
		return nil, fmt.Errorf("%w: n = %d, template size = %d", ErrPadLength, n, size)
	}

	// Right zero-pad, then rotate left by refbin in one indexing step.
	rotated := make([]float64, n)
	for i := 0; i < size; i++ {
		rotated[(i-t.refbin+n)%n] = t.data[i]
	}

	// Circular time reversal: y[k] = x[-k mod n], y[0] = x[0].
	out := make([]float32, n)
	out[0] = float32(rotated[0])
	for k := 1; k < n; k++ {
		out[k] = float32(rotated[n-k])
	}

	return out, nil
}

// String returns a short human-readable description.
func (t *Template) String() string {
	keys := make([]string, 0, len(t.shapeParams))
	for k := range t.shapeParams {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%.3f", k, t.shapeParams[k]))
	}

	if len(parts) == 0 {
		return fmt.Sprintf("Template(size=%d, kind=%s)", len(t.data), t.kind)
	}
	return fmt.Sprintf("Template(size=%d, kind=%s, %s)", len(t.data), t.kind, strings.Join(parts, ", "))
}

// normalize scales data to unit sum of squares.
func normalize(data []float64) []float64 {
	sq := make([]float64, len(data))
	vecmath.MulBlock(sq, data, data)

	var sum float64
	for _, v := range sq {
		sum += v
	}

	scale := 1 / math.Sqrt(sum)
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = v * scale
	}
	return out
}
