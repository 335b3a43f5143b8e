package testutil

import (
	"math"
	"testing"
)

func TestGaussianNoiseReproducible(t *testing.T) {
	a := GaussianNoise(42, 1.5, 64)
	b := GaussianNoise(42, 1.5, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic at index %d", i)
		}
	}
}

func TestGaussianNoiseDifferentSeeds(t *testing.T) {
	a := GaussianNoise(1, 1, 16)
	b := GaussianNoise(2, 1, 16)
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestAlternatingBackground(t *testing.T) {
	bg := AlternatingBackground(6)
	want := []float64{1, 0, 1, 0, 1, 0}
	for i := range bg {
		if bg[i] != want[i] {
			t.Fatalf("bg[%d] = %v, want %v", i, bg[i], want[i])
		}
	}
}

func TestInjectPulseWraps(t *testing.T) {
	p := make([]float64, 8)
	InjectPulse(p, 6, 4, 3)
	want := []float64{3, 3, 0, 0, 0, 0, 3, 3}
	for i := range p {
		if p[i] != want[i] {
			t.Fatalf("p[%d] = %v, want %v", i, p[i], want[i])
		}
	}
}

func TestDriftOnePeriod(t *testing.T) {
	d := Drift(2, 360)
	if math.Abs(d[0]) > 1e-12 {
		t.Errorf("d[0] = %v, want 0", d[0])
	}
	if math.Abs(d[90]-2) > 1e-12 {
		t.Errorf("d[90] = %v, want 2", d[90])
	}
}

func TestArgMax32(t *testing.T) {
	if got := ArgMax32([]float32{1, 5, 3, 5}); got != 1 {
		t.Errorf("ArgMax32 = %d, want first maximum at 1", got)
	}
	if got := ArgMax32(nil); got != -1 {
		t.Errorf("ArgMax32(nil) = %d, want -1", got)
	}
}
