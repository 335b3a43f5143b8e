package noise

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/cwbudde/algo-snr/internal/testutil"
)

func TestMedian(t *testing.T) {
	tests := []struct {
		name string
		x    []float64
		want float64
	}{
		{"odd", []float64{3, 1, 2}, 2},
		{"even", []float64{4, 1, 3, 2}, 2.5},
		{"single", []float64{7}, 7},
		{"constant", []float64{5, 5, 5, 5}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Median(tt.x); got != tt.want {
				t.Errorf("Median(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestMedianIgnoresNarrowPulse(t *testing.T) {
	// A bright pulse over a small fraction of the bins must not move
	// the median off the background level.
	x := make([]float64, 100)
	for i := 40; i < 45; i++ {
		x[i] = 1000
	}
	if got := Median(x); got != 0 {
		t.Errorf("Median = %v, want 0", got)
	}
}

func TestIQRStdExact(t *testing.T) {
	// Quartiles of 0..4 are 1 and 3.
	x := []float64{0, 1, 2, 3, 4}
	want := 2 / 1.3489795003921634
	testutil.RequireNear(t, IQRStd(x), want, 1e-12)
}

func TestIQRStdWhiteNoise(t *testing.T) {
	const sigma = 2.5
	x := testutil.GaussianNoise(1, sigma, 16384)
	got := IQRStd(x)
	if math.Abs(got-sigma)/sigma > 0.05 {
		t.Errorf("IQRStd = %v, want %v within 5%%", got, sigma)
	}
}

func TestDiffCovStdExactSmall(t *testing.T) {
	// x alternates 0/1; the difference sequence alternates +-1 and its
	// lag-1 sample covariance is -8/7.
	x := []float64{0, 1, 0, 1, 0, 1, 0, 1, 0}
	want := math.Sqrt(8.0 / 7.0)
	testutil.RequireNear(t, DiffCovStd(x), want, 1e-12)
}

func TestDiffCovStdWhiteNoise(t *testing.T) {
	const sigma = 0.75
	x := testutil.GaussianNoise(2, sigma, 16384)
	got := DiffCovStd(x)
	if math.Abs(got-sigma)/sigma > 0.05 {
		t.Errorf("DiffCovStd = %v, want %v within 5%%", got, sigma)
	}
}

func TestStdUnderDrift(t *testing.T) {
	// A slow drift much larger than the white noise biases the IQR
	// estimate upward but leaves diffcov accurate: the drift's
	// bin-to-bin increments are tiny and its power cancels in the
	// lag-1 covariance of the differences.
	const sigma = 1.0
	x := testutil.GaussianNoise(3, sigma, 16384)
	testutil.AddInPlace(x, testutil.Drift(10, len(x)))

	diffcov := DiffCovStd(x)
	if math.Abs(diffcov-sigma)/sigma > 0.1 {
		t.Errorf("DiffCovStd under drift = %v, want %v within 10%%", diffcov, sigma)
	}

	iqr := IQRStd(x)
	if iqr < 1.5*sigma {
		t.Errorf("IQRStd under drift = %v, expected strong upward bias", iqr)
	}
}

func TestDiffCovStdShortInput(t *testing.T) {
	if got := DiffCovStd([]float64{1, 2, 3}); !math.IsNaN(got) {
		t.Errorf("DiffCovStd on 3 samples = %v, want NaN", got)
	}
}

func TestMeanBatch(t *testing.T) {
	profiles := [][]float64{
		{3, 1, 2},
		{10, 30, 20},
	}
	got, err := Mean(profiles, MethodMedian)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.RequireSliceNear(t, got, []float64{2, 20}, 1e-12)
}

func TestStdBatch(t *testing.T) {
	profiles := [][]float64{
		{0, 1, 2, 3, 4},
		{0, 2, 4, 6, 8},
	}
	got, err := Std(profiles, MethodIQR)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{2 / 1.3489795003921634, 4 / 1.3489795003921634}
	testutil.RequireSliceNear(t, got, want, 1e-12)
}

func TestUnknownMethod(t *testing.T) {
	if _, err := Mean([][]float64{{1}}, "mode"); !errors.Is(err, ErrUnknownMethod) {
		t.Errorf("expected ErrUnknownMethod, got %v", err)
	}

	// The superseded draft name must be rejected too.
	_, err := Std([][]float64{{1, 2, 3, 4}}, "diff")
	if !errors.Is(err, ErrUnknownMethod) {
		t.Fatalf("expected ErrUnknownMethod, got %v", err)
	}
	for _, choice := range StdMethods() {
		if !strings.Contains(err.Error(), choice) {
			t.Errorf("error %q does not list valid choice %q", err, choice)
		}
	}
}

func TestStdShortProfile(t *testing.T) {
	_, err := Std([][]float64{{1, 2, 3}}, MethodDiffCov)
	if !errors.Is(err, ErrShortProfile) {
		t.Errorf("expected ErrShortProfile, got %v", err)
	}

	if _, err := Mean([][]float64{{}}, MethodMedian); !errors.Is(err, ErrShortProfile) {
		t.Errorf("expected ErrShortProfile for empty profile, got %v", err)
	}
}

func TestMethodLists(t *testing.T) {
	wantMean := []string{MethodMedian}
	gotMean := MeanMethods()
	if len(gotMean) != 1 || gotMean[0] != wantMean[0] {
		t.Errorf("MeanMethods() = %v, want %v", gotMean, wantMean)
	}

	wantStd := []string{MethodDiffCov, MethodIQR}
	gotStd := StdMethods()
	if len(gotStd) != 2 || gotStd[0] != wantStd[0] || gotStd[1] != wantStd[1] {
		t.Errorf("StdMethods() = %v, want %v", gotStd, wantStd)
	}
}
