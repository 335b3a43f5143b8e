package template

import (
	"errors"
	"testing"
)

var (
	_ Set = (*Template)(nil)
	_ Set = (*Bank)(nil)
)

func TestNewBankErrors(t *testing.T) {
	if _, err := NewBank(nil); !errors.Is(err, ErrInvalidBank) {
		t.Errorf("empty: expected ErrInvalidBank, got %v", err)
	}

	tpl, err := Boxcar(3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := NewBank([]*Template{tpl, nil}); !errors.Is(err, ErrInvalidBank) {
		t.Errorf("nil member: expected ErrInvalidBank, got %v", err)
	}
}

func TestNewBankCopiesSlice(t *testing.T) {
	a, _ := Boxcar(1)
	b, _ := Boxcar(2)
	in := []*Template{a, b}

	bank, err := NewBank(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	in[0] = nil
	if bank.At(0) != a {
		t.Error("bank shares the caller's slice")
	}
}

func TestBoxcarsOrder(t *testing.T) {
	bank, err := Boxcars([]int{5, 1, 3, 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantSizes := []int{1, 3, 3, 5}
	if bank.Len() != len(wantSizes) {
		t.Fatalf("len = %d, want %d", bank.Len(), len(wantSizes))
	}
	for i, want := range wantSizes {
		if got := bank.At(i).Size(); got != want {
			t.Errorf("At(%d).Size() = %d, want %d", i, got, want)
		}
	}
}

func TestBoxcarsInvalidWidth(t *testing.T) {
	if _, err := Boxcars([]int{3, 0}); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter, got %v", err)
	}
}

func TestGaussiansOrder(t *testing.T) {
	bank, err := Gaussians([]float64{8, 2.5, 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []float64{2.5, 4, 8}
	for i, w := range want {
		if got := bank.At(i).ShapeParams()["w"]; got != w {
			t.Errorf("At(%d) width = %v, want %v", i, got, w)
		}
	}
}

func TestMaxSize(t *testing.T) {
	bank, err := Boxcars([]int{2, 9, 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := bank.MaxSize(); got != 9 {
		t.Errorf("MaxSize() = %d, want 9", got)
	}
}

func TestBankPreparedData(t *testing.T) {
	bank, err := Boxcars([]int{1, 2, 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	const n = 16
	prep, err := bank.PreparedData(n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prep) != bank.Len() {
		t.Fatalf("rows = %d, want %d", len(prep), bank.Len())
	}
	for j, row := range prep {
		if len(row) != n {
			t.Errorf("row %d: len = %d, want %d", j, len(row), n)
		}
	}
}

func TestBankPreparedDataTooShort(t *testing.T) {
	bank, err := Boxcars([]int{2, 8})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := bank.PreparedData(4); !errors.Is(err, ErrPadLength) {
		t.Errorf("expected ErrPadLength, got %v", err)
	}
}

func TestTemplateAsSet(t *testing.T) {
	tpl, err := Gaussian(3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var set Set = tpl
	if set.Len() != 1 {
		t.Errorf("Len() = %d, want 1", set.Len())
	}
	if set.At(0) != tpl {
		t.Error("At(0) did not return the template itself")
	}
}
