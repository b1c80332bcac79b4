package region

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-spectro/spectro/window"
)

func TestComputeKnownValues(t *testing.T) {
	wl := []float64{1.00, 1.01, 1.02, 1.03, 1.04}
	fl := []float64{9.0, 1.0, 2.0, 3.0, 9.0}

	got := Compute(wl, fl, window.Range{Lo: 1.01, Hi: 1.03})

	if got.Samples != 3 {
		t.Fatalf("Samples = %d, want 3", got.Samples)
	}
	if math.Abs(got.Mean-2.0) > 1e-12 {
		t.Fatalf("Mean = %v, want 2", got.Mean)
	}
	if math.Abs(got.StdDev-1.0) > 1e-12 {
		t.Fatalf("StdDev = %v, want 1", got.StdDev)
	}
	if math.Abs(got.Median-2.0) > 1e-12 {
		t.Fatalf("Median = %v, want 2", got.Median)
	}
	if math.Abs(got.SNR-2.0) > 1e-12 {
		t.Fatalf("SNR = %v, want 2", got.SNR)
	}
}

func TestComputeEmptySelection(t *testing.T) {
	got := Compute([]float64{1.0, 2.0}, []float64{1, 1}, window.Range{Lo: 3, Hi: 4})

	if got != (Stats{}) {
		t.Fatalf("expected zero Stats, got %+v", got)
	}
}

func TestComputeDoesNotMutateInput(t *testing.T) {
	wl := []float64{1.00, 1.01, 1.02}
	fl := []float64{3.0, 1.0, 2.0}

	_ = Compute(wl, fl, window.Range{Lo: 1.00, Hi: 1.02})

	if fl[0] != 3 || fl[1] != 1 || fl[2] != 2 {
		t.Fatalf("flux mutated: %v", fl)
	}
}
