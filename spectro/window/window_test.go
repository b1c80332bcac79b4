package window

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRangeContainsInclusiveBounds(t *testing.T) {
	r := Range{Lo: 1.01, Hi: 1.04}

	if !r.Contains(1.01) {
		t.Fatalf("lower bound must be inclusive")
	}
	if !r.Contains(1.04) {
		t.Fatalf("upper bound must be inclusive")
	}
	if r.Contains(1.0099999) || r.Contains(1.0400001) {
		t.Fatalf("values outside bounds must be excluded")
	}
}

func TestRangeValid(t *testing.T) {
	if !(Range{Lo: 1, Hi: 2}).Valid() {
		t.Fatalf("ordered range must be valid")
	}
	if (Range{Lo: 2, Hi: 1}).Valid() {
		t.Fatalf("inverted range must be invalid")
	}
	if (Range{Lo: 1, Hi: 1}).Valid() {
		t.Fatalf("degenerate range must be invalid")
	}
}

func TestContinuumContains(t *testing.T) {
	c := Continuum{
		Blue: Range{Lo: 1.00, Hi: 1.01},
		Red:  Range{Lo: 1.04, Hi: 1.05},
	}

	if !c.Contains(1.005) || !c.Contains(1.045) {
		t.Fatalf("samples inside anchor windows must be contained")
	}
	if c.Contains(1.02) {
		t.Fatalf("samples between anchor windows must be excluded")
	}
}

func TestIndicesPreservesOrder(t *testing.T) {
	wl := []float64{1.00, 1.01, 1.02, 1.03, 1.04, 1.05}

	got := Indices(wl, Range{Lo: 1.01, Hi: 1.04})
	want := []int{1, 2, 3, 4}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("index mismatch (-want +got):\n%s", diff)
	}
}

func TestIndicesEmpty(t *testing.T) {
	wl := []float64{1.00, 1.05}

	if got := Indices(wl, Range{Lo: 1.01, Hi: 1.04}); got != nil {
		t.Fatalf("expected nil for no samples in range, got %v", got)
	}
	if got := Indices(nil, Range{Lo: 1.01, Hi: 1.04}); got != nil {
		t.Fatalf("expected nil for empty input, got %v", got)
	}
}
