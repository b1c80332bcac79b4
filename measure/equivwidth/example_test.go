package equivwidth_test

import (
	"fmt"

	"github.com/cwbudde/algo-spectro/measure/equivwidth"
	"github.com/cwbudde/algo-spectro/spectro/window"
)

func ExampleMeasure() {
	// Flat-bottomed absorption feature on a unity continuum, sampled at
	// 0.01 micron spacing.
	wavelength := []float64{1.00, 1.01, 1.02, 1.03, 1.04, 1.05}
	flux := []float64{1, 1, 0.5, 0.5, 0.5, 1}

	res := equivwidth.Measure(wavelength, flux,
		window.Continuum{
			Blue: window.Range{Lo: 0.995, Hi: 1.005},
			Red:  window.Range{Lo: 1.045, Hi: 1.055},
		},
		window.Range{Lo: 1.01, Hi: 1.04},
		equivwidth.Config{},
	)

	fmt.Printf("EW = %.2f A (%d samples)\n", res.EW, res.ROISamples)

	// Output:
	// EW = 125.00 A (4 samples)
}

func ExampleMeasure_missing() {
	// Sampling too sparse for the feature window: fewer than four
	// samples fall inside, so no integration is attempted.
	wavelength := []float64{1.00, 1.02, 1.04, 1.06}
	flux := []float64{1, 0.5, 0.5, 1}

	res := equivwidth.Measure(wavelength, flux,
		window.Continuum{
			Blue: window.Range{Lo: 0.995, Hi: 1.005},
			Red:  window.Range{Lo: 1.055, Hi: 1.065},
		},
		window.Range{Lo: 1.01, Hi: 1.05},
		equivwidth.Config{},
	)

	fmt.Println(res.Missing(), res.Status)

	// Output:
	// true too few samples in feature window
}
