// Package testutil provides deterministic synthetic spectra and tolerance
// helpers for tests.
package testutil

import "math"

// Grid returns n wavelengths starting at start with uniform spacing step.
func Grid(start, step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

// FlatContinuum returns a constant flux level at every wavelength.
func FlatContinuum(wavelength []float64, level float64) []float64 {
	out := make([]float64, len(wavelength))
	for i := range out {
		out[i] = level
	}
	return out
}

// AbsorptionLine returns a flat continuum at level with a Gaussian
// absorption line of the given center, sigma, and fractional depth.
func AbsorptionLine(wavelength []float64, level, center, sigma, depth float64) []float64 {
	out := make([]float64, len(wavelength))
	for i, w := range wavelength {
		d := (w - center) / sigma
		out[i] = level * (1 - depth*math.Exp(-0.5*d*d))
	}
	return out
}

// WithValues returns a copy of flux with the given index/value overrides,
// for injecting zeros or non-finite samples.
func WithValues(flux []float64, overrides map[int]float64) []float64 {
	out := append([]float64(nil), flux...)
	for i, v := range overrides {
		if i >= 0 && i < len(out) {
			out[i] = v
		}
	}
	return out
}
