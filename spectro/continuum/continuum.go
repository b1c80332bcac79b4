// Package continuum builds pseudo-continuum baselines for a sampled
// spectrum.
//
// A pseudo-continuum is a locally fitted baseline flux level anchored on
// two wavelength windows bracketing a feature (a blue pair and a red pair).
// Fitters return the baseline sampled at every input wavelength, so the
// caller can normalize line depth as 1 - flux/continuum sample by sample.
package continuum

import (
	"errors"

	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-spectro/spectro/window"
)

var (
	// ErrNoAnchorSamples indicates that no spectrum sample fell inside
	// either anchor window.
	ErrNoAnchorSamples = errors.New("continuum: no samples in anchor windows")

	// ErrDegenerateAnchor indicates that the anchor samples cannot
	// constrain the fit (too few points or zero wavelength spread).
	ErrDegenerateAnchor = errors.New("continuum: anchor samples cannot constrain fit")

	errLengthMismatch = errors.New("continuum: wavelength/flux length mismatch")
)

// Fitter builds a pseudo-continuum baseline sampled at every input
// wavelength. Implementations must not mutate the input slices.
type Fitter interface {
	Fit(wavelength, flux []float64, win window.Continuum) ([]float64, error)
}

// Linear fits a least-squares straight line through all samples falling in
// either anchor window and evaluates it at every input wavelength. This is
// the default fitter for unnormalized spectra.
type Linear struct{}

// Fit implements [Fitter].
func (Linear) Fit(wavelength, flux []float64, win window.Continuum) ([]float64, error) {
	if len(wavelength) != len(flux) {
		return nil, errLengthMismatch
	}

	ws, fs := anchorSamples(wavelength, flux, win)
	if len(ws) == 0 {
		return nil, ErrNoAnchorSamples
	}

	if len(ws) < 2 || !hasSpread(ws) {
		return nil, ErrDegenerateAnchor
	}

	alpha, beta := stat.LinearRegression(ws, fs, nil, false)

	out := make([]float64, len(wavelength))
	for i, w := range wavelength {
		out[i] = alpha + beta*w
	}

	return out, nil
}

// Mean fits a constant baseline equal to the mean flux of the anchor
// samples.
type Mean struct{}

// Fit implements [Fitter].
func (Mean) Fit(wavelength, flux []float64, win window.Continuum) ([]float64, error) {
	if len(wavelength) != len(flux) {
		return nil, errLengthMismatch
	}

	_, fs := anchorSamples(wavelength, flux, win)
	if len(fs) == 0 {
		return nil, ErrNoAnchorSamples
	}

	return constant(stat.Mean(fs, nil), len(wavelength)), nil
}

// Flat is the baseline for already-normalized spectra: a constant 1.0 at
// every sample. It never fails.
type Flat struct{}

// Fit implements [Fitter].
func (Flat) Fit(wavelength, flux []float64, _ window.Continuum) ([]float64, error) {
	if len(wavelength) != len(flux) {
		return nil, errLengthMismatch
	}

	return constant(1.0, len(wavelength)), nil
}

func anchorSamples(wavelength, flux []float64, win window.Continuum) (ws, fs []float64) {
	for i, w := range wavelength {
		if win.Contains(w) {
			ws = append(ws, w)
			fs = append(fs, flux[i])
		}
	}

	return ws, fs
}

func hasSpread(ws []float64) bool {
	for _, w := range ws[1:] {
		if w != ws[0] {
			return true
		}
	}

	return false
}

func constant(level float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = level
	}

	return out
}
