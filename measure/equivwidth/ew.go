package equivwidth

import (
	"math"
	"sort"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/integrate"

	"github.com/cwbudde/algo-spectro/spectro/clean"
	"github.com/cwbudde/algo-spectro/spectro/continuum"
	"github.com/cwbudde/algo-spectro/spectro/doppler"
	"github.com/cwbudde/algo-spectro/spectro/window"
)

// micronToAngstrom converts a width measured on a micron wavelength axis
// to Angstroms. It is applied to the final scalar only, never to
// intermediate arrays.
const micronToAngstrom = 1e4

// minROISamples is the minimum feature-window sample count for a
// measurement. Fewer points make the trapezoidal integral degenerate.
const minROISamples = 4

// Unit identifies the unit of the wavelength axis.
type Unit int

const (
	// UnitMicron marks a micron wavelength axis; the measured width is
	// converted to Angstroms. This is the default.
	UnitMicron Unit = iota

	// UnitAngstrom marks an Angstrom wavelength axis; the measured width
	// is returned unscaled.
	UnitAngstrom
)

// Status classifies the outcome of a measurement.
type Status int

const (
	// StatusOK marks a valid measurement.
	StatusOK Status = iota

	// StatusFitFailed marks a failed pseudo-continuum fit.
	StatusFitFailed

	// StatusTooFewSamples marks a feature window with three or fewer
	// samples (or empty/mismatched input).
	StatusTooFewSamples

	// StatusUnsortedWavelength marks a feature window whose wavelengths
	// are not in ascending order, which the trapezoidal rule cannot
	// integrate.
	StatusUnsortedWavelength
)

// String returns a short description of the status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusFitFailed:
		return "continuum fit failed"
	case StatusTooFewSamples:
		return "too few samples in feature window"
	case StatusUnsortedWavelength:
		return "feature window wavelengths not ascending"
	default:
		return "unknown"
	}
}

// Plotter renders a diagnostic view of a valid measurement. It receives
// the cleaned and RV-corrected spectrum, the fitted pseudo-continuum on
// the same samples, both window definitions, and the final width. Plotting
// never affects the returned result.
type Plotter interface {
	Plot(wavelength, flux, pseudo []float64, cont window.Continuum, feature window.Range, ew float64)
}

// Config holds measurement options. The zero value measures an
// unshifted micron-axis spectrum with no cleaning, a linear continuum
// fit, no plotting, and no advisory output.
type Config struct {
	// RVOffset is a radial velocity in km/s applied to the wavelength
	// axis before any window selection. Zero means no correction.
	RVOffset float64

	// RemoveZero drops samples with non-positive flux.
	RemoveZero bool

	// RemoveNonFinite drops samples with NaN or infinite flux, after any
	// zero filtering.
	RemoveNonFinite bool

	// Unit is the unit of the wavelength axis. The default, UnitMicron,
	// converts the measured width to Angstroms.
	Unit Unit

	// Fitter builds the pseudo-continuum baseline. Nil selects
	// continuum.Linear.
	Fitter continuum.Fitter

	// Plotter, when non-nil, is invoked for valid results only.
	Plotter Plotter

	// Logger receives advisory messages (cleaning policy, RV shift,
	// measured value). Nil suppresses them.
	Logger *zap.Logger
}

// Result is the outcome of a measurement.
type Result struct {
	// EW is the equivalent width in Angstroms (or in wavelength-axis
	// units when Config.Unit is UnitAngstrom). NaN unless Status is
	// StatusOK. A zero-valued pseudo-continuum sample inside the feature
	// window is not guarded: it propagates as a non-finite EW under
	// StatusOK, which callers may reject with math.IsInf/math.IsNaN.
	EW float64

	// Status says whether and why the measurement is missing.
	Status Status

	// ROISamples is the number of samples inside the feature window
	// after cleaning and RV correction.
	ROISamples int
}

// Missing reports whether the measurement could not be made.
func (r Result) Missing() bool {
	return r.Status != StatusOK
}

// Measure computes the equivalent width of the feature bounded by feature,
// normalized by a pseudo-continuum anchored on cont.
//
// The wavelength and flux slices must be the same length, with wavelengths
// in ascending order. Caller slices are never mutated; all work happens on
// private copies. Failure modes never panic; they return a Result with
// EW = NaN and a non-OK Status.
func Measure(wavelength, flux []float64, cont window.Continuum, feature window.Range, cfg Config) Result {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(wavelength) != len(flux) || len(wavelength) == 0 {
		return missing(StatusTooFewSamples, 0)
	}

	w, f, policy := clean.Spectrum(wavelength, flux, cfg.RemoveZero, cfg.RemoveNonFinite)
	if policy.Applied() {
		logger.Info("cleaned spectrum",
			zap.String("policy", policy.String()),
			zap.Int("kept", len(w)),
			zap.Int("removed", len(wavelength)-len(w)))
	}

	if cfg.RVOffset != 0 {
		w = doppler.Shift(w, cfg.RVOffset)
		logger.Info("applied radial-velocity correction",
			zap.Float64("rv_km_s", cfg.RVOffset),
			zap.Float64("factor", doppler.Factor(cfg.RVOffset)))
	}

	fitter := cfg.Fitter
	if fitter == nil {
		fitter = continuum.Linear{}
	}

	pseudo, err := fitter.Fit(w, f, cont)
	if err != nil {
		logger.Warn("pseudo-continuum fit failed", zap.Error(err))
		return missing(StatusFitFailed, 0)
	}

	if len(pseudo) != len(w) {
		logger.Warn("pseudo-continuum not aligned with spectrum",
			zap.Int("pseudo", len(pseudo)),
			zap.Int("spectrum", len(w)))

		return missing(StatusFitFailed, 0)
	}

	roi := window.Indices(w, feature)
	if len(roi) < minROISamples {
		logger.Warn("too few samples in feature window",
			zap.Int("samples", len(roi)),
			zap.Int("minimum", minROISamples))

		return missing(StatusTooFewSamples, len(roi))
	}

	roiW := make([]float64, len(roi))
	depth := make([]float64, len(roi))

	for i, j := range roi {
		roiW[i] = w[j]
		depth[i] = 1 - f[j]/pseudo[j]
	}

	if !sort.Float64sAreSorted(roiW) {
		logger.Warn("feature window wavelengths not ascending")
		return missing(StatusUnsortedWavelength, len(roi))
	}

	ew := integrate.Trapezoidal(roiW, depth)
	if cfg.Unit == UnitMicron {
		ew *= micronToAngstrom
	}

	logger.Info("measured equivalent width",
		zap.Float64("ew_angstrom", ew),
		zap.Int("samples", len(roi)))

	if cfg.Plotter != nil {
		cfg.Plotter.Plot(w, f, pseudo, cont, feature, ew)
	}

	return Result{EW: ew, Status: StatusOK, ROISamples: len(roi)}
}

func missing(status Status, samples int) Result {
	return Result{EW: math.NaN(), Status: status, ROISamples: samples}
}
