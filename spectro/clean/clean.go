// Package clean filters bad samples out of a spectrum before measurement.
//
// Cleaning only removes sample pairs; it never reorders, interpolates, or
// modifies surviving values, and it always operates on fresh copies so the
// caller's slices are left untouched.
package clean

import "math"

// Policy records which filters were applied, for advisory reporting.
type Policy struct {
	RemovedZero      bool
	RemovedNonFinite bool
}

// String returns a short human-readable description of the applied policy.
func (p Policy) String() string {
	switch {
	case p.RemovedZero && p.RemovedNonFinite:
		return "removed non-positive and non-finite flux samples"
	case p.RemovedZero:
		return "removed non-positive flux samples"
	case p.RemovedNonFinite:
		return "removed non-finite flux samples"
	default:
		return "no cleaning applied"
	}
}

// Applied reports whether any filtering took place.
func (p Policy) Applied() bool {
	return p.RemovedZero || p.RemovedNonFinite
}

// Spectrum returns cleaned copies of the wavelength/flux pair.
//
// With removeZero set, only samples with flux > 0 are kept. With
// removeNonFinite set, only samples with finite flux are kept; this filter
// runs after the zero filter, on the already-filtered arrays. With neither
// flag set the result is a plain copy. The input slices are never mutated.
func Spectrum(wavelength, flux []float64, removeZero, removeNonFinite bool) (w, f []float64, policy Policy) {
	w = append([]float64(nil), wavelength...)
	f = append([]float64(nil), flux...)

	if removeZero {
		w, f = filter(w, f, func(v float64) bool { return v > 0 })
		policy.RemovedZero = true
	}

	if removeNonFinite {
		w, f = filter(w, f, isFinite)
		policy.RemovedNonFinite = true
	}

	return w, f, policy
}

// filter keeps sample pairs whose flux satisfies keep, compacting in place.
// w and f are owned by the caller of Spectrum's internal copies, so in-place
// compaction never touches user data.
func filter(w, f []float64, keep func(float64) bool) ([]float64, []float64) {
	n := 0

	for i := range f {
		if keep(f[i]) {
			w[n] = w[i]
			f[n] = f[i]
			n++
		}
	}

	return w[:n], f[:n]
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
