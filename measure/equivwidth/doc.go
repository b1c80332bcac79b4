// Package equivwidth measures the equivalent width of a spectral
// absorption or emission feature against a locally fitted
// pseudo-continuum.
//
// The equivalent width is the integral of the normalized line depth
// 1 - flux/continuum over a feature window, expressed in wavelength units.
// The measurement pipeline runs four ordered stages:
//
//  1. Cleaning: optional removal of non-positive and/or non-finite flux
//     samples (copies, never mutates caller data).
//  2. Radial-velocity correction: optional Doppler shift of the wavelength
//     axis.
//  3. Pseudo-continuum construction: delegated to a [continuum.Fitter]
//     anchored on two windows bracketing the feature.
//  4. Integration: composite trapezoidal rule over the exact samples
//     inside the feature window, with optional micron-to-Angstrom scaling
//     of the final scalar.
//
// Every failure mode degrades to a missing [Result] rather than a panic:
// a failed continuum fit, a feature window containing three or fewer
// samples, or a non-ascending wavelength axis inside the window.
//
// # Usage
//
//	res := equivwidth.Measure(wavelength, flux,
//	    window.Continuum{
//	        Blue: window.Range{Lo: 2.180, Hi: 2.190},
//	        Red:  window.Range{Lo: 2.215, Hi: 2.225},
//	    },
//	    window.Range{Lo: 2.200, Hi: 2.212},
//	    equivwidth.Config{RemoveZero: true},
//	)
//	if res.Missing() {
//	    // res.Status says why
//	}
package equivwidth
