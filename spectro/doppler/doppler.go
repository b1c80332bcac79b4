// Package doppler applies radial-velocity corrections to a wavelength axis.
package doppler

import (
	"github.com/cwbudde/algo-vecmath"
)

// SpeedOfLight is the speed of light in km/s.
const SpeedOfLight = 2.99792458e5

// Shift returns the wavelength axis corrected for a radial velocity rv in
// km/s, using the non-relativistic Doppler approximation
//
//	corrected[i] = wavelength[i] * (1 - rv/c)
//
// A zero rv returns an unshifted copy. The result is always a new slice;
// flux values are unaffected by construction since only wavelengths pass
// through here.
func Shift(wavelength []float64, rv float64) []float64 {
	out := make([]float64, len(wavelength))

	if rv == 0 {
		copy(out, wavelength)
		return out
	}

	vecmath.ScaleBlock(out, wavelength, 1-rv/SpeedOfLight)

	return out
}

// Factor returns the multiplicative wavelength correction for rv in km/s.
func Factor(rv float64) float64 {
	return 1 - rv/SpeedOfLight
}
