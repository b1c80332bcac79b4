// Package window defines wavelength intervals used to anchor the
// pseudo-continuum and to bound the feature integration region.
package window

// Range is an inclusive wavelength interval [Lo, Hi].
type Range struct {
	Lo float64
	Hi float64
}

// Valid reports whether the range is ordered and non-degenerate.
func (r Range) Valid() bool {
	return r.Lo < r.Hi
}

// Width returns Hi - Lo.
func (r Range) Width() float64 {
	return r.Hi - r.Lo
}

// Contains reports whether w falls inside the range, inclusive on both
// bounds.
func (r Range) Contains(w float64) bool {
	return w >= r.Lo && w <= r.Hi
}

// Continuum holds the two anchor windows bracketing a feature: a blue
// (short-wavelength) pair and a red (long-wavelength) pair.
type Continuum struct {
	Blue Range
	Red  Range
}

// Valid reports whether both anchor windows are valid ranges.
func (c Continuum) Valid() bool {
	return c.Blue.Valid() && c.Red.Valid()
}

// Contains reports whether w falls inside either anchor window.
func (c Continuum) Contains(w float64) bool {
	return c.Blue.Contains(w) || c.Red.Contains(w)
}

// Indices returns the indices of all wavelength samples inside r, in input
// order. It never reorders and returns nil when no sample falls inside.
func Indices(wavelength []float64, r Range) []int {
	var idx []int

	for i, w := range wavelength {
		if r.Contains(w) {
			idx = append(idx, i)
		}
	}

	return idx
}
