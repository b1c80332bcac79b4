// Package region computes flux statistics over a wavelength interval,
// typically the continuum anchor windows of an equivalent-width
// measurement. A high scatter (low SNR) in an anchor window is the usual
// sign of a poorly placed continuum region.
package region

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-spectro/spectro/window"
)

// Stats holds flux statistics for the samples inside one wavelength range.
type Stats struct {
	Samples int
	Mean    float64
	StdDev  float64 // sample standard deviation; NaN with fewer than 2 samples
	Median  float64
	SNR     float64 // Mean / StdDev
}

// Compute returns flux statistics over the samples of the spectrum whose
// wavelength falls inside r. An empty selection returns the zero Stats.
// The input slices are never mutated.
func Compute(wavelength, flux []float64, r window.Range) Stats {
	var sel []float64

	for i, w := range wavelength {
		if r.Contains(w) && i < len(flux) {
			sel = append(sel, flux[i])
		}
	}

	if len(sel) == 0 {
		return Stats{}
	}

	mean := stat.Mean(sel, nil)
	std := stat.StdDev(sel, nil)

	sorted := append([]float64(nil), sel...)
	sort.Float64s(sorted)

	return Stats{
		Samples: len(sel),
		Mean:    mean,
		StdDev:  std,
		Median:  stat.Quantile(0.5, stat.LinInterp, sorted, nil),
		SNR:     mean / std,
	}
}
