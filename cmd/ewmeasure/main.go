// Command ewmeasure measures the equivalent width of a spectral feature
// from a two-column CSV spectrum (wavelength, flux).
//
// Usage:
//
//	ewmeasure -blue 2.180,2.190 -red 2.215,2.225 -feature 2.196,2.212 spectrum.csv
//
// Examples:
//
//	ewmeasure -blue 2.18,2.19 -red 2.215,2.225 -feature 2.196,2.212 star.csv
//	ewmeasure -rv 35.2 -remove-zero -remove-nonfinite -fit mean ... star.csv
//	ewmeasure -angstrom -blue 21800,21900 -red 22150,22250 -feature 21960,22120 star.csv
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-spectro/measure/equivwidth"
	"github.com/cwbudde/algo-spectro/spectro/continuum"
	"github.com/cwbudde/algo-spectro/spectro/window"
	"github.com/cwbudde/algo-spectro/stats/region"
)

func main() {
	var (
		blue      = flag.String("blue", "", "blue continuum window as lo,hi (required)")
		red       = flag.String("red", "", "red continuum window as lo,hi (required)")
		feature   = flag.String("feature", "", "feature window as lo,hi (required)")
		rv        = flag.Float64("rv", 0, "radial velocity offset in km/s")
		rmZero    = flag.Bool("remove-zero", false, "drop non-positive flux samples")
		rmNonFin  = flag.Bool("remove-nonfinite", false, "drop non-finite flux samples")
		angstroms = flag.Bool("angstrom", false, "wavelength axis is in Angstroms (default: microns)")
		fitMode   = flag.String("fit", "linear", "continuum fit mode: linear, mean, or flat")
		quiet     = flag.Bool("quiet", false, "suppress advisory messages")
	)
	flag.Parse()

	if flag.NArg() != 1 || *blue == "" || *red == "" || *feature == "" {
		flag.Usage()
		os.Exit(2)
	}

	cont := window.Continuum{
		Blue: mustRange("blue", *blue),
		Red:  mustRange("red", *red),
	}
	feat := mustRange("feature", *feature)

	wavelength, flux, err := readSpectrum(flag.Arg(0))
	if err != nil {
		fatalf("reading %s: %v", flag.Arg(0), err)
	}

	fitter, err := fitterForMode(*fitMode)
	if err != nil {
		fatalf("%v", err)
	}

	var logger *zap.Logger
	if !*quiet {
		logger, err = zap.NewDevelopment()
		if err != nil {
			fatalf("creating logger: %v", err)
		}
		defer logger.Sync() //nolint:errcheck
	}

	cfg := equivwidth.Config{
		RVOffset:        *rv,
		RemoveZero:      *rmZero,
		RemoveNonFinite: *rmNonFin,
		Fitter:          fitter,
		Logger:          logger,
	}
	if *angstroms {
		cfg.Unit = equivwidth.UnitAngstrom
	}

	res := equivwidth.Measure(wavelength, flux, cont, feat, cfg)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "status\t%s\n", res.Status)
	fmt.Fprintf(w, "feature samples\t%d\n", res.ROISamples)
	if !res.Missing() {
		fmt.Fprintf(w, "equivalent width\t%.4f A\n", res.EW)
	}

	for _, rs := range []struct {
		name string
		r    window.Range
	}{
		{"blue window", cont.Blue},
		{"red window", cont.Red},
	} {
		s := region.Compute(wavelength, flux, rs.r)
		if s.Samples == 0 {
			fmt.Fprintf(w, "%s\tno samples\n", rs.name)
			continue
		}
		fmt.Fprintf(w, "%s\tn=%d mean=%.4g stddev=%.3g snr=%.3g\n",
			rs.name, s.Samples, s.Mean, s.StdDev, s.SNR)
	}

	if res.Missing() {
		w.Flush()
		os.Exit(1)
	}
}

func fitterForMode(mode string) (continuum.Fitter, error) {
	switch mode {
	case "linear":
		return continuum.Linear{}, nil
	case "mean":
		return continuum.Mean{}, nil
	case "flat":
		return continuum.Flat{}, nil
	default:
		return nil, fmt.Errorf("unknown fit mode %q (want linear, mean, or flat)", mode)
	}
}

func mustRange(name, s string) window.Range {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		fatalf("-%s: want lo,hi, got %q", name, s)
	}

	lo, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	hi, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err1 != nil || err2 != nil {
		fatalf("-%s: cannot parse %q", name, s)
	}

	r := window.Range{Lo: lo, Hi: hi}
	if !r.Valid() {
		fatalf("-%s: bounds must satisfy lo < hi, got %q", name, s)
	}

	return r
}

// readSpectrum loads a two-column CSV of wavelength,flux. Lines starting
// with '#' are skipped; flux values that fail to parse (e.g. "NaN" written
// by other tools) become NaN so the cleaning flags can handle them.
func readSpectrum(path string) (wavelength, flux []float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comment = '#'
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = 2

	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}

		w, err := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
		if err != nil {
			return nil, nil, fmt.Errorf("bad wavelength %q: %w", rec[0], err)
		}

		fl, err := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if err != nil {
			fl = math.NaN()
		}

		wavelength = append(wavelength, w)
		flux = append(flux, fl)
	}

	if len(wavelength) == 0 {
		return nil, nil, fmt.Errorf("no samples found")
	}

	return wavelength, flux, nil
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "ewmeasure: "+format+"\n", args...)
	os.Exit(2)
}
