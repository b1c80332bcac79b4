package equivwidth

import (
	"testing"

	"github.com/cwbudde/algo-spectro/internal/testutil"
	"github.com/cwbudde/algo-spectro/spectro/window"
)

func BenchmarkMeasure(b *testing.B) {
	wl := testutil.Grid(2.15, 0.0001, 1000)
	fl := testutil.AbsorptionLine(wl, 1.0, 2.205, 0.002, 0.4)

	cont := window.Continuum{
		Blue: window.Range{Lo: 2.180, Hi: 2.190},
		Red:  window.Range{Lo: 2.215, Hi: 2.225},
	}
	feature := window.Range{Lo: 2.196, Hi: 2.212}
	cfg := Config{RemoveZero: true, RemoveNonFinite: true}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		res := Measure(wl, fl, cont, feature, cfg)
		if res.Missing() {
			b.Fatalf("unexpected missing result: %v", res.Status)
		}
	}
}
