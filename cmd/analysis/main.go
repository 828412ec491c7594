//go:build analysis

// Command analysis sweeps evaluation cost over generated expression families
// and renders the timings and output sizes as an HTML chart page.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"dirac-calc/algebra"
	"dirac-calc/exprgen"
	"dirac-calc/measure"
	"dirac-calc/measureutil"
	"dirac-calc/symbolic"
)

type sweepPoint struct {
	ChainLen  int
	MeanUS    float64
	MaxUS     float64
	MeanTerms float64
	Distinct  int
}

// runSweep times rational-mode evaluation of random chains per length.
func runSweep(minLen, maxLen, samples int, seed string) ([]sweepPoint, error) {
	gen, err := exprgen.NewGenerator([]byte(seed))
	if err != nil {
		return nil, err
	}

	var points []sweepPoint
	for length := minLen; length <= maxLen; length++ {
		var (
			totalUS   float64
			maxUS     float64
			termCount int
			prints    = make(map[string]struct{})
		)
		for s := 0; s < samples; s++ {
			expr := gen.Chain(length)

			start := time.Now()
			res, err := symbolic.Eval(expr, symbolic.RationalMode())
			elapsed := float64(time.Since(start).Microseconds())
			if err != nil {
				return nil, fmt.Errorf("eval %q: %w", expr, err)
			}

			totalUS += elapsed
			if elapsed > maxUS {
				maxUS = elapsed
			}
			for i := range res.Coeffs {
				termCount += len(res.Coeffs[i].Terms)
			}
			prints[symbolic.Fingerprint(&res)] = struct{}{}
		}
		points = append(points, sweepPoint{
			ChainLen:  length,
			MeanUS:    totalUS / float64(samples),
			MaxUS:     maxUS,
			MeanTerms: float64(termCount) / float64(samples),
			Distinct:  len(prints),
		})
		log.Printf("len=%d mean=%.1fus max=%.1fus terms=%.1f distinct=%d",
			length, points[len(points)-1].MeanUS, maxUS,
			points[len(points)-1].MeanTerms, len(prints))
	}
	return points, nil
}

func render(points []sweepPoint, outPath string) error {
	xs := make([]string, len(points))
	meanTimes := make([]opts.LineData, len(points))
	maxTimes := make([]opts.LineData, len(points))
	meanTerms := make([]opts.LineData, len(points))
	for i, p := range points {
		xs[i] = fmt.Sprintf("%d", p.ChainLen)
		meanTimes[i] = opts.LineData{Value: p.MeanUS}
		maxTimes[i] = opts.LineData{Value: p.MaxUS}
		meanTerms[i] = opts.LineData{Value: p.MeanTerms}
	}

	timing := charts.NewLine()
	timing.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Evaluation time vs chain length"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "microseconds"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "chain length"}),
	)
	timing.SetXAxis(xs).
		AddSeries("mean", meanTimes).
		AddSeries("max", maxTimes)

	size := charts.NewLine()
	size.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Canonical-form terms vs chain length"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "terms"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "chain length"}),
	)
	size.SetXAxis(xs).AddSeries("mean terms", meanTerms)

	page := components.NewPage()
	page.AddCharts(timing, size)

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return page.Render(f)
}

func dumpCounters() {
	snap := measureutil.SnapshotAndReset()
	keys := make([]string, 0, len(snap))
	for k := range snap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("  %-32s %10d\n", k, snap[k])
	}
}

func main() {
	minLen := flag.Int("min", 1, "minimum chain length")
	maxLen := flag.Int("max", 5, "maximum chain length")
	samples := flag.Int("samples", 20, "samples per length")
	seed := flag.String("seed", "dirac-analysis", "PRNG seed; empty for random")
	outPath := flag.String("o", "analysis.html", "output HTML path")
	flag.Parse()

	if *minLen < 1 || *maxLen < *minLen {
		log.Fatalf("analysis: invalid length range [%d, %d]", *minLen, *maxLen)
	}

	// Exercise a fixed end-to-end case first so a broken kernel fails fast.
	res, err := symbolic.Eval("\\gamma^\\mu \\gamma_\\mu", symbolic.RationalMode())
	if err != nil {
		log.Fatalf("analysis: self-check: %v", err)
	}
	if !res.IsScalar(algebra.RatInt(4)) {
		log.Fatalf("analysis: self-check: gamma^mu gamma_mu != 4")
	}

	points, err := runSweep(*minLen, *maxLen, *samples, *seed)
	if err != nil {
		log.Fatalf("analysis: %v", err)
	}
	if err := render(points, *outPath); err != nil {
		log.Fatalf("analysis: render: %v", err)
	}
	fmt.Printf("report written to %s\n", *outPath)

	if measure.Enabled {
		dumpCounters()
	}
}
