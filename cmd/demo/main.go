package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"forest-tev/internal/analysis"
	"forest-tev/internal/data"
	"forest-tev/internal/model"
	"forest-tev/internal/montecarlo"
)

// Demo:
// - Value the three builtin longleaf pine cases against demo zone stats
// - Fixed seed so two runs print identical numbers
// - Shows how the engine, batch runner, and ranking fit together
func main() {
	seed := flag.Int64("seed", 42, "Random seed")
	n := flag.Int("n", 10000, "Trials per case")
	workers := flag.Int("workers", 1, "Worker goroutines per case")
	outCSV := flag.String("out", "", "Optional path to write summary CSV (e.g. results/tev_summary.csv)")
	flag.Parse()

	input := montecarlo.BatchInput{
		Acreage: data.BuiltinAcreage(),
		Params:  data.BuiltinCases(),
		Rows:    data.RowsByZone(data.DemoStats()),
	}

	opts := montecarlo.Options{
		NumSimulations: *n,
		Seed:           *seed,
		Workers:        *workers,
		DiscardSamples: true,
	}

	engine := montecarlo.New()
	batch, err := engine.RunBatch(input, opts)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Valued %d cases (%d trials each, seed=%d)\n", len(batch.Results), *n, *seed)

	for _, res := range batch.Results {
		fmt.Printf("\n%s: %.2f acres, method=%s\n", res.Case, res.Acres, res.Method)
		fmt.Printf("  %-20s %14s %14s %14s %14s %14s\n", "component", "mean", "std", "median", "p25", "p75")
		for _, comp := range model.Components() {
			s := res.Components[comp]
			fmt.Printf("  %-20s %14.2f %14.2f %14.2f %14.2f %14.2f\n",
				string(comp), s.Mean, s.Std, s.Median, s.P25, s.P75)
		}
	}

	for _, d := range batch.Diagnostics {
		fmt.Printf("%s %s: %v\n", d.Kind, d.Case, d.Err)
	}

	ranked := analysis.RankByMeanTEV(batch.CaseSummaries())
	fmt.Printf("\n%-4s %-12s %-10s %14s\n", "rank", "case", "acres", "mean_tev")
	for _, r := range ranked {
		fmt.Printf("%-4d %-12s %-10.2f %14.2f\n", r.Rank, r.Case, r.Acres, r.TEV.Mean)
	}

	if *outCSV != "" {
		if err := os.MkdirAll(filepath.Dir(*outCSV), 0o755); err != nil {
			panic(err)
		}
		if err := montecarlo.WriteResultsCSV(*outCSV, batch.Results); err != nil {
			panic(err)
		}
		fmt.Printf("\nWrote CSV: %s\n", *outCSV)
	}

	fmt.Printf("\nDone.\n")
}
