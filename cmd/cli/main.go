package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"forest-tev/internal/analysis"
	"forest-tev/internal/config"
	"forest-tev/internal/data"
	"forest-tev/internal/model"
	"forest-tev/internal/montecarlo"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "simulate":
		cmdSimulate(os.Args[2:])
	case "batch":
		cmdBatch(os.Args[2:])
	case "rank":
		cmdRank(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli simulate --case EIA_CS1_LLP --config examples/config.yaml --out results/eia_cs1.csv")
	fmt.Println("  cli batch --config examples/config.yaml --out results/tev_summary.csv")
	fmt.Println("  cli rank --config examples/config.yaml")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - simulate values one case; batch values every case in the acreage table")
	fmt.Println("  - rank orders cases by mean total economic value")
	fmt.Println("  - without --config, builtin cases and demo zone stats are used")
}

func cmdSimulate(args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	caseName := fs.String("case", "", "Case name to simulate")
	cfgPath := fs.String("config", "", "Path to YAML config")
	statsPath := fs.String("stats", "", "Path to zone stats JSON (overrides config)")
	acres := fs.Float64("acres", -1, "Treated acreage (0 = per-acre, -1 = from acreage table)")
	seed := fs.Int64("seed", 0, "Random seed (0 = time-based)")
	n := fs.Int("n", 0, "Trials per case (0 = config or 10000)")
	outPath := fs.String("out", "", "Optional: write summary CSV here")
	samplesPath := fs.String("samples", "", "Optional: write per-trial samples CSV here")
	_ = fs.Parse(args)

	if *caseName == "" {
		fmt.Println("--case is required")
		os.Exit(2)
	}

	cfg := loadConfig(*cfgPath)
	params := loadParams(cfg, "")
	rows := loadStats(cfg, *statsPath)
	opts := buildOptions(cfg, *seed, *n)
	if *samplesPath != "" {
		opts.DiscardSamples = false
	}

	p, ok := params[*caseName]
	if !ok {
		panic(missingCase(*caseName, params))
	}
	row, ok := rows[*caseName]
	if !ok {
		panic(missingRow(*caseName, rows))
	}

	caseAcres := *acres
	if caseAcres < 0 {
		caseAcres = lookupAcres(cfg, *caseName)
	}

	kase, err := model.NewCase(*caseName, p, caseAcres)
	if err != nil {
		panic(err)
	}

	engine := montecarlo.New()
	res, err := engine.Run(kase, row, opts)
	if err != nil {
		panic(err)
	}

	printResult(res)

	if *outPath != "" {
		writeResults(*outPath, []*montecarlo.Result{res})
	}
	if *samplesPath != "" {
		if err := os.MkdirAll(filepath.Dir(*samplesPath), 0o755); err != nil {
			panic(err)
		}
		if err := montecarlo.WriteSamplesCSV(*samplesPath, res); err != nil {
			panic(err)
		}
		fmt.Printf("Wrote %d sample rows to %s\n", res.Trials, *samplesPath)
	}
}

func cmdBatch(args []string) {
	fs := flag.NewFlagSet("batch", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	casesPath := fs.String("cases", "", "Path to cases YAML (overrides config)")
	statsPath := fs.String("stats", "", "Path to zone stats JSON (overrides config)")
	zonesPath := fs.String("zones", "", "Path to acreage JSON (overrides config)")
	seed := fs.Int64("seed", 0, "Random seed (0 = time-based)")
	n := fs.Int("n", 0, "Trials per case (0 = config or 10000)")
	outPath := fs.String("out", "results/tev_summary.csv", "Output CSV path")
	samplesDir := fs.String("samples-dir", "", "Optional: write per-case sample CSVs here")
	_ = fs.Parse(args)

	cfg := loadConfig(*cfgPath)
	opts := buildOptions(cfg, *seed, *n)
	if *samplesDir != "" {
		opts.DiscardSamples = false
	}

	input := montecarlo.BatchInput{
		Acreage: loadAcreage(cfg, *zonesPath),
		Params:  loadParams(cfg, *casesPath),
		Rows:    loadStats(cfg, *statsPath),
	}

	engine := montecarlo.New()
	batch, err := engine.RunBatch(input, opts)
	if err != nil {
		panic(err)
	}

	for _, res := range batch.Results {
		printResult(res)
	}
	printDiagnostics(batch.Diagnostics)
	printRankings(analysis.RankByMeanTEV(batch.CaseSummaries()))

	writeResults(*outPath, batch.Results)

	if *samplesDir != "" {
		if err := os.MkdirAll(*samplesDir, 0o755); err != nil {
			panic(err)
		}
		for _, res := range batch.Results {
			path := filepath.Join(*samplesDir, res.Case+"_samples.csv")
			if err := montecarlo.WriteSamplesCSV(path, res); err != nil {
				panic(err)
			}
			fmt.Printf("Wrote %d sample rows to %s\n", res.Trials, path)
		}
	}
}

func cmdRank(args []string) {
	fs := flag.NewFlagSet("rank", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	casesPath := fs.String("cases", "", "Path to cases YAML (overrides config)")
	statsPath := fs.String("stats", "", "Path to zone stats JSON (overrides config)")
	zonesPath := fs.String("zones", "", "Path to acreage JSON (overrides config)")
	seed := fs.Int64("seed", 0, "Random seed (0 = time-based)")
	n := fs.Int("n", 0, "Trials per case (0 = config or 10000)")
	_ = fs.Parse(args)

	cfg := loadConfig(*cfgPath)
	opts := buildOptions(cfg, *seed, *n)
	opts.DiscardSamples = true

	input := montecarlo.BatchInput{
		Acreage: loadAcreage(cfg, *zonesPath),
		Params:  loadParams(cfg, *casesPath),
		Rows:    loadStats(cfg, *statsPath),
	}

	engine := montecarlo.New()
	batch, err := engine.RunBatch(input, opts)
	if err != nil {
		panic(err)
	}

	printDiagnostics(batch.Diagnostics)
	printRankings(analysis.RankByMeanTEV(batch.CaseSummaries()))
}

// loadConfig loads and validates a config, or returns an empty one when no
// path is given so flag and builtin defaults apply.
func loadConfig(path string) *config.Config {
	if path == "" {
		return &config.Config{}
	}
	cfg, err := config.Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

func buildOptions(cfg *config.Config, seed int64, n int) montecarlo.Options {
	opts := cfg.EngineOptions()
	if seed != 0 {
		opts.Seed = seed
	}
	if n > 0 {
		opts.NumSimulations = n
	}
	return opts
}

// loadParams resolves case parameters: explicit flag path, then the config's
// cases file, then builtins. Config overrides apply on top of the result.
func loadParams(cfg *config.Config, flagPath string) map[string]model.CaseParameters {
	path := flagPath
	if path == "" {
		path = cfg.CasesFile
	}

	var cases map[string]model.CaseParameters
	if path != "" {
		loaded, err := config.LoadCases(path)
		if err != nil {
			panic(err)
		}
		cases = loaded
	} else {
		cases = data.BuiltinCases()
	}

	merged, err := config.ApplyOverrides(cases, cfg.Overrides)
	if err != nil {
		panic(err)
	}
	return merged
}

// loadStats resolves zone stats: explicit flag path, then the config's stats
// file, then the demo snapshot. A configured credit price replaces the price
// on every row.
func loadStats(cfg *config.Config, flagPath string) map[string]model.InputRow {
	path := flagPath
	if path == "" {
		path = cfg.StatsFile
	}

	var rows map[string]model.InputRow
	if path != "" {
		resp, err := data.LoadZoneStats(path)
		if err != nil {
			panic(err)
		}
		rows = data.StatsByZone(resp)
	} else {
		rows = data.RowsByZone(data.DemoStats())
	}

	return data.ApplyCreditPrice(rows, cfg.Carbon.CreditPricePerTon)
}

// loadAcreage resolves the acreage table: explicit flag path, then the
// config's zones file, then builtin acreage.
func loadAcreage(cfg *config.Config, flagPath string) []model.CaseAcres {
	path := flagPath
	if path == "" {
		path = cfg.ZonesFile
	}

	if path != "" {
		zf, err := data.LoadZones(path)
		if err != nil {
			panic(err)
		}
		return zf.Zones
	}
	return data.BuiltinAcreage()
}

func lookupAcres(cfg *config.Config, name string) float64 {
	for _, entry := range loadAcreage(cfg, "") {
		if entry.Case == name {
			return entry.Acres
		}
	}
	return 0
}

func missingCase(name string, params map[string]model.CaseParameters) error {
	names := make([]string, 0, len(params))
	for n := range params {
		names = append(names, n)
	}
	err := &model.MissingCaseDataError{Case: name, Missing: "case parameters"}
	if s, ok := model.NearestName(name, names); ok {
		err.Suggestion = s
	}
	return err
}

func missingRow(name string, rows map[string]model.InputRow) error {
	names := make([]string, 0, len(rows))
	for n := range rows {
		names = append(names, n)
	}
	err := &model.MissingCaseDataError{Case: name, Missing: "zone stats"}
	if s, ok := model.NearestName(name, names); ok {
		err.Suggestion = s
	}
	return err
}

func printResult(res *montecarlo.Result) {
	scale := "total $"
	if res.PerAcre {
		scale = "$/acre"
	}
	fmt.Printf("\n%s: %d trials, %.2f acres, seed=%d (%s)\n", res.Case, res.Trials, res.Acres, res.Seed, scale)
	fmt.Printf("%-20s %14s %14s %14s %14s %14s\n", "component", "mean", "std", "median", "p25", "p75")
	for _, comp := range model.Components() {
		s := res.Components[comp]
		fmt.Printf("%-20s %14.2f %14.2f %14.2f %14.2f %14.2f\n",
			string(comp), s.Mean, s.Std, s.Median, s.P25, s.P75)
	}
}

func printDiagnostics(diags []montecarlo.Diagnostic) {
	for _, d := range diags {
		fmt.Printf("%s %s: %v\n", d.Kind, d.Case, d.Err)
	}
}

func printRankings(ranked []analysis.RankedCase) {
	if len(ranked) == 0 {
		return
	}
	fmt.Printf("\n%-4s %-12s %-10s %14s %14s %14s\n", "rank", "case", "acres", "mean_tev", "p25", "p75")
	for _, r := range ranked {
		fmt.Printf("%-4d %-12s %-10.2f %14.2f %14.2f %14.2f\n",
			r.Rank, r.Case, r.Acres, r.TEV.Mean, r.TEV.P25, r.TEV.P75)
	}
}

func writeResults(outPath string, results []*montecarlo.Result) {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		panic(err)
	}
	if err := montecarlo.WriteResultsCSV(outPath, results); err != nil {
		panic(err)
	}
	fmt.Printf("Wrote %d rows to %s\n", len(results), outPath)
}
