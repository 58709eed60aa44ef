package montecarlo

import (
	"encoding/csv"
	"os"
	"strconv"

	"forest-tev/internal/model"
)

// WriteResultsCSV writes one row per case with the five summary statistics
// of every component. Column order follows model.Components.
func WriteResultsCSV(path string, results []*Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"case", "method", "acres", "per_acre", "trials"}
	for _, comp := range model.Components() {
		name := string(comp)
		header = append(header,
			name+"_mean",
			name+"_std",
			name+"_median",
			name+"_p25",
			name+"_p75",
		)
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range results {
		row := []string{
			r.Case,
			r.Method,
			fmtFloat(r.Acres),
			strconv.FormatBool(r.PerAcre),
			strconv.Itoa(r.Trials),
		}
		for _, comp := range model.Components() {
			s := r.Components[comp]
			row = append(row,
				fmtFloat(s.Mean),
				fmtFloat(s.Std),
				fmtFloat(s.Median),
				fmtFloat(s.P25),
				fmtFloat(s.P75),
			)
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

// WriteSamplesCSV writes the raw per-trial component values of one case,
// one row per trial. Fails when the run discarded its samples.
func WriteSamplesCSV(path string, r *Result) error {
	if r.Samples == nil {
		return &model.MissingCaseDataError{Case: r.Case, Missing: "raw samples (run discarded them)"}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"trial"}
	for _, comp := range model.Components() {
		header = append(header, string(comp))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i := 0; i < r.Trials; i++ {
		row := []string{strconv.Itoa(i)}
		for _, comp := range model.Components() {
			row = append(row, fmtFloat(r.Samples[comp][i]))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
