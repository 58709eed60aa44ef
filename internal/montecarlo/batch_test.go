package montecarlo

import (
	"errors"
	"testing"

	"forest-tev/internal/model"
)

func batchInput() BatchInput {
	return BatchInput{
		Acreage: []model.CaseAcres{
			{Case: "EIA_CS1_LLP", Acres: 651.06},
			{Case: "EIA_CS2_LLP", Acres: 937.02},
			{Case: "EIA_CS3_LLP", Acres: 544.03},
		},
		Params: map[string]model.CaseParameters{
			"EIA_CS1_LLP": mcCase("EIA_CS1_LLP", 0).Params,
			"EIA_CS2_LLP": mcCase("EIA_CS2_LLP", 0).Params,
			"EIA_CS3_LLP": mcCase("EIA_CS3_LLP", 0).Params,
		},
		Rows: map[string]model.InputRow{
			"EIA_CS1_LLP": mcRow("EIA_CS1_LLP"),
			"EIA_CS2_LLP": mcRow("EIA_CS2_LLP"),
			"EIA_CS3_LLP": mcRow("EIA_CS3_LLP"),
		},
	}
}

func batchOptions() Options {
	return Options{NumSimulations: 50, Seed: 42, DiscardSamples: true}
}

func TestRunBatchOrder(t *testing.T) {
	engine := New()
	res, err := engine.RunBatch(batchInput(), batchOptions())
	if err != nil {
		t.Fatalf("RunBatch() error = %v", err)
	}
	if len(res.Results) != 3 {
		t.Fatalf("got %d results, want 3", len(res.Results))
	}
	wantOrder := []string{"EIA_CS1_LLP", "EIA_CS2_LLP", "EIA_CS3_LLP"}
	for i, want := range wantOrder {
		if res.Results[i].Case != want {
			t.Errorf("result %d = %s, want %s (acreage order)", i, res.Results[i].Case, want)
		}
	}
	if len(res.Diagnostics) != 0 {
		t.Errorf("unexpected diagnostics: %+v", res.Diagnostics)
	}
}

func TestRunBatchMissingRow(t *testing.T) {
	in := batchInput()
	delete(in.Rows, "EIA_CS2_LLP")

	engine := New()
	res, err := engine.RunBatch(in, batchOptions())
	if err != nil {
		t.Fatalf("RunBatch() error = %v", err)
	}
	if len(res.Results) != 2 {
		t.Fatalf("got %d results, want 2", len(res.Results))
	}
	if len(res.Diagnostics) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(res.Diagnostics))
	}

	d := res.Diagnostics[0]
	if d.Case != "EIA_CS2_LLP" || d.Kind != DiagnosticSkipped {
		t.Errorf("diagnostic = %+v, want skipped EIA_CS2_LLP", d)
	}
	var missing *model.MissingCaseDataError
	if !errors.As(d.Err, &missing) {
		t.Fatalf("diagnostic error = %v, want MissingCaseDataError", d.Err)
	}
	if missing.Missing != "zone stats" {
		t.Errorf("missing collection = %q, want zone stats", missing.Missing)
	}
}

func TestRunBatchSuggestsNearestName(t *testing.T) {
	in := batchInput()
	// The acreage table misspells CS1; parameters exist only under the
	// correct name.
	in.Acreage[0].Case = "EIA_CS1_LPP"

	engine := New()
	res, err := engine.RunBatch(in, batchOptions())
	if err != nil {
		t.Fatalf("RunBatch() error = %v", err)
	}

	var found *model.MissingCaseDataError
	for _, d := range res.Diagnostics {
		if d.Case == "EIA_CS1_LPP" {
			if !errors.As(d.Err, &found) {
				t.Fatalf("diagnostic error = %v, want MissingCaseDataError", d.Err)
			}
		}
	}
	if found == nil {
		t.Fatal("no diagnostic for the misspelled case")
	}
	if found.Suggestion != "EIA_CS1_LLP" {
		t.Errorf("suggestion = %q, want EIA_CS1_LLP", found.Suggestion)
	}
}

func TestRunBatchExtrasAccounted(t *testing.T) {
	in := batchInput()
	in.Params["SANDHILL_AUX"] = mcCase("SANDHILL_AUX", 0).Params
	in.Rows["LONGLEAF_AUX"] = mcRow("LONGLEAF_AUX")

	engine := New()
	res, err := engine.RunBatch(in, batchOptions())
	if err != nil {
		t.Fatalf("RunBatch() error = %v", err)
	}
	if len(res.Results) != 3 {
		t.Fatalf("got %d results, want 3", len(res.Results))
	}

	// Extras appear as skipped diagnostics, sorted by name.
	if len(res.Diagnostics) != 2 {
		t.Fatalf("got %d diagnostics, want 2: %+v", len(res.Diagnostics), res.Diagnostics)
	}
	if res.Diagnostics[0].Case != "LONGLEAF_AUX" || res.Diagnostics[1].Case != "SANDHILL_AUX" {
		t.Errorf("extras order = %s, %s; want LONGLEAF_AUX, SANDHILL_AUX",
			res.Diagnostics[0].Case, res.Diagnostics[1].Case)
	}
	for _, d := range res.Diagnostics {
		if d.Kind != DiagnosticSkipped {
			t.Errorf("extra %s kind = %s, want skipped", d.Case, d.Kind)
		}
		var missing *model.MissingCaseDataError
		if !errors.As(d.Err, &missing) || missing.Missing != "acreage table" {
			t.Errorf("extra %s error = %v, want missing acreage table entry", d.Case, d.Err)
		}
	}
}

func TestRunBatchFailedCaseContinues(t *testing.T) {
	in := batchInput()
	bad := in.Params["EIA_CS2_LLP"]
	bad.StumpagePrice.Std = -1
	in.Params["EIA_CS2_LLP"] = bad

	engine := New()
	res, err := engine.RunBatch(in, batchOptions())
	if err != nil {
		t.Fatalf("RunBatch() error = %v", err)
	}
	if len(res.Results) != 2 {
		t.Fatalf("got %d results, want 2 (failed case must not abort the batch)", len(res.Results))
	}
	if len(res.Diagnostics) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(res.Diagnostics))
	}
	d := res.Diagnostics[0]
	if d.Case != "EIA_CS2_LLP" || d.Kind != DiagnosticFailed {
		t.Errorf("diagnostic = %+v, want failed EIA_CS2_LLP", d)
	}
	var ipe *model.InvalidParameterError
	if !errors.As(d.Err, &ipe) {
		t.Errorf("diagnostic error = %v, want InvalidParameterError", d.Err)
	}
}

func TestRunBatchInvalidOptionsAbort(t *testing.T) {
	engine := New()
	opts := batchOptions()
	opts.NumSimulations = -1
	res, err := engine.RunBatch(batchInput(), opts)
	if err == nil {
		t.Fatal("invalid options should abort before any case runs")
	}
	if res != nil {
		t.Errorf("result = %+v, want nil on aborted batch", res)
	}
}

func TestRunBatchSharedSeedIndependentStreams(t *testing.T) {
	engine := New()
	res, err := engine.RunBatch(batchInput(), batchOptions())
	if err != nil {
		t.Fatalf("RunBatch() error = %v", err)
	}
	// All cases share identical parameters here, so matching means would
	// indicate the cases drew from one stream.
	m1 := res.Results[0].TEVSummary().Mean
	m2 := res.Results[1].TEVSummary().Mean
	if m1 == m2 {
		t.Error("cases with one run seed should still sample independently")
	}
}

func TestCaseSummaries(t *testing.T) {
	engine := New()
	res, err := engine.RunBatch(batchInput(), batchOptions())
	if err != nil {
		t.Fatalf("RunBatch() error = %v", err)
	}
	summaries := res.CaseSummaries()
	if len(summaries) != 3 {
		t.Fatalf("got %d summaries, want 3", len(summaries))
	}
	for i, s := range summaries {
		if s.Case != res.Results[i].Case {
			t.Errorf("summary %d case = %s, want %s", i, s.Case, res.Results[i].Case)
		}
		if s.TEV != res.Results[i].TEVSummary() {
			t.Errorf("summary %d TEV differs from result", i)
		}
		if s.Acres != res.Results[i].Acres {
			t.Errorf("summary %d acres = %v, want %v", i, s.Acres, res.Results[i].Acres)
		}
	}
}
