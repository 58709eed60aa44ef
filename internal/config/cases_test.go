package config

import (
	"errors"
	"strings"
	"testing"

	"forest-tev/internal/model"
)

func baseParams() model.CaseParameters {
	return model.CaseParameters{
		StumpagePrice:        model.Normal{Mean: 21.0, Std: 3.0},
		RegenerationCost:     model.Normal{Mean: 200.0, Std: 30.0},
		WaterQualityValue:    model.Normal{Mean: 100.16, Std: 1.38},
		EndangeredSpeciesWTP: model.Normal{Mean: 6.685, Std: 2.0},
		LeaseRevenue:         []float64{200, 100, 50, 20, 10},
		LeaseHorizonYears:    5,
		DiscountRate:         0.055,
	}
}

func TestLoadCases(t *testing.T) {
	path := writeFile(t, t.TempDir(), "cases.yaml", testCasesYAML)

	cases, err := LoadCases(path)
	if err != nil {
		t.Fatalf("LoadCases() error = %v", err)
	}
	if len(cases) != 1 {
		t.Fatalf("got %d cases, want 1", len(cases))
	}

	got, ok := cases["EIA_CS2_LLP"]
	if !ok {
		t.Fatal("EIA_CS2_LLP not loaded")
	}
	if got.StumpagePrice != (model.Normal{Mean: 21.0, Std: 3.0}) {
		t.Errorf("StumpagePrice = %+v", got.StumpagePrice)
	}
	if got.LeaseHorizonYears != 5 || len(got.LeaseRevenue) != 5 {
		t.Errorf("lease horizon/revenue = %d/%d", got.LeaseHorizonYears, len(got.LeaseRevenue))
	}
	if got.DiscountRate != 0.055 {
		t.Errorf("DiscountRate = %v, want 0.055", got.DiscountRate)
	}
}

func TestLoadCasesRejectsUnknownKey(t *testing.T) {
	// A mistyped parameter name must fail loudly, not silently zero the
	// parameter.
	const mistyped = `cases:
  EIA_CS2_LLP:
    stumpage_pric: {mean: 21.0, std: 3.0}
`
	path := writeFile(t, t.TempDir(), "cases.yaml", mistyped)

	_, err := LoadCases(path)
	if err == nil {
		t.Fatal("LoadCases() accepted an unknown key")
	}
	if !strings.Contains(err.Error(), "stumpage_pric") {
		t.Errorf("error should name the offending key, got %v", err)
	}
}

func TestLoadCasesMissingFile(t *testing.T) {
	if _, err := LoadCases("does/not/exist.yaml"); err == nil {
		t.Fatal("LoadCases() on a missing file should error")
	}
}

func TestMergeCase(t *testing.T) {
	override := CaseOverride{
		StumpagePrice: &model.Normal{Mean: 30, Std: 4},
	}
	got := MergeCase(baseParams(), override)

	if got.StumpagePrice != (model.Normal{Mean: 30, Std: 4}) {
		t.Errorf("StumpagePrice = %+v, want override", got.StumpagePrice)
	}
	if got.RegenerationCost != baseParams().RegenerationCost {
		t.Errorf("RegenerationCost = %+v, want base value", got.RegenerationCost)
	}
	if got.LeaseHorizonYears != 5 {
		t.Errorf("LeaseHorizonYears = %d, want untouched 5", got.LeaseHorizonYears)
	}
}

func TestMergeCaseLeaseRevenueSyncsHorizon(t *testing.T) {
	got := MergeCase(baseParams(), CaseOverride{LeaseRevenue: []float64{80, 40}})
	if got.LeaseHorizonYears != 2 {
		t.Errorf("LeaseHorizonYears = %d, want 2 to match the new stream", got.LeaseHorizonYears)
	}

	horizon := 2
	got = MergeCase(baseParams(), CaseOverride{
		LeaseRevenue:      []float64{80, 40},
		LeaseHorizonYears: &horizon,
	})
	if got.LeaseHorizonYears != 2 {
		t.Errorf("LeaseHorizonYears = %d, want explicit 2", got.LeaseHorizonYears)
	}
}

func TestApplyOverrides(t *testing.T) {
	cases := map[string]model.CaseParameters{"EIA_CS2_LLP": baseParams()}
	rate := 0.07
	out, err := ApplyOverrides(cases, map[string]CaseOverride{
		"EIA_CS2_LLP": {DiscountRate: &rate},
	})
	if err != nil {
		t.Fatalf("ApplyOverrides() error = %v", err)
	}
	if out["EIA_CS2_LLP"].DiscountRate != 0.07 {
		t.Errorf("DiscountRate = %v, want 0.07", out["EIA_CS2_LLP"].DiscountRate)
	}
	if cases["EIA_CS2_LLP"].DiscountRate != 0.055 {
		t.Error("ApplyOverrides mutated its input map")
	}
}

func TestApplyOverridesUnknownTarget(t *testing.T) {
	cases := map[string]model.CaseParameters{"EIA_CS2_LLP": baseParams()}
	_, err := ApplyOverrides(cases, map[string]CaseOverride{
		"EIA_CS2_LPP": {},
	})

	var missing *model.MissingCaseDataError
	if !errors.As(err, &missing) {
		t.Fatalf("error = %v, want MissingCaseDataError", err)
	}
	if missing.Suggestion != "EIA_CS2_LLP" {
		t.Errorf("Suggestion = %q, want EIA_CS2_LLP", missing.Suggestion)
	}
}

func TestApplyOverridesEmpty(t *testing.T) {
	cases := map[string]model.CaseParameters{"EIA_CS2_LLP": baseParams()}
	out, err := ApplyOverrides(cases, nil)
	if err != nil {
		t.Fatalf("ApplyOverrides() error = %v", err)
	}
	if len(out) != 1 {
		t.Errorf("got %d cases, want 1", len(out))
	}
}
