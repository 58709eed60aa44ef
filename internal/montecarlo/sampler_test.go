package montecarlo

import (
	"errors"
	"testing"

	"golang.org/x/exp/rand"

	"forest-tev/internal/model"
)

func TestSeedDerivation(t *testing.T) {
	if seedWord(42, "a") != seedWord(42, "a") {
		t.Error("seedWord not deterministic")
	}
	if seedWord(42, "a") == seedWord(42, "b") {
		t.Error("different salts should give different words")
	}
	if seedWord(42, "a") == seedWord(43, "a") {
		t.Error("different seeds should give different words")
	}

	cs := caseSeed(42, "EIA_CS1_LLP")
	if cs == caseSeed(42, "EIA_CS2_LLP") {
		t.Error("different cases should draw from different streams")
	}
	if trialSeed(cs, 0) == trialSeed(cs, 1) {
		t.Error("different trials should draw from different streams")
	}
}

func TestSampleDeterministic(t *testing.T) {
	n := model.Normal{Mean: 10, Std: 2}
	a, err := Sample(n, rand.NewSource(7))
	if err != nil {
		t.Fatalf("Sample() error = %v", err)
	}
	b, err := Sample(n, rand.NewSource(7))
	if err != nil {
		t.Fatalf("Sample() error = %v", err)
	}
	if a != b {
		t.Errorf("same source seed gave %v and %v", a, b)
	}
}

func TestSampleZeroStd(t *testing.T) {
	got, err := Sample(model.Normal{Mean: 375.0}, rand.NewSource(1))
	if err != nil {
		t.Fatalf("Sample() error = %v", err)
	}
	if got != 375.0 {
		t.Errorf("Sample(std=0) = %v, want exactly 375.0", got)
	}
}

func TestSampleNegativeStd(t *testing.T) {
	_, err := Sample(model.Normal{Mean: 1, Std: -1}, rand.NewSource(1))
	var ipe *model.InvalidParameterError
	if !errors.As(err, &ipe) {
		t.Fatalf("Sample(std<0) error = %v, want InvalidParameterError", err)
	}
}

func TestSampleFloored(t *testing.T) {
	got, err := SampleFloored(model.Normal{Mean: -100}, rand.NewSource(1))
	if err != nil {
		t.Fatalf("SampleFloored() error = %v", err)
	}
	if got != 0 {
		t.Errorf("SampleFloored(mean=-100, std=0) = %v, want 0", got)
	}

	got, err = SampleFloored(model.Normal{Mean: 100}, rand.NewSource(1))
	if err != nil {
		t.Fatalf("SampleFloored() error = %v", err)
	}
	if got != 100 {
		t.Errorf("SampleFloored(mean=100, std=0) = %v, want 100", got)
	}
}

func TestTrialSamplerDeterminism(t *testing.T) {
	c := mcCase("EIA_CS2_LLP", 937.02)
	row := mcRow("EIA_CS2_LLP")

	a, err := NewTrialSampler(c, row, 42, 1)
	if err != nil {
		t.Fatalf("NewTrialSampler() error = %v", err)
	}
	b, err := NewTrialSampler(c, row, 42, 1)
	if err != nil {
		t.Fatalf("NewTrialSampler() error = %v", err)
	}

	if a.Trial(5) != b.Trial(5) {
		t.Error("same seed and trial should give identical draws")
	}
	if a.Trial(0) == a.Trial(1) {
		t.Error("different trials should give different draws")
	}

	other, err := NewTrialSampler(c, row, 43, 1)
	if err != nil {
		t.Fatalf("NewTrialSampler() error = %v", err)
	}
	if a.Trial(0) == other.Trial(0) {
		t.Error("different run seeds should give different draws")
	}
}

func TestTrialSamplerCaseStreams(t *testing.T) {
	row := mcRow("zone")
	a, err := NewTrialSampler(mcCase("CASE_A", 100), row, 42, 1)
	if err != nil {
		t.Fatalf("NewTrialSampler() error = %v", err)
	}
	b, err := NewTrialSampler(mcCase("CASE_B", 100), row, 42, 1)
	if err != nil {
		t.Fatalf("NewTrialSampler() error = %v", err)
	}
	if a.Trial(0).StumpagePrice == b.Trial(0).StumpagePrice {
		t.Error("identically parameterized cases should still draw from per-case streams")
	}
}

func TestTrialSamplerVolume(t *testing.T) {
	c := mcCase("EIA_CS2_LLP", 937.02)
	row := mcRow("EIA_CS2_LLP")

	s, err := NewTrialSampler(c, row, 42, 0.9)
	if err != nil {
		t.Fatalf("NewTrialSampler() error = %v", err)
	}
	want := row.BiomassMean * 0.9
	if got := s.Trial(0).ImpliedVolume; got != want {
		t.Errorf("ImpliedVolume = %v, want %v", got, want)
	}
	if s.Trial(0).ImpliedVolume != s.Trial(99).ImpliedVolume {
		t.Error("implied volume must stay fixed across trials")
	}

	// Factor <= 0 falls back to 1.
	s, err = NewTrialSampler(c, row, 42, 0)
	if err != nil {
		t.Fatalf("NewTrialSampler() error = %v", err)
	}
	if got := s.Trial(0).ImpliedVolume; got != row.BiomassMean {
		t.Errorf("ImpliedVolume = %v, want %v", got, row.BiomassMean)
	}
}

func TestTrialSamplerStumpageFloor(t *testing.T) {
	c := mcCase("EIA_CS2_LLP", 937.02)
	c.Params.StumpagePrice = model.Normal{Mean: 0.1, Std: 5}
	row := mcRow("EIA_CS2_LLP")

	s, err := NewTrialSampler(c, row, 42, 1)
	if err != nil {
		t.Fatalf("NewTrialSampler() error = %v", err)
	}
	for i := 0; i < 200; i++ {
		if got := s.Trial(i).StumpagePrice; got < 0 {
			t.Fatalf("trial %d stumpage = %v, want >= 0", i, got)
		}
	}
}

func TestNewTrialSamplerValidates(t *testing.T) {
	c := mcCase("EIA_CS2_LLP", 937.02)
	c.Params.StumpagePrice.Std = -1
	if _, err := NewTrialSampler(c, mcRow("z"), 42, 1); err == nil {
		t.Error("invalid case should fail sampler construction")
	}

	row := mcRow("z")
	row.CreditPrice = -1
	if _, err := NewTrialSampler(mcCase("EIA_CS2_LLP", 937.02), row, 42, 1); err == nil {
		t.Error("invalid row should fail sampler construction")
	}
}
