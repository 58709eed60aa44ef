package montecarlo

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"forest-tev/internal/model"
)

// Sample draws one value from the normal distribution described by n using
// the given source. A zero std yields the mean exactly.
func Sample(n model.Normal, src rand.Source) (float64, error) {
	if n.Std < 0 {
		return 0, &model.InvalidParameterError{Field: "std", Reason: "must be >= 0"}
	}
	d := distuv.Normal{Mu: n.Mean, Sigma: n.Std, Src: src}
	return d.Rand(), nil
}

// SampleFloored draws like Sample but clamps negative values to zero, for
// physically non-negative quantities such as prices.
func SampleFloored(n model.Normal, src rand.Source) (float64, error) {
	v, err := Sample(n, src)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		v = 0
	}
	return v, nil
}

// TrialSampler produces the parameter draws for one case. Each trial gets a
// fresh PRNG source derived from (case seed, trial index). Draw order within
// a trial is fixed: stumpage price, regeneration cost, water quality,
// species WTP, carbon change.
//
// Stumpage price draws are floored at zero. Regeneration cost, service
// values and carbon change stay unclamped: a negative cost is a subsidy, a
// negative service value a disamenity, a negative carbon change an emission
// liability.
type TrialSampler struct {
	caseSeed uint64
	params   model.CaseParameters
	carbon   model.Normal
	volume   float64
	credit   float64
}

// NewTrialSampler validates the case and input row and binds them to the run
// seed. The implied timber volume is the row's biomass mean scaled by
// volumeFactor; it is fixed for the whole run, never resampled.
func NewTrialSampler(c *model.Case, row model.InputRow, runSeed int64, volumeFactor float64) (*TrialSampler, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := row.Validate(); err != nil {
		return nil, err
	}
	if volumeFactor <= 0 {
		volumeFactor = 1
	}
	return &TrialSampler{
		caseSeed: caseSeed(runSeed, c.Name),
		params:   c.Params,
		carbon:   row.CarbonStats(),
		volume:   row.BiomassMean * volumeFactor,
		credit:   row.CreditPrice,
	}, nil
}

// Trial draws the sample for trial index i. Stds were validated at
// construction, so the individual draws cannot fail.
func (s *TrialSampler) Trial(i int) model.TrialSample {
	src := rand.NewSource(trialSeed(s.caseSeed, i))
	stumpage, _ := SampleFloored(s.params.StumpagePrice, src)
	regen, _ := Sample(s.params.RegenerationCost, src)
	water, _ := Sample(s.params.WaterQualityValue, src)
	wtp, _ := Sample(s.params.EndangeredSpeciesWTP, src)
	carbon, _ := Sample(s.carbon, src)
	return model.TrialSample{
		StumpagePrice:    stumpage,
		RegenerationCost: regen,
		WaterQuality:     water,
		SpeciesWTP:       wtp,
		CarbonChange:     carbon,
		ImpliedVolume:    s.volume,
		CreditPrice:      s.credit,
	}
}
