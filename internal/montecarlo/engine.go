package montecarlo

import (
	"fmt"
	"sync"

	"forest-tev/internal/analysis"
	"forest-tev/internal/model"
)

// DefaultNumSimulations is the trial count used when options leave it unset.
const DefaultNumSimulations = 10000

// Options control one simulation run. Zero values for NumSimulations,
// Workers, VolumeFactor and Ecosystem mean "use the default"; a negative
// NumSimulations is rejected.
type Options struct {
	NumSimulations int
	Seed           int64
	Workers        int
	VolumeFactor   float64
	Ecosystem      model.EcosystemMode
	DiscardSamples bool
}

func (o Options) withDefaults() Options {
	if o.NumSimulations == 0 {
		o.NumSimulations = DefaultNumSimulations
	}
	if o.Workers <= 0 {
		o.Workers = 1
	}
	if o.VolumeFactor <= 0 {
		o.VolumeFactor = 1
	}
	if o.Ecosystem == "" {
		o.Ecosystem = model.EcosystemAnnuity
	}
	return o
}

func (o Options) validate() error {
	if o.NumSimulations <= 0 {
		return &model.NumericalInstabilityError{Reason: fmt.Sprintf("num_simulations must be >= 1, got %d", o.NumSimulations)}
	}
	if _, err := model.ParseEcosystemMode(string(o.Ecosystem)); err != nil {
		return err
	}
	return nil
}

type Engine struct{}

func New() *Engine { return &Engine{} }

// Run executes the Monte Carlo valuation for a single case. All validation
// happens before the first trial; a validation or trial failure returns an
// error and no samples. Trials are independent, so Workers > 1 splits the
// trial index range across goroutines writing disjoint slice indices, with
// results bit-identical to the serial run.
func (e *Engine) Run(c *model.Case, row model.InputRow, opts Options) (*Result, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}

	sampler, err := NewTrialSampler(c, row, opts.Seed, opts.VolumeFactor)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Case:    c.Name,
		Method:  row.Method,
		Acres:   c.Acres,
		PerAcre: c.Acres == 0,
		Seed:    opts.Seed,
		Trials:  opts.NumSimulations,
		State:   StateInitialized,
	}

	n := opts.NumSimulations
	timber := make([]float64, n)
	carbon := make([]float64, n)
	eco := make([]float64, n)
	land := make([]float64, n)
	total := make([]float64, n)

	runTrial := func(i int) error {
		s := sampler.Trial(i)
		v, err := c.Valuate(s, opts.Ecosystem)
		if err != nil {
			return fmt.Errorf("trial %d: %w", i, err)
		}
		timber[i] = v.Timber
		carbon[i] = v.CarbonCredits
		eco[i] = v.EcosystemServices
		land[i] = v.LandValue
		total[i] = v.Total
		return nil
	}

	res.State = StateRunning
	workers := opts.Workers
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		for i := 0; i < n; i++ {
			if err := runTrial(i); err != nil {
				res.State = StateFailed
				return nil, err
			}
		}
	} else {
		var wg sync.WaitGroup
		errs := make([]error, workers)
		chunk := (n + workers - 1) / workers
		for w := 0; w < workers; w++ {
			start := w * chunk
			end := start + chunk
			if end > n {
				end = n
			}
			if start >= end {
				continue
			}
			wg.Add(1)
			go func(w, start, end int) {
				defer wg.Done()
				for i := start; i < end; i++ {
					if err := runTrial(i); err != nil {
						errs[w] = err
						return
					}
				}
			}(w, start, end)
		}
		wg.Wait()
		for _, err := range errs {
			if err != nil {
				res.State = StateFailed
				return nil, err
			}
		}
	}

	res.State = StateAggregated
	samples := map[model.Component][]float64{
		model.ComponentTimber:            timber,
		model.ComponentCarbonCredits:     carbon,
		model.ComponentEcosystemServices: eco,
		model.ComponentLandValue:         land,
		model.ComponentTotalTEV:          total,
	}
	res.Components = make(map[model.Component]analysis.Summary, len(samples))
	for comp, vals := range samples {
		res.Components[comp] = analysis.Summarize(vals)
	}
	if !opts.DiscardSamples {
		res.Samples = samples
	}

	res.State = StateComplete
	return res, nil
}
