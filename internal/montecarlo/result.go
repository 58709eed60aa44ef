package montecarlo

import (
	"forest-tev/internal/analysis"
	"forest-tev/internal/model"
)

// State tracks a simulation through its lifecycle. Validation happens in
// initialized, trials in running, statistics in aggregated. A run that fails
// validation or a trial ends failed and yields no samples.
type State string

const (
	StateInitialized State = "initialized"
	StateRunning     State = "running"
	StateAggregated  State = "aggregated"
	StateComplete    State = "complete"
	StateFailed      State = "failed"
)

// Result is the aggregated outcome for one case.
type Result struct {
	Case    string
	Method  string
	Acres   float64
	PerAcre bool // true when Acres == 0 and values are per-acre
	Seed    int64
	Trials  int
	State   State

	// Components maps each component name to its distribution summary.
	Components map[model.Component]analysis.Summary

	// Samples holds the raw per-trial values behind Components, in trial
	// order. Nil when Options.DiscardSamples is set.
	Samples map[model.Component][]float64
}

// TEVSummary returns the total-TEV distribution, the usual ranking key.
func (r *Result) TEVSummary() analysis.Summary {
	return r.Components[model.ComponentTotalTEV]
}
