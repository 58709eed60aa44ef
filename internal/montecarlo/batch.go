package montecarlo

import (
	"sort"

	"forest-tev/internal/analysis"
	"forest-tev/internal/model"
)

// DiagnosticKind classifies why a case produced no result.
type DiagnosticKind string

const (
	// DiagnosticSkipped marks a case missing from one of the inputs.
	DiagnosticSkipped DiagnosticKind = "skipped"
	// DiagnosticFailed marks a case that failed validation or simulation.
	DiagnosticFailed DiagnosticKind = "failed"
)

// Diagnostic records one case that produced no result. Every input case
// appears either in BatchResult.Results or here, never in neither.
type Diagnostic struct {
	Case string
	Kind DiagnosticKind
	Err  error
}

// BatchInput collects the three per-case input collections. The acreage
// table drives membership and output ordering; Params and Rows are keyed by
// case name.
type BatchInput struct {
	Acreage []model.CaseAcres
	Params  map[string]model.CaseParameters
	Rows    map[string]model.InputRow
}

type BatchResult struct {
	Results     []*Result
	Diagnostics []Diagnostic
}

// RunBatch values every case of the acreage table in order. Cases missing
// from the parameter set or stats table become skipped diagnostics with a
// nearest-name suggestion when one is close; invalid cases become failed
// diagnostics. Per-case problems never abort the batch. Invalid options
// abort before any case runs.
func (e *Engine) RunBatch(in BatchInput, opts Options) (*BatchResult, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}

	paramNames := sortedKeys(in.Params)
	rowNames := sortedKeys(in.Rows)
	acreNames := make([]string, 0, len(in.Acreage))
	for _, entry := range in.Acreage {
		acreNames = append(acreNames, entry.Case)
	}

	out := &BatchResult{}
	seen := make(map[string]bool, len(in.Acreage))
	for _, entry := range in.Acreage {
		seen[entry.Case] = true

		params, ok := in.Params[entry.Case]
		if !ok {
			out.Diagnostics = append(out.Diagnostics, Diagnostic{
				Case: entry.Case,
				Kind: DiagnosticSkipped,
				Err:  missingCase(entry.Case, "case parameters", paramNames),
			})
			continue
		}
		row, ok := in.Rows[entry.Case]
		if !ok {
			out.Diagnostics = append(out.Diagnostics, Diagnostic{
				Case: entry.Case,
				Kind: DiagnosticSkipped,
				Err:  missingCase(entry.Case, "zone stats", rowNames),
			})
			continue
		}

		c, err := model.NewCase(entry.Case, params, entry.Acres)
		if err != nil {
			out.Diagnostics = append(out.Diagnostics, Diagnostic{Case: entry.Case, Kind: DiagnosticFailed, Err: err})
			continue
		}
		res, err := e.Run(c, row, opts)
		if err != nil {
			out.Diagnostics = append(out.Diagnostics, Diagnostic{Case: entry.Case, Kind: DiagnosticFailed, Err: err})
			continue
		}
		out.Results = append(out.Results, res)
	}

	// Names appearing only in the side tables still get accounted for.
	extras := make([]string, 0)
	for name := range in.Params {
		if !seen[name] {
			seen[name] = true
			extras = append(extras, name)
		}
	}
	for name := range in.Rows {
		if !seen[name] {
			seen[name] = true
			extras = append(extras, name)
		}
	}
	sort.Strings(extras)
	for _, name := range extras {
		out.Diagnostics = append(out.Diagnostics, Diagnostic{
			Case: name,
			Kind: DiagnosticSkipped,
			Err:  missingCase(name, "acreage table", acreNames),
		})
	}

	return out, nil
}

// CaseSummaries extracts the total-TEV summaries for ranking.
func (b *BatchResult) CaseSummaries() []analysis.CaseSummary {
	out := make([]analysis.CaseSummary, 0, len(b.Results))
	for _, r := range b.Results {
		out = append(out, analysis.CaseSummary{
			Case:  r.Case,
			Acres: r.Acres,
			TEV:   r.TEVSummary(),
		})
	}
	return out
}

func missingCase(name, collection string, known []string) *model.MissingCaseDataError {
	err := &model.MissingCaseDataError{Case: name, Missing: collection}
	if s, ok := model.NearestName(name, known); ok {
		err.Suggestion = s
	}
	return err
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
