package model

import "fmt"

// InvalidParameterError reports a case or input value that violates its
// constraints. It is returned at construction/validation time, before any
// trial runs.
type InvalidParameterError struct {
	Case   string // case name, when known
	Field  string // e.g. "stumpage_price.std"
	Reason string
}

func (e *InvalidParameterError) Error() string {
	if e.Case != "" {
		return fmt.Sprintf("case %q: %s: %s", e.Case, e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func invalidParam(field, reason string) *InvalidParameterError {
	return &InvalidParameterError{Field: field, Reason: reason}
}

// MissingCaseDataError reports a case that appears in one input collection
// but not in another. Batch runs record it as a skipped-case diagnostic
// rather than aborting.
type MissingCaseDataError struct {
	Case       string
	Missing    string // which collection lacks the case, e.g. "zone stats"
	Suggestion string // nearest known name, when one is close enough
}

func (e *MissingCaseDataError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("case %q has no entry in %s (did you mean %q?)", e.Case, e.Missing, e.Suggestion)
	}
	return fmt.Sprintf("case %q has no entry in %s", e.Case, e.Missing)
}

// NumericalInstabilityError reports a value that would make the arithmetic
// itself meaningless, e.g. a discount rate of exactly -1 or a non-positive
// trial count.
type NumericalInstabilityError struct {
	Reason string
}

func (e *NumericalInstabilityError) Error() string {
	return "numerical instability: " + e.Reason
}
