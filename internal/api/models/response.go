package models

// SimulateResponse represents the response from a single-case simulation
type SimulateResponse struct {
	Status string     `json:"status"`
	Result CaseResult `json:"result"`
}

// CaseResult contains the simulated distribution summaries for one case
type CaseResult struct {
	Case       string                    `json:"case"`
	Method     string                    `json:"method,omitempty"`
	Acres      float64                   `json:"acres"`
	PerAcre    bool                      `json:"per_acre"`
	Seed       int64                     `json:"seed"`
	Trials     int                       `json:"trials"`
	Components map[string]ComponentStats `json:"components"`
	Samples    map[string][]float64      `json:"samples,omitempty"`
}

// ComponentStats summarizes one value component's simulated distribution
type ComponentStats struct {
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Median float64 `json:"median"`
	P25    float64 `json:"p25"`
	P75    float64 `json:"p75"`
}

// BatchResponse represents the response from a multi-case batch run
type BatchResponse struct {
	Status      string           `json:"status"`
	Results     []CaseResult     `json:"results"`
	Diagnostics []DiagnosticInfo `json:"diagnostics,omitempty"`
	Rankings    []Ranking        `json:"rankings,omitempty"`
}

// DiagnosticInfo reports a case that was skipped or failed in a batch
type DiagnosticInfo struct {
	Case       string `json:"case"`
	Kind       string `json:"kind"` // "skipped", "failed"
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// RankResponse represents the response from ranking cases
type RankResponse struct {
	Rankings    []Ranking        `json:"rankings"`
	Diagnostics []DiagnosticInfo `json:"diagnostics,omitempty"`
}

// Ranking represents one ranked case
type Ranking struct {
	Rank      int     `json:"rank"`
	Case      string  `json:"case"`
	Acres     float64 `json:"acres"`
	MeanTEV   float64 `json:"mean_tev"`
	MedianTEV float64 `json:"median_tev"`
	P25       float64 `json:"p25"`
	P75       float64 `json:"p75"`
}

// CaseInfo represents information about a case preset
type CaseInfo struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	File   string  `json:"file,omitempty"`
	Acres  float64 `json:"acres,omitempty"`
	Source string  `json:"source"` // "builtin", "file"
}

// ZoneInfo represents information about a treatment zone
type ZoneInfo struct {
	Zone  string  `json:"zone"`
	Acres float64 `json:"acres"`
}

// ComponentInfo represents information about a value component
type ComponentInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Units       string `json:"units"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
