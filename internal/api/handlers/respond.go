package handlers

import (
	"errors"
	"net/http"

	"forest-tev/internal/analysis"
	"forest-tev/internal/api/models"
	"forest-tev/internal/model"
	"forest-tev/internal/montecarlo"

	"github.com/gin-gonic/gin"
)

// writeError maps engine errors onto the API error envelope.
func writeError(c *gin.Context, err error) {
	var invalid *model.InvalidParameterError
	if errors.As(err, &invalid) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_PARAMETERS",
				Message: invalid.Error(),
				Details: map[string]interface{}{
					"case":  invalid.Case,
					"field": invalid.Field,
				},
			},
		})
		return
	}

	var missing *model.MissingCaseDataError
	if errors.As(err, &missing) {
		details := map[string]interface{}{
			"case":    missing.Case,
			"missing": missing.Missing,
		}
		if missing.Suggestion != "" {
			details["suggestion"] = missing.Suggestion
		}
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "UNKNOWN_CASE",
				Message: missing.Error(),
				Details: details,
			},
		})
		return
	}

	var unstable *model.NumericalInstabilityError
	if errors.As(err, &unstable) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "NUMERICAL_INSTABILITY",
				Message: unstable.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "SIMULATION_ERROR",
			Message: err.Error(),
		},
	})
}

// convertResult flattens an engine result for the JSON response.
func convertResult(r *montecarlo.Result) models.CaseResult {
	out := models.CaseResult{
		Case:       r.Case,
		Method:     r.Method,
		Acres:      r.Acres,
		PerAcre:    r.PerAcre,
		Seed:       r.Seed,
		Trials:     r.Trials,
		Components: make(map[string]models.ComponentStats, len(r.Components)),
	}
	for component, summary := range r.Components {
		out.Components[string(component)] = convertSummary(summary)
	}
	if r.Samples != nil {
		out.Samples = make(map[string][]float64, len(r.Samples))
		for component, samples := range r.Samples {
			out.Samples[string(component)] = samples
		}
	}
	return out
}

func convertSummary(s analysis.Summary) models.ComponentStats {
	return models.ComponentStats{
		Mean:   s.Mean,
		Std:    s.Std,
		Median: s.Median,
		P25:    s.P25,
		P75:    s.P75,
	}
}

// convertDiagnostics reports skipped and failed batch cases, surfacing any
// name suggestion separately so clients can offer a correction.
func convertDiagnostics(diags []montecarlo.Diagnostic) []models.DiagnosticInfo {
	out := make([]models.DiagnosticInfo, 0, len(diags))
	for _, d := range diags {
		info := models.DiagnosticInfo{
			Case: d.Case,
			Kind: string(d.Kind),
		}
		if d.Err != nil {
			info.Message = d.Err.Error()
			var missing *model.MissingCaseDataError
			if errors.As(d.Err, &missing) {
				info.Suggestion = missing.Suggestion
			}
		}
		out = append(out, info)
	}
	return out
}

func convertRankings(ranked []analysis.RankedCase) []models.Ranking {
	out := make([]models.Ranking, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, models.Ranking{
			Rank:      r.Rank,
			Case:      r.Case,
			Acres:     r.Acres,
			MeanTEV:   r.TEV.Mean,
			MedianTEV: r.TEV.Median,
			P25:       r.TEV.P25,
			P75:       r.TEV.P75,
		})
	}
	return out
}
