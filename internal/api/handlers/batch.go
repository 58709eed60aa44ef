package handlers

import (
	"net/http"

	"forest-tev/internal/analysis"
	"forest-tev/internal/api/models"
	"forest-tev/internal/data"
	"forest-tev/internal/model"
	"forest-tev/internal/montecarlo"

	"github.com/gin-gonic/gin"
)

// BatchHandler handles multi-case batch simulation requests
type BatchHandler struct{}

// NewBatchHandler creates a new batch handler
func NewBatchHandler() *BatchHandler {
	return &BatchHandler{}
}

// RunBatch handles POST /api/v1/batch
func (h *BatchHandler) RunBatch(c *gin.Context) {
	var req models.BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	input := buildBatchInput(req.Acreage, req.Cases, req.Stats, req.CreditPricePerTon)

	engine := montecarlo.New()
	result, err := engine.RunBatch(input, buildOptions(req.Options))
	if err != nil {
		writeError(c, err)
		return
	}

	results := make([]models.CaseResult, 0, len(result.Results))
	for _, r := range result.Results {
		results = append(results, convertResult(r))
	}

	c.JSON(http.StatusOK, models.BatchResponse{
		Status:      "completed",
		Results:     results,
		Diagnostics: convertDiagnostics(result.Diagnostics),
		Rankings:    convertRankings(analysis.RankByMeanTEV(result.CaseSummaries())),
	})
}

// buildBatchInput assembles engine batch input from request collections.
// Cases named in the acreage table but absent from the request's case map
// fall back to builtin presets; a credit price override replaces the price
// on every stats row. Builtins only backfill names the acreage table
// references, so unreferenced presets do not show up as extras.
func buildBatchInput(acreage []models.AcreageEntry, cases map[string]models.CaseParams, stats []models.InputRowPayload, creditPrice *float64) montecarlo.BatchInput {
	builtins := data.BuiltinCases()
	params := make(map[string]model.CaseParameters, len(acreage))
	for name, p := range cases {
		params[name] = p.ToModelParams()
	}
	for _, a := range acreage {
		if _, ok := params[a.Case]; ok {
			continue
		}
		if p, ok := builtins[a.Case]; ok {
			params[a.Case] = p
		}
	}

	rows := make(map[string]model.InputRow, len(stats))
	for _, payload := range stats {
		row := payload.ToModelRow()
		rows[row.Zone] = row
	}
	if creditPrice != nil {
		rows = data.ApplyCreditPrice(rows, *creditPrice)
	}

	entries := make([]model.CaseAcres, 0, len(acreage))
	for _, a := range acreage {
		entries = append(entries, model.CaseAcres{Case: a.Case, Acres: a.Acres})
	}

	return montecarlo.BatchInput{
		Acreage: entries,
		Params:  params,
		Rows:    rows,
	}
}
