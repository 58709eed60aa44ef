package handlers

import (
	"net/http"

	"forest-tev/internal/analysis"
	"forest-tev/internal/api/models"
	"forest-tev/internal/montecarlo"

	"github.com/gin-gonic/gin"
)

// RankHandler handles ranking-related requests
type RankHandler struct{}

// NewRankHandler creates a new rank handler
func NewRankHandler() *RankHandler {
	return &RankHandler{}
}

// RankCases handles POST /api/v1/rank. It runs the same batch as the batch
// endpoint but discards per-trial samples and returns only the ordering.
func (h *RankHandler) RankCases(c *gin.Context) {
	var req models.RankRequest
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

	opts := buildOptions(req.Options)
	opts.DiscardSamples = true

	engine := montecarlo.New()
	result, err := engine.RunBatch(input, opts)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.RankResponse{
		Rankings:    convertRankings(analysis.RankByMeanTEV(result.CaseSummaries())),
		Diagnostics: convertDiagnostics(result.Diagnostics),
	})
}
