package handlers

import (
	"net/http"
	"time"

	"forest-tev/internal/api/models"
	"forest-tev/internal/data"
	"forest-tev/internal/model"
	"forest-tev/internal/montecarlo"

	"github.com/gin-gonic/gin"
)

// SimulateHandler handles single-case simulation requests
type SimulateHandler struct{}

// NewSimulateHandler creates a new simulate handler
func NewSimulateHandler() *SimulateHandler {
	return &SimulateHandler{}
}

// RunSimulation handles POST /api/v1/simulate
func (h *SimulateHandler) RunSimulation(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	params, err := resolveParams(req.Case, req.Params)
	if err != nil {
		writeError(c, err)
		return
	}

	kase, err := model.NewCase(req.Case, params, req.Acres)
	if err != nil {
		writeError(c, err)
		return
	}

	engine := montecarlo.New()
	result, err := engine.Run(kase, req.Input.ToModelRow(), buildOptions(req.Options))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SimulateResponse{
		Status: "completed",
		Result: convertResult(result),
	})
}

// resolveParams uses request parameters when given, falling back to the
// builtin case presets.
func resolveParams(name string, override *models.CaseParams) (model.CaseParameters, error) {
	if override != nil {
		return override.ToModelParams(), nil
	}
	builtins := data.BuiltinCases()
	params, ok := builtins[name]
	if !ok {
		names := make([]string, 0, len(builtins))
		for n := range builtins {
			names = append(names, n)
		}
		err := &model.MissingCaseDataError{Case: name, Missing: "builtin cases"}
		if s, ok := model.NearestName(name, names); ok {
			err.Suggestion = s
		}
		return model.CaseParameters{}, err
	}
	return params, nil
}

// buildOptions converts request options, resolving an unset seed to the
// current time so repeated requests draw fresh trials.
func buildOptions(opts models.SimOptions) montecarlo.Options {
	seed := time.Now().UnixNano()
	if opts.Seed != nil {
		seed = *opts.Seed
	}
	return montecarlo.Options{
		NumSimulations: opts.NumSimulations,
		Seed:           seed,
		Workers:        opts.Workers,
		VolumeFactor:   opts.TimberVolumeFactor,
		Ecosystem:      model.EcosystemMode(opts.EcosystemValuation),
		DiscardSamples: !opts.IncludeSamples,
	}
}
