package models

import "forest-tev/internal/model"

// SimulateRequest represents the request body for simulating one case
type SimulateRequest struct {
	Case    string           `json:"case" binding:"required"`
	Acres   float64          `json:"acres,omitempty"` // 0 = per-acre results
	Params  *CaseParams      `json:"params,omitempty"`
	Input   *InputRowPayload `json:"input" binding:"required"`
	Options SimOptions       `json:"options,omitempty"`
}

// NormalParam is a normal distribution given as mean and standard deviation
type NormalParam struct {
	Mean float64 `json:"mean"`
	Std  float64 `json:"std"`
}

// CaseParams defines the economic parameters of a case
type CaseParams struct {
	StumpagePrice        NormalParam `json:"stumpage_price"`         // $/ton
	RegenerationCost     NormalParam `json:"regeneration_cost"`      // $/acre
	WaterQualityValue    NormalParam `json:"water_quality_value"`    // $/acre/year
	EndangeredSpeciesWTP NormalParam `json:"endangered_species_wtp"` // $/acre/year
	LeaseRevenue         []float64   `json:"lease_revenue"`          // $/acre/year per year
	LeaseHorizonYears    int         `json:"lease_horizon_years"`
	DiscountRate         float64     `json:"discount_rate"`
}

// ToModelParams converts the payload to internal case parameters
func (p *CaseParams) ToModelParams() model.CaseParameters {
	return model.CaseParameters{
		StumpagePrice:        model.Normal{Mean: p.StumpagePrice.Mean, Std: p.StumpagePrice.Std},
		RegenerationCost:     model.Normal{Mean: p.RegenerationCost.Mean, Std: p.RegenerationCost.Std},
		WaterQualityValue:    model.Normal{Mean: p.WaterQualityValue.Mean, Std: p.WaterQualityValue.Std},
		EndangeredSpeciesWTP: model.Normal{Mean: p.EndangeredSpeciesWTP.Mean, Std: p.EndangeredSpeciesWTP.Std},
		LeaseRevenue:         p.LeaseRevenue,
		LeaseHorizonYears:    p.LeaseHorizonYears,
		DiscountRate:         p.DiscountRate,
	}
}

// InputRowPayload carries zone-level carbon and biomass statistics
type InputRowPayload struct {
	Zone             string  `json:"zone"`
	Method           string  `json:"method,omitempty"`
	CarbonChangeMean float64 `json:"carbon_change_mean"` // tons CO2e/acre
	CarbonChangeStd  float64 `json:"carbon_change_std"`
	BiomassMean      float64 `json:"biomass_mean"` // tons/acre
	BiomassStd       float64 `json:"biomass_std,omitempty"`
	CreditPrice      float64 `json:"credit_price"` // $/ton CO2e
}

// ToModelRow converts the payload to an internal input row
func (p *InputRowPayload) ToModelRow() model.InputRow {
	return model.InputRow{
		Zone:             p.Zone,
		Method:           p.Method,
		CarbonChangeMean: p.CarbonChangeMean,
		CarbonChangeStd:  p.CarbonChangeStd,
		BiomassMean:      p.BiomassMean,
		BiomassStd:       p.BiomassStd,
		CreditPrice:      p.CreditPrice,
	}
}

// SimOptions contains optional simulation parameters
type SimOptions struct {
	NumSimulations     int     `json:"num_simulations,omitempty"` // 0 = default (10000)
	Seed               *int64  `json:"seed,omitempty"`            // nil = time-based
	Workers            int     `json:"workers,omitempty"`         // 0 = serial
	IncludeSamples     bool    `json:"include_samples,omitempty"` // default: false
	EcosystemValuation string  `json:"ecosystem_valuation,omitempty"`
	TimberVolumeFactor float64 `json:"timber_volume_factor,omitempty"`
}

// BatchRequest represents a request to simulate and compare multiple cases
type BatchRequest struct {
	Acreage           []AcreageEntry        `json:"acreage" binding:"required"`
	Cases             map[string]CaseParams `json:"cases,omitempty"` // omitted cases use builtins
	Stats             []InputRowPayload     `json:"stats" binding:"required"`
	CreditPricePerTon *float64              `json:"credit_price_per_ton,omitempty"`
	Options           SimOptions            `json:"options,omitempty"`
}

// AcreageEntry maps a case name to its treated acreage
type AcreageEntry struct {
	Case  string  `json:"case" binding:"required"`
	Acres float64 `json:"acres"`
}

// RankRequest represents a request to rank cases by mean total economic value
type RankRequest struct {
	Acreage           []AcreageEntry        `json:"acreage" binding:"required"`
	Cases             map[string]CaseParams `json:"cases,omitempty"`
	Stats             []InputRowPayload     `json:"stats" binding:"required"`
	CreditPricePerTon *float64              `json:"credit_price_per_ton,omitempty"`
	Options           SimOptions            `json:"options,omitempty"`
}
