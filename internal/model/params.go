package model

import "errors"

// Normal is a (mean, std) pair describing an uncertain parameter.
// Std must be >= 0; a zero std makes the parameter deterministic.
type Normal struct {
	Mean float64 `json:"mean" yaml:"mean"`
	Std  float64 `json:"std" yaml:"std"`
}

// CaseParameters defines the economic parameters of one valuation case.
// Units:
// - StumpagePrice: $/ton of merchantable timber
// - RegenerationCost: $/acre
// - WaterQualityValue: $/acre/year
// - EndangeredSpeciesWTP: $/acre/year (willingness to pay)
// - LeaseRevenue: $/acre/year, one entry per lease year
// - DiscountRate: fraction per year, e.g. 0.06
type CaseParameters struct {
	StumpagePrice        Normal
	RegenerationCost     Normal
	WaterQualityValue    Normal
	EndangeredSpeciesWTP Normal
	LeaseRevenue         []float64
	LeaseHorizonYears    int
	DiscountRate         float64
}

// Case bundles a named parameter set with the acreage it applies to.
// Acres == 0 selects per-acre valuation (no scaling).
type Case struct {
	Name   string
	Params CaseParameters
	Acres  float64
}

func NewCase(name string, params CaseParameters, acres float64) (*Case, error) {
	c := &Case{
		Name:   name,
		Params: params,
		Acres:  acres,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Case) Validate() error {
	if c.Name == "" {
		return c.tag(invalidParam("name", "case name must be non-empty"))
	}
	if c.Acres < 0 {
		return c.tag(invalidParam("acres", "must be >= 0"))
	}
	if err := c.Params.Validate(); err != nil {
		return c.tag(err)
	}
	return nil
}

// tag attaches the case name to validation errors raised by nested fields.
func (c *Case) tag(err error) error {
	var ipe *InvalidParameterError
	if errors.As(err, &ipe) && ipe.Case == "" {
		ipe.Case = c.Name
	}
	return err
}

func (p CaseParameters) Validate() error {
	pairs := []struct {
		field string
		n     Normal
	}{
		{"stumpage_price", p.StumpagePrice},
		{"regeneration_cost", p.RegenerationCost},
		{"water_quality_value", p.WaterQualityValue},
		{"endangered_species_wtp", p.EndangeredSpeciesWTP},
	}
	for _, pr := range pairs {
		if pr.n.Std < 0 {
			return invalidParam(pr.field+".std", "must be >= 0")
		}
	}
	if p.LeaseHorizonYears < 0 {
		return invalidParam("lease_horizon_years", "must be >= 0")
	}
	if p.LeaseHorizonYears != len(p.LeaseRevenue) {
		return invalidParam("lease_revenue", "length must equal lease_horizon_years")
	}
	if p.DiscountRate < 0 || p.DiscountRate >= 1 {
		return invalidParam("discount_rate", "must be in [0, 1)")
	}
	return nil
}
