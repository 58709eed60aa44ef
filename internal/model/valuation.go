package model

import (
	"fmt"
	"math"
)

// EcosystemMode selects how annual ecosystem service values enter the TEV.
// One mode applies uniformly to every case in a run.
type EcosystemMode string

const (
	// EcosystemAnnuity discounts the annual value over the lease horizon at
	// the case discount rate, like the land-value term.
	EcosystemAnnuity EcosystemMode = "annuity"
	// EcosystemSnapshot takes a single undiscounted year.
	EcosystemSnapshot EcosystemMode = "snapshot"
)

func ParseEcosystemMode(s string) (EcosystemMode, error) {
	switch EcosystemMode(s) {
	case EcosystemAnnuity, EcosystemSnapshot:
		return EcosystemMode(s), nil
	case "":
		return EcosystemAnnuity, nil
	default:
		return "", fmt.Errorf("unknown ecosystem valuation mode %q (want %q or %q)", s, EcosystemAnnuity, EcosystemSnapshot)
	}
}

// TrialSample holds one trial's concrete parameter draws together with the
// fixed per-case quantities the valuation needs. Samples are ephemeral; only
// component values survive aggregation.
// Units:
// - StumpagePrice: $/ton
// - RegenerationCost: $/acre
// - WaterQuality, SpeciesWTP: $/acre/year
// - CarbonChange: tons CO2e/acre (signed)
// - ImpliedVolume: merchantable tons/acre (fixed, never resampled)
// - CreditPrice: $/ton CO2e
type TrialSample struct {
	StumpagePrice    float64
	RegenerationCost float64
	WaterQuality     float64
	SpeciesWTP       float64
	CarbonChange     float64
	ImpliedVolume    float64
	CreditPrice      float64
}

// Valuation is the per-trial component breakdown, in dollars (or dollars per
// acre when the case runs in per-acre mode). Any component may be negative.
type Valuation struct {
	Timber            float64
	CarbonCredits     float64
	EcosystemServices float64
	LandValue         float64
	Total             float64
}

// NPV discounts a year-indexed payment stream at the given rate. Payments
// are treated as end-of-year, so stream[0] is discounted one period. A zero
// rate reduces to a plain sum.
func NPV(stream []float64, rate float64) (float64, error) {
	if rate == -1 {
		return 0, &NumericalInstabilityError{Reason: "discount rate of -1 makes discount factors undefined"}
	}
	total := 0.0
	for t, payment := range stream {
		total += payment / math.Pow(1+rate, float64(t+1))
	}
	return total, nil
}

// AnnuityNPV discounts a constant annual payment over the given number of
// years. Same discounting convention as NPV.
func AnnuityNPV(payment float64, years int, rate float64) (float64, error) {
	if rate == -1 {
		return 0, &NumericalInstabilityError{Reason: "discount rate of -1 makes discount factors undefined"}
	}
	total := 0.0
	for t := 1; t <= years; t++ {
		total += payment / math.Pow(1+rate, float64(t))
	}
	return total, nil
}

// Valuate computes the four TEV components for one trial, scaled by the case
// acreage (or left per-acre when Acres == 0).
//
// The carbon term is the signed pass-through product of the sampled carbon
// change and the credit price: a positive change is revenue, a negative
// change is a liability. Signs are never reinterpreted here.
func (c *Case) Valuate(s TrialSample, mode EcosystemMode) (Valuation, error) {
	scale := c.Acres
	if scale == 0 {
		scale = 1
	}

	timber := (s.StumpagePrice*s.ImpliedVolume - s.RegenerationCost) * scale
	carbon := s.CarbonChange * s.CreditPrice * scale

	annual := s.WaterQuality + s.SpeciesWTP
	var eco float64
	switch mode {
	case EcosystemSnapshot:
		eco = annual * scale
	default:
		v, err := AnnuityNPV(annual, c.Params.LeaseHorizonYears, c.Params.DiscountRate)
		if err != nil {
			return Valuation{}, err
		}
		eco = v * scale
	}

	land, err := NPV(c.Params.LeaseRevenue, c.Params.DiscountRate)
	if err != nil {
		return Valuation{}, err
	}
	land *= scale

	v := Valuation{
		Timber:            timber,
		CarbonCredits:     carbon,
		EcosystemServices: eco,
		LandValue:         land,
	}
	v.Total = v.Timber + v.CarbonCredits + v.EcosystemServices + v.LandValue
	return v, nil
}

// Component returns the named component of the valuation.
func (v Valuation) Component(c Component) float64 {
	switch c {
	case ComponentTimber:
		return v.Timber
	case ComponentCarbonCredits:
		return v.CarbonCredits
	case ComponentEcosystemServices:
		return v.EcosystemServices
	case ComponentLandValue:
		return v.LandValue
	default:
		return v.Total
	}
}
