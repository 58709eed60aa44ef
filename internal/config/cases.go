package config

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"forest-tev/internal/model"

	"gopkg.in/yaml.v3"
)

// CaseFile is the on-disk shape of a case parameter set.
type CaseFile struct {
	Cases map[string]CaseConfig `yaml:"cases"`
}

// CaseConfig mirrors model.CaseParameters in YAML-friendly form.
type CaseConfig struct {
	StumpagePrice        model.Normal `yaml:"stumpage_price"`
	RegenerationCost     model.Normal `yaml:"regeneration_cost"`
	WaterQualityValue    model.Normal `yaml:"water_quality_value"`
	EndangeredSpeciesWTP model.Normal `yaml:"endangered_species_wtp"`
	LeaseRevenue         []float64    `yaml:"lease_revenue"`
	LeaseHorizonYears    int          `yaml:"lease_horizon_years"`
	DiscountRate         float64      `yaml:"discount_rate"`
}

func (c CaseConfig) ToModelParams() model.CaseParameters {
	return model.CaseParameters{
		StumpagePrice:        c.StumpagePrice,
		RegenerationCost:     c.RegenerationCost,
		WaterQualityValue:    c.WaterQualityValue,
		EndangeredSpeciesWTP: c.EndangeredSpeciesWTP,
		LeaseRevenue:         c.LeaseRevenue,
		LeaseHorizonYears:    c.LeaseHorizonYears,
		DiscountRate:         c.DiscountRate,
	}
}

// LoadCases reads a case parameter file. Decoding is strict: a mistyped key
// would otherwise silently zero a parameter, so unknown keys are an error.
func LoadCases(path string) (map[string]model.CaseParameters, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	var f CaseFile
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("parse case file %s: %w", path, err)
	}
	out := make(map[string]model.CaseParameters, len(f.Cases))
	for name, cc := range f.Cases {
		out[name] = cc.ToModelParams()
	}
	return out, nil
}

// CaseOverride overlays selected fields onto a base case. Pointer fields
// distinguish "unset" from a legitimate zero.
type CaseOverride struct {
	StumpagePrice        *model.Normal `yaml:"stumpage_price"`
	RegenerationCost     *model.Normal `yaml:"regeneration_cost"`
	WaterQualityValue    *model.Normal `yaml:"water_quality_value"`
	EndangeredSpeciesWTP *model.Normal `yaml:"endangered_species_wtp"`
	LeaseRevenue         []float64     `yaml:"lease_revenue"`
	LeaseHorizonYears    *int          `yaml:"lease_horizon_years"`
	DiscountRate         *float64      `yaml:"discount_rate"`
}

// MergeCase overlays the set fields of override onto base.
func MergeCase(base model.CaseParameters, o CaseOverride) model.CaseParameters {
	out := base
	if o.StumpagePrice != nil {
		out.StumpagePrice = *o.StumpagePrice
	}
	if o.RegenerationCost != nil {
		out.RegenerationCost = *o.RegenerationCost
	}
	if o.WaterQualityValue != nil {
		out.WaterQualityValue = *o.WaterQualityValue
	}
	if o.EndangeredSpeciesWTP != nil {
		out.EndangeredSpeciesWTP = *o.EndangeredSpeciesWTP
	}
	if o.LeaseRevenue != nil {
		out.LeaseRevenue = o.LeaseRevenue
		// Keep the horizon in step unless it is overridden too.
		if o.LeaseHorizonYears == nil {
			out.LeaseHorizonYears = len(o.LeaseRevenue)
		}
	}
	if o.LeaseHorizonYears != nil {
		out.LeaseHorizonYears = *o.LeaseHorizonYears
	}
	if o.DiscountRate != nil {
		out.DiscountRate = *o.DiscountRate
	}
	return out
}

// ApplyOverrides merges the config's per-case overrides onto the case set.
// An override naming an unknown case errors with a nearest-name suggestion
// rather than silently creating a half-specified case.
func ApplyOverrides(cases map[string]model.CaseParameters, overrides map[string]CaseOverride) (map[string]model.CaseParameters, error) {
	if len(overrides) == 0 {
		return cases, nil
	}
	known := make([]string, 0, len(cases))
	for name := range cases {
		known = append(known, name)
	}
	sort.Strings(known)

	out := make(map[string]model.CaseParameters, len(cases))
	for name, params := range cases {
		out[name] = params
	}

	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		base, ok := out[name]
		if !ok {
			err := &model.MissingCaseDataError{Case: name, Missing: "case parameters (override target)"}
			if s, found := model.NearestName(name, known); found {
				err.Suggestion = s
			}
			return nil, err
		}
		out[name] = MergeCase(base, overrides[name])
	}
	return out, nil
}
