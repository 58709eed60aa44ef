package model

import (
	"errors"
	"testing"
)

func validParams() CaseParameters {
	return CaseParameters{
		StumpagePrice:        Normal{Mean: 21.0, Std: 3.0},
		RegenerationCost:     Normal{Mean: 200.0, Std: 30.0},
		WaterQualityValue:    Normal{Mean: 100.16, Std: 1.38},
		EndangeredSpeciesWTP: Normal{Mean: 6.685, Std: 2.0},
		LeaseRevenue:         []float64{200, 100, 50, 20, 10},
		LeaseHorizonYears:    5,
		DiscountRate:         0.055,
	}
}

func TestCaseValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Case)
		wantField string // "" = valid
	}{
		{"valid", func(c *Case) {}, ""},
		{"per-acre valid", func(c *Case) { c.Acres = 0 }, ""},
		{"empty name", func(c *Case) { c.Name = "" }, "name"},
		{"negative acres", func(c *Case) { c.Acres = -10 }, "acres"},
		{"negative stumpage std", func(c *Case) { c.Params.StumpagePrice.Std = -1 }, "stumpage_price.std"},
		{"negative regeneration std", func(c *Case) { c.Params.RegenerationCost.Std = -0.5 }, "regeneration_cost.std"},
		{"negative water std", func(c *Case) { c.Params.WaterQualityValue.Std = -2 }, "water_quality_value.std"},
		{"negative wtp std", func(c *Case) { c.Params.EndangeredSpeciesWTP.Std = -1 }, "endangered_species_wtp.std"},
		{"negative horizon", func(c *Case) { c.Params.LeaseHorizonYears = -1 }, "lease_horizon_years"},
		{"horizon longer than stream", func(c *Case) { c.Params.LeaseHorizonYears = 6 }, "lease_revenue"},
		{"horizon shorter than stream", func(c *Case) { c.Params.LeaseHorizonYears = 3 }, "lease_revenue"},
		{"negative rate", func(c *Case) { c.Params.DiscountRate = -0.01 }, "discount_rate"},
		{"rate of one", func(c *Case) { c.Params.DiscountRate = 1 }, "discount_rate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Case{Name: "EIA_CS2_LLP", Params: validParams(), Acres: 937.02}
			tt.mutate(c)
			err := c.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			var ipe *InvalidParameterError
			if !errors.As(err, &ipe) {
				t.Fatalf("Validate() error = %v, want InvalidParameterError", err)
			}
			if ipe.Field != tt.wantField {
				t.Errorf("error field = %q, want %q", ipe.Field, tt.wantField)
			}
		})
	}
}

func TestValidationErrorCarriesCaseName(t *testing.T) {
	p := validParams()
	p.StumpagePrice.Std = -1
	_, err := NewCase("EIA_CS2_LLP", p, 937.02)
	var ipe *InvalidParameterError
	if !errors.As(err, &ipe) {
		t.Fatalf("NewCase() error = %v, want InvalidParameterError", err)
	}
	if ipe.Case != "EIA_CS2_LLP" {
		t.Errorf("error case = %q, want EIA_CS2_LLP", ipe.Case)
	}
}

func TestNewCaseValid(t *testing.T) {
	c, err := NewCase("EIA_CS2_LLP", validParams(), 937.02)
	if err != nil {
		t.Fatalf("NewCase() error = %v", err)
	}
	if c.Name != "EIA_CS2_LLP" || c.Acres != 937.02 {
		t.Errorf("NewCase() = %+v", c)
	}
}

func TestInputRowValidate(t *testing.T) {
	valid := InputRow{
		Zone:             "EIA_CS1_LLP",
		Method:           "ESA",
		CarbonChangeMean: -4.6,
		CarbonChangeStd:  2.2,
		BiomassMean:      21.4,
		BiomassStd:       3.1,
		CreditPrice:      10,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate() error = %v, want nil", err)
	}

	tests := []struct {
		name   string
		mutate func(*InputRow)
	}{
		{"empty zone", func(r *InputRow) { r.Zone = "" }},
		{"negative carbon std", func(r *InputRow) { r.CarbonChangeStd = -1 }},
		{"negative biomass std", func(r *InputRow) { r.BiomassStd = -1 }},
		{"negative biomass mean", func(r *InputRow) { r.BiomassMean = -1 }},
		{"negative credit price", func(r *InputRow) { r.CreditPrice = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := valid
			tt.mutate(&row)
			if row.Validate() == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	ipe := &InvalidParameterError{Case: "CS1", Field: "stumpage_price.std", Reason: "must be >= 0"}
	if ipe.Error() != `case "CS1": stumpage_price.std: must be >= 0` {
		t.Errorf("unexpected message %q", ipe.Error())
	}

	missing := &MissingCaseDataError{Case: "EIA_CS1_LPP", Missing: "zone stats", Suggestion: "EIA_CS1_LLP"}
	want := `case "EIA_CS1_LPP" has no entry in zone stats (did you mean "EIA_CS1_LLP"?)`
	if missing.Error() != want {
		t.Errorf("unexpected message %q", missing.Error())
	}

	missing.Suggestion = ""
	want = `case "EIA_CS1_LPP" has no entry in zone stats`
	if missing.Error() != want {
		t.Errorf("unexpected message %q", missing.Error())
	}
}
