package data

import "forest-tev/internal/model"

// DefaultCreditPrice is the fallback carbon credit price, $/ton CO2e.
const DefaultCreditPrice = 10.0

// BuiltinCases returns the bundled longleaf pine case studies (EIA CS1-CS3).
// Values are per-acre; see model.CaseParameters for units.
func BuiltinCases() map[string]model.CaseParameters {
	return map[string]model.CaseParameters{
		"EIA_CS1_LLP": {
			StumpagePrice:        model.Normal{Mean: 7.50, Std: 1.0},
			RegenerationCost:     model.Normal{Mean: 375.0, Std: 50.0},
			WaterQualityValue:    model.Normal{Mean: 110.56, Std: 2.04},
			EndangeredSpeciesWTP: model.Normal{Mean: 1.337, Std: 1.0},
			LeaseRevenue:         []float64{50, 20, 0, 0, 0},
			LeaseHorizonYears:    5,
			DiscountRate:         0.06,
		},
		"EIA_CS2_LLP": {
			StumpagePrice:        model.Normal{Mean: 21.0, Std: 3.0},
			RegenerationCost:     model.Normal{Mean: 200.0, Std: 30.0},
			WaterQualityValue:    model.Normal{Mean: 100.16, Std: 1.38},
			EndangeredSpeciesWTP: model.Normal{Mean: 6.685, Std: 2.0},
			LeaseRevenue:         []float64{200, 100, 50, 20, 10},
			LeaseHorizonYears:    5,
			DiscountRate:         0.055,
		},
		"EIA_CS3_LLP": {
			StumpagePrice:        model.Normal{Mean: 36.0, Std: 5.0},
			RegenerationCost:     model.Normal{Mean: 50.0, Std: 10.0},
			WaterQualityValue:    model.Normal{Mean: 120.01, Std: 0.76},
			EndangeredSpeciesWTP: model.Normal{Mean: 13.37, Std: 3.0},
			LeaseRevenue:         []float64{700, 700, 700, 700, 700},
			LeaseHorizonYears:    5,
			DiscountRate:         0.05,
		},
	}
}

// BuiltinAcreage returns the zone acreage table matching BuiltinCases, in
// presentation order.
func BuiltinAcreage() []model.CaseAcres {
	return []model.CaseAcres{
		{Case: "EIA_CS1_LLP", Acres: 651.06},
		{Case: "EIA_CS2_LLP", Acres: 937.02},
		{Case: "EIA_CS3_LLP", Acres: 544.03},
	}
}

// DemoStats returns a small embedded stats table for the builtin cases, so
// demos and tests can run without the zonal service. Negative carbon
// changes reflect biomass lost to the burn.
func DemoStats() []model.InputRow {
	return []model.InputRow{
		{
			Zone:             "EIA_CS1_LLP",
			Method:           "ESA",
			CarbonChangeMean: -4.6,
			CarbonChangeStd:  2.2,
			BiomassMean:      21.4,
			BiomassStd:       3.1,
			CreditPrice:      DefaultCreditPrice,
		},
		{
			Zone:             "EIA_CS2_LLP",
			Method:           "ESA",
			CarbonChangeMean: -6.1,
			CarbonChangeStd:  2.7,
			BiomassMean:      25.8,
			BiomassStd:       4.3,
			CreditPrice:      DefaultCreditPrice,
		},
		{
			Zone:             "EIA_CS3_LLP",
			Method:           "ESA",
			CarbonChangeMean: -3.2,
			CarbonChangeStd:  1.9,
			BiomassMean:      18.9,
			BiomassStd:       2.8,
			CreditPrice:      DefaultCreditPrice,
		},
	}
}
