package model

// ZoneStatsResponse matches the JSON shape returned by the zonal statistics
// service (and stored in stats snapshot files).
//
// Example:
//
//	{
//	  "status_code": 200,
//	  "data": [ ... ]
//	}
type ZoneStatsResponse struct {
	StatusCode int        `json:"status_code"`
	Data       []InputRow `json:"data"`
}

// InputRow is one zone's carbon and biomass statistics, already converted
// to per-acre units. Rows are read-only during simulation.
// Units:
// - CarbonChangeMean/Std: tons CO2e per acre (signed; negative = emission)
// - BiomassMean/Std: tons of aboveground biomass per acre
// - CreditPrice: $/ton CO2e
type InputRow struct {
	Zone   string `json:"zone"`
	Method string `json:"method,omitempty"` // retrieval method tag, e.g. "ESA"

	CarbonChangeMean float64 `json:"carbon_change_mean"`
	CarbonChangeStd  float64 `json:"carbon_change_std"`
	BiomassMean      float64 `json:"biomass_mean"`
	BiomassStd       float64 `json:"biomass_std"`
	CreditPrice      float64 `json:"credit_price"`
}

func (r InputRow) Validate() error {
	if r.Zone == "" {
		return invalidParam("zone", "zone name must be non-empty")
	}
	if r.CarbonChangeStd < 0 {
		return invalidParam("carbon_change_std", "must be >= 0")
	}
	if r.BiomassStd < 0 {
		return invalidParam("biomass_std", "must be >= 0")
	}
	if r.BiomassMean < 0 {
		return invalidParam("biomass_mean", "must be >= 0")
	}
	if r.CreditPrice < 0 {
		return invalidParam("credit_price", "must be >= 0")
	}
	return nil
}

// CarbonStats returns the carbon change distribution of the row.
func (r InputRow) CarbonStats() Normal {
	return Normal{Mean: r.CarbonChangeMean, Std: r.CarbonChangeStd}
}

// CaseAcres is one entry of the acreage table. The table is slice-backed so
// batch runs preserve its ordering.
type CaseAcres struct {
	Case  string  `json:"case"`
	Acres float64 `json:"acres"`
}

// ZonalQueryResponse matches the JSON shape returned by the zonal
// statistics service for a raw query, before unit conversion.
type ZonalQueryResponse struct {
	StatusCode int          `json:"status_code"`
	Data       []RawZoneRow `json:"data"`
}

// RawZoneRow is one zone's service-native statistics: aboveground biomass
// in metric tons per hectare, with the pre/post-burn change.
type RawZoneRow struct {
	Zone   string `json:"zone"`
	Method string `json:"method,omitempty"`

	AGBMeanTPerHa       float64 `json:"agb_mean_t_ha"`
	AGBStdTPerHa        float64 `json:"agb_std_t_ha"`
	AGBChangeMeanTPerHa float64 `json:"agb_change_mean_t_ha"`
	AGBChangeStdTPerHa  float64 `json:"agb_change_std_t_ha"`
}
