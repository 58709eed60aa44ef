package model

// Unit conversions for upstream biomass data. The zonal statistics service
// reports aboveground biomass in metric tons per hectare; valuation works in
// tons per acre and tons of CO2e per acre.
const (
	// AcresPerHectare converts hectare-denominated densities to per-acre.
	AcresPerHectare = 2.47105
	// SquareMetersPerAcre is used when zone areas arrive in m².
	SquareMetersPerAcre = 4046.86
	// DefaultCarbonFraction is the carbon share of dry aboveground biomass.
	DefaultCarbonFraction = 0.51
	// CO2PerCarbonTon converts tons of carbon to tons of CO2e (44/12).
	CO2PerCarbonTon = 44.0 / 12.0
)

// PerHectareToPerAcre converts a per-hectare density to per-acre.
func PerHectareToPerAcre(v float64) float64 {
	return v / AcresPerHectare
}

// SquareMetersToAcres converts an area in m² to acres.
func SquareMetersToAcres(v float64) float64 {
	return v / SquareMetersPerAcre
}

// BiomassToCO2e converts tons of aboveground biomass to tons of CO2e using
// the given carbon fraction (DefaultCarbonFraction when <= 0).
func BiomassToCO2e(biomassTons, carbonFraction float64) float64 {
	if carbonFraction <= 0 {
		carbonFraction = DefaultCarbonFraction
	}
	return biomassTons * carbonFraction * CO2PerCarbonTon
}
