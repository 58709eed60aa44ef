package model

// Component names one term of the TEV breakdown.
// Keep these values stable; they are intended for CSV and JSON output.
type Component string

const (
	ComponentTimber            Component = "timber"
	ComponentCarbonCredits     Component = "carbon_credits"
	ComponentEcosystemServices Component = "ecosystem_services"
	ComponentLandValue         Component = "land_value"
	ComponentTotalTEV          Component = "total_tev"
)

// Components returns every component in its stable output order.
func Components() []Component {
	return []Component{
		ComponentTimber,
		ComponentCarbonCredits,
		ComponentEcosystemServices,
		ComponentLandValue,
		ComponentTotalTEV,
	}
}
