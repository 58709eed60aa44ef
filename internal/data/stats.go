package data

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"forest-tev/internal/model"
)

// LoadZoneStats loads a converted zone stats snapshot from a JSON file.
func LoadZoneStats(path string) (*model.ZoneStatsResponse, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var resp model.ZoneStatsResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SaveZoneStats writes a stats snapshot to a JSON file.
func SaveZoneStats(resp *model.ZoneStatsResponse, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	raw, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return fmt.Errorf("failed to write stats file: %w", err)
	}
	return nil
}

// GetDefaultStatsPath returns the default path for the zone stats file
func GetDefaultStatsPath() string {
	if path := os.Getenv("STATS_FILE"); path != "" {
		return path
	}
	return "./data/zone_stats.json"
}

// StatsByZone keys a response's rows by zone name. Later duplicates win.
func StatsByZone(resp *model.ZoneStatsResponse) map[string]model.InputRow {
	out := map[string]model.InputRow{}
	if resp == nil {
		return out
	}
	for _, row := range resp.Data {
		out[row.Zone] = row
	}
	return out
}

// RowsByZone keys a plain row slice by zone name.
func RowsByZone(rows []model.InputRow) map[string]model.InputRow {
	out := make(map[string]model.InputRow, len(rows))
	for _, row := range rows {
		out[row.Zone] = row
	}
	return out
}

// ApplyCreditPrice replaces every row's credit price when price > 0, for
// run-level market assumptions. Zero leaves the rows untouched.
func ApplyCreditPrice(rows map[string]model.InputRow, price float64) map[string]model.InputRow {
	if price <= 0 {
		return rows
	}
	out := make(map[string]model.InputRow, len(rows))
	for zone, row := range rows {
		row.CreditPrice = price
		out[zone] = row
	}
	return out
}

// ConvertRawRows turns service-native rows (t/ha biomass) into per-acre
// input rows. The biomass change converts to tons CO2e via the carbon
// fraction; stds scale by the same linear factors as the means.
func ConvertRawRows(raw []model.RawZoneRow, carbonFraction, creditPrice float64) []model.InputRow {
	out := make([]model.InputRow, 0, len(raw))
	for _, r := range raw {
		changePerAcre := model.PerHectareToPerAcre(r.AGBChangeMeanTPerHa)
		changeStdPerAcre := model.PerHectareToPerAcre(r.AGBChangeStdTPerHa)
		out = append(out, model.InputRow{
			Zone:             r.Zone,
			Method:           r.Method,
			CarbonChangeMean: model.BiomassToCO2e(changePerAcre, carbonFraction),
			CarbonChangeStd:  model.BiomassToCO2e(changeStdPerAcre, carbonFraction),
			BiomassMean:      model.PerHectareToPerAcre(r.AGBMeanTPerHa),
			BiomassStd:       model.PerHectareToPerAcre(r.AGBStdTPerHa),
			CreditPrice:      creditPrice,
		})
	}
	return out
}
