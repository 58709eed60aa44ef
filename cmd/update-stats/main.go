package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"forest-tev/internal/data"
	"forest-tev/internal/model"
)

func main() {
	var (
		product        = flag.String("product", "esa_cci_agb", "Biomass product to query")
		preYear        = flag.Int("pre-year", 2018, "Year preceding treatment")
		postYear       = flag.Int("post-year", 2020, "Year following treatment")
		zonesPath      = flag.String("zones", "", "Path to zones file listing zones to query (default: builtin zones)")
		outputPath     = flag.String("output", "", "Output file path (default: ./data/zone_stats.json)")
		carbonFraction = flag.Float64("carbon-fraction", model.DefaultCarbonFraction, "Carbon fraction of dry biomass")
		creditPrice    = flag.Float64("credit-price", data.DefaultCreditPrice, "Carbon credit price in $/ton CO2e")
	)
	flag.Parse()

	apiKey := os.Getenv("ZONAL_API_KEY")
	if apiKey == "" {
		log.Fatal("ZONAL_API_KEY environment variable is required")
	}
	baseURL := os.Getenv("ZONAL_API_URL")
	if baseURL == "" {
		log.Fatal("ZONAL_API_URL environment variable is required")
	}

	if *outputPath == "" {
		*outputPath = data.GetDefaultStatsPath()
	}

	zones := loadZoneList(*zonesPath)
	client := data.NewZonalClient(apiKey, baseURL)

	fmt.Printf("Updating zone stats for product %s (pre=%d, post=%d)\n", *product, *preYear, *postYear)
	fmt.Printf("Querying %d zones...\n", len(zones))

	raw := make([]model.RawZoneRow, 0, len(zones))
	successCount := 0

	for _, zone := range zones {
		resp, err := client.QueryZoneStats(data.QueryZoneStatsParams{
			Product:  *product,
			Zone:     zone,
			PreYear:  *preYear,
			PostYear: *postYear,
		})
		if err != nil {
			fmt.Printf("  ⚠️  Warning: Failed to query zone %s: %v\n", zone, err)
			continue
		}

		if len(resp.Data) == 0 {
			fmt.Printf("  ⚠️  No data for zone %s in year range\n", zone)
			continue
		}

		raw = append(raw, resp.Data...)
		successCount++
		fmt.Printf("  ✓ Updated: %s (%d rows)\n", zone, len(resp.Data))
	}

	fmt.Printf("Successfully updated %d/%d zones\n", successCount, len(zones))
	if successCount == 0 {
		log.Fatal("No zone stats retrieved; output file left unchanged")
	}

	rows := data.ConvertRawRows(raw, *carbonFraction, *creditPrice)

	snapshot := &model.ZoneStatsResponse{
		StatusCode: http.StatusOK,
		Data:       rows,
	}
	if err := data.SaveZoneStats(snapshot, *outputPath); err != nil {
		log.Fatalf("Failed to save zone stats: %v", err)
	}

	fmt.Printf("Saved %d rows to %s (updated %s)\n", len(rows), *outputPath, time.Now().Format(time.RFC3339))
}

// loadZoneList reads zone names from a zones file, falling back to the
// builtin acreage table.
func loadZoneList(path string) []string {
	entries := data.BuiltinAcreage()
	if path != "" {
		zf, err := data.LoadZones(path)
		if err != nil {
			log.Fatalf("Failed to load zones file %s: %v", path, err)
		}
		entries = zf.Zones
	}

	zones := make([]string, 0, len(entries))
	for _, entry := range entries {
		zones = append(zones, entry.Case)
	}
	return zones
}
