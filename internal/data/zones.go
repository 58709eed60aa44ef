package data

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"forest-tev/internal/model"
)

// ZoneFile is the on-disk zone acreage table. Zones is a slice so the file
// ordering carries through to batch output.
type ZoneFile struct {
	UpdatedAt string            `json:"updated_at"` // ISO 8601 timestamp
	Zones     []model.CaseAcres `json:"zones"`
}

// LoadZones loads a zone acreage table from a JSON file.
func LoadZones(filePath string) (*ZoneFile, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read zones file: %w", err)
	}

	var zf ZoneFile
	if err := json.Unmarshal(raw, &zf); err != nil {
		return nil, fmt.Errorf("failed to parse zones file: %w", err)
	}

	return &zf, nil
}

// SaveZones saves a zone acreage table to a JSON file.
func SaveZones(zf *ZoneFile, filePath string) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	raw, err := json.MarshalIndent(zf, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal zones: %w", err)
	}

	if err := os.WriteFile(filePath, raw, 0644); err != nil {
		return fmt.Errorf("failed to write zones file: %w", err)
	}

	return nil
}

// GetDefaultZonesPath returns the default path for the zones file.
func GetDefaultZonesPath() string {
	if path := os.Getenv("ZONES_FILE"); path != "" {
		return path
	}
	return "./data/zones.json"
}
