package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"forest-tev/internal/model"
	"forest-tev/internal/montecarlo"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk run configuration shape (YAML).
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Carbon     CarbonConfig     `yaml:"carbon"`

	// CasesFile points at a YAML case parameter set (e.g.
	// examples/cases/longleaf.yaml). Empty means the builtin cases.
	CasesFile string `yaml:"cases_file"`
	// ZonesFile points at a JSON zone acreage table. Empty means the
	// builtin acreage.
	ZonesFile string `yaml:"zones_file"`
	// StatsFile points at a JSON zone stats snapshot.
	StatsFile string `yaml:"stats_file"`

	// Overrides adjusts individual cases after loading, keyed by case name.
	Overrides map[string]CaseOverride `yaml:"overrides"`
}

type SimulationConfig struct {
	// NumSimulations is the trial count per case; 0 means the engine
	// default.
	NumSimulations int `yaml:"num_simulations"`
	// RandomSeed makes runs reproducible. Unset means a time-derived seed,
	// so the run is deliberately non-reproducible.
	RandomSeed *int64 `yaml:"random_seed"`
	Workers    int    `yaml:"workers"`
	// KeepSamples retains raw per-trial values on results. Unset means
	// keep.
	KeepSamples        *bool   `yaml:"keep_samples"`
	EcosystemValuation string  `yaml:"ecosystem_valuation"`
	TimberVolumeFactor float64 `yaml:"timber_volume_factor"`
}

type CarbonConfig struct {
	// CreditPricePerTon, when > 0, replaces the credit price of every
	// stats row ($/ton CO2e).
	CreditPricePerTon float64 `yaml:"credit_price_per_ton"`
	// CarbonFraction is the carbon share of dry biomass used when
	// converting raw service rows; 0 means the default (0.51).
	CarbonFraction float64 `yaml:"carbon_fraction"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads the config and resolves its file references, but does
// not validate it. Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	c.CasesFile = resolvePath(path, c.CasesFile)
	c.ZonesFile = resolvePath(path, c.ZonesFile)
	c.StatsFile = resolvePath(path, c.StatsFile)
	return &c, nil
}

// resolvePath interprets relative file references as relative to the config
// file directory when such a file exists, falling back to the path as given
// (relative to cwd).
func resolvePath(cfgPath, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	cand := filepath.Join(filepath.Dir(cfgPath), p)
	if _, err := os.Stat(cand); err == nil {
		return cand
	}
	return p
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Simulation.NumSimulations < 0 {
		return &model.NumericalInstabilityError{Reason: fmt.Sprintf("simulation.num_simulations must be >= 1, got %d", c.Simulation.NumSimulations)}
	}
	if c.Simulation.Workers < 0 {
		return errors.New("simulation.workers must be >= 0")
	}
	if c.Simulation.TimberVolumeFactor < 0 {
		return errors.New("simulation.timber_volume_factor must be >= 0")
	}
	if _, err := model.ParseEcosystemMode(c.Simulation.EcosystemValuation); err != nil {
		return fmt.Errorf("simulation.ecosystem_valuation: %w", err)
	}
	if c.Carbon.CreditPricePerTon < 0 {
		return errors.New("carbon.credit_price_per_ton must be >= 0")
	}
	if c.Carbon.CarbonFraction < 0 || c.Carbon.CarbonFraction > 1 {
		return errors.New("carbon.carbon_fraction must be in [0, 1]")
	}
	return nil
}

// ResolveSeed returns the configured seed, or a time-derived one when the
// config leaves it unset. Call once per run so every case shares the seed.
func (c *Config) ResolveSeed() int64 {
	if c.Simulation.RandomSeed != nil {
		return *c.Simulation.RandomSeed
	}
	return time.Now().UnixNano()
}

// EngineOptions translates the config into engine options. The seed is
// resolved here, so call once and reuse the returned options.
func (c *Config) EngineOptions() montecarlo.Options {
	mode, _ := model.ParseEcosystemMode(c.Simulation.EcosystemValuation)
	discard := false
	if c.Simulation.KeepSamples != nil {
		discard = !*c.Simulation.KeepSamples
	}
	return montecarlo.Options{
		NumSimulations: c.Simulation.NumSimulations,
		Seed:           c.ResolveSeed(),
		Workers:        c.Simulation.Workers,
		VolumeFactor:   c.Simulation.TimberVolumeFactor,
		Ecosystem:      mode,
		DiscardSamples: discard,
	}
}
