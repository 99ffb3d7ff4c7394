package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"memscrub/internal/core/domain"
)

type Config struct {
	Stress   StressConfig `yaml:"stress"`
	Report   ReportConfig `yaml:"report"`
	LogLevel string       `yaml:"log_level"` // debug, info, warn or error
}

// Holds stress-run configuration.
type StressConfig struct {
	Workers          int      `yaml:"workers"`           // Concurrent copy workers (0 = logical CPUs)
	RegionSizeBytes  uint64   `yaml:"region_size_bytes"` // Size of each test region
	MemFraction      float64  `yaml:"mem_fraction"`      // Share of available memory the run may claim
	Duration         Duration `yaml:"duration"`          // Wall-clock bound (0 = unbounded)
	Passes           uint64   `yaml:"passes"`            // Per-worker pass bound (0 = unbounded)
	ProgressInterval Duration `yaml:"progress_interval"` // Progress log cadence
	Variant          string   `yaml:"variant"`           // Copy variant: baseline, warm or vector
	Patterns         []string `yaml:"patterns"`          // Data pattern rotation
	PatternSeed      uint64   `yaml:"pattern_seed"`      // Seed for address/random patterns
}

// Holds fault-dump configuration.
type ReportConfig struct {
	Enable    bool   `yaml:"enable"`    // Write miscompare dumps to disk
	Directory string `yaml:"directory"` // Dump directory
	Compress  bool   `yaml:"compress"`  // zstd-compress dump payloads
}

// Returns a Config struct with reasonable default values. Geometry
// fields stay zero so the stress service derives them from the host.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Stress: StressConfig{
			Variant:          "baseline",
			ProgressInterval: Duration(10 * time.Second),
		},
		Report: ReportConfig{
			Enable:    true,
			Directory: "reports",
			Compress:  true,
		},
	}
}

// Loads configuration from a YAML file, applied on top of defaults.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// StressOptions translates the file representation into the domain
// options the stress service consumes. Field-level validation beyond
// the basics happens there.
func (c *Config) StressOptions() *domain.StressOptions {
	kinds := make([]domain.PatternKind, 0, len(c.Stress.Patterns))
	for _, p := range c.Stress.Patterns {
		kinds = append(kinds, domain.PatternKind(p))
	}

	return &domain.StressOptions{
		Workers:          c.Stress.Workers,
		RegionSizeBytes:  c.Stress.RegionSizeBytes,
		MemFraction:      c.Stress.MemFraction,
		Duration:         c.Stress.Duration.Std(),
		Passes:           c.Stress.Passes,
		ProgressInterval: c.Stress.ProgressInterval.Std(),
		Copy:             domain.CopyOptions{Variant: domain.CopyVariant(c.Stress.Variant)},
		Pattern:          domain.PatternOptions{Kinds: kinds, Seed: c.Stress.PatternSeed},
		Report: domain.ReportOptions{
			Enable:    c.Report.Enable,
			Directory: c.Report.Directory,
			Compress:  c.Report.Compress,
		},
	}
}

func validateConfig(config *Config) error {
	switch config.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be one of debug, info, warn, error; got %q", config.LogLevel)
	}

	if config.Stress.MemFraction < 0 || config.Stress.MemFraction > 1 {
		return fmt.Errorf("mem_fraction must be between 0 and 1, got %g", config.Stress.MemFraction)
	}

	if config.Stress.Duration < 0 {
		return fmt.Errorf("duration must not be negative, got %s", config.Stress.Duration)
	}

	if config.Report.Enable && config.Report.Directory == "" {
		return fmt.Errorf("report.directory is required when report.enable is true")
	}

	return nil
}
