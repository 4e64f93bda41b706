// Package config holds the numeric defaults shared by the analysis and
// output layers. The core packages take these values explicitly; nothing
// here is global mutable state.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the project-level settings file.
type Config struct {
	// Tolerance is the absolute tolerance for vector comparisons; a
	// resultant shorter than this has no meaningful direction and is
	// reported as undefined.
	Tolerance float64 `yaml:"tolerance" json:"tolerance"`
	// NDigits is the precision of statistics in textual reports.
	NDigits int `yaml:"ndigits" json:"ndigits"`
	// DefaultKappa is the concentration used by sampling factories when
	// none is given.
	DefaultKappa float64 `yaml:"default_kappa" json:"default_kappa"`
	// RoseBins is the number of sectors in a rose histogram.
	RoseBins int `yaml:"rose_bins" json:"rose_bins"`
	// PTAngle is the angle between the P and T axes of a fault.
	PTAngle float64 `yaml:"pt_angle" json:"pt_angle"`
	// Seed makes the sampling factories reproducible when non-zero.
	Seed uint64 `yaml:"seed" json:"seed"`
}

// Default returns the settings used when no config file is present.
func Default() Config {
	return Config{
		Tolerance:    1e-15,
		NDigits:      3,
		DefaultKappa: 20,
		RoseBins:     36,
		PTAngle:      90,
	}
}

// Load reads settings from a YAML file, filling unset fields with defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config YAML: %w", err)
	}
	return cfg, nil
}

// LoadProject loads settings from a project directory. It looks for
// geofabric.yaml in the given directory and falls back to defaults when the
// file does not exist.
func LoadProject(projectDir string) (Config, error) {
	path := filepath.Join(projectDir, "geofabric.yaml")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}
