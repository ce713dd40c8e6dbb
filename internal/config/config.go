package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultRows          = 10
	DefaultCols          = 10
	DefaultBoundaryTemp  = 100.0
	DefaultEpsilon       = 0.1
	DefaultMaxIterations = 999999
	DefaultSweeps        = 3
	DefaultOutput        = "Hotplate.csv"
	DefaultInput         = "Inputplate.txt"
	DefaultWidth         = 9
	DefaultPrecision     = 3
)

type Config struct {
	Rows          int          `yaml:"rows"`
	Cols          int          `yaml:"cols"`
	BoundaryTemp  float64      `yaml:"boundary_temp"`
	Epsilon       float64      `yaml:"epsilon"`
	MaxIterations int          `yaml:"max_iterations"`
	Sweeps        int          `yaml:"sweeps"`
	Output        string       `yaml:"output"`
	Input         string       `yaml:"input"`
	Format        FormatConfig `yaml:"format"`
}

type FormatConfig struct {
	Width     int `yaml:"width"`
	Precision int `yaml:"precision"`
}

func DefaultConfig() *Config {
	return &Config{
		Rows:          DefaultRows,
		Cols:          DefaultCols,
		BoundaryTemp:  DefaultBoundaryTemp,
		Epsilon:       DefaultEpsilon,
		MaxIterations: DefaultMaxIterations,
		Sweeps:        DefaultSweeps,
		Output:        DefaultOutput,
		Input:         DefaultInput,
		Format: FormatConfig{
			Width:     DefaultWidth,
			Precision: DefaultPrecision,
		},
	}
}

// Load reads a yaml config file, filling unset fields from defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
