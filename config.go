package qsim

import (
	"fmt"
	"runtime"

	"github.com/caarlos0/env/v11"
)

// Config holds simulation defaults. Every field can be set from the
// environment with a QSIM_ prefix.
type Config struct {
	Trials          uint64  `env:"TRIALS" envDefault:"1000"`
	Workers         int     `env:"WORKERS" envDefault:"0"`
	Seed            uint64  `env:"SEED" envDefault:"0"`
	ReportTolerance float64 `env:"REPORT_TOLERANCE" envDefault:"0.01"`
}

func NewConfig() *Config {
	return &Config{
		Trials:          1000,
		Workers:         runtime.NumCPU(),
		Seed:            0,
		ReportTolerance: 0.01,
	}
}

/*
LoadConfig reads QSIM_TRIALS, QSIM_WORKERS, QSIM_SEED and
QSIM_REPORT_TOLERANCE. An unset or zero worker count falls back to the
number of CPUs.
*/
func LoadConfig() (*Config, error) {
	config := &Config{}

	if err := env.ParseWithOptions(config, env.Options{Prefix: "QSIM_"}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	if config.Workers == 0 {
		config.Workers = runtime.NumCPU()
	}

	return config, nil
}

func (config *Config) validate() error {
	if config.Workers < 0 {
		return fmt.Errorf("invalid config: workers must not be negative, got %d", config.Workers)
	}

	if config.ReportTolerance < 0 || config.ReportTolerance > 1 {
		return fmt.Errorf("invalid config: report tolerance must be in [0, 1], got %g", config.ReportTolerance)
	}

	return nil
}

func (config *Config) workers() int {
	if config == nil || config.Workers <= 0 {
		return runtime.NumCPU()
	}
	return config.Workers
}
