package main

import (
	"fmt"

	"github.com/ava-labs/intseq/pkg/utils"
	"github.com/caarlos0/env/v11"
	"github.com/urfave/cli/v2"
)

// Config holds all configuration for the intseq application
type Config struct {
	// Application settings
	Verbose      bool `env:"INTSEQ_VERBOSE"       envDefault:"false"`
	PrintMetrics bool `env:"INTSEQ_PRINT_METRICS" envDefault:"false"`

	// Inputs
	Sample    []int `env:"INTSEQ_SAMPLE"    envDefault:"2000,0,1,1,50,1000" envSeparator:","` // Sequence used by the demo command
	Threshold int   `env:"INTSEQ_THRESHOLD" envDefault:"0"`                                   // Exclusive lower bound for the min command

	// Metrics settings
	Environment string `env:"INTSEQ_ENVIRONMENT"`
	Instance    string `env:"INTSEQ_INSTANCE"`
}

// loadEnvConfig loads the environment-backed defaults.
func loadEnvConfig() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// buildConfig builds a Config from the environment, then applies any scalar CLI flags that were set.
// List flags are validated separately by applySample.
func buildConfig(c *cli.Context) (*Config, error) {
	cfg, err := loadEnvConfig()
	if err != nil {
		return nil, err
	}

	if c.IsSet("verbose") {
		cfg.Verbose = c.Bool("verbose")
	}
	if c.IsSet("print-metrics") {
		cfg.PrintMetrics = c.Bool("print-metrics")
	}
	if c.IsSet("environment") {
		cfg.Environment = c.String("environment")
	}
	if c.IsSet("instance") {
		cfg.Instance = c.String("instance")
	}
	if c.IsSet("threshold") {
		cfg.Threshold = c.Int("threshold")
	}

	return &cfg, nil
}

// applySample replaces the sample with --sample when it was set.
func (cfg *Config) applySample(c *cli.Context) error {
	if !c.IsSet("sample") {
		return nil
	}
	sample, err := utils.ParseInts(c.String("sample"))
	if err != nil {
		return fmt.Errorf("invalid --sample: %w", err)
	}
	cfg.Sample = sample
	return nil
}
