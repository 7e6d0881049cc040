// Package config holds quadrature settings and builds integrators
// from them.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/invdens/quad"
)

// Quadrature rule names accepted in Config.Rule.
const (
	RuleKronrod  = "kronrod"
	RuleLegendre = "legendre"
)

type Config struct {
	Rule          string  `yaml:"rule"`
	AbsTol        float64 `yaml:"abs_tol"`
	RelTol        float64 `yaml:"rel_tol"`
	MaxIntervals  int     `yaml:"max_intervals"`
	LegendreOrder int     `yaml:"legendre_order"`
}

func DefaultConfig() *Config {
	return &Config{
		Rule:          RuleKronrod,
		AbsTol:        quad.DefaultAbsTol,
		RelTol:        quad.DefaultRelTol,
		MaxIntervals:  quad.DefaultMaxIntervals,
		LegendreOrder: quad.DefaultLegendreOrder,
	}
}

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

// Integrator builds the quadrature backend the config names.
func (c *Config) Integrator() (quad.Integrator, error) {
	switch c.Rule {
	case RuleKronrod, "":
		return &quad.GaussKronrod{
			AbsTol:       c.AbsTol,
			RelTol:       c.RelTol,
			MaxIntervals: c.MaxIntervals,
		}, nil
	case RuleLegendre:
		return quad.NewLegendre(c.LegendreOrder), nil
	default:
		return nil, fmt.Errorf("config: unknown quadrature rule %q", c.Rule)
	}
}
