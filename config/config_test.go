package config

import (
	"path/filepath"
	"testing"

	"github.com/san-kum/invdens/quad"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Rule != RuleKronrod {
		t.Errorf("expected rule %q, got %q", RuleKronrod, cfg.Rule)
	}
	if cfg.AbsTol <= 0 || cfg.RelTol <= 0 {
		t.Error("tolerances should be positive")
	}
	if cfg.MaxIntervals <= 0 {
		t.Error("interval budget should be positive")
	}
}

func TestIntegratorSelection(t *testing.T) {
	cfg := DefaultConfig()
	integ, err := cfg.Integrator()
	if err != nil {
		t.Fatal(err)
	}
	gk, ok := integ.(*quad.GaussKronrod)
	if !ok {
		t.Fatalf("expected *quad.GaussKronrod, got %T", integ)
	}
	if gk.AbsTol != cfg.AbsTol || gk.MaxIntervals != cfg.MaxIntervals {
		t.Error("settings not carried into integrator")
	}

	cfg.Rule = RuleLegendre
	cfg.LegendreOrder = 32
	integ, err = cfg.Integrator()
	if err != nil {
		t.Fatal(err)
	}
	l, ok := integ.(*quad.Legendre)
	if !ok {
		t.Fatalf("expected *quad.Legendre, got %T", integ)
	}
	if l.Order != 32 {
		t.Errorf("expected order 32, got %d", l.Order)
	}

	cfg.Rule = "simpson"
	if _, err = cfg.Integrator(); err == nil {
		t.Error("expected error for unknown rule")
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quad.yaml")

	cfg := DefaultConfig()
	cfg.Rule = RuleLegendre
	cfg.AbsTol = 1e-12
	cfg.LegendreOrder = 48

	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if *loaded != *cfg {
		t.Errorf("roundtrip mismatch: got %+v, want %+v", loaded, cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
