package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("expected default addr, got %s", cfg.Server.Addr)
	}
	if !cfg.Engine.Predictor.Enabled {
		t.Error("predictor should default to enabled")
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg := Default()
	cfg.Server.Addr = ":9090"
	cfg.Engine.FactorsPath = "/etc/ecotrack/factors.hcl"
	cfg.Engine.Predictor.Intercept = 180

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Server.Addr != ":9090" {
		t.Errorf("expected :9090, got %s", loaded.Server.Addr)
	}
	if loaded.Engine.FactorsPath != "/etc/ecotrack/factors.hcl" {
		t.Errorf("unexpected factors path %s", loaded.Engine.FactorsPath)
	}
	if loaded.Engine.Predictor.Intercept != 180 {
		t.Errorf("expected intercept 180, got %v", loaded.Engine.Predictor.Intercept)
	}
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"server": {"addr": ":7070"}}`), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":7070" {
		t.Errorf("expected :7070, got %s", cfg.Server.Addr)
	}
	if cfg.Engine.Predictor.FloorKwh != 100 {
		t.Errorf("untouched fields keep their defaults, got %v", cfg.Engine.Predictor.FloorKwh)
	}
}
