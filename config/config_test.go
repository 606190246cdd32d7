package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestValidateRejectsBadDepths(t *testing.T) {
	cfg := DefaultConfig
	cfg.Engine.Depth = 0
	if err := cfg.Validate(); err == nil {
		t.Fatalf("depth 0 should be rejected")
	}
	cfg.Engine.Depth = 9
	if err := cfg.Validate(); err == nil {
		t.Fatalf("depth 9 should be rejected")
	}
}

func TestReadCfgFileRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	var cfg Config
	if err := readCfgFile(path, &cfg); err == nil {
		t.Fatalf("malformed config should return an error, not default silently")
	}
}

func TestReadCfgFileAppliesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"engine":{"depth":5,"seed":7}}`), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	cfg := DefaultConfig
	if err := readCfgFile(path, &cfg); err != nil {
		t.Fatalf("readCfgFile failed: %v", err)
	}
	if cfg.Engine.Depth != 5 || cfg.Engine.Seed != 7 {
		t.Fatalf("overrides not applied: %+v", cfg.Engine)
	}
	if !cfg.ShowBoard {
		t.Fatalf("untouched fields should keep their defaults")
	}
}
