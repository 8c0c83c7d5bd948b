package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Precision != -1 {
		t.Errorf("expected Precision=-1, got %d", cfg.Precision)
	}
	if cfg.NoClobber {
		t.Error("expected NoClobber=false")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected Level=info, got %s", cfg.Logging.Level)
	}
}

func TestConfig_SaveLoad(t *testing.T) {
	// Ensure no env vars interfere
	t.Setenv("TRIANGLES_PRECISION", "")
	t.Setenv("TRIANGLES_NO_CLOBBER", "")
	t.Setenv("TRIANGLES_LOG_LEVEL", "")

	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Precision = 2
	cfg.NoClobber = true
	cfg.Logging.Level = "debug"

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Precision != 2 {
		t.Errorf("expected Precision=2, got %d", loaded.Precision)
	}
	if !loaded.NoClobber {
		t.Error("expected NoClobber=true")
	}
	if loaded.Logging.Level != "debug" {
		t.Errorf("expected Level=debug, got %s", loaded.Logging.Level)
	}
}

func TestConfig_EnvOverrides(t *testing.T) {
	t.Setenv("TRIANGLES_PRECISION", "3")
	t.Setenv("TRIANGLES_NO_CLOBBER", "true")
	t.Setenv("TRIANGLES_LOG_LEVEL", "warn")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Precision != 3 {
		t.Errorf("expected Precision=3, got %d", cfg.Precision)
	}
	if !cfg.NoClobber {
		t.Error("expected NoClobber=true from env")
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected Level=warn, got %s", cfg.Logging.Level)
	}
}

func TestConfig_EnvOverridesIgnoreGarbage(t *testing.T) {
	t.Setenv("TRIANGLES_PRECISION", "lots")
	t.Setenv("TRIANGLES_NO_CLOBBER", "maybe")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Precision != -1 {
		t.Errorf("garbage precision should keep default, got %d", cfg.Precision)
	}
	if cfg.NoClobber {
		t.Error("garbage no_clobber should keep default")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
