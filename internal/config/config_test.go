package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v2"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Data.Dir != "./data" {
		t.Errorf("expected data dir ./data, got %s", cfg.Data.Dir)
	}
	if cfg.Data.E2EDir != "./data-e2e" {
		t.Errorf("expected e2e dir ./data-e2e, got %s", cfg.Data.E2EDir)
	}
	if len(cfg.Lint.AllowedExtensions) == 0 {
		t.Error("expected default allowed extensions")
	}
	for _, ext := range cfg.Lint.AllowedExtensions {
		if !strings.HasPrefix(ext, ".") {
			t.Errorf("expected leading dot on extension %q", ext)
		}
	}
	if cfg.Frontend.InstallAttempts == 0 {
		t.Error("expected at least one install attempt")
	}
}

func TestValidate(t *testing.T) {
	t.Run("default config is valid", func(t *testing.T) {
		if err := Validate(DefaultConfig()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("empty data dir rejected", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Data.Dir = ""
		if err := Validate(cfg); err == nil {
			t.Fatal("expected validation error")
		}
	})

	t.Run("extension without leading dot rejected", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Lint.AllowedExtensions = []string{"png"}
		if err := Validate(cfg); err == nil {
			t.Fatal("expected validation error")
		}
	})

	t.Run("zero install attempts rejected", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Frontend.InstallAttempts = 0
		if err := Validate(cfg); err == nil {
			t.Fatal("expected validation error")
		}
	})
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	if err := WriteDefault(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read written config: %v", err)
	}
	if !strings.HasPrefix(string(data), "# mddb-tools configuration") {
		t.Error("expected commented header")
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("written config is not valid yaml: %v", err)
	}
	if err := Validate(&cfg); err != nil {
		t.Errorf("written config fails validation: %v", err)
	}
}
