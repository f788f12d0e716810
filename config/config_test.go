package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/tailored-agentic-units/observable/config"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()

	if cfg.Observer != "noop" {
		t.Errorf("got Observer %q, want %q", cfg.Observer, "noop")
	}
	if cfg.Name != "" {
		t.Errorf("got Name %q, want empty", cfg.Name)
	}
}

func TestConfig_Merge(t *testing.T) {
	cfg := config.DefaultConfig()

	cfg.Merge(&config.Config{Name: "person"})

	if cfg.Name != "person" {
		t.Errorf("got Name %q, want %q", cfg.Name, "person")
	}
	if cfg.Observer != "noop" {
		t.Errorf("got Observer %q, want %q (preserved default)", cfg.Observer, "noop")
	}
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "config.json", `{"name": "person", "observer": "slog"}`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Name != "person" {
		t.Errorf("got Name %q, want %q", cfg.Name, "person")
	}
	if cfg.Observer != "slog" {
		t.Errorf("got Observer %q, want %q", cfg.Observer, "slog")
	}
}

func TestLoad_YAML(t *testing.T) {
	for _, name := range []string{"config.yaml", "config.yml"} {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, name, "name: person\n")

			cfg, err := config.Load(path)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}

			if cfg.Name != "person" {
				t.Errorf("got Name %q, want %q", cfg.Name, "person")
			}
			if cfg.Observer != "noop" {
				t.Errorf("got Observer %q, want %q", cfg.Observer, "noop")
			}
		})
	}
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	path := writeFile(t, "config.toml", `name = "person"`)

	_, err := config.Load(path)
	if !errors.Is(err, config.ErrUnsupportedFormat) {
		t.Errorf("got error %v, want ErrUnsupportedFormat", err)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got error %v, want wrapped os.ErrNotExist", err)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := writeFile(t, "config.json", `{invalid`)

	if _, err := config.Load(path); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestConfig_FromEnv(t *testing.T) {
	t.Setenv("OBSERVABLE_NAME", "from-env")
	t.Setenv("OBSERVABLE_OBSERVER", "slog")

	cfg := config.DefaultConfig()
	if err := cfg.FromEnv(); err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}

	if cfg.Name != "from-env" {
		t.Errorf("got Name %q, want %q", cfg.Name, "from-env")
	}
	if cfg.Observer != "slog" {
		t.Errorf("got Observer %q, want %q", cfg.Observer, "slog")
	}
}

func TestConfig_FromEnv_UnsetKeepsValues(t *testing.T) {
	t.Setenv("OBSERVABLE_NAME", "")
	t.Setenv("OBSERVABLE_OBSERVER", "")

	cfg := config.Config{Name: "file", Observer: "otel"}
	if err := cfg.FromEnv(); err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}

	if cfg.Name != "file" || cfg.Observer != "otel" {
		t.Errorf("got %+v, want values preserved", cfg)
	}
}
