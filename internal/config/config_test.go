// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaultsWhenNoConfigFile(t *testing.T) {
	SetConfigDirOverride(t.TempDir())
	t.Cleanup(Reset)

	cfg, path, err := LoadResolved()
	if err != nil {
		t.Fatalf("LoadResolved() error = %v", err)
	}
	if path != "" {
		t.Errorf("expected no resolved path, got %q", path)
	}
	if cfg.DefaultStyle != "monokai" {
		t.Errorf("DefaultStyle = %q, want monokai", cfg.DefaultStyle)
	}
	if cfg.Serve.Port != 2222 {
		t.Errorf("Serve.Port = %d, want 2222", cfg.Serve.Port)
	}
}

func TestLoadMergesConfigFileOverDefaults(t *testing.T) {
	dir := t.TempDir()
	SetConfigDirOverride(dir)
	t.Cleanup(Reset)

	content := `
default_style: "dracula"

serve: {
	port: 4022
}
`
	cfgPath := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, path, err := LoadResolved()
	if err != nil {
		t.Fatalf("LoadResolved() error = %v", err)
	}
	if path != cfgPath {
		t.Errorf("resolved path = %q, want %q", path, cfgPath)
	}
	if cfg.DefaultStyle != "dracula" {
		t.Errorf("DefaultStyle = %q, want dracula", cfg.DefaultStyle)
	}
	if cfg.Serve.Port != 4022 {
		t.Errorf("Serve.Port = %d, want 4022", cfg.Serve.Port)
	}
	// Untouched fields keep their defaults
	if cfg.DefaultFormatter != "terminal256" {
		t.Errorf("DefaultFormatter = %q, want terminal256", cfg.DefaultFormatter)
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "schema violation",
			content: `ui: color_scheme: "neon"`,
		},
		{
			name:    "port out of range",
			content: `serve: port: 99999`,
		},
		{
			name:    "not CUE",
			content: `{{{`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			SetConfigDirOverride(dir)
			t.Cleanup(Reset)

			cfgPath := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
			if err := os.WriteFile(cfgPath, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}

			if _, err := Load(); err == nil {
				t.Error("expected error for invalid config, got nil")
			}
		})
	}
}

func TestLoadWithConfigFilePathOverride(t *testing.T) {
	dir := t.TempDir()
	t.Cleanup(Reset)

	cfgPath := filepath.Join(dir, "custom.cue")
	if err := os.WriteFile(cfgPath, []byte(`default_formatter: "html"`), 0o644); err != nil {
		t.Fatal(err)
	}
	SetConfigFilePathOverride(cfgPath)

	cfg, path, err := LoadResolved()
	if err != nil {
		t.Fatalf("LoadResolved() error = %v", err)
	}
	if path != cfgPath {
		t.Errorf("resolved path = %q, want %q", path, cfgPath)
	}
	if cfg.DefaultFormatter != "html" {
		t.Errorf("DefaultFormatter = %q, want html", cfg.DefaultFormatter)
	}
}

func TestLoadMissingOverrideFileFails(t *testing.T) {
	t.Cleanup(Reset)
	SetConfigFilePathOverride(filepath.Join(t.TempDir(), "nope.cue"))

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing override file, got nil")
	}
	if !errors.Is(err, os.ErrNotExist) && !strings.Contains(err.Error(), "not found") {
		t.Errorf("error should mention the missing file: %v", err)
	}
}

func TestSaveAndReload(t *testing.T) {
	SetConfigDirOverride(t.TempDir())
	t.Cleanup(Reset)

	want := DefaultConfig()
	want.DefaultStyle = "github"
	want.UI.Verbose = true
	want.Serve.HostKeyPath = "/tmp/hostkey"

	if err := Save(want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.DefaultStyle != want.DefaultStyle {
		t.Errorf("DefaultStyle = %q, want %q", got.DefaultStyle, want.DefaultStyle)
	}
	if got.UI.Verbose != want.UI.Verbose {
		t.Errorf("UI.Verbose = %v, want %v", got.UI.Verbose, want.UI.Verbose)
	}
	if got.Serve.HostKeyPath != want.Serve.HostKeyPath {
		t.Errorf("Serve.HostKeyPath = %q, want %q", got.Serve.HostKeyPath, want.Serve.HostKeyPath)
	}
}

func TestCreateDefaultConfigDoesNotOverwrite(t *testing.T) {
	dir := t.TempDir()
	SetConfigDirOverride(dir)
	t.Cleanup(Reset)

	cfgPath := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
	existing := `default_style: "vim"` + "\n"
	if err := os.WriteFile(cfgPath, []byte(existing), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := CreateDefaultConfig(); err != nil {
		t.Fatalf("CreateDefaultConfig() error = %v", err)
	}

	data, err := os.ReadFile(cfgPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != existing {
		t.Error("CreateDefaultConfig overwrote an existing config file")
	}
}

func TestGenerateCUERoundTripsThroughSchema(t *testing.T) {
	SetConfigDirOverride(t.TempDir())
	t.Cleanup(Reset)

	cfg := DefaultConfig()
	out := GenerateCUE(cfg)
	if !strings.Contains(out, `default_style: "monokai"`) {
		t.Errorf("generated CUE missing default_style: %s", out)
	}

	if err := Save(cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := Load(); err != nil {
		t.Fatalf("generated config failed to load: %v", err)
	}
}
