// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"testing"
)

func TestColorSchemeIsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		scheme ColorScheme
		want   bool
	}{
		{name: "auto", scheme: ColorSchemeAuto, want: true},
		{name: "dark", scheme: ColorSchemeDark, want: true},
		{name: "light", scheme: ColorSchemeLight, want: true},
		{name: "empty", scheme: ColorScheme(""), want: false},
		{name: "unknown", scheme: ColorScheme("solarized"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			valid, errs := tt.scheme.IsValid()
			if valid != tt.want {
				t.Errorf("IsValid() = %v, want %v", valid, tt.want)
			}
			if !tt.want {
				if len(errs) == 0 {
					t.Fatal("expected validation errors, got none")
				}
				if !errors.Is(errs[0], ErrInvalidColorScheme) {
					t.Errorf("error %v does not wrap ErrInvalidColorScheme", errs[0])
				}
			}
		})
	}
}

func TestStyleNameIsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		style StyleName
		want  bool
	}{
		{name: "monokai", style: "monokai", want: true},
		{name: "empty", style: "", want: false},
		{name: "whitespace only", style: "   ", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			valid, errs := tt.style.IsValid()
			if valid != tt.want {
				t.Errorf("IsValid() = %v, want %v", valid, tt.want)
			}
			if !tt.want && !errors.Is(errs[0], ErrInvalidStyleName) {
				t.Errorf("error %v does not wrap ErrInvalidStyleName", errs[0])
			}
		})
	}
}

func TestServeConfigIsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  ServeConfig
		want bool
	}{
		{name: "default", cfg: ServeConfig{Host: "127.0.0.1", Port: 2222}, want: true},
		{name: "port zero", cfg: ServeConfig{Host: "0.0.0.0", Port: 0}, want: true},
		{name: "port too high", cfg: ServeConfig{Host: "127.0.0.1", Port: 70000}, want: false},
		{name: "negative port", cfg: ServeConfig{Host: "127.0.0.1", Port: -1}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			valid, errs := tt.cfg.IsValid()
			if valid != tt.want {
				t.Errorf("IsValid() = %v, want %v", valid, tt.want)
			}
			if !tt.want {
				if !errors.Is(errs[0], ErrInvalidServeConfig) {
					t.Errorf("error %v does not wrap ErrInvalidServeConfig", errs[0])
				}
				if !errors.Is(errs[0].(*InvalidServeConfigError).FieldErrors[0], ErrInvalidServePort) {
					t.Errorf("field error does not wrap ErrInvalidServePort")
				}
			}
		})
	}
}

func TestConfigIsValidCollectsFieldErrors(t *testing.T) {
	t.Parallel()

	cfg := Config{
		DefaultStyle:     "",
		DefaultFormatter: "terminal256",
		UI:               UIConfig{ColorScheme: "neon"},
		Serve:            ServeConfig{Host: "127.0.0.1", Port: 99999},
	}

	valid, errs := cfg.IsValid()
	if valid {
		t.Fatal("expected config to be invalid")
	}
	if len(errs) != 1 {
		t.Fatalf("expected a single wrapping error, got %d", len(errs))
	}

	var cfgErr *InvalidConfigError
	if !errors.As(errs[0], &cfgErr) {
		t.Fatalf("expected *InvalidConfigError, got %T", errs[0])
	}
	if len(cfgErr.FieldErrors) != 3 {
		t.Errorf("expected 3 field errors, got %d", len(cfgErr.FieldErrors))
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if valid, errs := cfg.IsValid(); !valid {
		t.Fatalf("default config is invalid: %v", errs)
	}
	if cfg.DefaultStyle != "monokai" {
		t.Errorf("DefaultStyle = %q, want monokai", cfg.DefaultStyle)
	}
	if cfg.DefaultFormatter != "terminal256" {
		t.Errorf("DefaultFormatter = %q, want terminal256", cfg.DefaultFormatter)
	}
}
