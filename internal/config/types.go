// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidStyleName is returned when a StyleName value is whitespace-only.
	ErrInvalidStyleName = errors.New("invalid style name")
	// ErrInvalidFormatterName is returned when a FormatterName value is whitespace-only.
	ErrInvalidFormatterName = errors.New("invalid formatter name")
	// ErrInvalidServePort is returned when a serve port is out of range.
	ErrInvalidServePort = errors.New("invalid serve port")
	// ErrInvalidServeConfig is the sentinel error wrapped by InvalidServeConfigError.
	ErrInvalidServeConfig = errors.New("invalid serve config")
	// ErrInvalidUIConfig is the sentinel error wrapped by InvalidUIConfigError.
	ErrInvalidUIConfig = errors.New("invalid UI config")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// StyleName is the name of a chroma color style (e.g. "monokai").
	// A valid name must be non-empty and not whitespace-only; whether it
	// exists in the style registry is checked at use time.
	StyleName string

	// InvalidStyleNameError is returned when a StyleName is empty or
	// whitespace-only. It wraps ErrInvalidStyleName for errors.Is().
	InvalidStyleNameError struct {
		Value StyleName
	}

	// FormatterName is the name of a chroma output formatter
	// (e.g. "terminal256", "html").
	FormatterName string

	// InvalidFormatterNameError is returned when a FormatterName is empty or
	// whitespace-only. It wraps ErrInvalidFormatterName for errors.Is().
	InvalidFormatterNameError struct {
		Value FormatterName
	}

	// InvalidServePortError is returned when a serve port is out of the
	// 0-65535 range. It wraps ErrInvalidServePort for errors.Is().
	InvalidServePortError struct {
		Value int
	}

	// InvalidServeConfigError collects field-level validation errors from a
	// ServeConfig. It wraps ErrInvalidServeConfig for errors.Is().
	InvalidServeConfigError struct {
		FieldErrors []error
	}

	// InvalidUIConfigError collects field-level validation errors from a
	// UIConfig. It wraps ErrInvalidUIConfig for errors.Is().
	InvalidUIConfigError struct {
		FieldErrors []error
	}

	// InvalidConfigError collects field-level validation errors from a
	// Config. It wraps ErrInvalidConfig for errors.Is().
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// DefaultStyle is the chroma style used when --style is not given.
		DefaultStyle StyleName `json:"default_style" mapstructure:"default_style"`
		// DefaultFormatter is the formatter used when --formatter is not given.
		DefaultFormatter FormatterName `json:"default_formatter" mapstructure:"default_formatter"`
		// UI configures the user interface.
		UI UIConfig `json:"ui" mapstructure:"ui"`
		// Serve configures the SSH highlight server.
		Serve ServeConfig `json:"serve" mapstructure:"serve"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// ColorScheme sets the color scheme.
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		// Verbose enables verbose output.
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}

	// ServeConfig configures the SSH highlight server.
	ServeConfig struct {
		// Host is the address to bind to.
		Host string `json:"host" mapstructure:"host"`
		// Port is the port to listen on (0 = auto-select).
		Port int `json:"port" mapstructure:"port"`
		// HostKeyPath is the path to the SSH host key. Empty generates an
		// ephemeral key on startup.
		HostKeyPath string `json:"host_key_path" mapstructure:"host_key_path"`
	}
)

// String returns the string representation of the StyleName.
func (s StyleName) String() string { return string(s) }

// IsValid returns whether the StyleName is valid.
// A valid name must be non-empty and not whitespace-only.
func (s StyleName) IsValid() (bool, []error) {
	if strings.TrimSpace(string(s)) == "" {
		return false, []error{&InvalidStyleNameError{Value: s}}
	}
	return true, nil
}

// Error implements the error interface for InvalidStyleNameError.
func (e *InvalidStyleNameError) Error() string {
	return fmt.Sprintf("invalid style name %q: must be non-empty", e.Value)
}

// Unwrap returns ErrInvalidStyleName for errors.Is() compatibility.
func (e *InvalidStyleNameError) Unwrap() error { return ErrInvalidStyleName }

// String returns the string representation of the FormatterName.
func (f FormatterName) String() string { return string(f) }

// IsValid returns whether the FormatterName is valid.
// A valid name must be non-empty and not whitespace-only.
func (f FormatterName) IsValid() (bool, []error) {
	if strings.TrimSpace(string(f)) == "" {
		return false, []error{&InvalidFormatterNameError{Value: f}}
	}
	return true, nil
}

// Error implements the error interface for InvalidFormatterNameError.
func (e *InvalidFormatterNameError) Error() string {
	return fmt.Sprintf("invalid formatter name %q: must be non-empty", e.Value)
}

// Unwrap returns ErrInvalidFormatterName for errors.Is() compatibility.
func (e *InvalidFormatterNameError) Unwrap() error { return ErrInvalidFormatterName }

// String returns the string representation of the ColorScheme.
func (cs ColorScheme) String() string { return string(cs) }

// IsValid returns whether the ColorScheme is one of the defined color schemes,
// and a list of validation errors if it is not.
func (cs ColorScheme) IsValid() (bool, []error) {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: cs}}
	}
}

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error {
	return ErrInvalidColorScheme
}

// Error implements the error interface for InvalidServePortError.
func (e *InvalidServePortError) Error() string {
	return fmt.Sprintf("invalid serve port %d (valid: 0-65535)", e.Value)
}

// Unwrap returns ErrInvalidServePort for errors.Is() compatibility.
func (e *InvalidServePortError) Unwrap() error { return ErrInvalidServePort }

// IsValid returns whether the ServeConfig has valid fields.
func (c ServeConfig) IsValid() (bool, []error) {
	var errs []error
	if c.Port < 0 || c.Port > 65535 {
		errs = append(errs, &InvalidServePortError{Value: c.Port})
	}
	if len(errs) > 0 {
		return false, []error{&InvalidServeConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidServeConfigError.
func (e *InvalidServeConfigError) Error() string {
	return fmt.Sprintf("invalid serve config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidServeConfig for errors.Is() compatibility.
func (e *InvalidServeConfigError) Unwrap() error { return ErrInvalidServeConfig }

// IsValid returns whether the UIConfig has valid fields.
// It delegates to ColorScheme.IsValid(); bool fields need no validation.
func (c UIConfig) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.ColorScheme.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidUIConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidUIConfigError.
func (e *InvalidUIConfigError) Error() string {
	return fmt.Sprintf("invalid UI config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidUIConfig for errors.Is() compatibility.
func (e *InvalidUIConfigError) Unwrap() error { return ErrInvalidUIConfig }

// IsValid returns whether the Config has valid fields.
// It delegates to DefaultStyle, DefaultFormatter, UI, and Serve validation.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.DefaultStyle.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.DefaultFormatter.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.UI.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Serve.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		DefaultStyle:     "monokai",
		DefaultFormatter: "terminal256",
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
		Serve: ServeConfig{
			Host:        "127.0.0.1",
			Port:        2222,
			HostKeyPath: "",
		},
	}
}
