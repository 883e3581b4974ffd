// SPDX-License-Identifier: MIT

// Package config loads and persists the dymslex configuration.
//
// Configuration lives in a CUE file under the platform config directory and
// is validated against an embedded schema before being merged into Viper
// over the built-in defaults.
package config
