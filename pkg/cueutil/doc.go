// SPDX-License-Identifier: MIT

// Package cueutil provides shared CUE parsing and validation utilities.
//
// Two flows are supported:
//
//  1. ParseAndDecode: compile an embedded schema, compile user data, unify,
//     validate, and decode into a Go struct. Used for CUE-format inputs such
//     as the configuration file.
//  2. ValidateValue: encode an in-memory Go value and unify it with an
//     embedded schema. Used for inputs that arrive in other encodings (the
//     TOML plugin manifest) but still carry a CUE schema.
package cueutil
