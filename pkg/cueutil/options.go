// SPDX-License-Identifier: MIT

package cueutil

// DefaultMaxFileSize is the maximum accepted input size in bytes. Inputs are
// read fully into memory before parsing, so oversized files are rejected up
// front.
const DefaultMaxFileSize int64 = 1 << 20

type options struct {
	filename    string
	concrete    bool
	maxFileSize int64
}

// Option configures a parse operation.
type Option func(*options)

func defaultOptions() options {
	return options{
		concrete:    true,
		maxFileSize: DefaultMaxFileSize,
	}
}

// WithFilename sets the filename reported in error messages.
func WithFilename(name string) Option {
	return func(o *options) { o.filename = name }
}

// WithConcrete controls whether validation requires concrete values.
// Defaults to true; pass false for inputs with optional fields that are
// resolved later (e.g. config files merged over defaults).
func WithConcrete(concrete bool) Option {
	return func(o *options) { o.concrete = concrete }
}

// WithMaxFileSize overrides the maximum accepted input size in bytes.
func WithMaxFileSize(size int64) Option {
	return func(o *options) { o.maxFileSize = size }
}
