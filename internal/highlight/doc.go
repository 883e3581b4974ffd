// SPDX-License-Identifier: MIT

// Package highlight glues the plugin to the chroma host registries: lexer
// resolution by identifier, entry-point verification against the manifest,
// and the tokenize-and-format pipeline behind the CLI commands.
package highlight
