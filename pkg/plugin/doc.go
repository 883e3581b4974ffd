// SPDX-License-Identifier: MIT

// Package plugin defines the distribution manifest for the dymslex plugin.
//
// The manifest is the packaging descriptor of the plugin: name, version,
// author, license, classifier tags, the host framework dependency with its
// version constraint, and the entry-point table mapping language identifiers
// to lexer registry names. The canonical manifest for this distribution is
// embedded and available through Default.
package plugin
