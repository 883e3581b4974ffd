// SPDX-License-Identifier: MIT

// Package dyms provides the chroma lexer for the DYMS programming language.
//
// Importing this package (including blank imports) registers the lexer into
// chroma's global registry, after which the language can be resolved by the
// "dyms" alias, by the *.dyms filename pattern, or by the text/x-dyms MIME
// type, the same discovery surface a host highlighter uses for any built-in
// language.
package dyms
