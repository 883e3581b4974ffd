// SPDX-License-Identifier: MIT

package dyms

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// Name is the canonical registry name of the DYMS lexer.
const Name = "DYMS"

// Lexer is the DYMS lexer, registered into the global chroma registry at
// package init.
var Lexer = lexers.Register(chroma.MustNewLexer(
	&chroma.Config{
		Name:      Name,
		Aliases:   []string{"dyms"},
		Filenames: []string{"*.dyms"},
		MimeTypes: []string{"text/x-dyms"},
		EnsureNL:  true,
	},
	dymsRules,
))

func dymsRules() chroma.Rules {
	return chroma.Rules{
		"root": {
			{Pattern: `\s+`, Type: chroma.Whitespace, Mutator: nil},
			{Pattern: `//[^\n]*`, Type: chroma.CommentSingle, Mutator: nil},
			{Pattern: `/\*`, Type: chroma.CommentMultiline, Mutator: chroma.Push("comment")},
			{Pattern: `"`, Type: chroma.LiteralStringDouble, Mutator: chroma.Push("string")},
			{Pattern: `'(\\.|[^'\\\n])*'`, Type: chroma.LiteralStringSingle, Mutator: nil},
			{Pattern: "`[^`]*`", Type: chroma.LiteralStringBacktick, Mutator: nil},
			{Pattern: `0[xX][0-9a-fA-F][0-9a-fA-F_]*`, Type: chroma.LiteralNumberHex, Mutator: nil},
			{Pattern: `0[bB][01][01_]*`, Type: chroma.LiteralNumberBin, Mutator: nil},
			{Pattern: `\d[\d_]*\.\d[\d_]*([eE][+-]?\d+)?`, Type: chroma.LiteralNumberFloat, Mutator: nil},
			{Pattern: `\d[\d_]*[eE][+-]?\d+`, Type: chroma.LiteralNumberFloat, Mutator: nil},
			{Pattern: `\d[\d_]*`, Type: chroma.LiteralNumberInteger, Mutator: nil},
			{Pattern: `fn\b`, Type: chroma.KeywordDeclaration, Mutator: chroma.Push("funcname")},
			{Pattern: chroma.Words(``, `\b`, `let`, `const`), Type: chroma.KeywordDeclaration, Mutator: nil},
			{Pattern: chroma.Words(``, `\b`, `if`, `elif`, `else`, `for`, `while`, `in`, `match`, `case`, `return`, `break`, `continue`), Type: chroma.Keyword, Mutator: nil},
			{Pattern: chroma.Words(``, `\b`, `import`, `from`, `as`), Type: chroma.KeywordNamespace, Mutator: nil},
			{Pattern: chroma.Words(``, `\b`, `true`, `false`, `null`), Type: chroma.KeywordConstant, Mutator: nil},
			{Pattern: chroma.Words(``, `\b`, `print`, `println`, `len`, `type`, `range`, `push`, `pop`, `keys`, `values`, `input`), Type: chroma.NameBuiltin, Mutator: nil},
			{Pattern: `[a-zA-Z_]\w*(?=\s*\()`, Type: chroma.NameFunction, Mutator: nil},
			{Pattern: `[a-zA-Z_]\w*`, Type: chroma.Name, Mutator: nil},
			{Pattern: `->|=>|==|!=|<=|>=|&&|\|\||[-+*/%!=<>?.]`, Type: chroma.Operator, Mutator: nil},
			{Pattern: `[{}()\[\],;:|&]`, Type: chroma.Punctuation, Mutator: nil},
			{Pattern: `.`, Type: chroma.Text, Mutator: nil},
		},
		// Block comments nest, so the state pushes itself on every inner
		// opener and pops once per closer.
		"comment": {
			{Pattern: `[^*/]+`, Type: chroma.CommentMultiline, Mutator: nil},
			{Pattern: `/\*`, Type: chroma.CommentMultiline, Mutator: chroma.Push()},
			{Pattern: `\*/`, Type: chroma.CommentMultiline, Mutator: chroma.Pop(1)},
			{Pattern: `[*/]`, Type: chroma.CommentMultiline, Mutator: nil},
		},
		"funcname": {
			{Pattern: `\s+`, Type: chroma.Whitespace, Mutator: nil},
			{Pattern: `[a-zA-Z_]\w*`, Type: chroma.NameFunction, Mutator: chroma.Pop(1)},
			chroma.Default(chroma.Pop(1)),
		},
		"string": {
			{Pattern: `\\[\\'"nrtbf0$]`, Type: chroma.LiteralStringEscape, Mutator: nil},
			{Pattern: `\$\{`, Type: chroma.LiteralStringInterpol, Mutator: chroma.Push("interp")},
			{Pattern: `"`, Type: chroma.LiteralStringDouble, Mutator: chroma.Pop(1)},
			{Pattern: `[^"\\$\n]+`, Type: chroma.LiteralStringDouble, Mutator: nil},
			{Pattern: `[$\n]`, Type: chroma.LiteralStringDouble, Mutator: nil},
		},
		// Interpolated expressions get a reduced rule set: plain highlighting
		// of names, literals and operators without re-entering string states.
		"interp": {
			{Pattern: `\}`, Type: chroma.LiteralStringInterpol, Mutator: chroma.Pop(1)},
			{Pattern: `\s+`, Type: chroma.Whitespace, Mutator: nil},
			{Pattern: `\d[\d_]*\.\d[\d_]*`, Type: chroma.LiteralNumberFloat, Mutator: nil},
			{Pattern: `\d[\d_]*`, Type: chroma.LiteralNumberInteger, Mutator: nil},
			{Pattern: `[a-zA-Z_]\w*`, Type: chroma.Name, Mutator: nil},
			{Pattern: `[-+*/%!=<>?.\[\](),:]`, Type: chroma.Operator, Mutator: nil},
			{Pattern: `[^}]`, Type: chroma.Text, Mutator: nil},
		},
	}
}
