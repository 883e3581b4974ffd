// SPDX-License-Identifier: MIT

package highlight

import (
	"fmt"
	"io"
	"strings"

	"dymslex/internal/issue"
	"dymslex/pkg/plugin"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Resolve looks up a lexer in the chroma registry by name or alias and
// coalesces adjacent same-type tokens for cleaner output.
func Resolve(id string) (chroma.Lexer, error) {
	lexer := lexers.Get(id)
	if lexer == nil {
		return nil, issue.NewErrorContext().
			WithOperation("resolve lexer").
			WithResource(id).
			WithSuggestion("Check the language identifier for typos").
			WithSuggestion("Run 'dymslex info' to list the entry points this plugin provides").
			BuildError()
	}
	return chroma.Coalesce(lexer), nil
}

// Match returns a coalesced lexer for the given filename, or nil when no
// registered lexer claims it.
func Match(filename string) chroma.Lexer {
	lexer := lexers.Match(filename)
	if lexer == nil {
		return nil
	}
	return chroma.Coalesce(lexer)
}

// Verify walks the manifest entry points and confirms each one resolves to a
// registered lexer whose registry name matches the declared lexer name.
func Verify(m *plugin.Manifest) error {
	ids := maps.Keys(m.EntryPoints)
	slices.Sort(ids)

	for _, id := range ids {
		want := m.EntryPoints[id]

		lexer := lexers.Get(id)
		if lexer == nil {
			return issue.NewErrorContext().
				WithOperation("verify entry point").
				WithResource(id).
				WithSuggestion("Check that the lexer package is imported (it registers on import)").
				WithSuggestion("Run 'dymslex info' to see the declared entry points").
				Wrap(fmt.Errorf("no lexer registered for identifier %q", id)).
				BuildError()
		}

		if got := lexer.Config().Name; got != want {
			return issue.NewErrorContext().
				WithOperation("verify entry point").
				WithResource(id).
				WithSuggestion("Update the manifest entry point to match the registered lexer name").
				Wrap(fmt.Errorf("identifier %q resolves to lexer %q, manifest declares %q", id, got, want)).
				BuildError()
		}
	}

	return nil
}

// Snippet tokenizes source with the given lexer and returns the flat token
// slice.
func Snippet(lexer chroma.Lexer, source string) ([]chroma.Token, error) {
	tokens, err := chroma.Tokenise(lexer, nil, source)
	if err != nil {
		return nil, issue.WrapWithOperation(err, "tokenize source")
	}
	return tokens, nil
}

// Style resolves a chroma style by name. Unlike styles.Get it reports
// unknown names instead of silently falling back.
func Style(name string) (*chroma.Style, error) {
	if style, ok := styles.Registry[name]; ok {
		return style, nil
	}
	return nil, issue.NewErrorContext().
		WithOperation("resolve style").
		WithResource(name).
		WithSuggestion("Run 'dymslex highlight --list-styles' to see available styles").
		WithSuggestion(fmt.Sprintf("Common styles: %s", strings.Join([]string{"monokai", "dracula", "github"}, ", "))).
		BuildError()
}

// Formatter resolves a chroma formatter by name. Unlike formatters.Get it
// reports unknown names instead of silently falling back.
func Formatter(name string) (chroma.Formatter, error) {
	if formatter, ok := formatters.Registry[name]; ok {
		return formatter, nil
	}
	return nil, issue.NewErrorContext().
		WithOperation("resolve formatter").
		WithResource(name).
		WithSuggestion("Run 'dymslex highlight --list-formatters' to see available formatters").
		WithSuggestion("Common formatters: terminal256, html, json, svg").
		BuildError()
}

// Render tokenizes source with the lexer resolved from id and writes the
// formatted result to w using the named style and formatter.
func Render(w io.Writer, id, styleName, formatterName, source string) error {
	lexer, err := Resolve(id)
	if err != nil {
		return err
	}
	return RenderWith(w, lexer, styleName, formatterName, source)
}

// RenderWith is Render for an already-resolved lexer.
func RenderWith(w io.Writer, lexer chroma.Lexer, styleName, formatterName, source string) error {
	style, err := Style(styleName)
	if err != nil {
		return err
	}

	formatter, err := Formatter(formatterName)
	if err != nil {
		return err
	}

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return issue.WrapWithOperation(err, "tokenize source")
	}

	if err := formatter.Format(w, style, iterator); err != nil {
		return issue.WrapWithOperation(err, "format tokens")
	}

	return nil
}

// StyleNames returns the sorted names of all registered styles.
func StyleNames() []string {
	return styles.Names()
}

// FormatterNames returns the sorted names of all registered formatters.
func FormatterNames() []string {
	names := maps.Keys(formatters.Registry)
	slices.Sort(names)
	return names
}
