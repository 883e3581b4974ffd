// SPDX-License-Identifier: MIT

package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"dymslex/internal/highlight"
	"dymslex/internal/issue"

	"github.com/alecthomas/chroma/v2"
	"github.com/spf13/cobra"
)

// tokenJSON is the JSON shape of a single token in `dymslex tokens --json`.
type tokenJSON struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// newTokensCommand creates the `dymslex tokens` command.
func newTokensCommand() *cobra.Command {
	var (
		lexerID string
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Dump the token stream for a DYMS source file",
		Long: `Tokenize a DYMS source file (or stdin) and print the token stream.

The default output is an aligned table of token types and values; --json
emits a machine-readable array instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, name, err := readSource(args)
			if err != nil {
				renderIssue(issue.SourceFileNotFoundId)
				return &ExitError{Code: 1, Err: err}
			}

			lexer, err := pickLexer(lexerID, name)
			if err != nil {
				renderIssue(issue.LexerNotRegisteredId)
				return &ExitError{Code: 1, Err: err}
			}

			tokens, err := highlight.Snippet(lexer, source)
			if err != nil {
				return &ExitError{Code: 1, Err: err}
			}

			if asJSON {
				return writeTokensJSON(cmd.OutOrStdout(), tokens)
			}
			writeTokensTable(cmd.OutOrStdout(), tokens)
			return nil
		},
	}

	cmd.Flags().StringVarP(&lexerID, "lexer", "l", "", "force a lexer by identifier (default: match filename, then 'dyms')")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit tokens as JSON")

	return cmd
}

// writeTokensJSON emits the token stream as a JSON array.
func writeTokensJSON(w io.Writer, tokens []chroma.Token) error {
	out := make([]tokenJSON, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, tokenJSON{Type: tok.Type.String(), Value: tok.Value})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// writeTokensTable prints an aligned table of token types and quoted values.
func writeTokensTable(w io.Writer, tokens []chroma.Token) {
	for _, tok := range tokens {
		fmt.Fprintf(w, "%-28s %q\n", tok.Type.String(), tok.Value)
	}
}
