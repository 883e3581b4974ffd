// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"io"
	"os"

	"dymslex/internal/highlight"
	"dymslex/internal/issue"

	"github.com/alecthomas/chroma/v2"
	"github.com/spf13/cobra"
)

// newHighlightCommand creates the `dymslex highlight` command.
func newHighlightCommand() *cobra.Command {
	var (
		styleName      string
		formatterName  string
		outputPath     string
		lexerID        string
		listStyles     bool
		listFormatters bool
	)

	cmd := &cobra.Command{
		Use:   "highlight [file]",
		Short: "Highlight a DYMS source file",
		Long: `Highlight a DYMS source file (or stdin) through the chroma pipeline.

The formatter selects the output medium: terminal escape codes by default,
or html, json, svg and others via --formatter.

Examples:
  dymslex highlight prog.dyms
  dymslex highlight --style dracula prog.dyms
  dymslex highlight --formatter html --output prog.html prog.dyms
  cat prog.dyms | dymslex highlight`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if listStyles {
				for _, name := range highlight.StyleNames() {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			}
			if listFormatters {
				for _, name := range highlight.FormatterNames() {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			}

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

			if styleName == "" {
				styleName = loadedCfg.DefaultStyle.String()
			}
			if formatterName == "" {
				formatterName = loadedCfg.DefaultFormatter.String()
			}

			out := cmd.OutOrStdout()
			if outputPath != "" {
				f, err := os.Create(outputPath)
				if err != nil {
					return &ExitError{Code: 1, Err: fmt.Errorf("failed to create output file: %w", err)}
				}
				defer func() { _ = f.Close() }()
				out = f
			}

			if err := highlight.RenderWith(out, lexer, styleName, formatterName, source); err != nil {
				return &ExitError{Code: 1, Err: err}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&styleName, "style", "s", "", "color style (default from config)")
	cmd.Flags().StringVarP(&formatterName, "formatter", "f", "", "output formatter (default from config)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write output to a file instead of stdout")
	cmd.Flags().StringVarP(&lexerID, "lexer", "l", "", "force a lexer by identifier (default: match filename, then 'dyms')")
	cmd.Flags().BoolVar(&listStyles, "list-styles", false, "list available styles and exit")
	cmd.Flags().BoolVar(&listFormatters, "list-formatters", false, "list available formatters and exit")

	return cmd
}

// readSource reads the source to highlight from the file argument or stdin.
// Returns the source text and a display name for lexer matching.
func readSource(args []string) (string, string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), "<stdin>", nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", issue.WrapWithContext(err, "read source file", args[0])
	}
	return string(data), args[0], nil
}

// pickLexer selects a lexer: an explicit identifier wins, then filename
// matching, then the plugin's own language.
func pickLexer(lexerID, name string) (chroma.Lexer, error) {
	if lexerID != "" {
		return highlight.Resolve(lexerID)
	}
	if lexer := highlight.Match(name); lexer != nil {
		return lexer, nil
	}
	return highlight.Resolve("dyms")
}

// renderIssue prints a glamour-rendered issue card to stderr.
// Rendering failures fall back to nothing; the actionable error that
// follows carries the essentials.
func renderIssue(id issue.Id) {
	if i := issue.Get(id); i != nil {
		if rendered, err := i.Render(glamourScheme()); err == nil {
			fmt.Fprint(os.Stderr, rendered)
		}
	}
}

// glamourScheme maps the configured color scheme to a glamour style path.
func glamourScheme() string {
	switch loadedCfg.UI.ColorScheme {
	case "dark":
		return "dark"
	case "light":
		return "light"
	default:
		return "auto"
	}
}
