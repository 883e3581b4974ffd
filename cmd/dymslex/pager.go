// SPDX-License-Identifier: MIT

package cmd

import (
	"strings"

	"dymslex/internal/highlight"
	"dymslex/internal/issue"
	"dymslex/internal/tui"

	"github.com/spf13/cobra"
)

// newPagerCommand creates the `dymslex pager` command.
func newPagerCommand() *cobra.Command {
	var (
		styleName string
		lexerID   string
	)

	cmd := &cobra.Command{
		Use:   "pager [file]",
		Short: "View a highlighted source file in a scrollable pager",
		Args:  cobra.MaximumNArgs(1),
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

			if styleName == "" {
				styleName = loadedCfg.DefaultStyle.String()
			}

			var rendered strings.Builder
			if err := highlight.RenderWith(&rendered, lexer, styleName, "terminal256", source); err != nil {
				return &ExitError{Code: 1, Err: err}
			}

			if err := tui.Pager(tui.PagerOptions{
				Content: rendered.String(),
				Title:   name,
			}); err != nil {
				return &ExitError{Code: 1, Err: err}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&styleName, "style", "s", "", "color style (default from config)")
	cmd.Flags().StringVarP(&lexerID, "lexer", "l", "", "force a lexer by identifier (default: match filename, then 'dyms')")

	return cmd
}
