// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"dymslex/internal/highlight"
	"dymslex/internal/issue"
	"dymslex/pkg/plugin"

	"github.com/spf13/cobra"
)

// newCheckCommand creates the `dymslex check` command.
func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the plugin registration and host compatibility",
		Long: `Verify that the plugin is correctly wired into the host framework:

  1. The embedded manifest parses and passes schema validation.
  2. Every declared entry point resolves to a registered lexer.
  3. The host dependency constraint is satisfied by the linked chroma.

Exits non-zero when any check fails, so it can gate CI.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			m, err := plugin.Default()
			if err != nil {
				renderIssue(issue.ManifestInvalidId)
				return &ExitError{Code: 1, Err: err}
			}
			fmt.Fprintln(out, SuccessStyle.Render("✓")+" manifest parses and validates")

			if err := highlight.Verify(m); err != nil {
				renderIssue(issue.LexerNotRegisteredId)
				return &ExitError{Code: 1, Err: err}
			}
			for _, lang := range m.Languages() {
				fmt.Fprintf(out, "%s entry point %s resolves to lexer %s\n",
					SuccessStyle.Render("✓"), CmdStyle.Render(lang), m.EntryPoints[lang])
			}

			if err := m.CheckHost(); err != nil {
				return &ExitError{Code: 1, Err: err}
			}
			fmt.Fprintf(out, "%s host constraint %s %s satisfied\n",
				SuccessStyle.Render("✓"), m.Requires.Host, m.Requires.Constraint)

			return nil
		},
	}
}
