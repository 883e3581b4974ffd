// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"dymslex/internal/issue"
	"dymslex/pkg/plugin"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

// newInfoCommand creates the `dymslex info` command.
func newInfoCommand() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show the plugin manifest",
		Long: `Render the embedded plugin manifest: distribution metadata, the host
dependency constraint, entry points, and classifier tags.

Use --raw to print the manifest as TOML instead of rendered markdown.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := plugin.Default()
			if err != nil {
				renderIssue(issue.ManifestInvalidId)
				return &ExitError{Code: 1, Err: err}
			}

			if raw {
				toml, err := m.TOML()
				if err != nil {
					return &ExitError{Code: 1, Err: err}
				}
				fmt.Fprint(cmd.OutOrStdout(), string(toml))
				return nil
			}

			rendered, err := glamour.Render(m.Markdown(), glamourScheme())
			if err != nil {
				// Fall back to the plain markdown when rendering fails
				fmt.Fprint(cmd.OutOrStdout(), m.Markdown())
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "print the manifest as TOML")

	return cmd
}
