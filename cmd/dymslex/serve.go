// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"dymslex/internal/issue"
	"dymslex/internal/sshserve"

	"github.com/spf13/cobra"
)

// newServeCommand creates the `dymslex serve` command.
func newServeCommand() *cobra.Command {
	var (
		host        string
		port        int
		hostKeyPath string
		rootDir     string
		styleName   string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve highlighted file views over SSH",
		Long: `Start an SSH server that serves read-only highlighted views of the
files under a root directory.

Clients list the viewable files by connecting with no command, and view a
file by passing its relative path:

  ssh -p 2222 localhost            # list files
  ssh -p 2222 localhost prog.dyms  # view a file

The server runs until interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := sshserve.DefaultConfig()
			cfg.Host = loadedCfg.Serve.Host
			cfg.Port = loadedCfg.Serve.Port
			cfg.HostKeyPath = loadedCfg.Serve.HostKeyPath
			cfg.Style = loadedCfg.DefaultStyle.String()

			if cmd.Flags().Changed("host") {
				cfg.Host = host
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			if cmd.Flags().Changed("host-key") {
				cfg.HostKeyPath = hostKeyPath
			}
			if rootDir != "" {
				cfg.RootDir = rootDir
			}
			if styleName != "" {
				cfg.Style = styleName
			}

			srv := sshserve.New(cfg)

			ctx := cmd.Context()
			if err := srv.Start(ctx); err != nil {
				renderIssue(issue.ServeStartFailedId)
				return &ExitError{Code: 1, Err: err}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s listening on %s (root: %s)\n",
				SuccessStyle.Render("✓"), CmdStyle.Render(srv.Address()), cfg.RootDir)

			// Block until interrupted (fang cancels the context on SIGINT)
			// or the server fails.
			select {
			case <-ctx.Done():
			case err, ok := <-srv.Err():
				if ok && err != nil {
					_ = srv.Stop()
					return &ExitError{Code: 1, Err: err}
				}
			}

			return srv.Stop()
		},
	}

	cmd.Flags().StringVar(&host, "host", "127.0.0.1", "address to bind to")
	cmd.Flags().IntVarP(&port, "port", "p", 2222, "port to listen on (0 = auto-select)")
	cmd.Flags().StringVar(&hostKeyPath, "host-key", "", "SSH host key path (default: ephemeral key)")
	cmd.Flags().StringVar(&rootDir, "root", "", "directory to serve files from (default: current directory)")
	cmd.Flags().StringVarP(&styleName, "style", "s", "", "color style (default from config)")

	return cmd
}
