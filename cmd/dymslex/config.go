// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"dymslex/internal/config"
	"dymslex/internal/issue"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `dymslex config` command tree.
func newConfigCommand() *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage dymslex configuration",
		Long: `Manage dymslex configuration.

Configuration is stored in:
  - Linux: ~/.config/dymslex/config.cue
  - macOS: ~/Library/Application Support/dymslex/config.cue
  - Windows: %APPDATA%\dymslex\config.cue`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig()
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath()
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output raw configuration as CUE",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			fmt.Print(config.GenerateCUE(cfg))
			return nil
		},
	})

	return cfgCmd
}

func showConfig() error {
	cfg, path, err := config.LoadResolved()
	if err != nil {
		if rendered, rerr := issue.Get(issue.ConfigLoadFailedId).Render(glamourScheme()); rerr == nil {
			fmt.Fprint(os.Stderr, rendered)
		}
		return err
	}

	headerStyle := TitleStyle
	keyStyle := CmdStyle
	valueStyle := SuccessStyle

	fmt.Println(headerStyle.Render("Current Configuration"))
	fmt.Println()

	if path != "" {
		fmt.Printf("%s: %s\n", keyStyle.Render("Config file"), path)
	} else {
		fmt.Printf("%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Println()

	fmt.Printf("%s: %s\n", keyStyle.Render("default_style"), valueStyle.Render(cfg.DefaultStyle.String()))
	fmt.Printf("%s: %s\n", keyStyle.Render("default_formatter"), valueStyle.Render(cfg.DefaultFormatter.String()))
	fmt.Printf("%s: %s\n", keyStyle.Render("ui.color_scheme"), valueStyle.Render(cfg.UI.ColorScheme.String()))
	fmt.Printf("%s: %s\n", keyStyle.Render("ui.verbose"), valueStyle.Render(fmt.Sprintf("%v", cfg.UI.Verbose)))
	fmt.Printf("%s: %s\n", keyStyle.Render("serve.host"), valueStyle.Render(cfg.Serve.Host))
	fmt.Printf("%s: %s\n", keyStyle.Render("serve.port"), valueStyle.Render(fmt.Sprintf("%d", cfg.Serve.Port)))
	if cfg.Serve.HostKeyPath != "" {
		fmt.Printf("%s: %s\n", keyStyle.Render("serve.host_key_path"), valueStyle.Render(cfg.Serve.HostKeyPath))
	}

	return nil
}

func initConfig() error {
	if err := config.CreateDefaultConfig(); err != nil {
		return err
	}

	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	cfgPath := filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt)

	fmt.Printf("%s configuration at %s\n", SuccessStyle.Render("✓"), cfgPath)
	return nil
}

func showConfigPath() error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	fmt.Println(filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt))
	return nil
}
