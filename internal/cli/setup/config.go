package setup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flowforge/internal/cli"
	"github.com/thenoetrevino/flowforge/internal/config"
)

// ConfigCmd returns the setup config subcommand
func ConfigCmd() *cobra.Command {
	var (
		checkFlag  bool
		removeFlag bool
		forceFlag  bool
		themeFlag  string
		backend    string
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Write the default configuration file",
		Long: `Write a configuration file holding the defaults, so they can be edited.

The file goes to --config when given, otherwise $FLOWFORGE_CONFIG or
$XDG_CONFIG_HOME/flowforge/config.yaml.

Examples:
  # Write the defaults
  flowforge setup config

  # Use the monochrome theme and keep data in memory
  flowforge setup config --theme monochrome --backend memory

  # Check whether a config file exists
  flowforge setup config --check

  # Remove the config file
  flowforge setup config --remove
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			path, err := cli.ConfigPath(ctx)
			if err != nil {
				return fmt.Errorf("locate config: %w", err)
			}
			out := cmd.OutOrStdout()

			switch {
			case checkFlag:
				return CheckConfig(out, path)
			case removeFlag:
				return RemoveConfig(out, path)
			}

			cfg := config.Default()
			if themeFlag != "" {
				cfg.Theme = config.ThemePreset(themeFlag)
			}
			if backend != "" {
				cfg.Backend = backend
			}
			return InstallConfig(out, path, cfg, forceFlag)
		},
	}

	cmd.Flags().BoolVar(&checkFlag, "check", false, "Check whether a config file exists")
	cmd.Flags().BoolVar(&removeFlag, "remove", false, "Remove the config file")
	cmd.Flags().BoolVar(&forceFlag, "force", false, "Overwrite an existing config file")
	cmd.Flags().StringVar(&themeFlag, "theme", "", "Theme preset (default, monochrome)")
	cmd.Flags().StringVar(&backend, "backend", "", "Storage backend (sqlite, memory)")

	return cmd
}

// InstallConfig validates cfg and writes it to path. An existing file is kept
// unless force is set.
func InstallConfig(out io.Writer, path string, cfg *config.Config, force bool) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil && !force {
		fmt.Fprintf(out, "✓ Config already exists: %s\n", path)
		fmt.Fprintln(out, "  Pass --force to overwrite it with the defaults")
		return nil
	}

	if err := cfg.SaveTo(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	fmt.Fprintf(out, "✓ Config written: %s\n", path)
	fmt.Fprintf(out, "  Backend: %s\n", cfg.Backend)
	fmt.Fprintf(out, "  Data:    %s\n", cfg.DataDir)
	return nil
}

// CheckConfig reports whether a config file exists and parses
func CheckConfig(out io.Writer, path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		fmt.Fprintln(out, "✗ No config file:", path)
		fmt.Fprintln(out, "  Run: flowforge setup config")
		return nil
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		fmt.Fprintln(out, "✗ Config is invalid:", path)
		return err
	}
	fmt.Fprintln(out, "✓ Config found:", path)
	fmt.Fprintf(out, "  Backend: %s\n", cfg.Backend)
	return nil
}

// RemoveConfig deletes the config file if there is one
func RemoveConfig(out io.Writer, path string) error {
	err := os.Remove(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		fmt.Fprintln(out, "No config file found")
		return nil
	case err != nil:
		return fmt.Errorf("remove config: %w", err)
	}
	fmt.Fprintln(out, "✓ Config removed:", path)
	return nil
}
