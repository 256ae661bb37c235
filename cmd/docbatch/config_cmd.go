package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/docbatch/internal/config"
	"github.com/raphi011/docbatch/internal/log"
	"github.com/raphi011/docbatch/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage docbatch configuration.

Config file: $XDG_CONFIG_HOME/docbatch/config.toml
             (default ~/.config/docbatch/config.toml)

Environment overrides: DOCBATCH_OUTPUT_DIR, DOCBATCH_SHEET_NAME, DOCBATCH_THEME`,
		Example: `  docbatch config init     # Create default config
  docbatch config show     # Show effective config`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Example: `  docbatch config init     # Create config
  docbatch config init -f  # Overwrite existing config
  docbatch config init -s  # Print config to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			if stdout {
				out.Print(config.DefaultConfigFile)
				return nil
			}

			path, err := config.Path()
			if err != nil {
				return err
			}
			if err := config.Init(path, force); err != nil {
				return err
			}

			log.FromContext(ctx).Printf("Created config file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		Long: `Show effective configuration.

Prints the configuration after applying defaults, the config file and
environment overrides, as TOML.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			out := output.FromContext(ctx)

			if path, err := config.Path(); err == nil {
				out.Printf("# %s\n", path)
			}
			if err := cfg.Encode(out.Writer()); err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			return nil
		},
	}

	return cmd
}
