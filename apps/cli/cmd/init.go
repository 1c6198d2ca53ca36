package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/abdul-hamid-achik/httpie/packages/core/config"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default .httpie.yaml in the current directory",
		Long: `Write a .httpie.yaml holding the default settings to the current directory.

Edit it to set default headers, a timeout, a proxy or an env file. Flags and
HTTPIE_* variables still take precedence over it.

Examples:
  httpie init
  httpie init --force`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}

			configFile := filepath.Join(cwd, config.ConfigFilenames[0])
			if !force {
				if _, err := os.Stat(configFile); err == nil {
					return fmt.Errorf("file already exists: %s (use --force to overwrite)", configFile)
				}
			}

			if err := config.DefaultConfig().SaveConfig(configFile); err != nil {
				return fmt.Errorf("failed to create config file: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created: %s\n", configFile)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config file")
	return cmd
}
