package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tirasundara/activation-service/internal/config"
)

// errConfigExists is returned by config init when the target file is already present
var errConfigExists = errors.New("config file already exists")

func newConfigCmd(opts *cliOptions, stdout io.Writer) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the activation config file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration to the --config path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(opts.configPath); err == nil && !force {
				return fmt.Errorf("%w: %s (use --force to overwrite)", errConfigExists, opts.configPath)
			}

			if err := config.DefaultConfig().Save(opts.configPath); err != nil {
				return err
			}

			fmt.Fprintf(stdout, "Wrote default configuration to %s\n", opts.configPath)
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config file")

	configCmd.AddCommand(initCmd)
	return configCmd
}
