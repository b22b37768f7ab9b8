package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"substation/internal/config"
)

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "config",
		Short:       "Manage configuration",
		Annotations: map[string]string{"skipConfigLoad": "true"},
	}

	cmd.AddCommand(newConfigInitCommand())
	cmd.AddCommand(newConfigValidateCommand())
	cmd.AddCommand(newConfigShowCommand())

	return cmd
}

func newConfigInitCommand() *cobra.Command {
	var (
		pathFlag  string
		forceFlag bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a commented sample configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := pathFlag
			if path == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return err
				}
				path = defaultPath
			} else {
				expanded, err := config.ExpandPath(path)
				if err != nil {
					return err
				}
				path = expanded
			}

			if _, err := os.Stat(path); err == nil && !forceFlag {
				return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("stat config: %w", err)
			}

			if err := config.CreateSample(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample configuration to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&pathFlag, "path", "", "Destination path (default: the default config location)")
	cmd.Flags().BoolVar(&forceFlag, "force", false, "Overwrite an existing file")

	return cmd
}

func newConfigValidateCommand() *cobra.Command {
	var pathFlag string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check that the configuration parses and validates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, resolvedPath, exists, err := config.Load(pathFlag)
			if err != nil {
				return err
			}
			if exists {
				fmt.Fprintf(cmd.OutOrStdout(), "Configuration at %s is valid.\n", resolvedPath)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "No config file found (looked at %s); built-in defaults are valid.\n", resolvedPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&pathFlag, "path", "", "Configuration file to validate (default: the default locations)")

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	var pathFlag string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, resolvedPath, exists, err := config.Load(pathFlag)
			if err != nil {
				return err
			}
			if exists {
				fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", resolvedPath)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "# built-in defaults (no config file found)")
			}
			encoder := toml.NewEncoder(cmd.OutOrStdout())
			return encoder.Encode(cfg)
		},
	}

	cmd.Flags().StringVar(&pathFlag, "path", "", "Configuration file to show (default: the default locations)")

	return cmd
}
