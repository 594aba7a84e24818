package main

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configInitOut string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration helpers",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the effective configuration to a YAML file",
	Long:  "Writes the current configuration (defaults merged with any existing config file and environment overrides) to config.yaml as a starting point for edits.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if _, err := os.Stat(configInitOut); err == nil {
			return eris.Errorf("config: %s already exists, refusing to overwrite", configInitOut)
		}

		data, err := yaml.Marshal(cfg)
		if err != nil {
			return eris.Wrap(err, "config: marshal")
		}
		if err := os.WriteFile(configInitOut, data, 0o644); err != nil {
			return eris.Wrapf(err, "config: write %s", configInitOut)
		}

		fmt.Printf("Wrote %s\n", configInitOut)
		return nil
	},
}

func init() {
	configInitCmd.Flags().StringVar(&configInitOut, "out", "config.yaml", "output file")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
