package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/minedu-grd/encuesta-cli/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "encuesta",
	Short: "Descriptive analytics over the GRD survey export",
	Long:  "Loads a survey export (XLSX or CSV), normalizes the MINEDU tier field, and computes per-question frequency tables, charts, and regional summaries, filterable by region and tier.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&sourceFlag, "source", "", "survey export file (overrides config)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
