package main

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/minedu-grd/encuesta-cli/internal/export"
	"github.com/minedu-grd/encuesta-cli/internal/survey"
)

var (
	summaryRegion string
	summaryTier   string
	summaryCSV    string
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Regional response summary",
	Long:  "Tabulates responses per region over the filtered dataset: counts, percent of total, and the trailing Total row.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		b := newBuilder()

		ds, err := b.Filtered(survey.Filter{Region: summaryRegion, Tier: summaryTier})
		if err != nil {
			if reportUserError(err) {
				return nil
			}
			return eris.Wrap(err, "summary: filter")
		}

		table, err := survey.RegionSummary(ds, cfg.Columns.Region)
		if err != nil {
			return eris.Wrap(err, "summary: tabulate")
		}

		printTable(cfg.Columns.Region, table)

		if summaryCSV != "" {
			f, err := os.Create(summaryCSV)
			if err != nil {
				return eris.Wrapf(err, "summary: create %s", summaryCSV)
			}
			defer f.Close()
			if err := export.WriteSummaryCSV(f, cfg.Columns.Region, table); err != nil {
				return eris.Wrap(err, "summary: export")
			}
		}

		return nil
	},
}

func init() {
	summaryCmd.Flags().StringVar(&summaryRegion, "region", "", "filter by region (default: all)")
	summaryCmd.Flags().StringVar(&summaryTier, "tier", "", "filter by normalized tier (default: all)")
	summaryCmd.Flags().StringVar(&summaryCSV, "csv", "", "write the summary table to a CSV file")
	rootCmd.AddCommand(summaryCmd)
}
