package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/minedu-grd/encuesta-cli/internal/export"
	"github.com/minedu-grd/encuesta-cli/internal/report"
	"github.com/minedu-grd/encuesta-cli/internal/survey"
)

var (
	reportRegion    string
	reportTier      string
	reportQuestions []string
	reportOut       string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Compute the full survey report",
	Long: `Runs one full render pass: regional summary plus per-question frequency
tables and chart series, restricted by the optional region and tier filters.

Examples:
  # Full report over all questions
  encuesta report

  # One region, CSV exports written next to the terminal output
  encuesta report --region "Lima" --out ./tablas

  # A subset of questions for the ODENAGED tier
  encuesta report --tier ODENAGED --questions "¿Conoce el plan GRD?"`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		b := newBuilder()

		rep, err := b.Build(survey.Filter{Region: reportRegion, Tier: reportTier}, reportQuestions)
		if err != nil {
			if reportUserError(err) {
				return nil
			}
			return eris.Wrap(err, "report: build")
		}

		fmt.Printf("Total de respuestas (filtro aplicado): %d\n", rep.KPI.Responses)
		fmt.Printf("Regiones en filtro: %d\n", rep.KPI.Regions)
		fmt.Printf("Instancias en filtro: %d\n\n", rep.KPI.Tiers)

		fmt.Println("Resumen por región")
		printTable(cfg.Columns.Region, rep.RegionSummary)

		for _, q := range rep.Questions {
			fmt.Printf("\n%s  [%s]\n", q.Question, q.Chart.Orientation)
			printTable("Respuesta", q.Table)
		}

		if reportOut != "" {
			if err := writeExports(rep); err != nil {
				return eris.Wrap(err, "report: export")
			}
			zap.L().Info("exports written",
				zap.String("dir", reportOut),
				zap.Int("tables", len(rep.Questions)+1),
			)
		}

		return nil
	},
}

// printTable renders one frequency table as an aligned text table.
func printTable(labelHeader string, t survey.FreqTable) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tFrecuencia\tPorcentaje (%%)\n", labelHeader)
	for _, row := range t.Rows {
		fmt.Fprintf(w, "%s\t%d\t%d\n", row.Label, row.Count, row.Percent)
	}
	w.Flush()
}

// writeExports writes the regional summary and one CSV per question table.
func writeExports(rep *report.Report) error {
	if err := os.MkdirAll(reportOut, 0o755); err != nil {
		return eris.Wrap(err, "create output dir")
	}

	summaryPath := filepath.Join(reportOut, "resumen_por_region.csv")
	f, err := os.Create(summaryPath)
	if err != nil {
		return eris.Wrapf(err, "create %s", summaryPath)
	}
	if err := export.WriteSummaryCSV(f, cfg.Columns.Region, rep.RegionSummary); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return eris.Wrapf(err, "close %s", summaryPath)
	}

	for _, q := range rep.Questions {
		path := filepath.Join(reportOut, export.Filename(q.Question))
		qf, err := os.Create(path)
		if err != nil {
			return eris.Wrapf(err, "create %s", path)
		}
		if err := export.WriteFreqCSV(qf, q.Table); err != nil {
			qf.Close()
			return err
		}
		if err := qf.Close(); err != nil {
			return eris.Wrapf(err, "close %s", path)
		}
	}

	return nil
}

func init() {
	reportCmd.Flags().StringVar(&reportRegion, "region", "", "filter by region (default: all)")
	reportCmd.Flags().StringVar(&reportTier, "tier", "", "filter by normalized tier (default: all)")
	reportCmd.Flags().StringSliceVar(&reportQuestions, "questions", nil, "questions to include (default: all)")
	reportCmd.Flags().StringVar(&reportOut, "out", "", "directory for CSV exports")
	rootCmd.AddCommand(reportCmd)
}
