package main

import (
	"context"

	"github.com/spf13/cobra"

	app "gradation-bot/internal/application"
)

var (
	chartPath     string
	histogramPath string
	xlsxPath      string
	histogramBins int
)

var rootCmd = &cobra.Command{
	Use:   "gradation",
	Short: "Particle size distribution from sieve tables or calibrated photos",
	Long: `Builds a gradation curve and reports D10, D30, D50, D60,
the uniformity coefficient Cu and the curvature coefficient Cc.

Subcommands:
  sieve  - curve from a sieve table (text, CSV or XLSX)
  image  - curve from a photo of particles with a reference of known length

Sieve table rows are: label, opening in micrometres, retained weight.
The label is optional; rows that are not numbers are skipped.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&chartPath, "chart", "", "write the gradation curve to this PNG file")
	rootCmd.PersistentFlags().StringVar(&histogramPath, "histogram", "", "write the size histogram to this PNG file (image only)")
	rootCmd.PersistentFlags().StringVar(&xlsxPath, "xlsx", "", "write the full report to this XLSX file")
	rootCmd.PersistentFlags().IntVar(&histogramBins, "bins", app.DefaultHistogramBins, "number of histogram bins")
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
