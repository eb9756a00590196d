package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	app "gradation-bot/internal/application"
	"gradation-bot/internal/infrastructure/sieve"
)

var sieveCmd = &cobra.Command{
	Use:   "sieve <table>",
	Short: "Gradation curve from a sieve analysis table",
	Long: `Reads a sieve table and builds the passing curve.

The format is chosen by extension: .csv and .xlsx are tables with
label, opening and weight columns; .txt or a file without extension is
whitespace separated text. Other extensions are rejected. Example:

  #4   4750  50
  #10  2000  30
  #20   850  20`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		entries, err := sieve.NewParser().Parse(commandContext(cmd), args[0], data)
		if err != nil {
			return fmt.Errorf("parse %s: %w", args[0], err)
		}

		result, err := app.NewAnalyzer(nil, histogramBins).AnalyzeSieve(entries)
		if err != nil {
			return err
		}

		return writeResult(cmd, result)
	},
}

func init() {
	rootCmd.AddCommand(sieveCmd)
}
