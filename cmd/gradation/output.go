package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"gradation-bot/internal/domain/entity"
	"gradation-bot/internal/infrastructure/chart"
	"gradation-bot/internal/infrastructure/report"
)

// writeResult печатает таблицу результата и пишет запрошенные файлы.
func writeResult(cmd *cobra.Command, result *entity.AnalysisResult) error {
	printResult(cmd.OutOrStdout(), result)

	renderer := chart.NewRenderer(0, 0)
	if chartPath != "" && result.HasCurve() {
		png, err := renderer.RenderCurve(result.Curve, result.Diameters)
		if err != nil {
			return err
		}
		if err := os.WriteFile(chartPath, png, 0o644); err != nil {
			return err
		}
	}
	if histogramPath != "" && len(result.Histogram.Counts) > 0 {
		png, err := renderer.RenderHistogram(result.Histogram)
		if err != nil {
			return err
		}
		if err := os.WriteFile(histogramPath, png, 0o644); err != nil {
			return err
		}
	}
	if xlsxPath != "" {
		data, _, err := report.NewXLSXExporter().Export(result)
		if err != nil {
			return err
		}
		if err := os.WriteFile(xlsxPath, data, 0o644); err != nil {
			return err
		}
	}
	return nil
}

func printResult(w io.Writer, r *entity.AnalysisResult) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	if r.Source == entity.SourceImage {
		s := r.Summary
		fmt.Fprintf(tw, "scale\t%.4f px/mm\n", float64(r.Scale))
		fmt.Fprintf(tw, "particles\t%d\n", s.Count)
		if s.Count > 0 {
			fmt.Fprintf(tw, "min / max\t%.3f / %.3f mm\n", s.Min, s.Max)
			fmt.Fprintf(tw, "mean / median\t%.3f / %.3f mm\n", s.Mean, s.Median)
			fmt.Fprintf(tw, "std dev\t%.3f mm\n", s.StdDev)
		}
	}

	d := r.Diameters
	fmt.Fprintf(tw, "D10\t%s mm\n", value(d.D10))
	fmt.Fprintf(tw, "D30\t%s mm\n", value(d.D30))
	fmt.Fprintf(tw, "D50\t%s mm\n", value(d.D50))
	fmt.Fprintf(tw, "D60\t%s mm\n", value(d.D60))
	fmt.Fprintf(tw, "Cu\t%s\n", value(d.Cu))
	fmt.Fprintf(tw, "Cc\t%s\n", value(d.Cc))

	if len(r.Curve) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "size, mm\tpassing, %")
		for _, p := range r.Curve {
			fmt.Fprintf(tw, "%.3f\t%.2f\n", p.Size, p.Passing)
		}
	}
}

// value печатает ноль как n/a: ноль означает, что величина не определена.
func value(v float64) string {
	if v == 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", v)
}
