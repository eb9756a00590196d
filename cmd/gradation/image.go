package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	app "gradation-bot/internal/application"
	"gradation-bot/internal/domain/entity"
	"gradation-bot/internal/domain/gradation"
	"gradation-bot/internal/infrastructure/vision"
)

var (
	referenceLength float64
	referenceLine   string
	minPixelArea    float64
	highlightPath   string
)

var imageCmd = &cobra.Command{
	Use:   "image <photo>",
	Short: "Gradation curve from a photo of particles",
	Long: `Segments dark particles on a light background and converts each
particle area to an equivalent circle diameter.

The scale comes from a reference object on the photo: pass its length in
millimetres with --ref and the pixel coordinates of its ends with --line.`,
	Example: `  gradation image sample.jpg --ref 50 --line 12,400,612,400 --chart curve.png`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, b, err := parseLine(referenceLine)
		if err != nil {
			return err
		}
		scale, err := gradation.CalibrateLine(a, b, referenceLength)
		if err != nil {
			return err
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		analyzer := app.NewAnalyzer(vision.NewParticleDetector(minPixelArea), histogramBins)
		result, err := analyzer.AnalyzeImage(commandContext(cmd), data, scale)
		if err != nil {
			return err
		}

		if highlightPath != "" && len(result.Segmentation.Regions) > 0 {
			highlighted, err := analyzer.Highlight(data, result)
			if err != nil {
				return err
			}
			if err := os.WriteFile(highlightPath, highlighted, 0o644); err != nil {
				return err
			}
		}

		return writeResult(cmd, result)
	},
}

func init() {
	imageCmd.Flags().Float64Var(&referenceLength, "ref", 0, "reference length in millimetres")
	imageCmd.Flags().StringVar(&referenceLine, "line", "", "reference line ends in pixels: x1,y1,x2,y2")
	imageCmd.Flags().Float64Var(&minPixelArea, "min-area", vision.DefaultMinPixelArea, "smallest particle area in pixels")
	imageCmd.Flags().StringVar(&highlightPath, "highlight", "", "write the photo with particle boxes to this JPEG file")
	_ = imageCmd.MarkFlagRequired("ref")
	_ = imageCmd.MarkFlagRequired("line")
	rootCmd.AddCommand(imageCmd)
}

// parseLine разбирает «x1,y1,x2,y2».
func parseLine(s string) (a, b entity.Point, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return a, b, fmt.Errorf("--line %q: want x1,y1,x2,y2", s)
	}
	var v [4]float64
	for i, p := range parts {
		if v[i], err = strconv.ParseFloat(strings.TrimSpace(p), 64); err != nil {
			return a, b, fmt.Errorf("--line %q: %w", s, err)
		}
	}
	return entity.Point{X: v[0], Y: v[1]}, entity.Point{X: v[2], Y: v[3]}, nil
}
