package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/YuanyuanMa03/crop-model-figure/internal/figure"
	"github.com/YuanyuanMa03/crop-model-figure/internal/recorder"
)

var gtwSeriesPath string

var growthCmd = &cobra.Command{
	Use:   "growth",
	Short: "Growth respiration and its composite coefficient",
	Long: `Renders R_g = m · GTW: the linear response at several coefficients,
the chemical-component coefficient table, the composite m_i = Σ f_j·m_j
example per organ, and the seasonal view over a daily assimilate
series.

The seasonal series defaults to an illustrative 100-day season; supply
your own with --gtw-series, a CSV in the recorder format whose "GTW"
series holds day (x) and assimilate (y) pairs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadParams()
		if err != nil {
			return err
		}
		opt := figure.GrowthOptions{
			Coefficient: p.GrowthCoefficient,
			GtwMax:      p.GtwMax,
			WriteCSV:    writeCSV,
		}

		if gtwSeriesPath != "" {
			days, gtw, err := loadGtwSeries(gtwSeriesPath)
			if err != nil {
				return err
			}
			opt.Days = days
			opt.GTW = gtw
		}

		for _, render := range []func(string, figure.GrowthOptions) ([]string, error){
			figure.RenderGrowthResponse,
			figure.RenderGrowthCoefficients,
			figure.RenderGrowthSeasonal,
			figure.RenderGrowthComposite,
		} {
			files, err := render(outDir, opt)
			if err != nil {
				return err
			}
			reportFiles(files)
		}
		return nil
	},
}

// loadGtwSeries reads a caller-supplied daily assimilate series from a
// recorder-format CSV.
func loadGtwSeries(path string) ([]float64, []float64, error) {
	points, err := recorder.Load(path)
	if err != nil {
		return nil, nil, err
	}

	var days, gtw []float64
	for _, pt := range points {
		if pt.Series != "GTW" {
			continue
		}
		days = append(days, pt.X)
		gtw = append(gtw, pt.Y)
	}
	if len(gtw) == 0 {
		return nil, nil, fmt.Errorf("no GTW series found in %s", path)
	}
	return days, gtw, nil
}

func init() {
	growthCmd.Flags().StringVar(&gtwSeriesPath, "gtw-series", "", "CSV file with a caller-supplied daily assimilate series")
	rootCmd.AddCommand(growthCmd)
}
