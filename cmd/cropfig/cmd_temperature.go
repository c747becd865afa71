package main

import (
	"github.com/spf13/cobra"

	"github.com/YuanyuanMa03/crop-model-figure/internal/figure"
)

var temperatureCmd = &cobra.Command{
	Use:   "temperature",
	Short: "Q10 temperature modifier on maintenance respiration",
	Long: `Renders R_m(T) = R_m0 · Q10^((T - T0)/10): the temperature response
at several Q10 values, the Q10 sensitivity at fixed temperatures and
the relative change R_m/R_m0.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadParams()
		if err != nil {
			return err
		}
		opt := figure.TemperatureOptions{
			Rm0:      p.Rm0,
			T0:       p.T0,
			WriteCSV: writeCSV,
		}

		for _, render := range []func(string, figure.TemperatureOptions) ([]string, error){
			figure.RenderTemperatureResponse,
			figure.RenderQ10Sensitivity,
			figure.RenderRelativeTemperatureResponse,
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

func init() {
	rootCmd.AddCommand(temperatureCmd)
}
