package main

import (
	"github.com/spf13/cobra"

	"github.com/YuanyuanMa03/crop-model-figure/internal/figure"
)

var rubiscoCmd = &cobra.Command{
	Use:   "rubisco",
	Short: "Rubisco-kinetics photorespiration response to CO2 and O2",
	Long: `Renders R_p = R_p,max · (O2/K_s) / ((CO2/K_c) + 1 + O2/K_o): the CO2
response at several O2 levels and the full CO2 × O2 surface.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadParams()
		if err != nil {
			return err
		}
		opt := figure.RubiscoOptions{
			RpMax:    p.RpMax,
			Ks:       p.Ks,
			Kc:       p.Kc,
			Ko:       p.Ko,
			WriteCSV: writeCSV,
		}

		files, err := figure.RenderRubiscoResponse(outDir, opt)
		if err != nil {
			return err
		}
		reportFiles(files)

		files, err = figure.RenderRubiscoSurface(outDir, opt)
		if err != nil {
			return err
		}
		reportFiles(files)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rubiscoCmd)
}
