package main

import (
	"github.com/spf13/cobra"

	"github.com/YuanyuanMa03/crop-model-figure/internal/figure"
)

var nitrogenCmd = &cobra.Command{
	Use:   "nitrogen",
	Short: "Nitrogen modifier on the maintenance coefficient",
	Long: `Renders r'_m,i = r_ref · (N_i / N_ref): the nitrogen response at
several reference coefficients, the per-organ comparison and the
relative change N_i/N_ref.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := loadParams(); err != nil {
			return err
		}
		opt := figure.NitrogenOptions{WriteCSV: writeCSV}

		for _, render := range []func(string, figure.NitrogenOptions) ([]string, error){
			figure.RenderNitrogenResponse,
			figure.RenderNitrogenOrgans,
			figure.RenderNitrogenRelativeChange,
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
	rootCmd.AddCommand(nitrogenCmd)
}
