package main

import (
	"github.com/spf13/cobra"

	"github.com/YuanyuanMa03/crop-model-figure/internal/figure"
)

var maintenanceCmd = &cobra.Command{
	Use:   "maintenance",
	Short: "Maintenance respiration as a weighted sum over organs",
	Long: `Renders R_m = Σ r_m,i · W_i: stacked per-organ contributions over
growth stages, the leaf-weight sensitivity and the documented
coefficient table with literature ranges.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := loadParams(); err != nil {
			return err
		}
		opt := figure.MaintenanceOptions{WriteCSV: writeCSV}

		for _, render := range []func(string, figure.MaintenanceOptions) ([]string, error){
			figure.RenderMaintenanceOrgans,
			figure.RenderMaintenanceSensitivity,
			figure.RenderMaintenanceCoefficients,
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
	rootCmd.AddCommand(maintenanceCmd)
}
