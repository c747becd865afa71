package main

import (
	"github.com/spf13/cobra"

	"github.com/YuanyuanMa03/crop-model-figure/internal/figure"
)

var netPhotoCmd = &cobra.Command{
	Use:   "net-photo",
	Short: "Net photosynthesis partitioning",
	Long: `Renders A_n = V_c - 0.5·V_o - R_d: the response at several
oxygenation rates, the stacked term decomposition and the V_o
sensitivity sweep.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadParams()
		if err != nil {
			return err
		}
		opt := figure.NetPhotoOptions{
			VcMax:    p.VcMax,
			Rd:       p.Rd,
			WriteCSV: writeCSV,
		}

		for _, render := range []func(string, figure.NetPhotoOptions) ([]string, error){
			figure.RenderNetPhotosynthesis,
			figure.RenderNetPhotosynthesisStacked,
			figure.RenderOxygenationSensitivity,
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
	rootCmd.AddCommand(netPhotoCmd)
}
