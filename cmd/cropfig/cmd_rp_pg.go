package main

import (
	"github.com/spf13/cobra"

	"github.com/YuanyuanMa03/crop-model-figure/internal/figure"
)

var rpPgCmd = &cobra.Command{
	Use:   "rp-pg",
	Short: "Linear relation between photorespiration and gross photosynthesis",
	Long: `Renders R_p = α · P_g over a gross photosynthesis sweep: the
typical-α line, the documented α-range envelope and illustrative
sample points.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadParams()
		if err != nil {
			return err
		}
		files, err := figure.RenderRpPg(outDir, figure.RpPgOptions{
			Alpha:    p.Alpha,
			AlphaMin: p.AlphaMin,
			AlphaMax: p.AlphaMax,
			PgMax:    p.PgMax,
			WriteCSV: writeCSV,
		})
		if err != nil {
			return err
		}
		reportFiles(files)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rpPgCmd)
}
