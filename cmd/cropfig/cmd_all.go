package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Render every formula family",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, sub := range []*cobra.Command{
			rpPgCmd,
			rubiscoCmd,
			netPhotoCmd,
			maintenanceCmd,
			temperatureCmd,
			nitrogenCmd,
			growthCmd,
		} {
			logger.Debug("rendering family", zap.String("family", sub.Use))
			if err := sub.RunE(cmd, nil); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(allCmd)
}
