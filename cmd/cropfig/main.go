// Command cropfig renders the crop respiration formula figures.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/YuanyuanMa03/crop-model-figure/internal/config"
)

var (
	logger *zap.Logger

	outDir     string
	paramsPath string
	writeCSV   bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "cropfig",
	Short: "Render crop respiration and photosynthesis formula figures",
	Long: `cropfig evaluates the crop respiration formulas — linear
photorespiration, Rubisco kinetics, net photosynthesis partitioning,
maintenance respiration with its temperature and nitrogen modifiers,
and growth respiration — and renders each family as publication-style
PNG and PDF charts, optionally exporting the underlying data as CSV.

Defaults follow the documented parameter tables; any subset can be
overridden with a YAML file via --params.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// loadParams reads the parameter file over the defaults and logs any
// coefficient outside its documented range. Advisories never fail the
// command.
func loadParams() (config.Params, error) {
	p, err := config.Load(paramsPath)
	if err != nil {
		return p, err
	}
	for _, a := range p.Advisories() {
		logger.Warn("parameter outside documented range",
			zap.String("param", a.Param),
			zap.Float64("value", a.Value),
			zap.Float64("min", a.Min),
			zap.Float64("max", a.Max),
		)
	}
	return p, nil
}

func reportFiles(files []string) {
	for _, f := range files {
		logger.Info("wrote figure output", zap.String("file", f))
	}
}

func main() {
	rootCmd.PersistentFlags().StringVarP(&outDir, "out", "o", "figures", "output directory for rendered figures")
	rootCmd.PersistentFlags().StringVar(&paramsPath, "params", "", "YAML file overriding formula parameters")
	rootCmd.PersistentFlags().BoolVar(&writeCSV, "csv", false, "also export the data behind each figure as CSV")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
