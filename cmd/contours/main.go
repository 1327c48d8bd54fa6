// Command contours reports confidence levels of a likelihood grid described
// by a YAML settings file.
//
//	contours levels   --config settings.yaml
//	contours marginal --config settings.yaml --parameter w
//	contours maximum  --config settings.yaml --which reduced
//	contours value    --config settings.yaml -- 0.26 -1.0 0.8
//	contours export   --config settings.yaml --out reduced.npy
package main

import (
	"log"
	"os"

	"github.com/katalvlaran/lenscontour/internal/logging"
	"github.com/spf13/cobra"
)

var (
	configPath string
	jsonOutput bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "contours",
	Short: "Confidence levels and marginals of likelihood grids",
	Long: `
Reduce an N-dimensional likelihood grid (NumPy .npy) to one or two
parameters and compute the likelihood thresholds enclosing the requested
confidence levels. Results are numeric; feed them to any plotting tool.
`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger := log.New(os.Stderr, "contours: ", 0)
		logging.SetLogger(nil)
		if verbose {
			logging.SetLogger(logger.Printf)
			logging.SetDebugLogger(logger.Printf)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "settings file (.yaml)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print JSON instead of a table")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log loading and search traces to stderr")
	_ = rootCmd.MarkPersistentFlagRequired("config")

	rootCmd.AddCommand(levelsCmd, marginalCmd, maximumCmd, valueCmd, exportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
