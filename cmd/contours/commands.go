package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/katalvlaran/lenscontour/config"
	"github.com/katalvlaran/lenscontour/contour"
	"github.com/katalvlaran/lenscontour/level"
	"github.com/katalvlaran/lenscontour/loader"
	"github.com/spf13/cobra"
)

var (
	levelsOverride []float64
	epsilon        float64
	maxIterations  int
	marginalParam  string
	showSamples    bool
	whichFlag      string
	outPath        string
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Likelihood thresholds enclosing each confidence level",
	Long: `
Search, on the reduced likelihood, the threshold t of each confidence level L
such that the cells with likelihood > t hold a fraction L of the mass.
Non-converged levels are reported, not treated as failures: compare the
achieved column with the requested level.
`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

var marginalCmd = &cobra.Command{
	Use:   "marginal",
	Short: "One-parameter marginal likelihood, mode and level brackets",
	Args:  cobra.NoArgs,
	RunE:  runMarginal,
}

var maximumCmd = &cobra.Command{
	Use:   "maximum",
	Short: "Parameter values at the likelihood maximum",
	Args:  cobra.NoArgs,
	RunE:  runMaximum,
}

var valueCmd = &cobra.Command{
	Use:   "value COORD...",
	Short: "Likelihood at a physical point (one coordinate per axis)",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runValue,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the reduced likelihood as .npy",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	levelsCmd.Flags().Float64SliceVar(&levelsOverride, "levels", nil, "confidence levels (default from settings)")
	levelsCmd.Flags().Float64Var(&epsilon, "epsilon", 0, "relative tolerance (default from settings)")
	levelsCmd.Flags().IntVar(&maxIterations, "max-iterations", -1, "iterations per level (default from settings)")

	marginalCmd.Flags().StringVarP(&marginalParam, "parameter", "p", "", "parameter to keep")
	marginalCmd.Flags().Float64SliceVar(&levelsOverride, "levels", nil, "confidence levels (default from settings)")
	marginalCmd.Flags().BoolVar(&showSamples, "samples", false, "also print the sampled marginal")
	_ = marginalCmd.MarkFlagRequired("parameter")

	maximumCmd.Flags().StringVar(&whichFlag, "which", "full", "full or reduced likelihood")

	exportCmd.Flags().StringVarP(&outPath, "out", "o", "", "output .npy file")
	_ = exportCmd.MarkFlagRequired("out")
}

func openEngine() (*config.Settings, *contour.Engine, error) {
	s, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	eng, err := loader.Open(s)
	if err != nil {
		return nil, nil, err
	}

	return s, eng, nil
}

func runLevels(cmd *cobra.Command, args []string) error {
	s, eng, err := openEngine()
	if err != nil {
		return err
	}
	levels := s.Levels
	if len(levelsOverride) > 0 {
		levels = levelsOverride
	}
	params := s.SearchParams()
	if epsilon > 0 {
		params.Epsilon = epsilon
	}
	if maxIterations >= 0 {
		params.MaxIterations = maxIterations
	}

	res, err := eng.LikelihoodValues(levels, level.WithParams(params))
	if err != nil {
		return err
	}

	// Region counts only make sense on a 2D reduction.
	var regions []int
	if red, _ := eng.Reduced(); red.Grid.NDim() == 2 {
		conn := contour.Conn8
		if s.Connectivity == 4 {
			conn = contour.Conn4
		}
		if regions, err = eng.RegionCounts(res.Thresholds, conn); err != nil {
			return err
		}
	}

	return printLevels(cmd.OutOrStdout(), eng, res, regions)
}

func runMarginal(cmd *cobra.Command, args []string) error {
	s, eng, err := openEngine()
	if err != nil {
		return err
	}
	levels := s.Levels
	if len(levelsOverride) > 0 {
		levels = levelsOverride
	}
	res, err := eng.Marginal(marginalParam, levels...)
	if err != nil {
		return err
	}

	return printMarginal(cmd.OutOrStdout(), eng, res, showSamples)
}

func runMaximum(cmd *cobra.Command, args []string) error {
	which, err := contour.ParseWhich(whichFlag)
	if err != nil {
		return err
	}
	_, eng, err := openEngine()
	if err != nil {
		return err
	}
	best, err := eng.Maximum(which)
	if err != nil {
		return err
	}

	return printMaximum(cmd.OutOrStdout(), eng, best)
}

func runValue(cmd *cobra.Command, args []string) error {
	coords := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return fmt.Errorf("coordinate %d: %w", i, err)
		}
		coords[i] = v
	}
	_, eng, err := openEngine()
	if err != nil {
		return err
	}
	v, ok, err := eng.Value(coords...)
	if err != nil {
		return err
	}

	return printValue(cmd.OutOrStdout(), coords, v, ok)
}

func runExport(cmd *cobra.Command, args []string) error {
	_, eng, err := openEngine()
	if err != nil {
		return err
	}
	f, err := os.Create(filepath.Clean(outPath))
	if err != nil {
		return err
	}
	if err = loader.WriteReduced(f, eng); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
