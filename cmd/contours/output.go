package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/katalvlaran/lenscontour/contour"
	"github.com/katalvlaran/lenscontour/level"
)

type levelRow struct {
	Level     float64 `json:"level"`
	Threshold float64 `json:"threshold"`
	Achieved  float64 `json:"achieved"`
	Converged bool    `json:"converged"`
	Regions   *int    `json:"regions,omitempty"`
}

type levelsReport struct {
	Title      string      `json:"title"`
	Parameters []string    `json:"parameters"`
	Extent     *[4]float64 `json:"extent,omitempty"`
	Levels     []levelRow  `json:"levels"`
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

func printLevels(w io.Writer, eng *contour.Engine, res level.Result, regions []int) error {
	red, err := eng.Reduced()
	if err != nil {
		return err
	}
	rep := levelsReport{Title: eng.Title(), Parameters: red.Parameters}
	if red.HasExtent {
		ex := red.Extent
		rep.Extent = &[4]float64{ex.MinX, ex.MaxX, ex.MinY, ex.MaxY}
	}
	for i := range res.Levels {
		row := levelRow{
			Level:     res.Levels[i],
			Threshold: res.Thresholds[i],
			Achieved:  res.Achieved[i],
			Converged: res.Converged[i],
		}
		if regions != nil {
			n := regions[i]
			row.Regions = &n
		}
		rep.Levels = append(rep.Levels, row)
	}
	if jsonOutput {
		return writeJSON(w, rep)
	}

	fmt.Fprintf(w, "%s: %v\n", rep.Title, rep.Parameters)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "LEVEL\tTHRESHOLD\tACHIEVED\tCONVERGED\tREGIONS")
	for _, r := range rep.Levels {
		regs := "-"
		if r.Regions != nil {
			regs = fmt.Sprint(*r.Regions)
		}
		fmt.Fprintf(tw, "%.4g\t%.6g\t%.4f%%\t%t\t%s\n", r.Level, r.Threshold, r.Achieved*100, r.Converged, regs)
	}

	return tw.Flush()
}

type bracketRow struct {
	Level float64 `json:"level"`
	Near  float64 `json:"near"`
	Far   float64 `json:"far"`
}

type marginalReport struct {
	Parameter  string       `json:"parameter"`
	Label      string       `json:"label"`
	Mode       float64      `json:"mode"`
	Brackets   []bracketRow `json:"brackets"`
	Range      []float64    `json:"range,omitempty"`
	Likelihood []float64    `json:"likelihood,omitempty"`
}

func printMarginal(w io.Writer, eng *contour.Engine, res contour.MarginalResult, samples bool) error {
	rep := marginalReport{
		Parameter: res.Parameter,
		Label:     eng.Label(res.Parameter),
		Mode:      res.Mode,
	}
	for i, b := range res.Brackets {
		rep.Brackets = append(rep.Brackets, bracketRow{Level: res.Levels[i], Near: b.Near, Far: b.Far})
	}
	if samples {
		rep.Range, rep.Likelihood = res.Range, res.Likelihood
	}
	if jsonOutput {
		return writeJSON(w, rep)
	}

	fmt.Fprintf(w, "%s (%s): mode=%.6g\n", rep.Parameter, rep.Label, rep.Mode)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "LEVEL\tNEAR\tFAR")
	for _, b := range rep.Brackets {
		fmt.Fprintf(tw, "%.4g\t%.6g\t%.6g\n", b.Level, b.Near, b.Far)
	}
	if samples {
		fmt.Fprintln(tw, "\nVALUE\tDENSITY\t")
		for i := range rep.Range {
			fmt.Fprintf(tw, "%.6g\t%.6g\t\n", rep.Range[i], rep.Likelihood[i])
		}
	}

	return tw.Flush()
}

func printMaximum(w io.Writer, eng *contour.Engine, best map[string]float64) error {
	if jsonOutput {
		return writeJSON(w, best)
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PARAMETER\tVALUE")
	for _, name := range eng.Registry().Names() {
		if v, ok := best[name]; ok {
			fmt.Fprintf(tw, "%s\t%.6g\n", name, v)
		}
	}

	return tw.Flush()
}

func printValue(w io.Writer, coords []float64, v float64, ok bool) error {
	if jsonOutput {
		out := map[string]interface{}{"coordinates": coords, "found": ok}
		if ok {
			out["value"] = v
		}
		return writeJSON(w, out)
	}
	if !ok {
		_, err := fmt.Fprintf(w, "%v: out of bounds\n", coords)
		return err
	}
	_, err := fmt.Fprintf(w, "%v: %.9g\n", coords, v)

	return err
}
