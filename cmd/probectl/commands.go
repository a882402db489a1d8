package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cooking_probe/internal/models"
	"cooking_probe/internal/thermal"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var headerLines int
	cmd := &cobra.Command{
		Use:          "probectl",
		Short:        "Offline analysis of cooking probe logs",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().IntVar(&headerLines, "header-lines", thermal.DefaultHeaderLines, "header lines to skip")

	load := func(path string) (models.Series, thermal.ParseReport, error) {
		return thermal.ReadLog(path, thermal.ParseOptions{HeaderLines: headerLines})
	}
	cmd.AddCommand(cleanCmd(load), fitCmd(load), predictCmd(load), etaCmd(load))
	return cmd
}

type loadFunc func(path string) (models.Series, thermal.ParseReport, error)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func writeRows(w io.Writer, header []string, rows [][]float64) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		rec := make([]string, len(row))
		for i, v := range row {
			rec[i] = formatFloat(v)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func cleanCmd(load loadFunc) *cobra.Command {
	return &cobra.Command{
		Use:     "clean <file>",
		Short:   "Print the cleaned series as CSV",
		Example: "probectl clean data1.dat > clean.csv",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, rep, err := load(args[0])
			if err != nil {
				return err
			}
			rows := make([][]float64, s.Len())
			for i := range rows {
				rows[i] = []float64{s.Time[i], s.Internal[i], s.External[i]}
			}
			if err := writeRows(cmd.OutOrStdout(), []string{"time", "internal", "external"}, rows); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "kept %d of %d rows (n/a %d, malformed %d, stalls %d)\n",
				rep.Kept, rep.Total, rep.Sentinel, rep.Malformed, rep.Stalls)
			return nil
		},
	}
}

func fitCmd(load loadFunc) *cobra.Command {
	var (
		points  int
		guess   float64
		until   float64
		samples int
	)
	cmd := &cobra.Command{
		Use:   "fit <file>",
		Short: "Fit the cooling constant and print the model curve",
		Long: `Fit the Newton cooling model to the first --points rows of a log.
The first line holds c, T0 and Text; the curve follows as time,temp rows.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := load(args[0])
			if err != nil {
				return err
			}
			opts := thermal.DefaultFitOptions()
			opts.Points = points
			opts.InitialGuess = guess
			res, err := thermal.Fit(s, opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# c=%s t0=%s text=%s rmse=%s\n",
				formatFloat(res.C), formatFloat(res.T0), formatFloat(res.Text), formatFloat(res.RMSE))
			grid := thermal.SmoothGrid(0, until, samples)
			curve := res.Curve(grid)
			rows := make([][]float64, len(grid))
			for i := range grid {
				rows[i] = []float64{grid[i], curve[i]}
			}
			return writeRows(out, []string{"time", "temp"}, rows)
		},
	}
	cmd.Flags().IntVar(&points, "points", thermal.DefaultFitPoints, "prefix rows used for fitting")
	cmd.Flags().Float64Var(&guess, "guess", thermal.DefaultInitialGuess, "initial rate constant")
	cmd.Flags().Float64Var(&until, "until", thermal.DefaultCurveEnd, "curve end time in seconds")
	cmd.Flags().IntVar(&samples, "samples", thermal.DefaultCurveSamples, "curve points")
	return cmd
}

func predictCmd(load loadFunc) *cobra.Command {
	var (
		meat   int
		weight float64
	)
	cmd := &cobra.Command{
		Use:   "predict <file>",
		Short: "Extrapolate the next readings after the last logged sample",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := load(args[0])
			if err != nil {
				return err
			}
			pred, err := thermal.Extrapolate(thermal.Category(meat), weight, s)
			if err != nil {
				return err
			}
			n := len(pred.Time)
			rows := make([][]float64, len(pred.Predicted))
			for i := range rows {
				j := n - len(pred.Predicted) + i
				rows[i] = []float64{pred.Time[j], pred.Predicted[i], pred.External[j]}
			}
			return writeRows(cmd.OutOrStdout(), []string{"time", "predicted", "external"}, rows)
		},
	}
	cmd.Flags().IntVar(&meat, "meat", 0, "meat type (0 pork, 1 steak, 2 chicken, 3 fish, 4 lamb)")
	cmd.Flags().Float64Var(&weight, "weight", 1, "product weight")
	return cmd
}

func etaCmd(load loadFunc) *cobra.Command {
	var (
		meat   int
		target float64
		unit   string
	)
	cmd := &cobra.Command{
		Use:   "eta <file>",
		Short: "Estimate the remaining time until the doneness temperature",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := thermal.Category(meat)
			if !cmd.Flags().Changed("target") {
				switch strings.ToUpper(unit) {
				case "C":
					target = cat.TargetC()
				case "F":
					target = cat.TargetF()
				default:
					return fmt.Errorf("unit must be C or F, got %q", unit)
				}
			}
			s, _, err := load(args[0])
			if err != nil {
				return err
			}
			remaining, err := thermal.TimeToTarget(s, target)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s s to %s\n", cat.Name(), formatFloat(remaining), formatFloat(target))
			return nil
		},
	}
	cmd.Flags().IntVar(&meat, "meat", 0, "meat type (0 pork, 1 steak, 2 chicken, 3 fish, 4 lamb)")
	cmd.Flags().Float64Var(&target, "target", 0, "target temperature; defaults to the category doneness")
	cmd.Flags().StringVar(&unit, "unit", "C", "unit of the log and the target (C or F)")
	return cmd
}
