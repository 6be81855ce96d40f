package cmd

import (
	"fmt"
	"strconv"

	"github.com/jsphweid/miws/numeric"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

var quantizeGrid []float64

func init() {
	quantizeCmd.Flags().Float64SliceVar(&quantizeGrid, "grid", numeric.QuantizedDurations, "values to snap to")
	rootCmd.AddCommand(quantizeCmd)
}

var quantizeCmd = &cobra.Command{
	Use:   "quantize <value>...",
	Short: "Snaps durations to the nearest grid value",
	Long:  `Prints the index and value of the closest grid entry for each value.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(quantizeGrid) == 0 {
			return fmt.Errorf("grid must not be empty")
		}
		grid := slices.Clone(quantizeGrid)
		slices.Sort(grid)

		values := make([]float64, len(args))
		for i, arg := range args {
			v, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				return fmt.Errorf("%q is not a number: %w", arg, err)
			}
			values[i] = v
		}

		out := cmd.OutOrStdout()
		for i, idx := range numeric.FindNearestAll(grid, values) {
			fmt.Fprintf(out, "%v\t%v\t%v\n", values[i], idx, grid[idx])
		}
		return nil
	},
}
