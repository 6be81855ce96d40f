package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/jsphweid/miws/performance"
	"github.com/jsphweid/miws/util"
	"github.com/spf13/cobra"
)

var (
	loadMinNotes    int
	loadShowPitches bool
)

func init() {
	loadCmd.Flags().IntVar(&loadMinNotes, "min-notes", 0, "drop performances with this many notes or fewer (default from MIWS_MIN_SEQ_LENGTH)")
	loadCmd.Flags().BoolVar(&loadShowPitches, "pitches", false, "print a pitch histogram per performance")
	rootCmd.AddCommand(loadCmd)
}

var loadCmd = &cobra.Command{
	Use:   "load [dir]",
	Short: "Loads performances",
	Long:  `Loads every .mid file in the data directory and prints a summary of the ones long enough to keep.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := cfg.DataDir
		if len(args) == 1 {
			dir = args[0]
		}
		minNotes := cfg.MinSeqLength
		if cmd.Flags().Changed("min-notes") {
			minNotes = loadMinNotes
		}
		return load(cmd, dir, minNotes)
	},
}

func load(cmd *cobra.Command, dir string, minNotes int) error {
	perfs, err := performance.Load(dir, minNotes)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var counts []int
	for _, p := range perfs {
		counts = append(counts, len(p.Notes))
		fmt.Fprintf(out, "%v\t%v notes\t%.2fs\t%v\n", filepath.Base(p.Path), len(p.Notes), p.Duration(), p.Id)
		if loadShowPitches {
			histogram := make(map[uint8]int)
			for _, n := range p.Notes {
				histogram[n.Pitch]++
			}
			for _, key := range util.GetKeys(histogram) {
				fmt.Fprintf(out, "\t%v: %v\n", key, histogram[key])
			}
		}
	}
	fmt.Fprintf(out, "%v performances, %v notes\n", len(perfs), util.Sum(counts))
	return nil
}
