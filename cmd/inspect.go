package cmd

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/jsphweid/miws/midi"
	"github.com/jsphweid/miws/performance"
	"github.com/spf13/cobra"
)

var (
	inspectDump     bool
	inspectFromTick uint64
	inspectMaxNotes int
	inspectOut      string
)

func init() {
	inspectCmd.Flags().BoolVar(&inspectDump, "dump", false, "dump the whole performance")
	inspectCmd.Flags().Uint64Var(&inspectFromTick, "from-tick", 0, "excerpt start in ticks")
	inspectCmd.Flags().IntVar(&inspectMaxNotes, "max-notes", 0, "notes per track in the excerpt (0 for all)")
	inspectCmd.Flags().StringVarP(&inspectOut, "out", "o", "", "write an excerpt to this midi file")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Inspects a midi file",
	Long:  `Prints the note array of a midi file, optionally writing an excerpt of it.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return inspect(cmd, args[0])
	},
}

func inspect(cmd *cobra.Command, path string) error {
	out := cmd.OutOrStdout()

	p, err := performance.LoadFile(path)
	if err != nil {
		return err
	}
	if inspectDump {
		spew.Fdump(out, p)
	} else {
		fmt.Fprintln(out, "id\tonset_sec\tduration_sec\tonset_tick\tduration_tick\tpitch\tvelocity\ttrack\tchannel")
		for _, n := range p.Notes {
			fmt.Fprintf(out, "%v\t%.3f\t%.3f\t%v\t%v\t%v\t%v\t%v\t%v\n",
				n.Id, n.OnsetSec, n.DurationSec, n.OnsetTick, n.DurationTick, n.Pitch, n.Velocity, n.Track, n.Channel)
		}
	}

	if inspectOut == "" {
		return nil
	}
	s, err := midi.ReadMidiFile(path)
	if err != nil {
		return err
	}
	if err := midi.WriteMidiFile(inspectOut, midi.Excerpt(s, inspectFromTick, inspectMaxNotes)); err != nil {
		return err
	}
	fmt.Fprintf(out, "wrote excerpt to %v\n", inspectOut)
	return nil
}
