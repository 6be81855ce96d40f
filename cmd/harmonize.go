package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/jsphweid/miws/chord"
	"github.com/jsphweid/miws/progression"
	"github.com/jsphweid/miws/score"
	"github.com/spf13/cobra"
)

var (
	harmonizeQuarterDuration int
	harmonizeOffset          int
	harmonizeSeed            int64
	harmonizeTags            string
	harmonizeOut             string
	harmonizeBPM             float64
	harmonizeDump            bool
	harmonizeKeys            bool
)

func init() {
	flags := harmonizeCmd.Flags()
	flags.IntVarP(&harmonizeQuarterDuration, "quarter-duration", "q", progression.DefaultQuarterDuration, "time units per chord")
	flags.IntVar(&harmonizeOffset, "offset", 0, "time offset of the first chord")
	flags.StringVar(&harmonizeTags, "tags", "digits", "note id tags: digits or letters")
	flags.StringVarP(&harmonizeOut, "out", "o", "", "write the part to this midi file")
	flags.Float64Var(&harmonizeBPM, "bpm", score.DefaultExportOptions.BPM, "tempo of the written midi file")
	flags.BoolVar(&harmonizeDump, "dump", false, "dump the whole part")
	flags.BoolVar(&harmonizeKeys, "keys", false, "also print the key of every chord after filling held voices")
	addSeedFlag(flags, &harmonizeSeed)
	rootCmd.AddCommand(harmonizeCmd)
}

var harmonizeCmd = &cobra.Command{
	Use:   "harmonize <progression.txt>",
	Short: "Turns a four-part progression into a part",
	Long: `Reads a progression, one chord per line with soprano, alto, tenor and bass
given as midi numbers or pitch names ("-" for a held chord), and prints the
notes of the resulting part. Use "-" as the file to read stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return harmonize(cmd, args[0])
	},
}

func newTagger(style string, seed int64) (progression.Tagger, error) {
	switch style {
	case "digits":
		return progression.NewDigitTagger(seed), nil
	case "letters":
		return progression.NewWordTagger(seed), nil
	}
	return nil, fmt.Errorf("unknown tag style %q", style)
}

func harmonize(cmd *cobra.Command, path string) error {
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("could not open progression: %w", err)
		}
		defer f.Close()
		r = f
	}

	prog, err := progression.Parse(r)
	if err != nil {
		return err
	}
	tagger, err := newTagger(harmonizeTags, resolveSeed(harmonizeSeed))
	if err != nil {
		return err
	}

	part, err := progression.ToPart(prog, progression.Options{
		QuarterDuration: harmonizeQuarterDuration,
		TimeOffset:      harmonizeOffset,
		Tagger:          tagger,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if harmonizeDump {
		spew.Fdump(out, part)
	} else {
		fmt.Fprintln(out, "id\tstart\tend\tvoice\tstaff\tpitch")
		for _, n := range part.SortedNotes() {
			fmt.Fprintf(out, "%v\t%v\t%v\t%v\t%v\t%v\n", n.Id, n.Start, n.End, n.Voice, n.Staff, n.Spelling)
		}
	}
	if harmonizeKeys {
		// ToPart sanitized prog in place
		fmt.Fprintln(out, "chord\tkey")
		for i, c := range prog.Chords {
			fmt.Fprintf(out, "%v\t%v\n", i, chord.Key(c))
		}
	}

	if harmonizeOut == "" {
		return nil
	}
	f, err := os.Create(harmonizeOut)
	if err != nil {
		return fmt.Errorf("could not create %v: %w", harmonizeOut, err)
	}
	defer f.Close()

	opts := score.DefaultExportOptions
	opts.BPM = harmonizeBPM
	if err := score.WriteSMF(part, f, opts); err != nil {
		return err
	}
	fmt.Fprintf(out, "wrote %v notes to %v\n", len(part.Notes), harmonizeOut)
	return nil
}
