package cmd

import (
	"fmt"
	"math/rand"

	"github.com/jsphweid/miws/dice"
	"github.com/spf13/cobra"
)

var (
	diceHTML bool
	diceRoll bool
	diceSeed int64
)

func init() {
	diceCmd.Flags().BoolVar(&diceHTML, "html", false, "render the table as html")
	diceCmd.Flags().BoolVar(&diceRoll, "roll", false, "throw the dice for a minuet instead of printing the table")
	addSeedFlag(diceCmd.Flags(), &diceSeed)
	rootCmd.AddCommand(diceCmd)
}

var diceCmd = &cobra.Command{
	Use:   "dice",
	Short: "Mozart's musical dice game",
	Long:  `Prints the dice throwing table of Mozart's musical dice game, or rolls a minuet from it.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if diceRoll {
			rng := rand.New(rand.NewSource(resolveSeed(diceSeed)))
			for _, th := range dice.Roll(rng) {
				fmt.Fprintf(out, "measure %2d: rolled %2d -> %v\n", th.Position+1, th.Sum, th.Measure)
			}
			return nil
		}

		md := dice.PrettyPrint()
		if !diceHTML {
			fmt.Fprintln(out, md)
			return nil
		}
		html, err := dice.ToHTML(md)
		if err != nil {
			return err
		}
		fmt.Fprint(out, html)
		return nil
	},
}
