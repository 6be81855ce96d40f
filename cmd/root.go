package cmd

import (
	"log/slog"
	"time"

	"github.com/jsphweid/miws/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:          "miws",
	Short:        "Symbolic music helpers",
	Long:         `Loads MIDI performances, turns four-part progressions into scores and plays Mozart's dice game.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return err
		}
		cfg = c
		slog.SetDefault(cfg.NewLogger())
		slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)
		return nil
	},
}

// addSeedFlag registers --seed. Zero means seed from the clock.
func addSeedFlag(fs *pflag.FlagSet, seed *int64) {
	fs.Int64Var(seed, "seed", 0, "random seed (0 seeds from the clock)")
}

func resolveSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
