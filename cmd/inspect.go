package cmd

import (
	"fmt"

	"github.com/hayleefay/biomusic/chord"
	"github.com/hayleefay/biomusic/midi"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect FILE",
	Short: "Inspects a MIDI file",
	Long:  `Prints the chords of a MIDI file, one line per tick`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parsed, err := midi.ReadFile(args[0])
		if err != nil {
			return err
		}
		for _, c := range chord.FromSMF(parsed) {
			fmt.Fprintf(cmd.OutOrStdout(), "tick: %v keys: %v\n", c.AbsTickOffset, chord.CreateChordKey(c.Keys))
		}
		return nil
	},
}
