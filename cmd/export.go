package cmd

import (
	"fmt"
	"os"

	"github.com/hayleefay/biomusic/midi"
	"github.com/spf13/cobra"
)

var exportInput inputFlags
var exportOut string

func init() {
	exportInput.register(exportCmd)
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "song.mid", "MIDI file to write")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export [SEQUENCE]",
	Short: "Writes a song as a MIDI file",
	Long:  `Writes a song as a Standard MIDI File`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := exportInput.compose(cmd.Context(), args)
		if err != nil {
			return err
		}

		f, err := os.Create(exportOut)
		if err != nil {
			return err
		}
		defer f.Close()

		if err := midi.Write(f, s); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %v positions in %v at %v bpm to %v\n",
			len(s.Notes), s.Key, s.Tempo, exportOut)
		return nil
	},
}
