package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "biomusic",
	Short: "Turns protein sequences into music",
	Long: `Turns protein sequences into music. The first residues pick a key and
tempo, every residue becomes a note, and conserved domains are voiced as chords.`,
	SilenceUsage: true,
}

func Execute() {
	cobra.CheckErr(rootCmd.ExecuteContext(context.Background()))
}
