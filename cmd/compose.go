package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/hayleefay/biomusic/model"
	"github.com/hayleefay/biomusic/scale"
	"github.com/hayleefay/biomusic/util"
	"github.com/spf13/cobra"
)

var composeInput inputFlags
var composeFormat string

func init() {
	composeInput.register(composeCmd)
	composeCmd.Flags().StringVar(&composeFormat, "format", "text", "output format: text, json or abc")
	rootCmd.AddCommand(composeCmd)
}

var composeCmd = &cobra.Command{
	Use:   "compose [SEQUENCE]",
	Short: "Composes a song from a protein",
	Long: "Composes a song from a protein sequence, a FASTA file or an NCBI accession.\n" +
		"The key is picked from: " + strings.Join(scale.Names(), ", "),
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := composeInput.compose(cmd.Context(), args)
		if err != nil {
			return err
		}
		return printSong(cmd.OutOrStdout(), s, composeFormat)
	},
}

func printSong(w io.Writer, s *model.Song, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	case "abc":
		_, err := fmt.Fprint(w, s.Tune)
		return err
	case "text":
		fmt.Fprintf(w, "title: %v\n", s.Title)
		fmt.Fprintf(w, "key: %v\n", s.Key)
		fmt.Fprintf(w, "tempo: %v\n", s.Tempo)
		fmt.Fprintf(w, "residues: %v\n", len(s.Sequence))
		fmt.Fprintf(w, "regions: %v\n", len(s.Regions))
		fmt.Fprintf(w, "total duration: %v\n", s.TotalDuration)
		fmt.Fprintf(w, "durations: %v\n", durationTable(s))
		fmt.Fprintf(w, "annotated: %v\n", s.Annotated)
		fmt.Fprintf(w, "notation:\n%v\n", s.Notation)
		return nil
	}
	return fmt.Errorf("unknown format %q", format)
}

// durationTable lists each residue symbol with its duration, e.g. "A=8 K=4".
func durationTable(s *model.Song) string {
	bySymbol := make(map[rune]int)
	for i, r := range []rune(s.Sequence) {
		if i < len(s.Durations) {
			bySymbol[r] = s.Durations[i]
		}
	}
	var fields []string
	for _, r := range util.GetKeys(bySymbol) {
		fields = append(fields, fmt.Sprintf("%c=%v", r, bySymbol[r]))
	}
	return strings.Join(fields, " ")
}
