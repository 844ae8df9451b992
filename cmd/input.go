package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hayleefay/biomusic/config"
	"github.com/hayleefay/biomusic/model"
	"github.com/hayleefay/biomusic/protein"
	"github.com/hayleefay/biomusic/song"
	"github.com/spf13/cobra"
)

// inputFlags selects where a sequence comes from: a positional argument,
// a FASTA file or an NCBI accession.
type inputFlags struct {
	accession string
	fasta     string
	title     string
	regions   []string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.accession, "accession", "", "NCBI protein accession to fetch")
	cmd.Flags().StringVar(&f.fasta, "fasta", "", "FASTA file, first record is used")
	cmd.Flags().StringVar(&f.title, "title", "", "song title")
	cmd.Flags().StringArrayVar(&f.regions, "region", nil, "conserved region as start:stop, 0-based inclusive (repeatable)")
}

func parseRegion(s string) (model.Region, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return model.Region{}, fmt.Errorf("%w: %q is not start:stop", model.ErrInvalidRegion, s)
	}
	start, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return model.Region{}, fmt.Errorf("%w: %q", model.ErrInvalidRegion, s)
	}
	stop, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return model.Region{}, fmt.Errorf("%w: %q", model.ErrInvalidRegion, s)
	}
	return model.Region{Start: start, Stop: stop}, nil
}

func parseRegions(specs []string) ([]model.Region, error) {
	var res []model.Region
	for _, s := range specs {
		r, err := parseRegion(s)
		if err != nil {
			return nil, err
		}
		res = append(res, r)
	}
	return res, nil
}

func (f *inputFlags) protein(ctx context.Context, args []string) (*model.Protein, error) {
	switch {
	case f.accession != "":
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		return protein.NewClient(&cfg.NCBI).Fetch(ctx, f.accession)
	case f.fasta != "":
		file, err := os.Open(f.fasta)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		records, err := protein.ParseFasta(file)
		if err != nil {
			return nil, err
		}
		if len(records) == 0 {
			return nil, fmt.Errorf("no FASTA records in %v", f.fasta)
		}
		return &model.Protein{Name: records[0].Header, Sequence: records[0].Sequence}, nil
	case len(args) == 1:
		return &model.Protein{Sequence: strings.ToUpper(args[0])}, nil
	}
	return nil, fmt.Errorf("need a sequence argument, --fasta or --accession")
}

// compose builds the song for a command invocation. Regions given on the
// command line replace the ones of a fetched record.
func (f *inputFlags) compose(ctx context.Context, args []string) (*model.Song, error) {
	p, err := f.protein(ctx, args)
	if err != nil {
		return nil, err
	}
	if len(f.regions) > 0 {
		p.Regions, err = parseRegions(f.regions)
		if err != nil {
			return nil, err
		}
	}
	if f.title != "" {
		p.Name = f.title
	}
	return song.FromProtein(p)
}
